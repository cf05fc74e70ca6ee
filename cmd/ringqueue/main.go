package main

import (
	"fmt"
	"github.com/Borislavv/go-ring-queue/internal/config"
	"github.com/Borislavv/go-ring-queue/internal/demo"
	"github.com/Borislavv/go-ring-queue/internal/telemetry"
	"github.com/spf13/cobra"
	"os"
)

var flags struct {
	configPath string
	noWait     bool
}

var rootCmd = &cobra.Command{
	Use:           "ringqueue",
	Short:         "build a ring queue, enqueue one more element and print every slot",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.LoadConfig(flags.configPath)
		if err != nil {
			return err
		}
		if flags.noWait {
			wait := false
			cfg.WaitForKey = &wait
		}

		logger, err := telemetry.NewLogger(cfg.Logs, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		logger.Debug().Str("config", flags.configPath).Ints("elements", cfg.Elements).Msg("starting")

		return demo.Run(cfg, logger, cmd.OutOrStdout(), cmd.InOrStdin())
	},
}

func init() {
	rootCmd.Flags().StringVarP(&flags.configPath, "config", "c", "", "path to a YAML demo config")
	rootCmd.Flags().BoolVar(&flags.noWait, "no-wait", false, "exit without waiting for a key press")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
