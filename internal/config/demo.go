package config

// LogFormat selects the zerolog writer.
type LogFormat string

const (
	// LogFormatConsole writes human-readable lines (zerolog.ConsoleWriter).
	LogFormatConsole LogFormat = "console"

	// LogFormatJSON writes one JSON object per line.
	LogFormatJSON LogFormat = "json"
)

// Demo configures the demo program.
type Demo struct {
	// Capacity, when positive, builds the queue with an explicit capacity and
	// enqueues Elements one by one. Otherwise the queue is built from Elements
	// directly and sized max(len(Elements), default).
	Capacity int `yaml:"capacity"`

	// Elements is the initial content of the queue.
	Elements []int `yaml:"elements"`

	// Extra is enqueued after the queue has been built.
	Extra int `yaml:"extra"`

	// WaitForKey blocks on one byte of stdin before exiting.
	// Nil means the default (true).
	WaitForKey *bool `yaml:"wait_for_key"`

	Logs LogsCfg `yaml:"logs"`
}

type LogsCfg struct {
	// Level is a zerolog level name: "debug", "info", "warn", "error", "disabled".
	Level string `yaml:"level"`

	// Format is "console" or "json".
	Format LogFormat `yaml:"format"`
}

// IsWaitForKey reports whether the demo should block on stdin before exiting.
func (cfg *Demo) IsWaitForKey() bool {
	return cfg.WaitForKey == nil || *cfg.WaitForKey
}

// Default returns the hard-coded demo: queue [1 2 3 4 5 6], then enqueue 3.
func Default() *Demo {
	cfg := &Demo{
		Elements: []int{1, 2, 3, 4, 5, 6},
		Extra:    3,
	}
	cfg.AdjustConfig()
	return cfg
}
