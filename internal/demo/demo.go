// Package demo builds a queue from configuration, renders its iteration and
// writes the result out.
package demo

import (
	"bufio"
	"errors"
	"fmt"
	ringqueue "github.com/Borislavv/go-ring-queue"
	"github.com/Borislavv/go-ring-queue/internal/config"
	"github.com/Borislavv/go-ring-queue/internal/render"
	"github.com/rs/zerolog"
	"io"
	"slices"
)

// Build returns the demo queue described by cfg, before Extra is enqueued.
func Build(cfg *config.Demo) (*ringqueue.Queue[int], error) {
	if cfg.Capacity <= 0 {
		return ringqueue.NewFrom(slices.Values(cfg.Elements))
	}

	q, err := ringqueue.New[int](cfg.Capacity)
	if err != nil {
		return nil, err
	}
	for _, v := range cfg.Elements {
		q.Enqueue(v)
	}
	return q, nil
}

// Run builds the queue, enqueues cfg.Extra, writes the rendered iteration to out
// and, when configured, waits for one byte on in.
func Run(cfg *config.Demo, logger zerolog.Logger, out io.Writer, in io.Reader) error {
	q, err := Build(cfg)
	if err != nil {
		return fmt.Errorf("build queue: %w", err)
	}
	q.Enqueue(cfg.Extra)

	result := render.Concat(q.All())
	logger.Debug().
		Int("len", q.Len()).
		Int("capacity", q.Capacity()).
		Str("digest", render.Digest(result)).
		Msg("queue rendered")

	if _, err = io.WriteString(out, result); err != nil {
		return fmt.Errorf("write result: %w", err)
	}

	if !cfg.IsWaitForKey() {
		return nil
	}
	if _, err = bufio.NewReader(in).ReadByte(); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("wait for key: %w", err)
	}
	return nil
}
