package demo

import (
	"bytes"
	"errors"
	ringqueue "github.com/Borislavv/go-ring-queue"
	"github.com/Borislavv/go-ring-queue/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

func noWait(cfg *config.Demo) *config.Demo {
	wait := false
	cfg.WaitForKey = &wait
	return cfg
}

// TestRun_Default prints the hard-coded demo result.
func TestRun_Default(t *testing.T) {
	var out bytes.Buffer
	err := Run(noWait(config.Default()), zerolog.Nop(), &out, strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, "1234563000", out.String())
}

// TestRun_FullSource grows the queue on the extra element.
func TestRun_FullSource(t *testing.T) {
	cfg := noWait(&config.Demo{Elements: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 0}, Extra: 1})

	var out bytes.Buffer
	require.NoError(t, Run(cfg, zerolog.Nop(), &out, nil))
	require.Equal(t, "12345678901000000000", out.String())
}

// TestRun_ExplicitCapacity builds with New and enqueues one by one.
func TestRun_ExplicitCapacity(t *testing.T) {
	cfg := noWait(&config.Demo{Capacity: 3, Elements: []int{4, 5}, Extra: 6})

	var out bytes.Buffer
	require.NoError(t, Run(cfg, zerolog.Nop(), &out, nil))
	require.Equal(t, "456", out.String())
}

// TestRun_WaitsForKey consumes one byte of input.
func TestRun_WaitsForKey(t *testing.T) {
	in := strings.NewReader("x")
	var out bytes.Buffer
	require.NoError(t, Run(config.Default(), zerolog.Nop(), &out, in))
	require.Equal(t, 0, in.Len())
}

// TestRun_WaitOnClosedInput treats EOF as a key press.
func TestRun_WaitOnClosedInput(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Run(config.Default(), zerolog.Nop(), &out, strings.NewReader("")))
	require.Equal(t, "1234563000", out.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

// TestRun_WriteError surfaces output failures.
func TestRun_WriteError(t *testing.T) {
	err := Run(noWait(config.Default()), zerolog.Nop(), failingWriter{}, nil)
	require.ErrorContains(t, err, "write result")
}

// TestBuild_Capacity uses the explicit capacity when set.
func TestBuild_Capacity(t *testing.T) {
	q, err := Build(&config.Demo{Capacity: 2, Elements: []int{1}})
	require.NoError(t, err)
	require.Equal(t, 2, q.Capacity())
	require.Equal(t, 1, q.Len())
}

// TestBuild_FromElements applies the default capacity floor.
func TestBuild_FromElements(t *testing.T) {
	q, err := Build(&config.Demo{Elements: []int{1, 2}})
	require.NoError(t, err)
	require.Equal(t, ringqueue.DefaultCapacity, q.Capacity())
}

// TestBuild_NilElements builds an empty queue.
func TestBuild_NilElements(t *testing.T) {
	q, err := Build(&config.Demo{})
	require.NoError(t, err)
	require.True(t, q.IsEmpty())
}
