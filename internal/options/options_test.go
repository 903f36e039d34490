package options_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/scottix/rtimedb/internal/options"
	"github.com/scottix/rtimedb/writer"
	"github.com/stretchr/testify/require"
)

// withLoggerChecked mirrors writer.WithLogger but rejects a nil logger,
// giving these tests an error path to exercise against a real Config.
func withLoggerChecked(l *slog.Logger) options.Option[*writer.Config] {
	return options.New(func(c *writer.Config) error {
		if l == nil {
			return errors.New("logger must not be nil")
		}
		c.Logger = l
		return nil
	})
}

func TestApplySetsLogger(t *testing.T) {
	cfg := &writer.Config{}
	log := slog.Default()

	err := options.Apply(cfg, writer.WithLogger(log))
	require.NoError(t, err)
	require.Same(t, log, cfg.Logger)
}

func TestApplyPropagatesErrorAndStops(t *testing.T) {
	cfg := &writer.Config{}

	err := options.Apply(cfg,
		withLoggerChecked(slog.Default()),
		withLoggerChecked(nil),
		writer.WithLogger(nil),
	)
	require.Error(t, err)
	require.Contains(t, err.Error(), "logger must not be nil")
	// The first option applied before the failing one; the option after it
	// (which would clear Logger to nil) must never run.
	require.NotNil(t, cfg.Logger)
}

func TestApplyWithNoOptionsLeavesConfigUnchanged(t *testing.T) {
	cfg := &writer.Config{}

	err := options.Apply(cfg)
	require.NoError(t, err)
	require.Nil(t, cfg.Logger)
}

func TestNoErrorAlwaysSucceeds(t *testing.T) {
	cfg := &writer.Config{}
	log := slog.Default()

	opt := writer.WithLogger(log)
	err := options.Apply(cfg, opt)
	require.NoError(t, err)
	require.Same(t, log, cfg.Logger)
}
