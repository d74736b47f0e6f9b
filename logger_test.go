package unitgo

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/hupe1980/unitgo/unit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerHelpers(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	logger.LogResolve("m/s", nil)
	logger.LogResolve("bogus", errors.New("unknown unit"))
	logger.LogRegister("furlong", nil)
	logger.LogCatalogLoad("team-units", 3, nil)

	out := buf.String()
	assert.Contains(t, out, "unit resolved")
	assert.Contains(t, out, "expr=m/s")
	assert.Contains(t, out, "unit resolve failed")
	assert.Contains(t, out, "unit registered")
	assert.Contains(t, out, "catalog loaded")
	assert.Contains(t, out, "definitions=3")
}

func TestLoggerWiresIntoRegistry(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	reg := unit.NewRegistry(unit.WithLogger(logger.Logger))
	_, err := reg.RegisterComposite("furlong", 201.168, "m")
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "unit registered")
	assert.Contains(t, buf.String(), "name=furlong")
}

func TestNoopLogger(t *testing.T) {
	logger := NoopLogger()
	logger.LogResolve("m", nil)
	logger.LogCatalogLoad("x", 0, errors.New("boom"))
	assert.NotNil(t, logger.Logger)
}
