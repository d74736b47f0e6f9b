package unit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCustomRoundTrip(t *testing.T) {
	src := NewRegistry()
	_, err := src.RegisterComposite("furlong", 201.168, "m")
	require.NoError(t, err)
	_, err = src.RegisterComposite("fortnight", 14*86400, "s")
	require.NoError(t, err)

	defs := src.ExportCustom()
	require.Len(t, defs, 2)
	assert.Equal(t, "fortnight", defs[0].Name)
	assert.Equal(t, "furlong", defs[1].Name)

	dst := NewRegistry()
	require.NoError(t, dst.Apply(defs))

	furlong, err := dst.Resolve("furlong")
	require.NoError(t, err)
	assert.InEpsilon(t, 201.168, furlong.Factor(), 1e-12)

	speed, err := dst.Resolve("furlong/fortnight")
	require.NoError(t, err)
	assert.InEpsilon(t, 201.168/(14*86400), speed.Factor(), 1e-12)
}

func TestExportCustomExcludesStandardTables(t *testing.T) {
	reg := NewRegistry()
	assert.Empty(t, reg.ExportCustom())

	_, err := reg.RegisterComposite("smoot", 1.702, "m")
	require.NoError(t, err)

	defs := reg.ExportCustom()
	require.Len(t, defs, 1)
	assert.Equal(t, "smoot", defs[0].Name)
}

func TestApplyConflict(t *testing.T) {
	src := NewRegistry()
	_, err := src.RegisterComposite("smoot", 1.702, "m")
	require.NoError(t, err)
	defs := src.ExportCustom()

	dst := NewRegistry()
	_, err = dst.RegisterComposite("smoot", 2.0, "m")
	require.NoError(t, err)

	var dup *DuplicateUnitError
	assert.ErrorAs(t, dst.Apply(defs), &dup)

	// Identical definitions re-apply cleanly.
	require.NoError(t, src.Apply(defs))
}

func TestExportIncludesEverything(t *testing.T) {
	reg := NewRegistry()
	defs := reg.Export()
	assert.Equal(t, len(reg.List()), len(defs))
}
