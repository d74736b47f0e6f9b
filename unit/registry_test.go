package unit

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryResolveCaching(t *testing.T) {
	reg := NewRegistry()

	u1, err := reg.Resolve("m/s")
	require.NoError(t, err)
	u2, err := reg.Resolve("m/s")
	require.NoError(t, err)

	// Memoized: the same descriptor comes back.
	assert.Same(t, u1, u2)
}

func TestRegistryRegister(t *testing.T) {
	reg := NewRegistry()

	// 1. Register a new composite.
	furlong, err := reg.RegisterComposite("furlong", 201.168, "m")
	require.NoError(t, err)
	assert.Equal(t, "furlong", furlong.Name())
	assert.InEpsilon(t, 201.168, furlong.Factor(), 1e-12)

	// 2. It participates in expressions and prefixing rules.
	speed, err := reg.Resolve("furlong/h")
	require.NoError(t, err)
	assert.InEpsilon(t, 201.168/3600, speed.Factor(), 1e-12)

	// 3. Identical re-registration is a no-op.
	_, err = reg.RegisterComposite("furlong", 201.168, "m")
	require.NoError(t, err)

	// 4. Conflicting registration fails.
	_, err = reg.RegisterComposite("furlong", 200, "m")
	var dup *DuplicateUnitError
	assert.ErrorAs(t, err, &dup)
	assert.Equal(t, "furlong", dup.Name)
}

func TestRegisterInvalidatesCache(t *testing.T) {
	reg := NewRegistry()

	_, err := reg.Resolve("m/s")
	require.NoError(t, err)

	_, err = reg.RegisterComposite("knot", 1852.0/3600.0, "m/s")
	require.NoError(t, err)

	knot, err := reg.Resolve("knot")
	require.NoError(t, err)
	assert.InEpsilon(t, 1852.0/3600.0, knot.Factor(), 1e-12)
}

func TestRegistryWithoutStandardUnits(t *testing.T) {
	reg := NewRegistry(WithoutStandardUnits())

	_, err := reg.Resolve("m")
	var unknown *UnknownUnitError
	assert.ErrorAs(t, err, &unknown)
	assert.Empty(t, reg.List())
}

func TestRegistryList(t *testing.T) {
	reg := NewRegistry()
	infos := reg.List()
	require.NotEmpty(t, infos)

	// Sorted by name.
	for i := 1; i < len(infos); i++ {
		assert.Less(t, infos[i-1].Name, infos[i].Name)
	}

	byName := make(map[string]Info, len(infos))
	for _, info := range infos {
		byName[info.Name] = info
	}
	assert.True(t, byName["m"].IsBase)
	assert.Equal(t, "m*kg/s**2", byName["N"].Dimension)
	assert.Equal(t, 273.15, byName["degC"].Offset)

	// Prefixed forms are derived, never enumerated.
	_, ok := byName["km"]
	assert.False(t, ok)
}

func TestRegistryConcurrentResolve(t *testing.T) {
	reg := NewRegistry()

	var wg sync.WaitGroup
	errs := make(chan error, 64)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			exprs := []string{"m/s", "kW*h", "mV", "kg*m/s**2", fmt.Sprintf("m**%d", n%3+1)}
			for _, expr := range exprs {
				if _, err := reg.Resolve(expr); err != nil {
					errs <- err
				}
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatal(err)
	}
}

func TestDefaultRegistrySingleton(t *testing.T) {
	assert.Same(t, Default(), Default())
}
