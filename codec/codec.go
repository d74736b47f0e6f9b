// Package codec centralizes the encoding used for unit definitions and
// quantity serialization.
//
// Catalog snapshots are self-describing: they record the codec name in
// their header, and the reader selects the codec by that name. Changing
// the default codec is therefore a compatibility boundary for persisted
// catalogs, not a silent swap.
package codec

import "fmt"

// Codec encodes/decodes values. Implementations must be safe for
// concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// Default is the codec used when none is configured. Persisted data
// always records the codec name, so existing catalogs keep decoding
// even if the default changes.
var Default Codec = GoJSON{}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}

// MustMarshal is a helper for tests and static table construction.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}
