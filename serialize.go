package unitgo

import (
	"fmt"

	"github.com/hupe1980/unitgo/codec"
	"github.com/hupe1980/unitgo/unit"
	"github.com/hupe1980/unitgo/value"
)

// quantityDoc is the serialized form of a quantity. The unit is stored
// by its canonical name so the reader re-resolves it against a registry
// (a quantity only round-trips where its unit is known).
type quantityDoc struct {
	Kind string    `json:"kind"` // scalar, complex or array
	Data []float64 `json:"data"` // complex payloads store [re, im]
	Unit string    `json:"unit"`
}

// MarshalQuantity encodes a quantity with the given codec. A nil codec
// uses codec.Default.
func MarshalQuantity(c codec.Codec, q *Quantity) ([]byte, error) {
	if c == nil {
		c = codec.Default
	}
	doc := quantityDoc{Unit: q.u.Name()}
	switch v := q.val.(type) {
	case value.Scalar:
		doc.Kind = "scalar"
		doc.Data = []float64{float64(v)}
	case value.Complex:
		doc.Kind = "complex"
		doc.Data = []float64{real(complex128(v)), imag(complex128(v))}
	case value.Array:
		doc.Kind = "array"
		doc.Data = append([]float64(nil), v...)
	default:
		return nil, fmt.Errorf("unitgo: cannot serialize payload kind %T", q.val)
	}
	return c.Marshal(doc)
}

// UnmarshalQuantity decodes a quantity against the default registry.
func UnmarshalQuantity(c codec.Codec, data []byte) (*Quantity, error) {
	return UnmarshalQuantityIn(unit.Default(), c, data)
}

// UnmarshalQuantityIn decodes a quantity, resolving its unit against
// the given registry.
func UnmarshalQuantityIn(reg *unit.Registry, c codec.Codec, data []byte) (*Quantity, error) {
	if c == nil {
		c = codec.Default
	}
	var doc quantityDoc
	if err := c.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	var v value.Value
	switch doc.Kind {
	case "scalar":
		if len(doc.Data) != 1 {
			return nil, fmt.Errorf("unitgo: scalar payload wants 1 datum, got %d", len(doc.Data))
		}
		v = value.Of(doc.Data[0])
	case "complex":
		if len(doc.Data) != 2 {
			return nil, fmt.Errorf("unitgo: complex payload wants 2 data, got %d", len(doc.Data))
		}
		v = value.OfComplex(complex(doc.Data[0], doc.Data[1]))
	case "array":
		v = value.OfSlice(doc.Data)
	default:
		return nil, fmt.Errorf("unitgo: unknown payload kind %q", doc.Kind)
	}
	return MakeIn(reg, v, doc.Unit)
}
