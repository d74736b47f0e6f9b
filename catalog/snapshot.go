package catalog

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"time"

	"github.com/hupe1980/unitgo/codec"
	"github.com/hupe1980/unitgo/unit"
)

const (
	// magicNumber identifies catalog snapshot blobs (ASCII: "UCT1").
	magicNumber = 0x55435431
	// formatVersion is the current snapshot format version.
	formatVersion = 1
)

var (
	ErrInvalidMagic   = errors.New("catalog: invalid magic number")
	ErrInvalidVersion = errors.New("catalog: unsupported format version")
	ErrTruncated      = errors.New("catalog: truncated snapshot")
)

// ChecksumError is returned when the payload checksum does not match.
type ChecksumError struct {
	Expected uint32
	Actual   uint32
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("catalog: checksum mismatch: expected 0x%08x, got 0x%08x", e.Expected, e.Actual)
}

// Snapshot is the persisted form of a registry's custom units.
type Snapshot struct {
	CreatedAt time.Time  `json:"created_at"`
	Defs      []unit.Def `json:"defs"`
}

// encodeSnapshot frames a snapshot:
//
//	magic   uint32
//	version uint32
//	codec   length-prefixed name
//	comp    length-prefixed name
//	payload uint32 length + compressed codec bytes
//	crc32   uint32 over the compressed payload
func encodeSnapshot(c codec.Codec, comp Compressor, snap *Snapshot) ([]byte, error) {
	payload, err := c.Marshal(snap)
	if err != nil {
		return nil, err
	}
	payload, err = comp.Compress(payload)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	writeU32 := func(v uint32) {
		var b [4]byte
		binary.BigEndian.PutUint32(b[:], v)
		buf.Write(b[:])
	}
	writeName := func(name string) error {
		if len(name) > 255 {
			return fmt.Errorf("catalog: name too long: %q", name)
		}
		buf.WriteByte(byte(len(name)))
		buf.WriteString(name)
		return nil
	}

	writeU32(magicNumber)
	writeU32(formatVersion)
	if err := writeName(c.Name()); err != nil {
		return nil, err
	}
	if err := writeName(comp.Name()); err != nil {
		return nil, err
	}
	writeU32(uint32(len(payload)))
	buf.Write(payload)
	writeU32(crc32.ChecksumIEEE(payload))
	return buf.Bytes(), nil
}

// decodeSnapshot parses and verifies a framed snapshot. The codec and
// compressor are selected by the names recorded in the header.
func decodeSnapshot(data []byte) (*Snapshot, error) {
	r := &sliceReader{data: data}

	magic, err := r.u32()
	if err != nil {
		return nil, err
	}
	if magic != magicNumber {
		return nil, ErrInvalidMagic
	}
	version, err := r.u32()
	if err != nil {
		return nil, err
	}
	if version != formatVersion {
		return nil, ErrInvalidVersion
	}

	codecName, err := r.name()
	if err != nil {
		return nil, err
	}
	compName, err := r.name()
	if err != nil {
		return nil, err
	}

	payloadLen, err := r.u32()
	if err != nil {
		return nil, err
	}
	payload, err := r.bytes(int(payloadLen))
	if err != nil {
		return nil, err
	}
	expected, err := r.u32()
	if err != nil {
		return nil, err
	}
	if actual := crc32.ChecksumIEEE(payload); actual != expected {
		return nil, &ChecksumError{Expected: expected, Actual: actual}
	}

	c, ok := codec.ByName(codecName)
	if !ok {
		return nil, fmt.Errorf("catalog: unknown codec %q", codecName)
	}
	comp, err := CompressorByName(compName)
	if err != nil {
		return nil, err
	}

	payload, err = comp.Decompress(payload)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := c.Unmarshal(payload, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

type sliceReader struct {
	data []byte
	off  int
}

func (r *sliceReader) bytes(n int) ([]byte, error) {
	if r.off+n > len(r.data) {
		return nil, ErrTruncated
	}
	b := r.data[r.off : r.off+n]
	r.off += n
	return b, nil
}

func (r *sliceReader) u32() (uint32, error) {
	b, err := r.bytes(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func (r *sliceReader) name() (string, error) {
	b, err := r.bytes(1)
	if err != nil {
		return "", err
	}
	n, err := r.bytes(int(b[0]))
	if err != nil {
		return "", err
	}
	return string(n), nil
}
