// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package matrixio reads and writes matrices in a compact binary snapshot
// format.
//
// A snapshot is a fixed 24-byte header followed by the row-major elements in
// little-endian order, optionally compressed:
//
//	offset size field
//	0      4    magic "LAMX"
//	4      1    format version (1)
//	5      1    element kind (see Kind)
//	6      1    payload compression (see Compression)
//	7      1    reserved, zero
//	8      8    rows, uint64 little-endian
//	16     8    cols, uint64 little-endian
//	24     -    payload
//
// Complex elements are stored as (real, imaginary) pairs.
package matrixio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/ajroetker/linalg/lanes"
	"github.com/ajroetker/linalg/matrix"
)

const (
	magic      = "LAMX"
	version    = 1
	headerSize = 24

	// maxElements bounds the shape a header may declare.
	maxElements = 1 << 30

	// chunkBytes bounds how far Decode allocates ahead of the payload bytes
	// that have actually arrived.
	chunkBytes = 1 << 20
)

var (
	// ErrCorrupt is returned when a snapshot header or payload is malformed.
	ErrCorrupt = errors.New("matrixio: corrupt snapshot")

	// ErrKindMismatch is returned by Decode when the stored element type is not
	// the requested one.
	ErrKindMismatch = errors.New("matrixio: element kind mismatch")
)

// Compression selects how the payload is compressed.
type Compression uint8

const (
	// CompressionNone stores the payload as is.
	CompressionNone Compression = 0
	// CompressionZstd compresses the payload with zstd (better ratio).
	CompressionZstd Compression = 1
	// CompressionLZ4 compresses the payload with an LZ4 frame (faster).
	CompressionLZ4 Compression = 2
)

// String returns the compression name.
func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionZstd:
		return "zstd"
	case CompressionLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("compression(%d)", uint8(c))
	}
}

// Header describes a snapshot without reading its payload.
type Header struct {
	Kind        Kind
	Compression Compression
	Rows, Cols  int
}

type options struct {
	compression Compression
	level       zstd.EncoderLevel
}

// Option configures Encode.
type Option func(*options)

// WithCompression selects the payload compression. The default is zstd.
func WithCompression(c Compression) Option {
	return func(o *options) { o.compression = c }
}

// WithLevel sets the zstd encoder level. It has no effect for other
// compressions.
func WithLevel(level zstd.EncoderLevel) Option {
	return func(o *options) { o.level = level }
}

// Encode writes m to w.
func Encode[T lanes.Element](w io.Writer, m *matrix.Matrix[T], opts ...Option) error {
	o := options{compression: CompressionZstd, level: zstd.SpeedDefault}
	for _, opt := range opts {
		opt(&o)
	}
	if o.compression > CompressionLZ4 {
		return fmt.Errorf("matrixio: unknown compression %d", uint8(o.compression))
	}

	var hdr [headerSize]byte
	copy(hdr[:4], magic)
	hdr[4] = version
	hdr[5] = byte(KindOf[T]())
	hdr[6] = byte(o.compression)
	binary.LittleEndian.PutUint64(hdr[8:], uint64(m.Rows()))
	binary.LittleEndian.PutUint64(hdr[16:], uint64(m.Cols()))
	if _, err := w.Write(hdr[:]); err != nil {
		return fmt.Errorf("matrixio: write header: %w", err)
	}

	pw, err := payloadWriter(w, o)
	if err != nil {
		return err
	}
	if err := binary.Write(pw, binary.LittleEndian, m.Data()); err != nil {
		return fmt.Errorf("matrixio: write payload: %w", err)
	}
	if err := pw.Close(); err != nil {
		return fmt.Errorf("matrixio: finish %s payload: %w", o.compression, err)
	}
	return nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func payloadWriter(w io.Writer, o options) (io.WriteCloser, error) {
	switch o.compression {
	case CompressionNone:
		return nopCloser{w}, nil
	case CompressionZstd:
		enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(o.level))
		if err != nil {
			return nil, fmt.Errorf("matrixio: zstd writer: %w", err)
		}
		return enc, nil
	default:
		return lz4.NewWriter(w), nil
	}
}

// ReadHeader reads and validates the snapshot header from r, leaving r
// positioned at the payload.
func ReadHeader(r io.Reader) (Header, error) {
	var hdr [headerSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return Header{}, fmt.Errorf("matrixio: read header: %w: %w", ErrCorrupt, err)
	}
	if string(hdr[:4]) != magic {
		return Header{}, fmt.Errorf("matrixio: bad magic %q: %w", hdr[:4], ErrCorrupt)
	}
	if hdr[4] != version {
		return Header{}, fmt.Errorf("matrixio: unsupported version %d: %w", hdr[4], ErrCorrupt)
	}

	h := Header{Kind: Kind(hdr[5]), Compression: Compression(hdr[6])}
	if !h.Kind.valid() {
		return Header{}, fmt.Errorf("matrixio: unknown element kind %d: %w", hdr[5], ErrCorrupt)
	}
	if h.Compression > CompressionLZ4 {
		return Header{}, fmt.Errorf("matrixio: unknown compression %d: %w", hdr[6], ErrCorrupt)
	}

	rows := binary.LittleEndian.Uint64(hdr[8:])
	cols := binary.LittleEndian.Uint64(hdr[16:])
	if rows > maxElements || cols > maxElements || (cols != 0 && rows > maxElements/cols) {
		return Header{}, fmt.Errorf("matrixio: shape %dx%d too large: %w", rows, cols, ErrCorrupt)
	}
	h.Rows, h.Cols = int(rows), int(cols)
	return h, nil
}

// Decode reads a matrix of element type T from r. It fails with
// ErrKindMismatch if the snapshot holds a different element type, and with
// ErrCorrupt if the header or payload is malformed or truncated.
func Decode[T lanes.Element](r io.Reader) (*matrix.Matrix[T], error) {
	h, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}
	if want := KindOf[T](); h.Kind != want {
		return nil, fmt.Errorf("matrixio: decode %s as %s: %w", h.Kind, want, ErrKindMismatch)
	}

	pr, closePayload, err := payloadReader(r, h.Compression)
	if err != nil {
		return nil, err
	}
	defer closePayload()

	data, err := readPayload[T](pr, h.Rows*h.Cols)
	if err != nil {
		return nil, fmt.Errorf("matrixio: read %dx%d %s payload: %w: %w", h.Rows, h.Cols, h.Kind, ErrCorrupt, err)
	}
	return matrix.FromSlice(h.Rows, h.Cols, data)
}

// readPayload reads n elements in chunks of at most chunkBytes, so the result
// only grows as fast as the reader delivers data.
func readPayload[T lanes.Element](r io.Reader, n int) ([]T, error) {
	var zero T
	per := max(chunkBytes/binary.Size(zero), 1)

	chunk := make([]T, min(n, per))
	data := make([]T, 0, len(chunk))
	for len(data) < n {
		c := chunk[:min(per, n-len(data))]
		if err := binary.Read(r, binary.LittleEndian, c); err != nil {
			return nil, err
		}
		data = append(data, c...)
	}
	return data, nil
}

func payloadReader(r io.Reader, c Compression) (io.Reader, func(), error) {
	switch c {
	case CompressionZstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("matrixio: zstd reader: %w: %w", ErrCorrupt, err)
		}
		return dec, dec.Close, nil
	case CompressionLZ4:
		return lz4.NewReader(r), func() {}, nil
	default:
		return r, func() {}, nil
	}
}
