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

package matrixio

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"runtime"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/linalg/lanes"
	"github.com/ajroetker/linalg/matrix"
)

func fill[T lanes.Element](t *testing.T, rows, cols int, gen func(i int) T) *matrix.Matrix[T] {
	t.Helper()
	data := make([]T, rows*cols)
	for i := range data {
		data[i] = gen(i)
	}
	m, err := matrix.FromSlice(rows, cols, data)
	require.NoError(t, err)
	return m
}

func roundTrip[T lanes.Element](t *testing.T, m *matrix.Matrix[T], opts ...Option) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, m, opts...))

	got, err := Decode[T](&buf)
	require.NoError(t, err)
	assert.True(t, m.Equal(got), "decoded:\n%v\nwant:\n%v", got, m)
}

func TestRoundTrip(t *testing.T) {
	for _, c := range []Compression{CompressionNone, CompressionZstd, CompressionLZ4} {
		t.Run(c.String(), func(t *testing.T) {
			opt := WithCompression(c)
			roundTrip(t, fill(t, 3, 4, func(i int) int32 { return int32(i - 6) }), opt)
			roundTrip(t, fill(t, 5, 2, func(i int) uint64 { return uint64(i) << 40 }), opt)
			roundTrip(t, fill(t, 7, 9, func(i int) float64 { return float64(i) / 3 }), opt)
			roundTrip(t, fill(t, 2, 2, func(i int) complex64 { return complex(float32(i), -float32(i)) }), opt)
			roundTrip(t, fill(t, 64, 64, func(i int) complex128 { return complex(float64(i%5), 0.25) }), opt)
			roundTrip(t, fill(t, 0, 3, func(i int) float32 { return 0 }), opt)
		})
	}
}

func TestEncodeLevels(t *testing.T) {
	m := fill(t, 100, 100, func(i int) uint32 { return uint32(i % 7) })
	for _, level := range []zstd.EncoderLevel{zstd.SpeedFastest, zstd.SpeedBestCompression} {
		roundTrip(t, m, WithLevel(level))
	}
}

func TestCompressionShrinksPayload(t *testing.T) {
	m, err := matrix.Zeros[float64](256, 256)
	require.NoError(t, err)

	var raw, packed bytes.Buffer
	require.NoError(t, Encode(&raw, m, WithCompression(CompressionNone)))
	require.NoError(t, Encode(&packed, m))

	assert.Equal(t, headerSize+256*256*8, raw.Len())
	assert.Less(t, packed.Len(), raw.Len()/10)
}

func TestHeaderLayout(t *testing.T) {
	m := fill(t, 2, 3, func(i int) int64 { return int64(i) })

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, m, WithCompression(CompressionNone)))
	b := buf.Bytes()

	assert.Equal(t, "LAMX", string(b[:4]))
	assert.Equal(t, byte(1), b[4])
	assert.Equal(t, byte(KindInt64), b[5])
	assert.Equal(t, byte(CompressionNone), b[6])
	assert.Equal(t, uint64(2), binary.LittleEndian.Uint64(b[8:]))
	assert.Equal(t, uint64(3), binary.LittleEndian.Uint64(b[16:]))
	assert.Equal(t, int64(5), int64(binary.LittleEndian.Uint64(b[headerSize+5*8:])))

	h, err := ReadHeader(bytes.NewReader(b))
	require.NoError(t, err)
	assert.Equal(t, Header{Kind: KindInt64, Compression: CompressionNone, Rows: 2, Cols: 3}, h)
}

func TestDecodeKindMismatch(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, fill(t, 2, 2, func(i int) float32 { return 1 })))

	_, err := Decode[float64](&buf)
	require.ErrorIs(t, err, ErrKindMismatch)
	assert.Contains(t, err.Error(), "float32 as float64")
}

func TestDecodeCorrupt(t *testing.T) {
	var good bytes.Buffer
	require.NoError(t, Encode(&good, fill(t, 4, 4, func(i int) int32 { return int32(i) }), WithCompression(CompressionNone)))

	corrupt := func(edit func(b []byte) []byte) []byte {
		return edit(bytes.Clone(good.Bytes()))
	}

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"short header", good.Bytes()[:10]},
		{"bad magic", corrupt(func(b []byte) []byte { b[0] = 'X'; return b })},
		{"bad version", corrupt(func(b []byte) []byte { b[4] = 9; return b })},
		{"bad kind", corrupt(func(b []byte) []byte { b[5] = 200; return b })},
		{"bad compression", corrupt(func(b []byte) []byte { b[6] = 7; return b })},
		{"huge shape", corrupt(func(b []byte) []byte {
			binary.LittleEndian.PutUint64(b[8:], 1<<40)
			return b
		})},
		{"truncated payload", good.Bytes()[:good.Len()-3]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode[int32](bytes.NewReader(tt.data))
			require.ErrorIs(t, err, ErrCorrupt)
		})
	}
}

func TestDecodeAllocatesOnlyWhatArrives(t *testing.T) {
	// A bare header declaring 16384x16384 int32 (1 GiB) with no payload.
	b := make([]byte, headerSize)
	copy(b, magic)
	b[4] = version
	b[5] = byte(KindInt32)
	b[6] = byte(CompressionNone)
	binary.LittleEndian.PutUint64(b[8:], 16384)
	binary.LittleEndian.PutUint64(b[16:], 16384)

	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	_, err := Decode[int32](bytes.NewReader(b))
	runtime.ReadMemStats(&after)

	require.ErrorIs(t, err, ErrCorrupt)
	assert.Less(t, after.TotalAlloc-before.TotalAlloc, uint64(16<<20))
}

func TestDecodeChunkedPayload(t *testing.T) {
	// Spans several chunks, ending on a partial one.
	rows, cols := 3, chunkBytes/8+17
	m := fill(t, rows, cols, func(i int) float64 { return float64(i) })
	for _, c := range []Compression{CompressionNone, CompressionZstd, CompressionLZ4} {
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, m, WithCompression(c)))
		got, err := Decode[float64](&buf)
		require.NoError(t, err, c.String())
		assert.Equal(t, m.Data(), got.Data(), c.String())
	}
}

func TestDecodeCorruptCompressedPayload(t *testing.T) {
	for _, c := range []Compression{CompressionZstd, CompressionLZ4} {
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, fill(t, 32, 32, func(i int) float64 { return float64(i) }), WithCompression(c)))

		truncated := buf.Bytes()[:headerSize+8]
		_, err := Decode[float64](bytes.NewReader(truncated))
		require.Error(t, err, c.String())
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "complex128", KindOf[complex128]().String())
	assert.Equal(t, "uint32", KindOf[uint32]().String())
	assert.Equal(t, "invalid", Kind(42).String())
	assert.Equal(t, "compression(9)", Compression(9).String())
}

type failWriter struct{ n int }

func (w *failWriter) Write(p []byte) (int, error) {
	if w.n <= 0 {
		return 0, io.ErrClosedPipe
	}
	w.n--
	return len(p), nil
}

func TestEncodeWriteError(t *testing.T) {
	m := fill(t, 2, 2, func(i int) int32 { return 1 })
	require.ErrorIs(t, Encode(&failWriter{}, m), io.ErrClosedPipe)
	require.ErrorIs(t, Encode(&failWriter{n: 1}, m, WithCompression(CompressionNone)), io.ErrClosedPipe)
	require.Error(t, Encode(&bytes.Buffer{}, m, WithCompression(Compression(5))))
}

func BenchmarkEncode(b *testing.B) {
	data := make([]float32, 512*512)
	for i := range data {
		data[i] = float32(i % 97)
	}
	m, _ := matrix.FromSlice(512, 512, data)

	for _, c := range []Compression{CompressionNone, CompressionZstd, CompressionLZ4} {
		b.Run(fmt.Sprint(c), func(b *testing.B) {
			b.SetBytes(int64(len(data) * 4))
			for b.Loop() {
				_ = Encode(io.Discard, m, WithCompression(c))
			}
		})
	}
}
