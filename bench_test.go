// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bloom

import (
	"encoding/binary"
	"fmt"
	"testing"
)

// BenchmarkAdd benchmarks adding items to filters of various sizes.
func BenchmarkAdd(b *testing.B) {
	benches := []struct {
		size int // number of bit positions
	}{{
		size: 1000,
	}, {
		size: 100000,
	}, {
		size: 1000000,
	}}

	for benchIdx := range benches {
		bench := benches[benchIdx]
		benchName := fmt.Sprintf("size=%d", bench.size)
		b.Run(benchName, func(b *testing.B) {
			filter, err := New(bench.size)
			if err != nil {
				b.Fatalf("unexpected error: %v", err)
			}

			b.ResetTimer()
			b.ReportAllocs()
			var data [4]byte
			for i := 0; i < b.N; i++ {
				binary.LittleEndian.PutUint32(data[:], uint32(i))
				filter.Add(data[:])
			}
		})
	}
}

// BenchmarkContainsTrue benchmarks membership queries on filters of various
// sizes when the item exists in the filter.
func BenchmarkContainsTrue(b *testing.B) {
	benches := []struct {
		size     int    // number of bit positions
		numItems uint32 // number of items to load
	}{{
		size:     1000,
		numItems: 100,
	}, {
		size:     100000,
		numItems: 10000,
	}, {
		size:     1000000,
		numItems: 100000,
	}}

	for benchIdx := range benches {
		bench := benches[benchIdx]
		benchName := fmt.Sprintf("size=%d", bench.size)
		b.Run(benchName, func(b *testing.B) {
			filter, err := New(bench.size)
			if err != nil {
				b.Fatalf("unexpected error: %v", err)
			}
			var data [4]byte
			for i := uint32(0); i < bench.numItems; i++ {
				binary.LittleEndian.PutUint32(data[:], i)
				filter.Add(data[:])
			}
			binary.LittleEndian.PutUint32(data[:], bench.numItems/2)

			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				filter.Contains(data[:])
			}
		})
	}
}

// BenchmarkContainsFalse benchmarks membership queries on filters of various
// sizes when the item does not exist in the filter.
func BenchmarkContainsFalse(b *testing.B) {
	benches := []struct {
		size     int    // number of bit positions
		numItems uint32 // number of items to load
	}{{
		size:     1000,
		numItems: 100,
	}, {
		size:     100000,
		numItems: 10000,
	}, {
		size:     1000000,
		numItems: 100000,
	}}

	for benchIdx := range benches {
		bench := benches[benchIdx]
		benchName := fmt.Sprintf("size=%d", bench.size)
		b.Run(benchName, func(b *testing.B) {
			filter, err := New(bench.size)
			if err != nil {
				b.Fatalf("unexpected error: %v", err)
			}
			var data [4]byte
			for i := uint32(0); i < bench.numItems; i++ {
				binary.LittleEndian.PutUint32(data[:], i)
				filter.Add(data[:])
			}
			binary.LittleEndian.PutUint32(data[:], bench.numItems+1)

			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				filter.Contains(data[:])
			}
		})
	}
}

// BenchmarkHashPositions benchmarks deriving the bit positions for items of
// various lengths.
func BenchmarkHashPositions(b *testing.B) {
	benches := []struct {
		dataLen int // length of the item data
	}{{
		dataLen: 4,
	}, {
		dataLen: 32,
	}, {
		dataLen: 256,
	}}

	for benchIdx := range benches {
		bench := benches[benchIdx]
		benchName := fmt.Sprintf("datalen=%d", bench.dataLen)
		b.Run(benchName, func(b *testing.B) {
			filter, err := New(100000)
			if err != nil {
				b.Fatalf("unexpected error: %v", err)
			}
			data := make([]byte, bench.dataLen)
			binary.LittleEndian.PutUint32(data, 0xb100f17e)

			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				filter.hashPositions(data)
			}
		})
	}
}

// BenchmarkNew benchmarks creating new filters of various sizes.
func BenchmarkNew(b *testing.B) {
	benches := []struct {
		size int // number of bit positions
	}{{
		size: 1000,
	}, {
		size: 100000,
	}, {
		size: 1000000,
	}}

	var noElide *Filter
	for benchIdx := range benches {
		bench := benches[benchIdx]
		benchName := fmt.Sprintf("size=%d", bench.size)
		b.Run(benchName, func(b *testing.B) {
			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				noElide, _ = New(bench.size)
			}
		})
	}
	_ = noElide
}
