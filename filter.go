// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bloom

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/bits"

	"github.com/dchest/siphash"
	"github.com/decred/dcrd/crypto/blake256"
	"github.com/jrick/bitset"
)

// References:
//   [BLOOM] Space/Time Trade-offs in Hash Coding with Allowable Errors
//     (Burton H. Bloom)
//     https://dl.acm.org/doi/10.1145/362686.362692

const (
	// NumHashFuncs is the number of independent hash functions used to map
	// each item to bit positions in the filter.
	NumHashFuncs = 3

	// DefaultSize is the number of bit positions used by filters created via
	// NewDefault.
	DefaultSize = 100
)

// deriveKey deterministically derives a 128-bit SipHash key by splitting the
// leading 16 bytes of the BLAKE-256 digest of the provided domain separation
// tag.
func deriveKey(tag string) [2]uint64 {
	sum := blake256.Sum256([]byte(tag))
	k0 := binary.LittleEndian.Uint64(sum[0:8])
	k1 := binary.LittleEndian.Uint64(sum[8:16])
	return [2]uint64{k0, k1}
}

// hashKeys houses the fixed keys that seed each of the filter hash functions.
// Keying SipHash-2-4 with distinct keys yields the required number of
// independent hash functions while keeping them deterministic, so every
// filter maps a given item to the same sequence of positions regardless of
// when or where the filter was created.
var hashKeys = [NumHashFuncs][2]uint64{
	deriveKey("bloom:filter:hashfunc:0"),
	deriveKey("bloom:filter:hashfunc:1"),
	deriveKey("bloom:filter:hashfunc:2"),
}

// CalcFPRate calculates and returns the expected false positive rate for a
// filter created with the given number of bit positions once the given number
// of distinct items have been added to it.
//
// The rate follows the well-known approximation for a classic Bloom filter
// with k hash functions, m bits, and n added items:
//
//	(1 - e^(-kn/m))^k
//
// The result is guidance for choosing a filter size.  The filter itself never
// inspects or enforces the rate and will accept additions indefinitely with a
// correspondingly degrading rate.
//
// This function is safe for concurrent access.
func CalcFPRate(size, numItems int) float64 {
	if size <= 0 || numItems <= 0 {
		return 0
	}

	exponent := -float64(NumHashFuncs) * float64(numItems) / float64(size)
	return math.Pow(1-math.Exp(exponent), NumHashFuncs)
}

// fastReduce calculates a mapping that is more or less equivalent to x mod N.
// However, instead of using a mod operation that can lead to slowness on many
// processors when not using a power of two due to unnecessary division, this
// uses a "multiply-and-shift" trick that eliminates all divisions as described
// in a blog post by Daniel Lemire, located at the following site at the time
// of this writing:
// https://lemire.me/blog/2016/06/27/a-fast-alternative-to-the-modulo-reduction/
//
// Since that link might disappear, the general idea is to multiply by N and
// shift right by log2(N).  Since N is a 64-bit integer in this case, it
// becomes:
//
// (x * N) / 2^64 == (x * N) >> 64
//
// This is a fair map since it maps integers in the range [0,2^64) to multiples
// of N in [0, N*2^64) and then divides by 2^64 to map all multiples of N in
// [0,2^64) to 0, all multiples of N in [2^64, 2*2^64) to 1, etc.  This results
// in either ceil(2^64/N) or floor(2^64/N) multiples of N.
func fastReduce(x, N uint64) uint64 {
	// This uses math/bits to perform the 128-bit multiplication as the compiler
	// will replace it with the relevant intrinsic on most architectures.
	//
	// The high 64 bits in a 128-bit product is the same as shifting the entire
	// product right by 64 bits.
	hi, _ := bits.Mul64(x, N)
	return hi
}

// Filter implements a classic fixed-size Bloom filter.
//
// A Bloom filter is a compact probabilistic set membership structure.  Items
// are added by setting the bit positions derived from the item by
// NumHashFuncs independent hash functions and queried by testing those same
// positions.  Queries have a non-zero probability of false positives that
// grows with the number of added items, per the rate described by CalcFPRate,
// and a zero probability of false negatives.
//
// Items can not be removed and the filter never resizes, so the memory in use
// is constant for the life of the filter regardless of how many items are
// added.
//
// Filters are not safe for concurrent access.  Callers that share a filter
// between goroutines must provide their own synchronization.
type Filter struct {
	// size is the number of bit positions in the filter.  Every derived
	// position is reduced into the half-open interval [0, size).
	size uint64

	// bits is the single bit array shared by all of the hash functions.  Bits
	// are only ever set, never cleared.
	bits bitset.Bytes
}

// Size returns the number of bit positions the filter was created with.
func (f *Filter) Size() int {
	return int(f.size)
}

// FillRatio returns the fraction of bit positions that are currently set.
//
// The ratio only ever increases as items are added and is useful for judging
// how heavily loaded a filter is relative to its size.
func (f *Filter) FillRatio() float64 {
	var set int
	for _, b := range f.bits {
		set += bits.OnesCount8(b)
	}
	return float64(set) / float64(f.size)
}

// hashPositions returns the ordered sequence of bit positions the provided
// data maps to, one position per hash function, each reduced to the interval
// [0, size).
//
// The sequence is deterministic for a given item and filter size since the
// hash functions are keyed by fixed package-level keys and are always applied
// in the same order.
func (f *Filter) hashPositions(data []byte) [NumHashFuncs]uint64 {
	var positions [NumHashFuncs]uint64
	for i, key := range hashKeys {
		positions[i] = fastReduce(siphash.Hash(key[0], key[1], data), f.size)
	}
	return positions
}

// Add inserts the provided data into the filter by setting the bit at every
// position derived from the data.
//
// Adding an item that was already added leaves the filter unchanged.  Items
// can not be removed once added.
func (f *Filter) Add(data []byte) {
	positions := f.hashPositions(data)
	for _, position := range positions {
		f.bits.Set(int(position))
	}
}

// AddString inserts the UTF-8 bytes of the provided string into the filter.
// It is equivalent to Add([]byte(s)).
func (f *Filter) AddString(s string) {
	f.Add([]byte(s))
}

// Contains returns the result of a probabilistic membership test of the
// provided data such that there is a non-zero probability of false positives,
// per the false positive rate of the filter, and a zero probability of false
// negatives.
//
// In other words, items that were added to the filter always return true
// while items that were never added only report true with the false positive
// rate described by CalcFPRate.  A false result is a guarantee the item was
// never added.
//
// The filter is never modified by the test.
func (f *Filter) Contains(data []byte) bool {
	positions := f.hashPositions(data)
	for _, position := range positions {
		if !f.bits.Get(int(position)) {
			return false
		}
	}
	return true
}

// ContainsString returns the result of a probabilistic membership test of the
// UTF-8 bytes of the provided string.  It is equivalent to
// Contains([]byte(s)).
func (f *Filter) ContainsString(s string) bool {
	return f.Contains([]byte(s))
}

// New returns a Bloom filter with the provided number of bit positions and
// every position cleared, so membership tests on a new filter report false
// for all items until additions are made.
//
// The size is fixed for the life of the filter and, together with the number
// of items added, determines the false positive rate per CalcFPRate.
//
// Returns an error with kind ErrInvalidCapacity when size is not positive.
func New(size int) (*Filter, error) {
	if size <= 0 {
		str := fmt.Sprintf("filter size of %d is not a positive number of "+
			"bit positions", size)
		return nil, makeError(ErrInvalidCapacity, str)
	}

	log.Debugf("Created filter with %d bit positions and %d hash functions",
		size, NumHashFuncs)
	return &Filter{
		size: uint64(size),
		bits: bitset.NewBytes(size),
	}, nil
}

// NewDefault returns a Bloom filter with DefaultSize bit positions and every
// position cleared.  It is equivalent to New(DefaultSize) for callers that
// have no particular size requirement.
func NewDefault() *Filter {
	// The error is impossible since DefaultSize is a positive constant.
	f, _ := New(DefaultSize)
	return f
}
