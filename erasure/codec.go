// Package erasure implements a Reed-Solomon erasure codec over GF(2^32).
// Encode splits a byte string into n equal-length shards such that any k
// of them reconstruct the original bytes exactly; up to n-k shards may be
// lost. The codec layers a fixed field modulus, little-endian 32-bit word
// packing, and an 8-byte little-endian length prefix into a stable wire
// format, so shards are portable across implementations.
//
// The pipeline packs the framed input into stripes of k field elements,
// interpolates each stripe as a polynomial of degree < k through the
// points (0, w_0) ... (k-1, w_{k-1}), and evaluates it at the n field
// points whose bit patterns are the shard indices. Decoding interpolates
// through any k supplied (index, word) samples and re-evaluates at
// 0 ... k-1.
//
// The codec is a pure, synchronous transformation with no shared state;
// concurrent calls on disjoint inputs need no coordination. It performs
// no error detection: a corrupted shard presented under its claimed index
// decodes to garbage. Callers needing integrity must layer a per-shard
// checksum above the codec.
package erasure

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Codec errors.
var (
	ErrInvalidParams     = errors.New("erasure: invalid coding parameters")
	ErrTooFewShards      = errors.New("erasure: insufficient shards for reconstruction")
	ErrShardSizeMismatch = errors.New("erasure: shard sizes are not uniform")
	ErrShardWordAlign    = errors.New("erasure: shard size not a multiple of the word size")
	ErrDuplicateIndex    = errors.New("erasure: duplicate shard index")
	ErrShortPayload      = errors.New("erasure: decoded payload shorter than its length prefix")
)

// wordSize is the byte width of one field element on the wire.
const wordSize = 4

// lengthPrefixSize is the byte width of the little-endian length prefix
// framed ahead of the payload.
const lengthPrefixSize = 8

// MaxShards is the hard bound on the total shard count n: every shard
// index must map to a distinct GF(2^32) evaluation point by its 32-bit
// bit pattern.
const MaxShards = 1 << 32

// Shard pairs a shard's index with its byte content. The index is the
// field evaluation point the bytes were produced at; presenting bytes
// under the wrong index yields garbage on decode.
type Shard struct {
	Index uint32
	Data  []byte
}

// Encode erasure-codes data into n shards, any k of which reconstruct it.
// Requires 0 < k <= n <= MaxShards.
//
// The framed input is an 8-byte little-endian length prefix, the data,
// and 1 to 4k zero bytes of padding up to a stripe boundary (padding is
// never zero, so framing stays deterministic when the prefix and data
// already align). All returned shards have equal length
// 4 * ceil((len(data)+9) / (4k)).
func Encode(data []byte, n, k int) ([][]byte, error) {
	if k <= 0 || n < k || uint64(n) > MaxShards {
		return nil, fmt.Errorf("%w: n=%d, k=%d", ErrInvalidParams, n, k)
	}

	stripeSize := wordSize * k
	padding := stripeSize - (lengthPrefixSize+len(data))%stripeSize
	framed := make([]byte, lengthPrefixSize+len(data)+padding)
	binary.LittleEndian.PutUint64(framed, uint64(len(data)))
	copy(framed[lengthPrefixSize:], data)

	stripes := len(framed) / stripeSize
	shards := make([][]byte, n)
	for i := range shards {
		shards[i] = make([]byte, 0, stripes*wordSize)
	}

	// The x-coordinates 0 ... k-1 are shared by every stripe; the stripe
	// words are the y-coordinates.
	xs := make([]GF232, k)
	for j := range xs {
		xs[j] = GF232(j)
	}
	ys := make([]GF232, k)

	for s := 0; s < stripes; s++ {
		stripe := framed[s*stripeSize : (s+1)*stripeSize]
		for j := 0; j < k; j++ {
			ys[j] = GF232(binary.LittleEndian.Uint32(stripe[j*wordSize:]))
		}
		poly := Interpolate(xs, ys)
		for i := 0; i < n; i++ {
			word := uint32(poly.Apply(GF232(uint32(i))))
			shards[i] = binary.LittleEndian.AppendUint32(shards[i], word)
		}
	}
	return shards, nil
}

// Decode reconstructs the original byte string from at least k shards.
// Shard indices must be distinct and every shard must carry the same
// number of bytes, a multiple of the 4-byte word size. When more than k
// shards are supplied, only the first k take part in reconstruction; the
// extras are validated and otherwise ignored.
//
// Decode trusts the supplied bytes and indices. It cannot detect
// corruption: intact shards of one Encode call round-trip exactly, while
// tampered input decodes to garbage without error.
func Decode(shards []Shard, k int) ([]byte, error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: k=%d", ErrInvalidParams, k)
	}
	if len(shards) < k {
		return nil, fmt.Errorf("%w: have %d, need %d", ErrTooFewShards, len(shards), k)
	}

	shardSize := len(shards[0].Data)
	seen := make(map[uint32]bool, len(shards))
	for _, s := range shards {
		if len(s.Data) != shardSize {
			return nil, fmt.Errorf("%w: shard %d has %d bytes, shard %d has %d",
				ErrShardSizeMismatch, s.Index, len(s.Data), shards[0].Index, shardSize)
		}
		if seen[s.Index] {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateIndex, s.Index)
		}
		seen[s.Index] = true
	}
	if shardSize%wordSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrShardWordAlign, shardSize)
	}

	stripes := shardSize / wordSize
	xs := make([]GF232, k)
	for j := 0; j < k; j++ {
		xs[j] = GF232(shards[j].Index)
	}
	ys := make([]GF232, k)

	framed := make([]byte, 0, stripes*k*wordSize)
	for s := 0; s < stripes; s++ {
		for j := 0; j < k; j++ {
			ys[j] = GF232(binary.LittleEndian.Uint32(shards[j].Data[s*wordSize:]))
		}
		poly := Interpolate(xs, ys)
		for i := 0; i < k; i++ {
			framed = binary.LittleEndian.AppendUint32(framed, uint32(poly.Apply(GF232(uint32(i)))))
		}
	}

	if len(framed) < lengthPrefixSize {
		return nil, fmt.Errorf("%w: %d bytes decoded", ErrShortPayload, len(framed))
	}
	length := binary.LittleEndian.Uint64(framed)
	// A corrupt prefix may claim more bytes than were decoded; truncate to
	// what exists rather than failing, matching the garbage-in-garbage-out
	// contract.
	if length > uint64(len(framed)-lengthPrefixSize) {
		length = uint64(len(framed) - lengthPrefixSize)
	}
	return framed[lengthPrefixSize : lengthPrefixSize+int(length)], nil
}
