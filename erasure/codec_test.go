package erasure

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math/rand"
	"testing"
)

func TestEncodeShardUniformity(t *testing.T) {
	data := []byte("hello world, this is test data for erasure coding!")
	n, k := 6, 4

	shards, err := Encode(data, n, k)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(shards) != n {
		t.Fatalf("expected %d shards, got %d", n, len(shards))
	}

	// All shards equal length: 4 * ceil((len+9) / 4k).
	stripeSize := 4 * k
	wantLen := 4 * ((len(data) + 9 + stripeSize - 1) / stripeSize)
	for i, s := range shards {
		if len(s) != wantLen {
			t.Fatalf("shard %d has %d bytes, want %d", i, len(s), wantLen)
		}
	}
}

func TestEncodeDecodeFirstK(t *testing.T) {
	data := []byte("any k shards reconstruct the original, data shards included")
	n, k := 7, 3

	shards, err := Encode(data, n, k)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	pairs := make([]Shard, k)
	for i := 0; i < k; i++ {
		pairs[i] = Shard{Index: uint32(i), Data: shards[i]}
	}
	got, err := Decode(pairs, k)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Fatalf("round trip mismatch: got %q, want %q", got, data)
	}
}

func TestEncodeDecodeAllSubsets(t *testing.T) {
	data := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x00, 0x11, 0x22}
	n, k := 5, 3

	shards, err := Encode(data, n, k)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	// Every 3-subset of the 5 shards must reconstruct the data.
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			for c := b + 1; c < n; c++ {
				pairs := []Shard{
					{Index: uint32(c), Data: shards[c]},
					{Index: uint32(a), Data: shards[a]},
					{Index: uint32(b), Data: shards[b]},
				}
				got, err := Decode(pairs, k)
				if err != nil {
					t.Fatalf("Decode({%d,%d,%d}): %v", a, b, c, err)
				}
				if !bytes.Equal(got, data) {
					t.Fatalf("subset {%d,%d,%d} decoded wrong bytes", a, b, c)
				}
			}
		}
	}
}

// TestEncodeDecodeRandom mirrors the canonical acceptance test: 10000
// random bytes, 10 shards with threshold 5, decoded from 5 shards picked
// at random.
func TestEncodeDecodeRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	data := make([]byte, 10000)
	rng.Read(data)

	shards, err := Encode(data, 10, 5)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	indices := rng.Perm(10)[:5]
	pairs := make([]Shard, 0, 5)
	for _, i := range indices {
		pairs = append(pairs, Shard{Index: uint32(i), Data: shards[i]})
	}

	got, err := Decode(pairs, 5)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Fatal("random round trip mismatch")
	}
}

func TestDecodePermutationInvariant(t *testing.T) {
	data := []byte("permuting the supplied pairs must not change the output")
	shards, err := Encode(data, 4, 2)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	forward := []Shard{{1, shards[1]}, {3, shards[3]}}
	reverse := []Shard{{3, shards[3]}, {1, shards[1]}}

	a, err := Decode(forward, 2)
	if err != nil {
		t.Fatalf("Decode forward: %v", err)
	}
	b, err := Decode(reverse, 2)
	if err != nil {
		t.Fatalf("Decode reverse: %v", err)
	}
	if !bytes.Equal(a, b) || !bytes.Equal(a, data) {
		t.Fatal("decode output depends on pair order")
	}
}

func TestDecodeIgnoresExtraShards(t *testing.T) {
	data := []byte("extras beyond the first k are validated but unused")
	shards, err := Encode(data, 5, 2)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	pairs := []Shard{
		{4, shards[4]},
		{0, shards[0]},
		{2, shards[2]},
		{1, shards[1]},
	}
	got, err := Decode(pairs, 2)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Fatal("decode with extra shards mismatched")
	}
}

// TestEncodeEmptyData covers the all-zero case: an empty
// input still frames a length prefix and padding, and every shard of the
// zero polynomial is zero bytes.
func TestEncodeEmptyData(t *testing.T) {
	shards, err := Encode(nil, 3, 2)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	// Framed buffer: 8 zero length bytes + 8 zero padding bytes. Two
	// stripes of two words, every word zero, so each shard is 8 zero bytes.
	for i, s := range shards {
		if len(s) != 8 {
			t.Fatalf("shard %d has %d bytes, want 8", i, len(s))
		}
		if !bytes.Equal(s, make([]byte, 8)) {
			t.Fatalf("shard %d is not all zero", i)
		}
	}

	got, err := Decode([]Shard{{2, shards[2]}, {0, shards[0]}}, 2)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("decoded %d bytes, want 0", len(got))
	}
}

// TestEncodeSingleByte pins the framed layout for data=[0x01], n=2, k=1:
// twelve framed bytes, three stripes, and byte-identical shards (a
// degree-0 interpolant evaluates the same everywhere).
func TestEncodeSingleByte(t *testing.T) {
	shards, err := Encode([]byte{0x01}, 2, 1)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	want := []byte{
		0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // length = 1
		0x01,             // data
		0x00, 0x00, 0x00, // padding
	}
	if !bytes.Equal(shards[0], want) {
		t.Fatalf("shard 0 = %x, want %x", shards[0], want)
	}
	if !bytes.Equal(shards[0], shards[1]) {
		t.Fatal("k=1 shards are not byte-identical")
	}

	for i := uint32(0); i < 2; i++ {
		got, err := Decode([]Shard{{i, shards[i]}}, 1)
		if err != nil {
			t.Fatalf("Decode shard %d: %v", i, err)
		}
		if !bytes.Equal(got, []byte{0x01}) {
			t.Fatalf("decoded %x, want 01", got)
		}
	}
}

// TestEncodeSingleShard checks k = n = 1: the one shard is the framed
// buffer byte for byte.
func TestEncodeSingleShard(t *testing.T) {
	data := []byte("abc")
	shards, err := Encode(data, 1, 1)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	framedLen := 8 + len(data) + (4 - (8+len(data))%4)
	if len(shards[0]) != framedLen {
		t.Fatalf("shard length = %d, want %d", len(shards[0]), framedLen)
	}
	var prefix [8]byte
	binary.LittleEndian.PutUint64(prefix[:], uint64(len(data)))
	if !bytes.Equal(shards[0][:8], prefix[:]) {
		t.Fatalf("length prefix = %x", shards[0][:8])
	}
	if !bytes.Equal(shards[0][8:8+len(data)], data) {
		t.Fatal("shard does not carry the framed data verbatim")
	}
}

// TestEncodePaddingNeverZero covers the aligned boundary: when prefix plus
// data already fill whole stripes, a full stripe of padding is added.
func TestEncodePaddingNeverZero(t *testing.T) {
	k := 4
	stripeSize := 4 * k
	data := make([]byte, stripeSize-8) // 8 + len(data) is stripe-aligned

	shards, err := Encode(data, k, k)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	// Two stripes: one for prefix+data, one full stripe of padding.
	wantLen := 4 * 2
	for i, s := range shards {
		if len(s) != wantLen {
			t.Fatalf("shard %d has %d bytes, want %d", i, len(s), wantLen)
		}
	}

	pairs := make([]Shard, k)
	for i := range pairs {
		pairs[i] = Shard{Index: uint32(i), Data: shards[i]}
	}
	got, err := Decode(pairs, k)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Fatal("aligned-boundary round trip mismatch")
	}
}

func TestEncodeNoRedundancy(t *testing.T) {
	// n = k is legal; it just tolerates no loss.
	data := []byte{1, 2, 3, 4, 5}
	shards, err := Encode(data, 3, 3)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	pairs := []Shard{{0, shards[0]}, {1, shards[1]}, {2, shards[2]}}
	got, err := Decode(pairs, 3)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Fatal("n = k round trip mismatch")
	}
}

func TestEncodeInvalidParams(t *testing.T) {
	if _, err := Encode([]byte("data"), 3, 0); !errors.Is(err, ErrInvalidParams) {
		t.Fatalf("k=0: got %v, want ErrInvalidParams", err)
	}
	if _, err := Encode([]byte("data"), 2, 3); !errors.Is(err, ErrInvalidParams) {
		t.Fatalf("k>n: got %v, want ErrInvalidParams", err)
	}
	if _, err := Encode([]byte("data"), 0, 0); !errors.Is(err, ErrInvalidParams) {
		t.Fatalf("n=0: got %v, want ErrInvalidParams", err)
	}
	if _, err := Encode([]byte("data"), -1, -1); !errors.Is(err, ErrInvalidParams) {
		t.Fatalf("negative: got %v, want ErrInvalidParams", err)
	}
}

func TestDecodeInvalidInput(t *testing.T) {
	data := []byte("decode validation")
	shards, err := Encode(data, 4, 2)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	if _, err := Decode([]Shard{{0, shards[0]}}, 0); !errors.Is(err, ErrInvalidParams) {
		t.Fatalf("k=0: got %v, want ErrInvalidParams", err)
	}

	if _, err := Decode([]Shard{{0, shards[0]}}, 2); !errors.Is(err, ErrTooFewShards) {
		t.Fatalf("too few: got %v, want ErrTooFewShards", err)
	}

	dup := []Shard{{1, shards[1]}, {1, shards[1]}}
	if _, err := Decode(dup, 2); !errors.Is(err, ErrDuplicateIndex) {
		t.Fatalf("duplicate: got %v, want ErrDuplicateIndex", err)
	}

	mismatch := []Shard{{0, shards[0]}, {1, shards[1][:4]}}
	if _, err := Decode(mismatch, 2); !errors.Is(err, ErrShardSizeMismatch) {
		t.Fatalf("size mismatch: got %v, want ErrShardSizeMismatch", err)
	}

	ragged := []Shard{{0, shards[0][:6]}, {1, shards[1][:6]}}
	if _, err := Decode(ragged, 2); !errors.Is(err, ErrShardWordAlign) {
		t.Fatalf("word align: got %v, want ErrShardWordAlign", err)
	}

	empty := []Shard{{0, nil}, {1, nil}}
	if _, err := Decode(empty, 2); !errors.Is(err, ErrShortPayload) {
		t.Fatalf("empty shards: got %v, want ErrShortPayload", err)
	}
}

// TestDecodeCorruptionUndetected documents the garbage-in-garbage-out
// contract: flipping shard bytes does not raise an error, it changes the
// output.
func TestDecodeCorruptionUndetected(t *testing.T) {
	data := []byte("the codec trusts its input bytes completely")
	shards, err := Encode(data, 4, 2)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	corrupted := append([]byte(nil), shards[3]...)
	corrupted[9] ^= 0xFF

	got, err := Decode([]Shard{{0, shards[0]}, {3, corrupted}}, 2)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if bytes.Equal(got, data) {
		t.Fatal("corrupted shard still decoded to the original data")
	}
}

func TestEncodeLargeThreshold(t *testing.T) {
	// A wider stripe exercises higher-degree interpolation.
	rng := rand.New(rand.NewSource(8))
	data := make([]byte, 333)
	rng.Read(data)

	n, k := 13, 9
	shards, err := Encode(data, n, k)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	perm := rng.Perm(n)[:k]
	pairs := make([]Shard, 0, k)
	for _, i := range perm {
		pairs = append(pairs, Shard{Index: uint32(i), Data: shards[i]})
	}
	got, err := Decode(pairs, k)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Fatal("large-threshold round trip mismatch")
	}
}
