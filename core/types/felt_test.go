package types

import (
	"testing"
)

// goldilocksModulus is p = 2^64 - 2^32 + 1.
const goldilocksModulus = uint64(0xFFFFFFFF00000001)

func TestFeltWrapsModulus(t *testing.T) {
	a := NewFelt(goldilocksModulus - 1)
	b := NewFelt(2)
	var sum Felt
	sum.Add(&a, &b)
	if got := sum.Uint64(); got != 1 {
		t.Fatalf("(p-1)+2 = %d, want 1", got)
	}

	zero := NewFelt(0)
	one := NewFelt(1)
	var diff Felt
	diff.Sub(&zero, &one)
	if got := diff.Uint64(); got != goldilocksModulus-1 {
		t.Fatalf("0-1 = %d, want p-1", got)
	}
}

func TestFeltCanonicalReduction(t *testing.T) {
	// Values at or above p reduce on construction.
	e := NewFelt(goldilocksModulus)
	if !e.IsZero() {
		t.Fatalf("p did not reduce to zero: %s", e.String())
	}
	e = NewFelt(goldilocksModulus + 7)
	if got := e.Uint64(); got != 7 {
		t.Fatalf("p+7 reduced to %d, want 7", got)
	}
}

func TestWordBytesRoundtrip(t *testing.T) {
	w := NewWord(1, 0, 0xdeadbeef, goldilocksModulus-1)
	enc := w.Bytes()
	dec, err := WordFromBytes(enc[:])
	if err != nil {
		t.Fatalf("WordFromBytes: %v", err)
	}
	if dec != w {
		t.Fatalf("roundtrip mismatch: got %s want %s", dec, w)
	}
}

func TestWordFromBytesRejectsNonCanonical(t *testing.T) {
	// A limb encoding >= p is not canonical even though it decodes.
	var raw [WordBytes]byte
	for i := 0; i < 8; i++ {
		raw[i] = 0xff
	}
	if _, err := WordFromBytes(raw[:]); err == nil {
		t.Fatal("expected rejection of non-canonical limb")
	}
	if _, err := WordFromBytes(raw[:WordBytes-1]); err == nil {
		t.Fatal("expected rejection of short encoding")
	}
}

func TestWordHexRoundtrip(t *testing.T) {
	w := NewWord(42, 7, 0, 1)
	parsed, err := ParseWord(w.Hex())
	if err != nil {
		t.Fatalf("ParseWord: %v", err)
	}
	if parsed != w {
		t.Fatalf("hex roundtrip mismatch: got %s want %s", parsed, w)
	}
	if _, err := ParseWord("deadbeef"); err == nil {
		t.Fatal("expected rejection of missing 0x prefix")
	}
}
