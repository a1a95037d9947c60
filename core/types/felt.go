package types

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/consensys/gnark-crypto/field/goldilocks"
)

// Felt is an element of the 64-bit Goldilocks field p = 2^64 - 2^32 + 1.
// All ledger arithmetic wraps modulo p; callers that need integer
// semantics must range-check before operating.
type Felt = goldilocks.Element

const (
	// WordLen is the number of field elements in a Word.
	WordLen = 4

	// WordBytes is the canonical encoded size of a Word.
	WordBytes = WordLen * goldilocks.Bytes
)

var ErrInvalidWordEncoding = errors.New("types: invalid word encoding")

// NewFelt returns the field element for v reduced modulo p.
func NewFelt(v uint64) Felt {
	return goldilocks.NewElement(v)
}

// Word is a fixed tuple of four field elements, the atomic addressing and
// storage unit of the ledger environment.
type Word [WordLen]Felt

// Digest is a hash output in word form.
type Digest = Word

// NewWord builds a word from four canonical uint64 values, each reduced
// modulo p.
func NewWord(a, b, c, d uint64) Word {
	return Word{NewFelt(a), NewFelt(b), NewFelt(c), NewFelt(d)}
}

// Bytes returns the canonical 32-byte encoding: four 8-byte big-endian
// limbs in element order.
func (w Word) Bytes() [WordBytes]byte {
	var out [WordBytes]byte
	for i := range w {
		b := w[i].Bytes()
		copy(out[i*goldilocks.Bytes:], b[:])
	}
	return out
}

// WordFromBytes decodes the canonical 32-byte encoding produced by Bytes.
// Each limb must be a canonical field element.
func WordFromBytes(data []byte) (Word, error) {
	if len(data) != WordBytes {
		return Word{}, ErrInvalidWordEncoding
	}
	var w Word
	for i := range w {
		limb := data[i*goldilocks.Bytes : (i+1)*goldilocks.Bytes]
		w[i].SetBytes(limb)
		canonical := w[i].Bytes()
		if string(canonical[:]) != string(limb) {
			return Word{}, ErrInvalidWordEncoding
		}
	}
	return w, nil
}

// Hex returns the 0x-prefixed canonical encoding.
func (w Word) Hex() string {
	b := w.Bytes()
	return "0x" + hex.EncodeToString(b[:])
}

// ParseWord decodes a 0x-prefixed 64-digit hex word.
func ParseWord(s string) (Word, error) {
	if len(s) < 2 || s[:2] != "0x" {
		return Word{}, ErrInvalidWordEncoding
	}
	raw, err := hex.DecodeString(s[2:])
	if err != nil {
		return Word{}, ErrInvalidWordEncoding
	}
	return WordFromBytes(raw)
}

// IsZero reports whether every element of the word is zero.
func (w Word) IsZero() bool {
	return w == Word{}
}

// Elements returns the word as a felt slice, in order.
func (w Word) Elements() []Felt {
	out := make([]Felt, WordLen)
	copy(out, w[:])
	return out
}

func (w Word) String() string {
	return fmt.Sprintf("[%s, %s, %s, %s]", w[0].String(), w[1].String(), w[2].String(), w[3].String())
}
