package types

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
)

// AccountIDBytes is the canonical encoded size of an AccountID.
const AccountIDBytes = 16

var ErrInvalidAccountID = errors.New("types: invalid account id encoding")

// AccountID names a participant in the ledger environment. The two felts
// are assigned by the environment at account creation and never change.
type AccountID struct {
	Prefix Felt
	Suffix Felt
}

// NewAccountID builds an account id from canonical prefix/suffix values.
func NewAccountID(prefix, suffix uint64) AccountID {
	return AccountID{Prefix: NewFelt(prefix), Suffix: NewFelt(suffix)}
}

// Bytes returns the canonical 16-byte encoding, prefix limb first, each
// limb 8-byte big-endian.
func (id AccountID) Bytes() [AccountIDBytes]byte {
	var out [AccountIDBytes]byte
	binary.BigEndian.PutUint64(out[:8], id.Prefix.Uint64())
	binary.BigEndian.PutUint64(out[8:], id.Suffix.Uint64())
	return out
}

// Hex returns the 0x-prefixed canonical encoding.
func (id AccountID) Hex() string {
	b := id.Bytes()
	return "0x" + hex.EncodeToString(b[:])
}

// ParseAccountID decodes a 0x-prefixed 32-digit hex account id. Both limbs
// must be canonical field elements.
func ParseAccountID(s string) (AccountID, error) {
	if len(s) != 2+2*AccountIDBytes || s[:2] != "0x" {
		return AccountID{}, ErrInvalidAccountID
	}
	raw, err := hex.DecodeString(s[2:])
	if err != nil {
		return AccountID{}, ErrInvalidAccountID
	}
	prefix := binary.BigEndian.Uint64(raw[:8])
	suffix := binary.BigEndian.Uint64(raw[8:])
	id := NewAccountID(prefix, suffix)
	if id.Prefix.Uint64() != prefix || id.Suffix.Uint64() != suffix {
		return AccountID{}, ErrInvalidAccountID
	}
	return id, nil
}

// IsZero reports whether the id is the zero value, which no environment
// ever assigns.
func (id AccountID) IsZero() bool {
	return id.Prefix.IsZero() && id.Suffix.IsZero()
}
