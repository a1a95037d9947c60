package types

import "errors"

// MaxFungibleAmount is the largest amount a single fungible asset (and
// therefore a single stored balance) may carry. It is deliberately far
// below the field modulus so that wrap-around on balance arithmetic is
// structurally unreachable once every mutation is range-checked.
const MaxFungibleAmount uint64 = (1 << 63) - 1

var ErrInvalidAsset = errors.New("types: invalid fungible asset")

// Asset is a fungible asset in canonical word form:
//
//	[0] amount (canonical uint64, <= MaxFungibleAmount)
//	[1] 0 (padding, must stay zero)
//	[2] issuing faucet suffix
//	[3] issuing faucet prefix
//
// Assets are value types: moving one means removing it from one location
// and adding it to another, never both at once.
type Asset Word

// NewFungibleAsset builds an asset of the given faucet class and amount.
func NewFungibleAsset(faucet AccountID, amount uint64) Asset {
	return Asset{NewFelt(amount), NewFelt(0), faucet.Suffix, faucet.Prefix}
}

// Amount returns the canonical amount carried by the asset.
func (a Asset) Amount() uint64 {
	return a[0].Uint64()
}

// Faucet returns the id of the issuing authority for the asset class.
func (a Asset) Faucet() AccountID {
	return AccountID{Prefix: a[3], Suffix: a[2]}
}

// Word returns the asset in raw word form.
func (a Asset) Word() Word {
	return Word(a)
}

// Validate checks the canonical fungible layout: zero padding limb,
// bounded amount, non-zero faucet id.
func (a Asset) Validate() error {
	if !a[1].IsZero() {
		return ErrInvalidAsset
	}
	if a[0].Uint64() > MaxFungibleAmount {
		return ErrInvalidAsset
	}
	if a.Faucet().IsZero() {
		return ErrInvalidAsset
	}
	return nil
}
