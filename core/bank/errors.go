package bank

import "errors"

var (
	// ErrAlreadyInitialized indicates a second initialize call; the
	// flag has exactly one legal transition.
	ErrAlreadyInitialized = errors.New("bank: already initialized")

	// ErrNotInitialized indicates a mutating call before initialize.
	ErrNotInitialized = errors.New("bank: not initialized")

	// ErrDepositTooLarge indicates a deposit above MaxDepositAmount.
	ErrDepositTooLarge = errors.New("bank: deposit exceeds policy maximum")

	// ErrInsufficientFunds indicates a debit above the stored balance.
	ErrInsufficientFunds = errors.New("bank: insufficient funds")

	// ErrAssetNotHeld indicates the vault lacks units the ledger
	// believes it holds. Unreachable while ledger invariants hold; its
	// occurrence is a consistency bug, not a user error.
	ErrAssetNotHeld = errors.New("bank: asset not held by vault")

	// ErrMalformedInput indicates wrong-arity or wrong-layout argument
	// vectors.
	ErrMalformedInput = errors.New("bank: malformed input")

	// ErrUnknownCommitment indicates no advice preimage matches a
	// routing-tag commitment.
	ErrUnknownCommitment = errors.New("bank: no advice preimage matches commitment")

	// ErrBalanceOverflow indicates a credit that would push a balance
	// past MaxFungibleAmount.
	ErrBalanceOverflow = errors.New("bank: balance overflow")
)
