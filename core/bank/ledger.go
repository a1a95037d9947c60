package bank

import (
	"github.com/tos-network/gbank/core/types"
	"github.com/tos-network/gbank/hostdb"
)

// credit adds amount to the stored balance. Every stored balance stays
// within [0, MaxFungibleAmount], so modular wrap-around can never be
// reached through this path; the bound check fails first.
func credit(s hostdb.Storage, key types.Word, amount uint64) error {
	current := readBalance(s, key)
	if amount > types.MaxFungibleAmount-current {
		return ErrBalanceOverflow
	}
	writeBalance(s, key, current+amount)
	return nil
}

// debit subtracts amount from the stored balance. The pre-check is the
// invariant: a stored balance is never read back negative, because an
// underflowing debit fails here with no mutation.
func debit(s hostdb.Storage, key types.Word, amount uint64) error {
	current := readBalance(s, key)
	if current < amount {
		return ErrInsufficientFunds
	}
	writeBalance(s, key, current-amount)
	return nil
}
