package bank

import (
	"github.com/tos-network/gbank/core/types"
	"github.com/tos-network/gbank/hostdb"
)

// Persisted state layout:
//
//	slot 0 (item): initialization flag word [flag,0,0,0]
//	slot 1 (map):  [dep.prefix, dep.suffix, faucet.prefix, faucet.suffix]
//	               -> [balance, 0, 0, 0]
//
// Balance entries are created implicitly on first credit and never
// deleted; a zero word and an absent entry are indistinguishable.

func readInitialized(s hostdb.Storage) bool {
	flag := s.GetItem(SlotInitFlag)
	return !flag[0].IsZero()
}

func writeInitialized(s hostdb.Storage) {
	s.SetItem(SlotInitFlag, types.NewWord(1, 0, 0, 0))
}

func markInitialized(s hostdb.Storage) error {
	if readInitialized(s) {
		return ErrAlreadyInitialized
	}
	writeInitialized(s)
	return nil
}

func requireInitialized(s hostdb.Storage) error {
	if !readInitialized(s) {
		return ErrNotInitialized
	}
	return nil
}

// balanceKey derives the balance map key for a depositor and asset class.
func balanceKey(depositor types.AccountID, faucet types.AccountID) types.Word {
	return types.Word{depositor.Prefix, depositor.Suffix, faucet.Prefix, faucet.Suffix}
}

func readBalance(s hostdb.Storage, key types.Word) uint64 {
	entry := s.GetMapItem(SlotBalances, key)
	return entry[0].Uint64()
}

func writeBalance(s hostdb.Storage, key types.Word, balance uint64) {
	s.SetMapItem(SlotBalances, key, types.NewWord(balance, 0, 0, 0))
}
