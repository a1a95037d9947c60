package bank

import (
	"testing"

	"github.com/tos-network/gbank/core/types"
	"github.com/tos-network/gbank/crypto"
	"github.com/tos-network/gbank/hostdb/memorydb"
)

func TestCreditDebit(t *testing.T) {
	env := memorydb.New()
	key := balanceKey(testDepositor, testFaucet)

	if err := credit(env, key, 100); err != nil {
		t.Fatalf("credit: %v", err)
	}
	if err := credit(env, key, 50); err != nil {
		t.Fatalf("credit: %v", err)
	}
	if got := readBalance(env, key); got != 150 {
		t.Fatalf("balance = %d, want 150", got)
	}

	if err := debit(env, key, 150); err != nil {
		t.Fatalf("debit: %v", err)
	}
	if got := readBalance(env, key); got != 0 {
		t.Fatalf("balance = %d, want 0", got)
	}
	if err := debit(env, key, 1); err != ErrInsufficientFunds {
		t.Fatalf("debit from zero = %v, want ErrInsufficientFunds", err)
	}
}

func TestCreditOverflowBound(t *testing.T) {
	env := memorydb.New()
	key := balanceKey(testDepositor, testFaucet)

	if err := credit(env, key, types.MaxFungibleAmount); err != nil {
		t.Fatalf("credit to bound: %v", err)
	}
	if err := credit(env, key, 1); err != ErrBalanceOverflow {
		t.Fatalf("credit past bound = %v, want ErrBalanceOverflow", err)
	}
	if got := readBalance(env, key); got != types.MaxFungibleAmount {
		t.Fatalf("failed credit mutated balance: %d", got)
	}
}

// A balance entry without matching vault custody is a consistency bug;
// the withdraw surfaces it as ErrAssetNotHeld instead of emitting.
func TestWithdrawSurfacesVaultInconsistency(t *testing.T) {
	env := memorydb.New()
	b := New(env, crypto.Hasher{})
	if err := b.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	writeBalance(env, balanceKey(testDepositor, testFaucet), 500)

	err := b.Withdraw(testDepositor, types.NewFungibleAsset(testFaucet, 100),
		types.NewWord(1, 2, 3, 4), LocalTagForAccount(testDepositor))
	if err != ErrAssetNotHeld {
		t.Fatalf("error = %v, want ErrAssetNotHeld", err)
	}
}
