package bank

import (
	"testing"

	"github.com/tos-network/gbank/core/types"
	"github.com/tos-network/gbank/crypto"
	"github.com/tos-network/gbank/hostdb/memorydb"
)

// The slot layout is a compatibility surface: these tests pin the raw
// words an external environment observes.

func TestInitFlagSlotLayout(t *testing.T) {
	env := memorydb.New()
	b := New(env, crypto.Hasher{})

	if got := env.GetItem(SlotInitFlag); !got.IsZero() {
		t.Fatalf("fresh flag word = %s, want zero", got)
	}
	if err := b.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if got := env.GetItem(SlotInitFlag); got != types.NewWord(1, 0, 0, 0) {
		t.Fatalf("flag word = %s, want [1,0,0,0]", got)
	}
}

func TestBalanceSlotLayout(t *testing.T) {
	env := memorydb.New()
	b := New(env, crypto.Hasher{})
	if err := b.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	dep := types.NewAccountID(0x11, 0x22)
	faucet := types.NewAccountID(0x33, 0x44)
	if err := b.Deposit(dep, types.NewFungibleAsset(faucet, 77)); err != nil {
		t.Fatalf("Deposit: %v", err)
	}

	key := types.NewWord(0x11, 0x22, 0x33, 0x44) // [dep.prefix, dep.suffix, faucet.prefix, faucet.suffix]
	if got := env.GetMapItem(SlotBalances, key); got != types.NewWord(77, 0, 0, 0) {
		t.Fatalf("balance word = %s, want [77,0,0,0]", got)
	}
}

func TestBalanceKeySeparatesAccounts(t *testing.T) {
	depA := types.NewAccountID(1, 2)
	depB := types.NewAccountID(2, 1)
	faucet := types.NewAccountID(3, 4)

	if balanceKey(depA, faucet) == balanceKey(depB, faucet) {
		t.Fatal("distinct depositors share a balance key")
	}
	if balanceKey(depA, faucet) == balanceKey(depA, types.NewAccountID(4, 3)) {
		t.Fatal("distinct faucets share a balance key")
	}
}

func TestBalanceHelpersRoundtrip(t *testing.T) {
	env := memorydb.New()
	key := balanceKey(types.NewAccountID(1, 2), types.NewAccountID(3, 4))

	if got := readBalance(env, key); got != 0 {
		t.Fatalf("fresh balance = %d, want 0", got)
	}
	writeBalance(env, key, 123)
	if got := readBalance(env, key); got != 123 {
		t.Fatalf("balance = %d, want 123", got)
	}
}

func TestGateHelpers(t *testing.T) {
	env := memorydb.New()
	if err := requireInitialized(env); err != ErrNotInitialized {
		t.Fatalf("requireInitialized on fresh state = %v, want ErrNotInitialized", err)
	}
	if err := markInitialized(env); err != nil {
		t.Fatalf("markInitialized: %v", err)
	}
	if err := requireInitialized(env); err != nil {
		t.Fatalf("requireInitialized after mark: %v", err)
	}
	if err := markInitialized(env); err != ErrAlreadyInitialized {
		t.Fatalf("second markInitialized = %v, want ErrAlreadyInitialized", err)
	}
}
