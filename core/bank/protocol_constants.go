package bank

import "github.com/tos-network/gbank/core/types"

// Protocol-level frozen constants for the custodial bank v1.
//
// The slot layout and the claim-program root are part of the on-chain
// compatibility surface; any change is a protocol upgrade that strands
// existing state and in-flight notes, not a refactor.
const (
	// SlotInitFlag holds the initialization flag word [flag,0,0,0].
	SlotInitFlag uint8 = 0

	// SlotBalances holds the per-depositor, per-asset balance map.
	SlotBalances uint8 = 1

	// MaxDepositAmount is the policy cap on a single deposit.
	MaxDepositAmount uint64 = 1_000_000

	// RecipientInputLen is the fixed arity of claim-program inputs:
	// [suffix, prefix, 0, 0, 0, 0, 0, 0]. The claim-program build
	// expects exactly this padding; a shorter vector is a silent
	// protocol break, not a runtime error.
	RecipientInputLen = 8

	// WithdrawRequestInputLen is the fixed arity of a withdraw-request
	// note's input vector (asset word, serial word, tag commitment).
	WithdrawRequestInputLen = 12

	// LocalTagPrefix is the 2-bit local-any marker in the top bits of
	// a routing tag.
	LocalTagPrefix uint32 = 0xC000_0000

	// LocalTagBits is how many account-prefix bits a local routing tag
	// embeds within its 30-bit payload space.
	LocalTagBits = 14
)

// P2IDScriptRoot identifies the pay-to-id claim program that executes
// when an emitted note is consumed. The value is pinned to a specific
// claim-program build: it must be byte-identical to the constant baked
// into that build or claims fail silently at the receiving end.
var P2IDScriptRoot = types.NewWord(
	15783632360113277539,
	7403765918285273520,
	15691985194755641846,
	10399643920503194563,
)
