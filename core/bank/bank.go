// Package bank implements the custodial ledger core: a per-depositor,
// per-asset balance map behind an initialization gate, and the emission
// of pay-to-id notes that return custody to the original depositor.
//
// The package computes a pure function of the environment state visible
// at invocation time and fails fast on any violated invariant. It never
// retries and never rolls back: the execution environment invokes one
// entry point per logical transaction and commits or discards all of its
// effects as a unit.
package bank

import (
	"github.com/tos-network/gbank/core/types"
	"github.com/tos-network/gbank/hostdb"
)

// Bank orchestrates the ledger entry points over an injected environment.
type Bank struct {
	env    hostdb.Env
	hasher hostdb.Hasher
}

// New binds a bank to its environment and hash primitive.
func New(env hostdb.Env, hasher hostdb.Hasher) *Bank {
	return &Bank{env: env, hasher: hasher}
}

// Initialize performs the single legal gate transition, enabling
// deposits and withdrawals. A second call fails with
// ErrAlreadyInitialized.
func (b *Bank) Initialize() error {
	return markInitialized(b.env)
}

// Initialized reports the gate state without mutating anything.
func (b *Bank) Initialized() bool {
	return readInitialized(b.env)
}

// GetBalance returns the stored balance for a depositor and asset class.
// It never fails; unseen keys read as zero.
func (b *Bank) GetBalance(depositor types.AccountID, faucet types.AccountID) uint64 {
	return readBalance(b.env, balanceKey(depositor, faucet))
}

// Deposit credits the depositor with the asset's amount and takes the
// asset into the bank vault. The asset must already be under the
// environment's control; this entry point updates bookkeeping and
// formally takes custody.
func (b *Bank) Deposit(depositor types.AccountID, asset types.Asset) error {
	if err := requireInitialized(b.env); err != nil {
		return err
	}
	if depositor.IsZero() || asset.Validate() != nil {
		return ErrMalformedInput
	}
	if asset.Amount() > MaxDepositAmount {
		return ErrDepositTooLarge
	}
	if err := credit(b.env, balanceKey(depositor, asset.Faucet()), asset.Amount()); err != nil {
		return err
	}
	b.env.AddAsset(asset)
	return nil
}

// Withdraw debits the depositor and emits a public pay-to-id note
// returning the asset to them, addressed by the recipient commitment for
// serial. Serial uniqueness is the caller's responsibility: a reused
// serial produces a duplicate recipient commitment that this core cannot
// detect.
func (b *Bank) Withdraw(depositor types.AccountID, asset types.Asset, serial types.Word, tag types.Felt) error {
	return b.WithdrawWithMetadata(depositor, asset, serial, tag, types.NewFelt(0), types.NoteTypePublic)
}

// WithdrawWithMetadata is Withdraw with caller-controlled aux data and
// note type, both forwarded verbatim to the environment.
func (b *Bank) WithdrawWithMetadata(depositor types.AccountID, asset types.Asset, serial types.Word, tag, aux types.Felt, noteType types.NoteType) error {
	if err := requireInitialized(b.env); err != nil {
		return err
	}
	if depositor.IsZero() || asset.Validate() != nil || !noteType.Valid() {
		return ErrMalformedInput
	}
	if err := debit(b.env, balanceKey(depositor, asset.Faucet()), asset.Amount()); err != nil {
		return err
	}

	recipient := b.hasher.RecipientDigest(serial, P2IDScriptRoot, recipientInputs(depositor))
	meta := types.NoteMetadata{
		Sender:        depositor,
		Tag:           tag,
		Aux:           aux,
		Type:          noteType,
		ExecutionHint: types.NewFelt(0),
	}
	return b.emitNote(meta, recipient, asset)
}

// ApplyDepositNote consumes a deposit note: every attached asset is
// deposited for the note's sender.
func (b *Bank) ApplyDepositNote(sender types.AccountID, assets []types.Asset) error {
	if len(assets) == 0 {
		return ErrMalformedInput
	}
	for _, asset := range assets {
		if err := b.Deposit(sender, asset); err != nil {
			return err
		}
	}
	return nil
}

// ApplyWithdrawRequest consumes a withdraw-request note: the frozen
// 12-felt input vector is decoded, the routing tag is resolved through
// the advice provider under commitment verification, and the withdrawal
// is driven for the note's sender.
func (b *Bank) ApplyWithdrawRequest(sender types.AccountID, inputs []types.Felt) error {
	req, err := ParseWithdrawRequest(inputs)
	if err != nil {
		return err
	}
	tag, err := b.resolveTag(req.TagCommitment)
	if err != nil {
		return err
	}
	return b.Withdraw(sender, req.Asset, req.SerialNum, tag)
}
