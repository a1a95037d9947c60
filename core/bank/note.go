package bank

import (
	"errors"

	"github.com/tos-network/gbank/core/types"
	"github.com/tos-network/gbank/hostdb"
)

// recipientInputs assembles the ordered claim inputs for a pay-to-id
// note addressed to claimant. The arity and padding are frozen
// (RecipientInputLen); the claim program reads exactly this vector.
func recipientInputs(claimant types.AccountID) []types.Felt {
	inputs := make([]types.Felt, RecipientInputLen)
	inputs[0] = claimant.Suffix
	inputs[1] = claimant.Prefix
	return inputs
}

// emitNote allocates the outgoing note, releases the asset from the bank
// vault and attaches it to the note. This is the sole channel by which
// value leaves the ledger. A failed vault release means the balance map
// and the vault disagree; the environment discards the whole transaction
// on the returned error.
func (b *Bank) emitNote(meta types.NoteMetadata, recipient types.Digest, asset types.Asset) error {
	idx := b.env.CreateNote(meta, recipient)
	if err := b.env.RemoveAsset(asset); err != nil {
		return mapVaultError(err)
	}
	if err := b.env.AddNoteAsset(idx, asset); err != nil {
		return mapVaultError(err)
	}
	return nil
}

func mapVaultError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, hostdb.ErrAssetNotHeld) || errors.Is(err, hostdb.ErrUnknownNote) {
		return ErrAssetNotHeld
	}
	return err
}
