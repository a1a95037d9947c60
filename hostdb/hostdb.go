// Package hostdb defines the narrow interfaces through which the ledger
// core reaches its execution environment: account storage slots, the
// asset vault, the outgoing note set and the advice provider. The core
// treats every primitive as synchronous and non-fallible except where an
// error is part of the contract; cross-transaction atomicity is owned by
// the environment, not by the core.
package hostdb

import (
	"errors"

	"github.com/google/uuid"
	"github.com/tos-network/gbank/core/types"
)

var (
	// ErrAssetNotHeld indicates a vault removal for units the vault
	// does not hold.
	ErrAssetNotHeld = errors.New("hostdb: asset not held in vault")

	// ErrUnknownNote indicates an asset attachment to a note index
	// that was never created.
	ErrUnknownNote = errors.New("hostdb: unknown note index")
)

// NoteIndex identifies an outgoing note within the current environment.
type NoteIndex uint32

// NoteRecord is the environment-level representation of an emitted note.
type NoteRecord struct {
	// ID is an operator-facing handle assigned by the environment at
	// creation; it has no protocol meaning.
	ID uuid.UUID

	Meta      types.NoteMetadata
	Recipient types.Digest
	Assets    []types.Asset
}

// Storage is the slot-indexed account storage owned by the ledger.
// Item slots hold single words; map slots hold word->word entries with
// an implicit zero value for unseen keys.
type Storage interface {
	GetItem(index uint8) types.Word
	SetItem(index uint8, value types.Word)
	GetMapItem(index uint8, key types.Word) types.Word
	SetMapItem(index uint8, key types.Word, value types.Word)
}

// Vault is the asset-custody sub-state of the ledger account, distinct
// from its slot storage.
type Vault interface {
	// AddAsset takes custody of the asset's units.
	AddAsset(asset types.Asset)

	// RemoveAsset releases the asset's units, failing with
	// ErrAssetNotHeld when the vault holds fewer units of the class.
	RemoveAsset(asset types.Asset) error

	// Held reports the units of a fungible class currently in custody.
	Held(faucet types.AccountID) uint64
}

// NoteStore allocates outgoing note records. It is the sole channel by
// which value leaves the ledger.
type NoteStore interface {
	CreateNote(meta types.NoteMetadata, recipient types.Digest) NoteIndex
	AddNoteAsset(index NoteIndex, asset types.Asset) error

	// Notes enumerates emitted notes in creation order, for tooling
	// and tests.
	Notes() []NoteRecord
}

// AdviceProvider resolves caller-supplied preimages by commitment. The
// environment verifies the commitment before serving a value; a fake
// used in tests must do the same.
type AdviceProvider interface {
	Lookup(commitment types.Word) ([]types.Felt, bool)
}

// Hasher is the opaque collision-resistant hash primitive supplied by
// the environment for recipient computation.
type Hasher interface {
	HashElements(elems []types.Felt) types.Digest
	RecipientDigest(serial types.Word, scriptRoot types.Digest, inputs []types.Felt) types.Digest
}

// Env aggregates every environment surface a single ledger invocation
// may touch.
type Env interface {
	Storage
	Vault
	NoteStore
	AdviceProvider
}
