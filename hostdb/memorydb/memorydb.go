// Package memorydb implements an in-memory ledger environment. It backs
// the test harness and doubles as the reference for the environment's
// atomic-commit contract via Snapshot/RevertToSnapshot.
package memorydb

import (
	"sync"

	"github.com/google/uuid"
	"github.com/tos-network/gbank/core/types"
	"github.com/tos-network/gbank/hostdb"
)

type envState struct {
	items    map[uint8]types.Word
	mapItems map[uint8]map[types.Word]types.Word
	vault    map[types.AccountID]uint64
	notes    []hostdb.NoteRecord
	advice   map[types.Word][]types.Felt
}

func newEnvState() *envState {
	return &envState{
		items:    make(map[uint8]types.Word),
		mapItems: make(map[uint8]map[types.Word]types.Word),
		vault:    make(map[types.AccountID]uint64),
		advice:   make(map[types.Word][]types.Felt),
	}
}

func (s *envState) copy() *envState {
	out := newEnvState()
	for k, v := range s.items {
		out.items[k] = v
	}
	for slot, m := range s.mapItems {
		cm := make(map[types.Word]types.Word, len(m))
		for k, v := range m {
			cm[k] = v
		}
		out.mapItems[slot] = cm
	}
	for k, v := range s.vault {
		out.vault[k] = v
	}
	out.notes = make([]hostdb.NoteRecord, len(s.notes))
	for i, n := range s.notes {
		n.Assets = append([]types.Asset(nil), n.Assets...)
		out.notes[i] = n
	}
	for k, v := range s.advice {
		out.advice[k] = append([]types.Felt(nil), v...)
	}
	return out
}

// Database is an in-memory hostdb.Env.
type Database struct {
	lock      sync.RWMutex
	state     *envState
	snapshots []*envState
}

// New returns an empty in-memory environment.
func New() *Database {
	return &Database{state: newEnvState()}
}

func (db *Database) GetItem(index uint8) types.Word {
	db.lock.RLock()
	defer db.lock.RUnlock()

	return db.state.items[index]
}

func (db *Database) SetItem(index uint8, value types.Word) {
	db.lock.Lock()
	defer db.lock.Unlock()

	db.state.items[index] = value
}

func (db *Database) GetMapItem(index uint8, key types.Word) types.Word {
	db.lock.RLock()
	defer db.lock.RUnlock()

	return db.state.mapItems[index][key]
}

func (db *Database) SetMapItem(index uint8, key types.Word, value types.Word) {
	db.lock.Lock()
	defer db.lock.Unlock()

	m := db.state.mapItems[index]
	if m == nil {
		m = make(map[types.Word]types.Word)
		db.state.mapItems[index] = m
	}
	m[key] = value
}

func (db *Database) AddAsset(asset types.Asset) {
	db.lock.Lock()
	defer db.lock.Unlock()

	db.state.vault[asset.Faucet()] += asset.Amount()
}

func (db *Database) RemoveAsset(asset types.Asset) error {
	db.lock.Lock()
	defer db.lock.Unlock()

	held := db.state.vault[asset.Faucet()]
	if held < asset.Amount() {
		return hostdb.ErrAssetNotHeld
	}
	db.state.vault[asset.Faucet()] = held - asset.Amount()
	return nil
}

func (db *Database) Held(faucet types.AccountID) uint64 {
	db.lock.RLock()
	defer db.lock.RUnlock()

	return db.state.vault[faucet]
}

func (db *Database) CreateNote(meta types.NoteMetadata, recipient types.Digest) hostdb.NoteIndex {
	db.lock.Lock()
	defer db.lock.Unlock()

	db.state.notes = append(db.state.notes, hostdb.NoteRecord{
		ID:        uuid.New(),
		Meta:      meta,
		Recipient: recipient,
	})
	return hostdb.NoteIndex(len(db.state.notes) - 1)
}

func (db *Database) AddNoteAsset(index hostdb.NoteIndex, asset types.Asset) error {
	db.lock.Lock()
	defer db.lock.Unlock()

	if int(index) >= len(db.state.notes) {
		return hostdb.ErrUnknownNote
	}
	n := &db.state.notes[index]
	n.Assets = append(n.Assets, asset)
	return nil
}

func (db *Database) Notes() []hostdb.NoteRecord {
	db.lock.RLock()
	defer db.lock.RUnlock()

	out := make([]hostdb.NoteRecord, len(db.state.notes))
	for i, n := range db.state.notes {
		n.Assets = append([]types.Asset(nil), n.Assets...)
		out[i] = n
	}
	return out
}

func (db *Database) Lookup(commitment types.Word) ([]types.Felt, bool) {
	db.lock.RLock()
	defer db.lock.RUnlock()

	vals, ok := db.state.advice[commitment]
	if !ok {
		return nil, false
	}
	return append([]types.Felt(nil), vals...), true
}

// SetAdvice installs a commitment preimage, as a caller would extend the
// environment's advice map before submitting a transaction.
func (db *Database) SetAdvice(commitment types.Word, values []types.Felt) {
	db.lock.Lock()
	defer db.lock.Unlock()

	db.state.advice[commitment] = append([]types.Felt(nil), values...)
}

// Snapshot captures the current environment state and returns a revision
// id for RevertToSnapshot.
func (db *Database) Snapshot() int {
	db.lock.Lock()
	defer db.lock.Unlock()

	db.snapshots = append(db.snapshots, db.state.copy())
	return len(db.snapshots) - 1
}

// RevertToSnapshot restores the state captured by Snapshot, discarding
// the reverted revision and any taken after it.
func (db *Database) RevertToSnapshot(rev int) {
	db.lock.Lock()
	defer db.lock.Unlock()

	if rev < 0 || rev >= len(db.snapshots) {
		return
	}
	db.state = db.snapshots[rev]
	db.snapshots = db.snapshots[:rev]
}
