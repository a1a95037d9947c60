// Package leveldb implements a persistent ledger environment over
// goleveldb. All writes are buffered in an overlay and land in a single
// batch on Commit, giving the driver the environment's all-or-nothing
// transaction rule: run an entry point, then Commit on success or
// Discard on failure.
package leveldb

import (
	"encoding/binary"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/tos-network/gbank/core/types"
	"github.com/tos-network/gbank/hostdb"
)

// Key scheme. One keyspace, single-byte prefixes.
var (
	itemPrefix   = []byte("i") // itemPrefix + slot -> word
	mapPrefix    = []byte("m") // mapPrefix + slot + key word -> word
	vaultPrefix  = []byte("v") // vaultPrefix + faucet id -> uint64
	notePrefix   = []byte("n") // notePrefix + big-endian index -> note record
	noteCountKey = []byte("N")
)

// Database is a goleveldb-backed hostdb.Env.
type Database struct {
	lock    sync.RWMutex
	db      *leveldb.DB
	pending map[string][]byte
	advice  map[types.Word][]types.Felt
}

// New opens (or creates) the environment database at path.
func New(path string) (*Database, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, err
	}
	return newDatabase(db), nil
}

func newDatabase(db *leveldb.DB) *Database {
	return &Database{
		db:      db,
		pending: make(map[string][]byte),
		advice:  make(map[types.Word][]types.Felt),
	}
}

// Close flushes nothing: uncommitted writes are dropped by design.
func (d *Database) Close() error {
	return d.db.Close()
}

func (d *Database) get(key []byte) []byte {
	if val, ok := d.pending[string(key)]; ok {
		return val
	}
	val, err := d.db.Get(key, nil)
	if err != nil {
		return nil
	}
	return val
}

func (d *Database) put(key, value []byte) {
	d.pending[string(key)] = append([]byte(nil), value...)
}

// Commit writes every pending mutation as one batch.
func (d *Database) Commit() error {
	d.lock.Lock()
	defer d.lock.Unlock()

	batch := new(leveldb.Batch)
	for k, v := range d.pending {
		batch.Put([]byte(k), v)
	}
	if err := d.db.Write(batch, nil); err != nil {
		return err
	}
	d.pending = make(map[string][]byte)
	return nil
}

// Discard drops every pending mutation.
func (d *Database) Discard() {
	d.lock.Lock()
	defer d.lock.Unlock()

	d.pending = make(map[string][]byte)
}

func itemKey(index uint8) []byte {
	return append(append([]byte(nil), itemPrefix...), index)
}

func mapKey(index uint8, key types.Word) []byte {
	kb := key.Bytes()
	out := append(append([]byte(nil), mapPrefix...), index)
	return append(out, kb[:]...)
}

func vaultKey(faucet types.AccountID) []byte {
	fb := faucet.Bytes()
	return append(append([]byte(nil), vaultPrefix...), fb[:]...)
}

func noteKey(index hostdb.NoteIndex) []byte {
	var ib [4]byte
	binary.BigEndian.PutUint32(ib[:], uint32(index))
	return append(append([]byte(nil), notePrefix...), ib[:]...)
}

func (d *Database) readWord(key []byte) types.Word {
	raw := d.get(key)
	if raw == nil {
		return types.Word{}
	}
	w, err := types.WordFromBytes(raw)
	if err != nil {
		return types.Word{}
	}
	return w
}

func (d *Database) GetItem(index uint8) types.Word {
	d.lock.RLock()
	defer d.lock.RUnlock()

	return d.readWord(itemKey(index))
}

func (d *Database) SetItem(index uint8, value types.Word) {
	d.lock.Lock()
	defer d.lock.Unlock()

	vb := value.Bytes()
	d.put(itemKey(index), vb[:])
}

func (d *Database) GetMapItem(index uint8, key types.Word) types.Word {
	d.lock.RLock()
	defer d.lock.RUnlock()

	return d.readWord(mapKey(index, key))
}

func (d *Database) SetMapItem(index uint8, key types.Word, value types.Word) {
	d.lock.Lock()
	defer d.lock.Unlock()

	vb := value.Bytes()
	d.put(mapKey(index, key), vb[:])
}

func (d *Database) readHeld(faucet types.AccountID) uint64 {
	raw := d.get(vaultKey(faucet))
	if len(raw) != 8 {
		return 0
	}
	return binary.BigEndian.Uint64(raw)
}

func (d *Database) writeHeld(faucet types.AccountID, amount uint64) {
	var ab [8]byte
	binary.BigEndian.PutUint64(ab[:], amount)
	d.put(vaultKey(faucet), ab[:])
}

func (d *Database) AddAsset(asset types.Asset) {
	d.lock.Lock()
	defer d.lock.Unlock()

	d.writeHeld(asset.Faucet(), d.readHeld(asset.Faucet())+asset.Amount())
}

func (d *Database) RemoveAsset(asset types.Asset) error {
	d.lock.Lock()
	defer d.lock.Unlock()

	held := d.readHeld(asset.Faucet())
	if held < asset.Amount() {
		return hostdb.ErrAssetNotHeld
	}
	d.writeHeld(asset.Faucet(), held-asset.Amount())
	return nil
}

func (d *Database) Held(faucet types.AccountID) uint64 {
	d.lock.RLock()
	defer d.lock.RUnlock()

	return d.readHeld(faucet)
}

func (d *Database) noteCount() uint32 {
	raw := d.get(noteCountKey)
	if len(raw) != 4 {
		return 0
	}
	return binary.BigEndian.Uint32(raw)
}

func (d *Database) writeNoteCount(n uint32) {
	var nb [4]byte
	binary.BigEndian.PutUint32(nb[:], n)
	d.put(noteCountKey, nb[:])
}

func (d *Database) CreateNote(meta types.NoteMetadata, recipient types.Digest) hostdb.NoteIndex {
	d.lock.Lock()
	defer d.lock.Unlock()

	idx := hostdb.NoteIndex(d.noteCount())
	record := newNoteRecord(meta, recipient)
	d.put(noteKey(idx), encodeNoteRecord(record))
	d.writeNoteCount(uint32(idx) + 1)
	return idx
}

func (d *Database) AddNoteAsset(index hostdb.NoteIndex, asset types.Asset) error {
	d.lock.Lock()
	defer d.lock.Unlock()

	raw := d.get(noteKey(index))
	if raw == nil {
		return hostdb.ErrUnknownNote
	}
	record, err := decodeNoteRecord(raw)
	if err != nil {
		return err
	}
	record.Assets = append(record.Assets, asset)
	d.put(noteKey(index), encodeNoteRecord(record))
	return nil
}

func (d *Database) Notes() []hostdb.NoteRecord {
	d.lock.RLock()
	defer d.lock.RUnlock()

	count := d.noteCount()
	out := make([]hostdb.NoteRecord, 0, count)
	for i := uint32(0); i < count; i++ {
		raw := d.get(noteKey(hostdb.NoteIndex(i)))
		if raw == nil {
			continue
		}
		record, err := decodeNoteRecord(raw)
		if err != nil {
			continue
		}
		out = append(out, record)
	}
	return out
}

// Lookup serves advice installed for the current invocation; advice is
// caller-supplied per transaction and never persisted.
func (d *Database) Lookup(commitment types.Word) ([]types.Felt, bool) {
	d.lock.RLock()
	defer d.lock.RUnlock()

	vals, ok := d.advice[commitment]
	if !ok {
		return nil, false
	}
	return append([]types.Felt(nil), vals...), true
}

// SetAdvice installs a commitment preimage for the current invocation.
func (d *Database) SetAdvice(commitment types.Word, values []types.Felt) {
	d.lock.Lock()
	defer d.lock.Unlock()

	d.advice[commitment] = append([]types.Felt(nil), values...)
}
