package leveldb

import (
	"encoding/binary"
	"errors"

	"github.com/google/uuid"
	"github.com/tos-network/gbank/core/types"
	"github.com/tos-network/gbank/hostdb"
)

var errCorruptNoteRecord = errors.New("leveldb: corrupt note record")

// Note record layout, fixed width throughout:
//
//	[0:16]   record uuid
//	[16:32]  sender account id
//	[32:40]  tag (big-endian canonical felt)
//	[40:48]  aux
//	[48:56]  execution hint
//	[56]     note type
//	[57:89]  recipient digest
//	[89:91]  asset count (big-endian uint16)
//	[91:]    assets, 32 bytes each
const noteRecordHeaderLen = 91

func newNoteRecord(meta types.NoteMetadata, recipient types.Digest) hostdb.NoteRecord {
	return hostdb.NoteRecord{
		ID:        uuid.New(),
		Meta:      meta,
		Recipient: recipient,
	}
}

func encodeNoteRecord(record hostdb.NoteRecord) []byte {
	out := make([]byte, noteRecordHeaderLen+len(record.Assets)*types.WordBytes)

	copy(out[0:16], record.ID[:])
	sender := record.Meta.Sender.Bytes()
	copy(out[16:32], sender[:])
	tag := record.Meta.Tag.Bytes()
	copy(out[32:40], tag[:])
	aux := record.Meta.Aux.Bytes()
	copy(out[40:48], aux[:])
	hint := record.Meta.ExecutionHint.Bytes()
	copy(out[48:56], hint[:])
	out[56] = byte(record.Meta.Type)
	recipient := record.Recipient.Bytes()
	copy(out[57:89], recipient[:])
	binary.BigEndian.PutUint16(out[89:91], uint16(len(record.Assets)))

	for i, asset := range record.Assets {
		ab := asset.Word().Bytes()
		copy(out[noteRecordHeaderLen+i*types.WordBytes:], ab[:])
	}
	return out
}

func decodeNoteRecord(raw []byte) (hostdb.NoteRecord, error) {
	if len(raw) < noteRecordHeaderLen {
		return hostdb.NoteRecord{}, errCorruptNoteRecord
	}
	var record hostdb.NoteRecord
	copy(record.ID[:], raw[0:16])

	prefix := binary.BigEndian.Uint64(raw[16:24])
	suffix := binary.BigEndian.Uint64(raw[24:32])
	record.Meta.Sender = types.NewAccountID(prefix, suffix)
	record.Meta.Tag = types.NewFelt(binary.BigEndian.Uint64(raw[32:40]))
	record.Meta.Aux = types.NewFelt(binary.BigEndian.Uint64(raw[40:48]))
	record.Meta.ExecutionHint = types.NewFelt(binary.BigEndian.Uint64(raw[48:56]))
	record.Meta.Type = types.NoteType(raw[56])

	recipient, err := types.WordFromBytes(raw[57:89])
	if err != nil {
		return hostdb.NoteRecord{}, errCorruptNoteRecord
	}
	record.Recipient = recipient

	count := int(binary.BigEndian.Uint16(raw[89:91]))
	if len(raw) != noteRecordHeaderLen+count*types.WordBytes {
		return hostdb.NoteRecord{}, errCorruptNoteRecord
	}
	for i := 0; i < count; i++ {
		w, err := types.WordFromBytes(raw[noteRecordHeaderLen+i*types.WordBytes : noteRecordHeaderLen+(i+1)*types.WordBytes])
		if err != nil {
			return hostdb.NoteRecord{}, errCorruptNoteRecord
		}
		record.Assets = append(record.Assets, types.Asset(w))
	}
	return record, nil
}
