package types

// NoteType classifies how an emitted note is delivered by the environment.
type NoteType uint8

const (
	// NoteTypePublic notes have their full data published by the
	// environment and are discoverable by anyone matching the tag.
	NoteTypePublic NoteType = 1

	// NoteTypePrivate notes publish only the note commitment; the
	// recipient must learn the details off-band.
	NoteTypePrivate NoteType = 2
)

// Valid reports whether the note type is one the environment accepts.
func (t NoteType) Valid() bool {
	return t == NoteTypePublic || t == NoteTypePrivate
}

// NoteMetadata carries the routing and classification fields of an
// outgoing note. All fields are opaque to ledger correctness and are
// forwarded verbatim to the environment.
type NoteMetadata struct {
	// Sender is the account emitting the note.
	Sender AccountID

	// Tag determines which party's environment indexes the note.
	Tag Felt

	// Aux is application-defined auxiliary data.
	Aux Felt

	// Type selects public or private delivery.
	Type NoteType

	// ExecutionHint advises the consumer on execution timing; zero
	// means no hint.
	ExecutionHint Felt
}
