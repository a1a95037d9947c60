package bank

import (
	"github.com/tos-network/gbank/core/types"
	"github.com/tos-network/gbank/hostdb"
)

// tagMask keeps the top LocalTagBits bits of the shifted prefix within
// the tag's 30-bit payload space: 0x3FFF0000.
const tagMask uint32 = (1<<LocalTagBits - 1) << (30 - LocalTagBits)

// LocalTagForAccount derives the local-any routing tag under which the
// delivery environment indexes notes for the account. The top
// LocalTagBits bits of the 64-bit account prefix are placed in the upper
// region of the tag's 30-bit payload space beneath the local-any marker:
//
//	shifted = prefix >> 34            // top 30 bits of the prefix
//	payload = shifted & tagMask
//	tag     = LocalTagPrefix | payload
//
// The rule must match the delivery environment's indexer bit for bit;
// a caller may also supply any tag of its own through the withdraw
// entry points.
func LocalTagForAccount(id types.AccountID) types.Felt {
	shifted := uint32(id.Prefix.Uint64() >> 34)
	return types.NewFelt(uint64(LocalTagPrefix | (shifted & tagMask)))
}

// tagPreimage is the advice-map value layout for a routing tag: the tag
// padded to a full word.
func tagPreimage(tag types.Felt) []types.Felt {
	return []types.Felt{tag, types.NewFelt(0), types.NewFelt(0), types.NewFelt(0)}
}

// TagCommitment computes the advice-map key under which a caller
// publishes a routing tag for a withdraw-request note.
func TagCommitment(hasher hostdb.Hasher, tag types.Felt) types.Word {
	return hasher.HashElements(tagPreimage(tag))
}

// resolveTag fetches a routing tag by commitment from the advice
// provider and verifies the preimage against the commitment before
// trusting it.
func (b *Bank) resolveTag(commitment types.Word) (types.Felt, error) {
	values, ok := b.env.Lookup(commitment)
	if !ok {
		return types.Felt{}, ErrUnknownCommitment
	}
	if len(values) != types.WordLen {
		return types.Felt{}, ErrUnknownCommitment
	}
	if b.hasher.HashElements(values) != commitment {
		return types.Felt{}, ErrUnknownCommitment
	}
	return values[0], nil
}
