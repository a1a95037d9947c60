package bank

import (
	"testing"

	"github.com/tos-network/gbank/core/types"
	"github.com/tos-network/gbank/crypto"
	"github.com/tos-network/gbank/hostdb/memorydb"
)

func TestLocalTagForAccount(t *testing.T) {
	cases := []struct {
		prefix uint64
		want   uint64
	}{
		// Zero prefix keeps only the local-any marker.
		{0, 0xC0000000},
		// prefix>>34 = 1<<28; bit 28 survives the 14-bit mask.
		{1 << 62, 0xD0000000},
		// Near-maximal canonical prefix: payload = 0x3FFFFFFF & 0xFFFF0000.
		{0xFFFFFFFE00000000, 0xC0000000 | 0x3FFF0000},
		// Lowest bit the mask keeps: prefix bit 50 lands at payload
		// bit 16.
		{1 << 50, 0xC0010000},
		// Bits below position 34+16 of the prefix are discarded.
		{1 << 49, 0xC0000000},
	}
	for _, c := range cases {
		id := types.AccountID{Prefix: types.NewFelt(c.prefix), Suffix: types.NewFelt(1)}
		tag := LocalTagForAccount(id)
		if got := tag.Uint64(); got != c.want {
			t.Fatalf("prefix %#x: tag = %#x, want %#x", c.prefix, got, c.want)
		}
	}
}

func TestTagCommitmentRoundtrip(t *testing.T) {
	hasher := crypto.Hasher{}
	env := memorydb.New()
	b := New(env, hasher)

	tag := LocalTagForAccount(testDepositor)
	commitment := TagCommitment(hasher, tag)
	env.SetAdvice(commitment, tagPreimage(tag))

	got, err := b.resolveTag(commitment)
	if err != nil {
		t.Fatalf("resolveTag: %v", err)
	}
	if got != tag {
		t.Fatalf("resolved tag = %s, want %s", got.String(), tag.String())
	}
}

func TestResolveTagFailures(t *testing.T) {
	hasher := crypto.Hasher{}
	env := memorydb.New()
	b := New(env, hasher)

	tag := types.NewFelt(0xC0010000)
	commitment := TagCommitment(hasher, tag)

	// No preimage installed.
	if _, err := b.resolveTag(commitment); err != ErrUnknownCommitment {
		t.Fatalf("missing preimage error = %v, want ErrUnknownCommitment", err)
	}

	// Preimage that does not hash to the commitment.
	env.SetAdvice(commitment, tagPreimage(types.NewFelt(0xC0020000)))
	if _, err := b.resolveTag(commitment); err != ErrUnknownCommitment {
		t.Fatalf("mismatched preimage error = %v, want ErrUnknownCommitment", err)
	}

	// Wrong-arity preimage.
	env.SetAdvice(commitment, []types.Felt{tag})
	if _, err := b.resolveTag(commitment); err != ErrUnknownCommitment {
		t.Fatalf("short preimage error = %v, want ErrUnknownCommitment", err)
	}
}
