package crypto

import (
	"testing"

	"github.com/tos-network/gbank/core/types"
)

func TestHashElementsDeterministic(t *testing.T) {
	elems := []types.Felt{types.NewFelt(1), types.NewFelt(2), types.NewFelt(3)}
	a := HashElements(elems)
	b := HashElements(elems)
	if a != b {
		t.Fatalf("same input hashed to different digests: %s vs %s", a, b)
	}
	if a.IsZero() {
		t.Fatal("digest is zero")
	}
}

func TestHashElementsSensitivity(t *testing.T) {
	base := HashElements([]types.Felt{types.NewFelt(1), types.NewFelt(2)})

	changed := HashElements([]types.Felt{types.NewFelt(1), types.NewFelt(3)})
	if changed == base {
		t.Fatal("changing an element did not change the digest")
	}

	reordered := HashElements([]types.Felt{types.NewFelt(2), types.NewFelt(1)})
	if reordered == base {
		t.Fatal("reordering elements did not change the digest")
	}

	padded := HashElements([]types.Felt{types.NewFelt(1), types.NewFelt(2), types.NewFelt(0)})
	if padded == base {
		t.Fatal("zero padding did not change the digest")
	}

	empty := HashElements(nil)
	if empty.IsZero() || empty == base {
		t.Fatal("empty sequence digest is degenerate")
	}
}

func TestRecipientDigestDeterministic(t *testing.T) {
	serial := types.NewWord(10, 20, 30, 40)
	root := types.NewWord(5, 6, 7, 8)
	inputs := []types.Felt{types.NewFelt(0xaa), types.NewFelt(0xbb)}

	a := RecipientDigest(serial, root, inputs)
	b := RecipientDigest(serial, root, inputs)
	if a != b {
		t.Fatalf("recipient digest not deterministic: %s vs %s", a, b)
	}
}

func TestRecipientDigestBindsEveryComponent(t *testing.T) {
	serial := types.NewWord(10, 20, 30, 40)
	root := types.NewWord(5, 6, 7, 8)
	inputs := []types.Felt{types.NewFelt(0xaa), types.NewFelt(0xbb)}
	base := RecipientDigest(serial, root, inputs)

	otherSerial := serial
	otherSerial[3] = types.NewFelt(41)
	if RecipientDigest(otherSerial, root, inputs) == base {
		t.Fatal("serial number not bound")
	}

	otherRoot := root
	otherRoot[0] = types.NewFelt(9)
	if RecipientDigest(serial, otherRoot, inputs) == base {
		t.Fatal("script root not bound")
	}

	otherInputs := []types.Felt{types.NewFelt(0xaa), types.NewFelt(0xbc)}
	if RecipientDigest(serial, root, otherInputs) == base {
		t.Fatal("claim inputs not bound")
	}
}
