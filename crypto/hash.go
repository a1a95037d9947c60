package crypto

import (
	"github.com/tos-network/gbank/core/types"
	"golang.org/x/crypto/blake2b"
)

// Domain-separation labels for the felt hash. These are part of the wire
// protocol: the claim-program build commits to the same labels, so any
// change is a protocol upgrade, not a refactor.
const (
	domainElements  = "gbank.hash.elements.v1"
	domainSerial    = "gbank.note.serial.v1"
	domainScript    = "gbank.note.script.v1"
	domainRecipient = "gbank.note.recipient.v1"
)

func hashToDigest(domain string, chunks ...[]byte) types.Digest {
	h, err := blake2b.New256(nil)
	if err != nil {
		panic(err) // keyless blake2b cannot fail
	}
	h.Write([]byte(domain))
	for _, c := range chunks {
		h.Write(c)
	}
	return digestFromSum(h.Sum(nil))
}

// digestFromSum maps a 32-byte hash output onto a word, one 8-byte
// big-endian limb per felt, each reduced modulo p.
func digestFromSum(sum []byte) types.Digest {
	var d types.Digest
	for i := range d {
		d[i].SetBytes(sum[i*8 : (i+1)*8])
	}
	return d
}

func elementBytes(elems []types.Felt) []byte {
	out := make([]byte, 0, len(elems)*8)
	for i := range elems {
		b := elems[i].Bytes()
		out = append(out, b[:]...)
	}
	return out
}

// HashElements hashes an ordered felt sequence to a digest. The empty
// sequence is valid and hashes to a fixed non-zero digest.
func HashElements(elems []types.Felt) types.Digest {
	return hashToDigest(domainElements, elementBytes(elems))
}

// RecipientDigest computes the one-way commitment that addresses an
// outgoing note. It binds, in three stages, the note serial number, the
// claim-program identity and the ordered claim inputs:
//
//	sh = H(domainSerial  || serial)
//	sr = H(domainScript  || sh || scriptRoot)
//	r  = H(domainRecipient || sr || HashElements(inputs))
//
// The staging mirrors the claim-program convention: a claimant holding
// (serial, inputs) can rebuild r against the known script root, while r
// alone reveals none of them.
func RecipientDigest(serial types.Word, scriptRoot types.Digest, inputs []types.Felt) types.Digest {
	sb := serial.Bytes()
	sh := hashToDigest(domainSerial, sb[:])

	shb := sh.Bytes()
	srb := scriptRoot.Bytes()
	sr := hashToDigest(domainScript, shb[:], srb[:])

	ih := HashElements(inputs)
	srOut := sr.Bytes()
	ihb := ih.Bytes()
	return hashToDigest(domainRecipient, srOut[:], ihb[:])
}

// Hasher adapts the package functions to the injected host hash
// interface. The zero value is ready to use.
type Hasher struct{}

func (Hasher) HashElements(elems []types.Felt) types.Digest {
	return HashElements(elems)
}

func (Hasher) RecipientDigest(serial types.Word, scriptRoot types.Digest, inputs []types.Felt) types.Digest {
	return RecipientDigest(serial, scriptRoot, inputs)
}
