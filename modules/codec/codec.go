// Package codec splits a combined proof into its proof section and the
// fixed-width public input words the prover appends after it, and joins
// them back together byte for byte.
//
// The layout is not self-describing:
//
//	combined = proof || word_0 || word_1 || ... || word_{n-1}
//
// where n comes from the circuit, and every word is Layout.WordSize bytes.
package codec

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/moven0831/mopro-wallet-connect-noir/modules/fields"
)

// DefaultWordSize is the width of one BN254 scalar field element.
const DefaultWordSize = 32

// Layout fixes the width of a public input word.
type Layout struct {
	WordSize int
}

// DefaultLayout is the layout of proofs over the BN254 scalar field.
func DefaultLayout() Layout {
	return Layout{WordSize: DefaultWordSize}
}

// LayoutForField returns the layout whose words are serialized elements of f.
func LayoutForField(f fields.ECCFieldEnum) Layout {
	return Layout{WordSize: int(f.FieldBytes())}
}

// SplitProof is a combined proof taken apart.
type SplitProof struct {
	// Proof is the combined proof without its public inputs
	Proof []byte
	// PublicInputs holds one word per public input, in blob order
	PublicInputs [][]byte
	// NumPublicInputs equals len(PublicInputs)
	NumPublicInputs uint32
}

func (l Layout) validate() error {
	if l.WordSize <= 0 {
		return errorsmod.Wrapf(ErrInvalidLayout, "word size %d", l.WordSize)
	}
	return nil
}

// Split takes numPublicInputs words off the tail of combined. The returned
// slices are copies and never alias combined.
func (l Layout) Split(combined []byte, numPublicInputs uint32) (*SplitProof, error) {
	if err := l.validate(); err != nil {
		return nil, err
	}

	// NOTE: uint64 keeps n * WordSize from overflowing for any uint32 n
	wordsLen := uint64(numPublicInputs) * uint64(l.WordSize)
	if uint64(len(combined)) < wordsLen {
		return nil, errorsmod.Wrapf(
			ErrMalformedProof,
			"proof of %d bytes cannot hold %d public inputs of %d bytes",
			len(combined), numPublicInputs, l.WordSize,
		)
	}

	boundary := len(combined) - int(wordsLen)
	split := &SplitProof{
		Proof:           append(make([]byte, 0, boundary), combined[:boundary]...),
		PublicInputs:    make([][]byte, numPublicInputs),
		NumPublicInputs: numPublicInputs,
	}

	for i := 0; i < int(numPublicInputs); i++ {
		start := boundary + i*l.WordSize
		word := make([]byte, l.WordSize)
		copy(word, combined[start:start+l.WordSize])
		split.PublicInputs[i] = word
	}

	return split, nil
}

// Combine appends the public input words to proof, in order. Every word must
// be exactly WordSize bytes, otherwise Split could not recover them.
func (l Layout) Combine(proof []byte, publicInputs [][]byte) ([]byte, error) {
	if err := l.validate(); err != nil {
		return nil, err
	}

	for i, word := range publicInputs {
		if len(word) != l.WordSize {
			return nil, errorsmod.Wrapf(
				ErrMalformedPublicInput,
				"public input %d is %d bytes, expected %d",
				i, len(word), l.WordSize,
			)
		}
	}

	combined := make([]byte, 0, len(proof)+len(publicInputs)*l.WordSize)
	combined = append(combined, proof...)
	for _, word := range publicInputs {
		combined = append(combined, word...)
	}

	return combined, nil
}

// Split is DefaultLayout().Split.
func Split(combined []byte, numPublicInputs uint32) (*SplitProof, error) {
	return DefaultLayout().Split(combined, numPublicInputs)
}

// Combine is DefaultLayout().Combine.
func Combine(proof []byte, publicInputs [][]byte) ([]byte, error) {
	return DefaultLayout().Combine(proof, publicInputs)
}
