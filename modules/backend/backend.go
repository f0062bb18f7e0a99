// Package backend adapts a zero-knowledge proving system to the three
// operations the bridge exposes: derive a verification key, generate a
// combined proof, verify a combined proof.
package backend

import (
	"hash"

	gnarkbackend "github.com/consensys/gnark/backend"
	"golang.org/x/crypto/sha3"

	"github.com/moven0831/mopro-wallet-connect-noir/modules/manifest"
)

// HashMode selects the hash the prover uses to map bytes onto the field.
type HashMode uint

const (
	// HashModeOffChain keeps the backend default hash-to-field.
	HashModeOffChain HashMode = iota
	// HashModeOnChain uses Keccak-256, the hash an EVM verifier contract
	// can afford.
	HashModeOnChain
)

func HashModeFromOnChain(onChain bool) HashMode {
	if onChain {
		return HashModeOnChain
	}
	return HashModeOffChain
}

func (m HashMode) String() string {
	if m == HashModeOnChain {
		return "keccak"
	}
	return "default"
}

// hasher returns a fresh hash for the mode, nil meaning the gnark default.
// Every option gets its own instance since gnark resets and reuses them.
func (m HashMode) hasher() hash.Hash {
	if m == HashModeOnChain {
		return sha3.NewLegacyKeccak256()
	}
	return nil
}

// proverOptions select the Fiat-Shamir challenge hash, the KZG folding hash
// and the commitment hash-to-field function. verifierOptions must agree.
func (m HashMode) proverOptions() []gnarkbackend.ProverOption {
	if m.hasher() == nil {
		return nil
	}
	return []gnarkbackend.ProverOption{
		gnarkbackend.WithProverChallengeHashFunction(m.hasher()),
		gnarkbackend.WithProverKZGFoldingHashFunction(m.hasher()),
		gnarkbackend.WithProverHashToFieldFunction(m.hasher()),
	}
}

func (m HashMode) verifierOptions() []gnarkbackend.VerifierOption {
	if m.hasher() == nil {
		return nil
	}
	return []gnarkbackend.VerifierOption{
		gnarkbackend.WithVerifierChallengeHashFunction(m.hasher()),
		gnarkbackend.WithVerifierKZGFoldingHashFunction(m.hasher()),
		gnarkbackend.WithVerifierHashToFieldFunction(m.hasher()),
	}
}

// Options are the per-call switches every operation accepts.
type Options struct {
	HashMode  HashMode
	LowMemory bool
}

// Backend is the proving system as seen by the binding surface. Every call
// is synchronous and may hold a CPU for seconds.
type Backend interface {
	// NumPublicInputs introspects circuit bytecode for its public input count.
	NumPublicInputs(bytecode string) (int, error)

	// VerificationKey derives the serialized verification key of the circuit.
	// An empty srsPath selects the development SRS.
	VerificationKey(m *manifest.Manifest, srsPath string, opts Options) ([]byte, error)

	// Prove returns the combined proof: the proof followed by its public
	// inputs as fixed-width words. A non-empty vk must match the circuit.
	Prove(m *manifest.Manifest, srsPath string, inputs []string, vk []byte, opts Options) ([]byte, error)

	// Verify checks a combined proof. A proof that does not verify yields
	// false; a proof or key that cannot be decoded yields an error.
	Verify(m *manifest.Manifest, proof []byte, vk []byte, opts Options) (bool, error)
}
