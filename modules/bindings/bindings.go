// Package bindings is the call surface foreign code sees: six operations
// over circuit manifests, combined proofs and verification keys, with every
// failure reported in the noirbridge error codespace.
package bindings

import (
	"github.com/rs/zerolog"

	"github.com/moven0831/mopro-wallet-connect-noir/modules/backend"
	"github.com/moven0831/mopro-wallet-connect-noir/modules/codec"
	"github.com/moven0831/mopro-wallet-connect-noir/modules/manifest"
)

// ProofWithPublicInputs is a combined proof split into its parts.
type ProofWithPublicInputs struct {
	// Proof is the proof without its public inputs
	Proof []byte `json:"proof"`
	// PublicInputs holds one fixed-width word per public input
	PublicInputs [][]byte `json:"public_inputs"`
	// NumPublicInputs is len(PublicInputs)
	NumPublicInputs uint32 `json:"num_public_inputs"`
}

type Bridge struct {
	backend backend.Backend
	counter *manifest.Counter
	layout  codec.Layout
	logger  zerolog.Logger

	// defaults for Call when onChain or lowMemoryMode is absent
	onChain   bool
	lowMemory bool
}

type Option func(*Bridge)

func WithLogger(logger zerolog.Logger) Option {
	return func(b *Bridge) {
		b.logger = logger
	}
}

// WithLayout changes the public input word width used by the codec
// operations.
func WithLayout(layout codec.Layout) Option {
	return func(b *Bridge) {
		b.layout = layout
	}
}

// WithDefaultModes sets the modes Call uses when a caller omits onChain or
// lowMemoryMode.
func WithDefaultModes(onChain, lowMemoryMode bool) Option {
	return func(b *Bridge) {
		b.onChain = onChain
		b.lowMemory = lowMemoryMode
	}
}

func New(be backend.Backend, opts ...Option) *Bridge {
	b := &Bridge{
		backend: be,
		layout:  codec.DefaultLayout(),
		logger:  zerolog.Nop(),
		onChain: true,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.counter = manifest.NewCounter(be, b.logger)
	return b
}

// GetNumPublicInputsFromCircuit returns the public input count of the
// circuit manifest at circuitPath, or 0 when it cannot be determined.
func (b *Bridge) GetNumPublicInputsFromCircuit(circuitPath string) uint32 {
	return b.counter.Count(circuitPath)
}

// CountPublicInputs is GetNumPublicInputsFromCircuit without the 0 fallback.
func (b *Bridge) CountPublicInputs(circuitPath string) (uint32, error) {
	return b.counter.CountStrict(circuitPath)
}

// ParseProofWithPublicInputs splits a combined proof whose circuit declares
// numPublicInputs public inputs.
func (b *Bridge) ParseProofWithPublicInputs(proof []byte, numPublicInputs uint32) (*ProofWithPublicInputs, error) {
	split, err := b.layout.Split(proof, numPublicInputs)
	if err != nil {
		return nil, err
	}
	return &ProofWithPublicInputs{
		Proof:           split.Proof,
		PublicInputs:    split.PublicInputs,
		NumPublicInputs: split.NumPublicInputs,
	}, nil
}

// CombineProofAndPublicInputs is the inverse of ParseProofWithPublicInputs.
func (b *Bridge) CombineProofAndPublicInputs(proof []byte, publicInputs [][]byte) ([]byte, error) {
	return b.layout.Combine(proof, publicInputs)
}

// GenerateNoirProof proves the circuit at circuitPath on inputs. A nil
// srsPath selects the development SRS.
func (b *Bridge) GenerateNoirProof(
	circuitPath string,
	srsPath *string,
	inputs []string,
	onChain bool,
	vk []byte,
	lowMemoryMode bool,
) ([]byte, error) {
	m, err := manifest.Read(circuitPath)
	if err != nil {
		return nil, err
	}

	proof, err := b.backend.Prove(m, deref(srsPath), inputs, vk, options(onChain, lowMemoryMode))
	if err != nil {
		b.logger.Error().Err(err).Str("circuit", circuitPath).Msg("proof generation failed")
		return nil, err
	}
	return proof, nil
}

// GetNoirVerificationKey derives the verification key of the circuit at
// circuitPath.
func (b *Bridge) GetNoirVerificationKey(
	circuitPath string,
	srsPath *string,
	onChain bool,
	lowMemoryMode bool,
) ([]byte, error) {
	m, err := manifest.Read(circuitPath)
	if err != nil {
		return nil, err
	}
	return b.backend.VerificationKey(m, deref(srsPath), options(onChain, lowMemoryMode))
}

// VerifyNoirProof checks a combined proof against the circuit at circuitPath.
func (b *Bridge) VerifyNoirProof(
	circuitPath string,
	proof []byte,
	onChain bool,
	vk []byte,
	lowMemoryMode bool,
) (bool, error) {
	m, err := manifest.Read(circuitPath)
	if err != nil {
		return false, err
	}
	return b.backend.Verify(m, proof, vk, options(onChain, lowMemoryMode))
}

func options(onChain, lowMemoryMode bool) backend.Options {
	return backend.Options{
		HashMode:  backend.HashModeFromOnChain(onChain),
		LowMemory: lowMemoryMode,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
