package backend

import (
	"bytes"
	"math/big"
	"runtime/debug"
	"time"

	errorsmod "cosmossdk.io/errors"
	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254/kzg"
	"github.com/consensys/gnark/backend/plonk"
	"github.com/consensys/gnark/constraint"
	"github.com/rs/zerolog"

	"github.com/moven0831/mopro-wallet-connect-noir/modules/codec"
	"github.com/moven0831/mopro-wallet-connect-noir/modules/fields"
	"github.com/moven0831/mopro-wallet-connect-noir/modules/manifest"
)

// DefaultKeyCacheSize is how many circuit setups a PlonkBackend keeps.
const DefaultKeyCacheSize = 8

// PlonkBackend proves and verifies with gnark PLONK over BN254. Combined
// proofs are the serialized PLONK proof followed by the public inputs as
// 32-byte big-endian words.
type PlonkBackend struct {
	logger       zerolog.Logger
	keys         *keyCache
	keyCacheSize int
	devTrapdoor  *big.Int
	layout       codec.Layout
}

var _ Backend = (*PlonkBackend)(nil)

type Option func(*PlonkBackend)

func WithLogger(logger zerolog.Logger) Option {
	return func(b *PlonkBackend) {
		b.logger = logger
	}
}

// WithKeyCacheSize bounds the setup cache; zero or less disables it.
func WithKeyCacheSize(size int) Option {
	return func(b *PlonkBackend) {
		b.keyCacheSize = size
	}
}

// WithDevSRSLabel changes the label the development SRS trapdoor is derived
// from.
func WithDevSRSLabel(label string) Option {
	return func(b *PlonkBackend) {
		b.devTrapdoor = DevTrapdoor(label)
	}
}

func NewPlonkBackend(opts ...Option) (*PlonkBackend, error) {
	b := &PlonkBackend{
		logger:       zerolog.Nop(),
		keyCacheSize: DefaultKeyCacheSize,
		devTrapdoor:  DevTrapdoor(DevSRSLabel),
		layout:       codec.LayoutForField(fields.ECCBN254),
	}
	for _, opt := range opts {
		opt(b)
	}

	keys, err := newKeyCache(b.keyCacheSize)
	if err != nil {
		return nil, err
	}
	b.keys = keys
	return b, nil
}

// Field is the field public input words of combined proofs belong to.
func (b *PlonkBackend) Field() fields.ECCFieldEnum {
	return fields.ECCBN254
}

// Layout is the layout of the combined proofs this backend produces.
func (b *PlonkBackend) Layout() codec.Layout {
	return b.layout
}

func (b *PlonkBackend) NumPublicInputs(bytecode string) (int, error) {
	ccs, err := DecodeBytecode(bytecode)
	if err != nil {
		return 0, err
	}
	return ccs.GetNbPublicVariables(), nil
}

func (b *PlonkBackend) VerificationKey(m *manifest.Manifest, srsPath string, opts Options) ([]byte, error) {
	keys, err := b.setup(m, srsPath, opts)
	if err != nil {
		return nil, err
	}
	return append([]byte(nil), keys.vkBytes...), nil
}

func (b *PlonkBackend) Prove(m *manifest.Manifest, srsPath string, inputs []string, vk []byte, opts Options) ([]byte, error) {
	keys, err := b.setup(m, srsPath, opts)
	if err != nil {
		return nil, err
	}

	if len(vk) != 0 && !bytes.Equal(vk, keys.vkBytes) {
		return nil, errorsmod.Wrap(ErrBackendFailure, "verification key does not belong to this circuit and srs")
	}

	public, secret, err := orderInputs(m, keys.ccs, inputs)
	if err != nil {
		return nil, err
	}

	fullWitness, err := buildWitness(keys.ccs.Field(), public, secret)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	proof, err := plonk.Prove(keys.ccs, keys.pk, fullWitness, opts.HashMode.proverOptions()...)
	if err != nil {
		return nil, errorsmod.Wrapf(ErrBackendFailure, "prove: %v", err)
	}
	b.logger.Debug().
		Dur("took", time.Since(start)).
		Str("hash", opts.HashMode.String()).
		Int("public_inputs", len(public)).
		Msg("plonk proof generated")

	var proofBuf bytes.Buffer
	if _, err := proof.WriteTo(&proofBuf); err != nil {
		return nil, errorsmod.Wrapf(ErrBackendFailure, "serialize proof: %v", err)
	}

	words, err := publicWords(fullWitness)
	if err != nil {
		return nil, err
	}

	combined, err := b.layout.Combine(proofBuf.Bytes(), words)
	if err != nil {
		return nil, err
	}

	if opts.LowMemory {
		debug.FreeOSMemory()
	}
	return combined, nil
}

func (b *PlonkBackend) Verify(m *manifest.Manifest, combined []byte, vk []byte, opts Options) (bool, error) {
	ccs, err := DecodeBytecode(m.Bytecode)
	if err != nil {
		return false, err
	}

	split, err := b.layout.Split(combined, uint32(ccs.GetNbPublicVariables()))
	if err != nil {
		return false, err
	}

	proof := plonk.NewProof(ecc.BN254)
	n, err := proof.ReadFrom(bytes.NewReader(split.Proof))
	if err != nil {
		return false, errorsmod.Wrapf(ErrBackendFailure, "read proof: %v", err)
	}
	if n != int64(len(split.Proof)) {
		return false, errorsmod.Wrapf(ErrBackendFailure, "proof section has %d trailing bytes", int64(len(split.Proof))-n)
	}

	if len(vk) == 0 {
		return false, errorsmod.Wrap(ErrBackendFailure, "verification key required")
	}
	verifyingKey := plonk.NewVerifyingKey(ecc.BN254)
	if _, err := verifyingKey.ReadFrom(bytes.NewReader(vk)); err != nil {
		return false, errorsmod.Wrapf(ErrBackendFailure, "read verification key: %v", err)
	}

	publicWitness, err := publicWitnessFromWords(ccs.Field(), split.PublicInputs)
	if err != nil {
		return false, err
	}

	if err := plonk.Verify(proof, verifyingKey, publicWitness, opts.HashMode.verifierOptions()...); err != nil {
		b.logger.Debug().Err(err).Msg("plonk proof rejected")
		return false, nil
	}
	return true, nil
}

// setup decodes the circuit, loads the SRS and runs the PLONK preprocessing,
// reusing a cached run unless low memory is asked for.
func (b *PlonkBackend) setup(m *manifest.Manifest, srsPath string, opts Options) (*circuitKeys, error) {
	cacheKey := keyCacheKey(m.Bytecode, srsPath)
	if !opts.LowMemory {
		if keys, ok := b.keys.get(cacheKey); ok {
			return keys, nil
		}
	}

	ccs, err := DecodeBytecode(m.Bytecode)
	if err != nil {
		return nil, err
	}

	canonical, lagrange, err := b.loadSRS(ccs, srsPath)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	pk, vk, err := plonk.Setup(ccs, canonical, lagrange)
	if err != nil {
		return nil, errorsmod.Wrapf(ErrBackendFailure, "plonk setup: %v", err)
	}

	var vkBuf bytes.Buffer
	if _, err := vk.WriteTo(&vkBuf); err != nil {
		return nil, errorsmod.Wrapf(ErrBackendFailure, "serialize verification key: %v", err)
	}

	b.logger.Debug().
		Int("constraints", ccs.GetNbConstraints()).
		Int("public", ccs.GetNbPublicVariables()).
		Bool("dev_srs", srsPath == "").
		Dur("took", time.Since(start)).
		Msg("plonk setup done")

	keys := &circuitKeys{ccs: ccs, pk: pk, vk: vk, vkBytes: vkBuf.Bytes()}
	if !opts.LowMemory {
		b.keys.add(cacheKey, keys)
	}
	return keys, nil
}

func (b *PlonkBackend) loadSRS(ccs constraint.ConstraintSystem, srsPath string) (*kzg.SRS, *kzg.SRS, error) {
	if srsPath == "" {
		return NewDevSRS(ccs, b.devTrapdoor)
	}
	return LoadSRS(srsPath, ccs)
}

// DevSRS builds the development SRS this backend uses when no SRS file is
// given, sized for the circuit in m.
func (b *PlonkBackend) DevSRS(m *manifest.Manifest) (*kzg.SRS, *kzg.SRS, error) {
	ccs, err := DecodeBytecode(m.Bytecode)
	if err != nil {
		return nil, nil, err
	}
	return NewDevSRS(ccs, b.devTrapdoor)
}
