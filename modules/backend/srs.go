package backend

import (
	"bufio"
	"io"
	"math/big"
	"os"

	errorsmod "cosmossdk.io/errors"
	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254/kzg"
	"github.com/consensys/gnark/constraint"
	"golang.org/x/crypto/sha3"
)

// DevSRSLabel seeds the development SRS. Its trapdoor is public: proofs made
// against it are only good for tests and local tooling.
const DevSRSLabel = "noirbridge development srs"

// SRSSizes returns how many Lagrange and canonical points a PLONK setup of
// ccs consumes.
func SRSSizes(ccs constraint.ConstraintSystem) (lagrangeSize, canonicalSize uint64) {
	lagrangeSize = ecc.NextPowerOfTwo(uint64(ccs.GetNbConstraints() + ccs.GetNbPublicVariables()))
	return lagrangeSize, lagrangeSize + 3
}

// DevTrapdoor derives the development SRS trapdoor from a label.
func DevTrapdoor(label string) *big.Int {
	digest := sha3.Sum256([]byte(label))
	return new(big.Int).SetBytes(digest[:])
}

// NewDevSRS builds a canonical and Lagrange SRS sized for ccs from a known
// trapdoor, so that repeated calls agree on the keys.
func NewDevSRS(ccs constraint.ConstraintSystem, trapdoor *big.Int) (*kzg.SRS, *kzg.SRS, error) {
	lagrangeSize, canonicalSize := SRSSizes(ccs)

	canonical, err := kzg.NewSRS(canonicalSize, trapdoor)
	if err != nil {
		return nil, nil, errorsmod.Wrapf(ErrBackendFailure, "generate srs: %v", err)
	}

	lagrange, err := lagrangeFromCanonical(canonical, lagrangeSize)
	if err != nil {
		return nil, nil, err
	}
	return canonical, lagrange, nil
}

func lagrangeFromCanonical(canonical *kzg.SRS, size uint64) (*kzg.SRS, error) {
	if uint64(len(canonical.Pk.G1)) < size {
		return nil, errorsmod.Wrapf(ErrBackendFailure, "srs holds %d points, lagrange form needs %d", len(canonical.Pk.G1), size)
	}

	g1, err := kzg.ToLagrangeG1(canonical.Pk.G1[:size])
	if err != nil {
		return nil, errorsmod.Wrapf(ErrBackendFailure, "compute lagrange srs: %v", err)
	}

	return &kzg.SRS{
		Pk: kzg.ProvingKey{G1: g1},
		Vk: canonical.Vk,
	}, nil
}

// LoadSRS reads an SRS file: a canonical SRS optionally followed by its
// Lagrange form. A missing or wrongly sized Lagrange part is derived.
func LoadSRS(path string, ccs constraint.ConstraintSystem) (*kzg.SRS, *kzg.SRS, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errorsmod.Wrapf(ErrBackendFailure, "open srs: %v", err)
	}
	defer f.Close()

	r := bufio.NewReader(f)

	var canonical kzg.SRS
	if _, err := canonical.ReadFrom(r); err != nil {
		return nil, nil, errorsmod.Wrapf(ErrBackendFailure, "read srs %s: %v", path, err)
	}

	lagrangeSize, canonicalSize := SRSSizes(ccs)
	if uint64(len(canonical.Pk.G1)) < canonicalSize {
		return nil, nil, errorsmod.Wrapf(
			ErrBackendFailure,
			"srs %s holds %d points, circuit needs %d",
			path, len(canonical.Pk.G1), canonicalSize,
		)
	}

	if _, err := r.Peek(1); err == io.EOF {
		lagrange, err := lagrangeFromCanonical(&canonical, lagrangeSize)
		return &canonical, lagrange, err
	}

	var lagrange kzg.SRS
	if _, err := lagrange.ReadFrom(r); err != nil {
		return nil, nil, errorsmod.Wrapf(ErrBackendFailure, "read lagrange srs %s: %v", path, err)
	}
	if uint64(len(lagrange.Pk.G1)) != lagrangeSize {
		derived, err := lagrangeFromCanonical(&canonical, lagrangeSize)
		return &canonical, derived, err
	}

	return &canonical, &lagrange, nil
}

// WriteSRS stores canonical followed by lagrange, the layout LoadSRS reads.
// A nil lagrange writes the canonical part only.
func WriteSRS(path string, canonical, lagrange *kzg.SRS) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return errorsmod.Wrapf(ErrBackendFailure, "create srs: %v", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errorsmod.Wrapf(ErrBackendFailure, "close srs: %v", cerr)
		}
	}()

	w := bufio.NewWriter(f)
	if _, err := canonical.WriteTo(w); err != nil {
		return errorsmod.Wrapf(ErrBackendFailure, "write srs: %v", err)
	}
	if lagrange != nil {
		if _, err := lagrange.WriteTo(w); err != nil {
			return errorsmod.Wrapf(ErrBackendFailure, "write lagrange srs: %v", err)
		}
	}
	if err := w.Flush(); err != nil {
		return errorsmod.Wrapf(ErrBackendFailure, "flush srs: %v", err)
	}
	return nil
}
