package backend

import (
	"bytes"
	"compress/gzip"
	"encoding/base64"
	"io"
	"strings"

	errorsmod "cosmossdk.io/errors"
	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/plonk"
	"github.com/consensys/gnark/constraint"
	"golang.org/x/crypto/sha3"

	"github.com/moven0831/mopro-wallet-connect-noir/modules/fields"
)

// bytecodeDigestSize is the length of the sha3-256 digest that prefixes the
// serialized constraint system inside the compressed bytecode.
const bytecodeDigestSize = 32

// maxBytecodeSize bounds the decompressed bytecode.
var maxBytecodeSize int64 = 256 << 20

// EncodeBytecode serializes a compiled PLONK constraint system the way it is
// embedded in a manifest: base64(gzip(sha3-256(cs) || cs)).
func EncodeBytecode(ccs constraint.ConstraintSystem) (string, error) {
	var payload bytes.Buffer
	if _, err := ccs.WriteTo(&payload); err != nil {
		return "", errorsmod.Wrapf(ErrBackendFailure, "serialize constraint system: %v", err)
	}
	digest := sha3.Sum256(payload.Bytes())

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(digest[:]); err != nil {
		return "", errorsmod.Wrapf(ErrBackendFailure, "compress constraint system: %v", err)
	}
	if _, err := zw.Write(payload.Bytes()); err != nil {
		return "", errorsmod.Wrapf(ErrBackendFailure, "compress constraint system: %v", err)
	}
	if err := zw.Close(); err != nil {
		return "", errorsmod.Wrapf(ErrBackendFailure, "compress constraint system: %v", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// DecodeBytecode is the inverse of EncodeBytecode. Only BN254 systems are
// accepted. gnark trusts the length headers of a serialized system, so the
// payload is size bounded and checked against its digest before gnark reads
// a byte of it.
func DecodeBytecode(bytecode string) (constraint.ConstraintSystem, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(bytecode))
	if err != nil {
		return nil, errorsmod.Wrapf(ErrBackendFailure, "bytecode is not base64: %v", err)
	}

	zr, err := gzip.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, errorsmod.Wrapf(ErrBackendFailure, "bytecode is not gzip: %v", err)
	}
	defer zr.Close()

	decompressed, err := io.ReadAll(io.LimitReader(zr, maxBytecodeSize+1))
	if err != nil {
		return nil, errorsmod.Wrapf(ErrBackendFailure, "decompress bytecode: %v", err)
	}
	if int64(len(decompressed)) > maxBytecodeSize {
		return nil, errorsmod.Wrapf(ErrBackendFailure, "bytecode exceeds %d bytes", maxBytecodeSize)
	}
	if len(decompressed) <= bytecodeDigestSize {
		return nil, errorsmod.Wrap(ErrBackendFailure, "bytecode too short")
	}

	payload := decompressed[bytecodeDigestSize:]
	if digest := sha3.Sum256(payload); !bytes.Equal(digest[:], decompressed[:bytecodeDigestSize]) {
		return nil, errorsmod.Wrap(ErrBackendFailure, "bytecode digest mismatch")
	}

	ccs := plonk.NewCS(ecc.BN254)
	if _, err := ccs.ReadFrom(bytes.NewReader(payload)); err != nil {
		return nil, errorsmod.Wrapf(ErrBackendFailure, "read constraint system: %v", err)
	}

	if !fields.ECCBN254.SameModulus(ccs.Field()) {
		return nil, errorsmod.Wrapf(ErrBackendFailure, "constraint system is not over %s", fields.ECCBN254)
	}
	return ccs, nil
}
