package circuit

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/scs"

	"github.com/moven0831/mopro-wallet-connect-noir/modules/backend"
	"github.com/moven0831/mopro-wallet-connect-noir/modules/manifest"
)

// Compile turns def into a PLONK constraint system over BN254 and wraps it
// in a manifest.
func Compile(def Definition) (*manifest.Manifest, error) {
	ccs, err := frontend.Compile(ecc.BN254.ScalarField(), scs.NewBuilder, def)
	if err != nil {
		return nil, err
	}

	bytecode, err := backend.EncodeBytecode(ccs)
	if err != nil {
		return nil, err
	}

	abi := def.ABI()
	digest := sha256.Sum256([]byte(bytecode))
	m := &manifest.Manifest{
		Hash:     hex.EncodeToString(digest[:]),
		ABI:      &abi,
		Bytecode: bytecode,
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// CompileByName compiles the named reference circuit.
func CompileByName(name string) (*manifest.Manifest, error) {
	def, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return Compile(def)
}
