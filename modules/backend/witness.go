package backend

import (
	"math/big"

	errorsmod "cosmossdk.io/errors"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/backend/witness"
	"github.com/consensys/gnark/constraint"
	cs_bn254 "github.com/consensys/gnark/constraint/bn254"

	"github.com/moven0831/mopro-wallet-connect-noir/modules/manifest"
)

// variableNames returns the public and secret variable names recorded in
// the constraint system, in witness order.
func variableNames(ccs constraint.ConstraintSystem) (public, secret []string, ok bool) {
	spr, ok := ccs.(*cs_bn254.SparseR1CS)
	if !ok {
		return nil, nil, false
	}
	return spr.Public, spr.Secret, true
}

// orderInputs puts the caller inputs into witness order: public variables
// first, then secret ones. With an ABI the inputs follow the ABI parameter
// order and are routed by name; without one they already are in witness
// order.
func orderInputs(m *manifest.Manifest, ccs constraint.ConstraintSystem, inputs []string) (public, secret []string, err error) {
	nbPublic := ccs.GetNbPublicVariables()
	nbSecret := ccs.GetNbSecretVariables()

	if len(inputs) != nbPublic+nbSecret {
		return nil, nil, errorsmod.Wrapf(
			ErrBackendFailure,
			"circuit takes %d inputs (%d public), got %d",
			nbPublic+nbSecret, nbPublic, len(inputs),
		)
	}

	if m.ABI == nil || len(m.ABI.Parameters) == 0 {
		return inputs[:nbPublic], inputs[nbPublic:], nil
	}

	if len(m.ABI.Parameters) != len(inputs) {
		return nil, nil, errorsmod.Wrapf(
			ErrBackendFailure,
			"abi declares %d parameters, circuit takes %d inputs",
			len(m.ABI.Parameters), len(inputs),
		)
	}
	if declared := len(m.PublicParameters()); declared != nbPublic {
		return nil, nil, errorsmod.Wrapf(
			ErrBackendFailure,
			"abi declares %d public parameters, circuit has %d",
			declared, nbPublic,
		)
	}

	byName := make(map[string]string, len(inputs))
	for i, p := range m.ABI.Parameters {
		byName[p.Name] = inputs[i]
	}

	publicNames, secretNames, ok := variableNames(ccs)
	if !ok {
		// NOTE: no variable names to route by, trust ABI visibility order
		for i, p := range m.ABI.Parameters {
			if p.Visibility == manifest.VisibilityPublic {
				public = append(public, inputs[i])
			} else {
				secret = append(secret, inputs[i])
			}
		}
		return public, secret, nil
	}

	pick := func(names []string) ([]string, error) {
		values := make([]string, len(names))
		for i, name := range names {
			v, found := byName[name]
			if !found {
				return nil, errorsmod.Wrapf(ErrBackendFailure, "no input for circuit variable %q", name)
			}
			values[i] = v
		}
		return values, nil
	}

	if public, err = pick(publicNames); err != nil {
		return nil, nil, err
	}
	if secret, err = pick(secretNames); err != nil {
		return nil, nil, err
	}
	return public, secret, nil
}

// buildWitness fills a full witness. Values are decimal or 0x-prefixed hex.
func buildWitness(field *big.Int, public, secret []string) (witness.Witness, error) {
	w, err := witness.New(field)
	if err != nil {
		return nil, errorsmod.Wrapf(ErrBackendFailure, "create witness: %v", err)
	}

	values := make(chan any, len(public)+len(secret))
	for _, v := range public {
		values <- v
	}
	for _, v := range secret {
		values <- v
	}
	close(values)

	if err := w.Fill(len(public), len(secret), values); err != nil {
		return nil, errorsmod.Wrapf(ErrBackendFailure, "fill witness: %v", err)
	}
	return w, nil
}

// publicWords serializes the public part of w as 32-byte big-endian words.
func publicWords(w witness.Witness) ([][]byte, error) {
	pub, err := w.Public()
	if err != nil {
		return nil, errorsmod.Wrapf(ErrBackendFailure, "public witness: %v", err)
	}

	vector, ok := pub.Vector().(fr.Vector)
	if !ok {
		return nil, errorsmod.Wrapf(ErrBackendFailure, "unexpected witness vector %T", pub.Vector())
	}

	words := make([][]byte, len(vector))
	for i := range vector {
		word := vector[i].Bytes()
		words[i] = word[:]
	}
	return words, nil
}

// publicWitnessFromWords rebuilds a public witness out of the words a
// combined proof carries. Words must be canonical field elements.
func publicWitnessFromWords(field *big.Int, words [][]byte) (witness.Witness, error) {
	w, err := witness.New(field)
	if err != nil {
		return nil, errorsmod.Wrapf(ErrBackendFailure, "create witness: %v", err)
	}

	values := make(chan any, len(words))
	for i, word := range words {
		v := new(big.Int).SetBytes(word)
		if v.Cmp(field) >= 0 {
			close(values)
			return nil, errorsmod.Wrapf(ErrBackendFailure, "public input %d is not a canonical field element", i)
		}
		values <- v
	}
	close(values)

	if err := w.Fill(len(words), 0, values); err != nil {
		return nil, errorsmod.Wrapf(ErrBackendFailure, "fill public witness: %v", err)
	}
	return w, nil
}
