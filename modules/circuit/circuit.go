// Package circuit holds the reference circuits the bridge ships manifests
// for, and compiles gnark circuits into manifests.
package circuit

import (
	"fmt"
	"sort"

	"github.com/consensys/gnark/frontend"

	"github.com/moven0831/mopro-wallet-connect-noir/modules/manifest"
)

// Definition is a circuit together with the ABI callers use to feed it.
type Definition interface {
	frontend.Circuit
	ABI() manifest.ABI
}

func field(name, visibility string) manifest.Parameter {
	return manifest.Parameter{
		Name:       name,
		Type:       manifest.ParameterType{Kind: "field"},
		Visibility: visibility,
	}
}

// Multiplier2Circuit proves knowledge of a factorization: a * b == c,
// with only c public.
type Multiplier2Circuit struct {
	A frontend.Variable `gnark:"a"`
	B frontend.Variable `gnark:"b"`
	C frontend.Variable `gnark:"c,public"`
}

func (c *Multiplier2Circuit) Define(api frontend.API) error {
	api.AssertIsEqual(api.Mul(c.A, c.B), c.C)
	return nil
}

func (c *Multiplier2Circuit) ABI() manifest.ABI {
	return manifest.ABI{
		Parameters: []manifest.Parameter{
			field("a", manifest.VisibilityPrivate),
			field("b", manifest.VisibilityPrivate),
			field("c", manifest.VisibilityPublic),
		},
	}
}

// AffineCircuit proves knowledge of x with a + b * x == expected.
// The ABI interleaves the private x between public parameters, so callers
// order inputs differently from the witness.
type AffineCircuit struct {
	A        frontend.Variable `gnark:"a,public"`
	B        frontend.Variable `gnark:"b,public"`
	X        frontend.Variable `gnark:"x"`
	Expected frontend.Variable `gnark:"expected,public"`
}

// NOTE: circuit behavior: A + B \cdot X == Expected
func (c *AffineCircuit) Define(api frontend.API) error {
	z := api.Add(c.A, api.Mul(c.B, c.X))
	api.AssertIsEqual(c.Expected, z)
	return nil
}

func (c *AffineCircuit) ABI() manifest.ABI {
	return manifest.ABI{
		Parameters: []manifest.Parameter{
			field("a", manifest.VisibilityPublic),
			field("b", manifest.VisibilityPublic),
			field("x", manifest.VisibilityPrivate),
			field("expected", manifest.VisibilityPublic),
		},
	}
}

var registry = map[string]func() Definition{
	"multiplier2": func() Definition { return &Multiplier2Circuit{} },
	"affine":      func() Definition { return &AffineCircuit{} },
}

// Lookup returns a fresh placeholder of the named reference circuit.
func Lookup(name string) (Definition, error) {
	newCircuit, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf(`unknown circuit "%s", have %v`, name, Names())
	}
	return newCircuit(), nil
}

// Names lists the reference circuits, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
