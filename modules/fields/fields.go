package fields

import (
	"fmt"
	"math/big"
	"strings"

	eccFields "github.com/PolyhedraZK/ExpanderCompilerCollection/ecgo/field"
)

// ECCFieldEnum is the enum value indicating the field a public input word
// is an element of
type ECCFieldEnum uint64

// The enum assignment is aligning with the ones on ECGO side.
const (
	// ECCBN254 is the ECCFieldEnum for BN254 scalar field
	ECCBN254 ECCFieldEnum = 2
	// ECCM31 is the ECCFieldEnum for Mersenne31 field
	ECCM31 ECCFieldEnum = 1
	// ECCGF2 is the ECCFieldEnum for Galois2 field
	ECCGF2 ECCFieldEnum = 3
)

// ParseFieldEnum maps a config/CLI field name onto its ECCFieldEnum.
func ParseFieldEnum(name string) (ECCFieldEnum, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bn254", "":
		return ECCBN254, nil
	case "m31", "mersenne31":
		return ECCM31, nil
	case "gf2":
		return ECCGF2, nil
	default:
		return 0, fmt.Errorf(`unknown field "%s"`, name)
	}
}

func (f ECCFieldEnum) String() string {
	switch f {
	case ECCBN254:
		return "bn254"
	case ECCM31:
		return "m31"
	case ECCGF2:
		return "gf2"
	default:
		return fmt.Sprintf("field(%d)", uint64(f))
	}
}

func (f ECCFieldEnum) GetFieldEngine() eccFields.Field {
	return eccFields.GetFieldById(uint64(f))
}

// FieldModulus finds the modulus for the base field tied to the ECC field enum
func (f ECCFieldEnum) FieldModulus() *big.Int {
	fieldEngine := f.GetFieldEngine()
	return fieldEngine.Field()
}

// FieldBytes stand for the number of bytes of the base field modulus
// tied to the ECC field enum, i.e., the width of one serialized element
func (f ECCFieldEnum) FieldBytes() uint {
	fieldModulus := f.FieldModulus()
	bitLen := fieldModulus.BitLen()
	// NOTE: round up against bit-byte rate
	return (uint(bitLen) + 8 - 1) / 8
}

// SameModulus reports whether modulus is the base field modulus of f.
func (f ECCFieldEnum) SameModulus(modulus *big.Int) bool {
	if modulus == nil {
		return false
	}
	return f.FieldModulus().Cmp(modulus) == 0
}
