package manifest

import (
	"math"

	errorsmod "cosmossdk.io/errors"
	"github.com/rs/zerolog"
)

// Introspector is the part of the proving backend able to read the public
// input count out of circuit bytecode.
type Introspector interface {
	NumPublicInputs(bytecode string) (int, error)
}

// Counter reports how many public input words a circuit declares.
type Counter struct {
	introspector Introspector
	logger       zerolog.Logger
}

func NewCounter(introspector Introspector, logger zerolog.Logger) *Counter {
	return &Counter{introspector: introspector, logger: logger}
}

// CountStrict reads the manifest at path and asks the backend for the count.
func (c *Counter) CountStrict(path string) (uint32, error) {
	m, err := Read(path)
	if err != nil {
		return 0, err
	}

	n, err := c.introspector.NumPublicInputs(m.Bytecode)
	if err != nil {
		return 0, err
	}
	if n < 0 || uint64(n) > math.MaxUint32 {
		return 0, errorsmod.Wrapf(ErrManifest, "public input count %d out of range", n)
	}
	return uint32(n), nil
}

// Count is CountStrict with every failure folded into 0, so "zero public
// inputs" and "count unknown" look the same to the caller.
func (c *Counter) Count(path string) uint32 {
	n, err := c.CountStrict(path)
	if err != nil {
		c.logger.Warn().Err(err).Str("circuit", path).Msg("cannot count public inputs, reporting 0")
		return 0
	}
	return n
}
