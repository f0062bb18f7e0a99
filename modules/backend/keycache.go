package backend

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/consensys/gnark/backend/plonk"
	"github.com/consensys/gnark/constraint"
	lru "github.com/hashicorp/golang-lru/v2"
)

// circuitKeys is everything a setup produces for one (circuit, srs) pair.
type circuitKeys struct {
	ccs     constraint.ConstraintSystem
	pk      plonk.ProvingKey
	vk      plonk.VerifyingKey
	vkBytes []byte
}

// keyCache memoises setups. A nil cache never hits.
type keyCache struct {
	entries *lru.Cache[string, *circuitKeys]
}

func newKeyCache(size int) (*keyCache, error) {
	if size <= 0 {
		return nil, nil
	}
	entries, err := lru.New[string, *circuitKeys](size)
	if err != nil {
		return nil, err
	}
	return &keyCache{entries: entries}, nil
}

func keyCacheKey(bytecode, srsPath string) string {
	digest := sha256.Sum256([]byte(bytecode))
	return hex.EncodeToString(digest[:]) + "|" + srsPath
}

func (c *keyCache) get(key string) (*circuitKeys, bool) {
	if c == nil {
		return nil, false
	}
	return c.entries.Get(key)
}

func (c *keyCache) add(key string, keys *circuitKeys) {
	if c == nil {
		return
	}
	c.entries.Add(key, keys)
}
