package core

import "math/rand/v2"

// TokenSpace bounds the identity tokens handed out by RNG.Token.
const TokenSpace = 10_000_000

// RNG is a thin convenience wrapper around math/rand/v2 used to mint opaque
// identity tokens.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Token returns a pseudo-random token in [0, TokenSpace). Tokens are not
// unique; two calls may return the same value.
func (r *RNG) Token() uint32 {
	if r == nil || r.r == nil {
		return uint32(rand.IntN(TokenSpace))
	}
	return uint32(r.r.IntN(TokenSpace))
}
