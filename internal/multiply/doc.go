// Package multiply multiplies arbitrarily long non-negative decimal integers
// given as digit strings.
//
// The core path encodes both operands as coefficient vectors (least
// significant digit first), zero-pads them to the next power of two of their
// combined length, convolves them through the spectral package and decodes
// the rounded coefficients back into digits with carry propagation.
//
// Several Multiplier implementations are registered in a factory so they can
// be compared side by side: the two transform strategies, a schoolbook
// multiplication and a math/big reference. Building with the "gmp" tag adds a
// GMP-backed reference as well.
package multiply
