// Package spectral implements the radix-2 Cooley-Tukey discrete Fourier
// transform over complex128 sequences and the convolution built on it.
//
// Two interchangeable strategies are provided: a recursive even/odd split and
// an iterative bit-reversal plus bottom-up butterfly schedule. Both use the
// same sign convention, forward X[k] = sum x[j]·e^{+2πijk/n}, and the inverse
// applies the 1/n normalization exactly once.
//
// All lengths passed to a transform must be powers of two. The package-level
// Transform and ConvolveReal functions validate this and return
// ErrNotPowerOfTwo; the strategy methods assume it and panic otherwise.
package spectral
