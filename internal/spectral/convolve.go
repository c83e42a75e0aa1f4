package spectral

import "fmt"

// Convolve returns the cyclic convolution of a and b: both are transformed,
// multiplied pointwise in the frequency domain and transformed back. a and b
// must have the same power-of-two length; to obtain the linear convolution
// that length must be at least len(a₀)+len(b₀)-1 for the unpadded operands.
//
// The result carries small imaginary parts from rounding; only the real part
// is meaningful.
func Convolve(t Transformer, a, b []complex128) []complex128 {
	n := len(a)
	if len(b) != n {
		panic(fmt.Sprintf("spectral: convolution operands have lengths %d and %d", n, len(b)))
	}
	mustPowerOfTwo(n)
	if t == nil {
		t = Default()
	}

	it, ok := t.(intoTransformer)
	if !ok {
		fa := t.Forward(a)
		fb := t.Forward(b)
		pointwiseMul(fa, fb)
		return t.Inverse(fa)
	}

	st := acquireConvState(n)
	defer releaseConvState(st)

	it.transformInto(st.fa, a, false)
	it.transformInto(st.fb, b, false)
	pointwiseMul(st.fa, st.fb)

	out := make([]complex128, n)
	it.transformInto(out, st.fa, true)
	return out
}

// Square returns the cyclic convolution of a with itself using a single
// forward transform.
func Square(t Transformer, a []complex128) []complex128 {
	n := len(a)
	mustPowerOfTwo(n)
	if t == nil {
		t = Default()
	}
	fa := t.Forward(a)
	pointwiseMul(fa, fa)
	return t.Inverse(fa)
}

// ConvolveReal pads the real coefficient vectors a and b with zeros to length
// n and returns the real parts of their convolution. n must be a power of two
// no smaller than len(a)+len(b)-1.
func ConvolveReal(t Transformer, a, b []float64, n int) ([]float64, error) {
	if !IsPowerOfTwo(n) {
		return nil, fmt.Errorf("%w: length %d", ErrNotPowerOfTwo, n)
	}
	if need := len(a) + len(b) - 1; need > n {
		return nil, fmt.Errorf("%w: padded length %d is shorter than the product length %d", ErrLengthMismatch, n, need)
	}

	ca := make([]complex128, n)
	cb := make([]complex128, n)
	for i, x := range a {
		ca[i] = complex(x, 0)
	}
	for i, x := range b {
		cb[i] = complex(x, 0)
	}

	c := Convolve(t, ca, cb)
	out := make([]float64, n)
	for i, x := range c {
		out[i] = real(x)
	}
	return out, nil
}

func pointwiseMul(dst, src []complex128) {
	for i := range dst {
		dst[i] *= src[i]
	}
}
