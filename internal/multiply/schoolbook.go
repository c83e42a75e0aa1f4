package multiply

import (
	"context"

	"github.com/agbru/fftmul/internal/progress"
)

// schoolbookCheckInterval is the number of operand rows between cancellation
// checks and progress reports.
const schoolbookCheckInterval = 256

// SchoolbookMultiplier is the O(|A|·|B|) digit-by-digit multiplication. It
// accumulates column sums exactly in int64 and needs no rounding.
type SchoolbookMultiplier struct{}

// Name returns the display name of the algorithm.
func (SchoolbookMultiplier) Name() string {
	return "Schoolbook"
}

// MultiplyCore accumulates every digit product into its column, then
// propagates carries.
func (SchoolbookMultiplier) MultiplyCore(ctx context.Context, report progress.ProgressCallback, a, b string, _ Options) (string, error) {
	la, lb := len(a), len(b)
	cols := make([]int64, la+lb)

	for i := 0; i < la; i++ {
		if i%schoolbookCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return "", err
			}
			report(float64(i) / float64(la))
		}
		x := int64(a[la-1-i] - '0')
		if x == 0 {
			continue
		}
		for j := 0; j < lb; j++ {
			cols[i+j] += x * int64(b[lb-1-j]-'0')
		}
	}

	return columnsToDigits(cols), nil
}

// columnsToDigits normalizes least-significant-first column sums into a
// decimal string without leading zeros.
func columnsToDigits(cols []int64) string {
	out := make([]byte, 0, len(cols)+1)
	var carry int64
	for _, c := range cols {
		v := c + carry
		out = append(out, byte('0'+v%10))
		carry = v / 10
	}
	for carry > 0 {
		out = append(out, byte('0'+carry%10))
		carry /= 10
	}

	last := len(out) - 1
	for last > 0 && out[last] == '0' {
		last--
	}
	if last < 0 {
		return "0"
	}
	out = out[:last+1]
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out)
}
