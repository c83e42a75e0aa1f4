package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/rs/zerolog/log"

	apperrors "github.com/agbru/fftmul/internal/errors"
	"github.com/agbru/fftmul/internal/multiply"
)

// maxBatchToken bounds a single operand read in batch mode.
const maxBatchToken = 64 << 20

// RunBatch reads a count n followed by n operand pairs from in and writes one
// product per line to out. Tokens are separated by any whitespace, so pairs
// may span lines.
//
// A malformed count, a missing operand or an invalid operand stops the run
// with an apperrors.ValidationError naming the offending field ("count" or
// "pair <i>", 1-based). Products written before the failure are flushed.
//
// Parameters:
//   - ctx: Checked before each pair and passed to the multiplier.
//   - in: The batch input.
//   - out: Receives one product per line.
//   - m: The multiplier to use.
//   - opts: Options passed to every multiplication.
//
// Returns:
//   - error: The first failure, or nil.
func RunBatch(ctx context.Context, in io.Reader, out io.Writer, m multiply.Multiplier, opts multiply.Options) (err error) {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxBatchToken)
	scanner.Split(bufio.ScanWords)

	w := bufio.NewWriter(out)
	defer func() {
		if ferr := w.Flush(); err == nil && ferr != nil {
			err = fmt.Errorf("flushing batch output: %w", ferr)
		}
	}()

	next := func() (string, error) {
		if scanner.Scan() {
			return scanner.Text(), nil
		}
		if serr := scanner.Err(); serr != nil {
			return "", serr
		}
		return "", io.ErrUnexpectedEOF
	}

	tok, err := next()
	if err != nil {
		return apperrors.ValidationError{Field: "count", Message: "missing pair count", Cause: err}
	}
	n, err := strconv.Atoi(tok)
	if err != nil || n < 0 {
		return apperrors.NewValidationError("count", "invalid pair count %q", tok)
	}

	for i := 1; i <= n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		field := "pair " + strconv.Itoa(i)

		a, err := next()
		if err != nil {
			return apperrors.ValidationError{Field: field, Message: "missing operand", Cause: err}
		}
		b, err := next()
		if err != nil {
			return apperrors.ValidationError{Field: field, Message: "missing operand", Cause: err}
		}

		product, err := m.Multiply(ctx, a, b, opts)
		if err != nil {
			var ve apperrors.ValidationError
			if errors.As(err, &ve) {
				return apperrors.ValidationError{Field: field, Message: ve.Error(), Cause: err}
			}
			return fmt.Errorf("%s: %w", field, err)
		}
		if _, err := fmt.Fprintln(w, product); err != nil {
			return fmt.Errorf("writing batch output: %w", err)
		}
	}

	log.Debug().Int("pairs", n).Str("algo", m.Name()).Msg("batch completed")
	return nil
}
