package format

import (
	"fmt"
	"strings"
)

// FormatNumberString inserts thousands separators into a decimal digit
// string. A leading minus sign is preserved.
func FormatNumberString(s string) string {
	if s == "" {
		return ""
	}
	prefix := ""
	if s[0] == '-' {
		prefix = "-"
		s = s[1:]
	}
	n := len(s)
	if n <= 3 {
		return prefix + s
	}

	var b strings.Builder
	b.Grow(len(prefix) + n + (n-1)/3)
	b.WriteString(prefix)
	first := n % 3
	if first == 0 {
		first = 3
	}
	b.WriteString(s[:first])
	for i := first; i < n; i += 3 {
		b.WriteByte(',')
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// TruncateDigits shortens a long digit string to its first and last edge
// digits joined by an ellipsis. Strings of at most limit digits are returned
// unchanged.
func TruncateDigits(s string, limit, edges int) string {
	if len(s) <= limit || 2*edges >= len(s) {
		return s
	}
	return s[:edges] + "..." + s[len(s)-edges:]
}

// FormatBytes renders a byte count with a binary unit suffix, such as
// "1.50 MiB".
func FormatBytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
