package format

import "testing"

func TestTruncateDigits(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in           string
		limit, edges int
		want         string
	}{
		{"12345", 10, 2, "12345"},
		{"1234567890", 4, 2, "12...90"},
		{"1234567890", 10, 2, "1234567890"},
		{"123456", 2, 3, "123456"},
	}
	for _, tc := range tests {
		if got := TruncateDigits(tc.in, tc.limit, tc.edges); got != tc.want {
			t.Errorf("TruncateDigits(%q, %d, %d) = %q, want %q", tc.in, tc.limit, tc.edges, got, tc.want)
		}
	}
}

func TestFormatBytes(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   uint64
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.00 KiB"},
		{1536, "1.50 KiB"},
		{1 << 20, "1.00 MiB"},
		{3 << 30, "3.00 GiB"},
	}
	for _, tc := range tests {
		if got := FormatBytes(tc.in); got != tc.want {
			t.Errorf("FormatBytes(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
