package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatReturnNumber(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		n      int
		want   string
	}{
		{
			name:   "first customer return",
			prefix: RETURN_NUMBER_PREFIX_CUSTOMER,
			n:      1,
			want:   "RET-00001",
		},
		{
			name:   "first vendor return",
			prefix: RETURN_NUMBER_PREFIX_VENDOR,
			n:      1,
			want:   "VRT-00001",
		},
		{
			name:   "padding holds through five digits",
			prefix: RETURN_NUMBER_PREFIX_CUSTOMER,
			n:      99999,
			want:   "RET-99999",
		},
		{
			name:   "numbers wider than the padding are not truncated",
			prefix: RETURN_NUMBER_PREFIX_CUSTOMER,
			n:      123456,
			want:   "RET-123456",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatReturnNumber(tt.prefix, tt.n))
		})
	}
}

func TestParseReturnNumberSuffix(t *testing.T) {
	tests := []struct {
		name   string
		number string
		want   int
	}{
		{
			name:   "well formed",
			number: "RET-00042",
			want:   42,
		},
		{
			name:   "vendor prefix",
			number: "VRT-00007",
			want:   7,
		},
		{
			name:   "no separator",
			number: "RET00042",
			want:   0,
		},
		{
			name:   "non numeric suffix",
			number: "RET-abc",
			want:   0,
		},
		{
			name:   "empty",
			number: "",
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseReturnNumberSuffix(tt.number))
		})
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	for _, n := range []int{1, 10, 505, 99999} {
		got := ParseReturnNumberSuffix(FormatReturnNumber(RETURN_NUMBER_PREFIX_CUSTOMER, n))
		assert.Equal(t, n, got)
	}
}
