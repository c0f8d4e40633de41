package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLimit(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want int
	}{
		{"10", 10},
		{"1", 1},
		{"100", 100},
		{"500", 100},
		{"0", 10},
		{"-5", 10},
		{"", 10},
		{"abc", 10},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ParseLimit(tc.in, 10, 100), "input %q", tc.in)
	}
}
