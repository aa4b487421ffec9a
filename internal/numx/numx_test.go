package numx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want *float64
	}{
		{name: "empty", in: "", want: nil},
		{name: "spaces only", in: "   ", want: nil},
		{name: "integer", in: "42", want: ptr(42)},
		{name: "decimal", in: "3.14", want: ptr(3.14)},
		{name: "negative", in: "-250000", want: ptr(-250000)},
		{name: "scientific", in: "1e3", want: ptr(1000)},
		{name: "surrounding spaces", in: " 8.5 ", want: ptr(8.5)},
		{name: "zero", in: "0", want: ptr(0)},
		{name: "non numeric", in: "abc", want: nil},
		{name: "trailing garbage", in: "12abc", want: nil},
		{name: "nan", in: "NaN", want: nil},
		{name: "positive infinity", in: "Inf", want: nil},
		{name: "negative infinity", in: "-Inf", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.in)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func ptr(f float64) *float64 { return &f }
