package wln

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeLocant_RoundTrip(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{1, "A"},
		{2, "B"},
		{23, "W"},
		{24, "X"},
		{25, "Y"},
		{26, "Z"},
		{27, "Z&"},
		{28, "Z&&"},
		{30, "Z&&&&"},
	}
	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			got := EncodeLocant(tc.n)
			assert.Equal(t, tc.want, got)

			n, ok := DecodeLocant(got)
			assert.True(t, ok)
			assert.Equal(t, tc.n, n)
		})
	}
}

func TestDecodeLocant_Malformed(t *testing.T) {
	tests := []string{"", "a", "AB", "Y&", "1"}
	for _, s := range tests {
		t.Run(s, func(t *testing.T) {
			_, ok := DecodeLocant(s)
			assert.False(t, ok)
		})
	}
}

func TestBrokenLocantChild_EncodeMatchesSuffixTable(t *testing.T) {
	parent := 3 // 'C'
	wantSuffixes := []string{"-", "-&", "--", "--&", "-&-", "-&&"}
	for i, want := range wantSuffixes {
		n := BrokenLocantChild(parent, i)
		assert.True(t, IsBrokenLocant(n))
		assert.Equal(t, "C"+want, EncodeLocant(n))
	}
}
