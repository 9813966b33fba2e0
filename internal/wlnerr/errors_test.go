package wlnerr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_MessageIncludesOffsetWhenPresent(t *testing.T) {
	err := New(Syntax, 4, "unexpected %q", 'Q')
	assert.Equal(t, `syntax-error at byte 4: unexpected 'Q'`, err.Error())
}

func TestError_MessageOmitsOffsetWhenNegative(t *testing.T) {
	err := New(Semantic, -1, "no input offset here")
	assert.Equal(t, "semantic-error: no input offset here", err.Error())
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		k    Kind
		want string
	}{
		{Syntax, "syntax-error"},
		{Semantic, "semantic-error"},
		{RingBuilder, "ring-builder-failure"},
		{Kekulization, "kekulization-failed"},
		{CapacityExceeded, "capacity-exceeded"},
		{Kind(99), "unknown-error"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.k.String())
	}
}

func TestCaret_PointsAtOffset(t *testing.T) {
	got := Caret("L6J", 2)
	assert.Equal(t, "L6J\n  ^", got)
}

func TestCaret_OutOfRangeOffsetReturnsInputUnchanged(t *testing.T) {
	assert.Equal(t, "abc", Caret("abc", -1))
	assert.Equal(t, "abc", Caret("abc", 10))
}

func TestCaret_PreservesTabIndentation(t *testing.T) {
	got := Caret("\tL6J", 3)
	assert.Equal(t, "\tL6J\n\t  ^", got)
}
