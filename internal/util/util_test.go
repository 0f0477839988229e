package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewULID(t *testing.T) {
	a := NewULID()
	b := NewULID()
	assert.Len(t, a, 26)
	assert.NotEqual(t, a, b)
	assert.Less(t, a, b, "ULIDs are monotonic")
	assert.True(t, IsULID(a))
	assert.False(t, IsULID("not-a-ulid"))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"Cough", "Cold"}, SplitList(" Cough, Cold ,", ","))
	assert.Equal(t, []string{"Boil water", "Add ginger"}, SplitList("Boil water; Add ginger", ";"))
	assert.Empty(t, SplitList("", ","))
}

func TestNewToken(t *testing.T) {
	a, err := NewToken()
	assert.NoError(t, err)
	b, err := NewToken()
	assert.NoError(t, err)
	assert.Len(t, a, 24)
	assert.NotEqual(t, a, b)
	assert.Regexp(t, `^[A-Za-z0-9_-]+$`, a)
}
