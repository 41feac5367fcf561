package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewID_IsValid(t *testing.T) {
	a, b := NewID(), NewID()
	assert.NotEqual(t, a, b)
	assert.True(t, ValidID(a))
}

func TestValidID(t *testing.T) {
	for _, id := range []string{DefaultID, "work", "my_list-2", "6f1c2a4e-9a43-4b5e-8f7e-3f0f6d1b2c3d"} {
		assert.True(t, ValidID(id), id)
	}
	for _, id := range []string{"", "has space", "a/b", "dots.not.allowed", string(make([]byte, 65))} {
		assert.False(t, ValidID(id), id)
	}
}
