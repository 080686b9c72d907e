package myuuid

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRealUUIDer(t *testing.T) {
	uuider := RealUUIDer{}

	first := uuider.Create()
	second := uuider.Create()

	_, err := uuid.Parse(first)
	assert.NoError(t, err)
	assert.NotEqual(t, first, second)
}
