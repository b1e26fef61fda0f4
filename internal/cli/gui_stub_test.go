//go:build !ebiten

package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGUIWithoutTag(t *testing.T) {
	_, err := execute(t, "gui")
	assert.Error(t, err)
}
