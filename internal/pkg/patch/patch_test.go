//go:build unit

package patch_test

import (
	"testing"

	"hotelfront/internal/pkg/patch"
	"hotelfront/internal/pkg/ptr"

	"github.com/stretchr/testify/assert"
)

func TestCoalesce(t *testing.T) {
	assert.Equal(t, 3, patch.Coalesce(ptr.Of(3), 0))
	assert.Equal(t, 0, patch.Coalesce[int](nil, 0))
	assert.Equal(t, "x", patch.Coalesce[string](nil, "x"))
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "b", patch.FirstNonEmpty("", "b", "c"))
	assert.Equal(t, "", patch.FirstNonEmpty("", ""))
	assert.Equal(t, "", patch.FirstNonEmpty())
}
