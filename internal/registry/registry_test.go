package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/jobwirego/internal/descriptor"
)

func TestRegistry(t *testing.T) {
	t.Parallel()

	t.Run("duplicates collapse and listing is sorted", func(t *testing.T) {
		r := New()
		require.NoError(t, r.Add(descriptor.Package{Role: "beta", Name: "tool", Version: 2}))
		require.NoError(t, r.Add(descriptor.Package{Role: "alpha", Name: "tool", Version: 1}))
		require.NoError(t, r.Add(descriptor.Package{Role: "alpha", Name: "tool", Version: 1}))

		assert.Equal(t, []descriptor.Package{
			{Role: "alpha", Name: "tool", Version: 1},
			{Role: "beta", Name: "tool", Version: 2},
		}, r.List())
	})

	t.Run("malformed names are rejected", func(t *testing.T) {
		r := New()
		assert.Error(t, r.Add(descriptor.Package{Role: "bad/role", Name: "tool", Version: 1}))
		assert.Error(t, r.Add(descriptor.Package{Role: "ops", Name: "", Version: 1}))
		assert.Error(t, r.Add(descriptor.Package{Role: "ops", Name: "tool", Version: -1}))
		assert.Empty(t, r.List())
	})
}
