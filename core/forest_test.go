package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/mstree/core"
)

// chain links 0 ← 1 ← 2 ← ... ← n-1 so that Root(n-1) walks n-1 links.
func chain(f *core.Forest) {
	for i := f.Len() - 1; i > 0; i-- {
		f.Link(i, i-1)
	}
}

func TestForest_Singletons(t *testing.T) {
	f := core.NewForest(4)
	for i := 0; i < 4; i++ {
		assert.Equal(t, i, f.Root(i))
	}
	assert.Equal(t, 4, f.Components())
	assert.False(t, f.Same(0, 1))
}

func TestForest_LinkWithoutCompression(t *testing.T) {
	f := core.NewForest(5)
	chain(f)

	root, depth := f.RootDepth(4)
	assert.Equal(t, 0, root)
	assert.Equal(t, 4, depth)
	// Without compression the chain is untouched.
	assert.Equal(t, 3, f.Parent(4))
	assert.Equal(t, 4, f.MaxDepth())
	assert.Equal(t, 1, f.Components())
}

func TestForest_PathCompression(t *testing.T) {
	f := core.NewForest(5, core.WithPathCompression())
	chain(f)

	assert.Equal(t, 0, f.Root(4))
	for i := 1; i < 5; i++ {
		assert.Equal(t, 0, f.Parent(i), "vertex %d must point at the root", i)
	}
	_, depth := f.RootDepth(4)
	assert.Equal(t, 1, depth)
}

func TestForest_Reset(t *testing.T) {
	f := core.NewForest(3)
	f.Link(2, 0)
	assert.True(t, f.Same(0, 2))

	f.Reset()
	assert.False(t, f.Same(0, 2))
	assert.Zero(t, f.MaxDepth())
}
