package minheap_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstree/minheap"
)

// tagged is a value with a sort key and an identity used to observe stability.
type tagged struct {
	key int
	tag string
}

func byKey(a, b tagged) bool { return a.key < b.key }

func drain(t *testing.T, h *minheap.Heap[tagged]) []tagged {
	t.Helper()
	var out []tagged
	for h.Len() > 0 {
		x, err := h.DeleteMin()
		require.NoError(t, err)
		out = append(out, x)
	}

	return out
}

func TestDeleteMin_Empty(t *testing.T) {
	h := minheap.New(byKey)
	_, err := h.DeleteMin()
	assert.ErrorIs(t, err, minheap.ErrEmpty)
}

func TestDeleteMin_Ascending(t *testing.T) {
	h := minheap.New(func(a, b int) bool { return a < b })
	r := rand.New(rand.NewSource(7))
	want := make([]int, 200)
	for i := range want {
		want[i] = r.Intn(50)
		h.Insert(want[i])
	}
	sort.Ints(want)

	got := make([]int, 0, len(want))
	for h.Len() > 0 {
		x, err := h.DeleteMin()
		require.NoError(t, err)
		got = append(got, x)
	}
	assert.Equal(t, want, got)
}

func TestDeleteMin_TiesInInsertionOrder(t *testing.T) {
	h := minheap.New(byKey)
	h.Insert(tagged{3, "c1"})
	h.Insert(tagged{1, "a1"})
	h.Insert(tagged{3, "c2"})
	h.Insert(tagged{1, "a2"})
	h.Insert(tagged{2, "b1"})
	h.Insert(tagged{1, "a3"})

	var tags []string
	for _, x := range drain(t, h) {
		tags = append(tags, x.tag)
	}
	assert.Equal(t, []string{"a1", "a2", "a3", "b1", "c1", "c2"}, tags)
}

func TestMerge_KeepsOtherOrderAfterExisting(t *testing.T) {
	h := minheap.New(byKey)
	h.Insert(tagged{5, "h5"})
	h.Insert(tagged{1, "h1"})

	o := minheap.New(byKey)
	o.Insert(tagged{1, "o1a"})
	o.Insert(tagged{0, "o0"})
	o.Insert(tagged{1, "o1b"})

	h.Merge(o)
	assert.Equal(t, 0, o.Len())
	assert.Equal(t, 5, h.Len())

	var tags []string
	for _, x := range drain(t, h) {
		tags = append(tags, x.tag)
	}
	assert.Equal(t, []string{"o0", "h1", "o1a", "o1b", "h5"}, tags)
}

func TestMerge_SelfAndNil(t *testing.T) {
	h := minheap.New(byKey)
	h.Insert(tagged{1, "x"})
	h.Merge(h)
	h.Merge(nil)
	assert.Equal(t, 1, h.Len())
}

func TestMerge_OtherReusable(t *testing.T) {
	h := minheap.New(byKey)
	o := minheap.New(byKey)
	o.Insert(tagged{2, "first"})
	h.Merge(o)

	o.Insert(tagged{1, "again"})
	x, err := o.DeleteMin()
	require.NoError(t, err)
	assert.Equal(t, "again", x.tag)
}
