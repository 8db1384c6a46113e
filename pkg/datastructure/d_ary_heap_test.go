package datastructure

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinHeapExtractOrder(t *testing.T) {
	for _, d := range []int{2, 3, 4} {
		h := NewDAryHeap[int](d)
		h.Preallocate(64)

		rng := rand.New(rand.NewSource(42))
		ranks := make([]float64, 0, 64)
		for i := 0; i < 64; i++ {
			rank := rng.Float64() * 1000
			ranks = append(ranks, rank)
			h.Insert(NewPriorityQueueNode(rank, i))
		}
		sort.Float64s(ranks)

		for _, want := range ranks {
			node, err := h.ExtractMin()
			require.NoError(t, err)
			assert.Equal(t, want, node.GetRank())
		}
		assert.True(t, h.IsEmpty())
	}
}

func TestMinHeapEmpty(t *testing.T) {
	h := NewBinaryHeap[string]()

	assert.True(t, h.IsEmpty())
	assert.Zero(t, h.Size())
	assert.Equal(t, math.Inf(1), h.GetMinRank())

	_, err := h.GetMin()
	assert.Error(t, err)
	_, err = h.ExtractMin()
	assert.Error(t, err)
}

func TestMinHeapGetMin(t *testing.T) {
	h := NewFourAryHeap[string]()
	h.Insert(NewPriorityQueueNode(3, "c"))
	h.Insert(NewPriorityQueueNode(1, "a"))
	h.Insert(NewPriorityQueueNode(2, "b"))

	min, err := h.GetMin()
	require.NoError(t, err)
	assert.Equal(t, "a", min.GetItem())
	assert.Equal(t, 1.0, h.GetMinRank())
	assert.Equal(t, 3, h.Size())
}

func TestMinHeapDecreaseKey(t *testing.T) {
	h := NewFourAryHeap[string]()

	a := NewPriorityQueueNode(10.0, "a")
	b := NewPriorityQueueNode(20.0, "b")
	c := NewPriorityQueueNode(30.0, "c")
	h.Insert(a)
	h.Insert(b)
	h.Insert(c)

	require.NoError(t, h.DecreaseKey(c, 5))

	node, err := h.ExtractMin()
	require.NoError(t, err)
	assert.Equal(t, "c", node.GetItem())
	assert.Equal(t, 5.0, node.GetRank())

	// increasing the rank is rejected
	assert.Error(t, h.DecreaseKey(a, 15))
	// so is touching a node that already left the heap
	assert.Error(t, h.DecreaseKey(node, 1))
}

func TestMinHeapPositionsTracked(t *testing.T) {
	h := NewBinaryHeap[int]()

	nodes := make([]*PriorityQueueNode[int], 0, 16)
	for i := 15; i >= 0; i-- {
		node := NewPriorityQueueNode(float64(i), i)
		nodes = append(nodes, node)
		h.Insert(node)
	}

	for _, node := range nodes {
		pos := node.GetPos()
		require.GreaterOrEqual(t, pos, 0)
		require.Less(t, pos, h.Size())
		assert.Same(t, node, h.heap[pos])
	}
}
