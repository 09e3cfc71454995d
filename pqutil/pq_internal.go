package pqutil

// heap is a complete binary tree stored in a dense slice, the root lives at index zero and the children of 'i' at
// '2i+1' and '2i+2'.
//
// NOTE: Ordering is delegated to 'higher' which must report whether 'a' has a strictly higher priority than 'b'.
type heap[T, P any] struct {
	items  []Item[T, P]
	higher func(a, b P) bool
}

func (h *heap[T, P]) len() int {
	return len(h.items)
}

func (h *heap[T, P]) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
}

// push appends the item as the next leaf and moves it towards the root whilst it outranks its parent; equal
// priorities are never swapped.
func (h *heap[T, P]) push(item Item[T, P]) {
	h.items = append(h.items, item)
	h.up(len(h.items) - 1)
}

// pop removes the root by replacing it with the last leaf and sifting that leaf down.
//
// NOTE: The caller must ensure the heap is non-empty.
func (h *heap[T, P]) pop() Item[T, P] {
	var (
		last = len(h.items) - 1
		root = h.items[0]
	)

	h.items[0] = h.items[last]

	// Zero the vacated slot so the backing array doesn't keep the payload alive.
	h.items[last] = Item[T, P]{}
	h.items = h.items[:last]

	h.down(0)

	return root
}

func (h *heap[T, P]) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.higher(h.items[i].Priority, h.items[parent].Priority) {
			return
		}

		h.swap(i, parent)
		i = parent
	}
}

func (h *heap[T, P]) down(i int) {
	for {
		left, right := 2*i+1, 2*i+2
		if left >= len(h.items) {
			return
		}

		// Prefer the right child when it's at least as high as the left one.
		child := left
		if right < len(h.items) && !h.higher(h.items[left].Priority, h.items[right].Priority) {
			child = right
		}

		if h.higher(h.items[i].Priority, h.items[child].Priority) {
			return
		}

		h.swap(i, child)
		i = child
	}
}
