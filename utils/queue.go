package utils

// Queue is a FIFO backed by a growable ring buffer.
// Enqueue and Dequeue are O(1) amortized and the backing slice
// is kept between uses, so a drained queue can be refilled without allocating.
type Queue[T any] struct {
	buf  []T
	head int
	size int
}

// NewQueue returns a queue with room for capacity elements before it has to grow.
func NewQueue[T any](capacity int) *Queue[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Queue[T]{buf: make([]T, capacity)}
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int { return q.size }

// Cap returns the current capacity of the ring.
func (q *Queue[T]) Cap() int { return len(q.buf) }

// Enqueue appends v at the tail of the queue.
func (q *Queue[T]) Enqueue(v T) {
	if q.size == len(q.buf) {
		q.grow()
	}
	q.buf[(q.head+q.size)%len(q.buf)] = v
	q.size++
}

// Dequeue removes and returns the element at the head of the queue.
// The second return value is false when the queue is empty.
func (q *Queue[T]) Dequeue() (T, bool) {
	var zero T
	if q.size == 0 {
		return zero, false
	}
	v := q.buf[q.head]
	q.buf[q.head] = zero
	q.head = (q.head + 1) % len(q.buf)
	q.size--
	return v, true
}

// Reset empties the queue while keeping its storage.
func (q *Queue[T]) Reset() {
	var zero T
	for ; q.size > 0; q.size-- {
		q.buf[q.head] = zero
		q.head = (q.head + 1) % len(q.buf)
	}
	q.head = 0
}

// grow doubles the ring and unwraps the elements to the start of the new slice.
func (q *Queue[T]) grow() {
	n := len(q.buf) * 2
	if n == 0 {
		n = 1
	}
	buf := make([]T, n)
	if q.head+q.size <= len(q.buf) {
		copy(buf, q.buf[q.head:q.head+q.size])
	} else {
		k := copy(buf, q.buf[q.head:])
		copy(buf[k:], q.buf[:q.size-k])
	}
	q.buf = buf
	q.head = 0
}
