// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cache

// nilSlot marks the end of the recency chain.
const nilSlot = -1

// slot holds one entry and its neighbors in recency order.
type slot[K comparable, V any] struct {
	key        K
	value      V
	prev, next int32
}

// lruSlots is a fixed-capacity recency list backed by a slice.
//
// Entries are addressed by slot index; the head is the most recently used.
// Once full, inserting reuses the tail slot, so a warm shard never
// allocates. Not thread-safe; the owning shard holds its lock.
type lruSlots[K comparable, V any] struct {
	slots      []slot[K, V]
	head, tail int32
	capacity   int
}

func newLRUSlots[K comparable, V any](capacity int) *lruSlots[K, V] {
	return &lruSlots[K, V]{
		slots:    make([]slot[K, V], 0, capacity),
		head:     nilSlot,
		tail:     nilSlot,
		capacity: capacity,
	}
}

// Len returns the number of occupied slots.
func (l *lruSlots[K, V]) Len() int {
	return len(l.slots)
}

// At returns the slot at index i.
func (l *lruSlots[K, V]) At(i int32) *slot[K, V] {
	return &l.slots[i]
}

// Insert stores key and value as the most recently used entry and returns
// its index. When the list is full the least recently used entry is
// overwritten and its key returned with evicted set.
func (l *lruSlots[K, V]) Insert(key K, value V) (i int32, old K, evicted bool) {
	if len(l.slots) < l.capacity {
		i = int32(len(l.slots)) //nolint:gosec // G115: capacity fits int32
		l.slots = append(l.slots, slot[K, V]{key: key, value: value, prev: nilSlot, next: nilSlot})
		l.linkFront(i)
		return i, old, false
	}

	i = l.tail
	s := &l.slots[i]
	old = s.key
	s.key, s.value = key, value
	l.MoveToFront(i)
	return i, old, true
}

// MoveToFront marks slot i as most recently used.
func (l *lruSlots[K, V]) MoveToFront(i int32) {
	if i == l.head {
		return
	}
	l.unlink(i)
	l.linkFront(i)
}

// Reset empties the list, keeping its storage.
func (l *lruSlots[K, V]) Reset() {
	clear(l.slots)
	l.slots = l.slots[:0]
	l.head, l.tail = nilSlot, nilSlot
}

func (l *lruSlots[K, V]) linkFront(i int32) {
	s := &l.slots[i]
	s.prev, s.next = nilSlot, l.head
	if l.head != nilSlot {
		l.slots[l.head].prev = i
	}
	l.head = i
	if l.tail == nilSlot {
		l.tail = i
	}
}

func (l *lruSlots[K, V]) unlink(i int32) {
	s := &l.slots[i]
	if s.prev != nilSlot {
		l.slots[s.prev].next = s.next
	} else {
		l.head = s.next
	}
	if s.next != nilSlot {
		l.slots[s.next].prev = s.prev
	} else {
		l.tail = s.prev
	}
	s.prev, s.next = nilSlot, nilSlot
}
