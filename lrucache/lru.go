//go:build !solution

package lrucache

import "container/list"

type entry[K comparable, V any] struct {
	key   K
	value V
}

// Cache keeps up to capacity entries and evicts the least recently used one.
// A Cache with capacity <= 0 stores nothing.
type Cache[K comparable, V any] struct {
	capacity int
	cache    map[K]*list.Element // key -> element of list
	list     *list.List          // front is the least recently used
}

// New creates a cache holding at most cap entries.
func New[K comparable, V any](cap int) *Cache[K, V] {
	return &Cache[K, V]{
		capacity: cap,
		cache:    make(map[K]*list.Element, max(cap, 0)),
		list:     list.New(),
	}
}

// Get returns the value stored for key and marks it as most recently used.
func (l *Cache[K, V]) Get(key K) (V, bool) {
	elem, ok := l.cache[key]
	if !ok {
		var zero V
		return zero, false
	}

	l.list.MoveToBack(elem)
	return elem.Value.(*entry[K, V]).value, true
}

// Set stores value under key, evicting the oldest entry when full.
func (l *Cache[K, V]) Set(key K, value V) {
	if l.capacity <= 0 {
		return
	}

	if elem, ok := l.cache[key]; ok {
		elem.Value.(*entry[K, V]).value = value
		l.list.MoveToBack(elem)
		return
	}

	if l.list.Len() >= l.capacity {
		if oldest := l.list.Front(); oldest != nil {
			delete(l.cache, oldest.Value.(*entry[K, V]).key)
			l.list.Remove(oldest)
		}
	}

	l.cache[key] = l.list.PushBack(&entry[K, V]{key: key, value: value})
}

// Range calls f for every entry from least to most recently used until f
// returns false.
func (l *Cache[K, V]) Range(f func(key K, value V) bool) {
	for elem := l.list.Front(); elem != nil; elem = elem.Next() {
		e := elem.Value.(*entry[K, V])
		if !f(e.key, e.value) {
			return
		}
	}
}

// Len returns the number of cached entries.
func (l *Cache[K, V]) Len() int {
	return l.list.Len()
}

// Clear drops every entry.
func (l *Cache[K, V]) Clear() {
	l.cache = make(map[K]*list.Element, max(l.capacity, 0))
	l.list = list.New()
}
