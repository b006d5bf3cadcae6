// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package satisfaction

import "sort"

// meanTable accumulates running sums per key and remembers first-seen order
// so ties resolve deterministically.
type meanTable[K comparable] struct {
	index  map[K]int
	keys   []K
	sums   []float64
	counts []int
}

func newMeanTable[K comparable]() *meanTable[K] {
	return &meanTable[K]{index: make(map[K]int)}
}

func (m *meanTable[K]) add(key K, v float64) {
	i, ok := m.index[key]
	if !ok {
		i = len(m.keys)
		m.index[key] = i
		m.keys = append(m.keys, key)
		m.sums = append(m.sums, 0)
		m.counts = append(m.counts, 0)
	}
	m.sums[i] += v
	m.counts[i]++
}

func (m *meanTable[K]) mean(i int) float64 {
	return m.sums[i] / float64(m.counts[i])
}

func (m *meanTable[K]) averages() map[K]float64 {
	out := make(map[K]float64, len(m.keys))
	for i, k := range m.keys {
		out[k] = m.mean(i)
	}
	return out
}

// best returns the key with the highest mean; the earliest key wins ties.
func (m *meanTable[K]) best() (K, bool) {
	var zero K
	if len(m.keys) == 0 {
		return zero, false
	}
	bi := 0
	for i := 1; i < len(m.keys); i++ {
		if m.mean(i) > m.mean(bi) {
			bi = i
		}
	}
	return m.keys[bi], true
}

// countTable counts occurrences per key in first-seen order.
type countTable[K comparable] struct {
	index  map[K]int
	keys   []K
	counts []int
}

func newCountTable[K comparable]() *countTable[K] {
	return &countTable[K]{index: make(map[K]int)}
}

func (c *countTable[K]) inc(key K) {
	i, ok := c.index[key]
	if !ok {
		i = len(c.keys)
		c.index[key] = i
		c.keys = append(c.keys, key)
		c.counts = append(c.counts, 0)
	}
	c.counts[i]++
}

func (c *countTable[K]) get(key K) int {
	if i, ok := c.index[key]; ok {
		return c.counts[i]
	}
	return 0
}

func (c *countTable[K]) asMap() map[K]int {
	out := make(map[K]int, len(c.keys))
	for i, k := range c.keys {
		out[k] = c.counts[i]
	}
	return out
}

// top returns up to n keys by descending count; earlier keys win ties.
func (c *countTable[K]) top(n int) []K {
	order := make([]int, len(c.keys))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return c.counts[order[a]] > c.counts[order[b]]
	})
	if n > len(order) {
		n = len(order)
	}
	out := make([]K, 0, n)
	for _, i := range order[:n] {
		out = append(out, c.keys[i])
	}
	return out
}

// best returns the most frequent key; the earliest key wins ties.
func (c *countTable[K]) best() (K, bool) {
	top := c.top(1)
	if len(top) == 0 {
		var zero K
		return zero, false
	}
	return top[0], true
}
