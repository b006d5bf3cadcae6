// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package satisfaction

import (
	"reflect"
	"testing"
)

func TestMeanTable(t *testing.T) {
	t.Parallel()

	m := newMeanTable[string]()
	if _, ok := m.best(); ok {
		t.Fatal("best() on empty table should report false")
	}

	m.add("rpg", 4)
	m.add("puzzle", 5)
	m.add("rpg", 2)
	m.add("roguelike", 5)

	want := map[string]float64{"rpg": 3, "puzzle": 5, "roguelike": 5}
	if got := m.averages(); !reflect.DeepEqual(got, want) {
		t.Errorf("averages() = %v, want %v", got, want)
	}

	// puzzle and roguelike tie at 5; puzzle was seen first.
	if got, _ := m.best(); got != "puzzle" {
		t.Errorf("best() = %q, want puzzle", got)
	}
}

func TestCountTable(t *testing.T) {
	t.Parallel()

	c := newCountTable[string]()
	for _, k := range []string{"b", "a", "c", "a", "b", "d"} {
		c.inc(k)
	}

	tests := []struct {
		name string
		n    int
		want []string
	}{
		{"top one", 1, []string{"b"}},
		{"top three keeps first-seen order on ties", 3, []string{"b", "a", "c"}},
		{"n larger than table", 10, []string{"b", "a", "c", "d"}},
		{"zero", 0, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.top(tt.n); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("top(%d) = %v, want %v", tt.n, got, tt.want)
			}
		})
	}

	if got := c.get("a"); got != 2 {
		t.Errorf("get(a) = %d, want 2", got)
	}
	if got := c.get("missing"); got != 0 {
		t.Errorf("get(missing) = %d, want 0", got)
	}
	if got, ok := c.best(); !ok || got != "b" {
		t.Errorf("best() = %q, %v; want b, true", got, ok)
	}
}
