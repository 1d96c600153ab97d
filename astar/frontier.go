// File: frontier.go
// Role: Open-set implementations for the search loop.
//
// Determinism:
//   - Both frontiers select the lowest f-score; among equal f-scores the
//     entry that joined the frontier earliest wins. A node whose f-score is
//     lowered while it waits keeps its original place in that order.
//
// AI-HINT (file):
//   - linearFrontier is the reference; orderedFrontier must agree with it
//     on every selection (see TestFrontiersAgree).

package astar

import "github.com/tidwall/btree"

// frontier is the open set of the search.
// f is read from the runner's score table, so lowering f[index] must be
// reported through update before the next pop.
type frontier interface {
	push(index int)
	update(index int, oldF float64)
	pop() int
	contains(index int) bool
	len() int
}

func newFrontier(kind FrontierKind, f []float64) frontier {
	if kind == FrontierOrdered {
		return newOrderedFrontier(f)
	}

	return newLinearFrontier(f)
}

// linearFrontier stores members in insertion order and scans for the minimum.
type linearFrontier struct {
	f      []float64
	order  []int
	member []bool
}

func newLinearFrontier(f []float64) *linearFrontier {
	return &linearFrontier{f: f, member: make([]bool, len(f))}
}

func (l *linearFrontier) push(index int) {
	l.order = append(l.order, index)
	l.member[index] = true
}

// update is a no-op: the scan reads the current f-score directly.
func (l *linearFrontier) update(int, float64) {}

// pop removes the first member holding the lowest f-score.
// Complexity: O(len).
func (l *linearFrontier) pop() int {
	best := 0
	for k := 1; k < len(l.order); k++ {
		if l.f[l.order[k]] < l.f[l.order[best]] {
			best = k
		}
	}
	index := l.order[best]
	l.order = append(l.order[:best], l.order[best+1:]...)
	l.member[index] = false

	return index
}

func (l *linearFrontier) contains(index int) bool { return l.member[index] }

func (l *linearFrontier) len() int { return len(l.order) }

// openItem is a B-tree key: f-score first, then insertion sequence.
type openItem struct {
	f     float64
	seq   uint64
	index int
}

func openItemLess(a, b openItem) bool {
	if a.f != b.f {
		return a.f < b.f
	}

	return a.seq < b.seq
}

// orderedFrontier keeps members sorted by (f, seq).
type orderedFrontier struct {
	f     []float64
	tree  *btree.BTreeG[openItem]
	seqOf map[int]uint64
	next  uint64
}

func newOrderedFrontier(f []float64) *orderedFrontier {
	return &orderedFrontier{
		f:     f,
		tree:  btree.NewBTreeG[openItem](openItemLess),
		seqOf: make(map[int]uint64),
	}
}

func (o *orderedFrontier) push(index int) {
	o.seqOf[index] = o.next
	o.tree.Set(openItem{f: o.f[index], seq: o.next, index: index})
	o.next++
}

// update re-keys index under its current f-score, keeping its sequence number.
// Complexity: O(log len).
func (o *orderedFrontier) update(index int, oldF float64) {
	seq, ok := o.seqOf[index]
	if !ok {
		return
	}
	o.tree.Delete(openItem{f: oldF, seq: seq})
	o.tree.Set(openItem{f: o.f[index], seq: seq, index: index})
}

// pop removes the lowest (f, seq) entry.
// Complexity: O(log len).
func (o *orderedFrontier) pop() int {
	item, _ := o.tree.PopMin()
	delete(o.seqOf, item.index)

	return item.index
}

func (o *orderedFrontier) contains(index int) bool {
	_, ok := o.seqOf[index]

	return ok
}

func (o *orderedFrontier) len() int { return o.tree.Len() }
