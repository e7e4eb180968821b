package lr

import (
	"bytes"
	"fmt"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// Item is an LR(1) item: a rule with a dot position and a lookahead terminal.
//
//    [ E ➞ E + · T, $ ]
//
// Items are values and compare equal if all three components are equal.
type Item struct {
	rule *Rule
	dot  int
	la   *Symbol
}

// StartItem returns the item for a rule with the dot in front of the right
// hand side.
func StartItem(r *Rule, la *Symbol) Item {
	return Item{rule: r, dot: 0, la: la}
}

// Rule returns the item's rule.
func (i Item) Rule() *Rule {
	return i.rule
}

// Dot returns the dot position, between 0 and the length of the rule.
func (i Item) Dot() int {
	return i.dot
}

// Lookahead returns the lookahead terminal.
func (i Item) Lookahead() *Symbol {
	return i.la
}

// PeekSymbol returns the symbol after the dot, or nil if the item is complete.
func (i Item) PeekSymbol() *Symbol {
	if i.dot >= len(i.rule.rhs) {
		return nil
	}
	return i.rule.rhs[i.dot]
}

// Advance moves the dot over the next symbol. Advancing a complete item
// returns the item unchanged.
func (i Item) Advance() Item {
	if i.dot < len(i.rule.rhs) {
		i.dot++
	}
	return i
}

// Prefix returns the symbols in front of the dot.
func (i Item) Prefix() []*Symbol {
	return i.rule.rhs[:i.dot]
}

// Rest returns the symbols behind the dot.
func (i Item) Rest() []*Symbol {
	return i.rule.rhs[i.dot:]
}

// IsComplete is true if the dot is behind the right hand side.
func (i Item) IsComplete() bool {
	return i.dot >= len(i.rule.rhs)
}

func (i Item) String() string {
	var b bytes.Buffer
	b.WriteString("[")
	b.WriteString(i.rule.LHS.Name)
	b.WriteString(" ➞")
	for k, A := range i.rule.rhs {
		if k == i.dot {
			b.WriteString(" ·")
		}
		b.WriteString(" ")
		b.WriteString(A.Name)
	}
	if i.IsComplete() {
		b.WriteString(" ·")
	}
	b.WriteString(", ")
	b.WriteString(i.la.Name)
	b.WriteString("]")
	return b.String()
}

// --- Item sets -------------------------------------------------------------

// itemComparator defines the canonical order of items within a state:
// by rule number, then dot position, then lookahead.
func itemComparator(i1, i2 interface{}) int {
	a := i1.(Item)
	b := i2.(Item)
	if c := utils.IntComparator(a.rule.Serial, b.rule.Serial); c != 0 {
		return c
	}
	if c := utils.IntComparator(a.dot, b.dot); c != 0 {
		return c
	}
	return symbolComparator(a.la, b.la)
}

func newItemSet() *treeset.Set {
	return treeset.NewWith(itemComparator)
}

func asItem(x interface{}) Item {
	return x.(Item)
}

// itemSetsEqual compares two item sets. Both iterate in canonical order, so a
// pairwise comparison suffices.
func itemSetsEqual(S1, S2 *treeset.Set) bool {
	if S1.Size() != S2.Size() {
		return false
	}
	v1, v2 := S1.Values(), S2.Values()
	for k := range v1 {
		if asItem(v1[k]) != asItem(v2[k]) {
			return false
		}
	}
	return true
}

type itemKey struct {
	Rule      int
	Dot       int
	Lookahead int
}

type itemSetDigest struct {
	Items []itemKey
}

// itemSetHash returns a digest of the canonical item list of S. Equal item sets
// have equal digests; the converse has to be checked by itemSetsEqual.
func itemSetHash(S *treeset.Set) string {
	d := itemSetDigest{Items: make([]itemKey, 0, S.Size())}
	for _, x := range S.Values() {
		i := asItem(x)
		d.Items = append(d.Items, itemKey{i.rule.Serial, i.dot, i.la.serial})
	}
	h, err := structhash.Hash(d, 1)
	if err != nil {
		tracer().Errorf("cannot hash item set: %v", err)
		return fmt.Sprintf("%v", d.Items)
	}
	return h
}

func itemSetString(S *treeset.Set) string {
	var b bytes.Buffer
	b.WriteString("{")
	first := true
	for _, x := range S.Values() {
		if first {
			b.WriteString(" ")
			first = false
		} else {
			b.WriteString(", ")
		}
		b.WriteString(asItem(x).String())
	}
	b.WriteString(" }")
	return b.String()
}

// Dump is a debugging helper, tracing the items of an item set.
func Dump(S *treeset.Set) {
	for _, x := range S.Values() {
		tracer().Debugf("    %v", asItem(x))
	}
}
