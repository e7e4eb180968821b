package lr

import (
	"bytes"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// SymbolSet is an ordered set of grammar symbols, used for FIRST and FOLLOW
// sets. Iteration order is terminals by serial (end-of-input marker last),
// then non-terminals, then epsilon. Create one with NewSymbolSet.
type SymbolSet struct {
	set *treeset.Set
}

// NewSymbolSet creates a set containing syms.
func NewSymbolSet(syms ...*Symbol) SymbolSet {
	S := SymbolSet{set: treeset.NewWith(symbolComparator)}
	for _, A := range syms {
		S.set.Add(A)
	}
	return S
}

// Add inserts A. It returns true if A has not been in S before.
func (S SymbolSet) Add(A *Symbol) bool {
	if S.set.Contains(A) {
		return false
	}
	S.set.Add(A)
	return true
}

// AddAll inserts all symbols of other. It returns true if S has changed.
func (S SymbolSet) AddAll(other SymbolSet) bool {
	return S.addAllExcept(other, nil)
}

func (S SymbolSet) addAllExcept(other SymbolSet, except *Symbol) bool {
	changed := false
	for _, A := range other.Symbols() {
		if A != except && S.Add(A) {
			changed = true
		}
	}
	return changed
}

// Contains checks for membership of A.
func (S SymbolSet) Contains(A *Symbol) bool {
	if S.set == nil {
		return false
	}
	return S.set.Contains(A)
}

// Size returns the number of symbols in S.
func (S SymbolSet) Size() int {
	if S.set == nil {
		return 0
	}
	return S.set.Size()
}

// Symbols returns the members of S in set order.
func (S SymbolSet) Symbols() []*Symbol {
	if S.set == nil {
		return nil
	}
	values := S.set.Values()
	syms := make([]*Symbol, len(values))
	for i, v := range values {
		syms[i] = v.(*Symbol)
	}
	return syms
}

// Without returns a copy of S with A removed.
func (S SymbolSet) Without(A *Symbol) SymbolSet {
	R := NewSymbolSet()
	R.addAllExcept(S, A)
	return R
}

// Copy returns a copy of S.
func (S SymbolSet) Copy() SymbolSet {
	R := NewSymbolSet()
	R.AddAll(S)
	return R
}

// Equals is true if S and other contain the same symbols.
func (S SymbolSet) Equals(other SymbolSet) bool {
	if S.Size() != other.Size() {
		return false
	}
	for _, A := range other.Symbols() {
		if !S.Contains(A) {
			return false
		}
	}
	return true
}

// String renders a set as "{ ( n $ }".
func (S SymbolSet) String() string {
	var b bytes.Buffer
	b.WriteString("{")
	for _, A := range S.Symbols() {
		b.WriteString(" ")
		b.WriteString(A.Name)
	}
	b.WriteString(" }")
	return b.String()
}

func symbolRank(A *Symbol) int {
	switch A.kind {
	case TerminalSymbol, EOFSymbol:
		return 0
	case NonTerminalSymbol:
		return 1
	}
	return 2
}

// symbolComparator orders symbols for SymbolSets. Foreign terminals share
// serial -1 and are told apart by name.
func symbolComparator(s1, s2 interface{}) int {
	A := s1.(*Symbol)
	B := s2.(*Symbol)
	if c := utils.IntComparator(symbolRank(A), symbolRank(B)); c != 0 {
		return c
	}
	if c := utils.IntComparator(A.serial, B.serial); c != 0 {
		return c
	}
	return strings.Compare(A.Name, B.Name)
}

// SymbolString concatenates the names of syms, as used for the stack and
// input columns of parse traces.
func SymbolString(syms []*Symbol) string {
	var b bytes.Buffer
	for _, A := range syms {
		b.WriteString(A.Name)
	}
	return b.String()
}
