package sparse

import (
	"testing"
)

func TestMatrixSetAndGet(t *testing.T) {
	M := NewIntMatrix(10, 10, -1)
	M.Set(2, 3, 4711)
	M.Set(0, 0, 1)
	M.Set(9, 9, 99)
	M.Set(2, 1, 21)
	if v := M.Value(2, 3); v != 4711 {
		t.Errorf("expected M(2,3) = 4711, is %d", v)
	}
	if v := M.Value(3, 2); v != -1 {
		t.Errorf("expected M(3,2) to be null, is %d", v)
	}
	if v := M.Value(10, 10); v != -1 {
		t.Errorf("expected reads outside of M to be null, is %d", v)
	}
	M.Set(2, 3, 1)
	if M.ValueCount() != 4 || M.Value(2, 3) != 1 {
		t.Errorf("expected Set to overwrite, M(2,3) = %d, count = %d", M.Value(2, 3), M.ValueCount())
	}
	var order [][2]int
	M.Each(func(i, j int, a, b int32) {
		order = append(order, [2]int{i, j})
	})
	expected := [][2]int{{0, 0}, {2, 1}, {2, 3}, {9, 9}}
	for k := range expected {
		if order[k] != expected[k] {
			t.Errorf("expected entries in row-major order, have %v", order)
			break
		}
	}
}

func TestMatrixAdd(t *testing.T) {
	M := NewIntMatrix(3, 3, DefaultNullValue)
	M.Add(1, 1, 5)
	if a, b := M.Values(1, 1); a != 5 || b != DefaultNullValue {
		t.Errorf("expected single value 5, have (%d,%d)", a, b)
	}
	M.Add(1, 1, 7)
	if a, b := M.Values(1, 1); a != 5 || b != 7 {
		t.Errorf("expected pair (5,7), have (%d,%d)", a, b)
	}
	if M.ValueCount() != 1 || M.M() != 3 || M.N() != 3 {
		t.Errorf("expected one position set in a 3x3 matrix")
	}
}

func TestMatrixOutOfRange(t *testing.T) {
	M := NewIntMatrix(2, 2, 0)
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected Set outside of matrix to panic")
		}
	}()
	M.Set(2, 0, 1)
}
