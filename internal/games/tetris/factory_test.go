package tetris

import "testing"

// seqRand replays a fixed sequence of values, wrapping around. It makes
// shape selection deterministic in tests.
type seqRand struct {
	vals []int
	i    int
}

func (r *seqRand) Intn(n int) int {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v % n
}

func TestFactoryCount(t *testing.T) {
	f := NewShapeFactory(&seqRand{vals: []int{0}})
	if f.Count() != 7 {
		t.Errorf("Count() = %d, expected the 7 standard tetrominoes", f.Count())
	}
}

func TestFactoryCreateCoversCatalog(t *testing.T) {
	f := NewShapeFactory(&seqRand{vals: []int{0, 1, 2, 3, 4, 5, 6}})

	for i, table := range shapeTables {
		s := f.Create()
		want := newShape(table)
		if !s.Equal(want) {
			t.Errorf("Create() #%d did not match template %d", i, i)
		}
	}
}

func TestFactoryCreateReturnsCopies(t *testing.T) {
	f := NewShapeFactory(&seqRand{vals: []int{1}}) // stick

	first := f.Create()
	first.Rotate()

	second := f.Create()
	if second.Height() != 4 || second.Width() != 1 {
		t.Errorf("Template mutated through a created shape: got %dx%d",
			second.Height(), second.Width())
	}
}
