package tetris

// Rand supplies uniform random integers. *math/rand.Rand satisfies it;
// tests substitute a deterministic sequence.
type Rand interface {
	Intn(n int) int
}

// ShapeFactory holds the seven standard tetromino templates and hands out
// independent copies of a uniformly random one. Every call is independent;
// there is no bag or shuffle logic.
type ShapeFactory struct {
	shapes []Shape
	rng    Rand
}

// Shape tables, bottom row first.
var shapeTables = [][][]bool{
	// square
	{
		{true, true},
		{true, true},
	},
	// stick
	{
		{true},
		{true},
		{true},
		{true},
	},
	// J
	{
		{true, false, false},
		{true, true, true},
	},
	// L
	{
		{false, false, true},
		{true, true, true},
	},
	// S
	{
		{false, true, true},
		{true, true, false},
	},
	// Z
	{
		{true, true, false},
		{false, true, true},
	},
	// T
	{
		{false, true, false},
		{true, true, true},
	},
}

// NewShapeFactory creates a factory drawing from the given random source.
func NewShapeFactory(rng Rand) *ShapeFactory {
	shapes := make([]Shape, 0, len(shapeTables))
	for _, table := range shapeTables {
		shapes = append(shapes, newShape(table))
	}
	return &ShapeFactory{shapes: shapes, rng: rng}
}

// Create returns a fresh copy of a random template. Mutating the returned
// shape (e.g. rotating it) never affects the stored templates.
func (f *ShapeFactory) Create() Shape {
	sel := f.rng.Intn(len(f.shapes))
	return f.shapes[sel].Clone()
}

// Count returns the number of templates in the catalog.
func (f *ShapeFactory) Count() int {
	return len(f.shapes)
}
