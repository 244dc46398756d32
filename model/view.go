package model

// View is a read-only window onto a Grid owned by someone else. It is valid
// until the owner next mutates or swaps the grid.
type View struct {
	g *Grid
}

// NewView borrows g for reading.
func NewView(g *Grid) View {
	return View{g: g}
}

// Dimensions returns the width and height of the viewed grid.
func (v View) Dimensions() (int, int) { return v.g.Dimensions() }

// Get returns the state of a cell, failing with ErrOutOfBounds outside the grid.
func (v View) Get(x, y int) (bool, error) { return v.g.Get(x, y) }

// Alive reports whether (x, y) is alive; out-of-range coordinates read as dead.
// Renderers iterating over Dimensions() use this to skip error handling.
func (v View) Alive(x, y int) bool {
	return v.g.InBounds(x, y) && v.g.alive(x, y)
}

// CountLivingCells returns the number of live cells.
func (v View) CountLivingCells() int { return v.g.CountLivingCells() }

// Hash returns the digest of the viewed cell states.
func (v View) Hash() string { return v.g.Hash() }
