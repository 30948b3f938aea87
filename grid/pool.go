package grid

import "fmt"

// Intner is the random source the pool draws from. *rand.Rand and
// *dice.Roller both satisfy it.
type Intner interface {
	Intn(n int) int
}

// Pool is the set of interior cells still eligible for a one-time random
// draw during a generation pass.
type Pool struct {
	cells []Cell
	index map[Cell]int
}

// NewPool creates a pool already filled for a columns x rows board.
func NewPool(columns, rows int) *Pool {
	p := &Pool{}
	p.InitializeFreeCells(columns, rows)
	return p
}

// InitializeFreeCells resets the pool to the interior of the board: every
// cell with 1 <= x <= columns-2 and 1 <= y <= rows-2. The ring at x=0,
// y=0, x=columns-1 and y=rows-1 stays out of the pool so a path along the
// edges is always open.
func (p *Pool) InitializeFreeCells(columns, rows int) {
	w, h := columns-2, rows-2
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	p.cells = make([]Cell, 0, w*h)
	p.index = make(map[Cell]int, w*h)
	for x := 1; x < columns-1; x++ {
		for y := 1; y < rows-1; y++ {
			c := Cell{X: x, Y: y}
			p.index[c] = len(p.cells)
			p.cells = append(p.cells, c)
		}
	}
}

// Sample removes and returns a uniformly chosen free cell.
func (p *Pool) Sample(r Intner) (Cell, error) {
	if len(p.cells) == 0 {
		return Cell{}, ErrExhausted
	}
	c := p.cells[r.Intn(len(p.cells))]
	p.Reserve(c)
	return c, nil
}

// Reserve takes c out of the pool without drawing it. It reports whether c
// was still available.
func (p *Pool) Reserve(c Cell) bool {
	i, ok := p.index[c]
	if !ok {
		return false
	}
	last := len(p.cells) - 1
	if i != last {
		moved := p.cells[last]
		p.cells[i] = moved
		p.index[moved] = i
	}
	p.cells = p.cells[:last]
	delete(p.index, c)
	return true
}

// SampleN draws n distinct cells. Nothing is drawn if n exceeds what is left.
func (p *Pool) SampleN(r Intner, n int) ([]Cell, error) {
	if n > len(p.cells) {
		return nil, fmt.Errorf("%w: need %d cells, %d left", ErrExhausted, n, len(p.cells))
	}
	out := make([]Cell, 0, n)
	for i := 0; i < n; i++ {
		c, err := p.Sample(r)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// Len returns the number of cells left.
func (p *Pool) Len() int {
	return len(p.cells)
}

// Contains reports whether c can still be drawn.
func (p *Pool) Contains(c Cell) bool {
	_, ok := p.index[c]
	return ok
}
