package cellflex

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Buffer is a 2D grid of cells representing one terminal frame. It is
// a transient value: Render allocates one per call and never retains
// it. All writes are bounds-checked; out-of-range cells are dropped
// silently.
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer returns a buffer of the given size filled with empty
// cells. Negative dimensions are clamped to zero.
func NewBuffer(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	cells := make([]Cell, width*height)
	empty := EmptyCell()
	for i := range cells {
		cells[i] = empty
	}
	return &Buffer{cells: cells, width: width, height: height}
}

// Width returns the buffer width in cells.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in rows.
func (b *Buffer) Height() int { return b.height }

// InBounds reports whether (x, y) lies inside the buffer.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

func (b *Buffer) index(x, y int) int { return y*b.width + x }

// Get returns the cell at (x, y), or an empty cell out of bounds.
func (b *Buffer) Get(x, y int) Cell {
	if !b.InBounds(x, y) {
		return EmptyCell()
	}
	return b.cells[b.index(x, y)]
}

// Set writes the cell at (x, y). Border runes merge with any border
// rune already in the cell, so touching boxes share junctions.
// Overwriting either half of a wide rune blanks the other half, so
// every row keeps its exact display width.
func (b *Buffer) Set(x, y int, c Cell) {
	if !b.InBounds(x, y) {
		return
	}
	idx := b.index(x, y)
	old := b.cells[idx]
	if merged, ok := mergeBorders(old.Rune, c.Rune); ok {
		c.Rune = merged
	}
	if old.Rune == 0 && x > 0 {
		if lead := b.index(x-1, y); runewidth.RuneWidth(b.cells[lead].Rune) == 2 {
			b.cells[lead] = EmptyCell()
		}
	} else if runewidth.RuneWidth(old.Rune) == 2 && x+1 < b.width {
		if cont := b.index(x+1, y); b.cells[cont].Rune == 0 {
			b.cells[cont] = EmptyCell()
		}
	}
	b.cells[idx] = c
}

// Fill sets every cell in the buffer to c.
func (b *Buffer) Fill(c Cell) {
	for i := range b.cells {
		b.cells[i] = c
	}
}

// Clear resets the buffer to empty cells.
func (b *Buffer) Clear() { b.Fill(EmptyCell()) }

// FillRect fills a rectangle with c. The rectangle is clipped to the
// buffer.
func (b *Buffer) FillRect(x, y, width, height int, c Cell) {
	for dy := 0; dy < height; dy++ {
		for dx := 0; dx < width; dx++ {
			b.Set(x+dx, y+dy, c)
		}
	}
}

// WriteString writes s starting at (x, y), advancing by display width.
// Wide runes occupy two cells; the continuation cell is zero-runed so
// serialization emits nothing for it. Writing stops at the right edge
// or after maxWidth cells if maxWidth > 0. Returns cells written.
func (b *Buffer) WriteString(x, y int, s string, style Style, maxWidth int) int {
	written := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if maxWidth > 0 && written+w > maxWidth {
			break
		}
		if !b.InBounds(x, y) || x+w > b.width {
			break
		}
		b.Set(x, y, NewCell(r, style))
		if w == 2 {
			b.Set(x+1, y, Cell{Rune: 0, Style: style})
		}
		x += w
		written += w
	}
	return written
}

// HLine draws length cells of r horizontally from (x, y).
func (b *Buffer) HLine(x, y, length int, r rune, style Style) {
	for i := 0; i < length; i++ {
		b.Set(x+i, y, NewCell(r, style))
	}
}

// VLine draws length cells of r vertically from (x, y).
func (b *Buffer) VLine(x, y, length int, r rune, style Style) {
	for i := 0; i < length; i++ {
		b.Set(x, y+i, NewCell(r, style))
	}
}

// Row returns row y as a string of exactly Width display cells.
// Zero-runed continuation cells contribute nothing; untouched cells
// are spaces.
func (b *Buffer) Row(y int) string {
	var sb strings.Builder
	for x := 0; x < b.width; x++ {
		c := b.Get(x, y)
		if c.Rune == 0 {
			continue
		}
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// String serializes the buffer as Height rows joined by newlines, each
// row exactly Width cells wide.
func (b *Buffer) String() string {
	rows := make([]string, b.height)
	for y := 0; y < b.height; y++ {
		rows[y] = b.Row(y)
	}
	return strings.Join(rows, "\n")
}

// Resize grows or shrinks the buffer, preserving content that still
// fits.
func (b *Buffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if width == b.width && height == b.height {
		return
	}
	cells := make([]Cell, width*height)
	empty := EmptyCell()
	for i := range cells {
		cells[i] = empty
	}
	minW, minH := b.width, b.height
	if width < minW {
		minW = width
	}
	if height < minH {
		minH = height
	}
	for y := 0; y < minH; y++ {
		copy(cells[y*width:y*width+minW], b.cells[y*b.width:y*b.width+minW])
	}
	b.cells = cells
	b.width = width
	b.height = height
}
