package cellflex

// Raster pass. Paint walks a computed tree parent-first and draws each
// node's border and content into a cell buffer; children paint on top
// of their parent. Geometry is already absolute, so repainting the
// same computed tree any number of times gives the same frame.
//
// Nothing in this pass can fail: rectangles outside the buffer clip
// silently and boxes too small for their decoration draw nothing.

// minBorderSize is the smallest rectangle that can hold a border and
// still have an interior.
const minBorderSize = 3

// Paint draws n and its descendants into buf using the geometry from
// the last Compute.
func Paint(n *Node, buf *Buffer) {
	if n == nil || buf == nil {
		return
	}
	paintNode(n, buf)
	for _, child := range n.children {
		Paint(child, buf)
	}
}

func paintNode(n *Node, buf *Buffer) {
	if n.W <= 0 || n.H <= 0 {
		return
	}

	if n.border && n.W >= minBorderSize && n.H >= minBorderSize {
		glyphs := n.borderGlyphs
		if glyphs.TopLeft == 0 {
			glyphs = BorderSingle
		}
		buf.DrawBorder(n.X, n.Y, n.W, n.H, glyphs, n.style)
	}

	// Content is inset one cell on every side and clipped to the
	// interior; excess lines and characters are dropped.
	if len(n.content) == 0 || n.W <= 2 || n.H <= 2 {
		return
	}
	innerW := n.W - 2
	innerH := n.H - 2
	for i, line := range n.content {
		if i >= innerH {
			break
		}
		buf.WriteString(n.X+1, n.Y+1+i, line, n.style, innerW)
	}
}

// Render lays out the tree against a width x height terminal and
// returns the painted frame: height rows of exactly width cells
// joined by newlines. Negative dimensions clamp to zero.
func Render(n *Node, width, height int) string {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	Compute(n, width, height)
	buf := NewBuffer(width, height)
	Paint(n, buf)
	return buf.String()
}
