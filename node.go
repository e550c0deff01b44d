// Package cellflex is a flexbox-inspired layout engine for terminal cells.
//
// A tree of styled boxes (direction, flex-grow, padding, fixed size) is
// measured against an available rectangle, every box is assigned an
// absolute position and size, and the tree is rasterized into a
// fixed-size character grid.
//
// The entry points mirror the phases:
//
//	root := cellflex.Col(
//		cellflex.Text("header").Height(3).Bordered(),
//		cellflex.Row(left, right).Grow(1),
//	)
//	cellflex.Compute(root, 80, 25)        // assign geometry
//	out := cellflex.Render(root, 80, 25)  // geometry + paint + serialize
//
// Compute and Render are pure functions of the tree and the dimensions:
// computed geometry is overwritten from scratch on every call, so
// laying out the same tree repeatedly is idempotent.
package cellflex

// Direction selects the main axis along which a container distributes
// its children.
type Direction uint8

const (
	DirRow    Direction = iota // children side by side, main axis = x
	DirColumn                  // children stacked, main axis = y
)

// JustifyContent describes spacing along the main axis. All values are
// accepted at construction; layout currently places children at the
// main-axis start regardless (see DESIGN.md).
type JustifyContent uint8

const (
	JustifyStart JustifyContent = iota
	JustifyCenter
	JustifyEnd
	JustifySpaceBetween
	JustifySpaceAround
)

// AlignItems describes placement along the cross axis. Children
// stretch to fill the cross axis; the other values are accepted and
// currently treated as AlignStretch (see DESIGN.md).
type AlignItems uint8

const (
	AlignStretch AlignItems = iota
	AlignStart
	AlignCenter
	AlignEnd
)

// Node is a box in the layout tree. Style inputs are set through the
// chainable modifiers before layout and never touched by the engine;
// the computed geometry (X, Y, W, H) is owned by Compute and rewritten
// on every pass.
//
// A node has exactly one owner: its parent, or none for the root.
// Children attach in main-axis order.
type Node struct {
	dir     Direction
	justify JustifyContent
	align   AlignItems

	width  int // explicit size in cells, 0 = derived from parent
	height int

	flexGrow   float64
	flexShrink float64
	flexBasis  int

	margin  int // uniform, all sides
	padding int // uniform, all sides

	border       bool
	borderGlyphs BorderStyle

	style   Style
	content []string

	children []*Node

	// Computed geometry in absolute terminal coordinates. Valid only
	// after Compute; never carried across passes.
	X, Y int
	W, H int
}

// NewNode returns an empty column container with defaults: no fixed
// size, no grow, no border, zero margin and padding.
func NewNode() *Node {
	return &Node{dir: DirColumn, flexShrink: 1}
}

// Row returns a container distributing children horizontally.
func Row(children ...*Node) *Node {
	n := NewNode()
	n.dir = DirRow
	n.children = children
	return n
}

// Col returns a container distributing children vertically.
func Col(children ...*Node) *Node {
	n := NewNode()
	n.children = children
	return n
}

// Text returns a leaf node displaying the given lines.
func Text(lines ...string) *Node {
	n := NewNode()
	n.content = lines
	return n
}

// AddChild appends child to n and returns n for chaining.
func (n *Node) AddChild(child *Node) *Node {
	n.children = append(n.children, child)
	return n
}

// Children returns the node's children in main-axis order.
func (n *Node) Children() []*Node {
	return n.children
}

// Chainable style modifiers. Invalid values are clamped on input so
// layout never sees them.

// Dir sets the main axis.
func (n *Node) Dir(d Direction) *Node {
	n.dir = d
	return n
}

// Justify sets the main-axis spacing policy.
func (n *Node) Justify(j JustifyContent) *Node {
	if j > JustifySpaceAround {
		j = JustifyStart
	}
	n.justify = j
	return n
}

// Align sets the cross-axis placement policy.
func (n *Node) Align(a AlignItems) *Node {
	if a > AlignEnd {
		a = AlignStretch
	}
	n.align = a
	return n
}

// Width fixes the node's width in cells. Negative values clamp to 0
// (unset).
func (n *Node) Width(w int) *Node {
	if w < 0 {
		w = 0
	}
	n.width = w
	return n
}

// Height fixes the node's height in cells.
func (n *Node) Height(h int) *Node {
	if h < 0 {
		h = 0
	}
	n.height = h
	return n
}

// Size fixes both dimensions.
func (n *Node) Size(w, h int) *Node {
	return n.Width(w).Height(h)
}

// Grow sets the node's share of the parent's leftover main-axis space.
func (n *Node) Grow(f float64) *Node {
	if f < 0 {
		f = 0
	}
	n.flexGrow = f
	return n
}

// Shrink is accepted for completeness; nodes never shrink below their
// basis, so the value does not affect layout.
func (n *Node) Shrink(f float64) *Node {
	if f < 0 {
		f = 0
	}
	n.flexShrink = f
	return n
}

// Basis sets the preferred main-axis size used when no explicit size
// is set.
func (n *Node) Basis(b int) *Node {
	if b < 0 {
		b = 0
	}
	n.flexBasis = b
	return n
}

// Margin sets a uniform margin on all sides.
func (n *Node) Margin(m int) *Node {
	if m < 0 {
		m = 0
	}
	n.margin = m
	return n
}

// Pad sets a uniform padding on all sides.
func (n *Node) Pad(p int) *Node {
	if p < 0 {
		p = 0
	}
	n.padding = p
	return n
}

// Bordered draws a single-line border around the node.
func (n *Node) Bordered() *Node {
	n.border = true
	n.borderGlyphs = BorderSingle
	return n
}

// BorderWith draws a border using the given glyph set.
func (n *Node) BorderWith(b BorderStyle) *Node {
	n.border = true
	n.borderGlyphs = b
	return n
}

// Styled sets the style used for the node's border and content.
func (n *Node) Styled(s Style) *Node {
	n.style = s
	return n
}

// Lines replaces the node's content lines.
func (n *Node) Lines(lines ...string) *Node {
	n.content = lines
	return n
}

// borderInset is 1 when the node draws a border, taking one cell from
// each side of the content box.
func (n *Node) borderInset() int {
	if n.border {
		return 1
	}
	return 0
}

// ContentRect returns the node's computed rectangle minus border and
// padding: the area available to children. Sizes clamp to zero.
func (n *Node) ContentRect() (x, y, w, h int) {
	inset := n.padding + n.borderInset()
	x = n.X + inset
	y = n.Y + inset
	w = n.W - 2*inset
	h = n.H - 2*inset
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return x, y, w, h
}

// fixedMain returns the node's explicit main-axis size under dir, with
// the flex basis standing in when no explicit size is set. Zero means
// the node is sized by distribution.
func (n *Node) fixedMain(dir Direction) int {
	var fixed int
	if dir == DirRow {
		fixed = n.width
	} else {
		fixed = n.height
	}
	if fixed == 0 {
		fixed = n.flexBasis
	}
	return fixed
}
