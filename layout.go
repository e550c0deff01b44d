package cellflex

// Layout pass. Compute walks the tree once, top-down, assigning every
// node an absolute rectangle in terminal coordinates. Nothing is read
// from previous passes: stale geometry is overwritten, never added to,
// so the pass is idempotent.

// Compute assigns computed geometry to n and all of its descendants
// given an available rectangle anchored at the origin. Negative
// dimensions clamp to zero.
func Compute(n *Node, availW, availH int) {
	if n == nil {
		return
	}
	if availW < 0 {
		availW = 0
	}
	if availH < 0 {
		availH = 0
	}
	computeAt(n, 0, 0, availW, availH)
}

// computeAt resolves n's own rectangle at the absolute position
// (x, y), then splits the content box among children along the main
// axis. Explicit sizes win over the parent's allotment.
func computeAt(n *Node, x, y, availW, availH int) {
	w := availW
	if n.width > 0 {
		w = n.width
	}
	h := availH
	if n.height > 0 {
		h = n.height
	}
	n.X, n.Y, n.W, n.H = x, y, w, h

	if len(n.children) == 0 {
		return
	}

	cx, cy, cw, ch := n.ContentRect()
	var mainExtent, crossExtent int
	if n.dir == DirRow {
		mainExtent, crossExtent = cw, ch
	} else {
		mainExtent, crossExtent = ch, cw
	}

	slots := distribute(n.children, n.dir, mainExtent)

	cursor := 0
	for i, child := range n.children {
		m := child.margin

		mainPos := cursor + m
		mainSize := slots[i] - 2*m
		if mainSize < 0 {
			mainSize = 0
		}
		crossSize := crossExtent - 2*m
		if crossSize < 0 {
			crossSize = 0
		}

		if n.dir == DirRow {
			computeAt(child, cx+mainPos, cy+m, mainSize, crossSize)
		} else {
			computeAt(child, cx+m, cy+mainPos, crossSize, mainSize)
		}
		cursor += slots[i]
	}
}

// distribute splits extent cells of main-axis space into one slot per
// child. Children with an explicit main-axis size (or flex basis) take
// that size plus their margin; the remainder is shared among the
// flexible children by flex-grow weight, or evenly when no child
// grows. Integer truncation never drops cells: the leftover goes to
// the last flexible child, so the flexible slots sum exactly to the
// remaining space.
func distribute(children []*Node, dir Direction, extent int) []int {
	slots := make([]int, len(children))

	remaining := extent
	var totalGrow float64
	var flexible []int // indexes of children sized by distribution
	for i, child := range children {
		if fixed := child.fixedMain(dir); fixed > 0 {
			slots[i] = fixed + 2*child.margin
			remaining -= slots[i]
			continue
		}
		flexible = append(flexible, i)
		totalGrow += child.flexGrow
	}
	if len(flexible) == 0 {
		return slots
	}
	if remaining < 0 {
		remaining = 0
	}

	distributed := 0
	if totalGrow > 0 {
		for _, i := range flexible {
			share := int(float64(remaining) * children[i].flexGrow / totalGrow)
			slots[i] = share
			distributed += share
		}
	} else {
		share := remaining / len(flexible)
		for _, i := range flexible {
			slots[i] = share
			distributed += share
		}
	}

	// Truncation leftover goes to the last flexible child.
	slots[flexible[len(flexible)-1]] += remaining - distributed
	return slots
}
