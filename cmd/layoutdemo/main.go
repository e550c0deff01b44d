// Command layoutdemo renders a static dashboard through the full
// cellflex pipeline and prints the frame to stdout. Useful for
// eyeballing the layout engine without a TUI loop.
package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"cellflex"
)

func main() {
	width, height := 80, 25
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && h > 1 {
		width, height = w, h-1
	}

	fmt.Println(cellflex.Render(buildScene(), width, height))
}

// buildScene assembles the demo tree: a fixed header and footer
// sandwiching a sidebar and a content column, every box exercising a
// different mix of fixed size, grow weight, and border.
func buildScene() *cellflex.Node {
	files := cellflex.Text(
		"Files",
		"",
		"├── layout.go",
		"├── raster.go",
		"├── buffer.go",
		"└── node.go",
	).Grow(1).Bordered()

	search := cellflex.Text(
		"Search",
		"",
		"Pattern: *.go",
		"Results: 7 files",
	).Height(8).Bordered()

	sidebar := cellflex.Col(files, search).Width(30)

	code := cellflex.Text(
		"Code Viewer",
		"",
		"func Render(n *Node, w, h int) string {",
		"    Compute(n, w, h)",
		"    buf := NewBuffer(w, h)",
		"    Paint(n, buf)",
		"    return buf.String()",
		"}",
	).Grow(2).Bordered()

	console := cellflex.Text(
		"Console",
		"$ layoutdemo",
		"frame rendered",
	).Height(10).Bordered()

	content := cellflex.Col(code, console).Grow(1)

	return cellflex.Col(
		cellflex.Text("cellflex layout demo").Height(3).Bordered(),
		cellflex.Row(sidebar, content).Grow(1),
		cellflex.Text("q:Quit  r:Refresh  h:Help").Height(3).Bordered(),
	).BorderWith(cellflex.BorderRounded)
}
