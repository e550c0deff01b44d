package cellflex

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestRenderBorderedBox(t *testing.T) {
	root := Text("hi").Bordered()

	got := Render(root, 6, 4)
	want := strings.Join([]string{
		"┌────┐",
		"│hi  │",
		"│    │",
		"└────┘",
	}, "\n")

	if got != want {
		t.Errorf("rendered frame mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderFrameShape(t *testing.T) {
	// Output is always exactly height lines of exactly width cells,
	// whatever the tree looks like.
	root := Col(
		Text("one").Bordered(),
		Row(NewNode().Grow(1).Bordered(), NewNode().Grow(2).Bordered()).Grow(1),
	)

	out := Render(root, 23, 9)
	lines := strings.Split(out, "\n")
	if len(lines) != 9 {
		t.Fatalf("got %d lines, want 9", len(lines))
	}
	for i, line := range lines {
		if w := runewidth.StringWidth(line); w != 23 {
			t.Errorf("line %d is %d cells wide, want 23", i, w)
		}
	}
}

func TestRenderDegenerateBorder(t *testing.T) {
	// A box too thin to hold a border renders without border glyphs
	// and without panicking.
	for _, size := range [][2]int{{2, 5}, {5, 2}, {1, 1}, {2, 2}} {
		root := NewNode().Bordered()
		out := Render(root, size[0], size[1])
		if strings.ContainsAny(out, "┌┐└┘─│") {
			t.Errorf("size %v: expected no border glyphs, got:\n%s", size, out)
		}
	}
}

func TestRenderClipsToTerminal(t *testing.T) {
	// A child wider than the terminal truncates at the edge; nothing
	// is written outside the frame and nothing errors.
	child := NewNode().Width(30).Bordered()
	root := Row(child)

	out := Render(root, 10, 4)
	lines := strings.Split(out, "\n")
	for i, line := range lines {
		if len([]rune(line)) != 10 {
			t.Errorf("line %d is %d runes, want 10", i, len([]rune(line)))
		}
	}
	// Left edge survives, right edge is clipped away.
	if lines[0][:len("┌")] != "┌" {
		t.Errorf("expected top-left corner at origin, got %q", lines[0])
	}
	if strings.Contains(out, "┐") || strings.Contains(out, "┘") {
		t.Error("right-hand corners should have been clipped")
	}
}

func TestRenderContentTruncation(t *testing.T) {
	root := Text(
		"this line is far too long",
		"second",
		"third",
		"fourth never fits",
	).Bordered()

	got := Render(root, 10, 4)
	want := strings.Join([]string{
		"┌────────┐",
		"│this lin│",
		"│second  │",
		"└────────┘",
	}, "\n")

	if got != want {
		t.Errorf("truncated frame mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderIdempotent(t *testing.T) {
	root := Col(
		Text("header").Height(3).Bordered(),
		Row(
			Text("left").Grow(1).Bordered(),
			Text("right").Grow(1).Bordered(),
		).Grow(1),
	)

	first := Render(root, 30, 10)
	for i := 0; i < 3; i++ {
		if again := Render(root, 30, 10); again != first {
			t.Fatalf("render %d differs from first render:\n%s\nvs\n%s", i+2, again, first)
		}
	}
}

func TestRenderChildrenPaintOverParent(t *testing.T) {
	// The child's interior overwrites the parent's content beneath it.
	child := Text("child").Grow(1).Bordered()
	root := Col(child).Bordered().Pad(1)

	out := Render(root, 12, 8)
	if !strings.Contains(out, "child") {
		t.Errorf("child content missing from frame:\n%s", out)
	}
	// Both borders present: outer corner at origin, inner corner
	// inset by the parent's padding + border.
	lines := strings.Split(out, "\n")
	if []rune(lines[0])[0] != '┌' {
		t.Error("outer border missing")
	}
	if []rune(lines[2])[2] != '┌' {
		t.Errorf("inner border missing, line: %q", lines[2])
	}
}

func TestRenderZeroSizeTerminal(t *testing.T) {
	root := Col(Text("anything").Bordered()).Bordered()
	if out := Render(root, 0, 0); out != "" {
		t.Errorf("expected empty frame, got %q", out)
	}
	if out := Render(root, -3, 5); out != "\n\n\n\n" {
		t.Errorf("zero-width frame should be bare newlines, got %q", out)
	}
}

func TestRenderWideRunes(t *testing.T) {
	root := Text("日本語").Bordered()

	out := Render(root, 10, 3)
	lines := strings.Split(out, "\n")
	for i, line := range lines {
		if w := runewidth.StringWidth(line); w != 10 {
			t.Errorf("line %d is %d cells wide, want 10", i, w)
		}
	}
	if !strings.Contains(out, "日本語") {
		t.Errorf("wide content missing:\n%s", out)
	}
}

func TestRenderChildOverWideRunes(t *testing.T) {
	// A child border painting over one half of a wide rune blanks the
	// other half, so every row keeps its exact display width.
	child := NewNode().Width(3).Bordered()
	root := Text("日日日").Bordered().AddChild(child)

	out := Render(root, 10, 5)
	lines := strings.Split(out, "\n")
	for i, line := range lines {
		if w := runewidth.StringWidth(line); w != 10 {
			t.Errorf("line %d is %d cells wide, want 10: %q", i, w, line)
		}
	}
	if lines[1] != "│┌─┐ 日  │" {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestPaintNilSafe(t *testing.T) {
	Paint(nil, NewBuffer(5, 5))
	Paint(Text("x"), nil)
}
