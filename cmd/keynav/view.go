package main

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"

	"github.com/dshills/keynav/internal/block"
)

// line is one rendered row of the navigation graph.
type line struct {
	node  block.Node
	depth int
	text  string
}

// drawWorkspace renders the navigation graph, one node per row, with
// the focused node highlighted.
func drawWorkspace(screen tcell.Screen, ws *block.Workspace, status string) {
	screen.Clear()
	width, height := screen.Size()

	lines := collectLines(ws)
	focused := ws.Focus().Focused()

	header := "keynav"
	if ws.IsReadOnly() {
		header += "  [read-only]"
	}
	drawText(screen, 0, 0, width, header, tcell.StyleDefault.Bold(true))

	row := 2
	for _, ln := range lines {
		if row >= height-1 {
			break
		}
		style := tcell.StyleDefault.Foreground(depthColor(ln.depth))
		if ln.node == focused {
			style = style.Reverse(true).Bold(true)
		}
		text := strings.Repeat("  ", ln.depth) + ln.text
		drawText(screen, 0, row, width, text, style)
		row++
	}

	if status != "" {
		drawText(screen, 0, height-1, width, status, tcell.StyleDefault.Dim(true))
	}
	screen.Show()
}

// collectLines walks the navigation graph in pre-order.
func collectLines(ws *block.Workspace) []line {
	var out []line
	seen := make(map[block.Node]bool)
	var walk func(n block.Node, depth int)
	walk = func(n block.Node, depth int) {
		for ; n != nil && !seen[n]; n = n.NextSibling() {
			seen[n] = true
			out = append(out, line{node: n, depth: depth, text: describe(n)})
			walk(n.FirstChild(), depth+1)
		}
	}
	walk(ws.FirstChild(), 0)
	return out
}

// describe renders one node as a short label.
func describe(n block.Node) string {
	switch node := n.(type) {
	case *block.Block:
		return "[" + node.Type() + "]"
	case *block.Connection:
		label := "(" + node.ConnectionKind().String() + ")"
		if !node.IsConnected() {
			label += " ·"
		}
		return label
	case *block.Field:
		return fmt.Sprintf("%s=%q", node.Name(), node.Text())
	case *block.Comment:
		return "# " + node.Text()
	default:
		return n.Kind().String()
	}
}

// depthColor tints nesting levels around the hue wheel, matching the
// audio cue that plays on depth changes.
func depthColor(depth int) tcell.Color {
	hue := float64((200 + depth*47) % 360)
	c := colorful.Hsv(hue, 0.35, 0.95)
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// drawText writes a clipped single-line string, measuring cells per
// grapheme cluster so wide runes stay aligned.
func drawText(screen tcell.Screen, x, y, maxWidth int, text string, style tcell.Style) {
	state := -1
	var cluster string
	for len(text) > 0 && x < maxWidth {
		cluster, text, _, state = uniseg.FirstGraphemeClusterInString(text, state)
		runes := []rune(cluster)
		if len(runes) == 0 {
			break
		}
		screen.SetContent(x, y, runes[0], runes[1:], style)
		x += uniseg.StringWidth(cluster)
	}
}
