package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// NodeKind discriminates the node types produced by Inline.
type NodeKind int

const (
	// NodePlain is a run of literal text.
	NodePlain NodeKind = iota

	// NodeEmphasis is a run of text to render with visual emphasis.
	NodeEmphasis

	// NodeBullet marks the start of a bullet line; Text is empty.
	NodeBullet

	// NodeLineBreak separates lines; Text is empty.
	NodeLineBreak
)

// Node is one element of the restricted formatting transform.
type Node struct {
	Kind NodeKind
	Text string
}

var emphasisStyle = lipgloss.NewStyle().Bold(true)

// Inline applies the restricted formatting transform to answer text.
//
// It recognizes **bold** spans and leading "*"/"-" bullet markers and
// produces a structured node sequence instead of concatenated markup, so
// no markup in the input can escape into the output. Unterminated bold
// markers are kept as literal text. Used as the fallback when the full
// markdown renderer is unavailable.
func Inline(text string) []Node {
	var nodes []Node

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if i > 0 {
			nodes = append(nodes, Node{Kind: NodeLineBreak})
		}

		rest := line
		trimmed := strings.TrimLeft(line, " \t")
		if strings.HasPrefix(trimmed, "* ") || strings.HasPrefix(trimmed, "- ") {
			nodes = append(nodes, Node{Kind: NodeBullet})
			rest = trimmed[2:]
		}

		nodes = append(nodes, inlineSpans(rest)...)
	}

	return nodes
}

// inlineSpans splits a single line into plain and emphasis runs.
func inlineSpans(line string) []Node {
	var nodes []Node

	for line != "" {
		open := strings.Index(line, "**")
		if open < 0 {
			nodes = append(nodes, Node{Kind: NodePlain, Text: line})
			break
		}

		end := strings.Index(line[open+2:], "**")
		if end < 0 {
			// Unterminated marker stays literal
			nodes = append(nodes, Node{Kind: NodePlain, Text: line})
			break
		}

		if open > 0 {
			nodes = append(nodes, Node{Kind: NodePlain, Text: line[:open]})
		}
		nodes = append(nodes, Node{Kind: NodeEmphasis, Text: line[open+2 : open+2+end]})
		line = line[open+2+end+2:]
	}

	return nodes
}

// RenderNodes renders a node sequence for terminal display.
func RenderNodes(nodes []Node) string {
	var sb strings.Builder

	for _, n := range nodes {
		switch n.Kind {
		case NodeEmphasis:
			sb.WriteString(emphasisStyle.Render(n.Text))
		case NodeBullet:
			sb.WriteString("  • ")
		case NodeLineBreak:
			sb.WriteString("\n")
		default:
			sb.WriteString(n.Text)
		}
	}

	return sb.String()
}

// InlineText is a convenience that runs the restricted transform and
// renders the result in one step.
func InlineText(text string) string {
	return RenderNodes(Inline(text))
}
