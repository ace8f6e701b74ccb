package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/goliatone/go-doclint/pkg/interfaces"
)

// Inspect parses the Markdown source and collects the structural inventory
// audit rules operate on: links, images, headings, and fenced code blocks.
// The goldmark AST supplies links, images, and headings; fences are scanned
// textually because the parser silently closes unterminated blocks at EOF.
func (p *GoldmarkParser) Inspect(source []byte) (*interfaces.Inventory, error) {
	engine := newGoldmarkEngine(p.defaultOptions)
	root := engine.Parser().Parse(text.NewReader(source))

	inventory := &interfaces.Inventory{}

	err := ast.Walk(root, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n := node.(type) {
		case *ast.Link:
			inventory.Links = append(inventory.Links, interfaces.Link{
				Destination: string(n.Destination),
				Title:       string(n.Title),
				Text:        string(n.Text(source)),
				Kind:        classifyDestination(string(n.Destination)),
				Line:        nodeLine(n, source),
			})
		case *ast.AutoLink:
			dest := string(n.URL(source))
			inventory.Links = append(inventory.Links, interfaces.Link{
				Destination: dest,
				Text:        dest,
				Kind:        classifyDestination(dest),
				Line:        nodeLine(n, source),
			})
		case *ast.Image:
			inventory.Images = append(inventory.Images, interfaces.Image{
				Destination: string(n.Destination),
				AltText:     string(n.Text(source)),
				Line:        nodeLine(n, source),
			})
		case *ast.Heading:
			heading := interfaces.Heading{
				Level: n.Level,
				Text:  string(n.Text(source)),
				Line:  nodeLine(n, source),
			}
			if id, ok := n.AttributeString("id"); ok {
				if raw, ok := id.([]byte); ok {
					heading.Anchor = string(raw)
				}
			}
			inventory.Headings = append(inventory.Headings, heading)
		}

		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, fmt.Errorf("markdown inspect: %w", err)
	}

	inventory.CodeFences = scanCodeFences(source)

	return inventory, nil
}

// classifyDestination buckets a link destination for rule dispatch. Pure
// fragment links stay separate so anchor resolution can target the same
// document; anything with a URL scheme is external.
func classifyDestination(dest string) interfaces.LinkKind {
	trimmed := strings.TrimSpace(dest)
	if strings.HasPrefix(trimmed, "#") {
		return interfaces.LinkFragment
	}
	if hasScheme(trimmed) {
		return interfaces.LinkExternal
	}
	return interfaces.LinkInternal
}

func hasScheme(dest string) bool {
	if strings.Contains(dest, "://") {
		return true
	}
	for _, prefix := range []string{"mailto:", "tel:", "ftp:", "data:"} {
		if strings.HasPrefix(dest, prefix) {
			return true
		}
	}
	return false
}

// nodeLine resolves the 1-based source line for a node. Inline nodes carry no
// position, so we climb to the nearest ancestor block that retains source
// segments and count newlines up to its start offset.
func nodeLine(node ast.Node, source []byte) int {
	for current := node; current != nil; current = current.Parent() {
		if current.Type() != ast.TypeBlock {
			continue
		}
		lines := current.Lines()
		if lines == nil || lines.Len() == 0 {
			continue
		}
		start := lines.At(0).Start
		if start > len(source) {
			return 0
		}
		return 1 + bytes.Count(source[:start], []byte{'\n'})
	}
	return 0
}

// scanCodeFences walks the raw source line by line tracking fence openings and
// closings. goldmark cannot report unterminated fences, so the scan keeps the
// commonmark rules that matter for documentation trees: a closing fence must
// use the same marker character and at least as many markers as the opener.
func scanCodeFences(source []byte) []interfaces.CodeFence {
	var fences []interfaces.CodeFence

	var open *interfaces.CodeFence
	var openMarker byte
	var openLength int

	lines := bytes.Split(source, []byte{'\n'})
	for i, line := range lines {
		trimmed, ok := stripFenceIndent(line)
		if !ok {
			continue
		}
		marker, length := fenceMarker(trimmed)
		if length < 3 {
			continue
		}

		if open == nil {
			info := strings.TrimSpace(string(trimmed[length:]))
			language := info
			if idx := strings.IndexAny(info, " \t"); idx >= 0 {
				language = info[:idx]
			}
			fences = append(fences, interfaces.CodeFence{
				Language: language,
				Line:     i + 1,
			})
			open = &fences[len(fences)-1]
			openMarker = marker
			openLength = length
			continue
		}

		// A closing fence has no info string and matches the opening marker.
		if marker == openMarker && length >= openLength && len(bytes.TrimSpace(trimmed[length:])) == 0 {
			open.Closed = true
			open = nil
		}
	}

	return fences
}

// stripFenceIndent removes up to three leading spaces. Deeper indentation
// (four spaces or a tab) makes the line an indented code block, so fence
// markers shown inside one must not be treated as real fences.
func stripFenceIndent(line []byte) ([]byte, bool) {
	indent := 0
	for indent < len(line) && line[indent] == ' ' {
		indent++
	}
	if indent > 3 {
		return nil, false
	}
	if indent < len(line) && line[indent] == '\t' {
		return nil, false
	}
	return line[indent:], true
}

// fenceMarker returns the fence character and run length when the line starts
// a backtick or tilde fence.
func fenceMarker(line []byte) (byte, int) {
	if len(line) == 0 {
		return 0, 0
	}
	marker := line[0]
	if marker != '`' && marker != '~' {
		return 0, 0
	}
	length := 0
	for length < len(line) && line[length] == marker {
		length++
	}
	return marker, length
}
