// Package render serializes a topology graph into textual diagram formats.
//
// Rendering is a pure function over the caller's graph: no renderer keeps
// layout state between calls, and the graph is never mutated. Supported
// formats are ascii, dot, mermaid, json and svg; an unrecognized format tag
// is an error, never a silent fallback.
package render

import (
	"fmt"
	"strings"

	"github.com/vk/txtopo/internal/graph"
)

// Format is a closed tag identifying a diagram serialization.
type Format string

const (
	FormatASCII   Format = "ascii"
	FormatDOT     Format = "dot"
	FormatMermaid Format = "mermaid"
	FormatSVG     Format = "svg"
	FormatJSON    Format = "json"
)

// UnsupportedFormatError reports an unrecognized diagram format tag.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported diagram format %q (supported: ascii, dot, mermaid, svg, json)", e.Format)
}

// ParseFormat maps a user-supplied tag onto a Format. Matching is
// case-insensitive.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatASCII, FormatDOT, FormatMermaid, FormatSVG, FormatJSON:
		return f, nil
	}
	return "", &UnsupportedFormatError{Format: s}
}

// Render serializes the graph into the requested format.
func Render(g *graph.Graph, format Format) (string, error) {
	switch format {
	case FormatASCII:
		return renderASCII(g), nil
	case FormatDOT:
		return renderDOT(g), nil
	case FormatMermaid:
		return renderMermaid(g), nil
	case FormatJSON:
		return renderJSON(g)
	case FormatSVG:
		return renderSVG(g), nil
	}
	return "", &UnsupportedFormatError{Format: string(format)}
}
