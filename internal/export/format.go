// Package export writes the timeline page in machine-readable and
// standalone document formats.
package export

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/janani/internal/app"
)

// Format names an export encoding.
type Format string

const (
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "md"
	FormatSVG      Format = "svg"
	FormatHTML     Format = "html"
)

// Formats lists every supported format in help-text order.
var Formats = []Format{FormatJSON, FormatYAML, FormatMarkdown, FormatSVG, FormatHTML}

var ErrUnknownFormat = errors.New("unknown export format")

var formatAliases = map[string]Format{
	"json":     FormatJSON,
	"yaml":     FormatYAML,
	"yml":      FormatYAML,
	"md":       FormatMarkdown,
	"markdown": FormatMarkdown,
	"svg":      FormatSVG,
	"html":     FormatHTML,
	"htm":      FormatHTML,
}

// ParseFormat resolves a format name. Unknown names produce an
// INVALID_FORMAT *app.TimelineError.
func ParseFormat(s string) (Format, error) {
	v := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "."))
	if f, ok := formatAliases[v]; ok {
		return f, nil
	}
	err := fmt.Errorf("%w: %q (want one of %s)", ErrUnknownFormat, s, formatList())
	return "", &app.TimelineError{Code: app.ErrInvalidFormat, Message: err.Error(), Err: err}
}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return ParseFormat(path)
	}
	return ParseFormat(ext)
}

// Write encodes resp to w in format f.
func Write(w io.Writer, f Format, resp *app.TimelineResponse) error {
	if resp == nil {
		return errors.New("export: nil timeline response")
	}
	switch f {
	case FormatJSON:
		return WriteJSON(w, resp)
	case FormatYAML:
		return WriteYAML(w, resp)
	case FormatMarkdown:
		_, err := io.WriteString(w, Markdown(resp))
		return err
	case FormatSVG:
		return WriteSVG(w, resp)
	case FormatHTML:
		return WriteHTML(w, resp)
	}
	_, err := ParseFormat(string(f))
	return err
}

func formatList() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
