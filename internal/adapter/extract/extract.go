// Package extract turns raw file contents into the plain text the analyzers score.
package extract

import (
	"fmt"
	"html"
	"path/filepath"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"seokit/internal/adapter/analyzer"
)

const (
	FormatAuto = "auto"
	FormatText = "text"
	FormatHTML = "html"
)

var stripPolicy = newStripPolicy()

func newStripPolicy() *bluemonday.Policy {
	p := bluemonday.StrictPolicy()
	// Keeps "<p>One.</p><p>Two</p>" from collapsing into a single word.
	p.AddSpaceWhenStrippingTag(true)
	return p
}

// FormatForPath resolves FormatAuto from the file extension.
func FormatForPath(path, format string) string {
	if format != FormatAuto && format != "" {
		return format
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm", ".xhtml":
		return FormatHTML
	default:
		return FormatText
	}
}

// PlainText returns the visible text of raw. Text input is returned as is.
func PlainText(raw, format string) (string, error) {
	switch format {
	case FormatText, "":
		return raw, nil
	case FormatHTML:
		stripped := stripPolicy.Sanitize(raw)
		return analyzer.NormalizeSpace(html.UnescapeString(stripped)), nil
	default:
		return "", fmt.Errorf("unsupported input format %q", format)
	}
}
