package cli

import (
	"fmt"
	"io"
	"os"

	"seokit/internal/adapter/extract"
	"seokit/internal/adapter/fs"
)

// inputFormat is shared by the single-input commands.
var inputFormat string

// readInput loads the text to score from a file argument, or from stdin
// when the argument is "-" or missing.
func readInput(stdin io.Reader, args []string) (string, error) {
	path := "-"
	if len(args) > 0 {
		path = args[0]
	}
	return loadText(stdin, path, inputFormat)
}

// readComparison loads the optional competitor document. An empty path
// means no comparison.
func readComparison(path string) (*string, error) {
	if path == "" {
		return nil, nil
	}
	text, err := loadText(nil, path, inputFormat)
	if err != nil {
		return nil, fmt.Errorf("failed to read comparison: %w", err)
	}
	return &text, nil
}

func loadText(stdin io.Reader, path, format string) (string, error) {
	var raw string
	if path == "-" {
		if stdin == nil {
			stdin = os.Stdin
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		raw = string(data)
	} else {
		var err error
		raw, err = fs.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", path, err)
		}
	}
	return extract.PlainText(raw, extract.FormatForPath(path, format))
}
