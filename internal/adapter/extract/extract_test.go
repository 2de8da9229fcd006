package extract

import (
	"testing"
)

func TestPlainText_HTML(t *testing.T) {
	raw := `<body><h1>Brew Guide</h1><p>Great coffee &amp; tea.</p><p>Second <b>line</b></p>` +
		`<script>var x = "hidden";</script><style>p { color: red; }</style></body>`

	got, err := PlainText(raw, FormatHTML)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := "Brew Guide Great coffee & tea. Second line"
	if got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestPlainText_TextPassthrough(t *testing.T) {
	raw := "Plain <not a tag> text.\n"
	got, err := PlainText(raw, FormatText)
	if err != nil {
		t.Fatal(err)
	}
	if got != raw {
		t.Errorf("expected text unchanged, got %q", got)
	}
}

func TestPlainText_UnknownFormat(t *testing.T) {
	if _, err := PlainText("x", "pdf"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestFormatForPath(t *testing.T) {
	tests := []struct {
		path, format, expected string
	}{
		{"site/index.html", FormatAuto, FormatHTML},
		{"site/INDEX.HTM", FormatAuto, FormatHTML},
		{"notes.md", FormatAuto, FormatText},
		{"page.html", FormatText, FormatText},
		{"notes.txt", FormatHTML, FormatHTML},
		{"notes.txt", "", FormatText},
	}
	for _, tt := range tests {
		if got := FormatForPath(tt.path, tt.format); got != tt.expected {
			t.Errorf("FormatForPath(%q, %q) = %q, want %q", tt.path, tt.format, got, tt.expected)
		}
	}
}
