package render

import (
	"strings"
	"testing"

	"github.com/fvilers/taskgo/internal/task"
)

func testOptions() Options {
	return Options{
		DoneGlyph:    "🗹",
		PendingGlyph: "☐",
		NoColor:      true,
	}
}

func TestTableEmptyListRendersHeaderOnly(t *testing.T) {
	out := Table(task.List{}, testOptions())

	for _, header := range []string{"ID", "TASK", "STATUS"} {
		if !strings.Contains(out, header) {
			t.Errorf("output missing header %q:\n%s", header, out)
		}
	}
	if strings.Contains(out, "☐") || strings.Contains(out, "🗹") {
		t.Errorf("empty table contains task rows:\n%s", out)
	}
}

func TestTableRendersTasks(t *testing.T) {
	list := task.List{
		{ID: 1, Description: "buy milk", Done: false},
		{ID: 2, Description: "walk the dog", Done: true},
	}

	out := Table(list, testOptions())

	if !strings.Contains(out, "buy milk") {
		t.Errorf("output missing pending task:\n%s", out)
	}
	if !strings.Contains(out, "walk the dog") {
		t.Errorf("output missing done task:\n%s", out)
	}
	if !strings.Contains(out, "☐ todo") {
		t.Errorf("output missing pending marker:\n%s", out)
	}
	if !strings.Contains(out, "🗹 done") {
		t.Errorf("output missing done marker:\n%s", out)
	}
}

func TestTableUsesConfiguredGlyphs(t *testing.T) {
	opts := Options{DoneGlyph: "[x]", PendingGlyph: "[ ]", NoColor: true}
	list := task.List{
		{ID: 1, Description: "buy milk", Done: true},
		{ID: 2, Description: "walk the dog", Done: false},
	}

	out := Table(list, opts)

	if !strings.Contains(out, "[x] done") {
		t.Errorf("output missing custom done glyph:\n%s", out)
	}
	if !strings.Contains(out, "[ ] todo") {
		t.Errorf("output missing custom pending glyph:\n%s", out)
	}
}
