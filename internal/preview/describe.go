package preview

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gogpu/watchface"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	typeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// Describe writes a listing of doc's items and skipped records to w.
func Describe(w io.Writer, doc *watchface.Document) error {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("%s  %dx%d", doc.Source(), doc.Width(), doc.Height())))
	b.WriteByte('\n')

	items := doc.Items()
	fmt.Fprintf(&b, "%d items, %d tap actions, %d skipped\n", len(items), len(doc.TapActions()), len(doc.Skipped()))

	for i, it := range items {
		c := it.Center()
		fmt.Fprintf(&b, "%3d  %s %s  %s%s\n",
			i,
			typeStyle.Render(fmt.Sprintf("%-13s", it.Type())),
			dimStyle.Render(fmt.Sprintf("@(%d,%d)", c.X, c.Y)),
			dimStyle.Render(fmt.Sprintf("%d frames", len(it.Frames()))),
			details(it))
	}

	for _, e := range doc.Skipped() {
		b.WriteString(warnStyle.Render("skip " + e.Error()))
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func details(it watchface.Item) string {
	switch v := it.(type) {
	case *watchface.RotatableItem:
		r := v.Rotation()
		return fmt.Sprintf("  %s start=%g max=%g %s", v.Kind(), r.Start, r.Max, r.Direction)
	case *watchface.TapActionItem:
		return fmt.Sprintf("  %s/%s r=%d", v.PackageName(), v.ClassName(), v.Range())
	}
	return ""
}
