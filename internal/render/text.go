package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"activity-board/internal/model"
)

// RenderText пишет доску в терминал: баннер, затем карточки занятий.
func RenderText(w io.Writer, v model.BoardView) error {
	var b strings.Builder

	if v.Banner.Visible() {
		fmt.Fprintf(&b, "[%s] %s\n\n", v.Banner.Kind, v.Banner.Text)
	}

	if v.LoadFailed {
		b.WriteString(FailureText + "\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	for i, a := range v.Activities {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s\n", a.Name)

		tw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
		fmt.Fprintf(tw, "  Description:\t%s\n", a.Description)
		fmt.Fprintf(tw, "  Schedule:\t%s\n", a.Schedule)
		fmt.Fprintf(tw, "  Availability:\t%d spots left\n", a.SpotsLeft())
		if err := tw.Flush(); err != nil {
			return err
		}

		b.WriteString("  Participants:\n")
		if len(a.Participants) == 0 {
			b.WriteString("    No one has signed up yet.\n")
			continue
		}
		for _, p := range a.Participants {
			fmt.Fprintf(&b, "    - %s\n", p)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
