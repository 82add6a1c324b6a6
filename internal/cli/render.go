package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/voxforge/studio/internal/persona"
	"github.com/voxforge/studio/internal/script"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4")).
			MarginBottom(1)

	metaLabelStyle = lipgloss.NewStyle().
			Width(12).
			Foreground(lipgloss.Color("#626262"))

	segmentNumStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#04B575"))

	visualStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Italic(true)

	weakStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5555")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			MarginTop(1)
)

// personaStyle renders a persona name in its catalog accent color.
func personaStyle(p persona.Profile) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.Hex))
}

func printScript(w io.Writer, doc *script.Document, reg *persona.Registry) {
	fmt.Fprintln(w, titleStyle.Render(doc.Title))

	creatorName := doc.CreatorName
	if p, err := reg.Get(doc.CreatorID); err == nil {
		creatorName = personaStyle(p).Render(p.Name)
	}
	fmt.Fprintf(w, "%s %s\n", metaLabelStyle.Render("Creator"), creatorName)
	fmt.Fprintf(w, "%s %s | %s | %s\n", metaLabelStyle.Render("Target"), doc.Platform, doc.Duration, doc.Language)
	if doc.DetectedIntent != "" {
		fmt.Fprintf(w, "%s %s\n", metaLabelStyle.Render("Intent"), doc.DetectedIntent)
	}
	if doc.TargetAudience != "" {
		fmt.Fprintf(w, "%s %s\n", metaLabelStyle.Render("Audience"), doc.TargetAudience)
	}
	fmt.Fprintln(w)

	for i, seg := range doc.Segments {
		header := segmentNumStyle.Render(fmt.Sprintf("Segment %d", i+1))
		if seg.IsWeak {
			header += " " + weakStyle.Render("[weak]")
		}
		fmt.Fprintln(w, header)
		fmt.Fprintf(w, "  %s\n", visualStyle.Render(seg.Visual))
		fmt.Fprintf(w, "  %s\n", seg.Audio)
		if seg.RewriteSuggestion != "" {
			fmt.Fprintf(w, "  %s\n", visualStyle.Render("Suggestion: "+seg.RewriteSuggestion))
		}
		fmt.Fprintln(w)
	}

	if len(doc.CTAs) > 0 {
		fmt.Fprintln(w, segmentNumStyle.Render("CTAs"))
		for _, cta := range doc.CTAs {
			fmt.Fprintf(w, "  - %s\n", cta)
		}
		fmt.Fprintln(w)
	}

	if len(doc.Citations) > 0 {
		fmt.Fprintln(w, segmentNumStyle.Render("Citations"))
		for _, c := range doc.Citations {
			fmt.Fprintf(w, "  - [%s] %s: %s\n", c.Type, c.SourceName, c.Context)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, helpStyle.Render(fmt.Sprintf("ID %s  |  %d segments", doc.ID, len(doc.Segments))))
}
