package health

import (
	"fmt"
	"strings"
)

// RenderText renders the daily summary as plain text, one metric per
// line, suitable for pasting into a stand-up channel.
func RenderText(s DailySummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Daily summary for %s\n", s.Date.Format("2006-01-02"))
	fmt.Fprintf(&b, "Total tasks: %d\n", s.Total)
	fmt.Fprintf(&b, "Created today: %d\n", s.CreatedToday)
	fmt.Fprintf(&b, "Completed today: %d\n", s.CompletedToday)
	fmt.Fprintf(&b, "Blocked: %d, At-Risk: %d\n", s.Blocked, s.AtRisk)
	fmt.Fprintf(&b, "Owners active: %d\n", s.ActiveOwners)
	return b.String()
}

// RenderMarkdown renders the daily summary as a Markdown fragment with
// the same counts as RenderText.
func RenderMarkdown(s DailySummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Daily summary for %s\n\n", s.Date.Format("2006-01-02"))
	fmt.Fprintf(&b, "- **Total tasks:** %d\n", s.Total)
	fmt.Fprintf(&b, "- **Created today:** %d\n", s.CreatedToday)
	fmt.Fprintf(&b, "- **Completed today:** %d\n", s.CompletedToday)
	fmt.Fprintf(&b, "- **Blocked:** %d\n", s.Blocked)
	fmt.Fprintf(&b, "- **At risk:** %d\n", s.AtRisk)
	fmt.Fprintf(&b, "- **Owners active:** %d\n", s.ActiveOwners)
	return b.String()
}
