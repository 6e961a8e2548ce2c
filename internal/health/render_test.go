package health

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func sampleSummary() DailySummary {
	return DailySummary{
		Date:           time.Date(2025, 6, 2, 18, 0, 0, 0, time.UTC),
		Total:          5,
		CreatedToday:   1,
		CompletedToday: 2,
		AtRisk:         2,
		Blocked:        1,
		ActiveOwners:   4,
	}
}

func TestRenderText(t *testing.T) {
	got := RenderText(sampleSummary())

	want := "Daily summary for 2025-06-02\n" +
		"Total tasks: 5\n" +
		"Created today: 1\n" +
		"Completed today: 2\n" +
		"Blocked: 1, At-Risk: 2\n" +
		"Owners active: 4\n"
	assert.Equal(t, want, got)
}

func TestRenderMarkdown(t *testing.T) {
	got := RenderMarkdown(sampleSummary())

	assert.True(t, strings.HasPrefix(got, "## Daily summary for 2025-06-02\n\n"))
	for _, line := range []string{
		"- **Total tasks:** 5",
		"- **Created today:** 1",
		"- **Completed today:** 2",
		"- **Blocked:** 1",
		"- **At risk:** 2",
		"- **Owners active:** 4",
	} {
		assert.Contains(t, got, line+"\n")
	}
}
