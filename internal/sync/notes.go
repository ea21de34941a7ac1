package sync

import (
	"fmt"
	"strings"

	"github.com/hyperifyio/deckmine/internal/community"
)

const (
	// maxDemandItems caps the market analysis note.
	maxDemandItems = 5
	// maxDevItems caps each development bucket in the development note.
	maxDevItems = 2
)

type noteDraft struct {
	Title string
	Body  string
}

// buildNotes assembles up to six notes from the profile sections, in fixed
// order. A section that mined nothing yields no note.
func buildNotes(profile community.Profile) []noteDraft {
	var notes []noteDraft

	if len(profile.Team) > 0 {
		lines := []string{"## One Point Team\n"}
		for _, member := range profile.Team {
			lines = append(lines, fmt.Sprintf("- **%s**: %s", member.Name, member.Role))
		}
		notes = append(notes, noteDraft{Title: "One Point Team", Body: strings.Join(lines, "\n")})
	}

	if len(profile.Goals) > 0 {
		notes = append(notes, noteDraft{
			Title: "Client Goals",
			Body:  "## Client Goals\n\n" + strings.Join(profile.Goals, "\n\n"),
		})
	}

	if demand := profile.MarketAnalysis.DemandSummary; len(demand) > 0 {
		notes = append(notes, noteDraft{
			Title: "Market Analysis Summary",
			Body:  "## Market Analysis\n\n" + strings.Join(capItems(demand, maxDemandItems), "\n\n---\n\n"),
		})
	}

	var devParts []string
	if v := profile.Development.Vulnerabilities; len(v) > 0 {
		devParts = append(devParts, "### Vulnerabilities\n"+strings.Join(capItems(v, maxDevItems), "\n"))
	}
	if o := profile.Development.Opportunities; len(o) > 0 {
		devParts = append(devParts, "### Opportunities\n"+strings.Join(capItems(o, maxDevItems), "\n"))
	}
	if o := profile.Development.Objectives; len(o) > 0 {
		devParts = append(devParts, "### Objectives\n"+strings.Join(capItems(o, maxDevItems), "\n"))
	}
	if len(devParts) > 0 {
		notes = append(notes, noteDraft{
			Title: "Development Analysis",
			Body:  "## Development Analysis\n\n" + strings.Join(devParts, "\n\n"),
		})
	}

	if len(profile.Presentations) > 0 {
		lines := []string{"## Presentations Log\n"}
		for _, p := range profile.Presentations {
			lines = append(lines, fmt.Sprintf("- %s (Slide %d)", p.Date, p.Slide))
		}
		notes = append(notes, noteDraft{Title: "Presentations Log", Body: strings.Join(lines, "\n")})
	}

	if len(profile.NextSteps) > 0 {
		notes = append(notes, noteDraft{
			Title: "Next Steps",
			Body:  "## Next Steps\n\n" + strings.Join(profile.NextSteps, "\n\n"),
		})
	}

	return notes
}

func capItems(items []string, max int) []string {
	if len(items) > max {
		return items[:max]
	}
	return items
}
