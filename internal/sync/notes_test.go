package sync

import (
	"fmt"
	"strings"
	"testing"

	"github.com/hyperifyio/deckmine/internal/community"
)

func TestBuildNotes_EmptyProfileYieldsNothing(t *testing.T) {
	if notes := buildNotes(community.NewProfile()); len(notes) != 0 {
		t.Fatalf("notes = %+v, want none", notes)
	}
}

func TestBuildNotes_FixedOrder(t *testing.T) {
	p := community.NewProfile()
	p.Team = []community.TeamMember{{Name: "Sarah", Role: "Development Lead"}}
	p.Goals = []string{"Grow occupancy to 95% this year."}
	p.MarketAnalysis.DemandSummary = []string{"Demand exceeds supply."}
	p.Development.Objectives = []string{"Expand the east wing of the campus"}
	p.Presentations = []community.Presentation{{Date: "Jan 5, 2024", Slide: 1}}
	p.NextSteps = []string{"Schedule the market study kickoff"}

	notes := buildNotes(p)
	var titles []string
	for _, n := range notes {
		titles = append(titles, n.Title)
	}
	want := []string{
		"One Point Team",
		"Client Goals",
		"Market Analysis Summary",
		"Development Analysis",
		"Presentations Log",
		"Next Steps",
	}
	if strings.Join(titles, ",") != strings.Join(want, ",") {
		t.Fatalf("titles = %v, want %v", titles, want)
	}
}

func TestBuildNotes_TeamBody(t *testing.T) {
	p := community.NewProfile()
	p.Team = []community.TeamMember{
		{Name: "Sarah", Role: "Development Lead"},
		{Name: "Tom & Amy", Role: "Finance"},
	}
	notes := buildNotes(p)
	if len(notes) != 1 {
		t.Fatalf("notes = %+v", notes)
	}
	body := notes[0].Body
	if !strings.Contains(body, "- **Sarah**: Development Lead") || !strings.Contains(body, "- **Tom & Amy**: Finance") {
		t.Fatalf("body = %q", body)
	}
}

func TestBuildNotes_DemandCappedAtFive(t *testing.T) {
	p := community.NewProfile()
	for i := 0; i < 7; i++ {
		p.MarketAnalysis.DemandSummary = append(p.MarketAnalysis.DemandSummary, fmt.Sprintf("Demand block %d", i))
	}
	notes := buildNotes(p)
	if len(notes) != 1 {
		t.Fatalf("notes = %+v", notes)
	}
	body := notes[0].Body
	if got := strings.Count(body, "Demand block"); got != 5 {
		t.Errorf("demand blocks = %d, want 5", got)
	}
	if !strings.Contains(body, "\n\n---\n\n") {
		t.Errorf("blocks not separated by rules: %q", body)
	}
}

func TestBuildNotes_DevelopmentBucketsCappedAtTwo(t *testing.T) {
	p := community.NewProfile()
	p.Development.Vulnerabilities = []string{"vuln one", "vuln two", "vuln three"}
	p.Development.Opportunities = []string{"opp one"}
	notes := buildNotes(p)
	if len(notes) != 1 || notes[0].Title != "Development Analysis" {
		t.Fatalf("notes = %+v", notes)
	}
	body := notes[0].Body
	if got := strings.Count(body, "vuln"); got != 2 {
		t.Errorf("vulnerabilities = %d, want 2", got)
	}
	if !strings.Contains(body, "### Vulnerabilities") || !strings.Contains(body, "### Opportunities") {
		t.Errorf("body = %q", body)
	}
	if strings.Contains(body, "### Objectives") {
		t.Errorf("empty bucket rendered: %q", body)
	}
}

func TestBuildNotes_PresentationsLog(t *testing.T) {
	p := community.NewProfile()
	p.Presentations = []community.Presentation{
		{Date: "Jan 5, 2024", Slide: 1},
		{Date: "March 12, 2024", Slide: 4},
	}
	notes := buildNotes(p)
	if len(notes) != 1 {
		t.Fatalf("notes = %+v", notes)
	}
	if !strings.Contains(notes[0].Body, "- Jan 5, 2024 (Slide 1)") || !strings.Contains(notes[0].Body, "- March 12, 2024 (Slide 4)") {
		t.Fatalf("body = %q", notes[0].Body)
	}
}
