package community

import (
	"reflect"
	"testing"

	"github.com/hyperifyio/deckmine/internal/deck"
)

func docWith(slides ...deck.Slide) *deck.Document {
	return &deck.Document{
		Metadata: deck.Metadata{SlideCount: len(slides)},
		Slides:   slides,
	}
}

func TestMine_NameFromTitleSlide(t *testing.T) {
	doc := docWith(deck.Slide{
		Number: 1,
		Title:  "Reference Guide: Oak Hill Village",
	})
	p := Mine(doc)
	if p.Name != "Oak Hill Village" {
		t.Fatalf("name = %q, want %q", p.Name, "Oak Hill Village")
	}
}

func TestMine_NameIgnoredOffTitleSlide(t *testing.T) {
	doc := docWith(
		deck.Slide{Number: 1, Title: "Agenda"},
		deck.Slide{Number: 2, Title: "Reference Guide: Oak Hill Village"},
	)
	if p := Mine(doc); p.Name != "" {
		t.Fatalf("name = %q, want empty (rule only fires on slide 1)", p.Name)
	}
}

func TestMine_ContactWithNameAndTitle(t *testing.T) {
	doc := docWith(deck.Slide{
		Number:  1,
		Title:   "Contacts",
		Content: []string{"Contact Jane Smith, Director, jane@x.com for info"},
	})
	p := Mine(doc)
	if len(p.Contacts) != 1 {
		t.Fatalf("contacts = %v, want 1 entry", p.Contacts)
	}
	want := Contact{Email: "jane@x.com", Name: "Jane Smith", Title: "Director"}
	if p.Contacts[0] != want {
		t.Fatalf("contact = %+v, want %+v", p.Contacts[0], want)
	}
}

// Deduplication compares whole records, not emails: the same address with a
// different captured name yields two entries. Behavior is preserved as
// specified even though it is almost certainly a latent defect.
func TestMine_ContactsNotDedupedByEmailAlone(t *testing.T) {
	doc := docWith(
		deck.Slide{Number: 1, Title: "Contacts", Content: []string{"Jane Smith, jane@x.com"}},
		deck.Slide{Number: 2, Title: "More", Content: []string{"John Doe, jane@x.com"}},
	)
	p := Mine(doc)
	if len(p.Contacts) != 2 {
		t.Fatalf("contacts = %+v, want 2 entries", p.Contacts)
	}
}

func TestMine_IdenticalContactAddedOnce(t *testing.T) {
	doc := docWith(
		deck.Slide{Number: 1, Title: "Contacts", Content: []string{"Jane Smith, jane@x.com"}},
		deck.Slide{Number: 2, Title: "Contacts again", Content: []string{"Jane Smith, jane@x.com"}},
	)
	p := Mine(doc)
	if len(p.Contacts) != 1 {
		t.Fatalf("contacts = %+v, want 1 entry", p.Contacts)
	}
}

func TestMine_TeamRoster(t *testing.T) {
	doc := docWith(deck.Slide{
		Number:  1,
		Title:   "One Point Team",
		Content: []string{"Sarah: Development Lead Mike: Market Analyst"},
	})
	p := Mine(doc)
	want := []TeamMember{
		{Name: "Sarah", Role: "Development Lead"},
		{Name: "Mike", Role: "Market Analyst"},
	}
	if !reflect.DeepEqual(p.Team, want) {
		t.Fatalf("team = %+v, want %+v", p.Team, want)
	}
}

func TestMine_TeamJointEntry(t *testing.T) {
	doc := docWith(deck.Slide{
		Number:  1,
		Title:   "Project Team",
		Content: []string{"Tom & Amy: Finance"},
	})
	p := Mine(doc)
	if len(p.Team) != 1 || p.Team[0].Name != "Tom & Amy" || p.Team[0].Role != "Finance" {
		t.Fatalf("team = %+v, want Tom & Amy / Finance", p.Team)
	}
}

func TestMine_TeamTriggerOnOnePoint(t *testing.T) {
	doc := docWith(deck.Slide{
		Number:  1,
		Title:   "Your One Point Advisors",
		Content: []string{"Sarah: Development Lead"},
	})
	if p := Mine(doc); len(p.Team) != 1 {
		t.Fatalf("team = %+v, want 1 entry", p.Team)
	}
}

func TestMine_GoalsLengthBoundary(t *testing.T) {
	doc := docWith(deck.Slide{
		Number: 1,
		Title:  "Client Goals",
		Content: []string{
			"exactly10c",                       // 10 chars: excluded, boundary is strict
			"Grow occupancy to 95% this year.", // kept
		},
	})
	p := Mine(doc)
	if len(p.Goals) != 1 || p.Goals[0] != "Grow occupancy to 95% this year." {
		t.Fatalf("goals = %v, want only the long block", p.Goals)
	}
}

func TestMine_Engagement(t *testing.T) {
	doc := docWith(deck.Slide{
		Number:  1,
		Title:   "Engagement Overview",
		Content: []string{"Phase 1A planning and review. Fee of $25,000 due at signing"},
	})
	p := Mine(doc)
	if p.Engagement.Fee != "$25,000" {
		t.Errorf("fee = %q, want %q", p.Engagement.Fee, "$25,000")
	}
	if p.Engagement.Phase != "Phase 1A planning and review" {
		t.Errorf("phase = %q, want %q", p.Engagement.Phase, "Phase 1A planning and review")
	}
}

func TestMine_EngagementOverwrittenByLaterSlide(t *testing.T) {
	doc := docWith(
		deck.Slide{Number: 1, Title: "Engagement", Content: []string{"Fee: $10,000"}},
		deck.Slide{Number: 2, Title: "Phase Two", Content: []string{"Revised fee $12,500"}},
	)
	p := Mine(doc)
	if p.Engagement.Fee != "$12,500" {
		t.Fatalf("fee = %q, want last match %q", p.Engagement.Fee, "$12,500")
	}
}

func TestMine_MarketDemand(t *testing.T) {
	doc := docWith(deck.Slide{
		Number: 1,
		Title:  "Market Demand Summary",
		Content: []string{
			"short block",
			"Independent living demand exceeds supply across the service area.",
		},
	})
	p := Mine(doc)
	if len(p.MarketAnalysis.DemandSummary) != 1 {
		t.Fatalf("demand = %v, want only the >20 char block", p.MarketAnalysis.DemandSummary)
	}
}

func TestMine_DevelopmentBuckets(t *testing.T) {
	doc := docWith(deck.Slide{
		Number: 1,
		Title:  "Site Development Objectives",
		Content: []string{
			"Key vulnerabilities include deferred maintenance",
			"Opportunities exist for assisted living expansion",
			"Expand the east wing of the campus",
			"Too short",
		},
	})
	p := Mine(doc)
	if len(p.Development.Vulnerabilities) != 1 || len(p.Development.Opportunities) != 1 || len(p.Development.Objectives) != 1 {
		t.Fatalf("development = %+v, want one block per bucket", p.Development)
	}
}

func TestMine_PresentationDatesDedupedByDate(t *testing.T) {
	doc := docWith(
		deck.Slide{Number: 1, Title: "Board", Content: []string{"Presented Jan 5, 2024 to the board"}},
		deck.Slide{Number: 2, Title: "Follow-up", Content: []string{"Jan 5, 2024 recap and March 12, 2024 session"}},
	)
	p := Mine(doc)
	want := []Presentation{
		{Date: "Jan 5, 2024", Slide: 1},
		{Date: "March 12, 2024", Slide: 2},
	}
	if !reflect.DeepEqual(p.Presentations, want) {
		t.Fatalf("presentations = %+v, want %+v", p.Presentations, want)
	}
}

func TestMine_NextSteps(t *testing.T) {
	doc := docWith(deck.Slide{
		Number:  1,
		Title:   "Next Steps",
		Content: []string{"Schedule the market study kickoff", "short"},
	})
	p := Mine(doc)
	if len(p.NextSteps) != 1 {
		t.Fatalf("next steps = %v, want 1 entry", p.NextSteps)
	}
}

func TestMine_Address(t *testing.T) {
	doc := docWith(
		deck.Slide{Number: 1, Title: "Reference Guide: Oak Hill Village"},
		deck.Slide{Number: 2, Title: "Location", Content: []string{"Located at 200 Pond Meadow Road, Westbrook, CT 06498 on the shoreline"}},
	)
	p := Mine(doc)
	if p.Address != "200 Pond Meadow Road, Westbrook, CT 06498" {
		t.Fatalf("address = %q", p.Address)
	}
}

func TestMine_Deterministic(t *testing.T) {
	doc := docWith(
		deck.Slide{Number: 1, Title: "Reference Guide: Oak Hill Village", Content: []string{"Jane Smith, Director, jane@x.com"}},
		deck.Slide{Number: 2, Title: "Goals", Content: []string{"Grow occupancy to 95% this year."}},
		deck.Slide{Number: 3, Title: "Engagement", Content: []string{"Phase 1 kickoff. Fee $5,000"}},
		deck.Slide{Number: 4, Title: "Next Steps", Content: []string{"Schedule the market study kickoff Jan 5, 2024"}},
	)
	first := Mine(doc)
	second := Mine(doc)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("Mine is not deterministic:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestMine_EmptyDocument(t *testing.T) {
	p := Mine(docWith())
	if !reflect.DeepEqual(p, NewProfile()) {
		t.Fatalf("empty document profile = %+v, want pristine profile", p)
	}
}
