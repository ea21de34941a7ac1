package community

import (
	"regexp"
	"strings"

	"github.com/hyperifyio/deckmine/internal/deck"
)

var (
	// Organization names end in one of a fixed set of community keywords,
	// optionally prefixed by a "Reference Guide:" label.
	nameRe = regexp.MustCompile(`(?:Reference\s*Guide[:\s]*)?([A-Z][A-Za-z\s\-]+(?:Village|Community|Center|Home|Living))`)

	emailRe = regexp.MustCompile(`\S+@\S+\.\S+`)

	// "Name: Role" or "Name & Name: Role" segments on team slides.
	teamNameRe = regexp.MustCompile(`([A-Z][a-z]+(?:\s*&\s*[A-Z][a-z]+)?):`)
	roleCharRe = regexp.MustCompile(`^[A-Za-z\s]+`)

	feeRe   = regexp.MustCompile(`\$[\d,]+`)
	phaseRe = regexp.MustCompile(`Phase\s*[\dAB]+[^.]*`)

	dateRe = regexp.MustCompile(`(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+\d{1,2},?\s+\d{4}`)

	addressRe = regexp.MustCompile(`\d+\s+[A-Za-z\s]+(?:Rd|Road|St|Street|Ave|Avenue|Dr|Drive|Ln|Lane|Way|Blvd)[^,]*,\s*[A-Za-z\s]+,\s*[A-Z]{2}\s+\d{5}`)
)

// rule is one extraction pass over a single slide. Rules are pure: they
// take the profile so far and return the updated one, so mining is a fold
// with no shared mutable state.
type rule func(Profile, deck.Slide) Profile

// Rule order is fixed. Rules do not interact except through the profile,
// and a non-match contributes nothing, so mining never fails.
var rules = []rule{
	mineName,
	mineContacts,
	mineTeam,
	mineGoals,
	mineEngagement,
	mineMarket,
	mineDevelopment,
	minePresentationDates,
	mineNextSteps,
}

// Mine folds the extraction rules left-to-right over the slide sequence and
// finishes with a single whole-document address pass. Running it twice on
// the same document yields an identical profile.
func Mine(doc *deck.Document) Profile {
	p := NewProfile()
	for _, slide := range doc.Slides {
		for _, r := range rules {
			p = r(p, slide)
		}
	}
	return mineAddress(p, doc)
}

func contentText(s deck.Slide) string {
	return strings.Join(s.Content, " ")
}

func lowerTitle(s deck.Slide) string {
	return strings.ToLower(s.Title)
}

// mineName looks for the organization name on the title slide only. First
// match wins within the slide; a later slide-1 match would overwrite, but
// slide numbers are unique so in practice the value is set once.
func mineName(p Profile, s deck.Slide) Profile {
	if s.Number != 1 {
		return p
	}
	if m := nameRe.FindStringSubmatch(s.Title + " " + contentText(s)); m != nil {
		p.Name = strings.TrimSpace(m[1])
	}
	return p
}

// mineContacts extracts email tokens and tries to capture a personal name
// and a job title immediately preceding each. A contact is appended only if
// no field-for-field identical record exists: the same email with a
// different captured name or title is kept as a separate entry.
func mineContacts(p Profile, s deck.Slide) Profile {
	text := contentText(s)
	for _, email := range emailRe.FindAllString(text, -1) {
		contact := Contact{Email: email}
		quoted := regexp.QuoteMeta(email)
		// One intervening word (typically a job title) with its trailing
		// comma or space is allowed between the name and the email.
		if nameBefore, err := regexp.Compile(`([A-Z][a-z]+\s+[A-Z][a-z]+)[,\s]+(?:\w+[,\s]+)?` + quoted); err == nil {
			if m := nameBefore.FindStringSubmatch(text); m != nil {
				contact.Name = m[1]
			}
		}
		if titleBefore, err := regexp.Compile(`([A-Z][A-Z]+|CEO|CFO|COO|President|Director)[,\s]+` + quoted); err == nil {
			if m := titleBefore.FindStringSubmatch(text); m != nil {
				contact.Title = m[1]
			}
		}
		if !containsContact(p.Contacts, contact) {
			p.Contacts = append(p.Contacts, contact)
		}
	}
	return p
}

func containsContact(contacts []Contact, c Contact) bool {
	for _, existing := range contacts {
		if existing == c {
			return true
		}
	}
	return false
}

// mineTeam parses repeating "Name: Role" segments from slides whose title
// mentions the One Point team. The role runs from the colon to the next
// name-colon segment, a newline, or end of text, letters and whitespace only.
func mineTeam(p Profile, s deck.Slide) Profile {
	title := lowerTitle(s)
	if !strings.Contains(strings.ReplaceAll(title, " ", ""), "onepoint") && !strings.Contains(title, "team") {
		return p
	}
	text := contentText(s)
	matches := teamNameRe.FindAllStringSubmatchIndex(text, -1)
	for i, m := range matches {
		name := strings.TrimSpace(text[m[2]:m[3]])
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		segment := text[m[1]:end]
		if nl := strings.IndexByte(segment, '\n'); nl >= 0 {
			segment = segment[:nl]
		}
		role := strings.TrimSpace(roleCharRe.FindString(segment))
		if role == "" {
			continue
		}
		p.Team = append(p.Team, TeamMember{Name: name, Role: role})
	}
	return p
}

// mineGoals keeps content blocks longer than 10 characters; the boundary is
// strict, a 10-character block is excluded.
func mineGoals(p Profile, s deck.Slide) Profile {
	if !strings.Contains(lowerTitle(s), "goal") {
		return p
	}
	for _, block := range s.Content {
		if len(block) > 10 {
			p.Goals = append(p.Goals, block)
		}
	}
	return p
}

// mineEngagement picks the first dollar amount and the first phase token.
// Both overwrite rather than accumulate: the last matching slide wins.
func mineEngagement(p Profile, s deck.Slide) Profile {
	title := lowerTitle(s)
	if !strings.Contains(title, "engagement") && !strings.Contains(title, "phase") {
		return p
	}
	text := contentText(s)
	if m := feeRe.FindString(text); m != "" {
		p.Engagement.Fee = m
	}
	if m := phaseRe.FindString(text); m != "" {
		p.Engagement.Phase = m
	}
	return p
}

func mineMarket(p Profile, s deck.Slide) Profile {
	title := lowerTitle(s)
	if !strings.Contains(title, "market") && !strings.Contains(title, "demand") {
		return p
	}
	for _, block := range s.Content {
		if len(block) > 20 {
			p.MarketAnalysis.DemandSummary = append(p.MarketAnalysis.DemandSummary, block)
		}
	}
	return p
}

// mineDevelopment classifies each block into exactly one bucket, checked in
// priority order: vulnerabilities, then opportunities, then (length > 15)
// objectives.
func mineDevelopment(p Profile, s deck.Slide) Profile {
	title := lowerTitle(s)
	if !strings.Contains(title, "development") && !strings.Contains(title, "objective") && !strings.Contains(title, "site") {
		return p
	}
	for _, block := range s.Content {
		lower := strings.ToLower(block)
		switch {
		case strings.Contains(lower, "vulnerabilit"):
			p.Development.Vulnerabilities = append(p.Development.Vulnerabilities, block)
		case strings.Contains(lower, "opportunit"):
			p.Development.Opportunities = append(p.Development.Opportunities, block)
		case len(block) > 15:
			p.Development.Objectives = append(p.Development.Objectives, block)
		}
	}
	return p
}

// minePresentationDates runs on every slide regardless of title. Each
// distinct date string is recorded once, with the slide it first appeared on.
func minePresentationDates(p Profile, s deck.Slide) Profile {
	for _, date := range dateRe.FindAllString(contentText(s), -1) {
		if !containsDate(p.Presentations, date) {
			p.Presentations = append(p.Presentations, Presentation{Date: date, Slide: s.Number})
		}
	}
	return p
}

func containsDate(presentations []Presentation, date string) bool {
	for _, pr := range presentations {
		if pr.Date == date {
			return true
		}
	}
	return false
}

func mineNextSteps(p Profile, s deck.Slide) Profile {
	if !strings.Contains(lowerTitle(s), "next step") {
		return p
	}
	for _, block := range s.Content {
		if len(block) > 10 {
			p.NextSteps = append(p.NextSteps, block)
		}
	}
	return p
}

// mineAddress scans the whole document's concatenated text once for a
// US-style street address; first match wins.
func mineAddress(p Profile, doc *deck.Document) Profile {
	var b strings.Builder
	for _, s := range doc.Slides {
		b.WriteString(s.Title)
		b.WriteString(" ")
		b.WriteString(contentText(s))
		b.WriteString("\n")
	}
	if m := addressRe.FindString(b.String()); m != "" {
		p.Address = m
	}
	return p
}
