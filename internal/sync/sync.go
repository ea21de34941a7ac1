// Package sync pushes a mined community profile into Twenty CRM: one
// company record, one person per contact, and a set of section notes
// attached to the company.
package sync

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/deckmine/internal/community"
	"github.com/hyperifyio/deckmine/internal/twenty"
)

// CRM is the slice of the Twenty client the orchestrator uses. Keeping it an
// interface lets tests substitute a fake without any network.
type CRM interface {
	SearchCompanies(ctx context.Context, name string) ([]twenty.Company, error)
	CreateCompany(ctx context.Context, input twenty.CompanyInput) (twenty.Company, error)
	UpdateCompany(ctx context.Context, id string, input twenty.CompanyInput) (twenty.Company, error)
	SearchPeople(ctx context.Context, name, email string) ([]twenty.Person, error)
	CreatePerson(ctx context.Context, input twenty.PersonInput) (twenty.Person, error)
	CreateNote(ctx context.Context, body, targetType, targetID string) (twenty.Note, error)
}

// CompanyResult records how the company was resolved: action is "created"
// or "updated".
type CompanyResult struct {
	ID     string `json:"id"`
	Action string `json:"action"`
}

// ContactRef identifies one synced contact in the results summary.
type ContactRef struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Results is the structured sync summary. Per-item failures are accumulated
// in Errors and never silently dropped.
type Results struct {
	Company         *CompanyResult `json:"company"`
	ContactsCreated []ContactRef   `json:"contacts_created"`
	ContactsUpdated []ContactRef   `json:"contacts_updated"`
	NotesCreated    []string       `json:"notes_created"`
	Errors          []string       `json:"errors"`
}

func newResults() Results {
	return Results{
		ContactsCreated: []ContactRef{},
		ContactsUpdated: []ContactRef{},
		NotesCreated:    []string{},
		Errors:          []string{},
	}
}

// Syncer runs the sync sequence. Now is injectable so tests can pin the
// note timestamp footer; nil means time.Now.
type Syncer struct {
	CRM CRM
	Now func() time.Time
}

func (s *Syncer) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Run syncs the profile sequentially: company, then contacts, then notes.
// Contact and note failures are isolated per item; a company-resolution
// failure aborts the sync with the partial results accumulated so far. In
// dry-run mode no CRM calls are made and the empty skeleton is returned.
func (s *Syncer) Run(ctx context.Context, profile community.Profile, dryRun bool) Results {
	results := newResults()

	name := profile.Name
	if name == "" {
		name = "Unknown Community"
	}

	if dryRun {
		log.Info().Str("community", name).Msg("dry run: skipping CRM sync")
		return results
	}

	// 1. Find or create the company.
	log.Info().Str("company", name).Msg("searching for company")
	companyInput := twenty.CompanyInput{
		Name:    name,
		Address: profile.Address,
	}
	existing, err := s.CRM.SearchCompanies(ctx, name)
	if err != nil {
		results.Errors = append(results.Errors, fmt.Sprintf("Failed to create/find company: %v", err))
		return results
	}

	var companyID, action string
	if len(existing) > 0 {
		companyID = existing[0].ID
		action = "updated"
		log.Info().Str("id", companyID).Msg("found existing company")
		if _, err := s.CRM.UpdateCompany(ctx, companyID, companyInput); err != nil {
			results.Errors = append(results.Errors, fmt.Sprintf("Failed to create/find company: %v", err))
			return results
		}
	} else {
		log.Info().Str("company", name).Msg("creating new company")
		company, err := s.CRM.CreateCompany(ctx, companyInput)
		if err != nil {
			results.Errors = append(results.Errors, fmt.Sprintf("Failed to create/find company: %v", err))
			return results
		}
		companyID = company.ID
		action = "created"
	}
	if companyID == "" {
		results.Errors = append(results.Errors, "Failed to create/find company")
		return results
	}
	results.Company = &CompanyResult{ID: companyID, Action: action}

	// 2. Create contacts. Failures are per-contact; one bad contact does not
	// block the rest.
	for _, contact := range profile.Contacts {
		if contact.Email == "" {
			continue
		}
		people, err := s.CRM.SearchPeople(ctx, "", contact.Email)
		if err != nil {
			results.Errors = append(results.Errors, fmt.Sprintf("Failed to look up %s: %v", contact.Email, err))
			continue
		}
		if len(people) > 0 {
			// Known gap: the existing person is reported as updated but no
			// update call is made.
			log.Info().Str("email", contact.Email).Msg("contact already exists")
			results.ContactsUpdated = append(results.ContactsUpdated, ContactRef{Email: contact.Email, Name: contact.Name})
			continue
		}
		log.Info().Str("email", contact.Email).Str("name", contact.Name).Msg("creating contact")
		_, err = s.CRM.CreatePerson(ctx, twenty.PersonInput{
			Email:     contact.Email,
			Name:      contact.Name,
			JobTitle:  contact.Title,
			CompanyID: companyID,
		})
		if err != nil {
			results.Errors = append(results.Errors, fmt.Sprintf("Failed to create %s: %v", contact.Email, err))
			continue
		}
		results.ContactsCreated = append(results.ContactsCreated, ContactRef{Email: contact.Email, Name: contact.Name})
	}

	// 3. Create section notes attached to the company. Note creation depends
	// on the company id, which is why this step runs last.
	stamp := s.now().Format("2006-01-02 15:04")
	for _, draft := range buildNotes(profile) {
		body := fmt.Sprintf("# %s: %s\n\n%s\n\n---\n*Auto-imported from PPTX on %s*", name, draft.Title, draft.Body, stamp)
		log.Info().Str("note", draft.Title).Msg("creating note")
		if _, err := s.CRM.CreateNote(ctx, body, "company", companyID); err != nil {
			results.Errors = append(results.Errors, fmt.Sprintf("Failed to create note '%s': %v", draft.Title, err))
			continue
		}
		results.NotesCreated = append(results.NotesCreated, draft.Title)
	}

	return results
}
