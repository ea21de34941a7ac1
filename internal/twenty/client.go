// Package twenty is a minimal client for the Twenty CRM REST API, covering
// the company, person, and note operations the sync pipeline needs.
package twenty

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// defaultTimeout bounds each request when no HTTPClient is injected.
const defaultTimeout = 15 * time.Second

// Client talks to one Twenty instance. All requests go to
// <BaseURL>/rest/<endpoint> with a bearer token.
type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// RequestError is returned for any non-2xx response, carrying the status
// code and raw body text for the caller's error report.
type RequestError struct {
	StatusCode int
	Body       string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("twenty api status %d: %s", e.StatusCode, e.Body)
}

// Company mirrors the CRM company fields the sync pipeline reads and writes.
type Company struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// CompanyInput is the create/update payload. DomainName is always sent, even
// when empty, matching the upstream schema.
type CompanyInput struct {
	Name       string `json:"name"`
	Address    string `json:"address"`
	DomainName string `json:"domainName"`
}

// Person mirrors the CRM person fields used here.
type Person struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// PersonInput is the person creation payload; CompanyID links the person to
// their organization.
type PersonInput struct {
	Email     string `json:"email"`
	Name      string `json:"name"`
	JobTitle  string `json:"jobTitle"`
	CompanyID string `json:"companyId"`
}

// Note is a created note record.
type Note struct {
	ID   string `json:"id"`
	Body string `json:"body"`
}

type activityTarget struct {
	TargetObjectNameSingular string `json:"targetObjectNameSingular"`
	TargetObjectRecordID     string `json:"targetObjectRecordId"`
}

type noteInput struct {
	Body            string           `json:"body"`
	ActivityTargets []activityTarget `json:"activityTargets,omitempty"`
}

// do issues one request against the REST surface and decodes the response
// envelope into out when provided.
func (c *Client) do(ctx context.Context, method, endpoint string, payload, out any) error {
	if c.BaseURL == "" {
		return fmt.Errorf("missing twenty base url")
	}
	u := strings.TrimRight(c.BaseURL, "/") + "/rest/" + endpoint

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Content-Type", "application/json")

	hc := c.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: defaultTimeout}
	}
	resp, err := hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RequestError{StatusCode: resp.StatusCode, Body: string(data)}
	}
	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// SearchCompanies looks companies up by a name substring.
func (c *Client) SearchCompanies(ctx context.Context, name string) ([]Company, error) {
	q := url.Values{}
	q.Set("filter[name][like]", "%"+name+"%")
	var resp struct {
		Data struct {
			Companies []Company `json:"companies"`
		} `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "companies?"+q.Encode(), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data.Companies, nil
}

// Company fetches a single company by id.
func (c *Client) Company(ctx context.Context, id string) (Company, error) {
	var resp struct {
		Data struct {
			Company Company `json:"company"`
		} `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "companies/"+url.PathEscape(id), nil, &resp); err != nil {
		return Company{}, err
	}
	return resp.Data.Company, nil
}

// CreateCompany creates a new company record.
func (c *Client) CreateCompany(ctx context.Context, input CompanyInput) (Company, error) {
	var resp struct {
		Data struct {
			CreateCompany Company `json:"createCompany"`
		} `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "companies", input, &resp); err != nil {
		return Company{}, err
	}
	return resp.Data.CreateCompany, nil
}

// UpdateCompany patches an existing company record.
func (c *Client) UpdateCompany(ctx context.Context, id string, input CompanyInput) (Company, error) {
	var resp struct {
		Data struct {
			UpdateCompany Company `json:"updateCompany"`
		} `json:"data"`
	}
	if err := c.do(ctx, http.MethodPatch, "companies/"+url.PathEscape(id), input, &resp); err != nil {
		return Company{}, err
	}
	return resp.Data.UpdateCompany, nil
}

// SearchPeople looks people up by name substring and/or exact email. Empty
// arguments contribute no filter.
func (c *Client) SearchPeople(ctx context.Context, name, email string) ([]Person, error) {
	q := url.Values{}
	if name != "" {
		q.Set("filter[name][like]", "%"+name+"%")
	}
	if email != "" {
		q.Set("filter[email][eq]", email)
	}
	var resp struct {
		Data struct {
			People []Person `json:"people"`
		} `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "people?"+q.Encode(), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data.People, nil
}

// CreatePerson creates a new person record.
func (c *Client) CreatePerson(ctx context.Context, input PersonInput) (Person, error) {
	var resp struct {
		Data struct {
			CreatePerson Person `json:"createPerson"`
		} `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "people", input, &resp); err != nil {
		return Person{}, err
	}
	return resp.Data.CreatePerson, nil
}

// CreateNote creates a note, optionally attached to a target record such as
// a company.
func (c *Client) CreateNote(ctx context.Context, body, targetType, targetID string) (Note, error) {
	input := noteInput{Body: body}
	if targetType != "" && targetID != "" {
		input.ActivityTargets = []activityTarget{{
			TargetObjectNameSingular: targetType,
			TargetObjectRecordID:     targetID,
		}}
	}
	var resp struct {
		Data struct {
			CreateNote Note `json:"createNote"`
		} `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "notes", input, &resp); err != nil {
		return Note{}, err
	}
	return resp.Data.CreateNote, nil
}
