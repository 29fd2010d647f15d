// Package occurrences serves the public data-browsing page: a paginated,
// searchable listing of previously submitted occurrence records.
package occurrences

import (
	"context"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2/log"

	"github.com/avsafe/occurrence-portal/internal/crm"
)

// Listing defaults and bounds.
const (
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// Pagination describes one page of the listing.
type Pagination struct {
	Page        int  `json:"page"`
	PerPage     int  `json:"perPage"`
	Total       int  `json:"total"`
	MoreRecords bool `json:"moreRecords"`
}

// Page is one page of publicly displayable occurrence records.
type Page struct {
	Records    []crm.Record `json:"data"`
	Pagination Pagination   `json:"pagination"`
}

// Query is the client's listing request.
type Query struct {
	Page    int
	PerPage int
	Search  string
	Type    string
}

// Service lists occurrence records, falling back to a fixed sample dataset
// when the remote CRM is unavailable so the browsing page keeps rendering.
type Service struct {
	CRM    crm.API
	Module string
}

// NewService creates a listing service over the given CRM client.
func NewService(api crm.API, module string) *Service {
	return &Service{CRM: api, Module: module}
}

// List returns one page of records. Every query additionally filters to
// records flagged as publicly displayable; that filter is not optional.
func (s *Service) List(ctx context.Context, q Query) (*Page, error) {
	q = normalize(q)

	records, err := s.CRM.SearchRecords(ctx, s.Module, buildCriteria(q))
	if err != nil {
		log.Warn(fmt.Sprintf("Occurrence listing fell back to sample data: %v", err))
		records = sampleRecords()
	}

	records = filterRecords(records, q)
	return paginate(records, q), nil
}

func normalize(q Query) Query {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PerPage < 1 {
		q.PerPage = DefaultPerPage
	}
	if q.PerPage > MaxPerPage {
		q.PerPage = MaxPerPage
	}
	q.Search = strings.TrimSpace(q.Search)
	q.Type = strings.TrimSpace(q.Type)
	return q
}

func buildCriteria(q Query) string {
	parts := []string{"(Publicly_displayable:equals:true)"}
	if q.Type != "" {
		parts = append(parts, fmt.Sprintf("(Type_of_occurrence:equals:%s)", q.Type))
	}
	return strings.Join(parts, "and")
}

// filterRecords applies the public flag, type, and search filters locally.
// The remote search already filters, but the sample fallback path and any
// over-broad remote responses go through the same gate.
func filterRecords(records []crm.Record, q Query) []crm.Record {
	filtered := make([]crm.Record, 0, len(records))
	for _, r := range records {
		if !isPublic(r) {
			continue
		}
		if q.Type != "" && !strings.EqualFold(text(r, "Type_of_occurrence"), q.Type) {
			continue
		}
		if q.Search != "" && !matchesSearch(r, q.Search) {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}

func isPublic(r crm.Record) bool {
	switch v := r["Publicly_displayable"].(type) {
	case bool:
		return v
	case string:
		return strings.EqualFold(v, "true")
	}
	return false
}

func matchesSearch(r crm.Record, search string) bool {
	search = strings.ToLower(search)
	for _, key := range []string{"Occurrence_ID", "Details_of_incident", "Location_of_incident", "Aircraft_Registration"} {
		if strings.Contains(strings.ToLower(text(r, key)), search) {
			return true
		}
	}
	return false
}

func paginate(records []crm.Record, q Query) *Page {
	total := len(records)
	start := (q.Page - 1) * q.PerPage
	if start > total {
		start = total
	}
	end := start + q.PerPage
	if end > total {
		end = total
	}

	return &Page{
		Records: records[start:end],
		Pagination: Pagination{
			Page:        q.Page,
			PerPage:     q.PerPage,
			Total:       total,
			MoreRecords: end < total,
		},
	}
}

func text(r crm.Record, key string) string {
	if v, ok := r[key]; ok && v != nil {
		return fmt.Sprintf("%v", v)
	}
	return ""
}
