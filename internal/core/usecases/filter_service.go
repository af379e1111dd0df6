package usecases

import (
	"strings"

	"vaultdedup/internal/core/domain"
)

// FilterService marks records for exclusion when any configured keyword
// appears in the display name, address, or account identifier. Matching
// is case-insensitive and stateless per record.
type FilterService struct {
	keywords []string // trimmed, lowercased, no blanks
}

// NewFilterService creates the filter from a keyword list. Keywords are
// trimmed and lowercased; blanks (stray commas in the flag value) are
// dropped, so an effectively empty list never excludes anything.
func NewFilterService(keywords []string) *FilterService {
	cleaned := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" {
			cleaned = append(cleaned, kw)
		}
	}
	return &FilterService{keywords: cleaned}
}

// Keywords returns the active keyword set.
func (s *FilterService) Keywords() []string {
	return s.keywords
}

// ShouldExclude reports whether the record matches any filter keyword.
func (s *FilterService) ShouldExclude(r domain.Record) bool {
	if len(s.keywords) == 0 {
		return false
	}

	name := strings.ToLower(r.Name())
	uri := strings.ToLower(r.URI())
	username := strings.ToLower(r.Username())

	for _, kw := range s.keywords {
		if strings.Contains(name, kw) || strings.Contains(uri, kw) || strings.Contains(username, kw) {
			return true
		}
	}
	return false
}

// Split partitions records into those that pass the filter and those
// excluded by it, both in input order.
func (s *FilterService) Split(records []domain.Record) (kept, removed []domain.Record) {
	kept = make([]domain.Record, 0, len(records))
	for _, r := range records {
		if s.ShouldExclude(r) {
			removed = append(removed, r)
		} else {
			kept = append(kept, r)
		}
	}
	return kept, removed
}
