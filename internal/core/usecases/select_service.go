package usecases

import (
	"vaultdedup/internal/core/domain"
)

// selectionRule picks the first group member satisfying its predicate.
// Rules are evaluated in order; the chain is a flat list rather than
// nested conditionals so the tie-break order stays auditable.
type selectionRule struct {
	name  string
	match func(domain.Record) bool
}

// SelectService deterministically picks the one record to keep from a
// duplicate group, by a fixed priority over optional attributes.
type SelectService struct {
	rules []selectionRule
}

// NewSelectService creates the selector with its priority chain:
// TOTP with notes, then TOTP, then address, then notes.
func NewSelectService() *SelectService {
	return &SelectService{
		rules: []selectionRule{
			{name: "totp+notes", match: func(r domain.Record) bool { return r.HasTOTP() && r.HasNotes() }},
			{name: "totp", match: domain.Record.HasTOTP},
			{name: "uri", match: domain.Record.HasURI},
			{name: "notes", match: domain.Record.HasNotes},
		},
	}
}

// Best returns the group member to keep. Single-member groups return that
// member directly. The function performs no mutation and its result
// depends only on the group's content and order.
func (s *SelectService) Best(g domain.Group) (domain.Record, error) {
	if g.Size() == 0 {
		return domain.Record{}, domain.ErrEmptyGroup
	}
	if g.Size() == 1 {
		return g.Records[0], nil
	}

	for _, rule := range s.rules {
		for _, r := range g.Records {
			if rule.match(r) {
				return r, nil
			}
		}
	}

	// Longest-notes fallback. The notes rule above already claims any
	// group with non-empty notes, so this never fires; it stays in the
	// chain to keep the full tie-break order visible.
	if r, ok := longestNotes(g.Records); ok {
		return r, nil
	}

	return g.Records[0], nil
}

// longestNotes returns the record with the longest notes field, ties
// broken by input order, and reports whether that record's notes are
// non-empty.
func longestNotes(records []domain.Record) (domain.Record, bool) {
	best := records[0]
	for _, r := range records[1:] {
		if len(r.Notes()) > len(best.Notes()) {
			best = r
		}
	}
	return best, best.HasNotes()
}
