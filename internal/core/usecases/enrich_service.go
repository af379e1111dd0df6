// Package usecases implements the deduplication engine: enrichment,
// keyword filtering, grouping, best-record selection, and the pipeline
// that runs them in order.
package usecases

import (
	"strings"

	"vaultdedup/internal/core/domain"
	"vaultdedup/internal/platform/validator"
)

// EnrichService fills a missing address field from the record's display
// name when that name is itself a recognizable address, and substitutes a
// configured default for a missing folder label. Records are never
// modified in place; enrichment returns new values.
type EnrichService struct {
	defaultFolder string
}

// NewEnrichService creates the enricher with the folder label to apply
// when a record has none.
func NewEnrichService(defaultFolder string) *EnrichService {
	return &EnrichService{defaultFolder: defaultFolder}
}

// Enrich returns a copy of the record with the address and folder fields
// filled in where possible. Applying Enrich to its own output is a no-op.
func (s *EnrichService) Enrich(r domain.Record) domain.Record {
	out := r

	if !out.HasURI() && out.Name() != "" {
		name := strings.TrimSpace(out.Name())

		switch {
		case validator.IsIP(name), validator.IsDomainName(name):
			out = out.With(domain.ColURI, "https://"+name)
		case validator.HasScheme(name):
			out = out.With(domain.ColURI, name)
		}
	}

	if out.Folder() == "" {
		out = out.With(domain.ColFolder, s.defaultFolder)
	}

	return out
}

// EnrichAll enriches every record and reports how many addresses were
// filled and how many folders were defaulted.
func (s *EnrichService) EnrichAll(records []domain.Record) (out []domain.Record, uriFixed, folderDefaulted int) {
	out = make([]domain.Record, 0, len(records))
	for _, r := range records {
		enriched := s.Enrich(r)
		if enriched.URI() != r.URI() {
			uriFixed++
		}
		if enriched.Folder() != r.Folder() {
			folderDefaulted++
		}
		out = append(out, enriched)
	}
	return out, uriFixed, folderDefaulted
}
