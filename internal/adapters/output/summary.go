// Package output renders the plain-text run summary: the reconciled
// counts plus a breakdown of the surviving credentials by registrable
// domain.
package output

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"golang.org/x/net/publicsuffix"

	"vaultdedup/internal/core/domain"
	"vaultdedup/internal/platform/logx"
	"vaultdedup/internal/platform/urlnorm"
	"vaultdedup/internal/platform/validator"
)

// topDomainLimit caps the per-domain breakdown.
const topDomainLimit = 10

// SummaryWriter prints a machine-friendly recap after a run. Unlike the
// interactive presenter it writes plain text, so it stays useful when
// the output is piped or logged.
type SummaryWriter struct {
	norm   *urlnorm.Normalizer
	logger logx.Logger
}

// NewSummaryWriter creates a summary writer.
func NewSummaryWriter(norm *urlnorm.Normalizer, logger logx.Logger) *SummaryWriter {
	return &SummaryWriter{
		norm:   norm,
		logger: logger.With("component", "summary"),
	}
}

// Write renders the counts table and the domain breakdown.
func (s *SummaryWriter) Write(out io.Writer, rep *domain.Report, kept []domain.Record) error {
	w := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)

	fmt.Fprintf(w, "\n=== Deduplication Summary ===\n")
	fmt.Fprintf(w, "Credential records:\t%d\n", rep.LoginRecords)
	fmt.Fprintf(w, "Other records:\t%d\n", rep.PassthroughRecords)
	fmt.Fprintf(w, "Filtered by keyword:\t%d\n", rep.FilteredOut)
	fmt.Fprintf(w, "Duplicates removed:\t%d\n", rep.Removed)
	fmt.Fprintf(w, "Credentials kept:\t%d\n", rep.FinalLoginCount())
	fmt.Fprintf(w, "Rows in output:\t%d\n", rep.TotalOutput())

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush summary: %w", err)
	}

	if counts := s.domainCounts(kept); len(counts) > 0 {
		fmt.Fprintf(out, "\nTop domains among kept credentials:\n")
		for i, dc := range counts {
			if i == topDomainLimit {
				fmt.Fprintf(out, "  ... and %d more domains\n", len(counts)-topDomainLimit)
				break
			}
			fmt.Fprintf(out, "  - %s: %d\n", dc.domain, dc.count)
		}
	}

	if len(rep.Warnings) > 0 {
		fmt.Fprintf(out, "\nWarnings (%d):\n", len(rep.Warnings))
		for i, warning := range rep.Warnings {
			fmt.Fprintf(out, "  %d. [%s] %s\n", i+1, warning.Stage, warning.Message)
		}
	}

	fmt.Fprintln(out)
	s.logger.Debug("summary rendered", "kept", len(kept), "warnings", len(rep.Warnings))
	return nil
}

type domainCount struct {
	domain string
	count  int
}

// domainCounts tallies kept credentials by registrable domain, most
// frequent first, ties by name. Hosts without a public suffix (IP
// literals, single labels) count under their full host.
func (s *SummaryWriter) domainCounts(kept []domain.Record) []domainCount {
	tally := make(map[string]int)
	for _, r := range kept {
		if !r.HasURI() {
			continue
		}
		host, err := s.norm.ExtractDomain(r.URI())
		if err != nil || host == "" {
			continue
		}
		tally[registrable(host)]++
	}

	counts := make([]domainCount, 0, len(tally))
	for d, n := range tally {
		counts = append(counts, domainCount{domain: d, count: n})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].count != counts[j].count {
			return counts[i].count > counts[j].count
		}
		return counts[i].domain < counts[j].domain
	})
	return counts
}

// registrable reduces a host to its registrable domain. IP literals are
// not domains and pass through unchanged, as does any host the suffix
// list cannot split.
func registrable(host string) string {
	if validator.IsIP(host) {
		return host
	}
	etld1, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return host
	}
	return etld1
}
