package domain

import "fmt"

// KeepReason classifies why the kept record of a duplicate group won,
// mirroring the selector's priority order. Tallied per duplicate group.
type KeepReason string

const (
	KeepTOTP  KeepReason = "totp"  // kept record carries a one-time-password secret
	KeepNotes KeepReason = "notes" // kept record has notes but no TOTP
	KeepURI   KeepReason = "uri"   // kept record has an address but no TOTP/notes
	KeepBasic KeepReason = "basic" // kept record has none of the above
)

// ReasonFor classifies a kept record into its KeepReason bucket.
func ReasonFor(r Record) KeepReason {
	switch {
	case r.HasTOTP():
		return KeepTOTP
	case r.HasNotes():
		return KeepNotes
	case r.HasURI():
		return KeepURI
	default:
		return KeepBasic
	}
}

// Warning is a recoverable per-record condition surfaced to the operator.
type Warning struct {
	Stage   string
	Message string
}

// Report aggregates every count the run presents to the operator. All
// counts must reconcile exactly; Reconcile checks the invariants.
type Report struct {
	// Read phase
	LoginRecords       int
	PassthroughRecords int
	EmptyFolderAtRead  int
	EmptyURIAtRead     int

	// Enrichment
	URIFixed        int
	FolderDefaulted int

	// Keyword filter
	FilteredOut int

	// Grouping
	Groups          int
	SingletonGroups int
	DuplicateGroups int

	// Selection
	Removed int
	Kept    map[KeepReason]int

	Warnings []Warning
}

// NewReport returns an empty report ready for tallying.
func NewReport() *Report {
	return &Report{Kept: make(map[KeepReason]int)}
}

// AddWarning records a recoverable condition.
func (r *Report) AddWarning(stage, message string) {
	r.Warnings = append(r.Warnings, Warning{Stage: stage, Message: message})
}

// CountKept tallies the keep-reason of a duplicate group's surviving record.
func (r *Report) CountKept(reason KeepReason) {
	if r.Kept == nil {
		r.Kept = make(map[KeepReason]int)
	}
	r.Kept[reason]++
}

// FinalLoginCount is the number of credential records in the output:
// one survivor per group.
func (r *Report) FinalLoginCount() int {
	return r.Groups
}

// TotalOutput is the number of rows written: survivors plus passthrough.
func (r *Report) TotalOutput() int {
	return r.Groups + r.PassthroughRecords
}

// TotalRemoved is how many credential records did not reach the output,
// whether dropped by the keyword filter or as group duplicates.
func (r *Report) TotalRemoved() int {
	return r.FilteredOut + r.Removed
}

// Reconcile verifies the report's internal invariants. A failure here is
// a bug in the engine, never an input problem.
func (r *Report) Reconcile() error {
	if r.SingletonGroups+r.DuplicateGroups != r.Groups {
		return fmt.Errorf("group counts do not reconcile: %d singleton + %d duplicate != %d total",
			r.SingletonGroups, r.DuplicateGroups, r.Groups)
	}
	keptInDuplicates := 0
	for _, n := range r.Kept {
		keptInDuplicates += n
	}
	if keptInDuplicates != r.DuplicateGroups {
		return fmt.Errorf("keep-reason counts do not reconcile: %d tallied != %d duplicate groups",
			keptInDuplicates, r.DuplicateGroups)
	}
	if r.Groups+r.TotalRemoved() != r.LoginRecords {
		return fmt.Errorf("record counts do not reconcile: %d kept + %d removed != %d credential records",
			r.Groups, r.TotalRemoved(), r.LoginRecords)
	}
	return nil
}
