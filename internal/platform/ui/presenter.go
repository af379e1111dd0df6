// Package ui renders the run's progress and results on the terminal.
package ui

import "time"

// Presenter is the interface the pipeline talks to while it works through
// its numbered steps. Implementations decide how (or whether) to render.
type Presenter interface {
	// Start opens the presentation with the run configuration
	Start(info RunInfo)

	// Step announces one numbered step of the run
	Step(num, total int, name string)

	// Info shows an informational line
	Info(msg string)

	// Warning shows a warning line
	Warning(msg string)

	// Error shows an error line
	Error(msg string)

	// FilteredEntry lists one record removed by the keyword filter
	FilteredEntry(index int, name, uri, username string)

	// Group shows the analysis of one duplicate group
	Group(detail GroupDetail)

	// Finish closes the presentation with the reconciled run statistics
	Finish(stats RunStats)

	// Close releases presenter resources
	Close() error
}

// RunInfo carries the configuration shown in the run header.
type RunInfo struct {
	Version       string
	Input         string
	Output        string
	AnalysisMode  bool
	Keywords      []string
	DefaultFolder string
}

// GroupDetail describes one duplicate group for the console analysis.
type GroupDetail struct {
	Index  int
	Header string
	Size   int

	// Group characteristics (shared by every member via the key)
	HasTOTP  bool
	HasNotes bool

	// Member counts
	WithURI   int
	WithTOTP  int
	WithNotes int

	// Attributes of the record being kept
	KeptTOTP  bool
	KeptURI   bool
	KeptNotes bool

	// Members is populated in analysis mode only
	Members []MemberDetail
}

// MemberDetail describes one group member and the decision taken on it.
type MemberDetail struct {
	Index    int
	Name     string
	HasTOTP  bool
	HasURI   bool
	HasNotes bool
	Folder   string
	Kept     bool
}

// RunStats carries the final reconciled counts.
type RunStats struct {
	LoginRecords       int
	PassthroughRecords int

	URIFixed        int
	FolderDefaulted int
	FilteredOut     int

	Groups          int
	SingletonGroups int
	DuplicateGroups int

	KeptTOTP  int
	KeptNotes int
	KeptURI   int
	KeptBasic int

	Removed     int
	FinalLogins int
	TotalOutput int
	Warnings    int

	Duration time.Duration
}
