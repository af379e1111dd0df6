package usecases

import (
	"fmt"

	"vaultdedup/internal/core/domain"
	"vaultdedup/internal/platform/logx"
	"vaultdedup/internal/platform/ui"
	"vaultdedup/internal/platform/urlnorm"
)

// TotalSteps is the number of numbered steps a full run presents,
// including the read and write steps driven by the caller.
const TotalSteps = 7

// detailedGroupLimit caps how many duplicate groups are detailed on the
// console outside analysis mode.
const detailedGroupLimit = 10

// PipelineOptions configures a deduplication pipeline.
type PipelineOptions struct {
	Keywords      []string
	DefaultFolder string
	Analyze       bool
	Logger        logx.Logger
	Presenter     ui.Presenter
}

// Pipeline runs the engine passes in order over the in-memory record set:
// enrich, filter, group, select. It owns steps 2-6 of the run; reading
// and writing stay with the caller.
type Pipeline struct {
	enricher *EnrichService
	filter   *FilterService
	grouper  *GroupService
	selector *SelectService
	analyze  bool
	logger   logx.Logger
	ui       ui.Presenter
}

// NewPipeline wires the engine services from options.
func NewPipeline(opts PipelineOptions) *Pipeline {
	logger := opts.Logger
	if logger == nil {
		logger = logx.New()
	}
	presenter := opts.Presenter
	if presenter == nil {
		presenter = ui.NewNoopPresenter()
	}

	return &Pipeline{
		enricher: NewEnrichService(opts.DefaultFolder),
		filter:   NewFilterService(opts.Keywords),
		grouper:  NewGroupService(urlnorm.New(logger), logger),
		selector: NewSelectService(),
		analyze:  opts.Analyze,
		logger:   logger.With("component", "pipeline"),
		ui:       presenter,
	}
}

// Input is the parsed export handed to the pipeline: credential records,
// passthrough records, and the read-time counts of empty fields.
type Input struct {
	Logins      []domain.Record
	Passthrough []domain.Record
	EmptyFolder int
	EmptyURI    int
}

// Result is the engine's output: the surviving credential records in the
// order their groups were first seen, the untouched passthrough records,
// and the reconciled report.
type Result struct {
	Kept        []domain.Record
	Passthrough []domain.Record
	Report      *domain.Report
}

// Run executes the engine over the input set. Everything is synchronous
// and in-memory; the only error paths are internal invariant violations.
func (p *Pipeline) Run(in Input) (*Result, error) {
	rep := domain.NewReport()
	rep.LoginRecords = len(in.Logins)
	rep.PassthroughRecords = len(in.Passthrough)
	rep.EmptyFolderAtRead = in.EmptyFolder
	rep.EmptyURIAtRead = in.EmptyURI

	// Step 2: enrichment
	p.ui.Step(2, TotalSteps, "Fixing empty login_uri fields and setting default folders")
	enriched, uriFixed, folderDefaulted := p.enricher.EnrichAll(in.Logins)
	rep.URIFixed = uriFixed
	rep.FolderDefaulted = folderDefaulted
	p.ui.Info(fmt.Sprintf("Fixed %d empty login_uri fields", uriFixed))
	p.ui.Info(fmt.Sprintf("Set default folder for %d entries with empty folders", folderDefaulted))

	// Step 3: keyword filter
	p.ui.Step(3, TotalSteps, "Filtering entries with specified keywords")
	kept, removed := p.filter.Split(enriched)
	rep.FilteredOut = len(removed)
	p.ui.Info(fmt.Sprintf("Removed %d entries containing filter keywords", len(removed)))
	if len(removed) > 0 {
		p.ui.Info("All removed entries:")
		for i, r := range removed {
			p.ui.FilteredEntry(i+1, r.Name(), r.URI(), r.Username())
		}
	}

	// Step 4: grouping
	p.ui.Step(4, TotalSteps, "Grouping entries for deduplication")
	grouping := p.grouper.Group(kept)
	for _, w := range grouping.Warnings {
		rep.Warnings = append(rep.Warnings, w)
		p.ui.Warning(w.Message)
	}
	rep.Groups = len(grouping.Groups)
	rep.SingletonGroups = len(grouping.Singletons())
	duplicates := grouping.Duplicates()
	rep.DuplicateGroups = len(duplicates)
	p.ui.Info(fmt.Sprintf("Created %d unique groups", rep.Groups))
	p.ui.Info(fmt.Sprintf("  - %d groups have a single entry (no duplicates)", rep.SingletonGroups))
	p.ui.Info(fmt.Sprintf("  - %d groups have multiple entries (duplicates)", rep.DuplicateGroups))

	// Step 5: duplicate analysis
	p.ui.Step(5, TotalSteps, "Analyzing duplicate entries")
	if len(duplicates) > 0 {
		p.ui.Info("Detailed analysis of duplicate groups:")
	}
	for idx, g := range duplicates {
		best, err := p.selector.Best(g)
		if err != nil {
			return nil, err
		}
		rep.Removed += g.Size() - 1
		rep.CountKept(domain.ReasonFor(best))

		if p.analyze || idx < detailedGroupLimit {
			p.ui.Group(p.groupDetail(idx+1, g, best))
		}
	}
	if len(duplicates) > detailedGroupLimit && !p.analyze {
		p.ui.Info(fmt.Sprintf("... and %d more duplicate groups (use --analyze for full details)",
			len(duplicates)-detailedGroupLimit))
	}

	// Step 6: final selection, in group first-seen order
	p.ui.Step(6, TotalSteps, "Selecting final entries")
	final := make([]domain.Record, 0, len(grouping.Groups))
	for _, g := range grouping.Groups {
		best, err := p.selector.Best(g)
		if err != nil {
			return nil, err
		}
		final = append(final, best)
	}

	if err := rep.Reconcile(); err != nil {
		return nil, err
	}

	p.logger.Debug("pipeline finished",
		"kept", len(final),
		"removed", rep.Removed,
		"filtered", rep.FilteredOut,
	)

	return &Result{
		Kept:        final,
		Passthrough: in.Passthrough,
		Report:      rep,
	}, nil
}

// groupDetail assembles the console view of one duplicate group. Member
// lines are included in analysis mode only.
func (p *Pipeline) groupDetail(index int, g domain.Group, best domain.Record) ui.GroupDetail {
	d := ui.GroupDetail{
		Index:     index,
		Header:    g.Key.String(),
		Size:      g.Size(),
		HasTOTP:   g.Key.HasTOTP,
		HasNotes:  g.Key.HasNotes,
		WithURI:   g.CountURI(),
		WithTOTP:  g.CountTOTP(),
		WithNotes: g.CountNotes(),
		KeptTOTP:  best.HasTOTP(),
		KeptURI:   best.HasURI(),
		KeptNotes: best.HasNotes(),
	}

	if p.analyze {
		for i, r := range g.Records {
			d.Members = append(d.Members, ui.MemberDetail{
				Index:    i + 1,
				Name:     r.Name(),
				HasTOTP:  r.HasTOTP(),
				HasURI:   r.HasURI(),
				HasNotes: r.HasNotes(),
				Folder:   r.Folder(),
				Kept:     r.Equal(best),
			})
		}
	}

	return d
}
