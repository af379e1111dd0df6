// cmd/vaultdedup/main.go
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"vaultdedup/internal/adapters/csvio"
	"vaultdedup/internal/adapters/output"
	"vaultdedup/internal/core/domain"
	"vaultdedup/internal/core/usecases"
	"vaultdedup/internal/platform/config"
	"vaultdedup/internal/platform/logx"
	"vaultdedup/internal/platform/ui"
	"vaultdedup/internal/platform/urlnorm"
)

var (
	// Overridable with -ldflags at build time
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// 1. Load centralized config (handles precedence internally)
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: configuration load failed: %v\n", err)
		os.Exit(2)
	}

	if cfg.PrintHelp {
		config.PrintHelp()
	}
	if cfg.PrintVersion {
		config.PrintVersion(version, commit, date)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Usage: vaultdedup -i <export.csv>")
		fmt.Fprintln(os.Stderr, "Try: vaultdedup -h for help")
		os.Exit(2)
	}

	// 2. Shared logger
	logger := logx.New()
	if cfg.Verbose {
		logger.SetLevel(logx.LevelDebug)
	}

	logger.Debug("vaultdedup starting",
		"version", version,
		"input", cfg.Input,
		"output", cfg.Output,
		"analyze", cfg.Analyze,
	)

	// 3. Presenter: interactive unless quiet
	var presenter ui.Presenter = ui.NewPTermPresenter()
	if cfg.Quiet {
		presenter = ui.NewNoopPresenter()
	}
	defer presenter.Close()

	presenter.Start(ui.RunInfo{
		Version:       version,
		Input:         cfg.Input,
		Output:        cfg.Output,
		AnalysisMode:  cfg.Analyze,
		Keywords:      cfg.Filter,
		DefaultFolder: cfg.DefaultFolder,
	})

	start := time.Now()

	// 4. Step 1: read the export
	presenter.Step(1, usecases.TotalSteps, "Reading CSV file")
	parsed, err := csvio.NewReader(logger).ReadFile(cfg.Input)
	if err != nil {
		presenter.Error(err.Error())
		logger.Err(err, "phase", "read")
		os.Exit(1)
	}
	presenter.Info(fmt.Sprintf("Read %d entries from %s", parsed.TotalRecords(), cfg.Input))
	presenter.Info(fmt.Sprintf("Columns: %s", strings.Join(parsed.Header, ", ")))
	presenter.Info(fmt.Sprintf("  - %d login entries", len(parsed.Logins)))
	presenter.Info(fmt.Sprintf("  - %d non-login entries (will be preserved)", len(parsed.Passthrough)))
	presenter.Info(fmt.Sprintf("  - %d login entries with empty folder", parsed.EmptyFolder))
	presenter.Info(fmt.Sprintf("  - %d login entries with empty login_uri", parsed.EmptyURI))

	// 5. Steps 2-6: the deduplication engine
	pipeline := usecases.NewPipeline(usecases.PipelineOptions{
		Keywords:      cfg.Filter,
		DefaultFolder: cfg.DefaultFolder,
		Analyze:       cfg.Analyze,
		Logger:        logger,
		Presenter:     presenter,
	})

	result, err := pipeline.Run(usecases.Input{
		Logins:      parsed.Logins,
		Passthrough: parsed.Passthrough,
		EmptyFolder: parsed.EmptyFolder,
		EmptyURI:    parsed.EmptyURI,
	})
	if err != nil {
		presenter.Error(err.Error())
		logger.Err(err, "phase", "pipeline")
		os.Exit(1)
	}

	// 6. Step 7: write the output, unless analyzing
	presenter.Step(7, usecases.TotalSteps, "Writing output file")
	if cfg.Analyze {
		presenter.Info("Analysis mode: no output file written")
	} else {
		if _, statErr := os.Stat(cfg.Output); statErr == nil {
			presenter.Warning(fmt.Sprintf("Overwriting existing file %s", cfg.Output))
		}
		if err := csvio.NewWriter(logger).WriteFile(cfg.Output, parsed.Header, result.Kept, result.Passthrough); err != nil {
			presenter.Error(err.Error())
			logger.Err(err, "phase", "write")
			os.Exit(1)
		}
		presenter.Info(fmt.Sprintf("Wrote %d entries to %s", result.Report.TotalOutput(), cfg.Output))
	}

	presenter.Finish(runStats(result.Report, time.Since(start)))

	// 7. Plain-text recap, the only output in quiet mode
	summary := output.NewSummaryWriter(urlnorm.New(logx.NewSilent()), logger)
	if err := summary.Write(os.Stdout, result.Report, result.Kept); err != nil {
		logger.Err(err, "phase", "summary")
		os.Exit(1)
	}
}

// runStats flattens the report into the presenter's closing view.
func runStats(rep *domain.Report, elapsed time.Duration) ui.RunStats {
	return ui.RunStats{
		LoginRecords:       rep.LoginRecords,
		PassthroughRecords: rep.PassthroughRecords,
		URIFixed:           rep.URIFixed,
		FolderDefaulted:    rep.FolderDefaulted,
		FilteredOut:        rep.FilteredOut,
		Groups:             rep.Groups,
		SingletonGroups:    rep.SingletonGroups,
		DuplicateGroups:    rep.DuplicateGroups,
		KeptTOTP:           rep.Kept[domain.KeepTOTP],
		KeptNotes:          rep.Kept[domain.KeepNotes],
		KeptURI:            rep.Kept[domain.KeepURI],
		KeptBasic:          rep.Kept[domain.KeepBasic],
		Removed:            rep.Removed,
		FinalLogins:        rep.FinalLoginCount(),
		TotalOutput:        rep.TotalOutput(),
		Warnings:           len(rep.Warnings),
		Duration:           elapsed,
	}
}
