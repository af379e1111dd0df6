package ui

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/pterm/pterm"
)

// PTermPresenter renders the run with the pterm library: header, boxed
// configuration, numbered step sections and a final statistics panel.
type PTermPresenter struct {
	mu sync.Mutex
}

// NewPTermPresenter creates the pterm-backed presenter.
func NewPTermPresenter() *PTermPresenter {
	return &PTermPresenter{}
}

// Start shows the run header and the configuration box.
func (p *PTermPresenter) Start(info RunInfo) {
	p.mu.Lock()
	defer p.mu.Unlock()

	pterm.DefaultHeader.
		WithBackgroundStyle(pterm.NewStyle(pterm.BgCyan)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Println("vaultdedup - Vault Export Deduplication")

	pterm.Println()

	infoPanel := pterm.DefaultBox.
		WithTitle("Run Configuration").
		WithTitleTopCenter().
		WithRightPadding(4).
		WithLeftPadding(4).
		WithBoxStyle(pterm.NewStyle(pterm.FgCyan))

	content := fmt.Sprintf("Input: %s\n", pterm.Cyan(info.Input))
	content += fmt.Sprintf("Output: %s\n", pterm.Cyan(info.Output))
	content += fmt.Sprintf("Analysis mode: %s\n", p.boolToString(info.AnalysisMode))
	content += fmt.Sprintf("Filter keywords: %s\n", p.keywordList(info.Keywords))
	content += fmt.Sprintf("Default folder: %s", pterm.Yellow(info.DefaultFolder))
	if info.Version != "" {
		content += fmt.Sprintf("\nVersion: %s", pterm.Gray(info.Version))
	}

	infoPanel.Println(content)
	pterm.Println()
}

// Step announces one numbered step.
func (p *PTermPresenter) Step(num, total int, name string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	pterm.DefaultSection.WithLevel(2).Printfln("Step %d/%d: %s", num, total, name)
}

// Info shows an informational line.
func (p *PTermPresenter) Info(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	pterm.Info.Println(msg)
}

// Warning shows a warning line.
func (p *PTermPresenter) Warning(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	pterm.Warning.Println(msg)
}

// Error shows an error line.
func (p *PTermPresenter) Error(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	pterm.Error.Println(msg)
}

// FilteredEntry lists one record removed by the keyword filter.
func (p *PTermPresenter) FilteredEntry(index int, name, uri, username string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if uri == "" {
		uri = "(empty)"
	}
	if username == "" {
		username = "(empty)"
	}
	pterm.Printfln("  %d. %s | URL: %s | Username: %s", index, name, uri, username)
}

// Group shows the analysis of one duplicate group.
func (p *PTermPresenter) Group(d GroupDetail) {
	p.mu.Lock()
	defer p.mu.Unlock()

	pterm.Println()
	pterm.Printfln("%s %s", pterm.Cyan(fmt.Sprintf("[Group %d]", d.Index)), d.Header)
	pterm.Printfln("  Total entries: %d", d.Size)
	pterm.Printfln("  Group characteristics: %s, %s",
		p.hasLabel(d.HasTOTP, "TOTP"),
		p.hasLabel(d.HasNotes, "notes"),
	)
	pterm.Printfln("  Entries with login_uri: %d/%d", d.WithURI, d.Size)
	pterm.Printfln("  Entries with TOTP: %d/%d", d.WithTOTP, d.Size)
	pterm.Printfln("  Entries with notes: %d/%d", d.WithNotes, d.Size)
	pterm.Printfln("  DECISION: Keeping entry with TOTP: %s, URI: %s, Notes: %s",
		p.yesNo(d.KeptTOTP), p.yesNo(d.KeptURI), p.yesNo(d.KeptNotes),
	)

	if len(d.Members) > 0 {
		pterm.Println("  Entries in this group:")
		for _, m := range d.Members {
			action := pterm.Red("REMOVE")
			if m.Kept {
				action = pterm.Green("KEEP")
			}
			folder := m.Folder
			if folder == "" {
				folder = "(empty)"
			}
			pterm.Printfln("    [%s] Entry %d: %s | %s | %s | %s | Folder: %s",
				action, m.Index, m.Name,
				p.hasLabel(m.HasTOTP, "TOTP"),
				p.hasLabel(m.HasURI, "URI"),
				p.hasLabel(m.HasNotes, "notes"),
				folder,
			)
		}
	}
}

// Finish shows the final statistics panel and the keep-reason table.
func (p *PTermPresenter) Finish(stats RunStats) {
	p.mu.Lock()
	defer p.mu.Unlock()

	pterm.Println()

	pterm.DefaultHeader.
		WithBackgroundStyle(pterm.NewStyle(pterm.BgGreen)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Println("Deduplication Complete")

	pterm.Println()

	statsPanel := pterm.DefaultBox.
		WithTitle("Summary").
		WithTitleTopCenter().
		WithRightPadding(4).
		WithLeftPadding(4).
		WithBoxStyle(pterm.NewStyle(pterm.FgGreen))

	content := fmt.Sprintf("Duration: %s\n", pterm.Green(p.formatDuration(stats.Duration)))
	content += fmt.Sprintf("Fixed empty login_uri fields: %d\n", stats.URIFixed)
	content += fmt.Sprintf("Set default folder: %d\n", stats.FolderDefaulted)
	content += fmt.Sprintf("Removed by keyword filter: %d\n", stats.FilteredOut)
	content += fmt.Sprintf("Groups: %s (%d unique, %d with duplicates)\n",
		pterm.Cyan(fmt.Sprintf("%d", stats.Groups)),
		stats.SingletonGroups,
		stats.DuplicateGroups,
	)
	content += fmt.Sprintf("Removed duplicates: %s\n", pterm.Red(fmt.Sprintf("%d", stats.Removed)))
	content += fmt.Sprintf("Final login entries: %s\n", pterm.Green(fmt.Sprintf("%d", stats.FinalLogins)))
	content += fmt.Sprintf("Preserved non-login entries: %d\n", stats.PassthroughRecords)
	content += fmt.Sprintf("Total entries in output: %s", pterm.Green(fmt.Sprintf("%d", stats.TotalOutput)))
	if stats.Warnings > 0 {
		content += fmt.Sprintf("\nWarnings: %s", pterm.Yellow(fmt.Sprintf("%d", stats.Warnings)))
	}

	statsPanel.Println(content)

	if stats.DuplicateGroups > 0 {
		pterm.Println()
		pterm.DefaultSection.WithLevel(2).Println("Kept from duplicate groups")

		tableData := pterm.TableData{
			{"Reason", "Count"},
			{"Has TOTP", fmt.Sprintf("%d", stats.KeptTOTP)},
			{"Has notes (no TOTP)", fmt.Sprintf("%d", stats.KeptNotes)},
			{"Has URI (no TOTP/notes)", fmt.Sprintf("%d", stats.KeptURI)},
			{"Basic", fmt.Sprintf("%d", stats.KeptBasic)},
		}

		pterm.DefaultTable.
			WithHasHeader().
			WithBoxed().
			WithData(tableData).
			Render()
	}

	pterm.Println()
}

// Close releases presenter resources.
func (p *PTermPresenter) Close() error {
	return nil
}

func (p *PTermPresenter) keywordList(keywords []string) string {
	if len(keywords) == 0 {
		return pterm.Gray("(none)")
	}
	return strings.Join(keywords, ", ")
}

func (p *PTermPresenter) hasLabel(has bool, what string) string {
	if has {
		return "Has " + what
	}
	return "No " + what
}

func (p *PTermPresenter) yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func (p *PTermPresenter) formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}

func (p *PTermPresenter) boolToString(b bool) string {
	if b {
		return pterm.Green("ON")
	}
	return pterm.Gray("OFF")
}
