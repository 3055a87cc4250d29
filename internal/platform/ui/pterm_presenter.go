// internal/platform/ui/pterm_presenter.go
package ui

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/pterm/pterm"

	"bucketx/internal/core/domain"
)

// PTermPresenter implementa Presenter usando pterm para colores, cajas y
// tablas. Renderiza con las variantes Sprint y escribe en su propio writer.
type PTermPresenter struct {
	mu       sync.Mutex
	out      io.Writer
	progress *Progress
	info     ScanInfo
}

// NewPTermPresenter crea una nueva instancia del presenter con pterm
func NewPTermPresenter(w io.Writer) *PTermPresenter {
	return &PTermPresenter{out: w, progress: NewProgress(0)}
}

// Start muestra el header y la configuración del escaneo
func (p *PTermPresenter) Start(info ScanInfo) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.info = info
	p.progress = NewProgress(info.Candidates)

	fmt.Fprintln(p.out, pterm.DefaultHeader.
		WithBackgroundStyle(pterm.NewStyle(pterm.BgCyan)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Sprint("bucketx - Public Bucket Prober"))
	fmt.Fprintln(p.out)

	var b strings.Builder
	fmt.Fprintf(&b, "%s Wordlist: %s\n", IconTarget, StyleSuccess.Sprint(info.Wordlist))
	fmt.Fprintf(&b, "%s Candidates: %d\n", IconBucket, info.Candidates)
	fmt.Fprintf(&b, "   Host: %s\n", StyleWarning.Sprint(info.Host))
	fmt.Fprintf(&b, "%s Workers: %d\n", IconWorkers, info.Workers)
	fmt.Fprintf(&b, "%s Timeout: %s\n", IconTime, formatDuration(info.Timeout))
	if info.RateLimit > 0 {
		fmt.Fprintf(&b, "   Rate limit: %.1f req/s\n", info.RateLimit)
	}
	fmt.Fprintf(&b, "   Proxy: %s\n", boolToString(info.Proxy))
	fmt.Fprintf(&b, "%s Output: %s", IconArtifacts, strings.Join(info.Artifacts, ", "))

	fmt.Fprintln(p.out, pterm.DefaultBox.
		WithTitle("Scan Configuration").
		WithTitleTopCenter().
		WithRightPadding(4).
		WithLeftPadding(4).
		WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).
		Sprint(b.String()))
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, StylePrimary.Sprint(SeparatorHeavy))
}

// Result pinta una línea por outcome con contador [done/total pct rate ETA]
func (p *PTermPresenter) Result(o domain.Outcome) {
	snap := p.progress.Add(o.Kind)
	status := StatusFor(o.Kind)

	line := fmt.Sprintf("%s %-32s %s", status.Symbol(), o.Kind.Label(), o.Endpoint)
	if o.Detail != "" {
		line += " (" + o.Detail + ")"
	}
	counter := StyleSecondary.Sprint(progressCounter(snap))

	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.out, "%s %s\n", counter, status.Style().Sprint(line))
}

// Warning muestra una advertencia
func (p *PTermPresenter) Warning(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprint(p.out, pterm.Warning.Sprintln(msg))
}

// Error muestra un error
func (p *PTermPresenter) Error(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprint(p.out, pterm.Error.Sprintln(msg))
}

// Finish muestra el panel de estadísticas y la tabla por resultado
func (p *PTermPresenter) Finish(stats domain.ScanStats) {
	p.mu.Lock()
	defer p.mu.Unlock()

	fmt.Fprintln(p.out, StylePrimary.Sprint(SeparatorHeavy))
	fmt.Fprintln(p.out)

	title, bg := "Scan Completed", pterm.BgGreen
	if !stats.Complete() {
		title, bg = "Scan Incomplete", pterm.BgYellow
	}
	fmt.Fprintln(p.out, pterm.DefaultHeader.
		WithBackgroundStyle(pterm.NewStyle(bg)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Sprint(title))
	fmt.Fprintln(p.out)

	snap := p.progress.Snapshot()
	var b strings.Builder
	fmt.Fprintf(&b, "%s Duration: %s\n", IconTime, StyleSuccess.Sprint(formatDuration(stats.Duration())))
	fmt.Fprintf(&b, "%s Recorded: %d/%d\n", IconBucket, stats.Recorded, stats.Candidates)
	fmt.Fprintf(&b, "   Rate: %.1f probes/s", snap.Rate)
	if stats.Canceled {
		fmt.Fprintf(&b, "\n%s", StyleWarning.Sprint("Interrupted before every candidate was dispatched"))
	}
	fmt.Fprintln(p.out, pterm.DefaultBox.
		WithTitle("Scan Statistics").
		WithTitleTopCenter().
		WithRightPadding(4).
		WithLeftPadding(4).
		WithBoxStyle(pterm.NewStyle(pterm.FgGreen)).
		Sprint(b.String()))
	fmt.Fprintln(p.out)

	table, err := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithData(pterm.TableData(summaryRows(stats))).
		Srender()
	if err == nil {
		fmt.Fprintln(p.out, table)
	}
}

// Close no retiene recursos
func (p *PTermPresenter) Close() error {
	return nil
}
