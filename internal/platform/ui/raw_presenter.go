// internal/platform/ui/raw_presenter.go
package ui

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"bucketx/internal/core/domain"
)

// RawPresenter implementa el Presenter con líneas planas, sin colores ni
// cajas. Cada outcome produce su mensaje y la confirmación de guardado.
type RawPresenter struct {
	mu  sync.Mutex
	out io.Writer
}

// NewRawPresenter crea un nuevo RawPresenter
func NewRawPresenter(w io.Writer) *RawPresenter {
	return &RawPresenter{out: w}
}

func (r *RawPresenter) println(lines ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range lines {
		fmt.Fprintln(r.out, l)
	}
}

// Start imprime la configuración en una línea key=value
func (r *RawPresenter) Start(info ScanInfo) {
	r.println(fmt.Sprintf("Scanning %d candidates from %s against %s with %d workers (timeout %s)",
		info.Candidates, info.Wordlist, info.Host, info.Workers, info.Timeout))
}

// Result imprime el mensaje del outcome seguido de la confirmación
func (r *RawPresenter) Result(o domain.Outcome) {
	r.println(ResultMessage(o), fmt.Sprintf("Result for %s saved.", o.Endpoint))
}

// ResultMessage es la línea de consola de un outcome.
func ResultMessage(o domain.Outcome) string {
	switch o.Kind {
	case domain.OutcomePubliclyListable:
		return fmt.Sprintf("Working bucket: %s", o.Endpoint)
	case domain.OutcomeNotFoundOrPrivate:
		return fmt.Sprintf("Bucket %s does not exist or is not publicly accessible.", o.Endpoint)
	case domain.OutcomeTransportError:
		return fmt.Sprintf("Error checking bucket %s: %s", o.Endpoint, o.Detail)
	default:
		return fmt.Sprintf("Unable to determine the status of %s.", o.Endpoint)
	}
}

func (r *RawPresenter) Warning(msg string) {
	r.println("Warning: " + msg)
}

func (r *RawPresenter) Error(msg string) {
	r.println("Error: " + msg)
}

// Finish imprime el resumen por resultado
func (r *RawPresenter) Finish(stats domain.ScanStats) {
	rows := summaryRows(stats)
	parts := make([]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		parts = append(parts, row[0]+"="+row[1])
	}

	state := "Scan completed"
	if !stats.Complete() {
		state = "Scan incomplete"
	}
	r.println(fmt.Sprintf("%s: %d/%d recorded in %s (%s)",
		state, stats.Recorded, stats.Candidates, formatDuration(stats.Duration()), strings.Join(parts, ", ")))
}

// Close no retiene recursos
func (r *RawPresenter) Close() error {
	return nil
}
