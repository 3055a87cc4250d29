// internal/platform/ui/presenter.go
package ui

import (
	"io"
	"os"
	"time"

	"bucketx/internal/core/domain"
	"bucketx/internal/core/ports"
)

// Mode define el modo de visualización
type Mode string

const (
	ModePTerm Mode = "pterm" // Colores, header y tabla resumen (default)
	ModeRaw   Mode = "raw"   // Líneas planas, aptas para logs y pipes
	ModeQuiet Mode = "quiet" // Sin UI visual
)

// Presenter muestra el progreso de un escaneo. Result se invoca desde varios
// workers a la vez, así que las implementaciones deben ser thread-safe.
type Presenter interface {
	// Start muestra la configuración del escaneo
	Start(info ScanInfo)

	// Result muestra un outcome ya persistido
	Result(o domain.Outcome)

	// Warning muestra una advertencia
	Warning(msg string)

	// Error muestra un error
	Error(msg string)

	// Finish muestra el resumen final
	Finish(stats domain.ScanStats)

	// Close limpia recursos del presenter
	Close() error
}

// ScanInfo contiene información inicial del escaneo
type ScanInfo struct {
	Version    string
	Wordlist   string
	Candidates int
	Workers    int
	Host       string
	Timeout    time.Duration
	RateLimit  float64
	Proxy      bool
	Artifacts  []string
}

// New crea el presenter para mode, escribiendo en stdout.
func New(mode Mode) Presenter {
	return NewWithWriter(mode, os.Stdout)
}

// NewWithWriter crea el presenter para mode sobre w. Modos desconocidos
// caen en pterm.
func NewWithWriter(mode Mode, w io.Writer) Presenter {
	switch mode {
	case ModeQuiet:
		return NewNoopPresenter()
	case ModeRaw:
		return NewRawPresenter(w)
	default:
		return NewPTermPresenter(w)
	}
}

// AsObserver adapta un Presenter al port Observer del scanner.
func AsObserver(p Presenter) ports.Observer {
	return ports.ObserverFunc(p.Result)
}
