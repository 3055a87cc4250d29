// internal/platform/ui/symbols.go
package ui

import (
	"github.com/pterm/pterm"

	"bucketx/internal/core/domain"
)

// Status representa cómo se pinta un outcome
type Status int

const (
	StatusPending Status = iota
	StatusSuccess
	StatusSkipped
	StatusWarning
	StatusError
)

// StatusFor mapea un kind a su estado visual.
func StatusFor(kind domain.OutcomeKind) Status {
	switch kind {
	case domain.OutcomePubliclyListable:
		return StatusSuccess
	case domain.OutcomeNotFoundOrPrivate:
		return StatusSkipped
	case domain.OutcomeIndeterminate:
		return StatusWarning
	case domain.OutcomeTransportError:
		return StatusError
	default:
		return StatusPending
	}
}

// String convierte el status a string
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusSuccess:
		return "success"
	case StatusSkipped:
		return "skipped"
	case StatusWarning:
		return "warning"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Symbol retorna el símbolo Unicode para cada estado
func (s Status) Symbol() string {
	switch s {
	case StatusPending:
		return "⏸"
	case StatusSuccess:
		return "✓"
	case StatusSkipped:
		return "⊘"
	case StatusWarning:
		return "⚠"
	case StatusError:
		return "✗"
	default:
		return "?"
	}
}

// Style retorna el estilo pterm para cada estado
func (s Status) Style() pterm.RGBStyle {
	switch s {
	case StatusSuccess:
		return StyleSuccess
	case StatusSkipped:
		return StyleSecondary
	case StatusWarning:
		return StyleWarning
	case StatusError:
		return StyleError
	default:
		return StyleSecondary
	}
}

// Icons globales para diferentes elementos de la UI
var (
	IconTarget    = "🎯"
	IconTime      = "⏱"
	IconArtifacts = "📦"
	IconWorkers   = "⚙️"
	IconBucket    = "🪣"
)

// Separadores y bordes
var (
	SeparatorHeavy = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"
)
