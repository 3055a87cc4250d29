// internal/core/domain/enums.go
package domain

// OutcomeKind clasifica el resultado de sondear un endpoint.
type OutcomeKind string

const (
	// OutcomePubliclyListable la respuesta contiene un documento ListBucketResult
	OutcomePubliclyListable OutcomeKind = "PubliclyListable"

	// OutcomeNotFoundOrPrivate la respuesta contiene un elemento Error
	OutcomeNotFoundOrPrivate OutcomeKind = "NotFoundOrPrivate"

	// OutcomeIndeterminate hubo respuesta pero sin ningún marcador reconocible
	OutcomeIndeterminate OutcomeKind = "Indeterminate"

	// OutcomeTransportError la petición falló antes de recibir respuesta
	OutcomeTransportError OutcomeKind = "TransportError"
)

// AllOutcomeKinds lists the kinds in the order summaries print them.
var AllOutcomeKinds = []OutcomeKind{
	OutcomePubliclyListable,
	OutcomeNotFoundOrPrivate,
	OutcomeIndeterminate,
	OutcomeTransportError,
}

// IsValid verifica si el kind es uno de los conocidos.
func (k OutcomeKind) IsValid() bool {
	switch k {
	case OutcomePubliclyListable, OutcomeNotFoundOrPrivate, OutcomeIndeterminate, OutcomeTransportError:
		return true
	default:
		return false
	}
}

// Label is the human-readable category written to the result artifacts.
func (k OutcomeKind) Label() string {
	switch k {
	case OutcomePubliclyListable:
		return "Working Bucket"
	case OutcomeNotFoundOrPrivate:
		return "Non-existent or Private Bucket"
	case OutcomeIndeterminate:
		return "Unknown Status"
	case OutcomeTransportError:
		return "Error"
	default:
		return "Unknown Status"
	}
}

// String retorna la representación string del kind.
func (k OutcomeKind) String() string {
	return string(k)
}

// ParseOutcomeLabel is the inverse of Label.
func ParseOutcomeLabel(label string) (OutcomeKind, bool) {
	for _, k := range AllOutcomeKinds {
		if k.Label() == label {
			return k, true
		}
	}
	return "", false
}
