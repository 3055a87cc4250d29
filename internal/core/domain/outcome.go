// internal/core/domain/outcome.go
package domain

import "fmt"

// Outcome es el resultado clasificado de sondear un endpoint.
// Se construye una vez por probe y no se modifica después.
type Outcome struct {
	Candidate Candidate
	Endpoint  Endpoint
	Kind      OutcomeKind

	// Detail describe el fallo de transporte; vacío en el resto de kinds
	Detail string
}

// NewOutcome builds an Outcome. Unknown kinds fold into Indeterminate.
func NewOutcome(c Candidate, e Endpoint, kind OutcomeKind, detail string) Outcome {
	if !kind.IsValid() {
		kind = OutcomeIndeterminate
	}
	if kind != OutcomeTransportError {
		detail = ""
	}
	return Outcome{Candidate: c, Endpoint: e, Kind: kind, Detail: detail}
}

// Record returns the persisted form of the outcome.
func (o Outcome) Record() ResultRecord {
	return ResultRecord{Endpoint: o.Endpoint.String(), Label: o.Kind.Label()}
}

// ResultRecord es la fila persistida: (endpoint, etiqueta).
type ResultRecord struct {
	Endpoint string
	Label    string
}

// CSVHeader is the first row of the structured artifact.
var CSVHeader = []string{"Bucket URL", "Result Type"}

// Fields returns the record as a CSV row.
func (r ResultRecord) Fields() []string {
	return []string{r.Endpoint, r.Label}
}

// TextLine formats the record for the human-readable artifact.
func (r ResultRecord) TextLine() string {
	return fmt.Sprintf("%s: %s\n", r.Label, r.Endpoint)
}

// RecordFromFields parses a CSV row back into a record.
func RecordFromFields(fields []string) (ResultRecord, error) {
	if len(fields) != 2 {
		return ResultRecord{}, fmt.Errorf("%w: expected 2 fields, got %d", ErrMalformedRecord, len(fields))
	}
	return ResultRecord{Endpoint: fields[0], Label: fields[1]}, nil
}
