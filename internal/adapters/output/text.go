// internal/adapters/output/text.go
package output

import (
	"fmt"
	"os"

	"bucketx/internal/core/domain"
	"bucketx/internal/core/ports"
)

// TextWriter añade "<Label>: <endpoint>" al artefacto legible.
// El archivo se abre en modo append: acumula entre ejecuciones.
type TextWriter struct {
	path string
	f    *os.File
}

var _ ports.RecordWriter = (*TextWriter)(nil)

// OpenText abre (o crea) el archivo de texto en modo append.
func OpenText(path string) (*TextWriter, error) {
	if err := ensureDir(path); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open text output: %w", err)
	}
	return &TextWriter{path: path, f: f}, nil
}

func (w *TextWriter) Name() string { return w.path }

// Write emite la línea completa en una sola llamada al sistema.
func (w *TextWriter) Write(rec domain.ResultRecord) error {
	if _, err := w.f.WriteString(rec.TextLine()); err != nil {
		return fmt.Errorf("failed to append text record: %w", err)
	}
	return nil
}

func (w *TextWriter) Close() error {
	return w.f.Close()
}
