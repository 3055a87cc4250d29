// internal/adapters/output/csv.go
package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"bucketx/internal/core/domain"
	"bucketx/internal/core/ports"
)

// CSVWriter escribe el artefacto estructurado: cabecera al abrir y una fila
// por registro, con flush tras cada fila.
type CSVWriter struct {
	path string
	f    *os.File
	cw   *csv.Writer
}

var _ ports.RecordWriter = (*CSVWriter)(nil)

// OpenCSV trunca el archivo y escribe la cabecera antes de cualquier registro.
func OpenCSV(path string) (*CSVWriter, error) {
	if err := ensureDir(path); err != nil {
		return nil, err
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create csv output: %w", err)
	}

	w := &CSVWriter{path: path, f: f, cw: csv.NewWriter(f)}
	if err := w.writeRow(domain.CSVHeader); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	return w, nil
}

func (w *CSVWriter) Name() string { return w.path }

func (w *CSVWriter) Write(rec domain.ResultRecord) error {
	if err := w.writeRow(rec.Fields()); err != nil {
		return fmt.Errorf("failed to append csv record: %w", err)
	}
	return nil
}

func (w *CSVWriter) writeRow(fields []string) error {
	if err := w.cw.Write(fields); err != nil {
		return err
	}
	w.cw.Flush()
	return w.cw.Error()
}

func (w *CSVWriter) Close() error {
	w.cw.Flush()
	flushErr := w.cw.Error()
	closeErr := w.f.Close()
	if flushErr != nil {
		return flushErr
	}
	return closeErr
}

// ReadCSVRecords lee un artefacto estructurado y valida la cabecera.
func ReadCSVRecords(r io.Reader) ([]domain.ResultRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) != len(domain.CSVHeader) || header[0] != domain.CSVHeader[0] || header[1] != domain.CSVHeader[1] {
		return nil, fmt.Errorf("%w: unexpected header %q", domain.ErrMalformedRecord, header)
	}

	var out []domain.ResultRecord
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		rec, err := domain.RecordFromFields(row)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}
