// internal/adapters/output/xlsx.go
package output

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"bucketx/internal/core/domain"
	"bucketx/internal/core/ports"
)

const xlsxSheet = "Results"

// XLSXWriter genera un informe Excel con las mismas columnas que el CSV.
// Las filas se acumulan en el stream writer y el archivo se guarda en Close.
type XLSXWriter struct {
	path string
	file *excelize.File
	sw   *excelize.StreamWriter
	row  int
}

var _ ports.RecordWriter = (*XLSXWriter)(nil)

// OpenXLSX prepara el libro y escribe la cabecera.
func OpenXLSX(path string) (*XLSXWriter, error) {
	if err := ensureDir(path); err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", xlsxSheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to name xlsx sheet: %w", err)
	}
	sw, err := f.NewStreamWriter(xlsxSheet)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create xlsx stream: %w", err)
	}
	if err := sw.SetColWidth(1, 1, 60); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to size xlsx columns: %w", err)
	}
	if err := sw.SetColWidth(2, 2, 32); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to size xlsx columns: %w", err)
	}

	w := &XLSXWriter{path: path, file: f, sw: sw}
	if err := w.setRow(domain.CSVHeader); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write xlsx header: %w", err)
	}
	return w, nil
}

func (w *XLSXWriter) Name() string { return w.path }

func (w *XLSXWriter) Write(rec domain.ResultRecord) error {
	if err := w.setRow(rec.Fields()); err != nil {
		return fmt.Errorf("failed to append xlsx record: %w", err)
	}
	return nil
}

func (w *XLSXWriter) setRow(fields []string) error {
	w.row++
	cell, err := excelize.CoordinatesToCellName(1, w.row)
	if err != nil {
		return err
	}
	values := make([]interface{}, len(fields))
	for i, f := range fields {
		values[i] = f
	}
	return w.sw.SetRow(cell, values)
}

// Close vuelca el stream y guarda el libro en disco.
func (w *XLSXWriter) Close() error {
	defer w.file.Close()
	if err := w.sw.Flush(); err != nil {
		return fmt.Errorf("failed to flush xlsx stream: %w", err)
	}
	if err := w.file.SaveAs(w.path); err != nil {
		return fmt.Errorf("failed to save xlsx output: %w", err)
	}
	return nil
}
