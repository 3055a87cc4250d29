// internal/adapters/output/streaming.go
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"bucketx/internal/core/domain"
	"bucketx/internal/core/ports"
)

// StreamingWriter escribe un objeto JSON por línea (NDJSON) a medida que
// llegan los registros, útil para encadenar con jq u otras herramientas.
type StreamingWriter struct {
	path   string
	scanID string
	f      *os.File
	enc    *json.Encoder
}

var _ ports.RecordWriter = (*StreamingWriter)(nil)

// StreamedRecord es una línea del archivo NDJSON.
type StreamedRecord struct {
	ScanID    string    `json:"scan_id"`
	Endpoint  string    `json:"endpoint"`
	Result    string    `json:"result"`
	WrittenAt time.Time `json:"written_at"`
}

// OpenStreaming crea (truncando) el archivo NDJSON.
func OpenStreaming(path, scanID string) (*StreamingWriter, error) {
	if err := ensureDir(path); err != nil {
		return nil, err
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create ndjson output: %w", err)
	}
	return &StreamingWriter{path: path, scanID: scanID, f: f, enc: json.NewEncoder(f)}, nil
}

func (w *StreamingWriter) Name() string { return w.path }

// Write codifica el registro; json.Encoder emite la línea en un único Write.
func (w *StreamingWriter) Write(rec domain.ResultRecord) error {
	err := w.enc.Encode(StreamedRecord{
		ScanID:    w.scanID,
		Endpoint:  rec.Endpoint,
		Result:    rec.Label,
		WrittenAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to append ndjson record: %w", err)
	}
	return nil
}

func (w *StreamingWriter) Close() error {
	return w.f.Close()
}
