// internal/core/ports/sink.go
package ports

import "bucketx/internal/core/domain"

// RecordWriter persiste ResultRecords en un artefacto concreto (txt, csv, xlsx, sqlite).
// Las implementaciones no necesitan ser seguras para uso concurrente: el Sink
// serializa las llamadas.
type RecordWriter interface {
	// Name identifica el artefacto en logs y errores
	Name() string

	// Write añade un registro y lo hace durable antes de retornar
	Write(rec domain.ResultRecord) error

	// Close vuelca lo pendiente y libera el recurso
	Close() error
}

// Sink agrega outcomes desde varios workers concurrentes.
type Sink interface {
	// Record persiste un outcome en todos los artefactos. Seguro para uso concurrente.
	Record(o domain.Outcome) error

	// Stats retorna los conteos de lo registrado hasta ahora
	Stats() domain.ScanStats

	// Close cierra todos los artefactos
	Close() error
}
