// internal/core/ports/observer.go
package ports

import "bucketx/internal/core/domain"

// Observer recibe cada outcome después de persistirlo (progreso en consola, métricas).
// Se invoca desde los workers, así que debe ser seguro para uso concurrente.
type Observer interface {
	OnOutcome(o domain.Outcome)
}

// ObserverFunc adapta una función a Observer.
type ObserverFunc func(o domain.Outcome)

func (f ObserverFunc) OnOutcome(o domain.Outcome) { f(o) }
