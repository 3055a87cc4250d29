// internal/platform/ui/noop_presenter.go
package ui

import "bucketx/internal/core/domain"

// NoopPresenter es una implementación vacía del Presenter
// que no produce ninguna salida. Útil para modo quiet o headless.
type NoopPresenter struct{}

// NewNoopPresenter crea una instancia del presenter sin salida
func NewNoopPresenter() *NoopPresenter {
	return &NoopPresenter{}
}

func (n *NoopPresenter) Start(info ScanInfo)           {}
func (n *NoopPresenter) Result(o domain.Outcome)       {}
func (n *NoopPresenter) Warning(msg string)            {}
func (n *NoopPresenter) Error(msg string)              {}
func (n *NoopPresenter) Finish(stats domain.ScanStats) {}

func (n *NoopPresenter) Close() error {
	return nil
}
