// internal/platform/ui/colors.go
package ui

import "github.com/pterm/pterm"

// Paleta de colores
var (
	// EmberOrange - elementos principales, headers
	EmberOrange = pterm.NewRGB(255, 107, 53)

	// InfernoRed - errores de transporte
	InfernoRed = pterm.NewRGB(215, 38, 56)

	// MoltenGold - warnings, estados indeterminados
	MoltenGold = pterm.NewRGB(255, 182, 39)

	// AshGray - texto secundario, buckets privados o inexistentes
	AshGray = pterm.NewRGB(128, 128, 128)

	// GhostCyan - buckets listables, acentos
	GhostCyan = pterm.NewRGB(0, 206, 209)
)

// Estilos preconfigurados para diferentes contextos
var (
	StylePrimary   = EmberOrange.ToRGBStyle()
	StyleSuccess   = GhostCyan.ToRGBStyle()
	StyleWarning   = MoltenGold.ToRGBStyle()
	StyleError     = InfernoRed.ToRGBStyle()
	StyleSecondary = AshGray.ToRGBStyle()
)
