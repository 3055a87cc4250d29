// internal/platform/ui/helpers.go
package ui

import (
	"fmt"
	"time"

	"bucketx/internal/core/domain"
)

// formatDuration formatea una duración de manera legible
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	} else if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	} else {
		minutes := int(d.Minutes())
		seconds := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm%ds", minutes, seconds)
	}
}

// progressCounter arma el contador de una línea de resultado, p.ej.
// "[12/40 30% 3.1/s ETA 8.9s]". Sin ETA cuando ya no queda nada.
func progressCounter(s ProgressSnapshot) string {
	counter := fmt.Sprintf("%d/%d %.0f%% %.1f/s", s.Done, s.Total, s.Percentage, s.Rate)
	if s.ETA > 0 {
		counter += " ETA " + formatDuration(s.ETA)
	}
	return "[" + counter + "]"
}

// boolToString convierte booleano a string visual
func boolToString(b bool) string {
	if b {
		return StyleSuccess.Sprint("ON")
	}
	return StyleSecondary.Sprint("OFF")
}

// summaryRows arma la tabla Result/Count en el orden canónico de kinds.
func summaryRows(stats domain.ScanStats) [][]string {
	rows := make([][]string, 0, len(domain.AllOutcomeKinds)+1)
	rows = append(rows, []string{"Result", "Count"})
	for _, k := range domain.AllOutcomeKinds {
		rows = append(rows, []string{k.Label(), fmt.Sprintf("%d", stats.ByKind[k])})
	}
	return rows
}
