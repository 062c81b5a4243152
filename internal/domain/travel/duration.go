package travel

import (
	"fmt"
	"time"
)

// FormatDuration renders a driving duration the way the maps provider does in
// pt-BR ("25 min", "1 hora 5 min", "2 horas").
func FormatDuration(d time.Duration) string {
	total := int(d.Round(time.Minute) / time.Minute)
	if total < 1 {
		total = 1
	}
	hours, minutes := total/60, total%60
	if hours == 0 {
		return fmt.Sprintf("%d min", minutes)
	}
	unit := "hora"
	if hours > 1 {
		unit = "horas"
	}
	if minutes == 0 {
		return fmt.Sprintf("%d %s", hours, unit)
	}
	return fmt.Sprintf("%d %s %d min", hours, unit, minutes)
}
