package utils

import (
	"fmt"
	"time"
)

// FormatElapsed renders the age of an order for the kitchen board, always
// using the single largest applicable unit, never compound ones.
func FormatElapsed(createdAt, now time.Time) string {
	seconds := int64(now.Sub(createdAt).Seconds())
	if seconds < 0 {
		seconds = 0
	}
	minutes := seconds / 60
	hours := minutes / 60
	days := hours / 24

	switch {
	case days > 0:
		if days > 1 {
			return fmt.Sprintf("Hace %d días", days)
		}
		return "Hace 1 día"
	case hours > 0:
		if hours > 1 {
			return fmt.Sprintf("Hace %d horas", hours)
		}
		return "Hace 1 hora"
	case minutes > 0:
		return fmt.Sprintf("Hace %d min", minutes)
	default:
		return fmt.Sprintf("Hace %d seg", seconds)
	}
}
