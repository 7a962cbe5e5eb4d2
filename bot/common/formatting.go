package common

import (
	"fmt"
	"strings"
	"time"
)

// FormatBalance formats a balance amount with thousand separators
func FormatBalance(balance int64) string {
	str := fmt.Sprintf("%d", balance)

	n := len(str)
	if n <= 3 {
		return str
	}

	var result strings.Builder
	for i, digit := range str {
		if i > 0 && (n-i)%3 == 0 {
			result.WriteRune(',')
		}
		result.WriteRune(digit)
	}

	return result.String()
}

// FormatBalanceCompact formats a balance amount in compact form (e.g. 100k, 1.5M)
func FormatBalanceCompact(balance int64) string {
	if balance < 1000 {
		return fmt.Sprintf("%d", balance)
	} else if balance < 1000000 {
		thousands := float64(balance) / 1000.0
		if thousands == float64(int(thousands)) {
			return fmt.Sprintf("%.0fk", thousands)
		}
		return fmt.Sprintf("%.1fk", thousands)
	} else if balance < 1000000000 {
		millions := float64(balance) / 1000000.0
		if millions == float64(int(millions)) {
			return fmt.Sprintf("%.0fM", millions)
		}
		return fmt.Sprintf("%.1fM", millions)
	} else {
		billions := float64(balance) / 1000000000.0
		if billions == float64(int(billions)) {
			return fmt.Sprintf("%.0fB", billions)
		}
		return fmt.Sprintf("%.1fB", billions)
	}
}

// FormatDuration renders a duration as the largest two units, e.g. "23h 59m"
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return "0s"
	}
	d = d.Round(time.Second)

	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	switch {
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	case minutes > 0:
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}

// FormatDiscordTimestamp formats a time as a Discord timestamp that displays in user's local timezone
// Format types: "t" = short time, "T" = long time, "d" = short date, "D" = long date,
// "f" = short date/time, "F" = long date/time, "R" = relative time
func FormatDiscordTimestamp(t time.Time, format string) string {
	return fmt.Sprintf("<t:%d:%s>", t.Unix(), format)
}
