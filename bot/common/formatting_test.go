package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatBalance(t *testing.T) {
	tests := []struct {
		balance  int64
		expected string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatBalance(tt.balance))
	}
}

func TestFormatBalanceCompact(t *testing.T) {
	tests := []struct {
		balance  int64
		expected string
	}{
		{999, "999"},
		{1000, "1k"},
		{1500, "1.5k"},
		{1000000, "1M"},
		{2500000, "2.5M"},
		{1000000000, "1B"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatBalanceCompact(tt.balance))
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d        time.Duration
		expected string
	}{
		{0, "0s"},
		{45 * time.Second, "45s"},
		{90 * time.Second, "1m 30s"},
		{23*time.Hour + 59*time.Minute, "23h 59m"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatDuration(tt.d))
	}
}

func TestParseUserMention(t *testing.T) {
	id, ok := ParseUserMention("<@123456>")
	assert.True(t, ok)
	assert.Equal(t, "123456", id)

	id, ok = ParseUserMention("<@!123456>")
	assert.True(t, ok)
	assert.Equal(t, "123456", id)

	for _, bad := range []string{"123456", "<@>", "<@abc>", "@someone", "<#123>"} {
		_, ok := ParseUserMention(bad)
		assert.False(t, ok, "expected %q to be rejected", bad)
	}
}
