package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 10*time.Second, ParseDuration("10s", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("soon", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("", time.Minute))
}

func TestParseEventDate(t *testing.T) {
	const layout = "2006-01-02 15:04:05"

	got, err := ParseEventDate("2025-05-01 09:30:00", layout)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 5, 1, 9, 30, 0, 0, time.UTC), got)

	for _, bad := range []string{"2025-05-01", "2025-05-01T09:30:00", "01.05.2025 09:30:00", "2025-13-01 00:00:00", ""} {
		_, err := ParseEventDate(bad, layout)
		assert.Error(t, err, bad)
	}
}
