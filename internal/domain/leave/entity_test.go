package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInclusiveDays(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC)
	}

	assert.Equal(t, 1, InclusiveDays(day(2), day(2)))
	assert.Equal(t, 2, InclusiveDays(day(2), day(3)))
	assert.Equal(t, 5, InclusiveDays(day(2), day(6)))
	assert.Equal(t, 31, InclusiveDays(day(1), day(31)))
}
