package progress

import (
	"testing"
	"time"

	"github.com/adilzhanb/zhospar/internal/domain"
	"github.com/stretchr/testify/assert"
)

func key(t time.Time, daysAgo int) string {
	return domain.DateKey(t.AddDate(0, 0, -daysAgo))
}

func TestCurrentStreak_Empty(t *testing.T) {
	today := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, CurrentStreak(nil, today))
}

func TestCurrentStreak_StopsAtGap(t *testing.T) {
	today := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	dates := []string{
		key(today, 0),
		key(today, 1),
		key(today, 2),
		// gap at today-3
		key(today, 4),
		key(today, 5),
	}
	assert.Equal(t, 3, CurrentStreak(dates, today))
}

func TestCurrentStreak_RequiresToday(t *testing.T) {
	today := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	dates := []string{key(today, 1), key(today, 2), key(today, 3)}
	assert.Equal(t, 0, CurrentStreak(dates, today))
}

func TestCurrentStreak_DuplicatesCountOnce(t *testing.T) {
	today := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	dates := []string{key(today, 0), key(today, 0), key(today, 0), key(today, 1)}
	assert.Equal(t, 2, CurrentStreak(dates, today))
}

func TestCurrentStreak_SingleDay(t *testing.T) {
	today := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, 1, CurrentStreak([]string{key(today, 0)}, today))
}

func TestBestStreak(t *testing.T) {
	assert.Equal(t, 5, BestStreak(5, 3))
	assert.Equal(t, 7, BestStreak(5, 7))
	assert.Equal(t, 0, BestStreak(0, 0))
}
