package listing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeRemaining(t *testing.T) {
	now := Nanos(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	ns := func(d time.Duration) uint64 { return uint64(d) }

	cases := []struct {
		end  uint64
		want Remaining
		text string
	}{
		{now + ns(2*24*time.Hour+3*time.Hour+5*time.Minute+30*time.Second), Remaining{Days: 2, Hours: 3, Minutes: 5}, "2d 3h 5m"},
		{now + ns(3*time.Hour+5*time.Minute), Remaining{Hours: 3, Minutes: 5}, "3h 5m"},
		{now + ns(5*time.Minute+59*time.Second), Remaining{Minutes: 5}, "5m"},
		{now + ns(30*time.Second), Remaining{}, "0m"},
		{now, Remaining{Ended: true}, "Ended"},
		{now - ns(time.Hour), Remaining{Ended: true}, "Ended"},
	}
	for _, c := range cases {
		got := TimeRemaining(c.end, now)
		assert.Equal(t, c.want, got)
		assert.Equal(t, c.text, got.String())
	}
}

func TestTimeRemainingMonotonic(t *testing.T) {
	start := Nanos(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	end := start + uint64(26*time.Hour)
	total := func(r Remaining) uint64 { return r.Days*24*60 + r.Hours*60 + r.Minutes }

	prev := total(TimeRemaining(end, start))
	for now := start; now <= end+uint64(time.Hour); now += uint64(7 * time.Minute) {
		cur := total(TimeRemaining(end, now))
		assert.LessOrEqual(t, cur, prev)
		prev = cur
	}
	assert.True(t, TimeRemaining(end, end).Ended)
}

func TestSuccessRate(t *testing.T) {
	r := ComputeSuccessRate(10, 4)
	assert.True(t, r.Applicable)
	assert.InDelta(t, 60.0, r.Percent, 1e-9)
	assert.Equal(t, "60.0%", r.String())

	assert.Equal(t, NotApplicable, ComputeSuccessRate(0, 0))
	assert.Equal(t, "N/A", ComputeSuccessRate(0, 0).String())
	assert.Equal(t, "0.0%", ComputeSuccessRate(3, 5).String())

	b, err := ComputeSuccessRate(0, 0).MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, "null", string(b))
	b, err = ComputeSuccessRate(4, 1).MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, "75", string(b))
}
