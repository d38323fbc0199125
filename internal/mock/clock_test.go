package mock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func TestFakeClock_AfterFuncFiresOnAdvance(t *testing.T) {
	c := NewFakeClock(epoch)
	fired := 0
	c.AfterFunc(time.Second, func() { fired++ })

	c.Advance(999 * time.Millisecond)
	assert.Equal(t, 0, fired)

	c.Advance(time.Millisecond)
	assert.Equal(t, 1, fired)
	assert.Equal(t, epoch.Add(time.Second), c.Now())
	assert.Zero(t, c.Pending())
}

func TestFakeClock_StopPreventsFiring(t *testing.T) {
	c := NewFakeClock(epoch)
	fired := false
	timer := c.AfterFunc(time.Second, func() { fired = true })

	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop())

	c.Advance(time.Hour)
	assert.False(t, fired)
}

func TestFakeClock_FiresInDeadlineOrder(t *testing.T) {
	c := NewFakeClock(epoch)
	var order []string
	var at []time.Time

	c.AfterFunc(300*time.Millisecond, func() { order = append(order, "late"); at = append(at, c.Now()) })
	c.AfterFunc(100*time.Millisecond, func() { order = append(order, "early"); at = append(at, c.Now()) })

	c.Advance(time.Second)

	require.Equal(t, []string{"early", "late"}, order)
	assert.Equal(t, epoch.Add(100*time.Millisecond), at[0])
	assert.Equal(t, epoch.Add(300*time.Millisecond), at[1])
}

func TestFakeClock_CallbackSchedulesWithinWindow(t *testing.T) {
	c := NewFakeClock(epoch)
	fired := 0
	c.AfterFunc(100*time.Millisecond, func() {
		fired++
		c.AfterFunc(100*time.Millisecond, func() { fired++ })
	})

	c.Advance(250 * time.Millisecond)
	assert.Equal(t, 2, fired)
}
