package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRepeating(t *testing.T) {
	t.Run("Finishes after accumulated ticks", func(t *testing.T) {
		tm := New(2500*time.Millisecond, Repeating)
		for i := 0; i < 24; i++ {
			tm.Tick(100 * time.Millisecond)
			require.False(t, tm.JustFinished(), "tick %d", i)
		}
		tm.Tick(100 * time.Millisecond)
		require.True(t, tm.JustFinished())
		require.Equal(t, 1, tm.TimesFinishedThisTick())
		require.Zero(t, tm.Elapsed())

		tm.Tick(100 * time.Millisecond)
		require.False(t, tm.JustFinished())
	})

	t.Run("Counts multiple periods in one tick", func(t *testing.T) {
		tm := New(time.Second, Repeating)
		tm.Tick(3500 * time.Millisecond)
		require.Equal(t, 3, tm.TimesFinishedThisTick())
		require.Equal(t, 500*time.Millisecond, tm.Elapsed())
		require.Equal(t, 500*time.Millisecond, tm.Remaining())
	})

	t.Run("FromSeconds", func(t *testing.T) {
		tm := FromSeconds(0.2, Repeating)
		require.Equal(t, 200*time.Millisecond, tm.Duration())
	})
}

func TestOnce(t *testing.T) {
	tm := New(time.Second, Once)
	tm.Tick(1500 * time.Millisecond)
	require.True(t, tm.JustFinished())
	require.True(t, tm.Finished())
	require.Equal(t, time.Second, tm.Elapsed())

	tm.Tick(time.Second)
	require.False(t, tm.JustFinished())
	require.True(t, tm.Finished())

	tm.Reset()
	require.False(t, tm.Finished())
	require.Equal(t, time.Second, tm.Remaining())
}

func TestZeroDuration(t *testing.T) {
	tm := New(0, Once)
	tm.Tick(0)
	require.True(t, tm.JustFinished())
	tm.Tick(0)
	require.True(t, tm.JustFinished())
}
