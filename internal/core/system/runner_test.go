package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type recorder struct {
	name  string
	phase Phase
	log   *[]string
}

func (r recorder) Phase() Phase { return r.phase }
func (r recorder) Update(time.Duration) {
	*r.log = append(*r.log, r.name)
}

func TestRunner(t *testing.T) {
	t.Run("Phase order then registration order", func(t *testing.T) {
		var log []string
		r := NewRunner()
		r.Register(recorder{"cleanup", PhaseCleanup, &log})
		r.Register(recorder{"update-a", PhaseUpdate, &log})
		r.Register(recorder{"input", PhaseInput, &log})
		r.Register(recorder{"update-b", PhaseUpdate, &log})
		r.Register(recorder{"post", PhasePostUpdate, &log})

		r.Tick(time.Millisecond)
		require.Equal(t, []string{"input", "update-a", "update-b", "post", "cleanup"}, log)
		require.Equal(t, uint64(1), r.Ticks())
		require.Equal(t, 5, r.Len())
	})

	t.Run("TickPhase", func(t *testing.T) {
		var log []string
		r := NewRunner()
		r.Register(recorder{"a", PhaseInput, &log})
		r.Register(recorder{"b", PhaseUpdate, &log})
		r.TickPhase(PhaseUpdate, time.Millisecond)
		require.Equal(t, []string{"b"}, log)
		require.Zero(t, r.Ticks())
	})

	t.Run("RunIf gates updates", func(t *testing.T) {
		var log []string
		on := false
		r := NewRunner()
		r.Register(RunIf(recorder{"gated", PhaseUpdate, &log}, func() bool { return on }))

		r.Tick(time.Millisecond)
		require.Empty(t, log)
		on = true
		r.Tick(time.Millisecond)
		require.Equal(t, []string{"gated"}, log)
	})
}

func TestPhaseString(t *testing.T) {
	require.Equal(t, "post_update", PhasePostUpdate.String())
	require.Equal(t, "unknown", Phase(42).String())
}
