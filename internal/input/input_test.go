package input

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseKey(t *testing.T) {
	for name, want := range map[string]Key{
		"w":          KeyW,
		"W":          KeyW,
		" space ":    Space,
		"ArrowLeft":  ArrowLeft,
		"escape":     Escape,
		"esc":        Escape,
		"control":    ControlLeft,
		"ShiftLeft":  ShiftLeft,
		"arrowright": ArrowRight,
	} {
		k, err := ParseKey(name)
		require.NoError(t, err, name)
		require.Equal(t, want, k, name)
	}

	_, err := ParseKey("f13")
	require.Error(t, err)
	_, err = ParseKey("unknown")
	require.Error(t, err)
}

func TestParseKeys(t *testing.T) {
	keys, err := ParseKeys("w  space\tleft")
	require.NoError(t, err)
	require.Equal(t, []Key{KeyW, Space, ArrowLeft}, keys)

	keys, err = ParseKeys("")
	require.NoError(t, err)
	require.Empty(t, keys)

	_, err = ParseKeys("w nope")
	require.Error(t, err)
}

func TestTracker(t *testing.T) {
	tr := NewTracker()

	s := tr.Capture([]Key{Space})
	require.True(t, s.Pressed(Space))
	require.True(t, s.JustPressed(Space))

	s = tr.Capture([]Key{Space, KeyW})
	require.True(t, s.Pressed(Space))
	require.False(t, s.JustPressed(Space))
	require.True(t, s.JustPressed(KeyW))

	s = tr.Capture(nil)
	require.False(t, s.Pressed(Space))
	require.False(t, s.AnyPressed([]Key{Space, KeyW}))

	s = tr.Capture([]Key{Space, KeyUnknown, Key(200)})
	require.True(t, s.JustPressed(Space))
	require.False(t, s.Pressed(KeyUnknown))
	require.False(t, s.Pressed(Key(200)))
	require.Same(t, s, tr.Snapshot())
}

func TestBindings(t *testing.T) {
	b := DefaultBindings()
	require.NoError(t, b.Validate())

	tr := NewTracker()
	s := tr.Capture([]Key{ArrowUp, Escape})
	require.True(t, b.Held(s, Thrust))
	require.True(t, b.Triggered(s, Pause))
	require.False(t, b.Held(s, Fire))

	s = tr.Capture([]Key{ArrowUp, Escape})
	require.True(t, b.Held(s, Thrust))
	require.False(t, b.Triggered(s, Pause))

	delete(b, Shield)
	require.Error(t, b.Validate())
}
