package fonts

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	events []Event
}

func (o *recordingObserver) OnFontEvent(e Event) {
	o.events = append(o.events, e)
}

type dropFace struct {
	drops int
}

func (f *dropFace) Drop() { f.drops++ }

func TestRegistry_Basic(t *testing.T) {
	reg := NewRegistry()

	h := reg.Create("face-a")
	require.NotZero(t, h)

	face, ok := reg.Get(h)
	require.True(t, ok)
	require.Equal(t, "face-a", face)

	require.True(t, reg.Release(h))
	require.Equal(t, 0, reg.Len())

	_, ok = reg.Get(h)
	require.False(t, ok)
}

func TestRegistry_DoubleReleaseIsReported(t *testing.T) {
	reg := NewRegistry()
	h := reg.Create("face")

	require.True(t, reg.Release(h))
	require.False(t, reg.Release(h), "second release of the same handle must report false")
	require.False(t, reg.Release(0), "handle 0 is never live")
	require.False(t, reg.Release(99), "unknown handles are never live")
}

func TestRegistry_HandleReuseAfterRelease(t *testing.T) {
	reg := NewRegistry()
	a := reg.Create("a")
	b := reg.Create("b")
	require.NotEqual(t, a, b)

	reg.Release(a)
	c := reg.Create("c")
	require.Equal(t, a, c, "freed handles are reused")

	face, ok := reg.Get(c)
	require.True(t, ok)
	require.Equal(t, "c", face)
	require.Equal(t, 2, reg.Len())
}

func TestRegistry_DropperRunsOnce(t *testing.T) {
	reg := NewRegistry()
	face := &dropFace{}
	h := reg.Create(face)

	reg.Release(h)
	reg.Release(h)
	require.Equal(t, 1, face.drops)
}

func TestRegistry_Observers(t *testing.T) {
	reg := NewRegistry()
	obs := &recordingObserver{}
	reg.Subscribe(obs)

	h := reg.Create("x")
	reg.Release(h)

	require.Len(t, obs.events, 2)
	require.Equal(t, EventCreated, obs.events[0].Type)
	require.Equal(t, EventReleased, obs.events[1].Type)
	require.Equal(t, h, obs.events[0].Handle)

	reg.Unsubscribe(obs)
	reg.Create("y")
	require.Len(t, obs.events, 2, "no events after unsubscribe")
}
