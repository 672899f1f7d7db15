package lightbox

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewStartsClosedAtDefaultZoom(t *testing.T) {
	l := New(4)
	require.Equal(t, 4, l.Count)
	require.Equal(t, 0, l.Index)
	require.Equal(t, ZoomDefault, l.Zoom)
	require.False(t, l.Open)
}

func TestOpenAtBounds(t *testing.T) {
	l := New(3)
	require.NoError(t, l.OpenAt(2))
	require.True(t, l.Open)
	require.Equal(t, 2, l.Index)

	require.ErrorIs(t, l.OpenAt(3), ErrIndexOutOfRange)
	require.ErrorIs(t, l.OpenAt(-1), ErrIndexOutOfRange)

	empty := New(0)
	require.ErrorIs(t, empty.OpenAt(0), ErrNoImages)
}

func TestNavigationWrapsAround(t *testing.T) {
	l := New(3)
	require.NoError(t, l.OpenAt(2))

	require.NoError(t, l.Next())
	require.Equal(t, 0, l.Index)

	require.NoError(t, l.Prev())
	require.Equal(t, 2, l.Index)
}

func TestSingleImageNavigationStaysPut(t *testing.T) {
	l := New(1)
	require.NoError(t, l.OpenAt(0))

	require.NoError(t, l.Next())
	require.Equal(t, 0, l.Index)
	require.NoError(t, l.Prev())
	require.Equal(t, 0, l.Index)
}

func TestNavigationResetsZoom(t *testing.T) {
	l := New(2)
	require.NoError(t, l.OpenAt(0))

	l.ZoomIn()
	l.ZoomIn()
	require.InDelta(t, 1.4, l.Zoom, 1e-9)

	require.NoError(t, l.Next())
	require.Equal(t, ZoomDefault, l.Zoom)

	l.ZoomOut()
	require.NoError(t, l.Prev())
	require.Equal(t, ZoomDefault, l.Zoom)
}

func TestZoomStepsStayOnTenths(t *testing.T) {
	l := New(1)
	require.NoError(t, l.OpenAt(0))

	// 1.0 -> 1.2 -> 1.4 -> ... repeated steps never drift off the
	// one-decimal grid.
	expected := []float64{1.2, 1.4, 1.6, 1.8, 2.0, 2.2, 2.4, 2.6, 2.8, 3.0}
	for _, want := range expected {
		l.ZoomIn()
		require.Equal(t, want, l.Zoom)
	}
}

func TestZoomClampsAtBounds(t *testing.T) {
	l := New(1)
	require.NoError(t, l.OpenAt(0))

	for i := 0; i < 20; i++ {
		l.ZoomIn()
	}
	require.Equal(t, ZoomMax, l.Zoom)

	for i := 0; i < 30; i++ {
		l.ZoomOut()
	}
	require.Equal(t, ZoomMin, l.Zoom)
}

func TestResetZoom(t *testing.T) {
	l := New(1)
	require.NoError(t, l.OpenAt(0))

	l.ZoomIn()
	l.ZoomIn()
	l.ResetZoom()
	require.Equal(t, ZoomDefault, l.Zoom)
}

func TestReopenResetsPosition(t *testing.T) {
	l := New(3)
	require.NoError(t, l.OpenAt(1))
	l.ZoomIn()
	l.Close()
	require.False(t, l.Open)

	require.NoError(t, l.OpenAt(0))
	require.Equal(t, 0, l.Index)
	require.Equal(t, ZoomDefault, l.Zoom)
}
