package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vecdraw/internal/geom"
)

func TestWindowLifecycle(t *testing.T) {
	var w Window
	assert.False(t, w.Anchored())
	assert.False(t, w.Complete())
	_, err := w.Rect()
	assert.ErrorIs(t, err, ErrWindowIncomplete)
	assert.Nil(t, w.PreviewOutline(geom.Pt(0, 0)))

	w.BeginPick(geom.Pt(0.5, -0.25))
	assert.True(t, w.Anchored())
	_, err = w.Rect()
	assert.ErrorIs(t, err, ErrWindowIncomplete)
	assert.Nil(t, w.Outline())

	rect, err := w.CompletePick(geom.Pt(-0.5, 0.75))
	require.NoError(t, err)
	assert.Equal(t, geom.Rect{LLx: -0.5, LLy: -0.25, URx: 0.5, URy: 0.75}, rect)
	assert.False(t, w.Anchored())
	assert.True(t, w.Complete())
	assert.Equal(t, []geom.Point{
		geom.Pt(0.5, -0.25), geom.Pt(-0.5, -0.25), geom.Pt(-0.5, 0.75), geom.Pt(0.5, 0.75),
	}, w.Outline())

	got, err := w.Rect()
	require.NoError(t, err)
	assert.Equal(t, rect, got)

	w.Cancel()
	assert.False(t, w.Complete())
	assert.Nil(t, w.Outline())
}

func TestWindowCompleteWithoutBegin(t *testing.T) {
	var w Window
	_, err := w.CompletePick(geom.Pt(1, 1))
	assert.ErrorIs(t, err, ErrNoAnchor)
}

func TestWindowBeginDiscardsPrevious(t *testing.T) {
	var w Window
	w.BeginPick(geom.Pt(0, 0))
	_, err := w.CompletePick(geom.Pt(1, 1))
	require.NoError(t, err)

	w.BeginPick(geom.Pt(-1, -1))
	assert.False(t, w.Complete())
	assert.Equal(t, []geom.Point{
		geom.Pt(-1, -1), geom.Pt(0, -1), geom.Pt(0, 0), geom.Pt(-1, 0),
	}, w.PreviewOutline(geom.Pt(0, 0)))
}

func TestWindowOutlineIsCopy(t *testing.T) {
	var w Window
	w.BeginPick(geom.Pt(0, 0))
	_, _ = w.CompletePick(geom.Pt(1, 1))
	o := w.Outline()
	o[0] = geom.Pt(5, 5)
	assert.Equal(t, geom.Pt(0, 0), w.Outline()[0])
}
