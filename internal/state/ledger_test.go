package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stroke(x float64) Stroke {
	s := NewStroke(Point{X: x, Y: x, Width: 2, Color: red})
	s.Add(Point{X: x + 1, Y: x + 1, Width: 2, Color: red})
	return *s
}

func sticker(glyph string) Sticker {
	return NewSticker(5, 5, glyph, 1, blue)
}

func TestLedgerInterleavedUndo(t *testing.T) {
	t.Parallel()

	l := NewLedger(nil)
	a, b, c := stroke(1), sticker("B"), stroke(3)
	l.Commit(a)
	l.Commit(b)
	l.Commit(c)

	require.True(t, l.Undo())
	require.True(t, l.Undo())

	assert.Equal(t, []Stroke{a}, l.Strokes())
	assert.Empty(t, l.Stickers())
	assert.Equal(t, []Kind{KindStroke}, l.UndoLog())
	assert.Equal(t, []Kind{KindStroke, KindSticker}, l.RedoLog())

	require.True(t, l.Redo())
	assert.Equal(t, []Sticker{b}, l.Stickers())
	assert.Equal(t, []Stroke{a}, l.Strokes())
}

func TestLedgerUndoRedoRoundTrip(t *testing.T) {
	t.Parallel()

	l := NewLedger(nil)
	l.Commit(sticker("x"))
	l.Commit(stroke(1))
	l.Commit(stroke(2))
	l.Commit(sticker("y"))
	l.Commit(stroke(3))
	l.Commit(sticker("z"))

	strokes, stickers, log := l.Strokes(), l.Stickers(), l.UndoLog()
	n := l.Len()

	for i := 0; i < n; i++ {
		require.True(t, l.Undo())
	}
	assert.Empty(t, l.Strokes())
	assert.Empty(t, l.Stickers())
	assert.False(t, l.CanUndo())

	for i := 0; i < n; i++ {
		require.True(t, l.Redo())
	}
	assert.Equal(t, strokes, l.Strokes())
	assert.Equal(t, stickers, l.Stickers())
	assert.Equal(t, log, l.UndoLog())
	assert.Empty(t, l.RedoLog())
}

func TestLedgerCommitTruncatesRedo(t *testing.T) {
	t.Parallel()

	l := NewLedger(nil)
	a := stroke(1)
	l.Commit(a)
	l.Commit(sticker("s"))
	require.True(t, l.Undo())
	require.True(t, l.Undo())
	require.True(t, l.CanRedo())

	d := stroke(4)
	l.Commit(d)

	assert.False(t, l.CanRedo())
	assert.Empty(t, l.RedoLog())
	assert.False(t, l.Redo())
	assert.Equal(t, []Stroke{d}, l.Strokes())
	assert.Empty(t, l.Stickers())
}

func TestLedgerEmptyHistoryIsNoop(t *testing.T) {
	t.Parallel()

	calls := 0
	l := NewLedger(func() { calls++ })

	assert.False(t, l.Undo())
	assert.False(t, l.Redo())
	assert.Zero(t, calls)
	assert.Equal(t, Scene{}, l.Scene())
	assert.Empty(t, l.UndoLog())
	assert.Empty(t, l.RedoLog())
}

func TestLedgerClear(t *testing.T) {
	t.Parallel()

	l := NewLedger(nil)
	l.Commit(stroke(1))
	l.Commit(sticker("a"))
	l.Commit(stroke(2))
	l.Undo()

	l.Clear()

	assert.True(t, l.Scene().Empty())
	assert.Empty(t, l.UndoLog())
	assert.Empty(t, l.RedoLog())
	assert.False(t, l.Undo())
	assert.False(t, l.Redo())
}

func TestLedgerNotifiesOnChange(t *testing.T) {
	t.Parallel()

	calls := 0
	l := NewLedger(func() { calls++ })

	l.Commit(stroke(1))
	l.Undo()
	l.Redo()
	l.Clear()
	assert.Equal(t, 4, calls)
}

func TestLedgerCommitCopiesStrokePoints(t *testing.T) {
	t.Parallel()

	l := NewLedger(nil)
	s := NewStroke(Point{X: 1, Y: 1, Width: 1, Color: red})
	l.Commit(s)

	s.Add(Point{X: 2, Y: 2})
	s.Points[0].X = 99

	got := l.Strokes()
	require.Len(t, got, 1)
	assert.Len(t, got[0].Points, 1)
	assert.Equal(t, 1.0, got[0].Points[0].X)
}

func TestLedgerIgnoresNilEntries(t *testing.T) {
	t.Parallel()

	l := NewLedger(nil)
	var s *Stroke
	l.Commit(s)
	assert.Zero(t, l.Len())
}
