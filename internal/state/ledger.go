package state

// Ledger is the committed drawing history. Strokes and stickers live in
// separate lists; the undo and redo logs record which list each step
// touched, so mixed sequences unwind in true chronological order.
//
// A Ledger is owned by the UI goroutine and is not safe for concurrent use.
type Ledger struct {
	strokes      []Stroke
	stickers     []Sticker
	redoStrokes  []Stroke
	redoStickers []Sticker

	undoLog []Kind
	redoLog []Kind

	onChange func()
}

// NewLedger returns an empty Ledger. onChange, if non-nil, is called
// synchronously after every mutation.
func NewLedger(onChange func()) *Ledger {
	return &Ledger{onChange: onChange}
}

// SetOnChange replaces the change notifier.
func (l *Ledger) SetOnChange(fn func()) {
	l.onChange = fn
}

func (l *Ledger) changed() {
	if l.onChange != nil {
		l.onChange()
	}
}

// Commit appends e to the list of its kind and truncates any redo history.
func (l *Ledger) Commit(e Entry) {
	switch v := e.(type) {
	case Stroke:
		l.strokes = append(l.strokes, v.clone())
	case *Stroke:
		if v == nil {
			return
		}
		l.strokes = append(l.strokes, v.clone())
	case Sticker:
		l.stickers = append(l.stickers, v)
	case *Sticker:
		if v == nil {
			return
		}
		l.stickers = append(l.stickers, *v)
	default:
		return
	}
	l.undoLog = append(l.undoLog, e.Kind())

	l.redoStrokes = nil
	l.redoStickers = nil
	l.redoLog = nil
	l.changed()
}

// Undo moves the most recent commit onto the redo side.
// It reports false, without notifying, when there is nothing to undo.
func (l *Ledger) Undo() bool {
	n := len(l.undoLog)
	if n == 0 {
		return false
	}
	kind := l.undoLog[n-1]
	l.undoLog = l.undoLog[:n-1]

	switch kind {
	case KindStroke:
		last := len(l.strokes) - 1
		l.redoStrokes = append(l.redoStrokes, l.strokes[last])
		l.strokes = l.strokes[:last]
	case KindSticker:
		last := len(l.stickers) - 1
		l.redoStickers = append(l.redoStickers, l.stickers[last])
		l.stickers = l.stickers[:last]
	}
	l.redoLog = append(l.redoLog, kind)
	l.changed()
	return true
}

// Redo restores the most recently undone commit.
// It reports false, without notifying, when there is nothing to redo.
func (l *Ledger) Redo() bool {
	n := len(l.redoLog)
	if n == 0 {
		return false
	}
	kind := l.redoLog[n-1]
	l.redoLog = l.redoLog[:n-1]

	switch kind {
	case KindStroke:
		last := len(l.redoStrokes) - 1
		l.strokes = append(l.strokes, l.redoStrokes[last])
		l.redoStrokes = l.redoStrokes[:last]
	case KindSticker:
		last := len(l.redoStickers) - 1
		l.stickers = append(l.stickers, l.redoStickers[last])
		l.redoStickers = l.redoStickers[:last]
	}
	l.undoLog = append(l.undoLog, kind)
	l.changed()
	return true
}

// Clear drops all committed and undone entries.
func (l *Ledger) Clear() {
	l.strokes = nil
	l.stickers = nil
	l.redoStrokes = nil
	l.redoStickers = nil
	l.undoLog = nil
	l.redoLog = nil
	l.changed()
}

// CanUndo reports whether Undo would change anything.
func (l *Ledger) CanUndo() bool { return len(l.undoLog) > 0 }

// CanRedo reports whether Redo would change anything.
func (l *Ledger) CanRedo() bool { return len(l.redoLog) > 0 }

// Len returns the number of live committed entries.
func (l *Ledger) Len() int { return len(l.undoLog) }

// Strokes returns the live strokes in commit order.
func (l *Ledger) Strokes() []Stroke {
	return append([]Stroke(nil), l.strokes...)
}

// Stickers returns the live stickers in commit order.
func (l *Ledger) Stickers() []Sticker {
	return append([]Sticker(nil), l.stickers...)
}

// UndoLog returns the undo order log, oldest first.
func (l *Ledger) UndoLog() []Kind {
	return append([]Kind(nil), l.undoLog...)
}

// RedoLog returns the redo order log in push order.
func (l *Ledger) RedoLog() []Kind {
	return append([]Kind(nil), l.redoLog...)
}

// Scene snapshots the live committed entries.
func (l *Ledger) Scene() Scene {
	return Scene{
		Strokes:  l.Strokes(),
		Stickers: l.Stickers(),
	}
}
