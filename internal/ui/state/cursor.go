package state

// MoveCursorUp moves to the previous command, wrapping to the last one.
func (l *Level) MoveCursorUp() bool {
	return l.step(-1)
}

// MoveCursorDown moves to the next command, wrapping to the first one.
func (l *Level) MoveCursorDown() bool {
	return l.step(1)
}

func (l *Level) step(dir int) bool {
	n := len(l.Rows)
	if CommandCount(l.Rows) == 0 {
		l.Cursor = -1
		return false
	}
	old := l.Cursor
	i := l.Cursor
	if i < 0 {
		i = -dir
		if dir < 0 {
			i = n
		}
	}
	for {
		i += dir
		if i < 0 {
			i = n - 1
		}
		if i >= n {
			i = 0
		}
		if !l.Rows[i].Header {
			break
		}
	}
	l.Cursor = i
	return old != l.Cursor
}

// MoveCursorHome moves the cursor to the first command.
func (l *Level) MoveCursorHome() bool {
	old := l.Cursor
	l.Cursor = firstCommand(l.Rows)
	return l.Cursor >= 0 && old != l.Cursor
}

// MoveCursorEnd moves the cursor to the last command.
func (l *Level) MoveCursorEnd() bool {
	old := l.Cursor
	l.Cursor = lastCommand(l.Rows)
	return l.Cursor >= 0 && old != l.Cursor
}

// MoveCursorPageUp moves the cursor up by the given page size.
func (l *Level) MoveCursorPageUp(maxVisible int) bool {
	return l.moveCursorBy(-l.pageSize(maxVisible))
}

// MoveCursorPageDown moves the cursor down by the given page size.
func (l *Level) MoveCursorPageDown(maxVisible int) bool {
	return l.moveCursorBy(l.pageSize(maxVisible))
}

func (l *Level) moveCursorBy(delta int) bool {
	if CommandCount(l.Rows) == 0 {
		l.Cursor = -1
		return false
	}
	old := l.Cursor
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	l.Cursor += delta
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= len(l.Rows) {
		l.Cursor = len(l.Rows) - 1
	}
	if l.Rows[l.Cursor].Header {
		if delta < 0 {
			if prev := previousCommand(l.Rows, l.Cursor); prev >= 0 {
				l.Cursor = prev
			} else {
				l.Cursor = firstCommand(l.Rows)
			}
		} else {
			l.Cursor = nearestCommand(l.Rows, l.Cursor)
		}
	}
	return l.Cursor != old
}

func (l *Level) pageSize(maxVisible int) int {
	total := len(l.Rows)
	if total == 0 {
		return 0
	}
	size := maxVisible
	if size <= 0 || size > total {
		size = total
	}
	if size < 1 {
		size = 1
	}
	return size
}

// EnsureCursorVisible adjusts the viewport offset so the cursor stays visible.
// The header of the cursor's section is kept in view when it fits.
func (l *Level) EnsureCursorVisible(maxVisible int) {
	if len(l.Rows) == 0 {
		l.Cursor = -1
		l.ViewportOffset = 0
		return
	}
	if l.Cursor >= len(l.Rows) {
		l.Cursor = len(l.Rows) - 1
	}
	if l.Cursor < 0 || l.Rows[l.Cursor].Header {
		l.Cursor = nearestCommand(l.Rows, l.Cursor)
	}
	if maxVisible <= 0 {
		l.ViewportOffset = 0
		return
	}
	maxOffset := len(l.Rows) - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if l.ViewportOffset > maxOffset {
		l.ViewportOffset = maxOffset
	}
	if l.ViewportOffset < 0 {
		l.ViewportOffset = 0
	}
	if l.Cursor < 0 {
		return
	}
	top := l.Cursor
	if top > 0 && l.Rows[top-1].Header && maxVisible > 1 {
		top--
	}
	if top < l.ViewportOffset {
		l.ViewportOffset = top
	}
	upper := l.ViewportOffset + maxVisible - 1
	if l.Cursor > upper {
		l.ViewportOffset = l.Cursor - maxVisible + 1
		if l.ViewportOffset < 0 {
			l.ViewportOffset = 0
		}
		if l.ViewportOffset > maxOffset {
			l.ViewportOffset = maxOffset
		}
	}
}

func firstCommand(rows []Row) int {
	for i, r := range rows {
		if !r.Header {
			return i
		}
	}
	return -1
}

func lastCommand(rows []Row) int {
	for i := len(rows) - 1; i >= 0; i-- {
		if !rows[i].Header {
			return i
		}
	}
	return -1
}

func previousCommand(rows []Row, from int) int {
	for i := from - 1; i >= 0; i-- {
		if !rows[i].Header {
			return i
		}
	}
	return -1
}

// nearestCommand returns the first command at or after from, falling back to
// the last command before it.
func nearestCommand(rows []Row, from int) int {
	if from < 0 {
		from = 0
	}
	if from > len(rows) {
		from = len(rows)
	}
	for i := from; i < len(rows); i++ {
		if !rows[i].Header {
			return i
		}
	}
	return previousCommand(rows, from)
}
