package document

// stepRight moves the cursor over one rune of the current line. It fails
// at the terminator.
func (d *Document) stepRight() bool {
	l := d.CurrentLine()
	r, ok := l.buf.At(l.buf.Cursor())
	if !ok || r == Terminator {
		return false
	}
	l.buf.MoveCursor(1)
	d.vcol += CharWidth(r, d.cfg.TabWidth)
	return true
}

// stepLeft moves the cursor back over one rune of the current line.
func (d *Document) stepLeft() bool {
	l := d.CurrentLine()
	c := l.buf.Cursor()
	if c == 0 {
		return false
	}
	r, _ := l.buf.At(c - 1)
	l.buf.MoveCursor(-1)
	d.vcol -= CharWidth(r, d.cfg.TabWidth)
	return true
}

// seek walks right from the start of the current line until the visual
// column reaches target. A rune that would carry the cursor past target is
// not crossed unless that would leave the cursor before floor.
func (d *Document) seek(target, floor int) {
	d.CurrentLine().cursorToStart()
	d.vcol = 0
	for d.vcol < target && d.stepRight() {
	}
	if d.vcol > target {
		d.stepLeft()
		if d.vcol < floor {
			d.stepRight()
		}
	}
}

// MoveLeft moves one rune left, onto the end of the previous line when at
// the start of a line.
func (d *Document) MoveLeft() bool {
	d.Relayout()
	defer d.check()

	if !d.stepLeft() {
		prev := d.lines.prev(d.cur)
		if !prev.Valid() {
			return false
		}
		d.switchTo(prev, d.curNum-1)
		l := d.CurrentLine()
		l.cursorToEnd()
		d.vcol = l.visualEnd
	}
	d.storedCol = 0
	d.settle()
	return true
}

// MoveRight moves one rune right, onto the start of the next line when at
// the end of a line.
func (d *Document) MoveRight() bool {
	d.Relayout()
	defer d.check()

	if !d.stepRight() {
		next := d.lines.next(d.cur)
		if !next.Valid() {
			return false
		}
		d.switchTo(next, d.curNum+1)
		d.CurrentLine().cursorToStart()
		d.vcol = 0
	}
	d.storedCol = 0
	d.settle()
	return true
}

// MoveHome moves to the start of the line.
func (d *Document) MoveHome() bool {
	d.Relayout()
	defer d.check()

	l := d.CurrentLine()
	if l.Cursor() == 0 {
		return false
	}
	l.cursorToStart()
	d.vcol = 0
	d.storedCol = 0
	d.settle()
	return true
}

// MoveEnd moves to the end of the line.
func (d *Document) MoveEnd() bool {
	d.Relayout()
	defer d.check()

	l := d.CurrentLine()
	if l.Cursor() == l.Len() {
		return false
	}
	l.cursorToEnd()
	d.vcol = l.visualEnd
	d.storedCol = 0
	d.settle()
	return true
}

// goalCol returns the column a vertical move aims for: the stored column
// when the cursor was clamped to a line end by an earlier vertical move,
// otherwise the current column.
func (d *Document) goalCol() int {
	if d.storedCol > d.col && d.vcol == d.CurrentLine().visualEnd {
		return d.storedCol
	}
	return d.col
}

// moveToSegment places the cursor on segment seg of the current line as
// close to goal as the segment allows. A clamped goal is remembered in
// storedCol.
func (d *Document) moveToSegment(seg, goal int) {
	l := d.CurrentLine()
	base := seg * d.cols

	limit := d.cols - 1
	if seg == wrapsFor(l.visualEnd, d.cols) {
		limit = l.visualEnd - base
	}

	target := goal
	if goal > limit {
		target = limit
		d.storedCol = goal
	}
	d.seek(base+target, base)
}

// MoveUp moves to the previous wrap segment or line.
func (d *Document) MoveUp() bool {
	d.Relayout()
	defer d.check()

	goal := d.goalCol()
	l := d.CurrentLine()
	if l.wrap > 0 {
		d.moveToSegment(l.wrap-1, goal)
	} else {
		prev := d.lines.prev(d.cur)
		if !prev.Valid() {
			return false
		}
		d.switchTo(prev, d.curNum-1)
		d.moveToSegment(d.CurrentLine().wraps, goal)
	}
	d.settle()
	return true
}

// MoveDown moves to the next wrap segment or line.
func (d *Document) MoveDown() bool {
	d.Relayout()
	defer d.check()

	goal := d.goalCol()
	l := d.CurrentLine()
	if l.wrap < l.wraps {
		d.moveToSegment(l.wrap+1, goal)
	} else {
		next := d.lines.next(d.cur)
		if !next.Valid() {
			return false
		}
		d.switchTo(next, d.curNum+1)
		d.moveToSegment(0, goal)
	}
	d.settle()
	return true
}

// Rewind moves the cursor and the viewport to the start of the document.
func (d *Document) Rewind() {
	d.Relayout()
	defer d.check()

	d.switchTo(d.lines.head, 0)
	d.CurrentLine().cursorToStart()
	d.vcol = 0
	d.storedCol = 0
	d.top, d.topNum = d.cur, 0
	d.settle()
}
