package document

// wrapsFor returns the number of extra segments a line of the given visual
// width needs at the given viewport width.
func wrapsFor(visualEnd, cols int) int {
	if visualEnd <= 0 {
		return 0
	}
	return (visualEnd - 1) / cols
}

// segmentOf maps a visual column to its wrap segment and the column inside
// that segment. A cursor at the end of an exactly full segment stays on it.
func segmentOf(vcol, visualEnd, cols int) (wrap, col int) {
	wrap, col = vcol/cols, vcol%cols
	if col == 0 && wrap > 0 && vcol == visualEnd {
		return wrap - 1, cols
	}
	return wrap, col
}

// rowOf returns the visual row of the cursor counted from the first
// segment of the top line.
func (d *Document) rowOf() int {
	row := 0
	for id := d.top; id.Valid() && id != d.cur; id = d.lines.next(id) {
		row += d.lines.get(id).wraps + 1
	}
	return row + d.CurrentLine().wrap
}

// settle recomputes the current line's wrap data and the cursor position
// from vcol, then scrolls the viewport to keep the cursor visible.
func (d *Document) settle() {
	l := d.CurrentLine()
	l.wraps = wrapsFor(l.visualEnd, d.cols)
	l.wrap, d.col = segmentOf(d.vcol, l.visualEnd, d.cols)
	d.scroll()
}

func (d *Document) scroll() {
	if d.curNum < d.topNum {
		d.log.Debug("scroll up from line %d to %d", d.topNum, d.curNum)
		d.top, d.topNum = d.cur, d.curNum
	}

	row := d.rowOf()
	for row >= d.rows && d.topNum < d.curNum {
		row -= d.lines.get(d.top).wraps + 1
		d.top = d.lines.next(d.top)
		d.topNum++
		d.log.Debug("scroll down to line %d", d.topNum)
	}

	d.skip = 0
	if row >= d.rows {
		d.skip = row - d.rows + 1
		row = d.rows - 1
	}
	d.row = row
}

// switchTo makes id, at index num, the current line. The cursor position
// inside the new line is left to the caller.
func (d *Document) switchTo(id LineID, num int) {
	if l := d.CurrentLine(); l != nil {
		l.wrap = 0
	}
	d.cur, d.curNum = id, num
}

// Resize records a new viewport size. Sizes below one are raised to one.
// Wrap data is recomputed by the next operation or by Relayout.
func (d *Document) Resize(rows, cols int) {
	rows = max(rows, 1)
	cols = max(cols, 1)
	if rows == d.rows && cols == d.cols {
		return
	}
	d.rows, d.cols = rows, cols
	d.layoutStale = true
}

// Relayout recomputes wrap data for a pending resize. Operations call it
// implicitly.
func (d *Document) Relayout() {
	if !d.layoutStale {
		return
	}
	d.log.Debug("relayout for %dx%d", d.rows, d.cols)
	for id := d.lines.head; id.Valid(); id = d.lines.next(id) {
		l := d.lines.get(id)
		l.wraps = wrapsFor(l.visualEnd, d.cols)
	}
	d.layoutStale = false
	d.settle()
	d.check()
}
