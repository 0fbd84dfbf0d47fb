package document

import (
	"bufio"
	"errors"
	"io"
	"unicode"
)

// InsertChar writes r at the cursor and moves past it. A '\n' behaves like
// Enter and a '\t' like Tab.
func (d *Document) InsertChar(r rune) error {
	switch r {
	case Terminator:
		return d.Enter()
	case '\t':
		return d.Tab()
	}
	return d.insert(r)
}

// Tab inserts a tab character.
func (d *Document) Tab() error {
	return d.insert('\t')
}

func (d *Document) insert(r rune) error {
	d.Relayout()
	defer d.check()

	l := d.CurrentLine()
	if err := l.buf.Insert(r); err != nil {
		return err
	}
	w := CharWidth(r, d.cfg.TabWidth)
	d.vcol += w
	l.visualEnd += w
	d.storedCol = 0
	d.settle()
	return nil
}

// InsertString inserts s rune by rune, stopping at the first error.
func (d *Document) InsertString(s string) error {
	for _, r := range s {
		if err := d.InsertChar(r); err != nil {
			return err
		}
	}
	return nil
}

// Enter breaks the line at the cursor. At the start of a line an empty
// line is inserted above; at the end an empty line is inserted below and
// the cursor moves onto it; anywhere else the line is split.
func (d *Document) Enter() error {
	d.Relayout()
	defer d.check()

	l := d.CurrentLine()
	switch {
	case l.Cursor() == 0:
		nl, err := d.newLine()
		if err != nil {
			return err
		}
		id := d.lines.insertBefore(d.cur, nl)
		if d.top == d.cur {
			d.top = id
		}
		d.curNum++
	case l.Cursor() == l.Len():
		nl, err := d.newLine()
		if err != nil {
			return err
		}
		id := d.lines.insertAfter(d.cur, nl)
		d.switchTo(id, d.curNum+1)
		d.vcol = 0
	default:
		if err := d.splitLine(); err != nil {
			return err
		}
	}

	d.storedCol = 0
	d.settle()
	return nil
}

// splitLine moves everything right of the cursor onto a new line after the
// current one and moves the cursor to the start of that line.
func (d *Document) splitLine() error {
	src := d.CurrentLine()
	start := src.Cursor()
	n := src.Len() - start

	nl, err := d.newLine()
	if err != nil {
		return err
	}
	if err := nl.buf.Reserve(n); err != nil {
		return err
	}

	width, tabs := 0, 0
	for i := start; i < start+n; i++ {
		r, _ := src.buf.At(i)
		if err := nl.buf.Insert(r); err != nil {
			return err
		}
		if r == '\t' {
			tabs++
		}
		width += CharWidth(r, d.cfg.TabWidth)
	}
	nl.cursorToStart()

	src.buf.MoveCursor(n)
	for range n {
		src.buf.Delete()
	}
	src.visualEnd -= width
	nl.visualEnd = width
	src.wraps = wrapsFor(src.visualEnd, d.cols)

	id := d.lines.insertAfter(d.cur, nl)
	d.switchTo(id, d.curNum+1)
	d.vcol = 0

	d.log.WithFields(map[string]any{
		"line":  d.curNum - 1,
		"moved": n,
		"tabs":  tabs,
	}).Debug("split line")
	return nil
}

// Backspace deletes the rune left of the cursor. At the start of a line
// the line is merged into the previous one.
func (d *Document) Backspace() error {
	d.Relayout()
	defer d.check()

	l := d.CurrentLine()
	if l.Cursor() == 0 {
		if !d.lines.prev(d.cur).Valid() {
			return nil
		}
		return d.mergeLineUp()
	}

	r, _ := l.buf.Delete()
	w := CharWidth(r, d.cfg.TabWidth)
	d.vcol -= w
	l.visualEnd -= w
	d.storedCol = 0
	d.settle()
	return nil
}

// DeleteForward deletes the rune under the cursor. At the end of a line the
// next line is joined onto the current one.
func (d *Document) DeleteForward() error {
	d.Relayout()

	if d.stepRight() {
		return d.Backspace()
	}
	next := d.lines.next(d.cur)
	if !next.Valid() {
		return nil
	}
	defer d.check()

	here, num, vcol := d.cur, d.curNum, d.vcol
	d.switchTo(next, num+1)
	d.CurrentLine().cursorToStart()
	d.vcol = 0
	if err := d.mergeLineUp(); err != nil {
		d.switchTo(here, num)
		d.vcol = vcol
		d.settle()
		return err
	}
	return nil
}

// mergeLineUp appends the current line to the previous one, removes it and
// leaves the cursor at the join point.
func (d *Document) mergeLineUp() error {
	prevID := d.lines.prev(d.cur)
	prev := d.lines.get(prevID)
	cur := d.CurrentLine()

	joinCol := prev.visualEnd
	runes := cur.Runes()

	prev.cursorToEnd()
	if err := prev.buf.Reserve(len(runes)); err != nil {
		return err
	}

	width, tabs := 0, 0
	for _, r := range runes {
		if err := prev.buf.Insert(r); err != nil {
			return err
		}
		if r == '\t' {
			tabs++
		}
		width += CharWidth(r, d.cfg.TabWidth)
	}
	prev.visualEnd += width
	prev.wraps = wrapsFor(prev.visualEnd, d.cols)

	if d.top == d.cur {
		d.top = prevID
		d.topNum--
	}
	mergedNum := d.curNum
	d.switchTo(prevID, d.curNum-1)
	d.lines.remove(d.lines.next(prevID)).destroy()

	d.seek(joinCol, 0)
	d.storedCol = 0
	d.settle()

	d.log.WithFields(map[string]any{
		"line":  mergedNum,
		"moved": len(runes),
		"tabs":  tabs,
	}).Debug("merge line up")
	return nil
}

// ReadFrom inserts UTF-8 text from r at the cursor, then rewinds to the
// start of the document. Line feeds become Enter and tabs become Tab;
// carriage returns and other control characters are dropped. Invalid UTF-8
// is inserted as U+FFFD.
func (d *Document) ReadFrom(r io.Reader) (int64, error) {
	br := bufio.NewReader(r)
	var n int64
	for {
		c, size, err := br.ReadRune()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return n, err
		}
		n += int64(size)

		switch {
		case c == Terminator:
			err = d.Enter()
		case c == '\t':
			err = d.Tab()
		case unicode.IsControl(c):
			continue
		default:
			err = d.insert(c)
		}
		if err != nil {
			return n, err
		}
	}
	d.Rewind()
	return n, nil
}
