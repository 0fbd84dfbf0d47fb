package document

// LineID is a generational handle to a line in a document. The zero value
// refers to no line. A handle becomes stale once its line is removed, even
// if the slot is reused.
type LineID struct {
	index uint32
	gen   uint32
}

// NoLine is the handle that refers to no line.
var NoLine LineID

// Valid reports whether id could refer to a line.
func (id LineID) Valid() bool {
	return id.gen != 0
}

type slot struct {
	line       *Line
	prev, next LineID
	gen        uint32
}

// arena stores lines in a slice and links them into a sequence by handle.
type arena struct {
	slots []slot
	free  []uint32
	head  LineID
	tail  LineID
	count int
}

func (a *arena) get(id LineID) *Line {
	if !id.Valid() || int(id.index) >= len(a.slots) {
		return nil
	}
	s := &a.slots[id.index]
	if s.gen != id.gen || s.line == nil {
		return nil
	}
	return s.line
}

func (a *arena) alloc(l *Line) LineID {
	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		s := &a.slots[idx]
		s.line = l
		s.prev, s.next = NoLine, NoLine
		return LineID{index: idx, gen: s.gen}
	}
	a.slots = append(a.slots, slot{line: l, gen: 1})
	return LineID{index: uint32(len(a.slots) - 1), gen: 1}
}

// insertAfter links l after at. With at == NoLine, l becomes the head.
func (a *arena) insertAfter(at LineID, l *Line) LineID {
	id := a.alloc(l)
	s := &a.slots[id.index]

	if !at.Valid() {
		s.next = a.head
		if a.head.Valid() {
			a.slots[a.head.index].prev = id
		} else {
			a.tail = id
		}
		a.head = id
	} else {
		next := a.slots[at.index].next
		s.prev = at
		s.next = next
		a.slots[at.index].next = id
		if next.Valid() {
			a.slots[next.index].prev = id
		} else {
			a.tail = id
		}
	}

	a.count++
	return id
}

// insertBefore links l before at.
func (a *arena) insertBefore(at LineID, l *Line) LineID {
	return a.insertAfter(a.prev(at), l)
}

// remove unlinks id and invalidates every handle to it.
func (a *arena) remove(id LineID) *Line {
	l := a.get(id)
	if l == nil {
		return nil
	}
	s := &a.slots[id.index]

	if s.prev.Valid() {
		a.slots[s.prev.index].next = s.next
	} else {
		a.head = s.next
	}
	if s.next.Valid() {
		a.slots[s.next.index].prev = s.prev
	} else {
		a.tail = s.prev
	}

	s.line = nil
	s.prev, s.next = NoLine, NoLine
	s.gen++
	if s.gen == 0 {
		s.gen = 1
	}
	a.free = append(a.free, id.index)
	a.count--
	return l
}

func (a *arena) next(id LineID) LineID {
	if a.get(id) == nil {
		return NoLine
	}
	return a.slots[id.index].next
}

func (a *arena) prev(id LineID) LineID {
	if a.get(id) == nil {
		return NoLine
	}
	return a.slots[id.index].prev
}

// at walks to the n-th line from the head.
func (a *arena) at(n int) LineID {
	if n < 0 || n >= a.count {
		return NoLine
	}
	id := a.head
	for ; n > 0; n-- {
		id = a.slots[id.index].next
	}
	return id
}
