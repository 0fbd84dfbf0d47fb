package engine

// CommandKind identifies an editing command.
type CommandKind uint8

const (
	// CmdInsert inserts Command.Rune at the cursor.
	CmdInsert CommandKind = iota
	// CmdEnter breaks the line at the cursor.
	CmdEnter
	// CmdTab inserts a tab.
	CmdTab
	// CmdBackspace deletes left of the cursor.
	CmdBackspace
	// CmdDelete deletes under the cursor.
	CmdDelete
	// CmdMove moves the cursor in Command.Dir.
	CmdMove
	// CmdResize changes the viewport to Command.Rows by Command.Cols.
	CmdResize
)

var commandNames = [...]string{
	CmdInsert:    "insert",
	CmdEnter:     "enter",
	CmdTab:       "tab",
	CmdBackspace: "backspace",
	CmdDelete:    "delete",
	CmdMove:      "move",
	CmdResize:    "resize",
}

// String returns the string representation of the kind.
func (k CommandKind) String() string {
	if int(k) < len(commandNames) {
		return commandNames[k]
	}
	return "unknown"
}

// IsEdit reports whether the command can change the text.
func (k CommandKind) IsEdit() bool {
	switch k {
	case CmdInsert, CmdEnter, CmdTab, CmdBackspace, CmdDelete:
		return true
	}
	return false
}

// Direction is a cursor movement direction.
type Direction uint8

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
	DirHome
	DirEnd
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirHome:
		return "home"
	case DirEnd:
		return "end"
	default:
		return "unknown"
	}
}

// Command is one discrete editing command.
type Command struct {
	Kind CommandKind
	Rune rune
	Dir  Direction
	Rows int
	Cols int
}

// Insert returns a command that inserts r.
func Insert(r rune) Command { return Command{Kind: CmdInsert, Rune: r} }

// Enter returns a line-break command.
func Enter() Command { return Command{Kind: CmdEnter} }

// Tab returns a tab command.
func Tab() Command { return Command{Kind: CmdTab} }

// Backspace returns a backspace command.
func Backspace() Command { return Command{Kind: CmdBackspace} }

// Delete returns a forward-delete command.
func Delete() Command { return Command{Kind: CmdDelete} }

// Move returns a cursor movement command.
func Move(dir Direction) Command { return Command{Kind: CmdMove, Dir: dir} }

// Resize returns a viewport resize command.
func Resize(rows, cols int) Command { return Command{Kind: CmdResize, Rows: rows, Cols: cols} }
