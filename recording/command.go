package recording

import (
	"fmt"

	"github.com/treeviewer/highlight"
)

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdFillSolid    CommandType = iota // Fill a boundary with a solid color
	CmdFillGradient                    // Fill a boundary with a gradient
	CmdStroke                          // Outline a boundary
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdFillSolid:    "FillSolid",
	CmdFillGradient: "FillGradient",
	CmdStroke:       "Stroke",
}

// String returns the name of the command type.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return fmt.Sprintf("CommandType(%d)", c)
}

// Command is a recorded drawing call.
type Command interface {
	// Type returns the command type.
	Type() CommandType
	// Node returns the identity of the highlighted node.
	Node() highlight.NodeID
}

// PathRef is a reference to a pooled boundary.
type PathRef uint32

// PaintRef is a reference to a pooled paint.
type PaintRef uint32

// InvalidRef marks a reference that points to no resource.
const InvalidRef = ^uint32(0)

// IsValid returns true if the reference is valid (not InvalidRef).
func (r PathRef) IsValid() bool {
	return uint32(r) != InvalidRef
}

// IsValid returns true if the reference is valid (not InvalidRef).
func (r PaintRef) IsValid() bool {
	return uint32(r) != InvalidRef
}

// FillSolidCommand fills a boundary with one color.
type FillSolidCommand struct {
	ID    highlight.NodeID
	Path  PathRef
	Color highlight.RGBA
}

// Type implements Command.
func (FillSolidCommand) Type() CommandType { return CmdFillSolid }

// Node implements Command.
func (c FillSolidCommand) Node() highlight.NodeID { return c.ID }

// FillGradientCommand fills a boundary with a gradient paint.
type FillGradientCommand struct {
	ID    highlight.NodeID
	Path  PathRef
	Paint PaintRef
}

// Type implements Command.
func (FillGradientCommand) Type() CommandType { return CmdFillGradient }

// Node implements Command.
func (c FillGradientCommand) Node() highlight.NodeID { return c.ID }

// StrokeCommand outlines a boundary.
type StrokeCommand struct {
	ID    highlight.NodeID
	Path  PathRef
	Style highlight.StrokeStyle
}

// Type implements Command.
func (StrokeCommand) Type() CommandType { return CmdStroke }

// Node implements Command.
func (c StrokeCommand) Node() highlight.NodeID { return c.ID }
