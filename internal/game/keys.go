package game

import "github.com/gdamore/tcell/v2"

type commandKind int

const (
	cmdNone commandKind = iota
	cmdQuit
	cmdConfirm
	cmdCancel
	cmdMove
	cmdJump
)

// command is a key press translated into a game request.
type command struct {
	kind commandKind
	dir  Direction
}

// commandForKey maps vi-style keys and arrows to commands:
//
//	h j k l / arrows   move
//	y u b n            move diagonally
//	w e                jump right
//	B                  jump left
//	q, Ctrl-C          quit
func commandForKey(key tcell.Key, r rune) command {
	switch key {
	case tcell.KeyCtrlC:
		return command{kind: cmdQuit}
	case tcell.KeyEnter:
		return command{kind: cmdConfirm}
	case tcell.KeyEscape:
		return command{kind: cmdCancel}
	case tcell.KeyUp:
		return command{kind: cmdMove, dir: DirUp}
	case tcell.KeyDown:
		return command{kind: cmdMove, dir: DirDown}
	case tcell.KeyLeft:
		return command{kind: cmdMove, dir: DirLeft}
	case tcell.KeyRight:
		return command{kind: cmdMove, dir: DirRight}
	case tcell.KeyRune:
	default:
		return command{}
	}

	switch r {
	case 'q', 'Q':
		return command{kind: cmdQuit}
	case 'h':
		return command{kind: cmdMove, dir: DirLeft}
	case 'j':
		return command{kind: cmdMove, dir: DirDown}
	case 'k':
		return command{kind: cmdMove, dir: DirUp}
	case 'l':
		return command{kind: cmdMove, dir: DirRight}
	case 'y':
		return command{kind: cmdMove, dir: DirUpLeft}
	case 'u':
		return command{kind: cmdMove, dir: DirUpRight}
	case 'b':
		return command{kind: cmdMove, dir: DirDownLeft}
	case 'n':
		return command{kind: cmdMove, dir: DirDownRight}
	case 'w', 'e':
		return command{kind: cmdJump, dir: DirRight}
	case 'B':
		return command{kind: cmdJump, dir: DirLeft}
	}
	return command{}
}
