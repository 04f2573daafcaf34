package terminal

import "github.com/gdamore/tcell/v2"

// Command is a host action decoded from a terminal event
type Command uint8

const (
	CmdNone Command = iota
	// CmdPress starts, flips, or restarts depending on the phase
	CmdPress
	CmdQuit
	CmdToggleMobile
	CmdToggleDebug
)

// Translate maps a key event to a Command; mouse presses are edge-detected by App
func Translate(ev *tcell.EventKey) Command {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return CmdQuit
	case tcell.KeyEnter, tcell.KeyUp:
		return CmdPress
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ', 'w', 'k':
			return CmdPress
		case 'q', 'Q':
			return CmdQuit
		case 'm', 'M':
			return CmdToggleMobile
		case 'd', 'D':
			return CmdToggleDebug
		}
	}
	return CmdNone
}
