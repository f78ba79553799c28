package input

import "github.com/gdamore/tcell/v2"

// Action is what a bound key does
type Action uint8

const (
	ActionNone Action = iota
	ActionNudgeLeft
	ActionNudgeRight
	ActionDrop
	ActionReset
	ActionQuit
)

// KeyTable maps keys to actions
type KeyTable struct {
	// Special keys (arrows, Enter, Esc, Ctrl+*)
	SpecialKeys map[tcell.Key]Action

	// Printable rune bindings
	Runes map[rune]Action
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Action{
			tcell.KeyLeft:   ActionNudgeLeft,
			tcell.KeyRight:  ActionNudgeRight,
			tcell.KeyEnter:  ActionDrop,
			tcell.KeyEscape: ActionQuit,
			tcell.KeyCtrlC:  ActionQuit,
		},
		Runes: map[rune]Action{
			'h': ActionNudgeLeft,
			'l': ActionNudgeRight,
			'a': ActionNudgeLeft,
			'd': ActionNudgeRight,
			' ': ActionDrop,
			'r': ActionReset,
			'R': ActionReset,
			'q': ActionQuit,
		},
	}
}

// Lookup resolves a key event to its action
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.SpecialKeys[ev.Key()]
}
