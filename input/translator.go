package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cookie-jar/engine"
)

// ColumnMapper converts a screen column to a jar x coordinate
type ColumnMapper interface {
	ColumnToJarX(col int) (float64, bool)
}

// Translator turns terminal events into game events
// Not safe for concurrent use; one goroutine polls the screen and translates
type Translator struct {
	keys      *KeyTable
	columns   ColumnMapper
	nudgeStep float64

	// Buttons held on the previous mouse event, for press edge detection
	buttons tcell.ButtonMask
}

// NewTranslator creates a translator using the default key table
func NewTranslator(columns ColumnMapper, nudgeStep float64) *Translator {
	return &Translator{
		keys:      DefaultKeyTable(),
		columns:   columns,
		nudgeStep: nudgeStep,
	}
}

// Translate returns the game events for one terminal event, in order
// Returns nil for events the game ignores
func (t *Translator) Translate(ev tcell.Event) []engine.Event {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return t.translateKey(ev)
	case *tcell.EventMouse:
		return t.translateMouse(ev)
	case *tcell.EventResize:
		return []engine.Event{{Kind: engine.EventResize}}
	}
	return nil
}

func (t *Translator) translateKey(ev *tcell.EventKey) []engine.Event {
	switch t.keys.Lookup(ev) {
	case ActionNudgeLeft:
		return []engine.Event{{Kind: engine.EventNudge, X: -t.nudgeStep}}
	case ActionNudgeRight:
		return []engine.Event{{Kind: engine.EventNudge, X: t.nudgeStep}}
	case ActionDrop:
		return []engine.Event{{Kind: engine.EventDrop}}
	case ActionReset:
		return []engine.Event{{Kind: engine.EventReset}}
	case ActionQuit:
		return []engine.Event{{Kind: engine.EventQuit}}
	}
	return nil
}

func (t *Translator) translateMouse(ev *tcell.EventMouse) []engine.Event {
	buttons := ev.Buttons()
	pressed := buttons&tcell.Button1 != 0 && t.buttons&tcell.Button1 == 0
	t.buttons = buttons

	var out []engine.Event
	col, _ := ev.Position()
	if x, ok := t.columns.ColumnToJarX(col); ok {
		out = append(out, engine.Event{Kind: engine.EventPointerMove, X: x})
	}
	if pressed {
		out = append(out, engine.Event{Kind: engine.EventDrop})
	}
	return out
}
