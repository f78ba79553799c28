package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/cookie-jar/engine"
)

// fixedColumns maps column c to x = 10*c when c is within [0, width)
type fixedColumns struct {
	width int
}

func (f fixedColumns) ColumnToJarX(col int) (float64, bool) {
	if col < 0 || col >= f.width {
		return 0, false
	}
	return float64(col) * 10, true
}

func TestTranslateKeys(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want []engine.Event
	}{
		{"left arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), []engine.Event{{Kind: engine.EventNudge, X: -10}}},
		{"right arrow", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), []engine.Event{{Kind: engine.EventNudge, X: 10}}},
		{"h", tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone), []engine.Event{{Kind: engine.EventNudge, X: -10}}},
		{"l", tcell.NewEventKey(tcell.KeyRune, 'l', tcell.ModNone), []engine.Event{{Kind: engine.EventNudge, X: 10}}},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), []engine.Event{{Kind: engine.EventDrop}}},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), []engine.Event{{Kind: engine.EventDrop}}},
		{"r", tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), []engine.Event{{Kind: engine.EventReset}}},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), []engine.Event{{Kind: engine.EventQuit}}},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), []engine.Event{{Kind: engine.EventQuit}}},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), []engine.Event{{Kind: engine.EventQuit}}},
		{"unbound rune", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), nil},
		{"unbound key", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), nil},
	}

	tr := NewTranslator(fixedColumns{width: 35}, 10)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.Translate(tt.ev))
		})
	}
}

func TestTranslateMouseMotion(t *testing.T) {
	tr := NewTranslator(fixedColumns{width: 35}, 10)

	got := tr.Translate(tcell.NewEventMouse(12, 5, tcell.ButtonNone, tcell.ModNone))
	assert.Equal(t, []engine.Event{{Kind: engine.EventPointerMove, X: 120}}, got)

	// Outside the jar nothing moves
	assert.Empty(t, tr.Translate(tcell.NewEventMouse(60, 5, tcell.ButtonNone, tcell.ModNone)))
}

func TestTranslateMouseClickDropsOncePerPress(t *testing.T) {
	tr := NewTranslator(fixedColumns{width: 35}, 10)

	press := tr.Translate(tcell.NewEventMouse(3, 5, tcell.Button1, tcell.ModNone))
	assert.Equal(t, []engine.Event{
		{Kind: engine.EventPointerMove, X: 30},
		{Kind: engine.EventDrop},
	}, press)

	// Dragging with the button held only moves
	drag := tr.Translate(tcell.NewEventMouse(4, 5, tcell.Button1, tcell.ModNone))
	assert.Equal(t, []engine.Event{{Kind: engine.EventPointerMove, X: 40}}, drag)

	tr.Translate(tcell.NewEventMouse(4, 5, tcell.ButtonNone, tcell.ModNone))
	again := tr.Translate(tcell.NewEventMouse(4, 5, tcell.Button1, tcell.ModNone))
	assert.Contains(t, again, engine.Event{Kind: engine.EventDrop})
}

func TestTranslateResize(t *testing.T) {
	tr := NewTranslator(fixedColumns{width: 35}, 10)
	got := tr.Translate(tcell.NewEventResize(100, 40))
	assert.Equal(t, []engine.Event{{Kind: engine.EventResize}}, got)
}

func TestTranslateIgnoresOtherEvents(t *testing.T) {
	tr := NewTranslator(fixedColumns{width: 35}, 10)
	assert.Nil(t, tr.Translate(tcell.NewEventInterrupt(nil)))
}
