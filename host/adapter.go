package host

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/touchport/parameter"
	"github.com/lixenwraith/touchport/platform"
)

// Sink receives raw events produced from terminal input; platform.Queue satisfies it
type Sink interface {
	Push(platform.RawEvent)
}

// Adapter maps tcell events to raw touch, gesture and lifecycle events
// Left button acts as the primary finger, right button as the second finger
type Adapter struct {
	sink Sink
	term *Terminal

	buttons      tcell.ButtonMask
	lastX, lastY int
}

func NewAdapter(sink Sink, term *Terminal) *Adapter {
	return &Adapter{sink: sink, term: term}
}

// Handle processes one tcell event; false means the user asked to quit
func (a *Adapter) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventMouse:
		a.handleMouse(ev)
	case *tcell.EventResize:
		a.sink.Push(platform.Signal(platform.RawApplicationResumed))
	}
	return true
}

func (a *Adapter) handleMouse(ev *tcell.EventMouse) {
	cx, cy := ev.Position()
	x := cx * parameter.HostCellWidth
	y := cy * parameter.HostCellHeight

	prev := a.buttons
	cur := ev.Buttons()

	a.pointer(prev, cur, tcell.ButtonPrimary, x, y,
		platform.MouseDown, platform.MouseDragged, platform.MouseUp)
	a.pointer(prev, cur, tcell.ButtonSecondary, x, y,
		platform.MouseSecondDown, platform.MouseSecondDragged, platform.MouseSecondUp)

	a.buttons = cur
	a.lastX, a.lastY = x, y
}

// pointer emits the down/dragged/up transition for one button
// Motion with no button held has no touch equivalent and is dropped
func (a *Adapter) pointer(prev, cur, mask tcell.ButtonMask, x, y int, down, dragged, up func(x, y int) platform.RawEvent) {
	was := prev&mask != 0
	is := cur&mask != 0

	switch {
	case is && !was:
		a.sink.Push(down(x, y))
	case is && was:
		if x != a.lastX || y != a.lastY {
			a.sink.Push(dragged(x, y))
		}
	case !is && was:
		a.sink.Push(up(x, y))
	}
}

func (a *Adapter) handleKey(ev *tcell.EventKey) bool {
	mod := ev.Modifiers()

	switch ev.Key() {
	case tcell.KeyCtrlC:
		return false
	case tcell.KeyCtrlS:
		// Sound toggle is host state, not input
		a.term.ToggleMute()

	case tcell.KeyEnter:
		a.sink.Push(platform.KeyPressed('\n'))
	case tcell.KeyEscape:
		a.sink.Push(platform.KeyPressed(27))
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		a.sink.Push(platform.KeyPressed(8))
	case tcell.KeyRune:
		a.sink.Push(platform.KeyPressed(int(ev.Rune())))

	case tcell.KeyUp, tcell.KeyDown, tcell.KeyLeft, tcell.KeyRight:
		touches := 0
		switch {
		case mod&tcell.ModCtrl != 0:
			touches = 3
		case mod&tcell.ModAlt != 0:
			touches = 2
		}
		if touches > 0 {
			a.sink.Push(platform.Swipe(arrowDirection(ev.Key()), touches))
		}

	case tcell.KeyTab:
		a.sink.Push(platform.Tap(platform.TapDouble, 1))
	case tcell.KeyBacktab:
		a.sink.Push(platform.Tap(platform.TapDouble, 2))

	case tcell.KeyF1:
		a.sink.Push(platform.OrientationChanged(1))
	case tcell.KeyF2:
		a.sink.Push(platform.OrientationChanged(2))
	case tcell.KeyF3:
		a.sink.Push(platform.OrientationChanged(3))
	case tcell.KeyF4:
		a.sink.Push(platform.OrientationChanged(4))
	case tcell.KeyF5:
		a.sink.Push(platform.Signal(platform.RawApplicationSuspended))
	case tcell.KeyF6:
		a.sink.Push(platform.Signal(platform.RawApplicationResumed))
	case tcell.KeyF7:
		a.sink.Push(platform.Signal(platform.RawApplicationSaveState))
	case tcell.KeyF8:
		a.sink.Push(platform.Signal(platform.RawApplicationRestoreState))
	case tcell.KeyF9:
		// Overlay is host state, not input
		a.term.ToggleOverlay()
	case tcell.KeyF10:
		a.sink.Push(platform.Signal(platform.RawApplicationClearState))
	case tcell.KeyF11:
		a.sink.Push(platform.Signal(platform.RawInputChanged))
	case tcell.KeyF12:
		a.sink.Push(platform.Signal(platform.RawMainMenu))
	}
	return true
}

func arrowDirection(k tcell.Key) platform.SwipeDirection {
	switch k {
	case tcell.KeyUp:
		return platform.SwipeUp
	case tcell.KeyDown:
		return platform.SwipeDown
	case tcell.KeyLeft:
		return platform.SwipeLeft
	case tcell.KeyRight:
		return platform.SwipeRight
	}
	return platform.SwipeNone
}
