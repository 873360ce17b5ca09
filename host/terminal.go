// Package host runs the translator inside a terminal: tcell input becomes raw touch events
// and the screen plays the part of the device surface
package host

import (
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/kataras/golog"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/touchport/audio"
	"github.com/lixenwraith/touchport/config"
	"github.com/lixenwraith/touchport/engine"
	"github.com/lixenwraith/touchport/event"
	"github.com/lixenwraith/touchport/parameter"
)

var logger = golog.Child("[host]")

// Chime plays feedback cues; *audio.Feedback satisfies it
type Chime interface {
	Play(cue audio.Cue)
	SetMuted(muted bool)
}

// TerminalOptions configures optional Terminal collaborators
type TerminalOptions struct {
	Clock engine.Clock
	// Store persists the session on save/restore lifecycle events; nil disables persistence
	Store *config.SessionStore
	// Chime is played on notifications and overlay toggles; nil stays silent
	Chime Chime
	// Hide lists event types kept out of the on-screen log
	Hide []event.Type
	// Wait blocks while the terminal is handed back to the shell
	// Defaults to stopping the process until it is continued
	Wait func()
}

// Terminal is a tcell-backed surface, lifecycle and notifier
// All coordinates it exchanges with the translator are in touch points, not cells
// Not safe for concurrent use; drive it from the main loop only
type Terminal struct {
	screen tcell.Screen
	clock  engine.Clock
	store  *config.SessionStore
	chime  Chime
	wait   func()

	width, height    int // cells
	cursorX, cursorY int // points
	overlay          bool
	suspended        bool
	muted            bool

	notice      string
	noticeUntil time.Time

	history  []string
	hidden   map[event.Type]bool
	rebuilds int
}

// NewTerminal wraps an initialized screen
func NewTerminal(screen tcell.Screen, opts TerminalOptions) *Terminal {
	t := &Terminal{
		screen:  screen,
		clock:   opts.Clock,
		store:   opts.Store,
		chime:   opts.Chime,
		wait:    opts.Wait,
		hidden:  make(map[event.Type]bool, len(opts.Hide)),
		history: make([]string, 0, parameter.HostEventLogSize),
	}
	if t.clock == nil {
		t.clock = engine.NewMonotonicClock()
	}
	for _, ty := range opts.Hide {
		t.hidden[ty] = true
	}
	if t.wait == nil {
		t.wait = waitForeground
	}

	t.width, t.height = screen.Size()
	w, h := t.ScreenSize()
	t.cursorX = w / 2
	t.cursorY = h / 2
	return t
}

func (t *Terminal) Cursor() (int, int) {
	return t.cursorX, t.cursorY
}

// WarpMouse moves the cursor, clamped into the screen
func (t *Terminal) WarpMouse(x, y int) {
	w, h := t.ScreenSize()
	t.cursorX = clamp(x, 0, w-1)
	t.cursorY = clamp(y, 0, h-1)
}

func (t *Terminal) OverlayVisible() bool {
	return t.overlay
}

func (t *Terminal) ScreenSize() (int, int) {
	return t.width * parameter.HostCellWidth, t.height * parameter.HostCellHeight
}

// OverlaySize is half the screen in each dimension
func (t *Terminal) OverlaySize() (int, int) {
	w, h := t.ScreenSize()
	return w / 2, h / 2
}

// Rebuild resumes a suspended screen, picks up the current size and forces a full redraw
func (t *Terminal) Rebuild() {
	if t.suspended {
		if err := t.screen.Resume(); err != nil {
			logger.Warnf("resume failed: %v", err)
		}
		t.suspended = false
	}

	t.width, t.height = t.screen.Size()
	t.WarpMouse(t.cursorX, t.cursorY)
	t.rebuilds++
	t.screen.Sync()
	logger.Debugf("rebuilt surface %dx%d cells", t.width, t.height)
}

// Rebuilds returns how many times the surface was rebuilt
func (t *Terminal) Rebuilds() int {
	return t.rebuilds
}

// ToggleOverlay shows or hides the overlay box
func (t *Terminal) ToggleOverlay() {
	t.overlay = !t.overlay
	if t.chime != nil {
		if t.overlay {
			t.chime.Play(audio.CueEnabled)
		} else {
			t.chime.Play(audio.CueDisabled)
		}
	}
}

// ToggleMute silences or restores feedback cues
func (t *Terminal) ToggleMute() {
	t.muted = !t.muted
	if t.chime != nil {
		t.chime.SetMuted(t.muted)
	}
	logger.Debugf("muted=%v", t.muted)
}

// Muted reports whether feedback cues are silenced
func (t *Terminal) Muted() bool {
	return t.muted
}

// Suspended reports whether the terminal has been handed back to the shell
func (t *Terminal) Suspended() bool {
	return t.suspended
}

// Suspend releases the terminal, blocks until the user brings the process back,
// then reclaims the screen and posts a resize so the surface is rebuilt through the input path
func (t *Terminal) Suspend() {
	if t.suspended {
		return
	}
	if err := t.screen.Suspend(); err != nil {
		logger.Warnf("suspend failed: %v", err)
		return
	}
	t.suspended = true

	t.wait()

	if err := t.screen.Resume(); err != nil {
		// Rebuild retries
		logger.Warnf("resume failed: %v", err)
		return
	}
	t.suspended = false

	w, h := t.screen.Size()
	if err := t.screen.PostEvent(tcell.NewEventResize(w, h)); err != nil {
		logger.Warnf("post resize after resume: %v", err)
	}
}

// SaveState persists the cursor and overlay flag
func (t *Terminal) SaveState() {
	if t.store == nil {
		return
	}
	s := config.Session{CursorX: t.cursorX, CursorY: t.cursorY, OverlayVisible: t.overlay}
	if err := t.store.Save(s); err != nil {
		logger.Warnf("%v", err)
		return
	}
	logger.Debugf("session saved at (%d,%d)", s.CursorX, s.CursorY)
}

// RestoreState reapplies a saved session; a missing session leaves state untouched
func (t *Terminal) RestoreState() {
	if t.store == nil {
		return
	}
	s, err := t.store.Load()
	if err != nil {
		if errors.Is(err, config.ErrNoSession) {
			logger.Debug("no session to restore")
		} else {
			logger.Warnf("%v", err)
		}
		return
	}
	t.overlay = s.OverlayVisible
	t.WarpMouse(s.CursorX, s.CursorY)
}

// ClearState drops the saved session and the on-screen event log
func (t *Terminal) ClearState() {
	t.history = t.history[:0]
	if t.store == nil {
		return
	}
	if err := t.store.Clear(); err != nil {
		logger.Warnf("%v", err)
	}
}

// Notify shows msg until d elapses
func (t *Terminal) Notify(msg string, d time.Duration) {
	t.notice = msg
	t.noticeUntil = t.clock.Now().Add(d)
	if t.chime != nil {
		t.chime.Play(audio.CueClick)
	}
}

// Notice returns the active notification, if any
func (t *Terminal) Notice() (string, bool) {
	if t.notice == "" || !t.clock.Now().Before(t.noticeUntil) {
		return "", false
	}
	return t.notice, true
}

// Record appends a translated event to the on-screen log
// Invalid and hidden event types are skipped
func (t *Terminal) Record(ev event.Event) {
	if !ev.Valid() || t.hidden[ev.Type] {
		return
	}
	if len(t.history) == parameter.HostEventLogSize {
		copy(t.history, t.history[1:])
		t.history = t.history[:len(t.history)-1]
	}
	t.history = append(t.history, ev.String())
}

// History returns the on-screen event log, oldest first
func (t *Terminal) History() []string {
	out := make([]string, len(t.history))
	copy(out, t.history)
	return out
}

// Draw renders the event log, overlay, notification, status line and cursor
func (t *Terminal) Draw(status string) {
	if t.suspended {
		return
	}
	t.screen.Clear()

	logStyle := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	for i, line := range t.history {
		t.drawText(1, i+1, line, logStyle)
	}

	if t.overlay {
		t.drawOverlay()
	}

	if msg, ok := t.Notice(); ok {
		x := (t.width - runewidth.StringWidth(msg)) / 2
		t.drawText(x, t.height/2, msg, tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true))
	}

	t.drawText(0, t.height-1, status, tcell.StyleDefault.Reverse(true))

	cx := t.cursorX / parameter.HostCellWidth
	cy := t.cursorY / parameter.HostCellHeight
	t.screen.SetContent(cx, cy, '+', nil, tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true))

	t.screen.Show()
}

func (t *Terminal) drawOverlay() {
	w := t.width / 2
	h := t.height / 2
	x0 := (t.width - w) / 2
	y0 := (t.height - h) / 2
	style := tcell.StyleDefault.Foreground(tcell.ColorBlue)

	for x := x0; x < x0+w; x++ {
		t.screen.SetContent(x, y0, '-', nil, style)
		t.screen.SetContent(x, y0+h-1, '-', nil, style)
	}
	for y := y0; y < y0+h; y++ {
		t.screen.SetContent(x0, y, '|', nil, style)
		t.screen.SetContent(x0+w-1, y, '|', nil, style)
	}
	t.drawText(x0+2, y0, fmt.Sprintf(" overlay %dx%d ", w, h), style)
}

func (t *Terminal) drawText(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		if x >= t.width {
			return
		}
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x >= 0 {
			t.screen.SetContent(x, y, r, nil, style)
		}
		x += w
	}
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
