// Package bridge streams raw platform events from a remote touch client over websocket
package bridge

import (
	"errors"
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/lixenwraith/touchport/platform"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrUnknownKind is returned for a message whose kind has no raw event mapping
var ErrUnknownKind = errors.New("unknown raw event kind")

// Message is the wire form of one raw event, one per websocket text frame
type Message struct {
	Kind        string `json:"kind"`
	X           int    `json:"x,omitempty"`
	Y           int    `json:"y,omitempty"`
	Direction   string `json:"direction,omitempty"`
	Tap         string `json:"tap,omitempty"`
	Touches     int    `json:"touches,omitempty"`
	Key         int    `json:"key,omitempty"`
	Axis        int    `json:"axis,omitempty"`
	Position    int    `json:"position,omitempty"`
	Button      int    `json:"button,omitempty"`
	Orientation int    `json:"orientation,omitempty"`
}

var kindByName = map[string]platform.RawKind{
	"mouse_down":      platform.RawMouseDown,
	"mouse_up":        platform.RawMouseUp,
	"mouse_dragged":   platform.RawMouseDragged,
	"second_down":     platform.RawMouseSecondDown,
	"second_up":       platform.RawMouseSecondUp,
	"second_dragged":  platform.RawMouseSecondDragged,
	"swipe":           platform.RawSwipe,
	"tap":             platform.RawTap,
	"key":             platform.RawKeyPressed,
	"main_menu":       platform.RawMainMenu,
	"joy_axis":        platform.RawJoystickAxis,
	"joy_button_down": platform.RawJoystickButtonDown,
	"joy_button_up":   platform.RawJoystickButtonUp,
	"orientation":     platform.RawOrientationChanged,
	"suspended":       platform.RawApplicationSuspended,
	"resumed":         platform.RawApplicationResumed,
	"save_state":      platform.RawApplicationSaveState,
	"restore_state":   platform.RawApplicationRestoreState,
	"clear_state":     platform.RawApplicationClearState,
	"input_changed":   platform.RawInputChanged,
}

var nameByKind = func() map[platform.RawKind]string {
	m := make(map[platform.RawKind]string, len(kindByName))
	for name, kind := range kindByName {
		m[kind] = name
	}
	return m
}()

var directionByName = map[string]platform.SwipeDirection{
	"up":    platform.SwipeUp,
	"down":  platform.SwipeDown,
	"left":  platform.SwipeLeft,
	"right": platform.SwipeRight,
}

var tapByName = map[string]platform.TapKind{
	"single": platform.TapSingle,
	"double": platform.TapDouble,
}

// Decode parses one wire message into a raw event
// Unknown directions and tap names decode to None and are dropped by the translator
func Decode(data []byte) (platform.RawEvent, error) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return platform.RawEvent{}, fmt.Errorf("bridge decode: %w", err)
	}

	kind, ok := kindByName[msg.Kind]
	if !ok {
		return platform.RawEvent{}, fmt.Errorf("%w: %q", ErrUnknownKind, msg.Kind)
	}

	return platform.RawEvent{
		Kind:        kind,
		X:           msg.X,
		Y:           msg.Y,
		Direction:   directionByName[msg.Direction],
		Tap:         tapByName[msg.Tap],
		Touches:     msg.Touches,
		Key:         msg.Key,
		Axis:        msg.Axis,
		Position:    msg.Position,
		Button:      msg.Button,
		Orientation: msg.Orientation,
	}, nil
}

// Encode renders a raw event in wire form
func Encode(ev platform.RawEvent) ([]byte, error) {
	name, ok := nameByKind[ev.Kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, ev.Kind)
	}

	msg := Message{
		Kind:        name,
		X:           ev.X,
		Y:           ev.Y,
		Touches:     ev.Touches,
		Key:         ev.Key,
		Axis:        ev.Axis,
		Position:    ev.Position,
		Button:      ev.Button,
		Orientation: ev.Orientation,
	}
	if ev.Direction != platform.SwipeNone {
		msg.Direction = strings.ToLower(ev.Direction.String())
	}
	if ev.Tap != platform.TapNone {
		msg.Tap = strings.ToLower(ev.Tap.String())
	}
	return json.Marshal(msg)
}
