// Package spacemouse decodes raw HID reports from 3Dconnexion SpaceMouse
// devices paired with the Universal Receiver.
package spacemouse

import (
	"encoding/binary"
	"fmt"
)

// Universal Receiver identity.
const (
	VendorID  = 0x256F
	ProductID = 0xC652
)

// Report IDs emitted by the receiver.
const (
	reportMotion  = 0x01
	reportButtons = 0x03
)

// motionLen is report ID plus six little-endian int16 axes.
const motionLen = 13

// axisRange is the raw deflection at full tilt; Normalize divides by it.
const axisRange = 350

// NumButtons is the button count on the SpaceMouse Enterprise puck layout
// carried by the receiver.
const NumButtons = 15

// Motion is one decoded 6DOF frame. Axes are raw device units in
// [-axisRange, axisRange] (the hardware can overshoot slightly). Yaw is the
// puck twist.
type Motion struct {
	X, Y, Z          int16
	Pitch, Roll, Yaw int16
}

// Buttons is one decoded button frame: the pressed state of each button by
// index.
type Buttons [NumButtons]bool

// Event is either a Motion or a Buttons frame.
type Event struct {
	Motion  *Motion
	Buttons *Buttons
}

// ErrShortReport is returned when a report's payload is truncated.
type ErrShortReport struct {
	ID  byte
	Len int
}

func (e ErrShortReport) Error() string {
	return fmt.Sprintf("short report 0x%02X: %d bytes", e.ID, e.Len)
}

// buttonSpec locates one button inside the 0x03 report.
type buttonSpec struct {
	name   string
	offset int
	bit    uint
}

// Universal Receiver button layout.
var buttonSpecs = [NumButtons]buttonSpec{
	{"MENU", 1, 0},
	{"ALT", 3, 7},
	{"CTRL", 4, 1},
	{"SHIFT", 4, 0},
	{"ESC", 3, 6},
	{"1", 2, 4},
	{"2", 2, 5},
	{"3", 2, 6},
	{"4", 2, 7},
	{"ROLL CLOCKWISE", 2, 0},
	{"TOP", 1, 2},
	{"ROTATION", 4, 2},
	{"FRONT", 1, 5},
	{"REAR", 1, 4},
	{"FIT", 1, 1},
}

// ButtonName returns the hardware label for a button index.
func ButtonName(index int) string {
	if index < 0 || index >= NumButtons {
		return ""
	}
	return buttonSpecs[index].name
}

// Decode parses one raw HID report. Unknown report IDs return (Event{},
// false, nil) and should be skipped; truncated known reports are an error.
func Decode(data []byte) (Event, bool, error) {
	if len(data) == 0 {
		return Event{}, false, ErrShortReport{Len: 0}
	}
	switch data[0] {
	case reportMotion:
		if len(data) < motionLen {
			return Event{}, false, ErrShortReport{ID: reportMotion, Len: len(data)}
		}
		m := &Motion{
			X:     int16(binary.LittleEndian.Uint16(data[1:3])),
			Y:     int16(binary.LittleEndian.Uint16(data[3:5])),
			Z:     int16(binary.LittleEndian.Uint16(data[5:7])),
			Pitch: int16(binary.LittleEndian.Uint16(data[7:9])),
			Roll:  int16(binary.LittleEndian.Uint16(data[9:11])),
			Yaw:   int16(binary.LittleEndian.Uint16(data[11:13])),
		}
		return Event{Motion: m}, true, nil
	case reportButtons:
		if len(data) < 5 {
			return Event{}, false, ErrShortReport{ID: reportButtons, Len: len(data)}
		}
		var b Buttons
		for i, spec := range buttonSpecs {
			if spec.offset < len(data) && data[spec.offset]&(1<<spec.bit) != 0 {
				b[i] = true
			}
		}
		return Event{Buttons: &b}, true, nil
	default:
		return Event{}, false, nil
	}
}

// Normalize maps a raw axis value into [-1, 1].
func Normalize(raw int16) float64 {
	v := float64(raw) / axisRange
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
