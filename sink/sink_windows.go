//go:build windows

package sink

import (
	"fmt"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/invertedmushroom/bg3bridge/keycode"
)

var (
	user32          = windows.NewLazySystemDLL("user32.dll")
	procSendInput   = user32.NewProc("SendInput")
	procGetKeyState = user32.NewProc("GetKeyState")
)

const (
	inputKeyboard   = 1
	keyeventfKeyup  = 0x0002
	vkCapital       = 0x14
	tapHold         = 5 * time.Millisecond
	inputStructSize = unsafe.Sizeof(input{})
)

type keybdInput struct {
	Vk        uint16
	Scan      uint16
	Flags     uint32
	Time      uint32
	ExtraInfo uintptr
}

// input matches the Win32 INPUT struct on amd64: a 4-byte type, alignment
// padding, and a union sized for MOUSEINPUT.
type input struct {
	Type uint32
	_    uint32
	Ki   keybdInput
	_    [8]byte
}

// WindowsSink injects keyboard input through user32 SendInput.
type WindowsSink struct{}

// New returns the platform injector.
func New() Sink {
	return WindowsSink{}
}

func sendKey(vk uint16, up bool) error {
	in := input{Type: inputKeyboard, Ki: keybdInput{Vk: vk}}
	if up {
		in.Ki.Flags = keyeventfKeyup
	}
	n, _, err := procSendInput.Call(1, uintptr(unsafe.Pointer(&in)), uintptr(inputStructSize))
	if n != 1 {
		return fmt.Errorf("SendInput(vk=0x%02X): %w", vk, err)
	}
	return nil
}

func (WindowsSink) Down(c keycode.Chord) error {
	if !c.Injectable() {
		return ErrNotInjectable
	}
	for _, k := range c {
		if err := sendKey(k.VK, false); err != nil {
			return err
		}
	}
	return nil
}

func (WindowsSink) Up(c keycode.Chord) error {
	if !c.Injectable() {
		return ErrNotInjectable
	}
	for i := len(c) - 1; i >= 0; i-- {
		if err := sendKey(c[i].VK, true); err != nil {
			return err
		}
	}
	return nil
}

func (s WindowsSink) Tap(c keycode.Chord) error {
	if err := s.Down(c); err != nil {
		return err
	}
	time.Sleep(tapHold)
	return s.Up(c)
}

// CapsLockOn reports the CapsLock LED state via GetKeyState's toggle bit.
func CapsLockOn() bool {
	state, _, _ := procGetKeyState.Call(vkCapital)
	return state&1 != 0
}
