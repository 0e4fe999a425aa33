//go:build windows

// Package windows implements pkg/platform's InputAdapter/OutputAdapter over
// a low-level keyboard hook and the SendInput injection API.
package windows

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procSetWindowsHookExW  = user32.NewProc("SetWindowsHookExW")
	procUnhookWindowsHookEx = user32.NewProc("UnhookWindowsHookEx")
	procCallNextHookEx     = user32.NewProc("CallNextHookEx")
	procGetMessageW        = user32.NewProc("GetMessageW")
	procPostThreadMessageW = user32.NewProc("PostThreadMessageW")
	procSendInput          = user32.NewProc("SendInput")

	procGetCurrentThreadId = kernel32.NewProc("GetCurrentThreadId")
	procGetModuleHandleW   = kernel32.NewProc("GetModuleHandleW")
)

// keybdInput mirrors the Win32 KEYBDINPUT structure used inside the INPUT
// union passed to SendInput.
type keybdInput struct {
	wVk         uint16
	wScan       uint16
	dwFlags     uint32
	time        uint32
	dwExtraInfo uintptr
}

// input mirrors the Win32 INPUT structure. The union member can hold a
// MOUSEINPUT (28 bytes + alignment) or HARDWAREINPUT; padding keeps the
// struct the same size as the union's largest member so SendInput reads a
// layout it recognizes even though this adapter only ever populates ki.
type input struct {
	inputType uint32
	_         uint32 // compiler padding to 8-byte align the union on amd64
	ki        keybdInput
	_         uint64 // pad union to MOUSEINPUT's size
}

const inputTypeKeyboard = 1

const (
	keyEventFExtendedKey = 0x0001
	keyEventFKeyUp       = 0x0002
	keyEventFScanCode    = 0x0008
)

// kbdllHookStruct mirrors the Win32 KBDLLHOOKSTRUCT delivered to a
// WH_KEYBOARD_LL hook procedure.
type kbdllHookStruct struct {
	VkCode      uint32
	ScanCode    uint32
	Flags       uint32
	Time        uint32
	DwExtraInfo uintptr
}

const (
	whKeyboardLL = 13

	llKHFExtended = 0x01
	llKHFUp       = 0x80

	wmQuit = 0x0012
)

func sendInput(in *input) (uintptr, error) {
	ret, _, err := procSendInput.Call(1, uintptr(unsafe.Pointer(in)), unsafe.Sizeof(*in))
	if ret == 0 {
		return 0, err
	}
	return ret, nil
}
