//go:build windows

package win32

import (
	"fmt"
	"unsafe"

	"github.com/mj1618/kakao-a11y/internal/model"
	"golang.org/x/sys/windows"
	"golang.org/x/text/language"
)

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procGetClassNameW     = user32.NewProc("GetClassNameW")
	procGetKeyboardLayout = user32.NewProc("GetKeyboardLayout")
	procLCIDToLocaleName  = kernel32.NewProc("LCIDToLocaleName")
)

// maxClassName is the longest window class name Win32 allows.
const maxClassName = 256

// WindowClasses implements platform.WindowClasses with GetClassNameW.
type WindowClasses struct{}

// ClassName returns the class name of hwnd.
func (WindowClasses) ClassName(hwnd model.Handle) (string, error) {
	buf := make([]uint16, maxClassName)
	n, _, err := procGetClassNameW.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if n == 0 {
		return "", fmt.Errorf("GetClassNameW %s: %w", hwnd, err)
	}
	return windows.UTF16ToString(buf[:n]), nil
}

// Locale implements platform.Locale from the keyboard layout of the
// foreground window's thread.
type Locale struct{}

// InputLocale returns the active input language.
func (Locale) InputLocale() (language.Tag, error) {
	fg := windows.GetForegroundWindow()
	var tid uint32
	if fg != 0 {
		tid, _ = windows.GetWindowThreadProcessId(fg, nil)
	}
	hkl, _, _ := procGetKeyboardLayout.Call(uintptr(tid))
	if hkl == 0 {
		return language.Und, fmt.Errorf("GetKeyboardLayout: no layout for thread %d", tid)
	}

	buf := make([]uint16, localeNameMaxLength)
	n, _, err := procLCIDToLocaleName.Call(uintptr(langID(hkl)), uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)), 0)
	if n == 0 {
		return language.Und, fmt.Errorf("LCIDToLocaleName %#x: %w", langID(hkl), err)
	}
	return localeTag(windows.UTF16ToString(buf))
}
