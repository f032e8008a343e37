//go:build windows

package config

import (
	"os"
	"strings"

	"golang.org/x/sys/windows"
	"golang.org/x/term"
)

var reservedDeviceNames = []string{
	"CON", "PRN", "AUX", "NUL",
	"COM1", "COM2", "COM3", "COM4", "COM5", "COM6", "COM7", "COM8", "COM9",
	"LPT1", "LPT2", "LPT3", "LPT4", "LPT5", "LPT6", "LPT7", "LPT8", "LPT9",
}

func forbiddenFileNameRune(sym rune) bool {
	return sym < 0x20 || strings.ContainsRune(`<>":/\|?*`, sym) || sym == os.PathListSeparator
}

// reservedFileName reports device names which cannot be used even with an
// extension ("NUL.docx" is still NUL).
func reservedFileName(name string) bool {
	base, _, _ := strings.Cut(name, ".")
	for _, dev := range reservedDeviceNames {
		if strings.EqualFold(strings.TrimSpace(base), dev) {
			return true
		}
	}
	return false
}

// EnableColorOutput checks if colorized output is possible and
// enables VT100 sequence processing in Windows console (Windows 10 and up).
func EnableColorOutput(stream *os.File) bool {
	if windows.RtlGetVersion().MajorVersion < 10 {
		return false
	}
	if !term.IsTerminal(int(stream.Fd())) {
		return false
	}

	handle := windows.Handle(stream.Fd())

	var mode uint32
	if err := windows.GetConsoleMode(handle, &mode); err != nil {
		return false
	}
	return windows.SetConsoleMode(handle, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING) == nil
}
