package config

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const maxFileNameLength = 200

// CleanFileName makes a single path segment safe to use as a file name on the
// current platform. It never returns empty string.
func CleanFileName(in string) string {
	out := strings.Map(func(sym rune) rune {
		switch {
		case unicode.IsSpace(sym):
			return ' '
		case forbiddenFileNameRune(sym):
			return -1
		}
		return sym
	}, in)

	out = strings.Join(strings.Fields(out), " ")
	out = strings.TrimLeft(out, ".")
	out = strings.TrimRight(out, ". ")

	if len(out) > maxFileNameLength {
		cut := maxFileNameLength
		for cut > 0 && !utf8.RuneStart(out[cut]) {
			cut--
		}
		out = strings.TrimRight(out[:cut], ". ")
	}
	if len(out) == 0 {
		return "_bad_file_name_"
	}
	if reservedFileName(out) {
		return "_" + out
	}
	return out
}
