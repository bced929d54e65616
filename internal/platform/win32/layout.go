package win32

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// localeNameMaxLength is LOCALE_NAME_MAX_LENGTH.
const localeNameMaxLength = 85

// langID extracts the language identifier from a keyboard layout handle.
// The low word of an HKL is the input language.
func langID(hkl uintptr) uint32 {
	return uint32(hkl & 0xffff)
}

// localeTag parses a Windows locale name such as "ko-KR" into a BCP 47 tag.
func localeTag(name string) (language.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return language.Und, fmt.Errorf("empty locale name")
	}
	tag, err := language.Parse(name)
	if err != nil {
		return language.Und, fmt.Errorf("parse locale %q: %w", name, err)
	}
	return tag, nil
}
