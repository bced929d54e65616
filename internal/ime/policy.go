// Package ime decides when composition (reading-string) reports should be
// suppressed for an editable field during East-Asian input.
package ime

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Policy suppresses composition reporting for one designated field while
// the keyboard input locale matches a designated language.
type Policy struct {
	Field  string
	Locale language.Tag
}

// NewPolicy parses locale (a BCP 47 tag such as "ko" or "ko-KR").
// An empty field disables the policy.
func NewPolicy(field, locale string) (Policy, error) {
	if field == "" {
		return Policy{}, nil
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return Policy{}, fmt.Errorf("invalid IME locale %q: %w", locale, err)
	}
	return Policy{Field: field, Locale: tag}, nil
}

// Enabled reports whether the policy can ever suppress anything.
func (p Policy) Enabled() bool {
	return p.Field != ""
}

// Suppress reports whether composition for field should stay silent under
// the current input locale. Only the base language is compared, so "ko"
// matches "ko-KR".
func (p Policy) Suppress(field string, current language.Tag) bool {
	if !p.Enabled() || !strings.EqualFold(strings.TrimSpace(field), p.Field) {
		return false
	}
	want, _ := p.Locale.Base()
	got, conf := current.Base()
	return conf != language.No && got == want
}
