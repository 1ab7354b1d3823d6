// Package lang defines the fixed set of languages a project can be
// translated between.
package lang

import (
	"errors"
	"fmt"
	"strings"
)

// Language identifies a project language. The zero value is invalid.
type Language string

const (
	French    Language = "French"
	English   Language = "English"
	German    Language = "German"
	Spanish   Language = "Spanish"
	Ukrainian Language = "Ukrainian"
)

var ErrUnknown = errors.New("unknown language")

var suffixes = map[Language]string{
	French:    "_fr",
	English:   "_en",
	German:    "_de",
	Spanish:   "_es",
	Ukrainian: "_ua",
}

// All returns every supported language in a stable order.
func All() []Language {
	return []Language{French, English, German, Spanish, Ukrainian}
}

// Parse matches s case-insensitively against the names and the two-letter
// codes ("fr", "en", ...) of the supported languages.
func Parse(s string) (Language, error) {
	s = strings.TrimSpace(s)
	for _, l := range All() {
		if strings.EqualFold(string(l), s) || strings.EqualFold(l.Code(), s) {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: %q (expected one of %s)", ErrUnknown, s, strings.Join(Names(), ", "))
}

// Names returns the display names of all languages.
func Names() []string {
	all := All()
	out := make([]string, len(all))
	for i, l := range all {
		out[i] = string(l)
	}
	return out
}

// Code is the two-letter code of the language.
func (l Language) Code() string {
	return strings.TrimPrefix(suffixes[l], "_")
}

// Suffix is appended to the project name to name the language's directory.
func (l Language) Suffix() string {
	return suffixes[l]
}

func (l Language) Valid() bool {
	_, ok := suffixes[l]
	return ok
}

func (l Language) String() string {
	return string(l)
}

func (l Language) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknown, string(l))
	}
	return []byte(l), nil
}

func (l *Language) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
