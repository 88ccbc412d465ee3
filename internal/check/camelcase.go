package check

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// checkCamelCase decides whether name follows camelCase, with the
// required case for the first code point controlled by initialUpper.
// Two consecutive uppercase code points anywhere in the name are a
// violation, so acronym runs like "HTTPServer" are rejected.
//
// A wrong-case first letter gets a specific message and the scan is
// skipped; a first code point that is neither upper nor lower (digit,
// underscore, empty name) falls through to the generic message.
func checkCamelCase(name string, initialUpper bool) (bool, string) {
	if name == "" {
		return false, "empty name should follow camelCase naming"
	}

	first, size := utf8.DecodeRuneInString(name)
	previousUpper := false
	conventional := true

	switch {
	case unicode.IsUpper(first):
		previousUpper = true
		if !initialUpper {
			return false, fmt.Sprintf("name %q should start with a lowercase letter", name)
		}
	case unicode.IsLower(first):
		if initialUpper {
			return false, fmt.Sprintf("name %q should start with an uppercase letter", name)
		}
	default:
		conventional = false
	}

	if conventional {
		for _, cp := range name[size:] {
			if unicode.IsUpper(cp) {
				if previousUpper {
					conventional = false
					break
				}
				previousUpper = true
			} else {
				previousUpper = false
			}
		}
	}

	if !conventional {
		return false, fmt.Sprintf("name %q should follow camelCase naming", name)
	}
	return true, ""
}
