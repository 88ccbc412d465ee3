package check

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// checkAllCaps decides whether name is a conventional constant name:
// an uppercase letter first, then uppercase letters, digits, or
// single underscores. Two underscores in a row are a violation.
func checkAllCaps(name string) (bool, string) {
	conventional := name != ""

	if conventional {
		first, size := utf8.DecodeRuneInString(name)
		if !unicode.IsUpper(first) {
			conventional = false
		} else {
			previousUnderscore := false
			for _, cp := range name[size:] {
				if cp == '_' {
					if previousUnderscore {
						conventional = false
						break
					}
					previousUnderscore = true
				} else {
					previousUnderscore = false
					if !unicode.IsUpper(cp) && !unicode.IsDigit(cp) {
						conventional = false
						break
					}
				}
			}
		}
	}

	if !conventional {
		return false, fmt.Sprintf("constant %q should be all uppercase letters, digits, or underscores, starting with a letter", name)
	}
	return true, ""
}
