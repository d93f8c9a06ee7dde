package city

import (
	"strings"
	"unicode/utf8"
)

const maxShortNameLength = 32

func isValidShortName(name string) bool {
	name = strings.TrimSpace(name)
	return name != "" && utf8.RuneCountInString(name) <= maxShortNameLength && !strings.ContainsAny(name, " \t\n")
}

func isValidFullName(name string) bool {
	return strings.TrimSpace(name) != ""
}
