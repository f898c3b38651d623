// Package stringkit makes it simple to normalise the style of strings, such as turning a label into snake_case.
package stringkit

import (
	"unicode"
)

func IsSnake(s string) bool {
	var chars = []rune(s)

	if len(chars) == 0 {
		return false
	}

	// First and last characters should not be underscores
	if chars[0] == '_' || chars[len(chars)-1] == '_' {
		return false
	}

	previousWasSeparator := false
	for _, r := range chars {
		if r == '_' {
			if previousWasSeparator {
				return false // No consecutive underscores allowed
			}
			previousWasSeparator = true
			continue
		}
		if !unicode.IsDigit(r) && !(unicode.IsLetter(r) && unicode.IsLower(r)) && !unicode.Is(unicode.Lower, r) {
			return false
		}
		previousWasSeparator = false
	}

	return true
}

func ToSnake(s string) string {
	if IsSnake(s) {
		return s
	}
	const separator = '_'
	var (
		original = []rune(s)
		result   = make([]rune, 0, len(original))
	)
	for i, r := range original {

		if isSeparatorSymbol(r) {
			if char, ok := lookupPrevChar(result, i); ok && char == r {
				continue // skip duplicates
			}
			if _, ok := lookupNextChar(original, i); !ok { // dispose "_" if it would be the last char
				continue
			}
			result = append(result, separator)
			continue
		}

		if unicode.IsUpper(r) { // lowercase the letter, separating the words on case boundaries
			var prevOGChar, hasPrevOGChar = lookupPrevChar(original, i)
			if hasPrevOGChar && prevOGChar == separator {
				result = append(result, unicode.ToLower(r))
				continue
			}
			var (
				prevResChar, hasPrevResChar = lookupPrevChar(result, i)
				nextChar, hasNextChar       = lookupNextChar(original, i)
			)
			if hasPrevResChar && prevResChar != separator &&
				((hasPrevOGChar && unicode.IsLower(prevOGChar)) || (hasNextChar && unicode.IsLower(nextChar))) {
				result = append(result, separator)
			}
			result = append(result, unicode.ToLower(r))
			continue
		}

		result = append(result, r)
	}
	return string(result)
}

func isSeparatorSymbol(r rune) bool {
	return r == '-' || r == ' ' || r == '.' || r == '_'
}

func lookupPrevChar(str []rune, index int) (rune, bool) {
	return lookupChar(str, index-1)
}

func lookupNextChar(str []rune, index int) (rune, bool) {
	return lookupChar(str, index+1)
}

func lookupChar(str []rune, index int) (rune, bool) {
	if index < 0 || len(str) <= index {
		return 0, false
	}
	return str[index], true
}
