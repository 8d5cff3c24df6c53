// Package naming derives human-readable labels from GraphQL identifiers.
package naming

import (
	"strings"
	"unicode"
)

// CapitalCase splits an identifier into words and capitalizes each one,
// joining them with single spaces.
// Examples:
//   - "firstName" -> "First Name"
//   - "ID" -> "Id"
//   - "XMLParser" -> "Xml Parser"
//   - "created_at" -> "Created At"
func CapitalCase(s string) string {
	words := Words(s)
	for i, w := range words {
		words[i] = capitalize(w)
	}

	return strings.Join(words, " ")
}

// Words splits an identifier on separators and case transitions.
// Examples:
//   - "OrderID" -> ["Order", "ID"]
//   - "customerName" -> ["customer", "Name"]
//   - "getHTTPResponse" -> ["get", "HTTP", "Response"]
//   - "address2Line" -> ["address2", "Line"]
func Words(s string) []string {
	if s == "" {
		return nil
	}

	var words []string

	var current strings.Builder

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			if current.Len() > 0 {
				words = append(words, current.String())
				current.Reset()
			}

			continue
		}

		if i > 0 && current.Len() > 0 && startsWord(runes, i) {
			words = append(words, current.String())
			current.Reset()
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		words = append(words, current.String())
	}

	return words
}

// isSeparator returns true for any rune that is neither a letter nor a digit.
func isSeparator(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// startsWord determines if a new word starts at position i.
func startsWord(runes []rune, i int) bool {
	r := runes[i]
	prev := runes[i-1]

	if !unicode.IsUpper(r) {
		return false
	}

	// "orderID" -> split before 'I', "v2Name" -> split before 'N'
	if unicode.IsLower(prev) || unicode.IsDigit(prev) {
		return true
	}

	// "XMLParser" -> "XML" + "Parser", split before 'P'
	return unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1])
}

func capitalize(word string) string {
	runes := []rune(strings.ToLower(word))
	runes[0] = unicode.ToUpper(runes[0])

	return string(runes)
}
