package report

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// acronyms are words rendered in upper case (or with fixed casing) in labels.
var acronyms = map[string]string{
	"api":    "API",
	"http":   "HTTP",
	"id":     "ID",
	"oauth2": "OAuth2",
	"url":    "URL",
}

// Label turns a wire name into a display label:
//
//	bearerFormat     -> Bearer Format
//	openIdConnectUrl -> Open ID Connect URL
//	apiKey           -> API Key
func Label(name string) string {
	words := splitCamel(name)
	title := cases.Title(language.English)
	for i, w := range words {
		if fixed, ok := acronyms[strings.ToLower(w)]; ok {
			words[i] = fixed
			continue
		}
		words[i] = title.String(w)
	}
	return strings.Join(words, " ")
}

// splitCamel splits lowerCamelCase into words. Digits stay attached to the
// preceding word, so "oauth2" is one word.
func splitCamel(s string) []string {
	var words []string
	start := 0
	for i, r := range s {
		if i > start && unicode.IsUpper(r) {
			words = append(words, s[start:i])
			start = i
		}
	}
	if start < len(s) {
		words = append(words, s[start:])
	}
	return words
}
