// Package i18n provides request language resolution for web pages.
package i18n

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"
)

var supportedTags = []language.Tag{
	language.English,
	language.Spanish,
}

var tagMatcher = language.NewMatcher(supportedTags)

// Default returns the default language tag.
func Default() language.Tag {
	return supportedTags[0]
}

// ResolveTag determines the best supported language tag for the request.
func ResolveTag(r *http.Request) language.Tag {
	if r == nil {
		return Default()
	}
	accept := strings.TrimSpace(r.Header.Get("Accept-Language"))
	if accept == "" {
		return Default()
	}
	tags, _, err := language.ParseAcceptLanguage(accept)
	if err != nil || len(tags) == 0 {
		return Default()
	}
	_, index, _ := tagMatcher.Match(tags...)
	return supportedTags[index]
}

// ResolveLanguage returns the resolved tag as an HTML lang attribute value.
func ResolveLanguage(r *http.Request) string {
	return ResolveTag(r).String()
}
