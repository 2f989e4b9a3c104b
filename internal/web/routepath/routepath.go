// Package routepath stores canonical HTTP paths for web modules.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root            = "/"
	Login           = "/login"
	Logout          = "/logout"
	Register        = "/register"
	Health          = "/up"
	ItemPrefix      = "/item/"
	ItemPattern     = ItemPrefix + "{locator}"
	FoundPrefix     = "/found/"
	FoundPattern    = FoundPrefix + "{locator}"
	Dashboard       = "/dashboard"
	DashboardPrefix = "/dashboard/"
	ItemsPrefix     = "/dashboard/items/"
	ItemsNew        = ItemsPrefix + "new"
	ItemsCreate     = ItemsPrefix
)

// Item returns the public item page route for a locator.
func Item(locator string) string {
	return ItemPrefix + escapeSegment(locator)
}

// Found returns the contact-the-owner route for a locator.
func Found(locator string) string {
	return FoundPrefix + escapeSegment(locator)
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
