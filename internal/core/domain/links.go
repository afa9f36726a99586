package domain

import (
	"net/url"
	"strings"
)

// Outbound link builders. The core only constructs these strings;
// opening them is the caller's business.

// TelLink builds a tel: URI from a phone number, stripping spaces so
// the dialer gets a clean number.
func TelLink(phone string) string {
	if phone == "" {
		return ""
	}
	return "tel:" + strings.ReplaceAll(phone, " ", "")
}

// MapLink builds a map-search URL from a free-text address.
func MapLink(address string) string {
	if address == "" {
		return ""
	}
	return "https://maps.google.com/?q=" + url.QueryEscape(address)
}
