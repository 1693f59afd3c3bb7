/*
Copyright © 2025 AppOptics
See AUTHORS and LICENSE for the license details and contributors.
*/
package client

import (
	"regexp"
)

const maxMetricNameLength = 255

var disallowedNameChars = regexp.MustCompile(`(([^A-Za-z0-9.:\-_]|[\[\]]|\s)+)`)

// SanitizeMetricName collapses every run of disallowed characters to a
// single dash and truncates the name to the API limit. The truncation
// works on characters, a multibyte name is never cut mid-rune.
func SanitizeMetricName(name string) string {
	ans := disallowedNameChars.ReplaceAllString(name, "-")
	if runes := []rune(ans); len(runes) > maxMetricNameLength {
		ans = string(runes[:maxMetricNameLength])
	}
	return ans
}

// SanitizeNoOp is the default behavior, some people want the error.
func SanitizeNoOp(name string) string {
	return name
}
