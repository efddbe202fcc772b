package taglist

import (
	"regexp"
	"strings"
)

// Delimiter separates tags in raw input and in the serialized field.
const Delimiter = ","

var nonWordRun = regexp.MustCompile(`[^A-Za-z0-9_]+`)

// Normalize reduces raw user input to a tag: every run of characters outside
// [A-Za-z0-9_] becomes a single hyphen and hyphens at either end are
// dropped. The result is "" when nothing usable remains.
//
// Normalize is pure and idempotent.
func Normalize(raw string) string {
	return strings.Trim(nonWordRun.ReplaceAllString(raw, "-"), "-")
}

// Split breaks a raw value on the delimiter and returns the non-empty
// normalized segments in order.
func Split(raw string) []string {
	var out []string
	for _, seg := range strings.Split(raw, Delimiter) {
		if t := Normalize(seg); t != "" {
			out = append(out, t)
		}
	}
	return out
}
