package util

import (
	"regexp"
	"strings"
)

// MetadataField selects which ruleset applies when cleaning a now-playing
// field.
type MetadataField string

const (
	FieldArtist MetadataField = "artist"
	FieldTrack  MetadataField = "track"
)

type metadataRule struct {
	pattern *regexp.Regexp
	replace string
}

// Streaming-store junk commonly embedded in track titles: edition markers,
// remaster suffixes and bracketed feature credits.
var trackRules = []metadataRule{
	{regexp.MustCompile(`(?i)\s*[\[(](?:explicit|clean)[^)\]]*[)\]]`), ""},
	{regexp.MustCompile(`(?i)\s*[\[(][^)\]]*\bre-?master(?:ed)?\b[^)\]]*[)\]]`), ""},
	{regexp.MustCompile(`(?i)\s*[\[(][^)\]]*\b(?:album|single|deluxe|original mix) version\b[^)\]]*[)\]]`), ""},
	{regexp.MustCompile(`(?i)\s*[\[(][^)\]]*\bbonus track\b[^)\]]*[)\]]`), ""},
	{regexp.MustCompile(`(?i)\s*[\[(][^)\]]*\bamazon (?:music )?exclusive\b[^)\]]*[)\]]`), ""},
	{regexp.MustCompile(`(?i)\s*[\[(]feat[.\s][^)\]]*[)\]]`), ""},
	{regexp.MustCompile(`(?i)\s+feat[.\s].*$`), ""},
	{regexp.MustCompile(`(?i)\s*-\s*(?:\d{4}\s+)?re-?master(?:ed)?(?:\s+\d{4})?$`), ""},
}

// Artist fields only carry feature credits.
var artistRules = []metadataRule{
	{regexp.MustCompile(`(?i)\s*[\[(]feat[.\s][^)\]]*[)\]]`), ""},
	{regexp.MustCompile(`(?i)\s+feat[.\s].*$`), ""},
}

// CleanMetadataField strips streaming-store noise from a now-playing field
// and trims the result. Unknown fields pass through untouched.
func CleanMetadataField(field MetadataField, value string) string {
	var rules []metadataRule
	switch field {
	case FieldArtist:
		rules = artistRules
	case FieldTrack:
		rules = trackRules
	default:
		return value
	}

	cleaned := value
	for _, rule := range rules {
		cleaned = rule.pattern.ReplaceAllString(cleaned, rule.replace)
	}
	return strings.TrimSpace(spaceRun.ReplaceAllString(cleaned, " "))
}

var spaceRun = regexp.MustCompile(`\s+`)
