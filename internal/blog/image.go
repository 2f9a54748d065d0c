package blog

import "regexp"

// leadImagePattern matches the src attribute of the first img tag. Only
// double-quoted values are recognised.
var leadImagePattern = regexp.MustCompile(`<img[^>]+src="([^">]+)"`)

// ExtractLeadImage returns the src of the first <img> found in an HTML
// fragment, or "" when there is none. It is a pattern match, not an HTML parse.
func ExtractLeadImage(content string) string {
	m := leadImagePattern.FindStringSubmatch(content)
	if m == nil {
		return ""
	}
	return m[1]
}
