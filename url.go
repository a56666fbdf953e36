package markup

import "regexp"

var urlPattern = regexp.MustCompile(`((https?://.)?(www\.)?[-a-zA-Z0-9@:%._+~#=]{2,256}\.[a-z]{2,6}\b([-a-zA-Z0-9@:%_+.~#?&/=]*))`)

// ExtractURL returns the first substring of text that looks like a URL, or
// the empty string. The match is returned verbatim: no scheme is inferred and
// nothing is decoded.
func ExtractURL(text string) string {
	return urlPattern.FindString(text)
}
