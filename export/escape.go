package export

import (
	"math"
	"strconv"
	"strings"
)

var (
	xmlEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
	)
	htmlEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
	)
)

// escapeXML escapes text for XML character data and attribute values.
func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}

// escapeHTML escapes s for HTML and additionally breaks any "*/" so the
// result can sit inside a CSS comment.
func escapeHTML(s string) string {
	return strings.ReplaceAll(htmlEscaper.Replace(s), "*/", "*&#47;")
}

// cssValue strips the characters that could end a CSS declaration, block
// or comment from s.
func cssValue(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ';', ':', '{', '}', '<', '>', '"', '\'', '\\', '*', '\n', '\r':
			return -1
		}
		return r
	}, s)
}

// num formats v with at most two decimals and no trailing zeros.
func num(v float64) string {
	r := math.Round(v*100) / 100
	if r == 0 {
		r = 0 // drop negative zero
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
