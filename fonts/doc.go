// Package fonts resolves a CSS-style font request (family, weight, size)
// to a gg text face.
//
// Lookup order:
//
//  1. font files registered with WithFontFile
//  2. installed system fonts, indexed with go-text/typesetting fontscan
//  3. the embedded Go fonts
//
// Within a family the face closest in weight wins. A system font is only
// used if it covers every rune of the sample text; otherwise any system
// font that covers the sample is preferred over the Go fonts, which lack
// CJK glyphs.
package fonts
