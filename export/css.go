package export

import (
	"fmt"
	"math"
	"strings"

	cloudfont "github.com/clemente0731/cloud-font-generator"
	"github.com/clemente0731/cloud-font-generator/shadow"
)

// CSS renders cfg as a stylesheet for a ".cloud-text" element. The cloud
// is approximated by a ring of text-shadows on a ::before pseudo-element
// that repeats the text from its data-text attribute.
func CSS(cfg cloudfont.RenderConfig) []byte {
	fs := cfg.Text.FontSize
	inner := cfg.Inner()
	bg := "#FFFFFF"
	if cfg.TransparentBackground {
		bg = "transparent"
	}

	var b strings.Builder
	b.WriteString("/* Cloud Text CSS */\n")
	fmt.Fprintf(&b, `.cloud-text {
  position: relative;
  display: inline-block;
  padding: %spx;
  font-family: %s;
  font-size: %spx;
  font-weight: %d;
  color: %s;
  text-align: center;
  line-height: 1.2;
  background-color: %s;
}
`, num(SVGPadding(cfg.Outer().CloudStrength)), cssValue(cfg.Text.FontFamily), num(fs),
		int(cfg.Text.FontWeight), cssValue(inner.Color), bg)

	fmt.Fprintf(&b, `
.cloud-text::before {
  content: attr(data-text);
  position: absolute;
  top: 0;
  left: 0;
  right: 0;
  bottom: 0;
  z-index: -1;
  text-shadow: %s;
}
`, cssValue(shadow.CSS(shadow.Approximate(cfg))))

	if inner.Underline {
		fmt.Fprintf(&b, `
.cloud-text::after {
  content: '';
  position: absolute;
  left: 50%%;
  bottom: %spx;
  width: 90%%;
  height: %spx;
  background-color: %s;
  transform: translateX(-50%%);
  border-radius: %spx;
}
`, num(fs*0.1), num(cloudfont.UnderlineWidth(fs)), cssValue(inner.Color), num(math.Max(1, fs/48)))
	}

	text := escapeHTML(cfg.Text.Content)
	fmt.Fprintf(&b, `
/* HTML Usage Example */
/*
<div class="cloud-text" data-text="%s">
  %s
</div>
*/
`, text, text)
	return []byte(b.String())
}
