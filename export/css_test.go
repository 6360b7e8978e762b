package export

import (
	"io"
	"strings"
	"testing"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdewolff/parse/v2"
	tcss "github.com/tdewolff/parse/v2/css"

	cloudfont "github.com/clemente0731/cloud-font-generator"
)

func declarations(t *testing.T, sheet *css.Stylesheet, selector string) map[string]string {
	t.Helper()
	for _, r := range sheet.Rules {
		for _, s := range r.Selectors {
			if s == selector {
				out := make(map[string]string, len(r.Declarations))
				for _, d := range r.Declarations {
					out[d.Property] = d.Value
				}
				return out
			}
		}
	}
	t.Fatalf("selector %q not found", selector)
	return nil
}

// comments returns the comments of doc in order.
func comments(t *testing.T, doc string) []string {
	t.Helper()
	var out []string
	p := tcss.NewParser(parse.NewInputString(doc), false)
	for {
		gt, _, data := p.Next()
		switch gt {
		case tcss.ErrorGrammar:
			require.ErrorIs(t, p.Err(), io.EOF)
			return out
		case tcss.CommentGrammar:
			out = append(out, string(data))
		}
	}
}

func TestCSSDefault(t *testing.T) {
	doc := string(CSS(cloudfont.DefaultConfig()))

	sheet, err := parser.Parse(doc)
	require.NoError(t, err)

	base := declarations(t, sheet, ".cloud-text")
	assert.Equal(t, "20px", base["padding"])
	assert.Equal(t, "Arial", base["font-family"])
	assert.Equal(t, "48px", base["font-size"])
	assert.Equal(t, "400", base["font-weight"])
	assert.Equal(t, "#333333", base["color"])
	assert.Equal(t, "#FFFFFF", base["background-color"])

	before := declarations(t, sheet, ".cloud-text::before")
	assert.Equal(t, "attr(data-text)", before["content"])
	shadows := strings.Split(before["text-shadow"], ", ")
	assert.Len(t, shadows, 30)
	assert.Equal(t, "6.4px 0.0px 8.0px #F0F0F0", shadows[0])
	assert.Equal(t, "1.0px 0.0px 1.6px #FFFFFF", shadows[20])

	assert.NotContains(t, doc, "::after")

	cs := comments(t, doc)
	require.Len(t, cs, 3)
	assert.Contains(t, cs[2], `data-text="云朵字体"`)
}

func TestCSSTransparentAndUnderline(t *testing.T) {
	cfg := cloudfont.DefaultConfig().WithLayer(cloudfont.LayerSpec{
		Role: cloudfont.RoleInner, Color: "#123456", Underline: true,
	})
	cfg.TransparentBackground = true
	cfg.Text.FontSize = 150

	sheet, err := parser.Parse(string(CSS(cfg)))
	require.NoError(t, err)

	assert.Equal(t, "transparent", declarations(t, sheet, ".cloud-text")["background-color"])

	after := declarations(t, sheet, ".cloud-text::after")
	assert.Equal(t, "15px", after["bottom"])
	assert.Equal(t, num(100.0/24+50.0/40)+"px", after["height"])
	assert.Equal(t, "#123456", after["background-color"])
	assert.Equal(t, "3.13px", after["border-radius"])
}

func TestCSSEscaping(t *testing.T) {
	cfg := cloudfont.DefaultConfig()
	cfg.Text.Content = `*/ body { display: none } /* <script>"x"</script>`
	cfg.Text.FontFamily = `Arial; } body { color: red`
	doc := string(CSS(cfg))

	sheet, err := parser.Parse(doc)
	require.NoError(t, err)
	for _, r := range sheet.Rules {
		for _, s := range r.Selectors {
			assert.True(t, strings.HasPrefix(s, ".cloud-text"), "unexpected selector %q", s)
		}
	}
	assert.Equal(t, "Arial  body  color red", declarations(t, sheet, ".cloud-text")["font-family"])

	cs := comments(t, doc)
	require.Len(t, cs, 3)
	usage := cs[2]
	assert.True(t, strings.HasSuffix(usage, "*/"))
	assert.Equal(t, 1, strings.Count(usage, "*/"))
	assert.Contains(t, usage, "&lt;script&gt;&quot;x&quot;&lt;/script&gt;")
}
