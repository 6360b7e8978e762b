// Command cloudfont renders text with a cloud-shaped outline and exports
// it as PNG, SVG, CSS or JSON.
//
// Usage:
//
//	cloudfont export --text "Hello" --format svg --out hello.svg
//	cloudfont export --config preset.toml --set cloudStrength=80 --format png
//	cloudfont copy --format css
//	cloudfont config --text "Hi" settings.yaml
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/clemente0731/cloud-font-generator/clipboard"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd(clipboard.NewSystem()).ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
