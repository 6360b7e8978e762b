package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	successColor = color.New(color.FgGreen)
	infoColor    = color.New(color.FgYellow)
	failureColor = color.New(color.FgRed)
)

func successf(w io.Writer, format string, args ...any) {
	successColor.Fprintf(w, format+"\n", args...)
}

func infof(w io.Writer, format string, args ...any) {
	infoColor.Fprintf(w, format+"\n", args...)
}

func warnf(w io.Writer, format string, args ...any) {
	infoColor.Fprintf(w, "warning: "+format+"\n", args...)
}

// fail reports err on w and returns it for cobra.
func fail(w io.Writer, err error) error {
	failureColor.Fprintf(w, "%s\n", fmt.Sprint(err))
	return err
}
