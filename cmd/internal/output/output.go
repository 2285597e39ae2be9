// Package output prints command results according to the resolved configuration.
package output

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/text/message"

	"github.com/InternatManhole/trains/internal/config"
	"github.com/InternatManhole/trains/internal/locale"
	"github.com/InternatManhole/trains/internal/store"
	"github.com/InternatManhole/trains/internal/table"
	"github.com/InternatManhole/trains/internal/train"
)

var noticeColor = color.New(color.FgYellow)

// Printer returns the message printer for the configured language.
func Printer(cmd *cobra.Command) (*message.Printer, error) {
	return locale.NewPrinter(config.FromContext(cmd.Context()).Lang)
}

// Notice prints a user-facing, non-fatal message on the command's output.
func Notice(cmd *cobra.Command, text string) {
	noticeColor.Fprintln(cmd.OutOrStdout(), text)
}

// Records prints records as a table, or as JSON when configured so.
func Records(cmd *cobra.Command, records []train.Record) error {
	if config.FromContext(cmd.Context()).JSON {
		return store.Encode(cmd.OutOrStdout(), records)
	}

	p, err := Printer(cmd)
	if err != nil {
		return err
	}
	return table.New(p).Render(cmd.OutOrStdout(), records)
}
