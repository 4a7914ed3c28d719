// Package cli wires the tabcat command: it reads delimiter-separated text
// with a selected dialect and re-emits every row through one of the output
// formats.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/WickedyMike/ai-benchmarking-stt/pkg/output"
	"github.com/WickedyMike/ai-benchmarking-stt/pkg/tabular"
)

type options struct {
	dialect string
	format  string
	trace   bool
}

// NewRootCommand builds the tabcat root command.
func NewRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "tabcat [file]",
		Short: "read delimiter-separated text and re-emit each row",
		Long: `tabcat reads delimiter-separated text from a file (or stdin when no file
or "-" is given), parses it with the selected dialect and emits one
(title, value) result per row in the selected output format.

Malformed input stops the run with the exact line, column and offset of
the offending character.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			return run(in, cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.dialect, "dialect", "d", "default",
		"input dialect, one of: "+strings.Join(tabular.DialectNames(), ", "))
	cmd.Flags().StringVarP(&opts.format, "output", "o", "rst",
		"output format, one of: rst, markdown, json, csv")
	cmd.Flags().BoolVar(&opts.trace, "trace", false,
		"echo each scanned character with its parser state to stderr")

	return cmd
}

func run(in io.Reader, out, errw io.Writer, opts *options) error {
	reader, err := tabular.NewReaderNamed(in, opts.dialect)
	if err != nil {
		return err
	}
	if opts.trace {
		reader.SetTrace(tabular.DebugTrace(errw))
	}

	emitter, closeEmitter, err := newEmitter(opts.format, out)
	if err != nil {
		return err
	}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		title := fmt.Sprintf("line %d", row.Line)
		if err := emitter.Result(title, strings.Join(row.Fields, "\t")); err != nil {
			return err
		}
	}
	return closeEmitter()
}

// newEmitter maps a format name to an emitter plus the close step it needs.
func newEmitter(format string, w io.Writer) (output.Emitter, func() error, error) {
	noClose := func() error { return nil }
	switch format {
	case "rst":
		return output.NewReStructuredText(w), noClose, nil
	case "markdown", "md":
		return output.NewMarkdown(w), noClose, nil
	case "json":
		j := output.NewJSON(w)
		if err := j.Open(); err != nil {
			return nil, nil, err
		}
		return j, j.Close, nil
	case "csv":
		return output.NewCSV(w), noClose, nil
	default:
		return nil, nil, fmt.Errorf("unknown output format %q", format)
	}
}
