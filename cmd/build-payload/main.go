// Command build-payload converts files, in raw binary form, to C99 or C++
// array declarations suitable for inclusion within a program. Payloads are
// compressed by default using the 4-byte length prefix plus zlib framing
// understood by qUncompress.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	flag "github.com/spf13/pflag"

	payload "github.com/inesonic/build-payload"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		color.New(color.FgHiRed, color.Bold).Fprintf(os.Stderr, "*** %v\n", err)
		os.Exit(1)
	}
}

// run parses args and generates output to stdout, or to the file named by
// --output. It returns nil when --help was requested.
func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("build-payload", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false

	opts := payload.DefaultOptions()
	var (
		output     string
		noCompress bool
	)

	fs.StringVarP(&output, "output", "o", "", "write generated source to `file` instead of stdout")
	fs.StringVarP(&opts.Description, "description", "d", "", "description `text` placed below the copyright message")
	fs.StringVarP(&opts.Copyright, "copyright", "c", opts.Copyright, "copyright `message` for the banner comment")
	fs.BoolVarP(&opts.NoCopyright, "no-copyright", "C", false, "remove the copyright message from the output")
	fs.IntVarP(&opts.Indent, "indentation", "i", opts.Indent, "indentation in `spaces`")
	fs.IntVarP(&opts.Width, "width", "w", opts.Width, "maximum line width in `columns`")
	fs.StringVarP(&opts.Namespace, "namespace", "n", "", "enclosing `namespace` for the generated declarations")
	fs.BoolVar(&opts.CloseScope, "close-scope", opts.CloseScope, "emit the closing brace for --namespace")
	fs.StringVarP(&opts.VariableName, "variable", "v", opts.VariableName, "payload variable `name`, or suffix with multiple inputs")
	fs.StringVarP(&opts.VariableType, "type", "t", opts.VariableType, "payload variable `type`")
	fs.StringVarP(&opts.SizeName, "size-variable", "V", opts.SizeName, "size variable `name`, or suffix with multiple inputs")
	fs.StringVarP(&opts.SizeType, "size-type", "T", opts.SizeType, "size variable `type`")
	fs.BoolVarP(&opts.Compress, "compress", "z", opts.Compress, "compress each payload before embedding it")
	fs.BoolVarP(&noCompress, "no-compress", "Z", false, "embed each payload verbatim")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			usage(stdout, fs)
			return nil
		}
		return err
	}
	if noCompress {
		opts.Compress = false
	}

	if output == "" {
		return payload.Build(stdout, fs.Args(), opts)
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("could not open output file %s: %w", output, err)
	}
	buildErr := payload.Build(f, fs.Args(), opts)
	if closeErr := f.Close(); buildErr == nil {
		buildErr = closeErr
	}
	return buildErr
}

func usage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintf(w, `Usage: build-payload [options] [ file [ file ... ] ]

Converts files, in raw binary form, to C99 or C++ array declarations suitable
for inclusion within a program. With no files the payload is read from
standard input. With multiple files each payload's variable names gain a
prefix derived from its filename.

Options:
%s`, fs.FlagUsages())
}
