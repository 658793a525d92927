// Package payload renders binary files as C-family source-level array
// declarations, optionally compressing each payload first using the 4-byte
// big-endian length prefix plus zlib stream framing understood by qUncompress.
// The generated text is deterministic: identical inputs and options always
// produce identical bytes.
package payload

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// DefaultCopyright is the copyright notice included in generated output when
// no custom message is supplied and the banner is not suppressed.
const DefaultCopyright = "Copyright 2020 Inesonic, LLC.\nAll rights reserved."

var (
	// ErrInvalidLayout reports width/indentation values that cannot produce
	// well-defined wrapping.
	ErrInvalidLayout = errors.New("invalid layout")

	// ErrPayloadTooLarge reports an input whose size does not fit the 4-byte
	// length prefix of the compressed-block framing.
	ErrPayloadTooLarge = errors.New("payload too large to frame")
)

// Options configures one Build invocation. Construct it with DefaultOptions
// and adjust fields; the zero value is not useful.
type Options struct {
	Description string // banner description, empty for none
	Copyright   string // banner copyright message
	NoCopyright bool   // suppress the copyright message

	Indent int // indentation in spaces
	Width  int // maximum line width in columns

	Namespace  string // enclosing namespace, empty for none
	CloseScope bool   // emit the matching closing brace for Namespace

	VariableName string // payload variable base name
	VariableType string // payload variable type spelling
	SizeName     string // size variable base name
	SizeType     string // size variable type spelling

	Compress bool // frame each payload as a compressed block

	// Stdin is read when no inputs are named. Nil means os.Stdin.
	Stdin io.Reader
}

// DefaultOptions returns the defaults: 4-space indentation, 120-column lines,
// compression enabled, the standard copyright message, no namespace, and the
// "declarations"/"declarationsSize" naming.
func DefaultOptions() Options {
	return Options{
		Copyright:    DefaultCopyright,
		Indent:       4,
		Width:        120,
		CloseScope:   true,
		VariableName: "declarations",
		VariableType: "static const unsigned char",
		SizeName:     "declarationsSize",
		SizeType:     "static const unsigned long",
		Compress:     true,
	}
}

// validate rejects width/indentation combinations that leave no room between
// the content indentation and the maximum width. The effective left margin is
// one extra indent level when a namespace is requested.
func (o Options) validate() error {
	if o.Indent < 1 {
		return fmt.Errorf("%w: indentation must be at least 1, got %d", ErrInvalidLayout, o.Indent)
	}
	left := 0
	if o.Namespace != "" {
		left = o.Indent
	}
	if o.Width <= o.Indent+left {
		return fmt.Errorf("%w: width %d does not exceed the %d columns of indentation",
			ErrInvalidLayout, o.Width, o.Indent+left)
	}
	return nil
}

// Build reads every input in order and writes the concatenated generated
// source to w: banner first, then the namespace opening when requested, then
// one array declaration per input.
//
// With no inputs the payload is read from opts.Stdin (os.Stdin when nil) and
// the configured base names are used verbatim. The same applies to a single
// named input. With several inputs each payload is preceded by a comment
// naming its source path and its variable names gain a filename-derived
// prefix.
//
// The walk over inputs short-circuits: the first read failure aborts with an
// error naming the failing path, and declarations already written for earlier
// inputs remain in the stream.
func Build(w io.Writer, inputs []string, opts Options) error {
	if err := opts.validate(); err != nil {
		return err
	}

	if banner := Banner(opts.Description, opts.Copyright, !opts.NoCopyright, opts.Width); banner != "" {
		if _, err := io.WriteString(w, banner); err != nil {
			return err
		}
	}

	layout := Layout{
		Indent:       opts.Indent,
		Width:        opts.Width,
		VariableName: opts.VariableName,
		VariableType: opts.VariableType,
		SizeName:     opts.SizeName,
		SizeType:     opts.SizeType,
	}
	if opts.Namespace != "" {
		if _, err := fmt.Fprintf(w, "namespace %s {\n", opts.Namespace); err != nil {
			return err
		}
		layout.LeftIndent = opts.Indent
	}

	switch len(inputs) {
	case 0:
		in := opts.Stdin
		if in == nil {
			in = os.Stdin
		}
		data, err := io.ReadAll(in)
		if err != nil {
			return fmt.Errorf("read standard input: %w", err)
		}
		if err := emit(w, data, layout, opts.Compress); err != nil {
			return err
		}

	case 1:
		data, err := os.ReadFile(inputs[0])
		if err != nil {
			return fmt.Errorf("could not open input file %s: %w", inputs[0], err)
		}
		if err := emit(w, data, layout, opts.Compress); err != nil {
			return err
		}

	default:
		for _, path := range inputs {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("could not open input file %s: %w", path, err)
			}
			if _, err := fmt.Fprintf(w, "// Contents of %s:\n", path); err != nil {
				return err
			}
			fileLayout := layout
			fileLayout.Prefix = VariablePrefix(path)
			if err := emit(w, data, fileLayout, opts.Compress); err != nil {
				return err
			}
		}
	}

	if opts.Namespace != "" && opts.CloseScope {
		if _, err := io.WriteString(w, "}\n"); err != nil {
			return err
		}
	}

	return nil
}

// emit renders one payload, compressing it first when requested.
func emit(w io.Writer, data []byte, layout Layout, compress bool) error {
	if compress {
		if uint64(len(data)) > MaxPayloadSize {
			return fmt.Errorf("%w: %d bytes", ErrPayloadTooLarge, len(data))
		}
		data = Compress(data)
	}
	_, err := io.WriteString(w, FormatArray(data, layout).Text)
	return err
}
