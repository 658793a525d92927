package payload

import (
	"fmt"
	"strings"
)

// tokenColumns is the widest footprint of one rendered byte: "0xHH" plus the
// ", " separator.
const tokenColumns = 6

const hexDigits = "0123456789ABCDEF"

// Layout holds the formatting parameters for one array declaration. It is a
// plain value; formatting never mutates it.
type Layout struct {
	LeftIndent int // extra left margin, in spaces (namespace indentation)
	Indent     int // content indentation relative to the left margin
	Width      int // maximum line width in columns

	Prefix       string // filename-derived fragment, empty for a single input
	VariableName string // payload variable base name
	VariableType string // type spelling for the payload array
	SizeName     string // size variable base name
	SizeType     string // type spelling for the size variable
}

// valuesPerLine reports how many byte tokens fit on one wrapped line. The
// count is fixed for the whole array. A layout too narrow to hold even one
// token degrades to one token per line rather than producing undefined
// wrapping.
func (l Layout) valuesPerLine() int {
	n := (l.Width - l.Indent - l.LeftIndent + 1) / tokenColumns
	if n < 1 {
		n = 1
	}
	return n
}

// Record is one rendered array declaration together with the variable names
// it declares. It is written to the output stream and then discarded.
type Record struct {
	VariableName string
	SizeName     string
	Text         string
}

// FormatArray renders data as a C-family array declaration followed by a size
// constant. Every byte becomes an uppercase two-digit "0xHH" token, in input
// order, separated by ", " and wrapped every valuesPerLine tokens starting
// from the first. The empty payload still produces a valid declaration with a
// zero element count.
func FormatArray(data []byte, layout Layout) Record {
	leftPad := strings.Repeat(" ", layout.LeftIndent)
	contentPad := strings.Repeat(" ", layout.LeftIndent+layout.Indent)
	perLine := layout.valuesPerLine()

	variableName := layout.Prefix + layout.VariableName
	sizeName := layout.Prefix + layout.SizeName

	var b strings.Builder
	b.Grow(len(data)*tokenColumns + len(contentPad)*(len(data)/perLine+1) + 128)

	fmt.Fprintf(&b, "%s%s %s[%d] = {", leftPad, layout.VariableType, variableName, len(data))

	for i, v := range data {
		if i%perLine == 0 {
			b.WriteByte('\n')
			b.WriteString(contentPad)
		}
		b.WriteString("0x")
		b.WriteByte(hexDigits[v>>4])
		b.WriteByte(hexDigits[v&0x0F])
		if i < len(data)-1 {
			b.WriteString(", ")
		}
	}

	b.WriteByte('\n')
	fmt.Fprintf(&b, "%s};\n\n", leftPad)
	fmt.Fprintf(&b, "%s%s %s = %d;\n\n", leftPad, layout.SizeType, sizeName, len(data))

	return Record{
		VariableName: variableName,
		SizeName:     sizeName,
		Text:         b.String(),
	}
}
