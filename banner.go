package payload

import "strings"

// Banner renders the block comment emitted ahead of the generated
// declarations. The shape is fixed:
//
//	/*-*-c++-*-****...   top row padded with '*' through column width
//	* <copyright line>   one row per copyright line, when included
//	****...//**          separator row, only when both sections are present
//	* \file
//	*
//	* <description line> one row per description line
//	****.../             closing row, width columns in total
//
// Rows are column-counted to width; the source lines themselves are copied
// verbatim, never re-wrapped. When the copyright is suppressed and the
// description is empty no banner is produced at all.
func Banner(description, copyright string, includeCopyright bool, width int) string {
	if !includeCopyright && description == "" {
		return ""
	}

	var b strings.Builder

	b.WriteString("/*-*-c++-*-*")
	b.WriteString(stars(width - 12))
	b.WriteByte('\n')

	if includeCopyright {
		for _, line := range bannerLines(copyright) {
			b.WriteString("* ")
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}

	if includeCopyright && description != "" {
		b.WriteString(stars(width - 4))
		b.WriteString("//**\n")
	}

	if description != "" {
		b.WriteString("* \\file\n*\n")
		for _, line := range bannerLines(description) {
			b.WriteString("* ")
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}

	b.WriteString(stars(width - 1))
	b.WriteString("/\n\n")

	return b.String()
}

func stars(n int) string {
	if n < 0 {
		n = 0
	}
	return strings.Repeat("*", n)
}

// bannerLines splits a message on newlines. An empty message has no lines and
// a single trailing newline does not create an empty final line.
func bannerLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
