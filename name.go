package payload

import "strings"

// VariablePrefix derives an identifier fragment from an input path. Everything
// up to and including the last path separator is stripped; both '/' and '\'
// count as separators, and with a mixed-style path the later occurrence wins.
// Every '.' in the remaining basename becomes '_', so "assets/fonts.bin" maps
// to "fonts_bin".
//
// The prefix disambiguates variable names when several payloads share one
// output stream; with zero or one input the configured base names are used
// verbatim and this function is not consulted.
func VariablePrefix(path string) string {
	cut := strings.LastIndexByte(path, '/')
	if backslash := strings.LastIndexByte(path, '\\'); backslash > cut {
		cut = backslash
	}
	return strings.ReplaceAll(path[cut+1:], ".", "_")
}
