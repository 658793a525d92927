package payload

import (
	"bytes"
	"regexp"
	"strconv"
	"strings"
	"testing"
)

var tokenPattern = regexp.MustCompile(`0x[0-9A-F]{2}`)

// arrayBytes extracts the byte values encoded by the hex tokens of a rendered
// declaration, in order.
func arrayBytes(t *testing.T, text string) []byte {
	t.Helper()
	tokens := tokenPattern.FindAllString(text, -1)
	out := make([]byte, 0, len(tokens))
	for _, token := range tokens {
		v, err := strconv.ParseUint(token[2:], 16, 8)
		if err != nil {
			t.Fatalf("bad token %q: %v", token, err)
		}
		out = append(out, byte(v))
	}
	return out
}

func defaultLayout() Layout {
	return Layout{
		Indent:       4,
		Width:        120,
		VariableName: "declarations",
		VariableType: "static const unsigned char",
		SizeName:     "declarationsSize",
		SizeType:     "static const unsigned long",
	}
}

func TestFormatArraySingleLine(t *testing.T) {
	record := FormatArray([]byte{0xDE, 0xAD, 0xBE, 0xEF}, defaultLayout())

	expected := "static const unsigned char declarations[4] = {\n" +
		"    0xDE, 0xAD, 0xBE, 0xEF\n" +
		"};\n" +
		"\n" +
		"static const unsigned long declarationsSize = 4;\n" +
		"\n"
	if record.Text != expected {
		t.Errorf("expected %q, got %q", expected, record.Text)
	}
	if record.VariableName != "declarations" {
		t.Errorf("variable name: expected %q, got %q", "declarations", record.VariableName)
	}
	if record.SizeName != "declarationsSize" {
		t.Errorf("size name: expected %q, got %q", "declarationsSize", record.SizeName)
	}
}

func TestFormatArrayWrapsEveryNTokens(t *testing.T) {
	// Width 27 with indentation 4 holds (27-4+1)/6 = 4 tokens per line.
	layout := defaultLayout()
	layout.Width = 27

	data := []byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09}
	record := FormatArray(data, layout)

	expected := "static const unsigned char declarations[10] = {\n" +
		"    0x00, 0x01, 0x02, 0x03, \n" +
		"    0x04, 0x05, 0x06, 0x07, \n" +
		"    0x08, 0x09\n" +
		"};\n" +
		"\n" +
		"static const unsigned long declarationsSize = 10;\n" +
		"\n"
	if record.Text != expected {
		t.Errorf("expected %q, got %q", expected, record.Text)
	}
}

func TestFormatArrayLineTokenCounts(t *testing.T) {
	layout := defaultLayout()
	layout.Width = 40 // (40-4+1)/6 = 6 tokens per line

	data := make([]byte, 20)
	for i := range data {
		data[i] = byte(i * 7)
	}
	record := FormatArray(data, layout)

	var counts []int
	for _, line := range strings.Split(record.Text, "\n") {
		if n := len(tokenPattern.FindAllString(line, -1)); n > 0 {
			counts = append(counts, n)
		}
	}
	// 20 tokens at 6 per line: every full line holds 6, the final line the rest.
	expected := []int{6, 6, 6, 2}
	if len(counts) != len(expected) {
		t.Fatalf("expected %d wrapped lines, got %d (%v)", len(expected), len(counts), counts)
	}
	for i, n := range expected {
		if counts[i] != n {
			t.Errorf("line %d: expected %d tokens, got %d", i, n, counts[i])
		}
	}
}

func TestFormatArrayEmpty(t *testing.T) {
	record := FormatArray(nil, defaultLayout())

	expected := "static const unsigned char declarations[0] = {\n" +
		"};\n" +
		"\n" +
		"static const unsigned long declarationsSize = 0;\n" +
		"\n"
	if record.Text != expected {
		t.Errorf("expected %q, got %q", expected, record.Text)
	}
}

func TestFormatArrayPrefix(t *testing.T) {
	layout := defaultLayout()
	layout.Prefix = "blob_bin"

	record := FormatArray([]byte{0x01}, layout)

	if record.VariableName != "blob_bindeclarations" {
		t.Errorf("variable name: expected %q, got %q", "blob_bindeclarations", record.VariableName)
	}
	if record.SizeName != "blob_bindeclarationsSize" {
		t.Errorf("size name: expected %q, got %q", "blob_bindeclarationsSize", record.SizeName)
	}
	if !strings.Contains(record.Text, "blob_bindeclarations[1] = {") {
		t.Errorf("declaration header missing prefixed name:\n%s", record.Text)
	}
	if !strings.Contains(record.Text, "blob_bindeclarationsSize = 1;") {
		t.Errorf("size declaration missing prefixed name:\n%s", record.Text)
	}
}

func TestFormatArrayTokenSequence(t *testing.T) {
	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i)
	}
	record := FormatArray(data, defaultLayout())

	if got := arrayBytes(t, record.Text); !bytes.Equal(got, data) {
		t.Errorf("token sequence does not match input: expected %d bytes, got %d", len(data), len(got))
	}
	if separators := strings.Count(record.Text, ", "); separators != len(data)-1 {
		t.Errorf("expected %d separators, got %d", len(data)-1, separators)
	}
}

func TestFormatArrayLeftIndent(t *testing.T) {
	layout := defaultLayout()
	layout.LeftIndent = 4

	record := FormatArray([]byte{0xAB}, layout)

	expected := "    static const unsigned char declarations[1] = {\n" +
		"        0xAB\n" +
		"    };\n" +
		"\n" +
		"    static const unsigned long declarationsSize = 1;\n" +
		"\n"
	if record.Text != expected {
		t.Errorf("expected %q, got %q", expected, record.Text)
	}
}

func TestFormatArrayNarrowLayout(t *testing.T) {
	// A width too small for even one token degrades to one token per line.
	layout := defaultLayout()
	layout.Width = 5

	record := FormatArray([]byte{0x01, 0x02, 0x03}, layout)

	expected := "static const unsigned char declarations[3] = {\n" +
		"    0x01, \n" +
		"    0x02, \n" +
		"    0x03\n" +
		"};\n" +
		"\n" +
		"static const unsigned long declarationsSize = 3;\n" +
		"\n"
	if record.Text != expected {
		t.Errorf("expected %q, got %q", expected, record.Text)
	}
}

func BenchmarkFormatArray(b *testing.B) {
	data := incompressible(64 * 1024)
	layout := defaultLayout()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		FormatArray(data, layout)
	}
}
