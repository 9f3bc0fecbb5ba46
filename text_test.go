package builderpool

import (
	"bytes"
	"strings"
	"testing"
	"unicode"

	"pgregory.net/rapid"
)

func TestTrim(t *testing.T) {
	type testRow struct {
		input     string
		expectAll string
		expectHd  string
		expectTl  string
	}

	testData := []testRow{
		{"  Hello, World!  ", "Hello, World!", "Hello, World!  ", "  Hello, World!"},
		{"\r\nHi!\r\n", "Hi!", "Hi!\r\n", "\r\nHi!"},
		{"      \r\n      ", "", "", ""},
		{"      \t      ", "", "", ""},
		{"      ", "", "", ""},
		{"", "", "", ""},
		{"\u00a0wide\u2003", "wide", "wide\u2003", "\u00a0wide"},
	}

	for _, row := range testData {
		fns := []struct {
			name   string
			fn     func(*bytes.Buffer) *bytes.Buffer
			expect string
		}{
			{"Trim", Trim, row.expectAll},
			{"TrimStart", TrimStart, row.expectHd},
			{"TrimEnd", TrimEnd, row.expectTl},
		}
		for _, f := range fns {
			buf := bytes.NewBufferString(row.input)
			if actual := f.fn(buf).String(); actual != f.expect {
				t.Errorf("%s(%q) returned wrong result:\n\texpect: %q\n\tactual: %q", f.name, row.input, f.expect, actual)
			}
		}
	}
}

func TestTrim_KeepsStorage(t *testing.T) {
	buf := bytes.NewBuffer(make([]byte, 0, 64))
	buf.WriteString("   padded   ")
	before := buf.Cap()

	Trim(buf)
	if buf.String() != "padded" {
		t.Errorf("Trim returned wrong result: %q", buf.String())
	}
	if buf.Cap() != before {
		t.Errorf("Trim changed capacity:\n\texpect: %d\n\tactual: %d", before, buf.Cap())
	}
}

func TestTrim_MatchesStrings(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		input := rapid.String().Draw(t, "input")

		if actual, expect := Trim(bytes.NewBufferString(input)).String(), strings.TrimFunc(input, unicode.IsSpace); actual != expect {
			t.Fatalf("Trim(%q) = %q, expected %q", input, actual, expect)
		}
		if actual, expect := TrimStart(bytes.NewBufferString(input)).String(), strings.TrimLeftFunc(input, unicode.IsSpace); actual != expect {
			t.Fatalf("TrimStart(%q) = %q, expected %q", input, actual, expect)
		}
		if actual, expect := TrimEnd(bytes.NewBufferString(input)).String(), strings.TrimRightFunc(input, unicode.IsSpace); actual != expect {
			t.Fatalf("TrimEnd(%q) = %q, expected %q", input, actual, expect)
		}
	})
}

func TestAppendFormatLine(t *testing.T) {
	type testRow struct {
		prefix string
		format string
		args   []interface{}
		expect string
	}

	testData := []testRow{
		{"Hello", ", Foo %s", []interface{}{"Bar"}, "Hello, Foo Bar\n"},
		{"Hello", ", Foo %s Baz %s", []interface{}{"Bar", "Foo"}, "Hello, Foo Bar Baz Foo\n"},
		{"", "%d, %d, %v, %g", []interface{}{1, int64(2), uint8(3), 4.0}, "1, 2, 3, 4\n"},
		{"", "no args", nil, "no args\n"},
	}

	for _, row := range testData {
		buf := bytes.NewBufferString(row.prefix)
		if actual := AppendFormatLine(buf, row.format, row.args...).String(); actual != row.expect {
			t.Errorf("AppendFormatLine(%q) returned wrong result:\n\texpect: %q\n\tactual: %q", row.format, row.expect, actual)
		}
	}
}
