package builderpool

import (
	"bytes"
	"fmt"
	"unicode"

	"github.com/chronos-tachyon/assert"
)

type trimType byte

const (
	trimHead trimType = 1 << iota
	trimTail
	trimBoth = trimHead | trimTail
)

// Trim removes all leading and trailing white space from buf, in place.
func Trim(buf *bytes.Buffer) *bytes.Buffer {
	trimSpace(buf, trimBoth)
	return buf
}

// TrimStart removes all leading white space from buf, in place.
func TrimStart(buf *bytes.Buffer) *bytes.Buffer {
	trimSpace(buf, trimHead)
	return buf
}

// TrimEnd removes all trailing white space from buf, in place.
func TrimEnd(buf *bytes.Buffer) *bytes.Buffer {
	trimSpace(buf, trimTail)
	return buf
}

// AppendFormatLine formats according to a format specifier, appends the
// result to buf, and terminates it with a newline.
func AppendFormatLine(buf *bytes.Buffer, format string, args ...interface{}) *bytes.Buffer {
	assert.NotNil(&buf)
	fmt.Fprintf(buf, format, args...)
	buf.WriteByte('\n')
	return buf
}

// trimSpace keeps the backing storage of buf; the surviving bytes are moved
// to the front and the buffer is truncated.
func trimSpace(buf *bytes.Buffer, tt trimType) {
	assert.NotNil(&buf)

	data := buf.Bytes()
	kept := data
	if (tt & trimTail) == trimTail {
		kept = bytes.TrimRightFunc(kept, unicode.IsSpace)
	}
	if (tt & trimHead) == trimHead {
		kept = bytes.TrimLeftFunc(kept, unicode.IsSpace)
	}
	if len(kept) == len(data) {
		return
	}

	n := copy(data, kept)
	buf.Truncate(n)
}
