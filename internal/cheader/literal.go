// Package cheader renders byte sequences as C array initializers and wraps
// them in small generated headers.
package cheader

import "strconv"

const (
	// ValuesPerLine is how many byte values go on one initializer line.
	ValuesPerLine = 12
	// Indent prefixes every initializer line.
	Indent = "    "
)

// AppendLiteral appends data to dst as decimal values, each followed by
// ", ", ValuesPerLine to a line. Every full line ends with a newline; a
// trailing partial line is only terminated when terminate is set.
func AppendLiteral(dst, data []byte, terminate bool) []byte {
	for i, b := range data {
		if i%ValuesPerLine == 0 {
			dst = append(dst, Indent...)
		}
		dst = strconv.AppendUint(dst, uint64(b), 10)
		dst = append(dst, ", "...)
		if i%ValuesPerLine == ValuesPerLine-1 {
			dst = append(dst, '\n')
		}
	}
	if terminate && len(data)%ValuesPerLine != 0 {
		dst = append(dst, '\n')
	}
	return dst
}

// Literal is AppendLiteral into a fresh string.
func Literal(data []byte, terminate bool) string {
	return string(AppendLiteral(nil, data, terminate))
}
