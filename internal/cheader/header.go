package cheader

import (
	"fmt"
	"os"
	"strconv"
)

// Constant is a size statement emitted after the array, e.g.
// "const int icon_data_width = 32;".
type Constant struct {
	Type  string
	Name  string
	Value int
}

// Header is a fully described generated header. It is rendered in one go and
// never modified afterwards.
type Header struct {
	// Comment is the provenance line, without the leading "// ".
	Comment string
	VarName string
	Data    []byte
	// TerminateLastLine adds a newline after a trailing partial line of
	// values.
	TerminateLastLine bool
	Constants         []Constant
}

// PixelHeader describes a flat RGBA pixel array of a size×size image.
func PixelHeader(source, varName string, pixels []byte, size int) Header {
	return Header{
		Comment: fmt.Sprintf("Generated from %s -> %dx%d", source, size, size),
		VarName: varName,
		Data:    pixels,
		Constants: []Constant{
			{Type: "const int", Name: varName + "_width", Value: size},
			{Type: "const int", Name: varName + "_height", Value: size},
		},
	}
}

// ICOHeader describes an embedded .ico file. The _len constant is taken
// from data, so it always matches the number of rendered values.
func ICOHeader(source, varName string, data []byte, size int) Header {
	return Header{
		Comment:           fmt.Sprintf("Generated from %s, %dx%d ICO", source, size, size),
		VarName:           varName,
		Data:              data,
		TerminateLastLine: true,
		Constants: []Constant{
			{Type: "const unsigned int", Name: varName + "_len", Value: len(data)},
		},
	}
}

// Render produces the header text: provenance comment, array declaration,
// literal body, closing brace, then the constants in order.
func (h Header) Render() []byte {
	// "255, " plus the per-line indent stays under 6 bytes a value.
	out := make([]byte, 0, len(h.Data)*6+256)
	out = append(out, "// "...)
	out = append(out, h.Comment...)
	out = append(out, '\n')
	out = append(out, "unsigned char "...)
	out = append(out, h.VarName...)
	out = append(out, "[] = {\n"...)
	out = AppendLiteral(out, h.Data, h.TerminateLastLine)
	out = append(out, "};\n"...)
	for _, c := range h.Constants {
		out = append(out, c.Type...)
		out = append(out, ' ')
		out = append(out, c.Name...)
		out = append(out, " = "...)
		out = strconv.AppendInt(out, int64(c.Value), 10)
		out = append(out, ";\n"...)
	}
	return out
}

// WriteFile renders h and replaces path with it. Existing content is
// overwritten, never merged.
func WriteFile(path string, h Header) (int, error) {
	b := h.Render()
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return 0, err
	}
	return len(b), nil
}
