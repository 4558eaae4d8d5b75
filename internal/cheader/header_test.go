package cheader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPixelHeaderRender(t *testing.T) {
	h := PixelHeader("in.ico", "icon_data", []byte{1, 2, 3, 4}, 32)
	want := "// Generated from in.ico -> 32x32\n" +
		"unsigned char icon_data[] = {\n" +
		"    1, 2, 3, 4, };\n" +
		"const int icon_data_width = 32;\n" +
		"const int icon_data_height = 32;\n"
	if got := string(h.Render()); got != want {
		t.Fatalf("Render =\n%s\nwant\n%s", got, want)
	}
}

func TestICOHeaderRender(t *testing.T) {
	h := ICOHeader("in.png", "icon_ico", []byte{0, 0, 1, 0, 1}, 32)
	want := "// Generated from in.png, 32x32 ICO\n" +
		"unsigned char icon_ico[] = {\n" +
		"    0, 0, 1, 0, 1, \n" +
		"};\n" +
		"const unsigned int icon_ico_len = 5;\n"
	if got := string(h.Render()); got != want {
		t.Fatalf("Render =\n%s\nwant\n%s", got, want)
	}
}

func TestICOHeaderLenMatchesValues(t *testing.T) {
	data := make([]byte, 1234)
	h := ICOHeader("x.ico", "blob", data, 32)
	text := string(h.Render())
	start := strings.Index(text, "{\n") + 2
	end := strings.Index(text, "};")
	if got := len(parseLiteral(t, text[start:end])); got != 1234 {
		t.Fatalf("rendered %d values, want 1234", got)
	}
	if !strings.Contains(text, "const unsigned int blob_len = 1234;\n") {
		t.Fatalf("missing length constant:\n%s", text[end:])
	}
}

func TestWriteFileOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.h")
	if err := os.WriteFile(path, []byte(strings.Repeat("old content\n", 1000)), 0o644); err != nil {
		t.Fatal(err)
	}
	h := PixelHeader("a.ico", "v", []byte{9}, 32)
	n, err := WriteFile(path, h)
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != string(h.Render()) || n != len(b) {
		t.Fatalf("file content not replaced:\n%s", b)
	}
}

func TestWriteFileBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.h")
	if _, err := WriteFile(path, PixelHeader("a", "v", nil, 32)); err == nil {
		t.Fatal("expected error writing into a missing directory")
	}
}
