package cheader

import (
	"os"
	"path/filepath"
	"strconv"
)

const (
	// DefaultGuard is the include guard of a script bundle.
	DefaultGuard = "PRELOADED_SCRIPTS_H"
	// DefaultPrefix names the arrays: preloaded_script_1, preloaded_script_2, ...
	DefaultPrefix = "preloaded_script"
)

// Script is one file destined for a bundle.
type Script struct {
	Name string
	Data []byte
}

// BundleOptions controls naming in a rendered bundle. Empty fields fall back
// to the defaults.
type BundleOptions struct {
	Guard  string
	Prefix string
}

func (o BundleOptions) withDefaults() BundleOptions {
	if o.Guard == "" {
		o.Guard = DefaultGuard
	}
	if o.Prefix == "" {
		o.Prefix = DefaultPrefix
	}
	return o
}

// ReadScripts loads paths in order. Names are the base names of the paths.
func ReadScripts(paths []string) ([]Script, error) {
	out := make([]Script, 0, len(paths))
	for _, p := range paths {
		b, err := os.ReadFile(p)
		if err != nil {
			return nil, err
		}
		out = append(out, Script{Name: filepath.Base(p), Data: b})
	}
	return out, nil
}

// RenderBundle emits one header holding a byte array and a length per script,
// numbered from 1 in the given order, inside an include guard.
func RenderBundle(scripts []Script, opts BundleOptions) []byte {
	opts = opts.withDefaults()
	var out []byte
	out = append(out, "#ifndef "+opts.Guard+"\n"...)
	out = append(out, "#define "+opts.Guard+"\n\n"...)
	for i, s := range scripts {
		name := opts.Prefix + "_" + strconv.Itoa(i+1)
		out = append(out, "// From "+s.Name+"\n"...)
		out = append(out, "const unsigned char "+name+"[] = { "...)
		for j, b := range s.Data {
			if j > 0 {
				out = append(out, ", "...)
			}
			out = strconv.AppendUint(out, uint64(b), 10)
		}
		out = append(out, " };\n"...)
		out = append(out, "const size_t "+name+"_len = sizeof("+name+");\n\n"...)
	}
	out = append(out, "#endif // "+opts.Guard+"\n"...)
	return out
}

// WriteBundle reads paths and writes their bundle to out, replacing it.
func WriteBundle(out string, paths []string, opts BundleOptions) (int, error) {
	scripts, err := ReadScripts(paths)
	if err != nil {
		return 0, err
	}
	b := RenderBundle(scripts, opts)
	if err := os.WriteFile(out, b, 0o644); err != nil {
		return 0, err
	}
	return len(b), nil
}
