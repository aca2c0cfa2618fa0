// Package gold implements golden files.
package gold

import (
	"bytes"
	"encoding/hex"
	"flag"
	"os"
	"path"
	"path/filepath"
	"testing"
)

const defaultDir = "_golden"

// Update reports whether golden files update is requested.
//
// Call Init() in TestMain to propagate.
var Update bool

// Init should be called in TestMain.
func Init() {
	flag.BoolVar(&Update, "update", false, "update golden files")
}

// Path returns path to golden file.
func Path(elems ...string) string {
	return filepath.Join(
		append([]string{defaultDir}, elems...)...,
	)
}

// ReadFile reads golden file.
func ReadFile(t testing.TB, elems ...string) []byte {
	t.Helper()

	p := Path(elems...)
	data, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("golden file %s: %+v", path.Join(elems...), err)
	}

	return data
}

func writeFile(t testing.TB, data []byte, elems ...string) {
	t.Helper()

	p := Path(elems...)
	if err := os.MkdirAll(filepath.Dir(p), 0o750); err != nil {
		t.Fatalf("golden dir: %+v", err)
	}
	if err := os.WriteFile(p, data, 0o600); err != nil {
		t.Fatalf("golden file %s: %+v", path.Join(elems...), err)
	}
}

func name(t testing.TB, elems ...string) []string {
	if len(elems) == 0 {
		elems = []string{filepath.FromSlash(t.Name())}
	}
	return elems
}

// Bytes checks data against the golden file.
func Bytes(t testing.TB, data []byte, elems ...string) {
	t.Helper()

	elems = name(t, elems...)
	if Update {
		writeFile(t, data, elems...)
	}
	expected := ReadFile(t, elems...)
	if !bytes.Equal(expected, data) {
		t.Errorf("golden file %s mismatch:\ngot:\n%swant:\n%s",
			path.Join(elems...), hex.Dump(data), hex.Dump(expected),
		)
	}
}

// Str checks s against the golden file.
func Str(t testing.TB, s string, elems ...string) {
	t.Helper()

	elems = name(t, elems...)
	if Update {
		writeFile(t, []byte(s), elems...)
	}
	if expected := string(ReadFile(t, elems...)); expected != s {
		t.Errorf("golden file %s mismatch:\ngot:\n%s\nwant:\n%s",
			path.Join(elems...), s, expected,
		)
	}
}
