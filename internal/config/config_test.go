package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	opts := Default()
	if !opts.MungeIdentifiers {
		t.Error("munging should be on by default")
	}
	if !opts.PreserveStrings {
		t.Error("string preservation should be on by default")
	}
	if opts.LineBreakColumn >= 0 {
		t.Error("line breaking should be off by default")
	}
	if opts.Charset != "utf-8" {
		t.Errorf("default charset = %q", opts.Charset)
	}
}

func TestOptionsDigest(t *testing.T) {
	a := Default()
	b := Default()
	if a.Digest() != b.Digest() {
		t.Error("equal options must share a digest")
	}
	b.LineBreakColumn = 80
	if a.Digest() == b.Digest() {
		t.Error("changed options must change the digest")
	}
}

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestManifestApply(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[minify]\nmunge = false\nline-break = 72\n")

	opts, found, err := LoadOptions(dir)
	if err != nil {
		t.Fatal(err)
	}
	if !found {
		t.Fatal("manifest not found")
	}
	if opts.MungeIdentifiers {
		t.Error("munge = false not applied")
	}
	if opts.LineBreakColumn != 72 {
		t.Errorf("LineBreakColumn = %d", opts.LineBreakColumn)
	}
	// keys absent from the file keep their defaults
	if !opts.PreserveStrings {
		t.Error("preserve-strings changed without being set")
	}
	if opts.Charset != "utf-8" {
		t.Errorf("charset changed without being set: %q", opts.Charset)
	}
}

func TestManifestWalkUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[minify]\nmunge = false\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	path, ok, err := FindManifest(nested)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("walk-up did not find the manifest")
	}
	if filepath.Dir(path) != root {
		t.Errorf("found %q, want it in %q", path, root)
	}
}

func TestManifestRejectsUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "[minify]\nmunge = false\ntypo-key = 1\n")

	if _, err := LoadManifest(path); err == nil {
		t.Error("expected an error for an unknown key")
	}
}

func TestManifestRejectsUnknownCharset(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[minify]\ncharset = \"klingon-8\"\n")

	_, _, err := LoadOptions(dir)
	if err == nil {
		t.Fatal("expected an error")
	}
}

func TestLookupCharset(t *testing.T) {
	for _, name := range []string{"", "utf-8", "UTF-8", "utf8"} {
		enc, err := LookupCharset(name)
		if err != nil {
			t.Errorf("%q: %v", name, err)
		}
		if enc != nil {
			t.Errorf("%q should be a passthrough", name)
		}
	}

	enc, err := LookupCharset("iso-8859-1")
	if err != nil {
		t.Fatal(err)
	}
	if enc == nil {
		t.Fatal("expected a real encoding")
	}

	if _, err := LookupCharset("no-such-charset"); err == nil {
		t.Error("expected ErrUnknownCharset")
	}
}

func TestCharsetRoundTrip(t *testing.T) {
	latin := []byte{'c', 'a', 'f', 0xe9} // "café" in iso-8859-1
	utf8, err := DecodeBytes("iso-8859-1", latin)
	if err != nil {
		t.Fatal(err)
	}
	if string(utf8) != "café" {
		t.Errorf("decoded %q", utf8)
	}
	back, err := EncodeBytes("iso-8859-1", utf8)
	if err != nil {
		t.Fatal(err)
	}
	if string(back) != string(latin) {
		t.Errorf("round trip %v != %v", back, latin)
	}
}

func TestWriteDefaultManifest(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteDefaultManifest(dir)
	if err != nil {
		t.Fatal(err)
	}
	manifest, err := LoadManifest(path)
	if err != nil {
		t.Fatal(err)
	}
	opts, err := manifest.Apply(Default())
	if err != nil {
		t.Fatal(err)
	}
	if opts != Default() {
		t.Errorf("written defaults round-trip to %+v", opts)
	}

	if _, err := WriteDefaultManifest(dir); err == nil {
		t.Error("second write should fail")
	}
}
