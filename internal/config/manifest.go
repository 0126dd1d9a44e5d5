package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ManifestName is the per-project configuration file looked up from the
// working directory toward the filesystem root.
const ManifestName = "juicer.toml"

type manifestFile struct {
	Minify struct {
		Munge           bool   `toml:"munge"`
		PreserveStrings bool   `toml:"preserve-strings"`
		LineBreak       int    `toml:"line-break"`
		Charset         string `toml:"charset"`
	} `toml:"minify"`
}

// Manifest carries the settings read from juicer.toml plus enough metadata to
// tell a value that was set from one that was merely zero.
type Manifest struct {
	Path string

	meta toml.MetaData
	file manifestFile
}

// FindManifest walks up from startDir to locate juicer.toml.
func FindManifest(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// LoadManifest parses a juicer.toml file.
func LoadManifest(path string) (*Manifest, error) {
	var file manifestFile
	meta, err := toml.DecodeFile(path, &file)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if keys := meta.Undecoded(); len(keys) > 0 {
		return nil, fmt.Errorf("%s: unknown key %q", path, keys[0].String())
	}
	return &Manifest{Path: path, meta: meta, file: file}, nil
}

// Apply overlays the manifest's explicitly set values on top of opts.
// Keys absent from the file leave the corresponding option untouched.
func (m *Manifest) Apply(opts Options) (Options, error) {
	if m.meta.IsDefined("minify", "munge") {
		opts.MungeIdentifiers = m.file.Minify.Munge
	}
	if m.meta.IsDefined("minify", "preserve-strings") {
		opts.PreserveStrings = m.file.Minify.PreserveStrings
	}
	if m.meta.IsDefined("minify", "line-break") {
		opts.LineBreakColumn = m.file.Minify.LineBreak
	}
	if m.meta.IsDefined("minify", "charset") {
		if _, err := LookupCharset(m.file.Minify.Charset); err != nil {
			return opts, fmt.Errorf("%s: %w", m.Path, err)
		}
		opts.Charset = m.file.Minify.Charset
	}
	return opts, nil
}

// LoadOptions resolves the effective options for startDir: defaults overlaid
// with the nearest manifest, if one exists.
func LoadOptions(startDir string) (Options, bool, error) {
	opts := Default()
	path, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return opts, ok, err
	}
	manifest, err := LoadManifest(path)
	if err != nil {
		return opts, true, err
	}
	opts, err = manifest.Apply(opts)
	return opts, true, err
}

// WriteDefaultManifest creates a juicer.toml with the default settings spelled
// out. Fails if the file already exists.
func WriteDefaultManifest(dir string) (string, error) {
	path := filepath.Join(dir, ManifestName)
	if _, err := os.Stat(path); err == nil {
		return path, fmt.Errorf("%s already exists", path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return path, err
	}
	def := Default()
	content := fmt.Sprintf(`[minify]
munge = %t
preserve-strings = %t
line-break = %d
charset = %q
`, def.MungeIdentifiers, def.PreserveStrings, def.LineBreakColumn, def.Charset)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return path, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
