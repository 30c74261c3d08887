// Package inifile reads and rewrites single keys in flat INI files.
//
// The files handled here carry one logical global section: either an explicit
// [global] section or, when the file has none, the section-less top of the
// file. Values are read with last-occurrence-wins semantics and updates only
// ever modify keys that already exist.
package inifile

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"
)

// GlobalSectionName is the explicit section name treated as the global section.
const GlobalSectionName = "global"

// ErrFileMissing is returned when the INI file does not exist.
var ErrFileMissing = errors.New("ini file not found")

// ErrFieldNotFound is returned by WriteValue when the key is not already present.
var ErrFieldNotFound = errors.New("field not found in global section")

func init() {
	// Write "key=value" exactly, without aligned padding around the delimiter.
	ini.PrettyFormat = false
}

// loadOptions mirror a plain line scan: only '=' separates key and value,
// '#' or ';' after the value stays part of it, a trailing '\' does not join
// the next line, quotes are kept, and stray lines are ignored.
var loadOptions = ini.LoadOptions{
	IgnoreInlineComment:      true,
	IgnoreContinuation:       true,
	PreserveSurroundedQuote:  true,
	KeyValueDelimiters:       "=",
	KeyValueDelimiterOnWrite: "=",
	SkipUnrecognizableLines:  true,
}

// ReadValue returns the value of key in the file's global section.
// ok is false when the key is absent; that is not an error.
func ReadValue(path, key string) (value string, ok bool, err error) {
	file, err := load(path)
	if err != nil {
		return "", false, err
	}

	section := globalSection(file)
	if !section.HasKey(key) {
		return "", false, nil
	}
	return section.Key(key).String(), true, nil
}

// WriteValue replaces the value of an existing key in the global section.
// It returns ErrFieldNotFound rather than inserting a missing key.
// The file is re-encoded on save: duplicate keys collapse into one line
// holding the new value and sections are separated by a blank line.
func WriteValue(path, key, value string) error {
	file, err := load(path)
	if err != nil {
		return err
	}

	section := globalSection(file)
	if !section.HasKey(key) {
		return fmt.Errorf("%w: %s", ErrFieldNotFound, key)
	}
	section.Key(key).SetValue(value)

	var buf bytes.Buffer
	if _, err := file.WriteTo(&buf); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return atomicWrite(path, buf.Bytes())
}

// load parses path, reporting ErrFileMissing when it does not exist.
func load(path string) (*ini.File, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileMissing, path)
		}
		return nil, fmt.Errorf("checking %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrFileMissing, path)
	}

	file, err := ini.LoadSources(loadOptions, path)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return file, nil
}

// globalSection returns [global] when present, otherwise the default section.
func globalSection(file *ini.File) *ini.Section {
	if section, err := file.GetSection(GlobalSectionName); err == nil {
		return section
	}
	return file.Section(ini.DefaultSection)
}

// atomicWrite replaces path with data via a temp file and rename,
// keeping the original file mode.
func atomicWrite(path string, data []byte) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(path), ".tmp-*.ini")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("write data: %w", err)
	}
	if err := tmpFile.Chmod(mode); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
