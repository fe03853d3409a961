package file

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// IsFile reports whether path exists and is a regular file.
func IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func ReadBytes(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("failed to read file " + path + ": " + err.Error())
	}
	return data, nil
}

// ReadText reads a UTF-8 text file, dropping a leading byte order mark.
func ReadText(path string) (string, error) {
	data, err := ReadBytes(path)
	if err != nil {
		return "", err
	}
	return strings.TrimPrefix(string(data), "\ufeff"), nil
}

// WriteBytes replaces the content of an existing file, keeping its mode.
func WriteBytes(path string, data []byte) error {
	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(path, data, mode); err != nil {
		return errors.New("failed to write file " + path + ": " + err.Error())
	}
	return nil
}

// ResolveAsset resolves a reference path against the directory of the
// document that contains it. Rooted references are returned as is.
func ResolveAsset(documentPath, refPath string) string {
	if filepath.IsAbs(refPath) {
		return refPath
	}
	return filepath.Join(filepath.Dir(documentPath), filepath.FromSlash(refPath))
}
