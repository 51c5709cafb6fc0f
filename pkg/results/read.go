package results

import (
	"archive/zip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

const rawResultExt = ".json"

// Expand resolves a glob pattern to the list of matching paths.
func Expand(pattern string) ([]string, error) {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", pattern, err)
	}
	return matches, nil
}

// ParseFiles reads a list of raw result files and/or result packages and
// parses their contents. Any non-result files in the list or within
// packages are ignored. The returned map is keyed by file basename; if
// multiple inputs share a basename with different contents, results are
// undefined.
func ParseFiles(paths []string) (map[string]Result, error) {
	raw, err := readResultFiles(paths)
	if err != nil {
		return nil, err
	}
	return decodeResults(raw)
}

// readResultFiles loads the raw contents of each result file, opening zip
// packages and reading every raw result inside them.
func readResultFiles(paths []string) (map[string][]byte, error) {
	files := make(map[string][]byte)
	for _, path := range paths {
		switch {
		case isRawResult(path):
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("reading result file %s: %w", path, err)
			}
			files[filepath.Base(path)] = data
		case isResultPackage(path):
			packaged, err := readResultPackage(path)
			if err != nil {
				return nil, err
			}
			for name, data := range packaged {
				files[name] = data
			}
		}
	}
	return files, nil
}

func readResultPackage(path string) (map[string][]byte, error) {
	pkg, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("opening result package %s: %w", path, err)
	}
	defer pkg.Close()

	files := make(map[string][]byte)
	for _, member := range pkg.File {
		if !isRawResult(member.Name) {
			continue
		}
		data, err := readPackageMember(member)
		if err != nil {
			return nil, fmt.Errorf("reading %s from package %s: %w", member.Name, path, err)
		}
		files[filepath.Base(member.Name)] = data
	}
	return files, nil
}

func readPackageMember(member *zip.File) ([]byte, error) {
	rc, err := member.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

func isRawResult(filename string) bool {
	return filepath.Ext(filename) == rawResultExt
}

func isResultPackage(path string) bool {
	pkg, err := zip.OpenReader(path)
	if err != nil {
		return false
	}
	pkg.Close()
	return true
}

func decodeResults(files map[string][]byte) (map[string]Result, error) {
	decoded := make(map[string]Result, len(files))
	for name, data := range files {
		var r Result
		if err := json.Unmarshal(data, &r); err != nil {
			return nil, fmt.Errorf("decoding result %s: %w", name, err)
		}
		decoded[name] = r
	}
	return decoded, nil
}
