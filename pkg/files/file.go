// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var markdownExts = []string{".md", ".markdown"}

type File struct {
	src     Source
	relPath string
}

// NewFiles enumerates the given paths: "-" is stdin, a directory contributes
// its markdown files (recursively, sorted), anything else is a single file.
func NewFiles(paths []string) ([]*File, error) {
	var fileSrcs []Source

	for _, path := range paths {
		if path == "-" {
			fileSrcs = append(fileSrcs, NewStdinSource())
			continue
		}

		fileInfo, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("Checking file '%s': %s", path, err)
		}

		if !fileInfo.IsDir() {
			fileSrcs = append(fileSrcs, NewLocalSource(path, ""))
			continue
		}

		var selectedPaths []string

		err = filepath.Walk(path, func(walkedPath string, fi os.FileInfo, err error) error {
			if err != nil || fi.IsDir() {
				return err
			}
			if matchesExt(walkedPath, markdownExts) {
				selectedPaths = append(selectedPaths, walkedPath)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("Listing files '%s': %s", path, err)
		}

		sort.Strings(selectedPaths)

		for _, selectedPath := range selectedPaths {
			fileSrcs = append(fileSrcs, NewLocalSource(selectedPath, path))
		}
	}

	var files []*File

	for _, fileSrc := range fileSrcs {
		relPath, err := fileSrc.RelativePath()
		if err != nil {
			return nil, fmt.Errorf("Calculating relative path for '%s': %s", fileSrc.Description(), err)
		}
		files = append(files, &File{src: fileSrc, relPath: relPath})
	}

	return files, nil
}

func (r *File) Description() string    { return r.src.Description() }
func (r *File) RelativePath() string   { return r.relPath }
func (r *File) Bytes() ([]byte, error) { return r.src.Bytes() }

func matchesExt(path string, exts []string) bool {
	filename := filepath.Base(path)
	for _, ext := range exts {
		if strings.HasSuffix(filename, ext) {
			return true
		}
	}
	return false
}
