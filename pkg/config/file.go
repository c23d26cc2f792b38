// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"path/filepath"
	"strings"

	"carvel.dev/mdbook-variables/pkg/variables"
)

// TableFromFile picks a loader by file extension. For TOML files the table
// is read from key (the whole document when key is empty); other files are
// parsed as YAML (which includes JSON).
func TableFromFile(path, key string) (*variables.Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		table, found, err := TableFromTOMLFile(path, key)
		if err != nil {
			return nil, err
		}
		if !found {
			return variables.NewTable(), nil
		}
		return table, nil

	default:
		return TableFromYAMLFile(path)
	}
}
