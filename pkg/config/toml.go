// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"strings"

	"carvel.dev/mdbook-variables/pkg/orderedmap"
	"carvel.dev/mdbook-variables/pkg/variables"
	"github.com/BurntSushi/toml"
)

// TableFromTOMLFile reads the variables table at key from a TOML file (eg book.toml).
func TableFromTOMLFile(path, key string) (*variables.Table, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false, fmt.Errorf("Reading file '%s': %s", path, err)
	}

	table, found, err := TableFromTOML(data, key)
	if err != nil {
		return nil, found, fmt.Errorf("Loading variables from '%s': %s", path, err)
	}
	return table, found, nil
}

// TableFromTOML reads the variables table at key from TOML contents.
// An empty key means the whole document is the table.
func TableFromTOML(data []byte, key string) (*variables.Table, bool, error) {
	var doc map[string]interface{}

	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, false, fmt.Errorf("Unmarshaling TOML: %s", err)
	}

	var path []string
	val := interface{}(doc)

	if len(key) > 0 {
		var found bool
		val, found = Get(doc, key)
		if !found {
			return nil, false, nil
		}
		path = strings.Split(key, ".")
	}

	typedVal, ok := val.(map[string]interface{})
	if !ok {
		return nil, true, fmt.Errorf("Expected key '%s' to be a table, but was %T", key, val)
	}

	ordered := orderedmap.NewMap()
	for _, name := range tableKeysInOrder(md, path) {
		ordered.Set(name, typedVal[name])
	}

	table, err := variables.NewTableFromGo(ordered)
	if err != nil {
		return nil, true, err
	}
	return table, true, nil
}

// tableKeysInOrder lists direct children of the table at path in document order.
func tableKeysInOrder(md toml.MetaData, path []string) []string {
	var names []string
	seen := map[string]struct{}{}

	for _, key := range md.Keys() {
		if len(key) <= len(path) || !hasPrefix(key, path) {
			continue
		}
		name := key[len(path)]
		if _, found := seen[name]; !found {
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	return names
}

func hasPrefix(key toml.Key, path []string) bool {
	for i, piece := range path {
		if key[i] != piece {
			return false
		}
	}
	return true
}
