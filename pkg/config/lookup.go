// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"strings"

	"carvel.dev/mdbook-variables/pkg/variables"
)

// DefaultKey is where the book configuration holds the variables table.
const DefaultKey = "variables"

// Get finds a (possibly dotted) key within decoded configuration,
// eg "preprocessor.variables.variables".
func Get(cfg map[string]interface{}, key string) (interface{}, bool) {
	var current interface{} = cfg

	for _, piece := range strings.Split(key, ".") {
		typedCurrent, ok := current.(map[string]interface{})
		if !ok {
			return nil, false
		}
		current, ok = typedCurrent[piece]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// TableFromConfig returns the variables table found at key.
// Missing key is not an error: the boolean result reports whether it was found.
func TableFromConfig(cfg map[string]interface{}, key string) (*variables.Table, bool, error) {
	val, found := Get(cfg, key)
	if !found {
		return nil, false, nil
	}

	if _, ok := val.(map[string]interface{}); !ok {
		return nil, true, fmt.Errorf("Expected config key '%s' to be a table, but was %T", key, val)
	}

	table, err := variables.NewTableFromGo(val)
	if err != nil {
		return nil, true, fmt.Errorf("Reading config key '%s': %s", key, err)
	}
	return table, true, nil
}
