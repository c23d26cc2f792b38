// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"strings"

	"carvel.dev/mdbook-variables/pkg/variables"
)

// TableFromKVs builds a table from key=value strings; later pairs win.
func TableFromKVs(kvs []string) (*variables.Table, error) {
	table := variables.NewTable()

	for _, kv := range kvs {
		pieces := strings.SplitN(kv, "=", 2)
		if len(pieces) != 2 {
			return nil, fmt.Errorf("Expected format key=value, but was '%s'", kv)
		}
		if len(pieces[0]) == 0 {
			return nil, fmt.Errorf("Expected key to be non-empty in '%s'", kv)
		}
		table.Set(pieces[0], variables.StringValue(pieces[1]))
	}

	return table, nil
}

// TableFromEnv extracts variables from environment entries (as in os.Environ)
// named PREFIX_<name>.
func TableFromEnv(prefix string, environ []string) (*variables.Table, error) {
	table := variables.NewTable()

	for _, envVar := range environ {
		pieces := strings.SplitN(envVar, "=", 2)
		if len(pieces) != 2 {
			return nil, fmt.Errorf("Expected env variable to be key-value pair (format: key=value)")
		}

		if !strings.HasPrefix(pieces[0], prefix+"_") {
			continue
		}

		table.Set(strings.TrimPrefix(pieces[0], prefix+"_"), variables.StringValue(pieces[1]))
	}

	return table, nil
}
