// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"

	"carvel.dev/mdbook-variables/pkg/orderedmap"
	"carvel.dev/mdbook-variables/pkg/variables"
	"gopkg.in/yaml.v3"
)

// TableFromYAMLFile reads a variables table from a YAML (or JSON) file whose
// top-level value is a mapping.
func TableFromYAMLFile(path string) (*variables.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Reading file '%s': %s", path, err)
	}

	table, err := TableFromYAML(data)
	if err != nil {
		return nil, fmt.Errorf("Loading variables from '%s': %s", path, err)
	}
	return table, nil
}

func TableFromYAML(data []byte) (*variables.Table, error) {
	var doc yaml.Node

	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("Unmarshaling YAML: %s", err)
	}

	// empty document
	if len(doc.Content) == 0 {
		return variables.NewTable(), nil
	}

	mapping := doc.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("Expected YAML document to be a mapping (line %d)", mapping.Line)
	}

	ordered := orderedmap.NewMap()

	for i := 0; i+1 < len(mapping.Content); i += 2 {
		keyNode, valNode := mapping.Content[i], mapping.Content[i+1]

		var name string
		if err := keyNode.Decode(&name); err != nil {
			return nil, fmt.Errorf("Decoding key (line %d): %s", keyNode.Line, err)
		}

		var val interface{}
		if err := valNode.Decode(&val); err != nil {
			return nil, fmt.Errorf("Decoding value of '%s' (line %d): %s", name, valNode.Line, err)
		}

		ordered.Set(name, val)
	}

	return variables.NewTableFromGo(ordered)
}

// MarshalYAML renders a table (in order) as a YAML mapping.
func MarshalYAML(table *variables.Table) ([]byte, error) {
	mapping := &yaml.Node{Kind: yaml.MappingNode}

	var lastErr error
	table.AsGo().Iterate(func(name string, val interface{}) {
		var valNode yaml.Node
		if err := valNode.Encode(val); err != nil {
			lastErr = fmt.Errorf("Encoding value of '%s': %s", name, err)
			return
		}
		mapping.Content = append(mapping.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name}, &valNode)
	})
	if lastErr != nil {
		return nil, lastErr
	}

	if len(mapping.Content) == 0 {
		return []byte("{}\n"), nil
	}
	return yaml.Marshal(mapping)
}
