// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package book

import (
	"encoding/json"
	"fmt"
)

// unmarshalFields decodes a JSON object keeping every field raw,
// and additionally decodes the field named key into val (if present).
func unmarshalFields(data []byte, key string, val interface{}) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		return nil, fmt.Errorf("Expected a JSON object, but was null")
	}

	if raw, found := fields[key]; found && string(raw) != "null" {
		if err := json.Unmarshal(raw, val); err != nil {
			return nil, fmt.Errorf("Unmarshaling '%s': %s", key, err)
		}
	}
	return fields, nil
}

func marshalFields(fields map[string]json.RawMessage, key string, val interface{}) ([]byte, error) {
	result := copyFields(fields)

	raw, err := json.Marshal(val)
	if err != nil {
		return nil, fmt.Errorf("Marshaling '%s': %s", key, err)
	}
	result[key] = raw

	return json.Marshal(result)
}

func copyFields(fields map[string]json.RawMessage) map[string]json.RawMessage {
	result := make(map[string]json.RawMessage, len(fields)+2)
	for k, v := range fields {
		result[k] = v
	}
	return result
}
