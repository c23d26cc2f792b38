// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package orderedmap

import (
	"fmt"
	"sort"
)

// Conversion moves between native Go maps and *Map.
//
// Native maps carry no order, so keys are sorted to keep results deterministic.
// Only the top level is converted; nested values are left as they are.
type Conversion struct {
	Object interface{}
}

func (c Conversion) FromUnorderedMap() (*Map, error) {
	switch typedObj := c.Object.(type) {
	case *Map:
		return typedObj.Copy(), nil

	case map[string]interface{}:
		result := NewMap()
		for _, key := range c.sortedKeys(typedObj) {
			result.Set(key, typedObj[key])
		}
		return result, nil

	case map[interface{}]interface{}:
		strMap := map[string]interface{}{}
		for k, v := range typedObj {
			strK, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("Expected map key to be a string, but was %T", k)
			}
			strMap[strK] = v
		}
		return Conversion{strMap}.FromUnorderedMap()

	default:
		return nil, fmt.Errorf("Expected a map, but was %T", c.Object)
	}
}

func (Conversion) sortedKeys(m map[string]interface{}) []string {
	var keys []string
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
