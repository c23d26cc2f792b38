// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package orderedmap_test

import (
	"reflect"
	"testing"

	"carvel.dev/mdbook-variables/pkg/orderedmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromUnorderedMapSortsKeys(t *testing.T) {
	m, err := orderedmap.Conversion{Object: map[string]interface{}{"b": 2, "a": 1, "c": 3}}.FromUnorderedMap()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, m.Keys())
}

func TestFromUnorderedMapDoesNotModifyInput(t *testing.T) {
	inputA := map[string]interface{}{
		"key": []interface{}{map[string]interface{}{"nestedKey": "nestedValue"}},
	}
	inputB := map[string]interface{}{
		"key": []interface{}{map[string]interface{}{"nestedKey": "nestedValue"}},
	}

	_, err := orderedmap.Conversion{Object: inputA}.FromUnorderedMap()
	require.NoError(t, err)

	if !reflect.DeepEqual(inputA, inputB) {
		t.Errorf("Nested object was modified. Got: %v, Expected: %v", inputA, inputB)
	}
}

func TestFromUnorderedMapRejectsNonStringKeys(t *testing.T) {
	_, err := orderedmap.Conversion{Object: map[interface{}]interface{}{1: "one"}}.FromUnorderedMap()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Expected map key to be a string")
}

func TestFromUnorderedMapRejectsScalars(t *testing.T) {
	_, err := orderedmap.Conversion{Object: "not a map"}.FromUnorderedMap()
	require.EqualError(t, err, "Expected a map, but was string")
}

func TestSetKeepsFirstPosition(t *testing.T) {
	m := orderedmap.NewMap()
	m.Set("x", 1)
	m.Set("y", 2)
	m.Set("x", 3)

	assert.Equal(t, []string{"x", "y"}, m.Keys())
	val, found := m.Get("x")
	assert.True(t, found)
	assert.Equal(t, 3, val)
}
