// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package variables

import (
	"fmt"

	"carvel.dev/mdbook-variables/pkg/orderedmap"
)

type Table struct {
	values *orderedmap.Map
}

func NewTable() *Table {
	return &Table{orderedmap.NewMap()}
}

// NewTableFromGo converts a decoded configuration table
// (map[string]interface{}, map[interface{}]interface{} or *orderedmap.Map).
func NewTableFromGo(obj interface{}) (*Table, error) {
	m, err := orderedmap.Conversion{Object: obj}.FromUnorderedMap()
	if err != nil {
		return nil, fmt.Errorf("Converting variables table: %s", err)
	}

	table := NewTable()
	m.Iterate(func(k string, v interface{}) {
		table.Set(k, NewValue(v))
	})
	return table, nil
}

func (t *Table) Set(name string, val Value) { t.values.Set(name, val) }

func (t *Table) Lookup(name string) (Value, bool) {
	if t == nil {
		return nil, false
	}
	val, found := t.values.Get(name)
	if !found {
		return nil, false
	}
	return val.(Value), true
}

// String returns the value of name only when it is present and is a string.
func (t *Table) String(name string) (string, bool) {
	val, found := t.Lookup(name)
	if !found {
		return "", false
	}
	return val.AsString()
}

func (t *Table) Names() []string {
	if t == nil {
		return nil
	}
	return t.values.Keys()
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return t.values.Len()
}

// Merge returns a new table holding t's entries overridden by other's.
// Neither input is modified.
func (t *Table) Merge(other *Table) *Table {
	result := NewTable()
	for _, src := range []*Table{t, other} {
		if src == nil {
			continue
		}
		src.values.Iterate(func(k string, v interface{}) {
			result.values.Set(k, v)
		})
	}
	return result
}

func (t *Table) Iterate(iterFunc func(name string, val Value)) {
	if t == nil {
		return
	}
	t.values.Iterate(func(k string, v interface{}) {
		iterFunc(k, v.(Value))
	})
}

// AsGo returns the table as plain Go values, in table order (eg for printing).
func (t *Table) AsGo() *orderedmap.Map {
	result := orderedmap.NewMap()
	t.Iterate(func(name string, val Value) {
		result.Set(name, val.AsGoValue())
	})
	return result
}
