// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package book

import (
	"encoding/json"
	"fmt"

	"carvel.dev/mdbook-variables/pkg/walk"
)

const (
	sectionsKey = "sections"
	contentKey  = "content"
	subItemsKey = "sub_items"

	chapterVariant   = "Chapter"
	separatorVariant = "Separator"
	partTitleVariant = "PartTitle"
)

type Book struct {
	Sections []*Item

	fields map[string]json.RawMessage
}

func (b *Book) UnmarshalJSON(data []byte) error {
	var sections []*Item

	fields, err := unmarshalFields(data, sectionsKey, &sections)
	if err != nil {
		return fmt.Errorf("Unmarshaling book: %s", err)
	}

	b.Sections = sections
	b.fields = fields
	return nil
}

func (b Book) MarshalJSON() ([]byte, error) {
	sections := b.Sections
	if sections == nil {
		sections = []*Item{}
	}
	return marshalFields(b.fields, sectionsKey, sections)
}

// Nodes returns the top-level items for walking.
func (b *Book) Nodes() []walk.Node {
	return itemsAsNodes(b.Sections)
}

// Chapters returns every chapter of the book, depth-first.
func (b *Book) Chapters() []*Chapter {
	var result []*Chapter
	var collect func(items []*Item)
	collect = func(items []*Item) {
		for _, item := range items {
			if item.Chapter != nil {
				result = append(result, item.Chapter)
				collect(item.Chapter.SubItems)
			}
		}
	}
	collect(b.Sections)
	return result
}

// Chapter is an mdBook chapter. Name is informational; only Content and
// SubItems are written back.
type Chapter struct {
	Name     string
	Content  string
	SubItems []*Item

	fields map[string]json.RawMessage
}

var _ walk.Node = &Chapter{}

func NewChapter(name, content string, subItems ...*Item) *Chapter {
	nameJSON, _ := json.Marshal(name)
	return &Chapter{
		Name:     name,
		Content:  content,
		SubItems: subItems,
		fields:   map[string]json.RawMessage{"name": nameJSON},
	}
}

func (c *Chapter) Text() (string, bool)  { return c.Content, true }
func (c *Chapter) SetText(text string)   { c.Content = text }
func (c *Chapter) Children() []walk.Node { return itemsAsNodes(c.SubItems) }

func (c *Chapter) UnmarshalJSON(data []byte) error {
	var subItems []*Item

	fields, err := unmarshalFields(data, subItemsKey, &subItems)
	if err != nil {
		return err
	}

	var content string
	if raw, found := fields[contentKey]; found {
		if err := json.Unmarshal(raw, &content); err != nil {
			return fmt.Errorf("Unmarshaling chapter content: %s", err)
		}
	}

	var name string
	if raw, found := fields["name"]; found {
		// non-string names are tolerated; the field is passed through as is
		_ = json.Unmarshal(raw, &name)
	}

	c.Name = name
	c.Content = content
	c.SubItems = subItems
	c.fields = fields
	return nil
}

func (c Chapter) MarshalJSON() ([]byte, error) {
	fields := copyFields(c.fields)

	content, err := json.Marshal(c.Content)
	if err != nil {
		return nil, err
	}
	fields[contentKey] = content

	subItems := c.SubItems
	if subItems == nil {
		subItems = []*Item{}
	}
	return marshalFields(fields, subItemsKey, subItems)
}

// Item is one entry of a section list: a Chapter, a separator, a part title,
// or a variant this package does not know about (kept verbatim).
type Item struct {
	Chapter *Chapter

	raw json.RawMessage
}

var _ walk.Node = &Item{}

func NewChapterItem(chapter *Chapter) *Item { return &Item{Chapter: chapter} }

func NewSeparatorItem() *Item {
	return &Item{raw: json.RawMessage(`"` + separatorVariant + `"`)}
}

func NewPartTitleItem(title string) *Item {
	raw, _ := json.Marshal(map[string]string{partTitleVariant: title})
	return &Item{raw: raw}
}

func (i *Item) IsSeparator() bool {
	var variant string
	return i.Chapter == nil && json.Unmarshal(i.raw, &variant) == nil && variant == separatorVariant
}

func (i *Item) PartTitle() (string, bool) {
	if i.Chapter != nil {
		return "", false
	}
	var variant map[string]string
	if json.Unmarshal(i.raw, &variant) != nil {
		return "", false
	}
	title, found := variant[partTitleVariant]
	return title, found
}

func (i *Item) Text() (string, bool) {
	if i.Chapter == nil {
		return "", false
	}
	return i.Chapter.Text()
}

func (i *Item) SetText(text string) {
	if i.Chapter != nil {
		i.Chapter.SetText(text)
	}
}

func (i *Item) Children() []walk.Node {
	if i.Chapter == nil {
		return nil
	}
	return i.Chapter.Children()
}

func (i *Item) UnmarshalJSON(data []byte) error {
	var variant map[string]json.RawMessage
	if err := json.Unmarshal(data, &variant); err == nil {
		if chapterData, found := variant[chapterVariant]; found && len(variant) == 1 {
			var chapter Chapter
			if err := json.Unmarshal(chapterData, &chapter); err != nil {
				return fmt.Errorf("Unmarshaling chapter: %s", err)
			}
			i.Chapter = &chapter
			i.raw = nil
			return nil
		}
	}

	i.Chapter = nil
	i.raw = append(json.RawMessage{}, data...)
	return nil
}

func (i Item) MarshalJSON() ([]byte, error) {
	if i.Chapter != nil {
		return json.Marshal(map[string]*Chapter{chapterVariant: i.Chapter})
	}
	if len(i.raw) == 0 {
		return nil, fmt.Errorf("Expected book item to be a chapter or to hold raw JSON")
	}
	return i.raw, nil
}

func itemsAsNodes(items []*Item) []walk.Node {
	var result []walk.Node
	for _, item := range items {
		result = append(result, item)
	}
	return result
}
