// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package preprocessor

import (
	"encoding/json"
	"fmt"
	"io"

	"carvel.dev/mdbook-variables/pkg/book"
)

// Context is what mdBook tells a preprocessor about the current build.
type Context struct {
	Root          string                 `json:"root"`
	Config        map[string]interface{} `json:"config"`
	Renderer      string                 `json:"renderer"`
	MdbookVersion string                 `json:"mdbook_version"`
}

// ReadInput decodes the [context, book] pair mdBook sends on stdin.
func ReadInput(r io.Reader) (Context, *book.Book, error) {
	var pieces []json.RawMessage

	err := json.NewDecoder(r).Decode(&pieces)
	if err != nil {
		return Context{}, nil, fmt.Errorf("Unmarshaling preprocessor input: %s", err)
	}

	if len(pieces) != 2 {
		return Context{}, nil, fmt.Errorf("Expected preprocessor input to be a [context, book] pair, but had %d elements", len(pieces))
	}

	var ctx Context

	err = json.Unmarshal(pieces[0], &ctx)
	if err != nil {
		return Context{}, nil, fmt.Errorf("Unmarshaling preprocessor context: %s", err)
	}

	var b book.Book

	err = json.Unmarshal(pieces[1], &b)
	if err != nil {
		return Context{}, nil, fmt.Errorf("Unmarshaling book: %s", err)
	}

	return ctx, &b, nil
}

// WriteOutput encodes the processed book for mdBook.
func WriteOutput(w io.Writer, b *book.Book) error {
	err := json.NewEncoder(w).Encode(b)
	if err != nil {
		return fmt.Errorf("Marshaling book: %s", err)
	}
	return nil
}
