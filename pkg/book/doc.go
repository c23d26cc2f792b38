// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package book models the mdBook Book as it is exchanged with preprocessors over
JSON:

	{"sections": [
	  {"Chapter": {"name": "...", "content": "...", "sub_items": [...], ...}},
	  "Separator",
	  {"PartTitle": "..."}
	], "__non_exhaustive": null}

Only chapter content and sub items are interpreted. Every other field and every
non-chapter item is kept as raw JSON and written back unchanged, so a book
survives a decode/encode round trip even when mdBook adds fields.

Chapters and items implement walk.Node.
*/
package book
