// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package preprocessor connects variable substitution to mdBook.

mdBook runs a preprocessor twice. First as

	mdbook-variables supports <renderer>

where the exit status answers whether the renderer is supported. Then without
arguments, writing a JSON array [context, book] to standard input and reading
the processed book from standard output.

The variables come from the book configuration at the "variables" key (see
config.DefaultKey). When the key is absent the book is returned untouched.
*/
package preprocessor
