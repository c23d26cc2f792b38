// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package spell provides the ability to suggest an exact spelling of a word.

In the context of mdbook-variables, this is useful for warnings about
placeholders whose names are misspelled variables.
*/
package spell
