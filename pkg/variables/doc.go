// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package variables holds the Variable Table: the run-scoped mapping from
placeholder name to replacement value.

Values are a closed set: StringValue and OtherValue. Only strings take part in
substitution; every other configuration value is carried as an OtherValue and
reads as absent.

A Table is built once, before any text is rewritten, and is only read
afterwards. It is safe to share between goroutines as long as nothing calls
Set concurrently with reads.
*/
package variables
