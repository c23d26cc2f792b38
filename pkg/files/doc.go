// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package files provides primitives for enumerating and loading markdown from
local paths or standard input, and for writing processed output to a
directory.

This allows the commands to substitute logically chunked streams of text
without becoming entangled in the details of how to read or write data.
*/
package files
