// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package config builds variables.Table values from the places variables can
come from: the book configuration (book.toml, or the already decoded config
that mdBook hands to preprocessors), standalone TOML/YAML/JSON files,
key=value pairs, and prefixed environment variables.

Tables read from TOML and YAML keep the order in which variables appear in the
file.
*/
package config
