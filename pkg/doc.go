// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package pkg is the collection of packages that make up the implementation of
mdbook-variables.

From top-down, the code is layered in this way:

# Entry Point

	./cmd/mdbook-variables     // the mdBook preprocessor binary

# Commands

The root command is the preprocessor; "supports", "substitute" and "version"
are subcommands.

	pkg/cmd
	pkg/cmd/ui

# mdBook Glue

Reading the [context, book] input, locating the variables table, renderer
checks and mdBook version checks.

	pkg/preprocessor
	pkg/book

# Core

The Tree Walker visits each chapter (parent before children) and hands its text
to the Substitution Engine, which replaces ${{name}} placeholders with values
from the Variable Table.

	pkg/walk
	pkg/substitute
	pkg/variables

# Variable Sources

	pkg/config       // book.toml, YAML/JSON/TOML files, key=value, env
	pkg/files        // markdown inputs and output directories

# Utilities

	pkg/orderedmap
	pkg/spell
	pkg/experiments
	pkg/version
*/
package pkg
