// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package cmd is home to the full set of mdbook-variables "commands" -- instances
of cobra.Command (not to be confused with ./cmd which contains the
bootstrapping for executing mdbook-variables).

A cobra.Command is the starting point of execution.

For a list of commands run:

	$ mdbook-variables help

The root command is the mdBook preprocessor itself; "supports" answers mdBook's
renderer query and "substitute" processes markdown files directly.
*/
package cmd
