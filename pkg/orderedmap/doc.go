// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package orderedmap provides a map implementation where the order of keys is
maintained (unlike the native Go map).

Variable tables are kept in this flavor of map so that listing and inspecting
them is deterministic and follows the order of the configuration file.
*/
package orderedmap
