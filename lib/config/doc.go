// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for protogen.
//
// Configuration comes from at most one file, named either by the
// --config flag (via [LoadFile]) or by the PROTOGEN_CONFIG environment
// variable (via [Load]). There is no discovery: protogen does not look
// in the working directory, ~/.config, or the project root for a file
// it was not told about. [Resolve] applies that rule for the command
// line and falls back to [Default] when neither source names a file.
//
// Variable expansion is performed on path fields after loading:
// ${HOME}, ${PROTOGEN_ROOT}, and ${VAR:-default} patterns are expanded.
// No environment variable overrides a config value directly; command
// line flags are applied through [ResolveWith] before expansion.
//
// Key exports:
//
//   - [Config] -- master struct with Paths, Engine, Payload, Catalog, Target
//   - [Default] -- the configuration used for the ComputerPlaysFactorio bot
//   - [Load], [LoadFile], [Resolve], and [ResolveWith] -- the entry points for loading
//
// This package depends on no other protogen packages.
package config
