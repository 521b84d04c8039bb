// Package configs embeds the configuration templates written by
// `gstanzl config init`.
//
// Configuration hierarchy (see internal/config Load):
//  1. Hardcoded defaults
//  2. User config (~/.config/gstanzl/config.yaml)
//  3. Project config (.gstanzl.yaml)
//  4. Environment variables (GSTANZL_*, NO_COLOR)
//  5. Command-line flags
package configs

import _ "embed"

// UserConfigTemplate is written to the user config path by
// `gstanzl config init`.
//
//go:embed user-config.example.yaml
var UserConfigTemplate string

// ProjectConfigTemplate is written to .gstanzl.yaml by
// `gstanzl config init --project`.
//
//go:embed project-config.example.yaml
var ProjectConfigTemplate string
