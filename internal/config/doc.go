// Package config handles the optional .env-helper.jsonc tool configuration
// file for the env-helper CLI.
//
// The file is JSONC (JSON with Comments) and currently carries compare-time
// ignore rules:
//
//	{
//	  // Keys excluded from compare reports (exact match).
//	  "ignoreKeys": ["HOSTNAME", "PWD"],
//	  // Key prefixes excluded from compare reports.
//	  "ignorePrefixes": ["BASH_"]
//	}
//
// Resolution order in the CLI: an explicit --config path wins; otherwise
// the working directory is probed for .env-helper.jsonc then
// .env-helper.json; otherwise the zero-value Config applies.
package config
