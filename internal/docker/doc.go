// Package docker provides Docker Engine API access for the env-helper CLI.
//
// This package handles:
//   - Docker client initialization with automatic socket detection
//     (Linux, macOS, Windows)
//   - Reading a container's environment (Config.Env) so it can serve as a
//     comparison source alongside .env files
//
// The package uses github.com/docker/docker/client as the underlying
// Docker SDK, with version negotiation enabled for broad compatibility.
package docker
