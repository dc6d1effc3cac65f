// Package cli — source.go implements source-argument resolution shared by
// the compare and fmt commands.
//
// A source argument is either a file path or a docker://<container>
// reference. Container references read the container's environment via
// the Docker API and feed it through the same parser as files, so both
// source kinds obey identical semantics.
package cli

import (
	"context"
	"strings"

	"github.com/willsfidell/env-helper/internal/docker"
	"github.com/willsfidell/env-helper/internal/envfile"
	"github.com/willsfidell/env-helper/internal/model"
)

// dockerSourcePrefix marks a source argument as a container reference.
const dockerSourcePrefix = "docker://"

// resolveSource turns a source argument into a parsed file. File paths
// are read and parsed directly; docker:// references are resolved through
// the Docker API. The original argument string becomes the display label
// either way.
func resolveSource(ctx context.Context, arg string) (*model.ParsedFile, error) {
	if ref, ok := strings.CutPrefix(arg, dockerSourcePrefix); ok {
		return resolveContainerSource(ctx, arg, ref)
	}
	return envfile.ParseFile(arg)
}

// resolveContainerSource reads the environment of the referenced container
// and parses it. label is the original docker:// argument, kept as the
// display label in reports; ref is the bare container name or ID.
func resolveContainerSource(ctx context.Context, label, ref string) (*model.ParsedFile, error) {
	if ref == "" {
		return nil, model.NewCLIError(model.ExitUsageError,
			"container reference must not be empty (expected docker://<name>)")
	}

	cli, err := docker.NewClient()
	if err != nil {
		return nil, err
	}
	defer func() { _ = cli.Close() }()

	// Verify the daemon responds before inspecting anything.
	if err := cli.Ping(ctx); err != nil {
		return nil, err
	}
	VerboseLog("Connected to Docker daemon")

	env, err := docker.ContainerEnv(ctx, cli, ref)
	if err != nil {
		return nil, err
	}
	VerboseLog("Container %q has %d environment variables", ref, len(env))

	// The engine reports env as KEY=value strings; joining them yields
	// exactly the line format the file parser consumes.
	return envfile.Parse(label, strings.Join(env, "\n")), nil
}
