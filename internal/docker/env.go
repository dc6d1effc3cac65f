// env.go reads a container's environment for use as a comparison source.
//
// The environment comes from the container's configuration (Config.Env in
// the inspect response), so it reflects the variables the container was
// created with — stopped containers work as well as running ones.
package docker

import (
	"context"
	"fmt"

	"github.com/willsfidell/env-helper/internal/model"
)

// ContainerEnv returns the environment of the referenced container as raw
// "KEY=value" strings, exactly as Docker reports them.
//
// ref may be a container name or an ID (full or unambiguous prefix). The
// returned lines are unparsed on purpose: callers feed them through the
// standard envfile parser so container environments obey the same
// semantics as files (first-"=" split, raw values, last write wins).
//
// Returns a CLIError with ExitDockerUnavailable when the inspect call
// fails (unknown container, daemon unreachable).
func ContainerEnv(ctx context.Context, cli *Client, ref string) ([]string, error) {
	info, err := cli.Inner().ContainerInspect(ctx, ref)
	if err != nil {
		return nil, model.WrapCLIError(
			model.ExitDockerUnavailable,
			fmt.Sprintf("failed to inspect container %q", ref),
			err,
		)
	}

	// Config is nil only in malformed API responses.
	if info.Config == nil {
		return nil, model.NewCLIError(
			model.ExitDockerUnavailable,
			fmt.Sprintf("container %q returned no configuration data", ref),
		)
	}

	return info.Config.Env, nil
}
