package deploy

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/rs/zerolog"
)

// DefaultComposeService is the compose target that builds the contract
// image and deploys it with the protocol address baked in.
const DefaultComposeService = "dapp-contract"

// Builder shells out to the external build tooling: the docker compose
// pipeline or a local wasm toolchain build.
type Builder struct {
	// Dir is the working directory the commands run in.
	Dir string
	// Logger receives one line per spawned command.
	Logger zerolog.Logger
	// lookPath is a seam for tests; defaults to exec.LookPath.
	lookPath func(string) (string, error)
}

// NewBuilder returns a Builder rooted at dir.
func NewBuilder(dir string, logger zerolog.Logger) *Builder {
	return &Builder{Dir: dir, Logger: logger, lookPath: exec.LookPath}
}

// ComposeUp runs the docker compose target with CONTRACT_ADDRESS set,
// which builds the contract image and deploys it against the node.
func (b *Builder) ComposeUp(ctx context.Context, service, contractAddress string) error {
	if contractAddress == "" {
		return fmt.Errorf("%s is required for the compose build", EnvContractAddress)
	}
	if service == "" {
		service = DefaultComposeService
	}
	return b.run(ctx,
		[]string{EnvContractAddress + "=" + contractAddress},
		"docker", "compose", "up", "-d", "--build", service)
}

// LocalBuild compiles the contract to wasm with tinygo, mirroring what
// the container build does.
func (b *Builder) LocalBuild(ctx context.Context, output string) error {
	if output == "" {
		output = "artifacts/main.wasm"
	}
	return b.run(ctx, nil,
		"tinygo", "build", "-o", output, "-target", "wasm-unknown", "-no-debug", ".")
}

func (b *Builder) run(ctx context.Context, extraEnv []string, name string, args ...string) error {
	look := b.lookPath
	if look == nil {
		look = exec.LookPath
	}
	if _, err := look(name); err != nil {
		return fmt.Errorf("%s not found in PATH: %w", name, err)
	}

	b.Logger.Info().Str("cmd", name).Strs("args", args).Msg("running build command")

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = b.Dir
	cmd.Env = append(os.Environ(), extraEnv...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s failed: %w", name, err)
	}
	return nil
}
