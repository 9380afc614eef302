// Command dappdeploy builds and instantiates the dapp token contract
// against a node, driven by the same environment variables the docker
// pipeline uses.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"dapp_token/deploy"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "dappdeploy",
		Usage: "build and deploy the dapp token contract",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "enable debug logging",
			},
		},
		Commands: []*cli.Command{
			argsCommand(),
			buildCommand(),
			instantiateCommand(),
		},
	}
}

// newLogger builds the CLI's console logger.
func newLogger(c *cli.Context) zerolog.Logger {
	level := zerolog.InfoLevel
	if c.Bool("verbose") {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

// constructorFlags bind the constructor arguments to the documented
// environment variables while still allowing explicit flags.
func constructorFlags() []cli.Flag {
	return []cli.Flag{
		&cli.Uint64Flag{
			Name:    "initial-supply",
			Usage:   "total token supply minted to the deployer",
			EnvVars: []string{deploy.EnvInitialSupply},
		},
		&cli.Uint64Flag{
			Name:    "faucet-amount",
			Usage:   "tokens dripped per successful faucet call",
			EnvVars: []string{deploy.EnvFaucetAmount},
		},
		&cli.StringFlag{
			Name:    "protocol-address",
			Usage:   "address of the deployed protocol contract",
			EnvVars: []string{deploy.EnvContractAddress},
		},
		&cli.Uint64Flag{
			Name:    "human-threshold",
			Usage:   "captcha success percentage required to count as human",
			EnvVars: []string{deploy.EnvHumanThreshold},
		},
		&cli.Uint64Flag{
			Name:    "recency-threshold",
			Usage:   "max age of the last correct captcha in milliseconds",
			EnvVars: []string{deploy.EnvRecencyThreshold},
		},
	}
}

// argsFromContext assembles and validates the constructor arguments.
func argsFromContext(c *cli.Context) (deploy.ConstructorArgs, error) {
	threshold := c.Uint64("human-threshold")
	if threshold > 100 {
		return deploy.ConstructorArgs{}, fmt.Errorf("human threshold must be 0..100, got %d", threshold)
	}
	args := deploy.ConstructorArgs{
		InitialSupply:      c.Uint64("initial-supply"),
		FaucetAmount:       c.Uint64("faucet-amount"),
		ProtocolAddress:    c.String("protocol-address"),
		HumanThreshold:     uint8(threshold),
		RecencyThresholdMs: c.Uint64("recency-threshold"),
	}
	if err := args.Validate(); err != nil {
		return deploy.ConstructorArgs{}, err
	}
	return args, nil
}

func argsCommand() *cli.Command {
	return &cli.Command{
		Name:  "args",
		Usage: "print the composed constructor payload",
		Flags: constructorFlags(),
		Action: func(c *cli.Context) error {
			args, err := argsFromContext(c)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, args.Payload())
			return nil
		},
	}
}

func buildCommand() *cli.Command {
	return &cli.Command{
		Name:  "build",
		Usage: "build the contract image (compose) or a local wasm binary",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "local",
				Usage: "build locally with tinygo instead of docker compose",
			},
			&cli.StringFlag{
				Name:  "service",
				Usage: "compose service to build",
				Value: deploy.DefaultComposeService,
			},
			&cli.StringFlag{
				Name:  "output",
				Usage: "output path for the local wasm build",
				Value: "artifacts/main.wasm",
			},
			&cli.StringFlag{
				Name:    "protocol-address",
				Usage:   "address of the deployed protocol contract",
				EnvVars: []string{deploy.EnvContractAddress},
			},
		},
		Action: func(c *cli.Context) error {
			builder := deploy.NewBuilder(".", newLogger(c))
			if c.Bool("local") {
				return builder.LocalBuild(c.Context, c.String("output"))
			}
			return builder.ComposeUp(c.Context, c.String("service"), c.String("protocol-address"))
		},
	}
}

func instantiateCommand() *cli.Command {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:     "wasm",
			Usage:    "path to the compiled contract binary",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "constructor",
			Usage: "constructor to run at instantiation",
			Value: deploy.DefaultConstructor,
		},
		&cli.StringFlag{
			Name:     "suri",
			Usage:    "signer uri (seed phrase or derivation) authorizing the deployment",
			Required: true,
		},
		&cli.Uint64Flag{
			Name:  "value",
			Usage: "endowment transferred to the contract at instantiation",
		},
		&cli.StringFlag{
			Name:  "url",
			Usage: "node rpc endpoint",
			Value: deploy.DefaultNodeURL,
		},
		&cli.Uint64Flag{
			Name:  "gas-limit",
			Usage: "gas limit for the instantiation transaction",
			Value: deploy.DefaultGasLimit,
		},
	}
	flags = append(flags, constructorFlags()...)

	return &cli.Command{
		Name:  "instantiate",
		Usage: "deploy the compiled contract against a node",
		Flags: flags,
		Action: func(c *cli.Context) error {
			logger := newLogger(c)

			args, err := argsFromContext(c)
			if err != nil {
				return err
			}
			code, err := os.ReadFile(c.String("wasm"))
			if err != nil {
				return fmt.Errorf("failed to read contract binary: %w", err)
			}

			inst := deploy.NewInstantiator(c.String("url"), logger)
			result, err := inst.Instantiate(c.Context, deploy.InstantiateRequest{
				Code:        code,
				Constructor: c.String("constructor"),
				Args:        args.Payload(),
				SignerURI:   c.String("suri"),
				Endowment:   c.Uint64("value"),
				GasLimit:    c.Uint64("gas-limit"),
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(c.App.Writer, result.ContractAddress)
			return nil
		},
	}
}
