// Package deploy implements the deployment procedure for the dapp token
// contract: composing the constructor payload from the documented
// environment variables and instantiating the compiled wasm on a node.
package deploy

import (
	"fmt"
	"strconv"
	"strings"
)

// The environment variables the deployment pipeline consumes. The docker
// compose file forwards CONTRACT_ADDRESS; the DAPP_CONTRACT_ARGS_* group
// feeds the constructor payload positionally.
const (
	EnvContractAddress  = "CONTRACT_ADDRESS"
	EnvInitialSupply    = "DAPP_CONTRACT_ARGS_INITIAL_SUPPLY"
	EnvFaucetAmount     = "DAPP_CONTRACT_ARGS_FAUCET_AMOUNT"
	EnvHumanThreshold   = "DAPP_CONTRACT_ARGS_HUMAN_THRESHOLD"
	EnvRecencyThreshold = "DAPP_CONTRACT_ARGS_RECENCY_THRESHOLD"
)

// Defaults for the instantiation parameters that are usually left alone.
const (
	DefaultConstructor = "contract_init"
	DefaultNodeURL     = "http://127.0.0.1:9933"
	DefaultGasLimit    = uint64(200_000_000_000)
)

// ConstructorArgs are the positional values the contract's constructor
// expects, in the order the deployment docs list them.
type ConstructorArgs struct {
	InitialSupply      uint64
	FaucetAmount       uint64
	ProtocolAddress    string
	HumanThreshold     uint8
	RecencyThresholdMs uint64
}

// Payload renders the pipe-delimited constructor payload the contract
// parses in contract_init.
func (a ConstructorArgs) Payload() string {
	return strings.Join([]string{
		strconv.FormatUint(a.InitialSupply, 10),
		strconv.FormatUint(a.FaucetAmount, 10),
		a.ProtocolAddress,
		strconv.FormatUint(uint64(a.HumanThreshold), 10),
		strconv.FormatUint(a.RecencyThresholdMs, 10),
	}, "|")
}

// Validate rejects argument sets the contract would abort on anyway,
// failing fast on the operator's side.
func (a ConstructorArgs) Validate() error {
	if a.ProtocolAddress == "" {
		return fmt.Errorf("%s is required", EnvContractAddress)
	}
	if a.HumanThreshold > 100 {
		return fmt.Errorf("human threshold must be 0..100, got %d", a.HumanThreshold)
	}
	return nil
}
