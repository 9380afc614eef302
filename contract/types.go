package contract

import (
	"strconv"

	"dapp_token/sdk"
)

// Balance is a raw token amount. The token has no decimals, matching the
// integer supply and faucet values the deployment env vars carry.
type Balance uint64

// String renders the balance as decimal text for storage and events.
func (b Balance) String() string {
	return strconv.FormatUint(uint64(b), 10)
}

// ParseBalance converts decimal text back into a Balance.
func ParseBalance(s string) (Balance, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return Balance(v), nil
}

// Config is the immutable token setup written once by contract_init.
type Config struct {
	// TokenHolder initially receives the whole supply and funds the faucet.
	TokenHolder sdk.Address
	// TotalSupply is fixed at init time.
	TotalSupply Balance
	// FaucetAmount is dripped per successful faucet call.
	FaucetAmount Balance
	// ProtocolAccount is the address of the captcha protocol contract.
	ProtocolAccount sdk.Address
	// HumanThreshold is the minimum percentage of correctly answered
	// captchas for an account to count as human (0..100).
	HumanThreshold uint8
	// RecencyThresholdMs bounds how old the last correct captcha may be.
	RecencyThresholdMs uint64
}

// InitArgs carries the decoded contract_init payload.
type InitArgs struct {
	InitialSupply      Balance
	FaucetAmount       Balance
	ProtocolAccount    sdk.Address
	HumanThreshold     uint8
	RecencyThresholdMs uint64
}

// TransferArgs carries the decoded transfer payload.
type TransferArgs struct {
	To    sdk.Address
	Value Balance
}
