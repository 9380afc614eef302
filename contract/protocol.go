package contract

import "dapp_token/sdk"

// The captcha protocol contract is an external dependency; only its two
// documented operations are modeled here, never its internals.

const (
	protocolMethodIsHumanUser        = "dapp_operator_is_human_user"
	protocolMethodLastCorrectCaptcha = "dapp_operator_last_correct_captcha"
)

// protocolGateway is the call boundary towards the protocol contract.
// Tests substitute a scripted implementation.
type protocolGateway interface {
	// isHumanUser asks whether the account answered at least threshold
	// percent of its captchas correctly.
	isHumanUser(protocol, account sdk.Address, threshold uint8) (bool, error)
	// lastCorrectCaptcha returns how many milliseconds ago the account
	// last solved a captcha correctly.
	lastCorrectCaptcha(protocol, account sdk.Address) (uint64, error)
}

// singleton gateway used everywhere
var protocol protocolGateway = callGateway{}

// useProtocolGateway swaps the gateway and returns the previous one.
func useProtocolGateway(g protocolGateway) protocolGateway {
	prev := protocol
	protocol = g
	return prev
}

// callGateway reaches the protocol contract through the host's
// cross-contract call mechanism.
type callGateway struct{}

func (callGateway) isHumanUser(protocolAddr, account sdk.Address, threshold uint8) (bool, error) {
	res := sdk.ContractCall(
		protocolAddr.String(),
		protocolMethodIsHumanUser,
		encodeHumanQuery(account, threshold),
		sdk.ContractCallOptions{},
	)
	if res == nil || *res == "" {
		sdk.Abort("protocol contract returned no human verdict")
	}
	return decodeBoolResponse(*res)
}

func (callGateway) lastCorrectCaptcha(protocolAddr, account sdk.Address) (uint64, error) {
	res := sdk.ContractCall(
		protocolAddr.String(),
		protocolMethodLastCorrectCaptcha,
		encodeAccountQuery(account),
		sdk.ContractCallOptions{},
	)
	if res == nil || *res == "" {
		sdk.Abort("protocol contract returned no captcha record")
	}
	return decodeLastCorrectCaptcha(*res)
}

// accountIsHuman combines both protocol lookups: the account must clear
// the threshold AND have solved a captcha within the recency window.
func accountIsHuman(cfg *Config, account sdk.Address, threshold uint8) bool {
	beforeMs, err := protocol.lastCorrectCaptcha(cfg.ProtocolAccount, account)
	if err != nil {
		sdk.Abort("captcha record lookup failed: " + err.Error())
	}
	recent := beforeMs < cfg.RecencyThresholdMs

	human, err := protocol.isHumanUser(cfg.ProtocolAccount, account, threshold)
	if err != nil {
		sdk.Abort("human check failed: " + err.Error())
	}
	return human && recent
}
