package contract

import (
	"strconv"
	"strings"

	"dapp_token/sdk"
)

// Payloads arrive as JSON-quoted strings with pipe-delimited fields, the
// same framing the deployment tooling composes from its env vars.

// unwrapPayload strips the JSON string quoting and aborts when nothing
// usable remains.
func unwrapPayload(payload *string, missingMsg string) string {
	if payload == nil {
		sdk.Abort(missingMsg)
	}
	raw := strings.TrimSpace(*payload)
	if strings.HasPrefix(raw, `"`) {
		if unq, err := strconv.Unquote(raw); err == nil {
			raw = strings.TrimSpace(unq)
		}
	}
	if raw == "" {
		sdk.Abort(missingMsg)
	}
	return raw
}

// decodeInitArgs unpacks
// `initialSupply|faucetAmount|protocolAddress|humanThreshold|recencyThresholdMs`.
// The recency field may be empty, falling back to the one-day window.
func decodeInitArgs(payload *string) *InitArgs {
	raw := unwrapPayload(payload, "init payload missing")
	parts := strings.Split(raw, "|")
	get := func(i int) string {
		if i < len(parts) {
			return strings.TrimSpace(parts[i])
		}
		return ""
	}

	args := &InitArgs{
		InitialSupply: parseBalanceField(get(0), "initial supply"),
		FaucetAmount:  parseBalanceField(get(1), "faucet amount"),
	}

	protocol := sdk.Address(get(2))
	if protocol.String() == "" {
		sdk.Abort("protocol contract address required")
	}
	if protocol.Domain() != sdk.AddressDomainContract {
		sdk.Abort("protocol address must name a contract: " + protocol.String())
	}
	args.ProtocolAccount = protocol

	args.HumanThreshold = parseThresholdField(get(3))

	if v := get(4); v != "" {
		args.RecencyThresholdMs = parseUint64Field(v, "recency threshold")
	} else {
		args.RecencyThresholdMs = FallbackRecencyThresholdMs
	}
	return args
}

// decodeTransferArgs expects `to|amount`.
func decodeTransferArgs(payload *string) *TransferArgs {
	raw := unwrapPayload(payload, "transfer payload missing")
	parts := strings.Split(raw, "|")
	if len(parts) < 2 {
		sdk.Abort("transfer payload requires to|amount")
	}
	to := strings.TrimSpace(parts[0])
	if to == "" {
		sdk.Abort("transfer recipient required")
	}
	return &TransferArgs{
		To:    sdk.Address(to),
		Value: parseBalanceField(strings.TrimSpace(parts[1]), "transfer amount"),
	}
}

// decodeAccountArg expects a single account address.
func decodeAccountArg(payload *string) sdk.Address {
	raw := unwrapPayload(payload, "account payload missing")
	return sdk.Address(strings.TrimSpace(raw))
}

// decodeHumanCheckArgs expects `account` or `account|threshold`; the
// threshold defaults to the configured one when omitted.
func decodeHumanCheckArgs(payload *string, fallback uint8) (sdk.Address, uint8) {
	raw := unwrapPayload(payload, "account payload missing")
	parts := strings.Split(raw, "|")
	account := sdk.Address(strings.TrimSpace(parts[0]))
	if account.String() == "" {
		sdk.Abort("account required")
	}
	threshold := fallback
	if len(parts) > 1 && strings.TrimSpace(parts[1]) != "" {
		threshold = parseThresholdField(strings.TrimSpace(parts[1]))
	}
	return account, threshold
}

// parseBalanceField converts a decimal field and aborts with the field
// name on garbage, keeping diagnostics close to the deployer's wording.
func parseBalanceField(v, field string) Balance {
	if v == "" {
		sdk.Abort(field + " required")
	}
	b, err := ParseBalance(v)
	if err != nil {
		sdk.Abort("invalid " + field + ": " + v)
	}
	return b
}

// parseUint64Field converts a plain uint field.
func parseUint64Field(v, field string) uint64 {
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		sdk.Abort("invalid " + field + ": " + v)
	}
	return n
}

// parseThresholdField parses the captcha percentage and bounds it.
func parseThresholdField(v string) uint8 {
	if v == "" {
		sdk.Abort("human threshold required")
	}
	n, err := strconv.ParseUint(v, 10, 8)
	if err != nil || n > MaxHumanThreshold {
		sdk.Abort("invalid human threshold: " + v)
	}
	return uint8(n)
}
