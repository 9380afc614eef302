package contract

// The exported contract surface. Each entrypoint takes the raw payload
// pointer the chain hands over and returns a human-readable result; the
// wasm exports in the root package are thin wrappers around these.

// -----------------------------------------------------------------------------
// Contract Initialization
// -----------------------------------------------------------------------------

// ContractInit initializes the token with the caller as token holder.
// Must be called before any other function.
// Payload: initialSupply|faucetAmount|protocolAddress|humanThreshold|recencyThresholdMs
func ContractInit(payload *string) *string {
	if isContractInitialized() {
		abortf("contract already initialized")
	}

	args := decodeInitArgs(payload)
	holder := getSenderAddress()
	if args.ProtocolAccount.String() == getOwnContractId() {
		abortf("protocol contract must be a different contract")
	}

	cfg := Config{
		TokenHolder:        holder,
		TotalSupply:        args.InitialSupply,
		FaucetAmount:       args.FaucetAmount,
		ProtocolAccount:    args.ProtocolAccount,
		HumanThreshold:     args.HumanThreshold,
		RecencyThresholdMs: args.RecencyThresholdMs,
	}
	saveConfig(&cfg)
	setBalance(holder, args.InitialSupply)

	emitInitEvent(holder.String(), cfg.TotalSupply, cfg.FaucetAmount)
	emitTransferEvent("", holder.String(), cfg.TotalSupply)

	return strptr("initialized: supply " + cfg.TotalSupply.String() +
		" held by " + holder.String())
}

// -----------------------------------------------------------------------------
// Token Operations
// -----------------------------------------------------------------------------

// Transfer moves tokens from the caller to the recipient.
// Payload: to|amount
func Transfer(payload *string) *string {
	loadConfig()
	args := decodeTransferArgs(payload)
	from := getSenderAddress()

	transferFromTo(from, args.To, args.Value)
	emitTransferEvent(from.String(), args.To.String(), args.Value)

	return strptr("transferred " + args.Value.String() + " to " + args.To.String())
}

// Faucet drips the configured amount to the account when the protocol
// contract vouches for it being human. Non-human accounts get nothing
// but the refusal is logged.
// Payload: account
func Faucet(payload *string) *string {
	cfg := loadConfig()
	account := decodeAccountArg(payload)

	if !accountIsHuman(cfg, account, cfg.HumanThreshold) {
		emitFaucetEvent(account.String(), 0, false)
		return strptr("faucet skipped: " + account.String() + " not verified as human")
	}

	transferFromTo(cfg.TokenHolder, account, cfg.FaucetAmount)
	emitTransferEvent(cfg.TokenHolder.String(), account.String(), cfg.FaucetAmount)
	emitFaucetEvent(account.String(), cfg.FaucetAmount, true)

	return strptr("faucet sent " + cfg.FaucetAmount.String() + " to " + account.String())
}

// -----------------------------------------------------------------------------
// Queries
// -----------------------------------------------------------------------------

// IsHuman asks the protocol contract whether the account passes the
// captcha gate, optionally with an explicit threshold.
// Payload: account or account|threshold
func IsHuman(payload *string) *string {
	cfg := loadConfig()
	account, threshold := decodeHumanCheckArgs(payload, cfg.HumanThreshold)

	if accountIsHuman(cfg, account, threshold) {
		return strptr("true")
	}
	return strptr("false")
}

// BalanceOf returns the account balance, zero for unknown accounts.
// Payload: account
func BalanceOf(payload *string) *string {
	loadConfig()
	account := decodeAccountArg(payload)
	return strptr(encodeBalanceResponse(account, balanceOf(account)))
}

// TokenInfo dumps the token configuration as JSON.
// Payload: ignored
func TokenInfo(payload *string) *string {
	cfg := loadConfig()
	return strptr(encodeConfig(cfg))
}
