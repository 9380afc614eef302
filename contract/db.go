package contract

import "dapp_token/sdk"

////////////////////////////////////////////////////////////////////////////////
// Contract State Persistence helpers
////////////////////////////////////////////////////////////////////////////////

// isContractInitialized reports whether contract_init already ran.
func isContractInitialized() bool {
	return getState().Get(configKey()) != nil
}

// saveConfig persists the token config; it is written exactly once.
func saveConfig(cfg *Config) {
	getState().Set(configKey(), encodeConfig(cfg))
}

// loadConfig reads the token config and aborts when the contract was
// never initialized, which guards every other entrypoint.
func loadConfig() *Config {
	ptr := getState().Get(configKey())
	if ptr == nil {
		sdk.Abort("contract not initialized")
	}
	return decodeConfig(*ptr)
}

// getBalance returns the stored balance, zero for unknown accounts.
func getBalance(addr sdk.Address) Balance {
	ptr := getState().Get(balanceKey(addr))
	if ptr == nil || *ptr == "" {
		return 0
	}
	b, err := ParseBalance(*ptr)
	if err != nil {
		sdk.Abort("corrupt balance entry for " + addr.String())
	}
	return b
}

// setBalance writes the balance; zero balances free their slot so the kv
// store does not accumulate empty accounts.
func setBalance(addr sdk.Address, b Balance) {
	key := balanceKey(addr)
	if b == 0 {
		getState().Delete(key)
		return
	}
	value := b.String()
	if existing := getState().Get(key); existing != nil && *existing == value {
		return
	}
	getState().Set(key, value)
}
