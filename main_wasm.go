//go:build wasm

////////////////////////////////////////////////////////////////////////////////
// dapp_token: a captcha-gated token contract calling the protocol contract
////////////////////////////////////////////////////////////////////////////////

package main

import "dapp_token/contract"

// main is left empty on purpose
func main() {

}

// ContractInit initializes the token with the caller as holder.
// Payload: initialSupply|faucetAmount|protocolAddress|humanThreshold|recencyThresholdMs
//
//go:wasmexport contract_init
func ContractInit(payload *string) *string {
	return contract.ContractInit(payload)
}

// Transfer moves tokens from the caller to a recipient.
// Payload: to|amount
//
//go:wasmexport transfer
func Transfer(payload *string) *string {
	return contract.Transfer(payload)
}

// Faucet drips tokens to verified humans.
// Payload: account
//
//go:wasmexport faucet
func Faucet(payload *string) *string {
	return contract.Faucet(payload)
}

// IsHuman reports the protocol contract's verdict for an account.
// Payload: account or account|threshold
//
//go:wasmexport is_human
func IsHuman(payload *string) *string {
	return contract.IsHuman(payload)
}

// BalanceOf returns an account balance as JSON.
// Payload: account
//
//go:wasmexport balance_of
func BalanceOf(payload *string) *string {
	return contract.BalanceOf(payload)
}

// TokenInfo dumps the token configuration as JSON.
//
//go:wasmexport token_info
func TokenInfo(payload *string) *string {
	return contract.TokenInfo(payload)
}
