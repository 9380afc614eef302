//go:build !wasm

////////////////////////////////////////////////////////////////////////////////
// dapp_token: a captcha-gated token contract calling the protocol contract
////////////////////////////////////////////////////////////////////////////////

package main

import (
	"fmt"

	"dapp_token/contract"
	"dapp_token/sdk"
)

// Host-side smoke harness: runs the contract against in-memory state so
// a plain `go run .` exercises the full init/transfer/faucet path without
// a chain. The wasm build exports the real entrypoints instead.
func main() {
	contract.UseState(contract.NewMockState())

	sdk.HostOnContractCall(func(contractId, method, payload string) *string {
		// pretend the protocol contract vouches for everyone locally
		switch method {
		case "dapp_operator_is_human_user":
			res := "true"
			return &res
		case "dapp_operator_last_correct_captcha":
			res := `{"before_ms":1000}`
			return &res
		}
		return nil
	})

	initPayload := `"1000000|100|contract:protocol|80|86400000"`
	fmt.Println(*contract.ContractInit(&initPayload))

	faucetPayload := `"hive:somebody"`
	fmt.Println(*contract.Faucet(&faucetPayload))

	balancePayload := `"hive:somebody"`
	fmt.Println(*contract.BalanceOf(&balancePayload))
}
