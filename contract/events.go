package contract

import (
	"fmt"
	"strconv"

	"dapp_token/sdk"
)

// emitInitEvent announces the one-time setup with holder and supply so
// indexers never have to read storage for the basics.
func emitInitEvent(holder string, supply, faucetAmount Balance) {
	sdk.Log(fmt.Sprintf(
		"ci|by:%s|s:%s|f:%s",
		holder,
		supply.String(),
		faucetAmount.String(),
	))
}

// emitTransferEvent is the terse transfer log line, one per movement.
func emitTransferEvent(from, to string, value Balance) {
	sdk.Log(fmt.Sprintf(
		"tf|from:%s|to:%s|v:%s",
		from,
		to,
		value.String(),
	))
}

// emitFaucetEvent records every faucet attempt including refused ones,
// so the silent no-op for non-humans still leaves a trace.
func emitFaucetEvent(account string, value Balance, granted bool) {
	sdk.Log(fmt.Sprintf(
		"fc|to:%s|v:%s|ok:%s",
		account,
		value.String(),
		strconv.FormatBool(granted),
	))
}
