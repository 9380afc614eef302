package contract

import "dapp_token/sdk"

// cachedEnv is scoped to the currently executing transaction. Whenever
// tx.id changes we refresh sdk.GetEnv() so helper calls within one call
// always see the same snapshot.
var (
	cachedEnv       sdk.Env
	cachedEnvLoaded bool
)

func currentEnv() *sdk.Env {
	var currentTx string
	if txPtr := sdk.GetEnvKey("tx.id"); txPtr != nil {
		currentTx = *txPtr
	}
	if !cachedEnvLoaded || cachedEnv.TxId != currentTx {
		cachedEnv = sdk.GetEnv()
		cachedEnvLoaded = true
	}
	return &cachedEnv
}

// getSenderAddress returns the address of the current transaction sender.
func getSenderAddress() sdk.Address {
	return currentEnv().Sender.Address
}

// getOwnContractId returns the id the chain assigned to this contract.
func getOwnContractId() string {
	return currentEnv().ContractId
}

// resetEnvCache drops the memoized env, used when tests rescript the host.
func resetEnvCache() {
	cachedEnvLoaded = false
}
