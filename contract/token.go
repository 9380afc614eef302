package contract

import "dapp_token/sdk"

// transferFromTo moves value between two accounts. Reverts with the
// insufficient_balance symbol when from cannot cover the amount; zero
// and self transfers degrade to no-ops so balances never churn.
func transferFromTo(from, to sdk.Address, value Balance) {
	fromBalance := getBalance(from)
	if fromBalance < value {
		sdk.Revert("insufficient balance", "insufficient_balance")
		return
	}
	if value == 0 || from == to {
		return
	}
	setBalance(from, fromBalance-value)
	setBalance(to, getBalance(to)+value)
}

// balanceOf returns the stored balance, zero for non-existent accounts.
func balanceOf(owner sdk.Address) Balance {
	return getBalance(owner)
}
