package contract

import "dapp_token/sdk"

// State is the kv surface the contract persists through. The indirection
// exists so tests can swap in an in-memory map without touching the host.
type State interface {
	Set(key, value string)
	Get(key string) *string
	Delete(key string)
}

// WasmState forwards to the host storage through the sdk bindings.
type WasmState struct{}

func (WasmState) Set(key, value string) { sdk.StateSetObject(key, value) }

func (WasmState) Get(key string) *string { return sdk.StateGetObject(key) }

func (WasmState) Delete(key string) { sdk.StateDeleteObject(key) }

// singleton state used everywhere
var state State = WasmState{}

// UseState swaps the active state backend and returns the previous one.
func UseState(s State) State {
	prev := state
	state = s
	return prev
}

func getState() State {
	return state
}
