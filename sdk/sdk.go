//go:build wasm

package sdk

import "encoding/json"

//go:wasmimport sdk console.log
func log(s *string) *string

//go:wasmimport sdk db.set_object
func stateSetObject(key *string, value *string) *string

//go:wasmimport sdk db.get_object
func stateGetObject(key *string) *string

//go:wasmimport sdk db.rm_object
func stateDeleteObject(key *string) *string

//go:wasmimport sdk system.get_env
func getEnv(arg *string) *string

//go:wasmimport sdk system.get_env_key
func getEnvKey(arg *string) *string

//go:wasmimport sdk contracts.read
func contractRead(contractId *string, key *string) *string

//go:wasmimport sdk contracts.call
func contractCall(contractId *string, method *string, payload *string, options *string) *string

//go:wasmimport env abort
func abort(msg, file *string, line, column *int32)

//go:wasmimport env revert
func revert(msg, symbol *string)

// Log writes a line to the host console, the only tracing channel a
// running contract has.
func Log(s string) {
	log(&s)
}

// Abort stops execution immediately and surfaces the message to the chain.
func Abort(msg string) {
	ln := int32(0)
	abort(&msg, nil, &ln, &ln)
	panic(msg)
}

// Revert throws a named error back to the caller with a short symbol,
// like a solidity revert. Callers must return right after.
func Revert(msg string, symbol string) {
	revert(&msg, &symbol)
}

// StateSetObject stores a key/value string pair into contract kv storage.
func StateSetObject(key string, value string) {
	stateSetObject(&key, &value)
}

// StateGetObject fetches a key and returns nil when missing.
func StateGetObject(key string) *string {
	return stateGetObject(&key)
}

// StateDeleteObject removes the key entirely.
func StateDeleteObject(key string) {
	stateDeleteObject(&key)
}

// GetEnv pulls the JSON env blob from the chain and maps it to Env.
func GetEnv() Env {
	return parseEnv(*getEnv(nil))
}

// GetEnvKey pulls a single env key (like tx.id) without parsing the
// whole environment.
func GetEnvKey(key string) *string {
	return getEnvKey(&key)
}

// ContractRead fetches a raw state entry from another contract.
func ContractRead(contractId string, key string) *string {
	return contractRead(&contractId, &key)
}

// ContractCall invokes a method on another contract and returns its raw
// result, or nil when the callee produced none.
func ContractCall(contractId string, method string, payload string, opts ContractCallOptions) *string {
	b, err := json.Marshal(opts)
	if err != nil {
		Abort("failed to marshal call options: " + err.Error())
	}
	options := string(b)
	return contractCall(&contractId, &method, &payload, &options)
}
