//go:build !wasm

package sdk

// Host-side stand-ins for the wasm imports so the contract logic and its
// tests run as a plain Go program. Storage is an in-memory map and the
// env/contract-call surfaces are scriptable from tests.

import "fmt"

// AbortError is the panic payload of Abort on the host build, so tests
// can tell an abort apart from an unrelated panic.
type AbortError struct {
	Msg string
}

func (e AbortError) Error() string { return "abort: " + e.Msg }

// RevertError is the panic payload of Revert on the host build.
type RevertError struct {
	Msg    string
	Symbol string
}

func (e RevertError) Error() string { return "revert(" + e.Symbol + "): " + e.Msg }

// ContractCallFunc is the host hook behind ContractCall.
type ContractCallFunc func(contractId, method, payload string) *string

// ContractReadFunc is the host hook behind ContractRead.
type ContractReadFunc func(contractId, key string) *string

var (
	hostDB           = map[string]string{}
	hostEnvJSON      = `{"msg.sender":"hive:sender","msg.required_auths":[],"msg.required_posting_auths":[],"tx.id":"tx-0","block.timestamp":"2025-01-01T00:00:00"}`
	hostEnvKeys      = map[string]string{}
	hostContractCall ContractCallFunc
	hostContractRead ContractReadFunc
	hostLogs         []string
)

// HostReset wipes storage, logs and hooks between test cases.
func HostReset() {
	hostDB = map[string]string{}
	hostEnvKeys = map[string]string{}
	hostContractCall = nil
	hostContractRead = nil
	hostLogs = nil
}

// HostSetEnv replaces the raw env blob returned by GetEnv.
func HostSetEnv(envJSON string) {
	hostEnvJSON = envJSON
}

// HostSetEnvKey scripts a single env key lookup.
func HostSetEnvKey(key, value string) {
	hostEnvKeys[key] = value
}

// HostOnContractCall installs the handler consulted by ContractCall.
func HostOnContractCall(fn ContractCallFunc) {
	hostContractCall = fn
}

// HostOnContractRead installs the handler consulted by ContractRead.
func HostOnContractRead(fn ContractReadFunc) {
	hostContractRead = fn
}

// HostLogs returns everything the contract logged so far.
func HostLogs() []string {
	return hostLogs
}

// HostStateGet peeks directly into the fake storage.
func HostStateGet(key string) *string {
	v, ok := hostDB[key]
	if !ok {
		return nil
	}
	return &v
}

// Log collects lines instead of printing, so tests can assert on events.
func Log(s string) {
	hostLogs = append(hostLogs, s)
}

// Abort panics with AbortError, mirroring the chain killing the call.
func Abort(msg string) {
	panic(AbortError{Msg: msg})
}

// Revert panics with RevertError carrying the error symbol.
func Revert(msg string, symbol string) {
	panic(RevertError{Msg: msg, Symbol: symbol})
}

// StateSetObject stores a key/value string pair into the fake storage.
func StateSetObject(key string, value string) {
	hostDB[key] = value
}

// StateGetObject fetches a key and returns nil when missing.
func StateGetObject(key string) *string {
	return HostStateGet(key)
}

// StateDeleteObject removes the key entirely.
func StateDeleteObject(key string) {
	delete(hostDB, key)
}

// GetEnv parses the scripted env blob.
func GetEnv() Env {
	return parseEnv(hostEnvJSON)
}

// GetEnvKey serves scripted single-key lookups.
func GetEnvKey(key string) *string {
	if v, ok := hostEnvKeys[key]; ok {
		return &v
	}
	return nil
}

// ContractRead consults the scripted read hook.
func ContractRead(contractId string, key string) *string {
	if hostContractRead == nil {
		return nil
	}
	return hostContractRead(contractId, key)
}

// ContractCall consults the scripted call hook and aborts when a test
// forgot to install one, which beats silently returning garbage.
func ContractCall(contractId string, method string, payload string, opts ContractCallOptions) *string {
	if hostContractCall == nil {
		Abort(fmt.Sprintf("no host handler for contract call %s.%s", contractId, method))
	}
	return hostContractCall(contractId, method, payload)
}
