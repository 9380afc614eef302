package contract

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"dapp_token/sdk"
)

const (
	holderAddress   = "hive:holder"
	protocolAddress = "contract:captcha-protocol"
	ownContractId   = "contract:dapp-token"
)

// setupContract wipes host state and storage so each test starts from a
// blank chain.
func setupContract(t *testing.T) {
	t.Helper()
	sdk.HostReset()
	UseState(NewMockState())
	resetEnvCache()
	setSender(holderAddress, "tx-setup")
}

// setSender scripts the env for the next call as if addr signed it.
func setSender(addr, tx string) {
	sdk.HostSetEnv(fmt.Sprintf(
		`{"msg.sender":%q,"msg.required_auths":[%q],"msg.required_posting_auths":[],"tx.id":%q,"contract.id":%q,"block.timestamp":"2025-01-01T00:00:00"}`,
		addr, addr, tx, ownContractId,
	))
	sdk.HostSetEnvKey("tx.id", tx)
	resetEnvCache()
}

// initToken runs contract_init with the given numbers as the holder.
func initToken(t *testing.T, supply, faucetAmount uint64, threshold uint8, recencyMs uint64) {
	t.Helper()
	setSender(holderAddress, "tx-init")
	payload := fmt.Sprintf("%d|%d|%s|%d|%d", supply, faucetAmount, protocolAddress, threshold, recencyMs)
	res := ContractInit(&payload)
	require.NotNil(t, res)
}

// expectAbort asserts that fn dies through sdk.Abort with the message.
func expectAbort(t *testing.T, contains string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected an abort")
		ae, ok := r.(sdk.AbortError)
		require.True(t, ok, "expected abort, got panic %v", r)
		require.Contains(t, ae.Msg, contains)
	}()
	fn()
}

// expectRevert asserts that fn reverts with the given error symbol.
func expectRevert(t *testing.T, symbol string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a revert")
		re, ok := r.(sdk.RevertError)
		require.True(t, ok, "expected revert, got panic %v", r)
		require.Equal(t, symbol, re.Symbol)
	}()
	fn()
}

// scriptedProtocol is a protocolGateway tests steer directly.
type scriptedProtocol struct {
	human      bool
	beforeMs   uint64
	humanErr   error
	captchaErr error

	// recorded inputs of the last calls
	gotProtocol  sdk.Address
	gotAccount   sdk.Address
	gotThreshold uint8
}

func (p *scriptedProtocol) isHumanUser(protocol, account sdk.Address, threshold uint8) (bool, error) {
	p.gotProtocol = protocol
	p.gotAccount = account
	p.gotThreshold = threshold
	return p.human, p.humanErr
}

func (p *scriptedProtocol) lastCorrectCaptcha(protocol, account sdk.Address) (uint64, error) {
	p.gotProtocol = protocol
	p.gotAccount = account
	return p.beforeMs, p.captchaErr
}

// useScriptedProtocol installs the gateway and restores the original on
// cleanup.
func useScriptedProtocol(t *testing.T, p *scriptedProtocol) {
	t.Helper()
	prev := useProtocolGateway(p)
	t.Cleanup(func() { useProtocolGateway(prev) })
}
