package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dapp_token/sdk"
)

func TestFaucetGrantsToHumans(t *testing.T) {
	setupContract(t)
	initToken(t, 1000, 100, 80, 86_400_000)

	proto := &scriptedProtocol{human: true, beforeMs: 5_000}
	useScriptedProtocol(t, proto)

	setSender("hive:visitor", "tx-1")
	payload := "hive:visitor"
	res := Faucet(&payload)
	require.NotNil(t, res)
	assert.Contains(t, *res, "faucet sent 100")

	assert.Equal(t, Balance(100), balanceOf("hive:visitor"))
	assert.Equal(t, Balance(900), balanceOf(holderAddress))

	// the gateway was asked about the right account at the configured threshold
	assert.Equal(t, protocolAddress, proto.gotProtocol.String())
	assert.Equal(t, "hive:visitor", proto.gotAccount.String())
	assert.Equal(t, uint8(80), proto.gotThreshold)
}

func TestFaucetSkipsNonHumans(t *testing.T) {
	setupContract(t)
	initToken(t, 1000, 100, 80, 86_400_000)

	proto := &scriptedProtocol{human: false, beforeMs: 5_000}
	useScriptedProtocol(t, proto)

	setSender("hive:bot", "tx-1")
	payload := "hive:bot"
	res := Faucet(&payload)
	require.NotNil(t, res)
	assert.Contains(t, *res, "not verified as human")

	assert.Equal(t, Balance(0), balanceOf("hive:bot"))
	assert.Equal(t, Balance(1000), balanceOf(holderAddress))

	// the refusal still left an event trail
	logs := sdk.HostLogs()
	require.NotEmpty(t, logs)
	assert.Contains(t, logs[len(logs)-1], "ok:false")
}

func TestFaucetSkipsStaleCaptcha(t *testing.T) {
	setupContract(t)
	initToken(t, 1000, 100, 80, 3_600_000)

	// human, but the last correct captcha is older than the window
	proto := &scriptedProtocol{human: true, beforeMs: 3_600_000}
	useScriptedProtocol(t, proto)

	setSender("hive:sleeper", "tx-1")
	payload := "hive:sleeper"
	res := Faucet(&payload)
	require.NotNil(t, res)
	assert.Contains(t, *res, "not verified as human")
	assert.Equal(t, Balance(0), balanceOf("hive:sleeper"))
}

func TestFaucetRevertsWhenHolderIsDry(t *testing.T) {
	setupContract(t)
	initToken(t, 1000, 100, 80, 86_400_000)

	proto := &scriptedProtocol{human: true, beforeMs: 5_000}
	useScriptedProtocol(t, proto)

	// drain the holder below the faucet amount
	setSender(holderAddress, "tx-1")
	drain := "hive:sink|950"
	Transfer(&drain)

	setSender("hive:visitor", "tx-2")
	payload := "hive:visitor"
	expectRevert(t, "insufficient_balance", func() { Faucet(&payload) })
}

func TestFaucetForHolderIsNoop(t *testing.T) {
	setupContract(t)
	initToken(t, 1000, 100, 80, 86_400_000)

	proto := &scriptedProtocol{human: true, beforeMs: 5_000}
	useScriptedProtocol(t, proto)

	setSender(holderAddress, "tx-1")
	payload := holderAddress
	res := Faucet(&payload)
	require.NotNil(t, res)
	assert.Equal(t, Balance(1000), balanceOf(holderAddress))
}

func TestIsHuman(t *testing.T) {
	setupContract(t)
	initToken(t, 1000, 100, 80, 86_400_000)

	proto := &scriptedProtocol{human: true, beforeMs: 5_000}
	useScriptedProtocol(t, proto)

	payload := "hive:visitor"
	res := IsHuman(&payload)
	require.NotNil(t, res)
	assert.Equal(t, "true", *res)

	proto.human = false
	res = IsHuman(&payload)
	assert.Equal(t, "false", *res)
}

func TestIsHumanThresholdOverride(t *testing.T) {
	setupContract(t)
	initToken(t, 1000, 100, 80, 86_400_000)

	proto := &scriptedProtocol{human: true, beforeMs: 5_000}
	useScriptedProtocol(t, proto)

	payload := "hive:visitor|95"
	res := IsHuman(&payload)
	require.NotNil(t, res)
	assert.Equal(t, "true", *res)
	assert.Equal(t, uint8(95), proto.gotThreshold)
}
