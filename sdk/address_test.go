package sdk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddressDomain(t *testing.T) {
	assert.Equal(t, AddressDomainUser, Address("hive:alice").Domain())
	assert.Equal(t, AddressDomainContract, Address("contract:captcha").Domain())
	assert.Equal(t, AddressDomainSystem, Address("system:faucet").Domain())
}

func TestAddressType(t *testing.T) {
	assert.Equal(t, AddressTypeHive, Address("hive:alice").Type())
	assert.Equal(t, AddressTypeEVM, Address("did:pkh:eip155:1:0xabc").Type())
	assert.Equal(t, AddressTypeKey, Address("did:key:z6Mk").Type())
	assert.Equal(t, AddressTypeSystem, Address("system:root").Type())
	assert.Equal(t, AddressTypeUnknown, Address("garbage").Type())
}

func TestAddressIsValid(t *testing.T) {
	assert.True(t, Address("hive:alice").IsValid())
	assert.False(t, Address("nonsense").IsValid())
}

func TestParseEnv(t *testing.T) {
	env := parseEnv(`{
		"contract.id": "contract:dapp",
		"tx.id": "tx-9",
		"block.height": 42,
		"block.timestamp": "2025-01-01T00:00:00",
		"msg.sender": "hive:alice",
		"msg.required_auths": ["hive:alice"],
		"msg.required_posting_auths": [],
		"intents": [{"type":"transfer.allow","args":{"limit":"1.000","token":"hive"}}]
	}`)

	assert.Equal(t, "contract:dapp", env.ContractId)
	assert.Equal(t, "tx-9", env.TxId)
	assert.Equal(t, uint64(42), env.BlockHeight)
	assert.Equal(t, Address("hive:alice"), env.Sender.Address)
	assert.Equal(t, []Address{"hive:alice"}, env.Sender.RequiredAuths)
	assert.Empty(t, env.Sender.RequiredPostingAuths)
	assert.Len(t, env.Intents, 1)
	assert.Equal(t, "transfer.allow", env.Intents[0].Type)
}

func TestParseEnvToleratesPartialBlobs(t *testing.T) {
	env := parseEnv(`{"msg.sender":"hive:bob"}`)
	assert.Equal(t, Address("hive:bob"), env.Sender.Address)
	assert.Empty(t, env.Sender.RequiredAuths)
}
