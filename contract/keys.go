package contract

import "dapp_token/sdk"

const (
	// kConfig stores the serialized token Config blob (single key).
	kConfig byte = 0x01
	// kBalance prefixes per-account balance entries.
	kBalance byte = 0x02
)

// configKey is the single slot holding the token configuration.
func configKey() string {
	return string([]byte{kConfig})
}

// balanceKey mixes the prefix with the raw address bytes; addresses are
// unique per account so no length framing is needed.
func balanceKey(addr sdk.Address) string {
	s := addr.String()
	buf := make([]byte, 0, 1+len(s))
	buf = append(buf, kBalance)
	buf = append(buf, s...)
	return string(buf)
}
