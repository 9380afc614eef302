package sdk

import "strings"

type AddressDomain string

const (
	AddressDomainUser     AddressDomain = "user"
	AddressDomainContract AddressDomain = "contract"
	AddressDomainSystem   AddressDomain = "system"
)

type AddressType string

const (
	AddressTypeEVM     AddressType = "evm"
	AddressTypeKey     AddressType = "key"
	AddressTypeHive    AddressType = "hive"
	AddressTypeSystem  AddressType = "system"
	AddressTypeUnknown AddressType = "unknown"
)

type Address string

// String returns the literal representation (like hive:alice) of the address.
func (a Address) String() string {
	return string(a)
}

// Domain checks the prefix to decide whether the address names a user, a
// contract or a system actor.
func (a Address) Domain() AddressDomain {
	if strings.HasPrefix(a.String(), "system:") {
		return AddressDomainSystem
	}
	if strings.HasPrefix(a.String(), "contract:") {
		return AddressDomainContract
	}
	return AddressDomainUser
}

// Type inspects the DID prefix to categorize the address (evm, key, hive, ...).
func (a Address) Type() AddressType {
	switch {
	case strings.HasPrefix(a.String(), "did:pkh:eip155"):
		return AddressTypeEVM
	case strings.HasPrefix(a.String(), "did:key:"):
		return AddressTypeKey
	case strings.HasPrefix(a.String(), "hive:"):
		return AddressTypeHive
	case strings.HasPrefix(a.String(), "system:"):
		return AddressTypeSystem
	default:
		return AddressTypeUnknown
	}
}

// IsValid returns false if the address type detection failed, used as a
// light sanity check before persisting anything keyed by the address.
func (a Address) IsValid() bool {
	return a.Type() != AddressTypeUnknown
}
