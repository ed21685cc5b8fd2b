package cidr

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	"github.com/nwaddell/cidr/internal/errors"
)

// prefixBits is the width of an IPv4 address in bits.
const prefixBits = 32

// minUsableCount is the smallest address count that leaves room for
// hosts once the network and broadcast addresses are reserved.
const minUsableCount = 2

// Network is an IPv4 address paired with a prefix length in [0, 32].
// All derived quantities are recomputed on demand from these two fields.
type Network struct {
	addr   Address
	prefix uint8
}

// NewNetwork constructs a network, rejecting prefix lengths above 32.
func NewNetwork(addr Address, prefix uint8) (Network, error) {
	if prefix > prefixBits {
		return Network{}, errors.NewNetworkError(errors.CodeNetworkConstruction,
			"Prefix length exceeds address width",
			fmt.Sprintf("%s/%d", addr, prefix))
	}
	return Network{addr: addr, prefix: prefix}, nil
}

// ParseNetwork resolves one "address/prefixLength" specifier into a
// Network. When mask is non-empty it takes precedence over the
// specifier's prefix suffix: the specifier contributes only its address
// part and the prefix length is derived from the mask.
func ParseNetwork(spec, mask string) (Network, error) {
	if mask != "" {
		return parseWithMask(spec, mask)
	}

	addrPart, prefixPart, found := strings.Cut(spec, "/")
	if !found {
		return Network{}, errors.NewTokenError(errors.CodeTokenParse,
			"Specifier is missing a /prefix suffix", spec)
	}

	addr, err := ParseAddress(addrPart)
	if err != nil {
		return Network{}, errors.ErrInvalidAddress(spec, err)
	}

	prefix, err := strconv.ParseUint(prefixPart, 10, 8)
	if err != nil {
		return Network{}, errors.ErrInvalidPrefix(spec, err)
	}
	if prefix > prefixBits {
		return Network{}, errors.ErrPrefixOutOfRange(spec)
	}

	return NewNetwork(addr, uint8(prefix))
}

// parseWithMask derives the prefix length from an explicit netmask by
// counting trailing zero bits. The mask is assumed to be contiguous
// high-order ones: a non-contiguous mask such as 255.0.255.0 silently
// yields a prefix derived from its lowest set bit, and an all-zero mask
// yields /0. Contiguity is not validated.
func parseWithMask(spec, mask string) (Network, error) {
	addrPart, _, _ := strings.Cut(spec, "/")
	addr, err := ParseAddress(addrPart)
	if err != nil {
		return Network{}, errors.ErrInvalidAddress(spec, err)
	}

	maskAddr, err := ParseAddress(mask)
	if err != nil {
		return Network{}, errors.ErrInvalidMask(mask, err)
	}

	prefix := uint8(prefixBits - bits.TrailingZeros32(uint32(maskAddr)))
	return NewNetwork(addr, prefix)
}

// Addr returns the address the network was constructed with.
func (n Network) Addr() Address {
	return n.addr
}

// Prefix returns the prefix length.
func (n Network) Prefix() uint8 {
	return n.prefix
}

// Mask returns the netmask: prefix leading one-bits followed by zeros.
func (n Network) Mask() Address {
	if n.prefix == 0 {
		return 0
	}
	return Address(^uint32(0) << (prefixBits - n.prefix))
}

// NetworkAddress returns the first address of the span.
func (n Network) NetworkAddress() Address {
	return n.addr & n.Mask()
}

// Broadcast returns the last address of the span.
func (n Network) Broadcast() Address {
	return n.addr | ^n.Mask()
}

// AddressCount returns the total number of addresses in the span.
// Computed as uint64 so a /0 network reports 2^32 without wrapping.
func (n Network) AddressCount() uint64 {
	return 1 << (prefixBits - n.prefix)
}

// UsableCount returns the number of host addresses once the network and
// broadcast addresses are reserved. Zero for /31 and /32 networks.
func (n Network) UsableCount() uint64 {
	count := n.AddressCount()
	if count > minUsableCount {
		return count - minUsableCount
	}
	return 0
}

// HostRange returns the first and last usable host addresses. The range
// only exists when UsableCount is non-zero; ok is false otherwise.
func (n Network) HostRange() (first, last Address, ok bool) {
	if n.UsableCount() == 0 {
		return 0, 0, false
	}
	return n.NetworkAddress() + 1, n.Broadcast() - 1, true
}

// String renders the network as "address/prefix" using the address the
// network was constructed with, not the masked network address.
func (n Network) String() string {
	return fmt.Sprintf("%s/%d", n.addr, n.prefix)
}
