// Package cidr implements IPv4 CIDR arithmetic for the cidr tool.
// It provides address parsing, network construction from "address/prefix"
// specifiers or explicit netmasks, and derivation of the dependent
// quantities: network and broadcast addresses, mask, host range, and
// address counts.
package cidr

import (
	"encoding/binary"
	"fmt"
	"net/netip"
)

// Address is a single IPv4 address held as a 32-bit unsigned integer.
type Address uint32

// ParseAddress parses a strict dotted-quad IPv4 address. IPv6 addresses
// and IPv4-mapped forms are rejected.
func ParseAddress(s string) (Address, error) {
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return 0, err
	}
	if !addr.Is4() {
		return 0, fmt.Errorf("not an IPv4 address: %s", s)
	}
	return Address(binary.BigEndian.Uint32(addr.AsSlice())), nil
}

// String returns the address in dotted-quad form.
func (a Address) String() string {
	return fmt.Sprintf("%d.%d.%d.%d",
		byte(a>>24), byte(a>>16), byte(a>>8), byte(a))
}

// Hex returns the address as an 8-digit hexadecimal literal.
func (a Address) Hex() string {
	return fmt.Sprintf("0x%08x", uint32(a))
}
