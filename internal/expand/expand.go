// Package expand resolves terse address specifier tokens into fully
// qualified "address/prefixLength" strings. Tokens are processed left to
// right with a single "last seen address" accumulator, so a shorthand
// "/prefix" token inherits the address of the nearest preceding token
// that carried one.
package expand

import (
	"fmt"
	"strings"

	"github.com/nwaddell/cidr/internal/cidr"
	"github.com/nwaddell/cidr/internal/errors"
)

// DefaultAddress seeds the accumulator before any token is processed,
// so a batch that opens with "/prefix" still resolves.
const DefaultAddress = "192.168.1.1"

// Expand resolves a batch of raw specifier tokens. Three token forms
// are recognized:
//
//	"address/prefix"  - passed through; the address becomes the new
//	                    last seen address
//	"/prefix"         - resolved against the last seen address
//	"/address/prefix" - leading slash stripped; the address becomes
//	                    the new last seen address
//
// Expansion is all-or-nothing: the first token whose embedded address
// fails to parse aborts the batch with no partial result.
func Expand(tokens []string) ([]string, error) {
	lastAddr := DefaultAddress
	resolved := make([]string, 0, len(tokens))

	for _, raw := range tokens {
		switch {
		case !strings.HasPrefix(raw, "/"):
			addrPart, _, _ := strings.Cut(raw, "/")
			if _, err := cidr.ParseAddress(addrPart); err != nil {
				return nil, errors.ErrInvalidAddress(raw, err)
			}
			lastAddr = addrPart
			resolved = append(resolved, raw)

		case strings.Contains(raw[1:], "/"):
			spec := raw[1:]
			addrPart, _, _ := strings.Cut(spec, "/")
			if _, err := cidr.ParseAddress(addrPart); err != nil {
				return nil, errors.ErrInvalidAddress(raw, err)
			}
			lastAddr = addrPart
			resolved = append(resolved, spec)

		default:
			resolved = append(resolved, fmt.Sprintf("%s/%s", lastAddr, raw[1:]))
		}
	}

	return resolved, nil
}
