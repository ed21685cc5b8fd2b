package cidr

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nwaddell/cidr/internal/errors"
)

func TestParseNetwork(t *testing.T) {
	tests := []struct {
		name       string
		spec       string
		wantAddr   string
		wantPrefix uint8
		wantCode   errors.ErrorCode
	}{
		{"standard /24", "10.0.0.1/24", "10.0.0.1", 24, ""},
		{"whole space /0", "0.0.0.0/0", "0.0.0.0", 0, ""},
		{"single host /32", "192.168.1.0/32", "192.168.1.0", 32, ""},
		{"point to point /31", "192.168.1.0/31", "192.168.1.0", 31, ""},
		{"missing prefix", "10.0.0.1", "", 0, errors.CodeTokenParse},
		{"bad octet", "10.0.0.999/24", "", 0, errors.CodeAddressParse},
		{"prefix not numeric", "10.0.0.1/abc", "", 0, errors.CodeTokenParse},
		{"prefix negative", "10.0.0.1/-1", "", 0, errors.CodeTokenParse},
		{"prefix too large", "10.0.0.1/33", "", 0, errors.CodePrefixRange},
		{"prefix with sign", "10.0.0.1/+24", "", 0, errors.CodeTokenParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := ParseNetwork(tt.spec, "")
			if tt.wantCode != "" {
				require.Error(t, err)
				assert.True(t, errors.IsCode(err, tt.wantCode),
					"expected code %s, got %s", tt.wantCode, errors.GetCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantAddr, n.Addr().String())
			assert.Equal(t, tt.wantPrefix, n.Prefix())
		})
	}
}

func TestParseNetworkWithMask(t *testing.T) {
	tests := []struct {
		name       string
		spec       string
		mask       string
		wantPrefix uint8
	}{
		{"classless mask", "10.1.2.3", "255.255.248.0", 21},
		{"all zero mask", "10.1.2.3", "0.0.0.0", 0},
		{"host mask", "10.1.2.3", "255.255.255.255", 32},
		{"class C mask", "192.168.1.42", "255.255.255.0", 24},
		{"prefix suffix ignored", "10.1.2.3/24", "255.255.0.0", 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := ParseNetwork(tt.spec, tt.mask)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPrefix, n.Prefix())
		})
	}

	t.Run("bad mask", func(t *testing.T) {
		_, err := ParseNetwork("10.1.2.3", "255.255.948.0")
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.CodeMaskParse))
	})

	t.Run("bad address with mask", func(t *testing.T) {
		_, err := ParseNetwork("10.1.2.999", "255.255.255.0")
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.CodeAddressParse))
	})
}

// The mask is treated as contiguous high-order ones. A non-contiguous
// mask is not rejected: the prefix comes from the lowest set bit. This
// pins the behavior down so a change shows up as a test failure.
func TestParseNetworkNonContiguousMask(t *testing.T) {
	n, err := ParseNetwork("10.1.2.3", "255.0.255.0")
	require.NoError(t, err)
	assert.Equal(t, uint8(24), n.Prefix())
}

func TestNewNetwork(t *testing.T) {
	t.Run("valid prefix", func(t *testing.T) {
		n, err := NewNetwork(0x0a000001, 24)
		require.NoError(t, err)
		assert.Equal(t, uint8(24), n.Prefix())
	})

	t.Run("prefix beyond address width", func(t *testing.T) {
		_, err := NewNetwork(0x0a000001, 33)
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.CodeNetworkConstruction))
	})
}

func TestMask(t *testing.T) {
	tests := []struct {
		prefix uint8
		want   string
	}{
		{0, "0.0.0.0"},
		{8, "255.0.0.0"},
		{16, "255.255.0.0"},
		{21, "255.255.248.0"},
		{24, "255.255.255.0"},
		{31, "255.255.255.254"},
		{32, "255.255.255.255"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("prefix %d", tt.prefix), func(t *testing.T) {
			n, err := NewNetwork(0, tt.prefix)
			require.NoError(t, err)
			assert.Equal(t, tt.want, n.Mask().String())
		})
	}
}

func TestDerivedQuantities(t *testing.T) {
	n, err := ParseNetwork("10.0.0.17/24", "")
	require.NoError(t, err)

	assert.Equal(t, "10.0.0.0", n.NetworkAddress().String())
	assert.Equal(t, "10.0.0.255", n.Broadcast().String())
	assert.Equal(t, "255.255.255.0", n.Mask().String())
	assert.Equal(t, uint64(256), n.AddressCount())
	assert.Equal(t, uint64(254), n.UsableCount())

	first, last, ok := n.HostRange()
	require.True(t, ok)
	assert.Equal(t, "10.0.0.1", first.String())
	assert.Equal(t, "10.0.0.254", last.String())
}

func TestBoundaryNetworks(t *testing.T) {
	t.Run("/32 single address", func(t *testing.T) {
		n, err := ParseNetwork("192.168.1.0/32", "")
		require.NoError(t, err)
		assert.Equal(t, uint64(1), n.AddressCount())
		assert.Equal(t, uint64(0), n.UsableCount())
		assert.Equal(t, n.NetworkAddress(), n.Broadcast())
		_, _, ok := n.HostRange()
		assert.False(t, ok)
	})

	t.Run("/31 point to point", func(t *testing.T) {
		n, err := ParseNetwork("192.168.1.0/31", "")
		require.NoError(t, err)
		assert.Equal(t, uint64(2), n.AddressCount())
		assert.Equal(t, uint64(0), n.UsableCount())
		assert.Equal(t, "192.168.1.0", n.NetworkAddress().String())
		assert.Equal(t, "192.168.1.1", n.Broadcast().String())
		_, _, ok := n.HostRange()
		assert.False(t, ok)
	})

	t.Run("/0 whole address space", func(t *testing.T) {
		n, err := ParseNetwork("10.0.0.1/0", "")
		require.NoError(t, err)
		assert.Equal(t, uint64(1)<<32, n.AddressCount())
		assert.Equal(t, uint64(1)<<32-2, n.UsableCount())
		assert.Equal(t, "0.0.0.0", n.NetworkAddress().String())
		assert.Equal(t, "255.255.255.255", n.Broadcast().String())
	})

	t.Run("address space ceiling", func(t *testing.T) {
		n, err := ParseNetwork("255.255.255.250/29", "")
		require.NoError(t, err)
		assert.Equal(t, "255.255.255.248", n.NetworkAddress().String())
		assert.Equal(t, "255.255.255.255", n.Broadcast().String())
		first, last, ok := n.HostRange()
		require.True(t, ok)
		assert.Equal(t, "255.255.255.249", first.String())
		assert.Equal(t, "255.255.255.254", last.String())
	})
}

// Reapplying the derived mask to the network address must reproduce the
// network address for every prefix length.
func TestMaskRoundTrip(t *testing.T) {
	addr, err := ParseAddress("172.16.254.3")
	require.NoError(t, err)

	for prefix := uint8(0); prefix <= 32; prefix++ {
		n, err := NewNetwork(addr, prefix)
		require.NoError(t, err)

		netAddr := n.NetworkAddress()
		assert.Equal(t, netAddr, netAddr&n.Mask(), "prefix %d", prefix)
	}
}

func TestAddressCountFormula(t *testing.T) {
	for prefix := uint8(0); prefix <= 32; prefix++ {
		n, err := NewNetwork(0, prefix)
		require.NoError(t, err)

		wantCount := uint64(1) << (32 - prefix)
		assert.Equal(t, wantCount, n.AddressCount(), "prefix %d", prefix)

		wantUsable := uint64(0)
		if wantCount > 2 {
			wantUsable = wantCount - 2
		}
		assert.Equal(t, wantUsable, n.UsableCount(), "prefix %d", prefix)
	}
}

func TestNetworkString(t *testing.T) {
	n, err := ParseNetwork("10.0.0.17/24", "")
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.17/24", n.String())
}
