package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/nwaddell/cidr/internal/cidr"
)

// NetworkInfo is the serializable projection of a network's derived
// quantities, used by the table and JSON outputs.
type NetworkInfo struct {
	CIDR      string `json:"cidr"`
	Network   string `json:"network"`
	Broadcast string `json:"broadcast,omitempty"`
	Netmask   string `json:"netmask"`
	FirstHost string `json:"first_host,omitempty"`
	LastHost  string `json:"last_host,omitempty"`
	Total     uint64 `json:"total_addresses"`
	Usable    uint64 `json:"usable_addresses"`
}

// Info derives a NetworkInfo from a network. Broadcast is omitted for
// single-address networks, host fields whenever no usable range exists.
func Info(n cidr.Network) NetworkInfo {
	info := NetworkInfo{
		CIDR:    fmt.Sprintf("%s/%d", n.NetworkAddress(), n.Prefix()),
		Network: n.NetworkAddress().String(),
		Netmask: n.Mask().String(),
		Total:   n.AddressCount(),
		Usable:  n.UsableCount(),
	}
	if n.AddressCount() > 1 {
		info.Broadcast = n.Broadcast().String()
	}
	if first, last, ok := n.HostRange(); ok {
		info.FirstHost = first.String()
		info.LastHost = last.String()
	}
	return info
}

// Table writes a one-row-per-network summary table.
func Table(w io.Writer, nets []cidr.Network) error {
	table := tablewriter.NewWriter(w)
	table.Header("CIDR", "Network", "Broadcast", "Netmask", "First Host", "Last Host", "Usable")

	for _, n := range nets {
		info := Info(n)
		_ = table.Append([]string{
			info.CIDR,
			info.Network,
			orDash(info.Broadcast),
			info.Netmask,
			orDash(info.FirstHost),
			orDash(info.LastHost),
			strconv.FormatUint(info.Usable, 10),
		})
	}

	return table.Render()
}

// JSON writes all networks as an indented JSON document.
func JSON(w io.Writer, nets []cidr.Network) error {
	infos := make([]NetworkInfo, 0, len(nets))
	for _, n := range nets {
		infos = append(infos, Info(n))
	}

	output := struct {
		Networks []NetworkInfo `json:"networks"`
		Count    int           `json:"count"`
	}{
		Networks: infos,
		Count:    len(infos),
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
