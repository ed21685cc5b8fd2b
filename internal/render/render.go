// Package render turns resolved networks into text. It implements the
// single formatting contract used by the CLI: a Renderer consumes one
// network's derived quantities and produces one stanza. Pretty is the
// canonical colorized layout; Plain is the alternate fixed-column
// layout kept for pipes and diffing.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/nwaddell/cidr/internal/cidr"
)

// Stanza field labels.
const (
	labelNetwork   = "Network:"
	labelBroadcast = "Broadcast:"
	labelNetmask   = "Netmask:"
	labelAddress   = "Address:"
	labelFirstHost = "First Host:"
	labelLastHost  = "Last Host:"
	labelTotal     = "Total Addrs:"
	labelUsable    = "Usable Addrs:"
	labelSingle    = "1 Address Total"
)

// Renderer produces one text stanza from one resolved network.
type Renderer interface {
	Render(n cidr.Network) string
}

// RenderAll renders every network and joins the stanzas with a blank
// line between them.
func RenderAll(r Renderer, nets []cidr.Network) string {
	stanzas := make([]string, 0, len(nets))
	for _, n := range nets {
		stanzas = append(stanzas, r.Render(n))
	}
	return strings.Join(stanzas, "\n")
}

// Pretty renders the canonical colorized stanza: bold magenta header,
// right-aligned yellow labels, hex column before the dotted quad.
// Color output honors the fatih/color global NoColor switch.
type Pretty struct{}

// Render implements Renderer.
func (Pretty) Render(n cidr.Network) string {
	var (
		header = color.New(color.Bold, color.FgMagenta)
		label  = color.New(color.FgYellow)
		hexCol = color.New(color.FgHiBlack)
		quad   = color.New(color.FgCyan)
		counts = color.New(color.FgHiRed)
	)

	single := n.AddressCount() == 1

	labels := []string{
		labelNetwork, labelBroadcast, labelNetmask,
		labelFirstHost, labelLastHost, labelTotal, labelUsable,
	}
	if single {
		labels = []string{labelAddress, labelNetmask, labelSingle}
	}
	width := 0
	for _, s := range labels {
		if len(s) > width {
			width = len(s)
		}
	}

	pad := func(s string) string {
		return label.Sprint(fmt.Sprintf("%*s", width, s))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", header.Sprintf("%s/%d:", n.NetworkAddress(), n.Prefix()))

	row := func(name string, a cidr.Address) {
		fmt.Fprintf(&b, "  %s  %s  %s\n",
			pad(name), hexCol.Sprint(a.Hex()), quad.Sprint(a.String()))
	}

	if single {
		row(labelAddress, n.NetworkAddress())
		row(labelNetmask, n.Mask())
		fmt.Fprintf(&b, "  %s\n", pad(labelSingle))
		return b.String()
	}

	row(labelNetwork, n.NetworkAddress())
	row(labelBroadcast, n.Broadcast())
	row(labelNetmask, n.Mask())

	if first, last, ok := n.HostRange(); ok {
		row(labelFirstHost, first)
		row(labelLastHost, last)
	}

	fmt.Fprintf(&b, "  %s  %s\n", pad(labelTotal),
		counts.Sprint(strconv.FormatUint(n.AddressCount(), 10)))
	fmt.Fprintf(&b, "  %s  %s\n", pad(labelUsable),
		counts.Sprint(strconv.FormatUint(n.UsableCount(), 10)))

	return b.String()
}

// Plain renders the alternate fixed-column layout: no color, labels
// left-aligned, same field set and ordering as Pretty.
type Plain struct{}

// Render implements Renderer.
func (Plain) Render(n cidr.Network) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s/%d\n", n.NetworkAddress(), n.Prefix())

	row := func(name string, a cidr.Address) {
		fmt.Fprintf(&b, "  %-14s %s  %s\n", name, a.Hex(), a.String())
	}

	if n.AddressCount() == 1 {
		row(labelAddress, n.NetworkAddress())
		row(labelNetmask, n.Mask())
		fmt.Fprintf(&b, "  %s\n", labelSingle)
		return b.String()
	}

	row(labelNetwork, n.NetworkAddress())
	row(labelBroadcast, n.Broadcast())
	row(labelNetmask, n.Mask())

	if first, last, ok := n.HostRange(); ok {
		row(labelFirstHost, first)
		row(labelLastHost, last)
	}

	fmt.Fprintf(&b, "  %-14s %d\n", labelTotal, n.AddressCount())
	fmt.Fprintf(&b, "  %-14s %d\n", labelUsable, n.UsableCount())

	return b.String()
}
