package combo

import (
	"strings"
)

// Name is a parsed combo part number.
// Example: STM32F407V(E-G)Tx -> Text "STM32F407V", Group [E G], Text "Tx"
type Name struct {
	Parts []*Part `@@*`
}

// Part is either a bracketed size group or a run of plain text.
type Part struct {
	Group *SizeGroup `  @@`
	Text  string     `| @( Text | Dash )`
}

// SizeGroup is the bracketed, dash-separated enumeration of size variants.
// The order of Variants is the order of the repeated Ram/Flash values in the
// device description.
type SizeGroup struct {
	Variants []string `LParen @Text ( Dash @Text )* RParen`
}

// SizeGroup returns the first size group of the name, or nil if the name has
// none.
func (n *Name) SizeGroup() *SizeGroup {
	if n == nil {
		return nil
	}
	for _, p := range n.Parts {
		if p.Group != nil {
			return p.Group
		}
	}
	return nil
}

// Index returns the position of variant within the group, ignoring case, or
// -1 if the group does not list it.
func (g *SizeGroup) Index(variant string) int {
	if g == nil {
		return -1
	}
	for i, v := range g.Variants {
		if strings.EqualFold(v, variant) {
			return i
		}
	}
	return -1
}

// String reassembles the combo name.
func (n *Name) String() string {
	var b strings.Builder
	for _, p := range n.Parts {
		if p.Group != nil {
			b.WriteString("(" + strings.Join(p.Group.Variants, "-") + ")")
			continue
		}
		b.WriteString(p.Text)
	}
	return b.String()
}
