// Package common holds enums shared by configuration and the packages that
// consume it, so that neither has to import the other.
package common

//go:generate go tool go-enum --names --marshal

// Maximum size of an expression that is still parsed and displayed.
// ENUM(short, normal, long, unlimited)
type ShowLength int

// Threshold returns the character count at which parsing is skipped, 0
// when there is no limit.
func (s ShowLength) Threshold() int {
	switch s {
	case ShowLengthShort:
		return 6000
	case ShowLengthNormal:
		return 20000
	case ShowLengthLong:
		return 250000
	case ShowLengthUnlimited:
		return 0
	default:
		return 50000
	}
}

// Requested export format.
// ENUM(text, matlab, tex, mathml, omml, xml, wxmx)
type OutputFmt int

func (o OutputFmt) Ext() string {
	switch o {
	case OutputFmtText:
		return ".txt"
	case OutputFmtMatlab:
		return ".m"
	case OutputFmtTex:
		return ".tex"
	case OutputFmtMathml:
		return ".mml"
	case OutputFmtOmml:
		return ".omml.xml"
	case OutputFmtXml:
		return ".xml"
	case OutputFmtWxmx:
		return ".wxmx"
	default:
		// this should never happen
		panic("unsupported format requested")
	}
}
