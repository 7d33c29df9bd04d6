package cell

//go:generate go tool go-enum --names --marshal

// Rendering style of a cell. Text cells are measured and painted according
// to their style, composite cells use it mostly for their punctuation.
// ENUM(default, variable, number, function, specialConstant, greekConstant, string, operator, input, mainPrompt, otherPrompt, label, userLabel, warning, error, text, heading6, heading5, subsubsection, subsection, section, title)
type TextStyle int

// Semantic category of a cell, set by the parser from the context the cell
// was found in.
// ENUM(default, mainPrompt, prompt, label, input, error, warning, text, subsection, subsubsection, heading5, heading6, section, title, image, slideshow, group)
type CellType int

// Kind of worksheet entry.
// ENUM(code, text, title, section, subsection, subsubsection, heading5, heading6, image, pagebreak)
type GroupType int

// IsHeading reports whether entries of this type are part of the document
// outline.
func (g GroupType) IsHeading() bool {
	switch g {
	case GroupTypeTitle, GroupTypeSection, GroupTypeSubsection, GroupTypeSubsubsection, GroupTypeHeading5, GroupTypeHeading6:
		return true
	}
	return false
}

// SectioningLevel is the level stored in the "sectioning_level" attribute.
func (g GroupType) SectioningLevel() int {
	switch g {
	case GroupTypeTitle:
		return 1
	case GroupTypeSection:
		return 2
	case GroupTypeSubsection:
		return 3
	case GroupTypeSubsubsection:
		return 4
	case GroupTypeHeading5:
		return 5
	case GroupTypeHeading6:
		return 6
	}
	return 0
}

// EditorType returns type of the editable part of the entry.
func (g GroupType) EditorType() CellType {
	switch g {
	case GroupTypeCode:
		return CellTypeInput
	case GroupTypeTitle:
		return CellTypeTitle
	case GroupTypeSection:
		return CellTypeSection
	case GroupTypeSubsection:
		return CellTypeSubsection
	case GroupTypeSubsubsection:
		return CellTypeSubsubsection
	case GroupTypeHeading5:
		return CellTypeHeading5
	case GroupTypeHeading6:
		return CellTypeHeading6
	}
	return CellTypeText
}

// TextStyle returns the style editor text of this type is painted with.
func (t CellType) TextStyle() TextStyle {
	switch t {
	case CellTypeInput:
		return TextStyleInput
	case CellTypeTitle:
		return TextStyleTitle
	case CellTypeSection:
		return TextStyleSection
	case CellTypeSubsection:
		return TextStyleSubsection
	case CellTypeSubsubsection:
		return TextStyleSubsubsection
	case CellTypeHeading5:
		return TextStyleHeading5
	case CellTypeHeading6:
		return TextStyleHeading6
	case CellTypeError:
		return TextStyleError
	case CellTypeWarning:
		return TextStyleWarning
	case CellTypeLabel:
		return TextStyleLabel
	}
	return TextStyleText
}

// XMLName is the value of editor "type" attribute.
func (t CellType) XMLName() string {
	switch t {
	case CellTypeInput:
		return "input"
	case CellTypeTitle:
		return "title"
	case CellTypeSection:
		return "section"
	case CellTypeSubsection:
		return "subsection"
	case CellTypeSubsubsection:
		return "subsubsection"
	case CellTypeHeading5:
		return "heading5"
	case CellTypeHeading6:
		return "heading6"
	}
	return "text"
}

// Fraction layout.
type FracStyle int

const (
	FracNormal FracStyle = iota
	FracChoose
	FracDiff
)

// Sum layout.
type SumStyle int

const (
	SumSum SumStyle = iota
	SumProd
	SumList
)

// Integral layout.
type IntStyle int

const (
	IntIndefinite IntStyle = iota
	IntDefinite
)
