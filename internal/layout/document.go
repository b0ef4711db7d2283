package layout

// CellStyle names the visual roles a generated cell can take. Every style
// carries the same thin border; the document decides how a role is drawn.
type CellStyle int

const (
	StyleBorder   CellStyle = iota // populated cell with no emphasis
	StyleTitle                     // sheet title, bold 14pt, centered
	StyleHeader                    // column header, bold on gray
	StyleBold                      // category titles and row labels
	StyleInput                     // editable score cell, yellow
	StyleComputed                  // aggregate and contribution values
	StyleFinal                     // final grade label and value, bold 12pt
)

func (s CellStyle) String() string {
	switch s {
	case StyleBorder:
		return "border"
	case StyleTitle:
		return "title"
	case StyleHeader:
		return "header"
	case StyleBold:
		return "bold"
	case StyleInput:
		return "input"
	case StyleComputed:
		return "computed"
	case StyleFinal:
		return "final"
	default:
		return "unknown"
	}
}

// RangeRule restricts entries in a set of cells to a closed decimal interval.
type RangeRule struct {
	Min          float64
	Max          float64
	ErrorTitle   string
	ErrorMessage string
}

// ScoreRule is the rule attached to every score input cell.
var ScoreRule = RangeRule{
	Min:          0,
	Max:          100,
	ErrorTitle:   "Invalid Input",
	ErrorMessage: "Please enter a value between 0 and 100",
}

// Document is the sheet the generator writes into. Cell references use A1
// notation. Implementations: Recorder (in memory) and workbook.Sheet (xlsx).
type Document interface {
	// Reset clears everything a previous generation may have written:
	// values, formulas, styles, merged ranges and validations.
	Reset() error
	SetColumnWidth(col string, width float64) error
	SetValue(cell string, value any) error
	SetFormula(cell, formula string) error
	SetStyle(cell string, style CellStyle) error
	Merge(topLeft, bottomRight string) error
	AddValidation(sqref []string, rule RangeRule) error
}
