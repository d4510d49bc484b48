// Package options contains the program options.
package options

import "strings"

// Parameters contains file path options.
type Parameters struct {
	Input  string `flag:"i" usage:"input code document"`
	Output string `flag:"o" usage:"output report file (default: stdout)"`
	Batch  string `flag:"batch" usage:"batch process files matching pattern (e.g. *.txt)"`
}

// Flags contains behavior options.
type Flags struct {
	Format string `flag:"f" usage:"report format: text, yaml (default: from output file extension)"`
	Dump   bool   `flag:"dump" usage:"dump the decoded document structure"`
	Debug  bool   `flag:"debug" usage:"enable debug logging"`
	Quiet  bool   `flag:"q" usage:"quiet mode"`
}

// OutputFlags contains output formatting options.
type OutputFlags struct {
	Pseudocode bool `flag:"c" usage:"render C like pseudocode instead of prose"`
	Both       bool `flag:"both" usage:"render prose and pseudocode"`
	Comments   bool `flag:"comments" usage:"append decimal values to hex numbers"`
}

// Program options of the decoder.
type Program struct {
	Parameters
	Flags
	OutputFlags
}

// Format of a report.
type Format string

// Supported report formats.
const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

// FormatFromString returns the format for the given name. It returns an empty
// format for unsupported names.
func FormatFromString(name string) (Format, bool) {
	switch strings.ToLower(name) {
	case "text", "txt":
		return FormatText, true
	case "yaml", "yml":
		return FormatYAML, true
	default:
		return "", false
	}
}

// Mode selects the renderings of every instruction.
type Mode int

// Supported render modes.
const (
	ModeProse Mode = iota
	ModePseudocode
	ModeBoth
)

// Report defines options to control the report output.
type Report struct {
	Format   Format
	Mode     Mode
	Comments bool // append decimal values to rendered hex numbers
}

// NewReport returns a new report options instance with default options.
func NewReport(format Format) Report {
	return Report{
		Format: format,
		Mode:   ModeProse,
	}
}
