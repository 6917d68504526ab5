package diag

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	errorLabel   = color.New(color.FgRed, color.Bold)
	warningLabel = color.New(color.FgYellow, color.Bold)
	infoLabel    = color.New(color.FgCyan)
)

// Reporter prints diagnostics to a stream (stderr in the tool).
// Manifest output goes to stdout and never flows through here.
type Reporter struct {
	out   io.Writer
	quiet bool
}

func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

// SetQuiet suppresses info-level output.
func (r *Reporter) SetQuiet(quiet bool) {
	r.quiet = quiet
}

// Report prints a single diagnostic.
func (r *Reporter) Report(d *Diagnostic) {
	if d == nil {
		return
	}
	if d.Severity == SevInfo && r.quiet {
		return
	}
	label := infoLabel
	switch d.Severity {
	case SevError:
		label = errorLabel
	case SevWarning:
		label = warningLabel
	}
	fmt.Fprintf(r.out, "%s %s %s\n", label.Sprint(severityWord(d.Severity)), d.Code.String(), d.Message)
	for _, n := range d.Notes {
		fmt.Fprintf(r.out, "  note: %s\n", n.Msg)
	}
}

// ReportError prints err; diagnostics keep their code, plain errors are
// wrapped under UnknownCode.
func (r *Reporter) ReportError(err error) {
	if err == nil {
		return
	}
	if d, ok := err.(*Diagnostic); ok {
		r.Report(d)
		return
	}
	r.Report(&Diagnostic{Severity: SevError, Code: UnknownCode, Message: err.Error()})
}

// Infof prints an informational line (suppressed by quiet mode).
func (r *Reporter) Infof(format string, args ...any) {
	if r.quiet {
		return
	}
	fmt.Fprintf(r.out, "%s\n", fmt.Sprintf(format, args...))
}

func severityWord(s Severity) string {
	switch s {
	case SevError:
		return "error"
	case SevWarning:
		return "warning"
	}
	return "info"
}
