package diag

import (
	"errors"
	"fmt"
	"strings"
)

type Note struct {
	Msg string
}

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Notes    []Note
}

// Diagnostic реализует error: весь конвейер возвращает ошибки явно,
// а печатью занимается Reporter на самом верху.
func (d *Diagnostic) Error() string {
	var sb strings.Builder
	sb.WriteString(d.Code.String())
	sb.WriteString(": ")
	sb.WriteString(d.Message)
	for _, n := range d.Notes {
		sb.WriteString("\n  note: ")
		sb.WriteString(n.Msg)
	}
	return sb.String()
}

// Errorf constructs a fatal diagnostic with a formatted message.
func Errorf(code Code, format string, args ...any) *Diagnostic {
	return &Diagnostic{
		Severity: SevError,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
	}
}

// WithNote appends a note and returns the diagnostic for chaining.
func (d *Diagnostic) WithNote(format string, args ...any) *Diagnostic {
	d.Notes = append(d.Notes, Note{Msg: fmt.Sprintf(format, args...)})
	return d
}

// CodeOf returns the code of the diagnostic wrapped in err, or UnknownCode
// if err does not carry one.
func CodeOf(err error) Code {
	var d *Diagnostic
	if errors.As(err, &d) {
		return d.Code
	}
	return UnknownCode
}
