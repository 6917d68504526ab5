package diag

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestCodeString(t *testing.T) {
	tests := []struct {
		name string
		code Code
		want string
	}{
		{name: "bad args", code: BadArgs, want: "ARG1001"},
		{name: "ir parse failed", code: IrParseFailed, want: "IR2001"},
		{name: "duplicate symbol", code: DuplicateSymbol, want: "IR2002"},
		{name: "jit build failed", code: JitBuildFailed, want: "JIT3001"},
		{name: "entrypoint missing", code: EntrypointMissing, want: "JIT3002"},
		{name: "unknown metavar kind", code: UnknownMetaVarKind, want: "REG4001"},
		{name: "duplicate node kind", code: DuplicateNodeKind, want: "REG4002"},
		{name: "ambiguous address", code: AmbiguousAddress, want: "MAT5001"},
		{name: "address not found", code: AddressNotFound, want: "MAT5002"},
		{name: "not a definition", code: NotADefinition, want: "MAT5003"},
		{name: "unknown", code: UnknownCode, want: "UNK0000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.code.String(); got != tt.want {
				t.Fatalf("Code.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDiagnosticError(t *testing.T) {
	d := Errorf(AmbiguousAddress, "boilerplate for %s resolved to an ambiguous address", "AstArithmeticExpr").
		WithNote("disable identical-code folding for the boilerplate module")

	msg := d.Error()
	if !strings.Contains(msg, "MAT5001") {
		t.Errorf("error message %q missing code", msg)
	}
	if !strings.Contains(msg, "AstArithmeticExpr") {
		t.Errorf("error message %q missing subject", msg)
	}
	if !strings.Contains(msg, "note: disable identical-code folding") {
		t.Errorf("error message %q missing note", msg)
	}
}

func TestCodeOf(t *testing.T) {
	d := Errorf(NotADefinition, "symbol %q has no body in this module", "op_x")
	if got := CodeOf(d); got != NotADefinition {
		t.Fatalf("CodeOf(diag) = %v, want NotADefinition", got)
	}
	wrapped := fmt.Errorf("pipeline: %w", d)
	if got := CodeOf(wrapped); got != NotADefinition {
		t.Fatalf("CodeOf(wrapped) = %v, want NotADefinition", got)
	}
	if got := CodeOf(fmt.Errorf("plain")); got != UnknownCode {
		t.Fatalf("CodeOf(plain) = %v, want UnknownCode", got)
	}
}

func TestReporterQuietAndSeverity(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	var buf bytes.Buffer
	r := NewReporter(&buf)
	r.Infof("12 packs, 96 instances")
	r.Report(Errorf(BadArgs, "path contains ';'"))

	out := buf.String()
	if !strings.Contains(out, "12 packs, 96 instances") {
		t.Errorf("info line missing from output:\n%s", out)
	}
	if !strings.Contains(out, "error ARG1001 path contains ';'") {
		t.Errorf("error line missing from output:\n%s", out)
	}

	buf.Reset()
	r.SetQuiet(true)
	r.Infof("suppressed")
	r.Report(Errorf(BadArgs, "still shown"))
	out = buf.String()
	if strings.Contains(out, "suppressed") {
		t.Errorf("quiet mode leaked info output:\n%s", out)
	}
	if !strings.Contains(out, "still shown") {
		t.Errorf("quiet mode must not swallow errors:\n%s", out)
	}
}
