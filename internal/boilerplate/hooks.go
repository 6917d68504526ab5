package boilerplate

import (
	"pochivm/internal/diag"
	"pochivm/internal/jitlink"
	"pochivm/internal/metavar"
	"pochivm/internal/nodekind"
)

// Wire names of the host-linked symbols. JIT'd enumeration code resolves
// these through the host-process generator; the Go implementations below
// forward to the active registry singleton.
const (
	// SymRegisterBoilerplate is the one public registration hook.
	SymRegisterBoilerplate = "__pochivm_register_fast_interp_boilerplate__"
	// SymReportInfo is an opaque reporting sink used by enumeration code.
	SymReportInfo = "__pochivm_report_info__"
	// SymBuildLibraryEntry is the well-known enumeration entry point.
	SymBuildLibraryEntry = "__pochivm_build_fast_interp_library__"
)

func init() {
	jitlink.RegisterHostSymbol(SymRegisterBoilerplate)
	jitlink.RegisterHostSymbol(SymReportInfo)
}

// current is the registry singleton the hook forwards to. Its lifecycle
// brackets exactly one entry-point invocation: Activate before, Deactivate
// immediately after. Single-threaded by the tool's execution model.
var current *Registry

// Activate installs r as the hook target.
func Activate(r *Registry) error {
	if current != nil {
		return diag.Errorf(diag.JitBuildFailed,
			"a boilerplate registry is already active")
	}
	current = r
	return nil
}

// Deactivate removes the active registry.
func Deactivate() {
	current = nil
}

// RegisterFastInterpBoilerplate is the Go implementation behind
// SymRegisterBoilerplate.
func RegisterFastInterpBoilerplate(kind nodekind.Kind, list *metavar.MaterializedList) error {
	if current == nil {
		return diag.Errorf(diag.JitBuildFailed,
			"registration hook called outside an entry-point invocation")
	}
	return current.Register(kind, list)
}

// ReportInfo is the Go implementation behind SymReportInfo. The payload is
// opaque to this tool.
func ReportInfo(...uint64) {}
