package diag

import (
	"fmt"
)

type Code uint16

// Every failure in this tool is fatal: the run aborts on the first error
// diagnostic and no partial manifest is emitted. Codes are grouped in
// blocks by pipeline stage.
const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Invocation
	BadArgs Code = 1001

	// IR loading
	IrParseFailed   Code = 2001
	DuplicateSymbol Code = 2002

	// Link session
	JitBuildFailed    Code = 3001
	EntrypointMissing Code = 3002

	// Registration
	UnknownMetaVarKind Code = 4001
	DuplicateNodeKind  Code = 4002

	// Address matching
	AmbiguousAddress Code = 5001
	AddressNotFound  Code = 5002
	NotADefinition   Code = 5003
)

func (c Code) String() string {
	switch {
	case c >= 1000 && c < 2000:
		return fmt.Sprintf("ARG%04d", uint16(c))
	case c >= 2000 && c < 3000:
		return fmt.Sprintf("IR%04d", uint16(c))
	case c >= 3000 && c < 4000:
		return fmt.Sprintf("JIT%04d", uint16(c))
	case c >= 4000 && c < 5000:
		return fmt.Sprintf("REG%04d", uint16(c))
	case c >= 5000 && c < 6000:
		return fmt.Sprintf("MAT%04d", uint16(c))
	}
	return fmt.Sprintf("UNK%04d", uint16(c))
}
