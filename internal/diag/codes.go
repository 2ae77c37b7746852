package diag

import "fmt"

type Code uint16

const (
	UnknownCode Code = 0

	// Spec tree / input decode
	SpecInfo           Code = 1000
	SpecBadJSON        Code = 1001
	SpecBadNodeKind    Code = 1002
	SpecEmptyComposite Code = 1003
	SpecBadEncoding    Code = 1004
	SpecBadResolve     Code = 1005

	// Resolution & merge
	ResolveInfo           Code = 2000
	ResolveBadResolveMode Code = 2001
	ResolveBadProjection  Code = 2002

	// Assembly
	AsmInfo             Code = 3000
	AsmFitSourceMissing Code = 3001
	AsmUnknownDataset   Code = 3002
)

func (c Code) String() string {
	return fmt.Sprintf("VL%04d", uint16(c))
}
