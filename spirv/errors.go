package spirv

import (
	"fmt"

	"github.com/nagaspv/spirvwriter/ir"
)

// UnsupportedVersionError is returned when a Writer is constructed for a
// SPIR-V version this writer does not target (only major version 1 is
// accepted).
type UnsupportedVersionError struct {
	Major, Minor uint8
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("spirv: unsupported version %d.%d", e.Major, e.Minor)
}

// MissingCapabilitiesError is returned by the capability gate when none of
// the candidate capabilities for a feature are present in the available
// whitelist.
type MissingCapabilitiesError struct {
	What         string
	Alternatives []Capability
}

func (e *MissingCapabilitiesError) Error() string {
	return fmt.Sprintf("spirv: missing capabilities for %s (need one of %v)", e.What, e.Alternatives)
}

// EntryPointNotFoundError is returned when PipelineOptions name a shader
// stage and entry point that do not match any entry point in the module.
type EntryPointNotFoundError struct {
	Stage ir.ShaderStage
	Name  string
}

func (e *EntryPointNotFoundError) Error() string {
	return fmt.Sprintf("spirv: entry point %q for stage %v not found", e.Name, e.Stage)
}
