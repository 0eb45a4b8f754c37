package spirv

import (
	"fmt"
	"sort"

	"github.com/nagaspv/spirvwriter/ir"
)

// Writer is the SPIR-V module writer. It is created once per set of
// options and reused across modules; every Write call begins with an
// internal reset so ids never alias across modules.
type Writer struct {
	options Options

	idGen idGenerator
	caps  capabilitySet

	voidTypeID      Word
	extInstImportID Word

	typeIDs         map[string]Word
	functionTypeIDs map[string]Word
	cachedConstants map[constantKey]Word
	constantIDs     []Word
	globalVariables []globalVariableRecord
	functionIDs     map[ir.FunctionHandle]Word

	layout   LogicalLayout
	physical PhysicalLayout
}

// NewWriter validates options and constructs a Writer. Only major version
// 1 is accepted.
func NewWriter(options Options) (*Writer, error) {
	if options.Version.Major != 1 {
		return nil, &UnsupportedVersionError{Major: options.Version.Major, Minor: options.Version.Minor}
	}
	w := &Writer{options: options}
	w.reset()
	return w, nil
}

// reset restores interning tables, layout buffers, and the id generator to
// empty, preserving option-derived config, and reseeds the ext-inst-import
// id before the void type id (in that order, matching the source this was
// grounded on).
func (w *Writer) reset() {
	w.idGen.reset()
	w.caps.reset(w.options.Capabilities)
	w.typeIDs = make(map[string]Word)
	w.functionTypeIDs = make(map[string]Word)
	w.cachedConstants = make(map[constantKey]Word)
	w.constantIDs = nil
	w.globalVariables = nil
	w.functionIDs = make(map[ir.FunctionHandle]Word)
	w.layout.reset()
	w.physical = newPhysicalLayout(w.options.Version)

	w.extInstImportID = w.idGen.Next()
	w.voidTypeID = w.idGen.Next()
}

// CapabilitiesUsed returns the capability set accumulated by the most
// recent Write call, sorted for determinism.
func (w *Writer) CapabilitiesUsed() []Capability {
	caps := w.caps.list()
	sort.Slice(caps, func(i, j int) bool { return caps[i] < caps[j] })
	return caps
}

// --- buffer append helpers, shared by every emission file. ---

func (w *Writer) declarations(i Instruction) { i.ToWords(&w.layout.declarations) }
func (w *Writer) annotate(i Instruction)     { i.ToWords(&w.layout.annotations) }
func (w *Writer) debugNames(i Instruction)   { i.ToWords(&w.layout.debugNames) }
func (w *Writer) functions(i Instruction)    { i.ToWords(&w.layout.functions) }

// Write resets the writer, resolves the requested pipeline entry point (if
// any), assembles the logical layout, computes the physical header, and
// serializes the result as a flat word stream.
func (w *Writer) Write(module *ir.Module, info *ir.ModuleInfo, pipeline *PipelineOptions) ([]Word, error) {
	w.reset()

	epIndex := -1
	if pipeline != nil {
		found := false
		for i, ep := range module.EntryPoints {
			if ep.Stage == pipeline.ShaderStage && ep.Name == pipeline.EntryPoint {
				epIndex = i
				found = true
				break
			}
		}
		if !found {
			return nil, &EntryPointNotFoundError{Stage: pipeline.ShaderStage, Name: pipeline.EntryPoint}
		}
	}

	if err := w.writeLogicalLayout(module, info, epIndex); err != nil {
		return nil, fmt.Errorf("spirv: writing logical layout: %w", err)
	}

	w.physical.Bound = w.idGen.next

	var out []Word
	w.physical.ToWords(&out)
	w.layout.Words(&out)
	return out, nil
}
