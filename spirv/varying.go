package spirv

import "github.com/nagaspv/spirvwriter/ir"

// varyingClass distinguishes the two directions a varying can flow.
type varyingClass uint8

const (
	varyingInput varyingClass = iota
	varyingOutput
)

func (c varyingClass) storageClass() StorageClass {
	if c == varyingInput {
		return StorageClassInput
	}
	return StorageClassOutput
}

// writeVarying emits one global Input or Output variable for an
// entry-point interface slot, decorated per its binding.
func (w *Writer) writeVarying(module *ir.Module, class varyingClass, name string, ty ir.TypeHandle, binding ir.Binding) (Word, error) {
	pointerTypeID, err := w.pointerID(module, ty, class.storageClass())
	if err != nil {
		return 0, err
	}

	id := w.idGen.Next()
	w.declarations(instrVariable(pointerTypeID, id, class.storageClass(), nil))

	switch b := binding.(type) {
	case ir.LocationBinding:
		w.annotate(instrDecorate(id, DecorationLocation, b.Location))
		if b.Interpolation != nil {
			if err := w.decorateInterpolation(id, *b.Interpolation); err != nil {
				return 0, err
			}
		}
	case ir.BuiltinBinding:
		builtin, err := w.builtinFor(b.Builtin, class)
		if err != nil {
			return 0, err
		}
		w.annotate(instrDecorate(id, DecorationBuiltIn, Word(builtin)))
	}

	if w.options.Debug && w.options.LabelVaryings && name != "" {
		w.debugNames(instrName(id, name))
	}

	return id, nil
}

func (w *Writer) decorateInterpolation(id Word, interp ir.Interpolation) error {
	switch interp.Kind {
	case ir.InterpolationPerspective:
		// SPIR-V's default; no decoration.
	case ir.InterpolationFlat:
		w.annotate(instrDecorate(id, DecorationFlat))
	case ir.InterpolationLinear:
		w.annotate(instrDecorate(id, DecorationNoPerspective))
	}

	switch interp.Sampling {
	case ir.SamplingCenter:
		// default; no decoration.
	case ir.SamplingCentroid:
		w.annotate(instrDecorate(id, DecorationCentroid))
	case ir.SamplingSample:
		if _, err := w.caps.requireAny("sample interpolation", []Capability{CapabilitySampleRateShading}); err != nil {
			return err
		}
		w.annotate(instrDecorate(id, DecorationSample))
	}
	return nil
}

// builtinFor maps an IR builtin to its SPIR-V BuiltIn value, disambiguating
// cross-stage builtins and requesting any capability the mapping implies.
func (w *Writer) builtinFor(b ir.BuiltinValue, class varyingClass) (BuiltIn, error) {
	switch b {
	case ir.BuiltinPosition:
		if class == varyingInput {
			return BuiltInFragCoord, nil
		}
		return BuiltInPosition, nil
	case ir.BuiltinVertexIndex:
		return BuiltInVertexIndex, nil
	case ir.BuiltinInstanceIndex:
		return BuiltInInstanceIndex, nil
	case ir.BuiltinFrontFacing:
		return BuiltInFrontFacing, nil
	case ir.BuiltinFragDepth:
		return BuiltInFragDepth, nil
	case ir.BuiltinSampleIndex:
		if _, err := w.caps.requireAny("sample index", []Capability{CapabilitySampleRateShading}); err != nil {
			return 0, err
		}
		return BuiltInSampleID, nil
	case ir.BuiltinSampleMask:
		return BuiltInSampleMask, nil
	case ir.BuiltinLocalInvocationID:
		return BuiltInLocalInvocationID, nil
	case ir.BuiltinLocalInvocationIndex:
		return BuiltInLocalInvocationIndex, nil
	case ir.BuiltinGlobalInvocationID:
		return BuiltInGlobalInvocationID, nil
	case ir.BuiltinWorkGroupID:
		return BuiltInWorkgroupID, nil
	case ir.BuiltinNumWorkGroups:
		return BuiltInNumWorkgroups, nil
	case ir.BuiltinWorkGroupSize:
		return BuiltInWorkgroupSize, nil
	case ir.BuiltinViewIndex:
		if _, err := w.caps.requireAny("view index", []Capability{CapabilityMultiView}); err != nil {
			return 0, err
		}
		return BuiltInViewIndex, nil
	case ir.BuiltinPrimitiveIndex:
		if _, err := w.caps.requireAny("primitive index", []Capability{CapabilityGeometry}); err != nil {
			return 0, err
		}
		return BuiltInPrimitiveID, nil
	case ir.BuiltinBaseInstance:
		return BuiltInBaseInstance, nil
	case ir.BuiltinBaseVertex:
		return BuiltInBaseVertex, nil
	case ir.BuiltinClipDistance:
		return BuiltInClipDistance, nil
	case ir.BuiltinCullDistance:
		return BuiltInCullDistance, nil
	case ir.BuiltinPointSize:
		return BuiltInPointSize, nil
	default:
		panic("spirv: unhandled builtin value")
	}
}
