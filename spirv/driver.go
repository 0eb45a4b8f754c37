package spirv

import "github.com/nagaspv/spirvwriter/ir"

// writeLogicalLayout assembles every section of the logical layout in
// SPIR-V's mandated order. Step numbering below matches the driver
// contract this is grounded on.
func (w *Writer) writeLogicalLayout(module *ir.Module, info *ir.ModuleInfo, epIndex int) error {
	// 1. Storage-buffer extension scan.
	if w.usesStorageBuffers(module) && w.options.Version.Minor < 3 && w.options.Version.Major == 1 {
		instrExtension("SPV_KHR_storage_buffer_storage_class").ToWords(&w.layout.extensions)
	}

	// 2. Multiview extension scan.
	if w.usesViewIndex(module) {
		instrExtension("SPV_KHR_multiview").ToWords(&w.layout.extensions)
	}

	// 3. Void type.
	instrTypeVoid(w.voidTypeID).ToWords(&w.layout.declarations)

	// 4. GLSL.std.450 ext-inst import.
	instrExtInstImport(w.extInstImportID, "GLSL.std.450").ToWords(&w.layout.extInstImports)

	// 5. Debug source.
	if w.options.Debug {
		instrSource(2 /* GLSL */, 450).ToWords(&w.layout.debugSource)
	}

	// 6. Size the constant-id table and emit scalars; 8. composites.
	if err := w.writeConstants(module); err != nil {
		return err
	}

	// 7. Emit every IR type.
	for h := range module.Types {
		if _, err := w.writeTypeDeclarationArena(module, ir.TypeHandle(h)); err != nil {
			return err
		}
	}

	var epInfo *ir.FunctionInfo
	if epIndex >= 0 {
		ep := info.EntryPoint(epIndex)
		epInfo = &ep
	}

	// 9. Globals.
	if err := w.writeGlobalVariables(module, epInfo); err != nil {
		return err
	}

	// 10. Functions, pruned by entry-point dominance.
	if err := w.writeFunctions(module, info, epIndex); err != nil {
		return err
	}

	// 11. Entry points.
	if err := w.writeEntryPoints(module, info, epIndex); err != nil {
		return err
	}

	// 12. Capability flush.
	if len(module.EntryPoints) == 0 {
		w.caps.used[CapabilityLinkage] = true
	}
	caps := w.CapabilitiesUsed()
	for _, c := range caps {
		instrCapability(c).ToWords(&w.layout.capabilities)
	}

	// 13. Memory model.
	instrMemoryModel(AddressingModelLogical, MemoryModelGLSL450).ToWords(&w.layout.memoryModel)

	return nil
}

func (w *Writer) usesStorageBuffers(module *ir.Module) bool {
	for _, gv := range module.GlobalVariables {
		if gv.Space == ir.SpaceStorage {
			return true
		}
	}
	return false
}

func (w *Writer) usesViewIndex(module *ir.Module) bool {
	for _, fn := range module.Functions {
		if argsUseViewIndex(fn.Arguments, module) {
			return true
		}
		if fn.Result != nil && bindingIsViewIndex(fn.Result.Binding) {
			return true
		}
	}
	return false
}

func argsUseViewIndex(args []ir.FunctionArgument, module *ir.Module) bool {
	for _, a := range args {
		if bindingIsViewIndex(a.Binding) {
			return true
		}
		if s, ok := module.Types[a.Type].Inner.(ir.StructType); ok {
			for _, m := range s.Members {
				if bindingIsViewIndex(m.Binding) {
					return true
				}
			}
		}
	}
	return false
}

func bindingIsViewIndex(b *ir.Binding) bool {
	if b == nil {
		return false
	}
	bi, ok := (*b).(ir.BuiltinBinding)
	return ok && bi.Builtin == ir.BuiltinViewIndex
}
