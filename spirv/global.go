package spirv

import "github.com/nagaspv/spirvwriter/ir"

// globalVariableRecord tracks one IR global's SPIR-V id plus the
// per-function loaded-value id for opaque (Handle-class) resources. A
// dummy record (ID == 0) preserves 1:1 index alignment with the IR global
// arena when that global is pruned for the selected entry point.
type globalVariableRecord struct {
	ID       Word
	HandleID Word // loaded value of an opaque handle global, current function only
}

func (g *globalVariableRecord) resetForFunction() {
	g.HandleID = 0
}

func (g globalVariableRecord) isDummy() bool { return g.ID == 0 }

// writeGlobalVariables emits every IR global variable, or a dummy record
// when restricted to a single entry point that never uses it.
func (w *Writer) writeGlobalVariables(module *ir.Module, epInfo *ir.FunctionInfo) error {
	w.globalVariables = make([]globalVariableRecord, len(module.GlobalVariables))

	for h, gv := range module.GlobalVariables {
		if epInfo != nil && !epInfo.UsesGlobal(ir.GlobalVariableHandle(h)) {
			continue // leave the dummy (zero) record
		}
		id, err := w.writeGlobalVariable(module, gv)
		if err != nil {
			return err
		}
		w.globalVariables[h] = globalVariableRecord{ID: id}
	}
	return nil
}

func (w *Writer) writeGlobalVariable(module *ir.Module, gv ir.GlobalVariable) (Word, error) {
	class := addressSpaceToStorageClass(gv.Space)
	typeID, err := w.pointerID(module, gv.Type, class)
	if err != nil {
		return 0, err
	}

	var initWord *Word
	if gv.Init != nil {
		id := w.constantIDs[*gv.Init]
		initWord = &id
	}

	id := w.idGen.Next()
	w.declarations(instrVariable(typeID, id, class, initWord))

	if access, ok := storageAccessOf(module, gv); ok {
		if !access.Has(ir.StorageAccessLoad) {
			w.annotate(instrDecorate(id, DecorationNonReadable))
		}
		if !access.Has(ir.StorageAccessStore) {
			w.annotate(instrDecorate(id, DecorationNonWritable))
		}
	}

	if gv.Binding != nil {
		w.annotate(instrDecorate(id, DecorationDescriptorSet, gv.Binding.Group))
		w.annotate(instrDecorate(id, DecorationBinding, gv.Binding.Binding))
	}

	if w.options.Debug && gv.Name != "" {
		w.debugNames(instrName(id, gv.Name))
	}

	return id, nil
}

// storageAccessOf reads a global's storage-access flags: off the image type
// for a storage image, or from the global's own Access field for a
// storage-space global; returns ok=false for globals that carry no access
// flags (e.g. uniform buffers, samplers).
func storageAccessOf(module *ir.Module, gv ir.GlobalVariable) (ir.StorageAccess, bool) {
	switch t := module.Types[gv.Type].Inner.(type) {
	case ir.ImageType:
		if t.Class == ir.ImageClassStorage {
			return t.Access, true
		}
	}
	if gv.Space == ir.SpaceStorage {
		return gv.Access, true
	}
	return 0, false
}
