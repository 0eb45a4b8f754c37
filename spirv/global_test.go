package spirv

import (
	"testing"

	"github.com/nagaspv/spirvwriter/ir"
)

func uniformBufferModule() *ir.Module {
	return &ir.Module{
		Types: []ir.Type{
			{Inner: ir.ScalarType{Kind: ir.ScalarFloat, Width: 4}},
		},
	}
}

func TestWriteGlobalVariablesPrunesUnusedForEntryPoint(t *testing.T) {
	w, err := NewWriter(Options{Version: Version1_3})
	if err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}
	module := uniformBufferModule()
	module.GlobalVariables = []ir.GlobalVariable{
		{Name: "used", Space: ir.SpaceUniform, Type: ir.TypeHandle(0)},
		{Name: "unused", Space: ir.SpaceUniform, Type: ir.TypeHandle(0)},
	}
	if _, err := w.writeTypeDeclarationArena(module, ir.TypeHandle(0)); err != nil {
		t.Fatalf("writeTypeDeclarationArena() error = %v", err)
	}

	info := &ir.FunctionInfo{GlobalUses: []bool{true, false}}
	if err := w.writeGlobalVariables(module, info); err != nil {
		t.Fatalf("writeGlobalVariables() error = %v", err)
	}

	if len(w.globalVariables) != 2 {
		t.Fatalf("globalVariables has %d entries, want 2", len(w.globalVariables))
	}
	if w.globalVariables[0].isDummy() {
		t.Error("used global left as a dummy record")
	}
	if !w.globalVariables[1].isDummy() {
		t.Error("unused global was emitted instead of pruned")
	}
}

func TestWriteGlobalVariablesNoPruningWithoutEntryPointInfo(t *testing.T) {
	w, err := NewWriter(Options{Version: Version1_3})
	if err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}
	module := uniformBufferModule()
	module.GlobalVariables = []ir.GlobalVariable{
		{Name: "g", Space: ir.SpaceUniform, Type: ir.TypeHandle(0)},
	}
	if _, err := w.writeTypeDeclarationArena(module, ir.TypeHandle(0)); err != nil {
		t.Fatalf("writeTypeDeclarationArena() error = %v", err)
	}

	if err := w.writeGlobalVariables(module, nil); err != nil {
		t.Fatalf("writeGlobalVariables() error = %v", err)
	}
	if w.globalVariables[0].isDummy() {
		t.Error("global was pruned even though no entry point info was given")
	}
}

func TestWriteGlobalVariableDescriptorBindingDecoration(t *testing.T) {
	w, err := NewWriter(Options{Version: Version1_3})
	if err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}
	module := uniformBufferModule()
	gv := ir.GlobalVariable{
		Name:    "g",
		Space:   ir.SpaceUniform,
		Type:    ir.TypeHandle(0),
		Binding: &ir.ResourceBinding{Group: 2, Binding: 5},
	}
	if _, err := w.writeTypeDeclarationArena(module, ir.TypeHandle(0)); err != nil {
		t.Fatalf("writeTypeDeclarationArena() error = %v", err)
	}

	if _, err := w.writeGlobalVariable(module, gv); err != nil {
		t.Fatalf("writeGlobalVariable() error = %v", err)
	}
	if len(w.layout.annotations) == 0 {
		t.Fatal("writeGlobalVariable() with a binding did not emit any annotations")
	}
}

func TestStorageAccessOfStorageBufferReadsGlobalAccess(t *testing.T) {
	module := uniformBufferModule()
	gv := ir.GlobalVariable{
		Space:  ir.SpaceStorage,
		Type:   ir.TypeHandle(0),
		Access: ir.StorageAccessLoad,
	}
	access, ok := storageAccessOf(module, gv)
	if !ok {
		t.Fatal("storageAccessOf() returned ok=false for a storage-space global")
	}
	if !access.Has(ir.StorageAccessLoad) {
		t.Error("storageAccessOf() lost the Load access flag")
	}
	if access.Has(ir.StorageAccessStore) {
		t.Error("storageAccessOf() fabricated a Store access flag")
	}
}

func TestStorageAccessOfUniformHasNoAccessFlags(t *testing.T) {
	module := uniformBufferModule()
	gv := ir.GlobalVariable{Space: ir.SpaceUniform, Type: ir.TypeHandle(0)}
	if _, ok := storageAccessOf(module, gv); ok {
		t.Error("storageAccessOf() reported access flags for a uniform buffer")
	}
}

func TestGlobalVariableRecordResetForFunctionClearsHandleOnly(t *testing.T) {
	r := globalVariableRecord{ID: 3, HandleID: 9}
	r.resetForFunction()
	if r.ID != 3 {
		t.Errorf("resetForFunction() cleared ID, want it preserved: %d", r.ID)
	}
	if r.HandleID != 0 {
		t.Errorf("resetForFunction() did not clear HandleID: %d", r.HandleID)
	}
}
