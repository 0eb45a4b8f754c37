package spirv

import (
	"errors"
	"testing"

	"github.com/nagaspv/spirvwriter/ir"
)

func emptyModule() *ir.Module { return &ir.Module{} }

func TestWriteEmptyModuleBound(t *testing.T) {
	w, err := NewWriter(Options{Version: Version1_3})
	if err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}
	module := emptyModule()
	info, err := ir.AnalyzeModule(module)
	if err != nil {
		t.Fatalf("AnalyzeModule() error = %v", err)
	}

	words, err := w.Write(module, info, nil)
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if len(words) < 5 {
		t.Fatalf("Write() produced %d words, want at least the 5-word header", len(words))
	}
	if words[0] != MagicNumber {
		t.Errorf("word[0] = 0x%08X, want magic 0x%08X", words[0], uint32(MagicNumber))
	}
	// extInstImportID=1, voidTypeID=2 are allocated during reset; an empty
	// module allocates nothing further, so the bound is 3.
	if bound := words[3]; bound != 3 {
		t.Errorf("bound = %d, want 3 for an empty module", bound)
	}
}

func TestWriteEmptyModuleAddsLinkageCapability(t *testing.T) {
	w, err := NewWriter(Options{Version: Version1_3})
	if err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}
	module := emptyModule()
	info, err := ir.AnalyzeModule(module)
	if err != nil {
		t.Fatalf("AnalyzeModule() error = %v", err)
	}
	if _, err := w.Write(module, info, nil); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	found := false
	for _, c := range w.CapabilitiesUsed() {
		if c == CapabilityLinkage {
			found = true
		}
	}
	if !found {
		t.Error("Write() of a module with no entry points did not request CapabilityLinkage")
	}
}

func TestWriteRejectsUnsupportedMajorVersion(t *testing.T) {
	_, err := NewWriter(Options{Version: Version{Major: 2, Minor: 0}})
	if err == nil {
		t.Fatal("NewWriter() with major version 2 returned nil error")
	}
	var uve *UnsupportedVersionError
	if !errors.As(err, &uve) {
		t.Fatalf("error type = %T, want *UnsupportedVersionError", err)
	}
}

func TestWriteStorageBufferRequiresExtensionBelow1_3(t *testing.T) {
	w, err := NewWriter(Options{Version: Version{Major: 1, Minor: 0}})
	if err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}
	module := &ir.Module{
		Types: []ir.Type{
			{Inner: ir.ScalarType{Kind: ir.ScalarFloat, Width: 4}},
			{Inner: ir.PointerType{Base: ir.TypeHandle(0), Space: ir.SpaceStorage}},
		},
		GlobalVariables: []ir.GlobalVariable{
			{Space: ir.SpaceStorage, Type: ir.TypeHandle(1)},
		},
	}
	info, err := ir.AnalyzeModule(module)
	if err != nil {
		t.Fatalf("AnalyzeModule() error = %v", err)
	}
	if _, err := w.Write(module, info, nil); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if len(w.layout.extensions) == 0 {
		t.Error("Write() of a storage-buffer module targeting SPIR-V 1.0 emitted no extension")
	}
}

func TestWriteStorageBufferNoExtensionAt1_3(t *testing.T) {
	w, err := NewWriter(Options{Version: Version1_3})
	if err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}
	module := &ir.Module{
		Types: []ir.Type{
			{Inner: ir.ScalarType{Kind: ir.ScalarFloat, Width: 4}},
			{Inner: ir.PointerType{Base: ir.TypeHandle(0), Space: ir.SpaceStorage}},
		},
		GlobalVariables: []ir.GlobalVariable{
			{Space: ir.SpaceStorage, Type: ir.TypeHandle(1)},
		},
	}
	info, err := ir.AnalyzeModule(module)
	if err != nil {
		t.Fatalf("AnalyzeModule() error = %v", err)
	}
	if _, err := w.Write(module, info, nil); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if len(w.layout.extensions) != 0 {
		t.Error("Write() of a storage-buffer module already targeting 1.3 emitted an unnecessary extension")
	}
}

func TestWritePipelineEntryPointNotFound(t *testing.T) {
	w, err := NewWriter(Options{Version: Version1_3})
	if err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}
	module := emptyModule()
	info, err := ir.AnalyzeModule(module)
	if err != nil {
		t.Fatalf("AnalyzeModule() error = %v", err)
	}
	_, err = w.Write(module, info, &PipelineOptions{ShaderStage: ir.StageFragment, EntryPoint: "main"})
	if err == nil {
		t.Fatal("Write() with a pipeline entry point absent from the module returned nil error")
	}
	var epnf *EntryPointNotFoundError
	if !errors.As(err, &epnf) {
		t.Fatalf("error type = %T, want *EntryPointNotFoundError", err)
	}
}

func TestWriteCapabilityDenialPropagatesFromTypeDeclaration(t *testing.T) {
	w, err := NewWriter(Options{Version: Version1_3, Capabilities: []Capability{CapabilityShader}})
	if err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}
	module := &ir.Module{
		Types: []ir.Type{
			{Inner: ir.ScalarType{Kind: ir.ScalarFloat, Width: 8}},
		},
	}
	info, err := ir.AnalyzeModule(module)
	if err != nil {
		t.Fatalf("AnalyzeModule() error = %v", err)
	}
	_, err = w.Write(module, info, nil)
	if err == nil {
		t.Fatal("Write() of an f64-typed module with a restricted whitelist returned nil error")
	}
	var mce *MissingCapabilitiesError
	if !errors.As(err, &mce) {
		t.Fatalf("error type = %T, want *MissingCapabilitiesError", err)
	}
}
