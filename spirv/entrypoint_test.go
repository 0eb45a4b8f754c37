package spirv

import (
	"testing"

	"github.com/nagaspv/spirvwriter/ir"
)

func TestWriteVertexForcesPointSize(t *testing.T) {
	w, err := NewWriter(Options{Version: Version1_3, ForcePointSize: true})
	if err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}

	var resultBinding ir.Binding = ir.LocationBinding{Location: 0}
	module := &ir.Module{
		Types: []ir.Type{{Inner: ir.ScalarType{Kind: ir.ScalarFloat, Width: 4}}},
		Functions: []ir.Function{
			{Result: &ir.FunctionResult{Type: ir.TypeHandle(0), Binding: &resultBinding}},
		},
		EntryPoints: []ir.EntryPoint{
			{Name: "vs_main", Stage: ir.StageVertex, Function: ir.FunctionHandle(0)},
		},
	}
	info, err := ir.AnalyzeModule(module)
	if err != nil {
		t.Fatalf("AnalyzeModule() error = %v", err)
	}

	if _, err := w.Write(module, info, nil); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	if len(w.layout.annotations) == 0 {
		t.Fatal("Write() emitted no annotations at all")
	}
	if last := w.layout.annotations[len(w.layout.annotations)-1]; last != Word(BuiltInPointSize) {
		t.Errorf("last annotation word = %d, want %d (forced PointSize BuiltIn decoration)", last, uint32(BuiltInPointSize))
	}
}

func TestWriteVertexDoesNotForcePointSizeWhenPresent(t *testing.T) {
	w, err := NewWriter(Options{Version: Version1_3, ForcePointSize: true})
	if err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}

	var resultBinding ir.Binding = ir.BuiltinBinding{Builtin: ir.BuiltinPointSize}
	module := &ir.Module{
		Types: []ir.Type{{Inner: ir.ScalarType{Kind: ir.ScalarFloat, Width: 4}}},
		Functions: []ir.Function{
			{Result: &ir.FunctionResult{Type: ir.TypeHandle(0), Binding: &resultBinding}},
		},
		EntryPoints: []ir.EntryPoint{
			{Name: "vs_main", Stage: ir.StageVertex, Function: ir.FunctionHandle(0)},
		},
	}
	info, err := ir.AnalyzeModule(module)
	if err != nil {
		t.Fatalf("AnalyzeModule() error = %v", err)
	}

	if _, err := w.Write(module, info, nil); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	count := 0
	for _, word := range w.layout.annotations {
		if word == Word(BuiltInPointSize) {
			count++
		}
	}
	if count != 1 {
		t.Errorf("PointSize BuiltIn decoration appears %d times, want exactly 1 (no duplicate forced variable)", count)
	}
}

func TestWriteFragmentFragDepthSetsDepthReplacing(t *testing.T) {
	w, err := NewWriter(Options{Version: Version1_3})
	if err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}

	var resultBinding ir.Binding = ir.BuiltinBinding{Builtin: ir.BuiltinFragDepth}
	module := &ir.Module{
		Types: []ir.Type{{Inner: ir.ScalarType{Kind: ir.ScalarFloat, Width: 4}}},
		Functions: []ir.Function{
			{Result: &ir.FunctionResult{Type: ir.TypeHandle(0), Binding: &resultBinding}},
		},
		EntryPoints: []ir.EntryPoint{
			{Name: "fs_main", Stage: ir.StageFragment, Function: ir.FunctionHandle(0)},
		},
	}
	info, err := ir.AnalyzeModule(module)
	if err != nil {
		t.Fatalf("AnalyzeModule() error = %v", err)
	}

	if _, err := w.Write(module, info, nil); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	found := false
	for _, word := range w.layout.executionModes {
		if word == Word(ExecutionModeDepthReplacing) {
			found = true
		}
	}
	if !found {
		t.Error("Write() of a fragment entry point returning FragDepth did not emit ExecutionModeDepthReplacing")
	}
}

func TestWriteFragmentAlwaysOriginUpperLeft(t *testing.T) {
	w, err := NewWriter(Options{Version: Version1_3})
	if err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}

	module := &ir.Module{
		Functions: []ir.Function{{}},
		EntryPoints: []ir.EntryPoint{
			{Name: "fs_main", Stage: ir.StageFragment, Function: ir.FunctionHandle(0)},
		},
	}
	info, err := ir.AnalyzeModule(module)
	if err != nil {
		t.Fatalf("AnalyzeModule() error = %v", err)
	}
	if _, err := w.Write(module, info, nil); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	found := false
	for _, word := range w.layout.executionModes {
		if word == Word(ExecutionModeOriginUpperLeft) {
			found = true
		}
	}
	if !found {
		t.Error("Write() of a fragment entry point did not emit ExecutionModeOriginUpperLeft")
	}
}

func TestWriteComputeEmitsLocalSize(t *testing.T) {
	w, err := NewWriter(Options{Version: Version1_3})
	if err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}

	module := &ir.Module{
		Functions: []ir.Function{{}},
		EntryPoints: []ir.EntryPoint{
			{Name: "cs_main", Stage: ir.StageCompute, Function: ir.FunctionHandle(0), Workgroup: [3]uint32{8, 8, 1}},
		},
	}
	info, err := ir.AnalyzeModule(module)
	if err != nil {
		t.Fatalf("AnalyzeModule() error = %v", err)
	}
	if _, err := w.Write(module, info, nil); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	words := w.layout.executionModes
	if len(words) < 3 {
		t.Fatalf("executionModes has %d words, want at least enough to carry LocalSize's three operands", len(words))
	}
	last3 := words[len(words)-3:]
	want := []Word{8, 8, 1}
	for i, got := range last3 {
		if got != want[i] {
			t.Errorf("LocalSize operand[%d] = %d, want %d", i, got, want[i])
		}
	}
}
