package spirv

import (
	"testing"

	"github.com/nagaspv/spirvwriter/ir"
)

func TestLookupTypeHandleVsLocal(t *testing.T) {
	h := lookupHandle(ir.TypeHandle(3))
	l := lookupLocal(LocalScalar{Kind: ir.ScalarFloat, Width: 4})

	if !h.IsHandle() {
		t.Error("lookupHandle().IsHandle() = false, want true")
	}
	if l.IsHandle() {
		t.Error("lookupLocal().IsHandle() = true, want false")
	}
	if h.key() == l.key() {
		t.Error("handle and local keys collided")
	}
}

func TestLookupTypeKeyStableForEqualInputs(t *testing.T) {
	a := lookupLocal(LocalVector{Size: ir.Vec3, Kind: ir.ScalarFloat, Width: 4})
	b := lookupLocal(LocalVector{Size: ir.Vec3, Kind: ir.ScalarFloat, Width: 4})
	if a.key() != b.key() {
		t.Errorf("equal LocalVector values produced different keys: %q vs %q", a.key(), b.key())
	}
}

func TestLookupTypeKeyDistinguishesLocalTypeCases(t *testing.T) {
	scalar := lookupLocal(LocalScalar{Kind: ir.ScalarFloat, Width: 4})
	vecOfSameKindWidth := lookupLocal(LocalVector{Size: ir.Vec2, Kind: ir.ScalarFloat, Width: 4})
	if scalar.key() == vecOfSameKindWidth.key() {
		t.Error("LocalScalar and LocalVector keys collided")
	}

	size2 := ir.Vec2
	ptrToScalar := lookupLocal(LocalValuePointer{Kind: ir.ScalarFloat, Width: 4, Class: StorageClassOutput})
	ptrToVector := lookupLocal(LocalValuePointer{Kind: ir.ScalarFloat, Width: 4, Size: &size2, Class: StorageClassOutput})
	if ptrToScalar.key() == ptrToVector.key() {
		t.Error("LocalValuePointer scalar and vector pointee keys collided")
	}
}

func TestLookupTypeKeyDistinguishesPointerFromValuePointer(t *testing.T) {
	pointer := lookupLocal(LocalPointer{Base: ir.TypeHandle(1), Class: StorageClassFunction})
	valuePointer := lookupLocal(LocalValuePointer{Kind: ir.ScalarFloat, Width: 4, Class: StorageClassFunction})
	if pointer.key() == valuePointer.key() {
		t.Error("LocalPointer and LocalValuePointer keys collided")
	}
}

func TestLookupFunctionTypeKey(t *testing.T) {
	a := LookupFunctionType{ReturnTypeID: 1, ParameterTypeIDs: []Word{2, 3}}
	b := LookupFunctionType{ReturnTypeID: 1, ParameterTypeIDs: []Word{2, 3}}
	c := LookupFunctionType{ReturnTypeID: 1, ParameterTypeIDs: []Word{3, 2}}

	if a.key() != b.key() {
		t.Errorf("equal function signatures produced different keys: %q vs %q", a.key(), b.key())
	}
	if a.key() == c.key() {
		t.Error("parameter order was not reflected in the key")
	}
}

func TestConstantKeyDistinguishesWidthAndKind(t *testing.T) {
	a := constantKey{Bits: 0, Kind: ir.ScalarFloat, Width: 4}
	b := constantKey{Bits: 0, Kind: ir.ScalarFloat, Width: 8}
	c := constantKey{Bits: 0, Kind: ir.ScalarSint, Width: 4}
	if a == b {
		t.Error("constantKey ignored width")
	}
	if a == c {
		t.Error("constantKey ignored kind")
	}
}
