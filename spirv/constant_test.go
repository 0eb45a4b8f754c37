package spirv

import (
	"math"
	"testing"

	"github.com/nagaspv/spirvwriter/ir"
)

func TestGetConstantScalarDedupesUnnamed(t *testing.T) {
	w, err := NewWriter(Options{Version: Version1_3})
	if err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}
	typeID, err := w.getFloatTypeID()
	if err != nil {
		t.Fatalf("getFloatTypeID() error = %v", err)
	}
	sv := ir.ScalarValue{Bits: math.Float64bits(1.5), Kind: ir.ScalarFloat}

	first := w.getConstantScalar(typeID, sv, 4)
	second := w.getConstantScalar(typeID, sv, 4)
	if first != second {
		t.Errorf("getConstantScalar() for an identical value returned %d then %d, want dedup", first, second)
	}
}

func TestGetConstantScalarDistinguishesWidth(t *testing.T) {
	w, err := NewWriter(Options{Version: Version1_3})
	if err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}
	typeID, err := w.getUintTypeID()
	if err != nil {
		t.Fatalf("getUintTypeID() error = %v", err)
	}
	sv := ir.ScalarValue{Bits: 7, Kind: ir.ScalarUint}

	w4 := w.getConstantScalar(typeID, sv, 4)
	w8 := w.getConstantScalar(typeID, sv, 8)
	if w4 == w8 {
		t.Error("getConstantScalar() ignored width when deduping")
	}
}

func TestEmitScalarConstantFloat32Encoding(t *testing.T) {
	w, err := NewWriter(Options{Version: Version1_3})
	if err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}
	typeID, err := w.getFloatTypeID()
	if err != nil {
		t.Fatalf("getFloatTypeID() error = %v", err)
	}
	sv := ir.ScalarValue{Bits: math.Float64bits(2.0), Kind: ir.ScalarFloat}
	id := w.emitScalarConstant(typeID, sv, 4)

	words := w.layout.declarations
	if len(words) == 0 {
		t.Fatal("emitScalarConstant did not append to the declarations section")
	}
	wantBits := math.Float32bits(2.0)
	// The OpConstant literal value is the last word appended.
	if words[len(words)-1] != Word(wantBits) {
		t.Errorf("encoded f32 word = 0x%08X, want 0x%08X", words[len(words)-1], wantBits)
	}
	if id == 0 {
		t.Error("emitScalarConstant returned id 0, which is reserved")
	}
}

func TestEmitScalarConstant64BitHighWordFirst(t *testing.T) {
	w, err := NewWriter(Options{Version: Version1_3})
	if err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}
	typeID, err := w.typeID(lookupLocal(LocalScalar{Kind: ir.ScalarFloat, Width: 8}))
	if err != nil {
		t.Fatalf("typeID(f64) error = %v", err)
	}
	bits := math.Float64bits(3.25)
	sv := ir.ScalarValue{Bits: bits, Kind: ir.ScalarFloat}
	w.emitScalarConstant(typeID, sv, 8)

	words := w.layout.declarations
	if len(words) < 2 {
		t.Fatalf("emitScalarConstant(f64) appended %d words, want at least 2 for the 64-bit value", len(words))
	}
	hi := words[len(words)-2]
	lo := words[len(words)-1]
	wantHi := Word(bits >> 32)
	wantLo := Word(bits)
	if hi != wantHi || lo != wantLo {
		t.Errorf("64-bit constant words = [hi=0x%08X lo=0x%08X], want [hi=0x%08X lo=0x%08X]", hi, lo, wantHi, wantLo)
	}
}

func TestEmitScalarConstantBoolUsesConstantTrueFalse(t *testing.T) {
	w, err := NewWriter(Options{Version: Version1_3})
	if err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}
	typeID, err := w.getBoolTypeID()
	if err != nil {
		t.Fatalf("getBoolTypeID() error = %v", err)
	}
	trueID := w.emitScalarConstant(typeID, ir.ScalarValue{Bits: 1, Kind: ir.ScalarBool}, 1)
	falseID := w.emitScalarConstant(typeID, ir.ScalarValue{Bits: 0, Kind: ir.ScalarBool}, 1)
	if trueID == falseID {
		t.Error("OpConstantTrue and OpConstantFalse produced the same id")
	}
}

func TestConstantU32ReturnsUintTypedConstant(t *testing.T) {
	w, err := NewWriter(Options{Version: Version1_3})
	if err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}
	a, err := w.constantU32(4)
	if err != nil {
		t.Fatalf("constantU32() error = %v", err)
	}
	b, err := w.constantU32(4)
	if err != nil {
		t.Fatalf("constantU32() second call error = %v", err)
	}
	if a != b {
		t.Errorf("constantU32(4) returned %d then %d, want the same cached constant", a, b)
	}
	uintTypeID, err := w.getUintTypeID()
	if err != nil {
		t.Fatalf("getUintTypeID() error = %v", err)
	}
	decls := w.layout.declarations
	if len(decls) < 4 || decls[len(decls)-2] != a || decls[len(decls)-3] != uintTypeID {
		t.Errorf("constantU32(4) = %d was not declared as an OpConstant of the uint type %d", a, uintTypeID)
	}
}

func TestConstantNullNotDeduped(t *testing.T) {
	w, err := NewWriter(Options{Version: Version1_3})
	if err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}
	typeID, err := w.getFloatTypeID()
	if err != nil {
		t.Fatalf("getFloatTypeID() error = %v", err)
	}
	a := w.constantNull(typeID)
	b := w.constantNull(typeID)
	if a == b {
		t.Error("constantNull() returned the same id twice; OpConstantNull is not expected to be deduped")
	}
}

func TestWriteConstantsOrdersScalarsBeforeComposites(t *testing.T) {
	w, err := NewWriter(Options{Version: Version1_3})
	if err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}

	module := &ir.Module{
		Types: []ir.Type{
			{Inner: ir.ScalarType{Kind: ir.ScalarFloat, Width: 4}},
			{Inner: ir.VectorType{Size: ir.Vec2, Scalar: ir.ScalarType{Kind: ir.ScalarFloat, Width: 4}}},
		},
		Constants: []ir.Constant{
			{Type: ir.TypeHandle(1), Value: ir.CompositeValue{Components: []ir.ConstantHandle{1, 1}}},
			{Type: ir.TypeHandle(0), Value: ir.ScalarValue{Bits: math.Float64bits(1), Kind: ir.ScalarFloat}},
		},
	}

	if err := w.writeConstants(module); err != nil {
		t.Fatalf("writeConstants() error = %v", err)
	}
	if len(w.constantIDs) != 2 {
		t.Fatalf("constantIDs has %d entries, want 2", len(w.constantIDs))
	}
	for h, id := range w.constantIDs {
		if id == 0 {
			t.Errorf("constant %d was never assigned an id", h)
		}
	}
}
