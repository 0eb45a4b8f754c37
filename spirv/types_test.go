package spirv

import (
	"errors"
	"testing"

	"github.com/nagaspv/spirvwriter/ir"
)

func TestTypeIDCachesByKey(t *testing.T) {
	w, err := NewWriter(Options{Version: Version1_3})
	if err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}

	key := lookupLocal(LocalScalar{Kind: ir.ScalarFloat, Width: 4})
	first, err := w.typeID(key)
	if err != nil {
		t.Fatalf("typeID() error = %v", err)
	}
	second, err := w.typeID(key)
	if err != nil {
		t.Fatalf("typeID() second call error = %v", err)
	}
	if first != second {
		t.Errorf("typeID() for the same key returned %d then %d, want a cached id", first, second)
	}
}

func TestTypeIDDistinctForDistinctKeys(t *testing.T) {
	w, err := NewWriter(Options{Version: Version1_3})
	if err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}

	f32, err := w.typeID(lookupLocal(LocalScalar{Kind: ir.ScalarFloat, Width: 4}))
	if err != nil {
		t.Fatalf("typeID(f32) error = %v", err)
	}
	u32, err := w.typeID(lookupLocal(LocalScalar{Kind: ir.ScalarUint, Width: 4}))
	if err != nil {
		t.Fatalf("typeID(u32) error = %v", err)
	}
	if f32 == u32 {
		t.Error("distinct scalar kinds interned to the same id")
	}
}

func TestTypeIDPanicsOnUnwrittenHandle(t *testing.T) {
	w, err := NewWriter(Options{Version: Version1_3})
	if err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("typeID() with an unwritten handle did not panic")
		}
	}()
	_, _ = w.typeID(lookupHandle(ir.TypeHandle(9)))
}

func TestMakeScalarUnrestrictedAllowsWideWidths(t *testing.T) {
	w, err := NewWriter(Options{Version: Version1_3})
	if err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}
	id := w.idGen.Next()
	if err := w.makeScalar(id, ir.ScalarFloat, 8); err != nil {
		t.Errorf("makeScalar(f64) with unrestricted capabilities returned error: %v", err)
	}
}

func TestMakeScalarRestrictedDeniesFloat64(t *testing.T) {
	w, err := NewWriter(Options{Version: Version1_3, Capabilities: []Capability{CapabilityShader}})
	if err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}
	id := w.idGen.Next()
	err = w.makeScalar(id, ir.ScalarFloat, 8)
	if err == nil {
		t.Fatal("makeScalar(f64) with a restricted whitelist lacking Float64 returned nil error")
	}
	var mce *MissingCapabilitiesError
	if !errors.As(err, &mce) {
		t.Fatalf("error type = %T, want *MissingCapabilitiesError", err)
	}
}

func TestMakeScalarBoolSkipsCapabilityCheck(t *testing.T) {
	w, err := NewWriter(Options{Version: Version1_3, Capabilities: []Capability{CapabilityShader}})
	if err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}
	id := w.idGen.Next()
	if err := w.makeScalar(id, ir.ScalarBool, 1); err != nil {
		t.Errorf("makeScalar(bool) returned error: %v", err)
	}
}

func TestGetUintFloatBoolTypeIDsAreDistinct(t *testing.T) {
	w, err := NewWriter(Options{Version: Version1_3})
	if err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}
	u, err := w.getUintTypeID()
	if err != nil {
		t.Fatalf("getUintTypeID() error = %v", err)
	}
	f, err := w.getFloatTypeID()
	if err != nil {
		t.Fatalf("getFloatTypeID() error = %v", err)
	}
	b, err := w.getBoolTypeID()
	if err != nil {
		t.Fatalf("getBoolTypeID() error = %v", err)
	}
	if u == f || u == b || f == b {
		t.Errorf("getUintTypeID/getFloatTypeID/getBoolTypeID collided: %d %d %d", u, f, b)
	}
}
