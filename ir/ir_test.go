package ir

import "testing"

func TestStorageAccessHas(t *testing.T) {
	tests := []struct {
		name string
		a    StorageAccess
		flag StorageAccess
		want bool
	}{
		{"load set, query load", StorageAccessLoad, StorageAccessLoad, true},
		{"load set, query store", StorageAccessLoad, StorageAccessStore, false},
		{"both set, query load", StorageAccessLoad | StorageAccessStore, StorageAccessLoad, true},
		{"both set, query store", StorageAccessLoad | StorageAccessStore, StorageAccessStore, true},
		{"none set", 0, StorageAccessLoad, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Has(tt.flag); got != tt.want {
				t.Errorf("StorageAccess(%d).Has(%d) = %v, want %v", tt.a, tt.flag, got, tt.want)
			}
		})
	}
}

func TestTypeInnerCasesImplementInterface(t *testing.T) {
	inners := []TypeInner{
		ScalarType{Kind: ScalarFloat, Width: 4},
		VectorType{Size: Vec3, Scalar: ScalarType{Kind: ScalarFloat, Width: 4}},
		MatrixType{Columns: Vec4, Rows: Vec4, Scalar: ScalarType{Kind: ScalarFloat, Width: 4}},
		ArrayType{Base: TypeHandle(0), Stride: 16},
		StructType{Span: 32},
		PointerType{Base: TypeHandle(0), Space: SpaceStorage},
		AtomicType{Scalar: ScalarType{Kind: ScalarUint, Width: 4}},
		SamplerType{Comparison: true},
		ImageType{Dim: Dim2D, Class: ImageClassSampled},
	}
	for _, inner := range inners {
		if inner == nil {
			t.Error("TypeInner case is unexpectedly nil")
		}
	}
}

func TestBindingCasesImplementInterface(t *testing.T) {
	var bindings = []Binding{
		BuiltinBinding{Builtin: BuiltinPosition},
		LocationBinding{Location: 0},
	}
	for _, b := range bindings {
		if b == nil {
			t.Error("Binding case is unexpectedly nil")
		}
	}
}

func TestConstantValueCasesImplementInterface(t *testing.T) {
	values := []ConstantValue{
		ScalarValue{Bits: 1, Kind: ScalarUint},
		CompositeValue{Components: []ConstantHandle{0, 1}},
	}
	for _, v := range values {
		if v == nil {
			t.Error("ConstantValue case is unexpectedly nil")
		}
	}
}

func TestArraySizeRuntimeSizedHasNilConstant(t *testing.T) {
	runtime := ArraySize{}
	if runtime.Constant != nil {
		t.Error("zero-value ArraySize should represent a runtime-sized array (nil Constant)")
	}
	n := uint32(4)
	fixed := ArraySize{Constant: &n}
	if fixed.Constant == nil || *fixed.Constant != 4 {
		t.Error("ArraySize with a Constant set should report that element count")
	}
}
