package spirv

import (
	"fmt"
	"strings"

	"github.com/nagaspv/spirvwriter/ir"
)

// LocalType is the structural (anonymous) half of the two-level type key.
// It is a closed set of cases, modeled as an interface with a private
// marker method rather than the Rust source's single unified `Value`
// variant: the distilled spec is explicit that Scalar and ValuePointer are
// separate cases, so that is what is kept here even though the original
// folds them together internally.
type LocalType interface {
	localTypeKey() string
}

// LocalScalar is a bare scalar: {Sint,Uint,Float,Bool} x width in bytes.
type LocalScalar struct {
	Kind  ir.ScalarKind
	Width uint8
}

func (t LocalScalar) localTypeKey() string {
	return fmt.Sprintf("scalar:%d:%d", t.Kind, t.Width)
}

// LocalVector is a vector of a scalar kind/width.
type LocalVector struct {
	Size  ir.VectorSize
	Kind  ir.ScalarKind
	Width uint8
}

func (t LocalVector) localTypeKey() string {
	return fmt.Sprintf("vector:%d:%d:%d", t.Size, t.Kind, t.Width)
}

// LocalMatrix is a matrix of float columns/rows at a given width.
type LocalMatrix struct {
	Columns ir.VectorSize
	Rows    ir.VectorSize
	Width   uint8
}

func (t LocalMatrix) localTypeKey() string {
	return fmt.Sprintf("matrix:%d:%d:%d", t.Columns, t.Rows, t.Width)
}

// LocalPointer is a pointer to a named IR type in a storage class.
type LocalPointer struct {
	Base  ir.TypeHandle
	Class StorageClass
}

func (t LocalPointer) localTypeKey() string {
	return fmt.Sprintf("pointer:%d:%d", t.Base, t.Class)
}

// LocalValuePointer is a pointer to an anonymous scalar/vector descriptor,
// kept distinct from LocalPointer per the distilled spec's explicit
// eight-case LocalType model.
type LocalValuePointer struct {
	Kind  ir.ScalarKind
	Width uint8
	Size  *ir.VectorSize // nil for a scalar pointee
	Class StorageClass
}

func (t LocalValuePointer) localTypeKey() string {
	size := -1
	if t.Size != nil {
		size = int(*t.Size)
	}
	return fmt.Sprintf("valueptr:%d:%d:%d:%d", t.Kind, t.Width, size, t.Class)
}

// LocalImage mirrors ir.ImageType plus the resolved sampled-component kind.
type LocalImage struct {
	SampledKind  ir.ScalarKind
	Dim          ir.ImageDimension
	Arrayed      bool
	Depth        bool
	Multisampled bool
	Sampled      bool // true: sampled image, false: storage image
	Format       ImageFormat
}

func (t LocalImage) localTypeKey() string {
	return fmt.Sprintf("image:%d:%d:%v:%v:%v:%v:%d", t.SampledKind, t.Dim, t.Arrayed, t.Depth, t.Multisampled, t.Sampled, t.Format)
}

// LocalSampler is SPIR-V's single sampler type; it carries no fields.
type LocalSampler struct{}

func (LocalSampler) localTypeKey() string { return "sampler" }

// LocalSampledImage pairs an already-interned image type id with the
// sampler to produce a combined sampled-image type.
type LocalSampledImage struct {
	ImageTypeID Word
}

func (t LocalSampledImage) localTypeKey() string {
	return fmt.Sprintf("sampledimage:%d", t.ImageTypeID)
}

// LookupType is the type-interning key: either a named IR type (Handle) or
// a structural type (Local). The two may alias the same id.
type LookupType struct {
	handle   ir.TypeHandle
	local    LocalType
	isHandle bool
}

func lookupHandle(h ir.TypeHandle) LookupType { return LookupType{handle: h, isHandle: true} }
func lookupLocal(l LocalType) LookupType      { return LookupType{local: l} }

// IsHandle reports whether this key names a handle-based (named) type.
func (k LookupType) IsHandle() bool { return k.isHandle }

func (k LookupType) key() string {
	if k.isHandle {
		return fmt.Sprintf("handle:%d", k.handle)
	}
	return "local:" + k.local.localTypeKey()
}

// LookupFunctionType interns a function signature by return type and
// ordered parameter types.
type LookupFunctionType struct {
	ReturnTypeID     Word
	ParameterTypeIDs []Word
}

func (k LookupFunctionType) key() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d/", k.ReturnTypeID)
	for i, p := range k.ParameterTypeIDs {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%d", p)
	}
	return b.String()
}

// constantKey identifies a cacheable (unnamed) scalar constant by its raw
// bit pattern, kind, and width — two constants with equal (value, width)
// and no explicit name must share an id (invariant 4 in the testable
// properties).
type constantKey struct {
	Bits  uint64
	Kind  ir.ScalarKind
	Width uint8
}
