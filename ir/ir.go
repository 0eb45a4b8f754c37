package ir

// Handle types index into a Module's arena slices. See doc.go for the
// full handle-to-slice mapping.
type (
	TypeHandle           uint32
	FunctionHandle       uint32
	GlobalVariableHandle uint32
	ConstantHandle       uint32
	ExpressionHandle     uint32
)

// Module is the root of the arena: every handle above is an index into
// one of these slices.
type Module struct {
	Types           []Type
	Constants       []Constant
	GlobalVariables []GlobalVariable
	Functions       []Function
	EntryPoints     []EntryPoint
}

// EntryPoint names a Function as a shader stage's entry, with the
// workgroup size compute stages dispatch with (ignored for the other
// two stages).
type EntryPoint struct {
	Name      string
	Stage     ShaderStage
	Function  FunctionHandle
	Workgroup [3]uint32
}

// ShaderStage is the stage an EntryPoint runs as.
type ShaderStage uint8

const (
	StageVertex ShaderStage = iota
	StageFragment
	StageCompute
)

// ---- Types ----

// Type is a named slot in Module.Types; Name may be empty for anonymous
// types (most scalars, vectors, matrices).
type Type struct {
	Name  string
	Inner TypeInner
}

// TypeInner is the closed set of type shapes a Type can hold.
type TypeInner interface {
	typeInner()
}

// ScalarKind distinguishes the four scalar families SPIR-V needs
// distinct OpType declarations for.
type ScalarKind uint8

const (
	ScalarSint ScalarKind = iota
	ScalarUint
	ScalarFloat
	ScalarBool
)

// ScalarType is a scalar of the given kind and byte width (4 for
// i32/u32/f32, 8 for f64, 1 for bool in the IR's own accounting).
type ScalarType struct {
	Kind  ScalarKind
	Width uint8
}

func (ScalarType) typeInner() {}

// VectorSize is the component count of a vector or a matrix's
// column/row dimension.
type VectorSize uint8

const (
	Vec2 VectorSize = 2
	Vec3 VectorSize = 3
	Vec4 VectorSize = 4
)

// VectorType is Size components of Scalar.
type VectorType struct {
	Size   VectorSize
	Scalar ScalarType
}

func (VectorType) typeInner() {}

// MatrixType is Columns vectors of Rows components each, all of Scalar.
type MatrixType struct {
	Columns VectorSize
	Rows    VectorSize
	Scalar  ScalarType
}

func (MatrixType) typeInner() {}

// ArraySize is nil for a runtime-sized array (the last member of a
// storage-buffer struct); otherwise it names the element count.
type ArraySize struct {
	Constant *uint32
}

// ArrayType is Size elements of type Base, Stride bytes apart.
type ArrayType struct {
	Base   TypeHandle
	Size   ArraySize
	Stride uint32
}

func (ArrayType) typeInner() {}

// StructMember is one field of a StructType: its storage Offset, and an
// optional I/O Binding when the struct is used as an entry point's
// argument or result type.
type StructMember struct {
	Name    string
	Type    TypeHandle
	Binding *Binding
	Offset  uint32
}

// StructType is Span bytes wide and lays its Members out at the offsets
// they each carry.
type StructType struct {
	Members []StructMember
	Span    uint32
}

func (StructType) typeInner() {}

// AddressSpace is the memory space a PointerType or GlobalVariable lives
// in.
type AddressSpace uint8

const (
	SpaceFunction AddressSpace = iota
	SpacePrivate
	SpaceWorkGroup
	SpaceUniform
	SpaceStorage
	SpacePushConstant
	SpaceHandle
)

// PointerType points at a value of type Base in address space Space.
type PointerType struct {
	Base  TypeHandle
	Space AddressSpace
}

func (PointerType) typeInner() {}

// AtomicType wraps Scalar for use with atomic read-modify-write
// operations.
type AtomicType struct {
	Scalar ScalarType
}

func (AtomicType) typeInner() {}

// SamplerType is a sampler object; Comparison marks it for use with
// depth-comparison sampling.
type SamplerType struct {
	Comparison bool
}

func (SamplerType) typeInner() {}

// ImageDimension is the coordinate dimensionality of an ImageType.
type ImageDimension uint8

const (
	Dim1D ImageDimension = iota
	Dim2D
	Dim3D
	DimCube
)

// ImageClass distinguishes how an ImageType is accessed.
type ImageClass uint8

const (
	ImageClassSampled ImageClass = iota
	ImageClassDepth
	ImageClassStorage
)

// StorageAccess is a bitflag of permitted operations on a storage
// resource (storage buffer or storage image).
type StorageAccess uint8

const (
	StorageAccessLoad StorageAccess = 1 << iota
	StorageAccessStore
)

// Has reports whether flag is set in a.
func (a StorageAccess) Has(flag StorageAccess) bool { return a&flag != 0 }

// StorageFormat enumerates the texel formats usable with a storage
// image, mirroring WGSL's texel format list.
type StorageFormat uint8

const (
	StorageFormatR8Unorm StorageFormat = iota
	StorageFormatR8Snorm
	StorageFormatR8Uint
	StorageFormatR8Sint
	StorageFormatR16Uint
	StorageFormatR16Sint
	StorageFormatR16Float
	StorageFormatRg8Unorm
	StorageFormatRg8Snorm
	StorageFormatRg8Uint
	StorageFormatRg8Sint
	StorageFormatR32Uint
	StorageFormatR32Sint
	StorageFormatR32Float
	StorageFormatRg16Uint
	StorageFormatRg16Sint
	StorageFormatRg16Float
	StorageFormatRgba8Unorm
	StorageFormatRgba8Snorm
	StorageFormatRgba8Uint
	StorageFormatRgba8Sint
	StorageFormatBgra8Unorm
	StorageFormatRgb10a2Uint
	StorageFormatRgb10a2Unorm
	StorageFormatRg11b10Ufloat
	StorageFormatRg32Uint
	StorageFormatRg32Sint
	StorageFormatRg32Float
	StorageFormatRgba16Uint
	StorageFormatRgba16Sint
	StorageFormatRgba16Float
	StorageFormatRgba32Uint
	StorageFormatRgba32Sint
	StorageFormatRgba32Float
	StorageFormatR16Unorm
	StorageFormatR16Snorm
	StorageFormatRg16Unorm
	StorageFormatRg16Snorm
	StorageFormatRgba16Unorm
	StorageFormatRgba16Snorm
)

// ImageType is a sampled, depth, or storage image. Format and Access
// only apply when Class is ImageClassStorage.
type ImageType struct {
	Dim          ImageDimension
	Arrayed      bool
	Class        ImageClass
	Multisampled bool
	Format       StorageFormat
	Access       StorageAccess
}

func (ImageType) typeInner() {}

// ---- Constants ----

// ConstantValue is the closed set of shapes a Constant can hold.
type ConstantValue interface {
	constantValue()
}

// ScalarValue is a scalar constant, its bit pattern held in Bits
// regardless of Kind's actual width.
type ScalarValue struct {
	Bits uint64
	Kind ScalarKind
}

func (ScalarValue) constantValue() {}

// CompositeValue is a vector/matrix/array/struct constant built from
// other constants in the same arena.
type CompositeValue struct {
	Components []ConstantHandle
}

func (CompositeValue) constantValue() {}

// Constant is one entry in Module.Constants.
type Constant struct {
	Name  string
	Type  TypeHandle
	Value ConstantValue
}

// ---- Global variables ----

// ResourceBinding is a descriptor set/binding pair for a resource-space
// global.
type ResourceBinding struct {
	Group   uint32
	Binding uint32
}

// GlobalVariable is one entry in Module.GlobalVariables. Access only
// applies when Space is SpaceStorage: the read/write permissions
// declared on the storage buffer binding.
type GlobalVariable struct {
	Name    string
	Space   AddressSpace
	Binding *ResourceBinding
	Type    TypeHandle
	Init    *ConstantHandle
	Access  StorageAccess
}

// ---- Functions ----

// FunctionArgument is one parameter of a Function.
type FunctionArgument struct {
	Name    string
	Type    TypeHandle
	Binding *Binding
}

// FunctionResult is a Function's return type and, for an entry point,
// the I/O binding its value is written through.
type FunctionResult struct {
	Type    TypeHandle
	Binding *Binding
}

// LocalVariable is a function-scoped variable, optionally initialized by
// an expression evaluated at function entry.
type LocalVariable struct {
	Name string
	Type TypeHandle
	Init *ExpressionHandle
}

// TypeResolution is the resolved type of an expression: either a handle
// into Module.Types, or an inline shape with no arena entry of its own
// (the result of an access chain into a vector, say).
type TypeResolution struct {
	Handle *TypeHandle
	Value  TypeInner
}

// Function is one entry in Module.Functions. ExpressionTypes is
// parallel to Expressions: ExpressionTypes[i] is the resolved type of
// Expressions[i], computed by the producer before the Module reaches
// this arena.
type Function struct {
	Name            string
	Arguments       []FunctionArgument
	Result          *FunctionResult
	LocalVars       []LocalVariable
	Expressions     []Expression
	ExpressionTypes []TypeResolution
	Body            []Statement
}

// ---- I/O bindings ----

// Binding is the closed set of ways a StructMember, FunctionArgument, or
// FunctionResult can be bound to a shader I/O slot.
type Binding interface {
	binding()
}

// BuiltinValue names a SPIR-V/WGSL built-in I/O variable.
type BuiltinValue uint8

const (
	BuiltinPosition BuiltinValue = iota
	BuiltinVertexIndex
	BuiltinInstanceIndex
	BuiltinFrontFacing
	BuiltinFragDepth
	BuiltinSampleIndex
	BuiltinSampleMask
	BuiltinLocalInvocationID
	BuiltinLocalInvocationIndex
	BuiltinGlobalInvocationID
	BuiltinWorkGroupID
	BuiltinNumWorkGroups
	BuiltinViewIndex
	BuiltinBaseInstance
	BuiltinBaseVertex
	BuiltinClipDistance
	BuiltinCullDistance
	BuiltinPointSize
	BuiltinPrimitiveIndex
	BuiltinWorkGroupSize
)

// BuiltinBinding binds to a built-in I/O variable rather than a numbered
// location.
type BuiltinBinding struct {
	Builtin BuiltinValue
}

func (BuiltinBinding) binding() {}

// InterpolationKind is how a fragment-stage location value is
// interpolated across a primitive.
type InterpolationKind uint8

const (
	InterpolationFlat InterpolationKind = iota
	InterpolationLinear
	InterpolationPerspective
)

// InterpolationSampling is where within a pixel the interpolated value
// is sampled from.
type InterpolationSampling uint8

const (
	SamplingCenter InterpolationSampling = iota
	SamplingCentroid
	SamplingSample
)

// Interpolation qualifies a LocationBinding's interpolation behavior.
// Nil on a LocationBinding means the default (Perspective, Center).
type Interpolation struct {
	Kind     InterpolationKind
	Sampling InterpolationSampling
}

// LocationBinding binds to a numbered I/O location, with optional
// interpolation qualifiers.
type LocationBinding struct {
	Location      uint32
	Interpolation *Interpolation
}

func (LocationBinding) binding() {}

// Expression kinds are defined in expression.go.
// Statement kinds are defined in statement.go.
