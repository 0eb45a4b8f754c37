package ir

// Expression is one SSA value in a Function.Expressions arena. Values
// are produced once and referenced by handle from later expressions and
// statements — there is no mutation and no phi node; a value that needs
// to vary across control flow goes through a LocalVariable instead.
type Expression struct {
	Kind ExpressionKind
}

// ExpressionKind is the closed set of expression shapes.
type ExpressionKind interface {
	expressionKind()
}

// ---- Literals and constants ----

// LiteralValue is the closed set of literal payload types.
type LiteralValue interface {
	literalValue()
}

type (
	LiteralF64           float64
	LiteralF32           float32
	LiteralU32           uint32
	LiteralI32           int32
	LiteralU64           uint64
	LiteralI64           int64
	LiteralBool          bool
	LiteralAbstractInt   int64
	LiteralAbstractFloat float64
)

func (LiteralF64) literalValue()           {}
func (LiteralF32) literalValue()           {}
func (LiteralU32) literalValue()           {}
func (LiteralI32) literalValue()           {}
func (LiteralU64) literalValue()           {}
func (LiteralI64) literalValue()           {}
func (LiteralBool) literalValue()          {}
func (LiteralAbstractInt) literalValue()   {}
func (LiteralAbstractFloat) literalValue() {}

// Literal is an inline constant value (as opposed to ExprConstant, which
// names a module-scope Constant by handle).
type Literal struct {
	Value LiteralValue
}

func (Literal) expressionKind() {}

// ExprConstant references a module-scope constant.
type ExprConstant struct {
	Constant ConstantHandle
}

func (ExprConstant) expressionKind() {}

// ExprZeroValue is the zero value of Type.
type ExprZeroValue struct {
	Type TypeHandle
}

func (ExprZeroValue) expressionKind() {}

// ---- Composition and access ----

// ExprCompose builds a composite (vector, matrix, array, or struct) of
// type Type from Components.
type ExprCompose struct {
	Type       TypeHandle
	Components []ExpressionHandle
}

func (ExprCompose) expressionKind() {}

// ExprAccess indexes Base by a runtime-computed Index (must resolve to
// an integer type).
type ExprAccess struct {
	Base  ExpressionHandle
	Index ExpressionHandle
}

func (ExprAccess) expressionKind() {}

// ExprAccessIndex indexes Base by a compile-time constant Index. Works
// on arrays, vectors, matrices, and struct fields.
type ExprAccessIndex struct {
	Base  ExpressionHandle
	Index uint32
}

func (ExprAccessIndex) expressionKind() {}

// ExprSplat broadcasts Value to all Size components of a vector.
type ExprSplat struct {
	Size  VectorSize
	Value ExpressionHandle
}

func (ExprSplat) expressionKind() {}

// SwizzleComponent selects one component of a swizzle's Pattern.
type SwizzleComponent uint8

const (
	SwizzleX SwizzleComponent = 0
	SwizzleY SwizzleComponent = 1
	SwizzleZ SwizzleComponent = 2
	SwizzleW SwizzleComponent = 3
)

// ExprSwizzle reorders or duplicates Vector's components per Pattern,
// producing a vector of Size components.
type ExprSwizzle struct {
	Size    VectorSize
	Vector  ExpressionHandle
	Pattern [4]SwizzleComponent
}

func (ExprSwizzle) expressionKind() {}

// ---- References ----

// ExprFunctionArgument references the function's Index'th parameter.
type ExprFunctionArgument struct {
	Index uint32
}

func (ExprFunctionArgument) expressionKind() {}

// ExprGlobalVariable references a global. In SpaceHandle it produces the
// variable's value directly; in every other space it produces a pointer
// to the variable.
type ExprGlobalVariable struct {
	Variable GlobalVariableHandle
}

func (ExprGlobalVariable) expressionKind() {}

// ExprLocalVariable references a local by its index into
// Function.LocalVars. Produces a pointer to the local.
type ExprLocalVariable struct {
	Variable uint32
}

func (ExprLocalVariable) expressionKind() {}

// ExprLoad dereferences Pointer.
type ExprLoad struct {
	Pointer ExpressionHandle
}

func (ExprLoad) expressionKind() {}

// ---- Images ----

// SampleLevel is the closed set of level-of-detail strategies for an
// image sample.
type SampleLevel interface {
	sampleLevel()
}

type SampleLevelAuto struct{}
type SampleLevelZero struct{}

// SampleLevelExact samples at an explicit level.
type SampleLevelExact struct {
	Level ExpressionHandle
}

// SampleLevelBias samples at the automatic level plus Bias.
type SampleLevelBias struct {
	Bias ExpressionHandle
}

// SampleLevelGradient samples using explicit screen-space gradients.
type SampleLevelGradient struct {
	X ExpressionHandle
	Y ExpressionHandle
}

func (SampleLevelAuto) sampleLevel()     {}
func (SampleLevelZero) sampleLevel()     {}
func (SampleLevelExact) sampleLevel()    {}
func (SampleLevelBias) sampleLevel()     {}
func (SampleLevelGradient) sampleLevel() {}

// ExprImageSample samples (or gathers from) Image using Sampler at
// Coordinate. Offset, if set, must be a const-expression.
type ExprImageSample struct {
	Image       ExpressionHandle
	Sampler     ExpressionHandle
	Gather      *SwizzleComponent
	Coordinate  ExpressionHandle
	ArrayIndex  *ExpressionHandle
	Offset      *ExpressionHandle
	Level       SampleLevel
	DepthRef    *ExpressionHandle
	ClampToEdge bool
}

func (ExprImageSample) expressionKind() {}

// ExprImageLoad fetches a single texel from Image at Coordinate, with no
// filtering.
type ExprImageLoad struct {
	Image      ExpressionHandle
	Coordinate ExpressionHandle
	ArrayIndex *ExpressionHandle
	Sample     *ExpressionHandle
	Level      *ExpressionHandle
}

func (ExprImageLoad) expressionKind() {}

// ImageQuery is the closed set of information an ExprImageQuery can ask
// for.
type ImageQuery interface {
	imageQuery()
}

// ImageQuerySize gets the image's size at Level (base level if nil).
type ImageQuerySize struct {
	Level *ExpressionHandle
}

type ImageQueryNumLevels struct{}
type ImageQueryNumLayers struct{}
type ImageQueryNumSamples struct{}

func (ImageQuerySize) imageQuery()         {}
func (ImageQueryNumLevels) imageQuery()    {}
func (ImageQueryNumLayers) imageQuery()    {}
func (ImageQueryNumSamples) imageQuery()   {}

// ExprImageQuery asks Query of Image.
type ExprImageQuery struct {
	Image ExpressionHandle
	Query ImageQuery
}

func (ExprImageQuery) expressionKind() {}

// ---- Operators ----

// UnaryOperator is a unary expression's operation.
type UnaryOperator uint8

const (
	UnaryNegate UnaryOperator = iota
	UnaryLogicalNot
	UnaryBitwiseNot
)

// ExprUnary applies Op to Expr.
type ExprUnary struct {
	Op   UnaryOperator
	Expr ExpressionHandle
}

func (ExprUnary) expressionKind() {}

// BinaryOperator is a binary expression's operation: arithmetic,
// comparison, bitwise, logical, or shift.
type BinaryOperator uint8

const (
	BinaryAdd BinaryOperator = iota
	BinarySubtract
	BinaryMultiply
	BinaryDivide
	BinaryModulo

	BinaryEqual
	BinaryNotEqual
	BinaryLess
	BinaryLessEqual
	BinaryGreater
	BinaryGreaterEqual

	BinaryAnd
	BinaryExclusiveOr
	BinaryInclusiveOr

	BinaryLogicalAnd
	BinaryLogicalOr

	BinaryShiftLeft
	BinaryShiftRight // arithmetic for signed, logical for unsigned
)

// ExprBinary applies Op to Left and Right.
type ExprBinary struct {
	Op    BinaryOperator
	Left  ExpressionHandle
	Right ExpressionHandle
}

func (ExprBinary) expressionKind() {}

// ExprSelect is the ternary operator: Accept if Condition else Reject.
type ExprSelect struct {
	Condition ExpressionHandle
	Accept    ExpressionHandle
	Reject    ExpressionHandle
}

func (ExprSelect) expressionKind() {}

// DerivativeAxis is the screen-space axis an ExprDerivative differentiates
// along.
type DerivativeAxis uint8

const (
	DerivativeX     DerivativeAxis = iota
	DerivativeY                    // Partial derivative with respect to Y
	DerivativeWidth                // Sum of absolute derivatives (fwidth)
)

// DerivativeControl is a precision hint for derivative computation.
type DerivativeControl uint8

const (
	DerivativeCoarse DerivativeControl = iota
	DerivativeFine
	DerivativeNone
)

// ExprDerivative computes a screen-space derivative of Expr.
type ExprDerivative struct {
	Axis    DerivativeAxis
	Control DerivativeControl
	Expr    ExpressionHandle
}

func (ExprDerivative) expressionKind() {}

// RelationalFunction is a vector-wide boolean reduction or test.
type RelationalFunction uint8

const (
	RelationalAll   RelationalFunction = iota // All components are true
	RelationalAny                             // Any component is true
	RelationalIsNan                           // Test for NaN
	RelationalIsInf                           // Test for infinity
)

// ExprRelational applies Fun to Argument.
type ExprRelational struct {
	Fun      RelationalFunction
	Argument ExpressionHandle
}

func (ExprRelational) expressionKind() {}

// MathFunction is a built-in mathematical function. Most take one
// argument (Arg); Arg1/Arg2/Arg3 hold further operands where the
// function needs them (clamp, fma, mix, and so on).
type MathFunction uint8

const (
	MathAbs MathFunction = iota
	MathMin
	MathMax
	MathClamp
	MathSaturate

	MathCos
	MathCosh
	MathSin
	MathSinh
	MathTan
	MathTanh
	MathAcos
	MathAsin
	MathAtan
	MathAtan2
	MathAsinh
	MathAcosh
	MathAtanh

	MathRadians
	MathDegrees

	MathCeil
	MathFloor
	MathRound
	MathFract
	MathTrunc
	MathModf
	MathFrexp
	MathLdexp

	MathExp
	MathExp2
	MathLog
	MathLog2
	MathPow

	MathDot
	MathDot4I8Packed
	MathDot4U8Packed
	MathOuter
	MathCross
	MathDistance
	MathLength
	MathNormalize
	MathFaceForward
	MathReflect
	MathRefract

	MathSign
	MathFma
	MathMix
	MathStep
	MathSmoothStep
	MathSqrt
	MathInverseSqrt
	MathInverse
	MathTranspose
	MathDeterminant
	MathQuantizeF16

	MathCountTrailingZeros
	MathCountLeadingZeros
	MathCountOneBits
	MathReverseBits
	MathExtractBits
	MathInsertBits
	MathFirstTrailingBit
	MathFirstLeadingBit

	MathPack4x8snorm
	MathPack4x8unorm
	MathPack2x16snorm
	MathPack2x16unorm
	MathPack2x16float
	MathPack4xI8
	MathPack4xU8
	MathPack4xI8Clamp
	MathPack4xU8Clamp

	MathUnpack4x8snorm
	MathUnpack4x8unorm
	MathUnpack2x16snorm
	MathUnpack2x16unorm
	MathUnpack2x16float
	MathUnpack4xI8
	MathUnpack4xU8
)

// ExprMath applies Fun to Arg and whichever of Arg1/Arg2/Arg3 the
// function needs.
type ExprMath struct {
	Fun  MathFunction
	Arg  ExpressionHandle
	Arg1 *ExpressionHandle
	Arg2 *ExpressionHandle
	Arg3 *ExpressionHandle
}

func (ExprMath) expressionKind() {}

// ExprAs casts or converts Expr to Kind. If Convert is set, it names the
// target byte width and the value is numerically converted; otherwise
// this is a same-width bitcast.
type ExprAs struct {
	Expr    ExpressionHandle
	Kind    ScalarKind
	Convert *uint8
}

func (ExprAs) expressionKind() {}

// ---- Calls and misc ----

// ExprCallResult is the result value of a call to Function, produced by
// a StmtCall with this expression set as its Result.
type ExprCallResult struct {
	Function FunctionHandle
}

func (ExprCallResult) expressionKind() {}

// ExprArrayLength gets the element count of a runtime-sized array.
// Array must resolve to a pointer to such an array.
type ExprArrayLength struct {
	Array ExpressionHandle
}

func (ExprArrayLength) expressionKind() {}

// ExprAtomicResult is the previous value produced by a StmtAtomic that
// sets this expression as its Result.
type ExprAtomicResult struct{}

func (ExprAtomicResult) expressionKind() {}
