package ir

import "testing"

func TestLiteralValueCasesImplementInterface(t *testing.T) {
	values := []LiteralValue{
		LiteralF64(1.5),
		LiteralF32(1.5),
		LiteralU32(1),
		LiteralI32(-1),
		LiteralU64(1),
		LiteralI64(-1),
		LiteralBool(true),
		LiteralAbstractInt(1),
		LiteralAbstractFloat(1.5),
	}
	for _, v := range values {
		if v == nil {
			t.Error("LiteralValue case is unexpectedly nil")
		}
	}
}

func TestExpressionKindCasesImplementInterface(t *testing.T) {
	idx := SwizzleX
	kinds := []ExpressionKind{
		Literal{Value: LiteralU32(1)},
		ExprConstant{Constant: ConstantHandle(0)},
		ExprZeroValue{Type: TypeHandle(0)},
		ExprCompose{Type: TypeHandle(0)},
		ExprAccess{Base: 0, Index: 1},
		ExprAccessIndex{Base: 0, Index: 2},
		ExprSplat{Size: Vec4, Value: 0},
		ExprSwizzle{Size: Vec2, Vector: 0, Pattern: [4]SwizzleComponent{idx, idx, idx, idx}},
		ExprFunctionArgument{Index: 0},
		ExprGlobalVariable{Variable: 0},
		ExprLocalVariable{Variable: 0},
		ExprLoad{Pointer: 0},
		ExprImageSample{Level: SampleLevelAuto{}},
		ExprImageLoad{},
		ExprImageQuery{Query: ImageQueryNumLevels{}},
		ExprUnary{Op: UnaryNegate, Expr: 0},
		ExprBinary{Op: BinaryAdd, Left: 0, Right: 1},
		ExprSelect{Condition: 0, Accept: 1, Reject: 2},
		ExprDerivative{Axis: DerivativeX, Expr: 0},
		ExprRelational{Fun: RelationalAll, Argument: 0},
		ExprMath{Fun: MathAbs, Arg: 0},
		ExprAs{Expr: 0, Kind: ScalarFloat},
		ExprCallResult{Function: 0},
		ExprArrayLength{Array: 0},
		ExprAtomicResult{},
	}
	for _, k := range kinds {
		if k == nil {
			t.Error("ExpressionKind case is unexpectedly nil")
		}
	}
}

func TestSampleLevelCasesImplementInterface(t *testing.T) {
	levels := []SampleLevel{
		SampleLevelAuto{},
		SampleLevelZero{},
		SampleLevelExact{Level: 0},
		SampleLevelBias{Bias: 0},
		SampleLevelGradient{X: 0, Y: 1},
	}
	for _, l := range levels {
		if l == nil {
			t.Error("SampleLevel case is unexpectedly nil")
		}
	}
}

func TestImageQueryCasesImplementInterface(t *testing.T) {
	queries := []ImageQuery{
		ImageQuerySize{},
		ImageQueryNumLevels{},
		ImageQueryNumLayers{},
		ImageQueryNumSamples{},
	}
	for _, q := range queries {
		if q == nil {
			t.Error("ImageQuery case is unexpectedly nil")
		}
	}
}

func TestExprAsConvertNilMeansBitcast(t *testing.T) {
	bitcast := ExprAs{Expr: 0, Kind: ScalarUint}
	if bitcast.Convert != nil {
		t.Error("ExprAs with nil Convert should mean bitcast, not conversion")
	}
	width := uint8(4)
	convert := ExprAs{Expr: 0, Kind: ScalarFloat, Convert: &width}
	if convert.Convert == nil || *convert.Convert != 4 {
		t.Error("ExprAs with Convert set should carry the target byte width")
	}
}
