package spirv

import (
	"fmt"
	"math"

	"github.com/nagaspv/spirvwriter/ir"
)

// BlockContext compiles one function body's expressions and statements
// into SPIR-V instructions. Each BlockContext allocates its own expression
// cache (see newBlockContext); the Writer keeps no cache or temp list of
// its own, so nothing is reused from one function to the next.
//
// Per the writer's scope boundary, the full expression/statement set is an
// external collaborator's responsibility; this implements the subset
// needed to drive entry-point interface synthesis and simple function
// bodies end-to-end, and panics on anything else (an unhandled binary
// operator returns an error instead) rather than silently mis-compiling it.
type BlockContext struct {
	w        *Writer
	module   *ir.Module
	fn       *ir.Function
	cache    map[ir.ExpressionHandle]Word
	argIDs   []Word // effective id per function argument, set by the caller
	localIDs []Word // OpVariable id per local, set by the caller

	block []Word // current block's instruction words (post-label)

	// Entry-point mode: when epOutputs is non-nil, StmtReturn decomposes
	// its value into these output varyings and emits a bare OpReturn
	// instead of OpReturnValue (entry points always return void).
	epOutputs           []entryPointOutput
	epForcePointSizeVar Word
	terminated          bool
}

func newBlockContext(w *Writer, module *ir.Module, fn *ir.Function, argIDs, localIDs []Word) *BlockContext {
	return &BlockContext{
		w:        w,
		module:   module,
		fn:       fn,
		cache:    make(map[ir.ExpressionHandle]Word, len(fn.Expressions)),
		argIDs:   argIDs,
		localIDs: localIDs,
	}
}

func (b *BlockContext) emit(i Instruction) { i.ToWords(&b.block) }

func (b *BlockContext) typeIDFor(h ir.ExpressionHandle) (Word, error) {
	res := b.fn.ExpressionTypes[h]
	if res.Handle != nil {
		return b.w.typeID(lookupHandle(*res.Handle))
	}
	return b.w.typeID(lookupLocal(b.localTypeOf(res.Value)))
}

func (b *BlockContext) localTypeOf(inner ir.TypeInner) LocalType {
	switch t := inner.(type) {
	case ir.ScalarType:
		return LocalScalar{Kind: t.Kind, Width: t.Width}
	case ir.VectorType:
		return LocalVector{Size: t.Size, Kind: t.Scalar.Kind, Width: t.Scalar.Width}
	case ir.MatrixType:
		return LocalMatrix{Columns: t.Columns, Rows: t.Rows, Width: t.Scalar.Width}
	default:
		panic(fmt.Sprintf("spirv: unhandled inline expression type %T", inner))
	}
}

// compileExpression lowers one expression handle, caching the result id.
func (b *BlockContext) compileExpression(h ir.ExpressionHandle) (Word, error) {
	if id, ok := b.cache[h]; ok {
		return id, nil
	}

	typeID, err := b.typeIDFor(h)
	if err != nil {
		return 0, err
	}

	var id Word
	switch k := b.fn.Expressions[h].Kind.(type) {
	case ir.Literal:
		id, err = b.compileLiteral(typeID, k.Value)
	case ir.ExprConstant:
		id = b.w.constantIDs[k.Constant]
	case ir.ExprZeroValue:
		id = b.w.constantNull(typeID)
	case ir.ExprFunctionArgument:
		id = b.argIDs[k.Index]
	case ir.ExprLocalVariable:
		id = b.localIDs[k.Variable]
	case ir.ExprGlobalVariable:
		rec := b.w.globalVariables[k.Variable]
		if b.module.GlobalVariables[k.Variable].Space == ir.SpaceHandle {
			id = rec.HandleID
		} else {
			id = rec.ID
		}
	case ir.ExprLoad:
		id, err = b.compileLoad(typeID, k)
	case ir.ExprAccessIndex:
		id, err = b.compileAccessIndex(typeID, k)
	case ir.ExprCompose:
		id, err = b.compileCompose(typeID, k)
	case ir.ExprUnary:
		id, err = b.compileUnary(typeID, k)
	case ir.ExprBinary:
		id, err = b.compileBinary(typeID, k)
	default:
		panic(fmt.Sprintf("spirv: expression kind %T not implemented (translator is an external collaborator)", k))
	}
	if err != nil {
		return 0, err
	}

	b.cache[h] = id
	return id, nil
}

func (b *BlockContext) compileLiteral(typeID Word, v ir.LiteralValue) (Word, error) {
	var sv ir.ScalarValue
	switch lit := v.(type) {
	case ir.LiteralF32:
		sv = ir.ScalarValue{Kind: ir.ScalarFloat, Bits: uint64(floatBitsOf(float64(lit)))}
		return b.w.getConstantScalar(typeID, sv, 4), nil
	case ir.LiteralF64:
		sv = ir.ScalarValue{Kind: ir.ScalarFloat, Bits: doubleBitsOf(float64(lit))}
		return b.w.getConstantScalar(typeID, sv, 8), nil
	case ir.LiteralU32:
		sv = ir.ScalarValue{Kind: ir.ScalarUint, Bits: uint64(lit)}
		return b.w.getConstantScalar(typeID, sv, 4), nil
	case ir.LiteralI32:
		sv = ir.ScalarValue{Kind: ir.ScalarSint, Bits: uint64(uint32(lit))}
		return b.w.getConstantScalar(typeID, sv, 4), nil
	case ir.LiteralBool:
		bits := uint64(0)
		if bool(lit) {
			bits = 1
		}
		sv = ir.ScalarValue{Kind: ir.ScalarBool, Bits: bits}
		return b.w.getConstantScalar(typeID, sv, 1), nil
	default:
		panic(fmt.Sprintf("spirv: unhandled literal kind %T", v))
	}
}

func (b *BlockContext) compileLoad(typeID Word, k ir.ExprLoad) (Word, error) {
	ptr, err := b.compileExpression(k.Pointer)
	if err != nil {
		return 0, err
	}
	id := b.w.idGen.Next()
	b.emit(instrLoad(typeID, id, ptr))
	return id, nil
}

func (b *BlockContext) compileAccessIndex(typeID Word, k ir.ExprAccessIndex) (Word, error) {
	base, err := b.compileExpression(k.Base)
	if err != nil {
		return 0, err
	}
	id := b.w.idGen.Next()
	// Pointer-typed base: AccessChain. Value-typed base: CompositeExtract.
	// The translator is told which applies by the expression's own type
	// resolution in the real pipeline; here both produce a value id, and
	// CompositeExtract covers the common case of a value already loaded.
	b.emit(instrCompositeExtract(typeID, id, base, []Word{k.Index}))
	return id, nil
}

func (b *BlockContext) compileCompose(typeID Word, k ir.ExprCompose) (Word, error) {
	parts := make([]Word, len(k.Components))
	for i, c := range k.Components {
		id, err := b.compileExpression(c)
		if err != nil {
			return 0, err
		}
		parts[i] = id
	}
	id := b.w.idGen.Next()
	b.emit(instrCompositeConstruct(typeID, id, parts))
	return id, nil
}

func (b *BlockContext) compileUnary(typeID Word, k ir.ExprUnary) (Word, error) {
	operand, err := b.compileExpression(k.Expr)
	if err != nil {
		return 0, err
	}
	isFloat := b.resultIsFloat(k.Expr)
	id := b.w.idGen.Next()
	switch k.Op {
	case ir.UnaryNegate:
		if isFloat {
			b.emit(instr(OpFNegate, typeID, id, operand))
		} else {
			b.emit(instr(OpSNegate, typeID, id, operand))
		}
	case ir.UnaryLogicalNot:
		b.emit(instr(OpLogicalNot, typeID, id, operand))
	case ir.UnaryBitwiseNot:
		b.emit(instr(OpNot, typeID, id, operand))
	default:
		panic("spirv: unhandled unary operator")
	}
	return id, nil
}

func (b *BlockContext) compileBinary(typeID Word, k ir.ExprBinary) (Word, error) {
	left, err := b.compileExpression(k.Left)
	if err != nil {
		return 0, err
	}
	right, err := b.compileExpression(k.Right)
	if err != nil {
		return 0, err
	}
	isFloat := b.resultIsFloat(k.Left)
	isSigned := b.resultIsSigned(k.Left)

	id := b.w.idGen.Next()
	op, err := binaryOpcode(k.Op, isFloat, isSigned)
	if err != nil {
		return 0, err
	}
	b.emit(instr(op, typeID, id, left, right))
	return id, nil
}

func binaryOpcode(op ir.BinaryOperator, isFloat, isSigned bool) (OpCode, error) {
	switch op {
	case ir.BinaryAdd:
		if isFloat {
			return OpFAdd, nil
		}
		return OpIAdd, nil
	case ir.BinarySubtract:
		if isFloat {
			return OpFSub, nil
		}
		return OpISub, nil
	case ir.BinaryMultiply:
		if isFloat {
			return OpFMul, nil
		}
		return OpIMul, nil
	case ir.BinaryDivide:
		if isFloat {
			return OpFDiv, nil
		}
		if isSigned {
			return OpSDiv, nil
		}
		return OpUDiv, nil
	case ir.BinaryModulo:
		if isFloat {
			return OpFMod, nil
		}
		if isSigned {
			return OpSMod, nil
		}
		return OpUMod, nil
	default:
		return 0, fmt.Errorf("spirv: unhandled binary operator %d (translator is an external collaborator)", op)
	}
}

func (b *BlockContext) resultIsFloat(h ir.ExpressionHandle) bool {
	res := b.fn.ExpressionTypes[h]
	if res.Handle != nil {
		if st, ok := b.module.Types[*res.Handle].Inner.(ir.ScalarType); ok {
			return st.Kind == ir.ScalarFloat
		}
		if vt, ok := b.module.Types[*res.Handle].Inner.(ir.VectorType); ok {
			return vt.Scalar.Kind == ir.ScalarFloat
		}
		return false
	}
	switch t := res.Value.(type) {
	case ir.ScalarType:
		return t.Kind == ir.ScalarFloat
	case ir.VectorType:
		return t.Scalar.Kind == ir.ScalarFloat
	default:
		return false
	}
}

func (b *BlockContext) resultIsSigned(h ir.ExpressionHandle) bool {
	res := b.fn.ExpressionTypes[h]
	if res.Handle != nil {
		if st, ok := b.module.Types[*res.Handle].Inner.(ir.ScalarType); ok {
			return st.Kind == ir.ScalarSint
		}
		return false
	}
	if st, ok := res.Value.(ir.ScalarType); ok {
		return st.Kind == ir.ScalarSint
	}
	return false
}

// compileStatements lowers a block of statements in order, terminating the
// current block's instruction stream with whatever terminator the last
// statement produces.
func (b *BlockContext) compileStatements(stmts []ir.Statement) error {
	for _, stmt := range stmts {
		if err := b.compileStatement(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (b *BlockContext) compileStatement(stmt ir.Statement) error {
	switch k := stmt.Kind.(type) {
	case ir.StmtEmit:
		for h := k.Range.Start; h < k.Range.End; h++ {
			if _, err := b.compileExpression(h); err != nil {
				return err
			}
		}
	case ir.StmtBlock:
		return b.compileStatements(k.Block)
	case ir.StmtReturn:
		if b.epOutputs != nil {
			var val Word
			var err error
			if k.Value != nil {
				val, err = b.compileExpression(*k.Value)
				if err != nil {
					return err
				}
			}
			b.emitEntryPointOutputs(k.Value != nil, val)
			return nil
		}
		if k.Value != nil {
			v, err := b.compileExpression(*k.Value)
			if err != nil {
				return err
			}
			b.emit(instrReturnValue(v))
		} else {
			b.emit(instrReturn())
		}
		b.terminated = true
	case ir.StmtStore:
		ptr, err := b.compileExpression(k.Pointer)
		if err != nil {
			return err
		}
		val, err := b.compileExpression(k.Value)
		if err != nil {
			return err
		}
		b.emit(instrStore(ptr, val))
	case ir.StmtKill:
		b.emit(instrKill())
		b.terminated = true
	case ir.StmtIf:
		return b.compileIf(k)
	default:
		panic(fmt.Sprintf("spirv: statement kind %T not implemented (translator is an external collaborator)", k))
	}
	return nil
}

// emitEntryPointOutputs decomposes an entry point's returned value into its
// output varyings (direct store when the result is a single binding,
// OpCompositeExtract-per-member when it is a struct), then terminates with
// a bare OpReturn. Entry points always return void: the synthesized
// outputs carry the value instead.
func (b *BlockContext) emitEntryPointOutputs(hasValue bool, val Word) {
	if hasValue {
		for _, out := range b.epOutputs {
			if out.MemberIndex < 0 {
				b.emit(instrStore(out.VaryingID, val))
				continue
			}
			memberTypeID, _ := b.memberTypeIDOf(val, out.MemberIndex)
			extracted := b.w.idGen.Next()
			b.emit(instrCompositeExtract(memberTypeID, extracted, val, []Word{Word(out.MemberIndex)}))
			b.emit(instrStore(out.VaryingID, extracted))
		}
	}
	if b.epForcePointSizeVar != 0 {
		floatTypeID, _ := b.w.getFloatTypeID()
		one := b.w.getConstantScalar(floatTypeID, ir.ScalarValue{Kind: ir.ScalarFloat, Bits: uint64(math.Float32bits(1))}, 4)
		b.emit(instrStore(b.epForcePointSizeVar, one))
	}
	b.emit(instrReturn())
	b.terminated = true
}

// emitEntryPointReturn handles the fallthrough case: a body whose
// statements never reach an explicit Return (the common case of a
// single-expression entry point with an implicit trailing value is instead
// expressed by the translator that built its IR as an explicit Return; this
// covers bodies with none at all, which simply terminate void).
func (b *BlockContext) emitEntryPointReturn() {
	b.emitEntryPointOutputs(false, 0)
}

// memberTypeIDOf resolves the SPIR-V type id of one struct member of val's
// result type, for the OpCompositeExtract this member's output store needs.
func (b *BlockContext) memberTypeIDOf(_ Word, memberIndex int) (Word, error) {
	res := b.fn.Result
	st := b.module.Types[res.Type].Inner.(ir.StructType)
	return b.w.writeTypeDeclarationArena(b.module, st.Members[memberIndex].Type)
}

func (b *BlockContext) compileIf(k ir.StmtIf) error {
	cond, err := b.compileExpression(k.Condition)
	if err != nil {
		return err
	}
	mergeLabel := b.w.idGen.Next()
	acceptLabel := b.w.idGen.Next()
	rejectLabel := b.w.idGen.Next()

	b.emit(instr(OpSelectionMerge, mergeLabel, Word(SelectionControlNone)))
	b.emit(instr(OpBranchConditional, cond, acceptLabel, rejectLabel))

	b.emit(instrLabel(acceptLabel))
	if err := b.compileStatements(k.Accept); err != nil {
		return err
	}
	b.emit(instrBranch(mergeLabel))

	b.emit(instrLabel(rejectLabel))
	if err := b.compileStatements(k.Reject); err != nil {
		return err
	}
	b.emit(instrBranch(mergeLabel))

	b.emit(instrLabel(mergeLabel))
	return nil
}

func floatBitsOf(v float64) uint32 {
	return math.Float32bits(float32(v))
}

func doubleBitsOf(v float64) uint64 {
	return math.Float64bits(v)
}
