package spirv

import "github.com/nagaspv/spirvwriter/ir"

// entryPointOutput pairs a synthesized Output varying with the location of
// the value that feeds it: either the whole return value (MemberIndex < 0)
// or one member of a struct return type.
type entryPointOutput struct {
	VaryingID   Word
	MemberIndex int
}

// writeEntryPoints emits OpEntryPoint plus the interface synthesis for
// either the single selected entry point (epIndex >= 0, matching a
// pipeline request) or every entry point the module declares.
func (w *Writer) writeEntryPoints(module *ir.Module, info *ir.ModuleInfo, epIndex int) error {
	if epIndex >= 0 {
		return w.writeEntryPoint(module, info, epIndex)
	}
	for i := range module.EntryPoints {
		if err := w.writeEntryPoint(module, info, i); err != nil {
			return err
		}
	}
	return nil
}

func executionModelFor(stage ir.ShaderStage) ExecutionModel {
	switch stage {
	case ir.StageVertex:
		return ExecutionModelVertex
	case ir.StageFragment:
		return ExecutionModelFragment
	case ir.StageCompute:
		return ExecutionModelGLCompute
	default:
		panic("spirv: unhandled shader stage")
	}
}

func (w *Writer) writeEntryPoint(module *ir.Module, info *ir.ModuleInfo, epIndex int) error {
	ep := module.EntryPoints[epIndex]
	epInfo := info.EntryPoint(epIndex)
	fn := module.Functions[ep.Function]

	var interfaceIDs []Word
	var preludeWords []Word

	argIDs, err := w.synthesizeEntryPointArguments(module, fn, &interfaceIDs, &preludeWords)
	if err != nil {
		return err
	}

	outputs, outputIDs, forcedPointSizeVar, err := w.synthesizeEntryPointOutputs(module, ep, fn)
	if err != nil {
		return err
	}
	interfaceIDs = append(interfaceIDs, outputIDs...)

	handleWords, err := w.loadFunctionHandleGlobals(module, epInfo)
	if err != nil {
		return err
	}
	preludeWords = append(preludeWords, handleWords...)

	localIDs, localWords, err := w.writeFunctionLocals(module, fn)
	if err != nil {
		return err
	}
	preludeWords = append(preludeWords, localWords...)

	bc := newBlockContext(w, module, &fn, argIDs, localIDs)
	bc.epOutputs = outputs
	bc.epForcePointSizeVar = forcedPointSizeVar

	for i, lv := range fn.LocalVars {
		if lv.Init == nil {
			continue
		}
		val, cerr := bc.compileExpression(*lv.Init)
		if cerr != nil {
			return cerr
		}
		bc.emit(instrStore(localIDs[i], val))
	}
	if err := bc.compileStatements(fn.Body); err != nil {
		return err
	}
	bodyWords := bc.block
	if !bc.terminated {
		bc.emitEntryPointReturn()
		bodyWords = bc.block
	}

	functionTypeID := w.getFunctionType(w.voidTypeID, nil)
	funcID := w.idGen.Next()
	if w.options.Debug && ep.Name != "" {
		w.debugNames(instrName(funcID, ep.Name))
	}

	var words []Word
	instrFunction(w.voidTypeID, funcID, FunctionControlNone, functionTypeID).ToWords(&words)

	preludeLabel := w.idGen.Next()
	bodyLabel := w.idGen.Next()
	instrLabel(preludeLabel).ToWords(&words)
	words = append(words, preludeWords...)
	instrBranch(bodyLabel).ToWords(&words)

	instrLabel(bodyLabel).ToWords(&words)
	words = append(words, bodyWords...)

	instrFunctionEnd().ToWords(&words)
	w.layout.functions = append(w.layout.functions, words...)

	model := executionModelFor(ep.Stage)
	w.layout.entryPoints = append(w.layout.entryPoints, instrEntryPointWords(model, funcID, ep.Name, interfaceIDs)...)

	if ep.Stage == ir.StageFragment {
		instrExecutionMode(funcID, ExecutionModeOriginUpperLeft).ToWords(&w.layout.executionModes)
		if resultHasBuiltin(module, fn.Result, ir.BuiltinFragDepth) {
			instrExecutionMode(funcID, ExecutionModeDepthReplacing).ToWords(&w.layout.executionModes)
		}
	}
	if ep.Stage == ir.StageCompute {
		instrExecutionMode(funcID, ExecutionModeLocalSize, ep.Workgroup[0], ep.Workgroup[1], ep.Workgroup[2]).ToWords(&w.layout.executionModes)
	}

	return nil
}

// instrEntryPointWords encodes OpEntryPoint into a standalone word slice
// for appending straight into the dedicated entry-points layout section.
func instrEntryPointWords(model ExecutionModel, function Word, name string, interfaceIDs []Word) []Word {
	var words []Word
	instrEntryPoint(model, function, name, interfaceIDs).ToWords(&words)
	return words
}

// synthesizeEntryPointArguments lowers each function argument into either a
// direct Input varying load (argument carries its own binding) or, for a
// struct argument, one Input varying load per member composed back into a
// struct value.
func (w *Writer) synthesizeEntryPointArguments(module *ir.Module, fn ir.Function, interfaceIDs *[]Word, prelude *[]Word) ([]Word, error) {
	argIDs := make([]Word, len(fn.Arguments))

	for i, arg := range fn.Arguments {
		if arg.Binding != nil {
			varID, err := w.writeVarying(module, varyingInput, arg.Name, arg.Type, *arg.Binding)
			if err != nil {
				return nil, err
			}
			*interfaceIDs = append(*interfaceIDs, varID)

			typeID, err := w.writeTypeDeclarationArena(module, arg.Type)
			if err != nil {
				return nil, err
			}
			loadID := w.idGen.Next()
			instrLoad(typeID, loadID, varID).ToWords(prelude)
			argIDs[i] = loadID
			continue
		}

		st, ok := module.Types[arg.Type].Inner.(ir.StructType)
		if !ok {
			panic("spirv: entry-point argument lacks a binding and is not a struct")
		}

		memberVals := make([]Word, len(st.Members))
		for j, m := range st.Members {
			if m.Binding == nil {
				panic("spirv: entry-point argument struct member lacks a binding")
			}
			varID, err := w.writeVarying(module, varyingInput, m.Name, m.Type, *m.Binding)
			if err != nil {
				return nil, err
			}
			*interfaceIDs = append(*interfaceIDs, varID)

			typeID, err := w.writeTypeDeclarationArena(module, m.Type)
			if err != nil {
				return nil, err
			}
			loadID := w.idGen.Next()
			instrLoad(typeID, loadID, varID).ToWords(prelude)
			memberVals[j] = loadID
		}

		structTypeID, err := w.writeTypeDeclarationArena(module, arg.Type)
		if err != nil {
			return nil, err
		}
		composeID := w.idGen.Next()
		instrCompositeConstruct(structTypeID, composeID, memberVals).ToWords(prelude)
		argIDs[i] = composeID
	}

	return argIDs, nil
}

// synthesizeEntryPointOutputs declares one Output varying per returned
// value (the whole result, or one per struct member), plus a forced
// PointSize output for vertex stages missing one when the writer's options
// ask for it.
func (w *Writer) synthesizeEntryPointOutputs(module *ir.Module, ep ir.EntryPoint, fn ir.Function) ([]entryPointOutput, []Word, Word, error) {
	if fn.Result == nil {
		forced, ids, err := w.maybeForcePointSize(module, ep, false)
		return nil, ids, forced, err
	}

	var outputs []entryPointOutput
	var ids []Word
	hasPointSize := false

	if fn.Result.Binding != nil {
		varID, err := w.writeVarying(module, varyingOutput, "", fn.Result.Type, *fn.Result.Binding)
		if err != nil {
			return nil, nil, 0, err
		}
		ids = append(ids, varID)
		outputs = append(outputs, entryPointOutput{VaryingID: varID, MemberIndex: -1})
		if bi, ok := (*fn.Result.Binding).(ir.BuiltinBinding); ok && bi.Builtin == ir.BuiltinPointSize {
			hasPointSize = true
		}
	} else {
		st, ok := module.Types[fn.Result.Type].Inner.(ir.StructType)
		if !ok {
			panic("spirv: entry-point result lacks a binding and is not a struct")
		}
		for i, m := range st.Members {
			if m.Binding == nil {
				panic("spirv: entry-point result struct member lacks a binding")
			}
			varID, err := w.writeVarying(module, varyingOutput, m.Name, m.Type, *m.Binding)
			if err != nil {
				return nil, nil, 0, err
			}
			ids = append(ids, varID)
			outputs = append(outputs, entryPointOutput{VaryingID: varID, MemberIndex: i})
			if bi, ok := (*m.Binding).(ir.BuiltinBinding); ok && bi.Builtin == ir.BuiltinPointSize {
				hasPointSize = true
			}
		}
	}

	forced, forcedIDs, err := w.maybeForcePointSize(module, ep, hasPointSize)
	if err != nil {
		return nil, nil, 0, err
	}
	ids = append(ids, forcedIDs...)
	return outputs, ids, forced, nil
}

func (w *Writer) maybeForcePointSize(module *ir.Module, ep ir.EntryPoint, hasPointSize bool) (Word, []Word, error) {
	if ep.Stage != ir.StageVertex || !w.options.ForcePointSize || hasPointSize {
		return 0, nil, nil
	}
	pointerTypeID, err := w.getFloatPointerTypeID(StorageClassOutput)
	if err != nil {
		return 0, nil, err
	}
	id := w.idGen.Next()
	w.declarations(instrVariable(pointerTypeID, id, StorageClassOutput, nil))
	w.annotate(instrDecorate(id, DecorationBuiltIn, Word(BuiltInPointSize)))
	return id, []Word{id}, nil
}

func resultHasBuiltin(module *ir.Module, result *ir.FunctionResult, builtin ir.BuiltinValue) bool {
	if result == nil {
		return false
	}
	if result.Binding != nil {
		if bi, ok := (*result.Binding).(ir.BuiltinBinding); ok {
			return bi.Builtin == builtin
		}
	}
	if st, ok := module.Types[result.Type].Inner.(ir.StructType); ok {
		for _, m := range st.Members {
			if m.Binding == nil {
				continue
			}
			if bi, ok := (*m.Binding).(ir.BuiltinBinding); ok && bi.Builtin == builtin {
				return true
			}
		}
	}
	return false
}
