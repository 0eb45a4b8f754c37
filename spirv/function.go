package spirv

import (
	"github.com/nagaspv/spirvwriter/ir"
)

// getFunctionType interns an OpTypeFunction by its (return, parameters)
// signature, declaring it on first use.
func (w *Writer) getFunctionType(returnTypeID Word, paramTypeIDs []Word) Word {
	key := LookupFunctionType{ReturnTypeID: returnTypeID, ParameterTypeIDs: paramTypeIDs}
	k := key.key()
	if id, ok := w.functionTypeIDs[k]; ok {
		return id
	}
	id := w.idGen.Next()
	w.functionTypeIDs[k] = id
	w.declarations(instrTypeFunction(id, returnTypeID, paramTypeIDs))
	return id
}

// writeFunctions emits every ordinary function the selected entry point's
// global-use set dominates (every function, when writing pipeline-agnostic
// output). A pruned function simply never gets an id.
func (w *Writer) writeFunctions(module *ir.Module, info *ir.ModuleInfo, epIndex int) error {
	var epInfo *ir.FunctionInfo
	if epIndex >= 0 {
		ep := info.EntryPoint(epIndex)
		epInfo = &ep
	}

	for h := range module.Functions {
		handle := ir.FunctionHandle(h)
		if epInfo != nil {
			fnInfo := info.Function(handle)
			if !epInfo.DominatesGlobalUse(fnInfo) {
				continue
			}
		}
		if _, err := w.writeFunction(module, info, handle); err != nil {
			return err
		}
	}
	return nil
}

// writeFunction runs the nine-step function-emission protocol and returns
// the function's SPIR-V id, memoized so a function reachable from more than
// one caller (or re-requested by entry-point emission) is only written
// once.
func (w *Writer) writeFunction(module *ir.Module, info *ir.ModuleInfo, handle ir.FunctionHandle) (Word, error) {
	if id, ok := w.functionIDs[handle]; ok {
		return id, nil
	}

	fn := module.Functions[handle]
	fnInfo := info.Function(handle)

	// 3. Arguments: internal functions get a plain OpFunctionParameter per
	// argument.
	paramTypeIDs := make([]Word, len(fn.Arguments))
	argIDs := make([]Word, len(fn.Arguments))
	var paramWords []Word
	for i, arg := range fn.Arguments {
		typeID, err := w.writeTypeDeclarationArena(module, arg.Type)
		if err != nil {
			return 0, err
		}
		paramTypeIDs[i] = typeID
		id := w.idGen.Next()
		argIDs[i] = id
		instrFunctionParameter(typeID, id).ToWords(&paramWords)
	}

	// 4. Result type.
	returnTypeID := w.voidTypeID
	if fn.Result != nil {
		id, err := w.writeTypeDeclarationArena(module, fn.Result.Type)
		if err != nil {
			return 0, err
		}
		returnTypeID = id
	}

	// 5. Function type.
	functionTypeID := w.getFunctionType(returnTypeID, paramTypeIDs)

	funcID := w.idGen.Next()
	w.functionIDs[handle] = funcID
	if w.options.Debug && fn.Name != "" {
		w.debugNames(instrName(funcID, fn.Name))
	}

	// 1. Function-local OpVariable declarations.
	localIDs, localWords, err := w.writeFunctionLocals(module, fn)
	if err != nil {
		return 0, err
	}

	// 6. Per-function global handle refresh.
	handleWords, err := w.loadFunctionHandleGlobals(module, fnInfo)
	if err != nil {
		return 0, err
	}

	// 7. Compile the body.
	bodyWords, err := w.compileFunctionBody(module, &fn, argIDs, localIDs)
	if err != nil {
		return 0, err
	}

	var words []Word
	instrFunction(returnTypeID, funcID, FunctionControlNone, functionTypeID).ToWords(&words)
	words = append(words, paramWords...)

	// 2 & 8. Prelude block: locals, handle refresh, branch to the body.
	preludeLabel := w.idGen.Next()
	bodyLabel := w.idGen.Next()
	instrLabel(preludeLabel).ToWords(&words)
	words = append(words, localWords...)
	words = append(words, handleWords...)
	instrBranch(bodyLabel).ToWords(&words)

	instrLabel(bodyLabel).ToWords(&words)
	words = append(words, bodyWords...)

	instrFunctionEnd().ToWords(&words)

	// 9. Append the function's words to the function-definitions section.
	w.layout.functions = append(w.layout.functions, words...)
	return funcID, nil
}

// writeFunctionLocals declares each local's OpVariable(Function) with an
// OpConstantNull initializer. An IR initializer, constant or not, is never
// used as the OpVariable's initializer operand; compileFunctionBody
// compiles it and stores the value at the start of the body instead.
func (w *Writer) writeFunctionLocals(module *ir.Module, fn ir.Function) ([]Word, []Word, error) {
	localIDs := make([]Word, len(fn.LocalVars))
	var words []Word

	for i, lv := range fn.LocalVars {
		typeID, err := w.writeTypeDeclarationArena(module, lv.Type)
		if err != nil {
			return nil, nil, err
		}
		pointerTypeID, err := w.typeID(lookupLocal(LocalPointer{Base: lv.Type, Class: StorageClassFunction}))
		if err != nil {
			return nil, nil, err
		}

		id := w.idGen.Next()
		localIDs[i] = id

		initWord := w.constantNull(typeID)
		instrVariable(pointerTypeID, id, StorageClassFunction, &initWord).ToWords(&words)
		if w.options.Debug && lv.Name != "" {
			w.debugNames(instrName(id, lv.Name))
		}
	}
	return localIDs, words, nil
}

// loadFunctionHandleGlobals re-loads every opaque (Handle address space)
// global the function uses into a fresh value id for this function,
// recording it on the global's record so expression compilation can
// resolve ExprGlobalVariable references to a value instead of a pointer.
func (w *Writer) loadFunctionHandleGlobals(module *ir.Module, fnInfo ir.FunctionInfo) ([]Word, error) {
	var words []Word
	for h, gv := range module.GlobalVariables {
		handle := ir.GlobalVariableHandle(h)
		if gv.Space != ir.SpaceHandle || !fnInfo.UsesGlobal(handle) {
			continue
		}
		rec := &w.globalVariables[h]
		rec.resetForFunction()
		if rec.isDummy() {
			continue
		}

		typeID, err := w.writeTypeDeclarationArena(module, gv.Type)
		if err != nil {
			return nil, err
		}
		id := w.idGen.Next()
		instrLoad(typeID, id, rec.ID).ToWords(&words)
		rec.HandleID = id
	}
	return words, nil
}

// compileFunctionBody compiles, in a fresh BlockContext with its own
// expression cache, the stored initializer (if any) for every local ahead
// of the rest of the body, then the body statements.
func (w *Writer) compileFunctionBody(module *ir.Module, fn *ir.Function, argIDs, localIDs []Word) ([]Word, error) {
	bc := newBlockContext(w, module, fn, argIDs, localIDs)

	for i, lv := range fn.LocalVars {
		if lv.Init == nil {
			continue
		}
		val, err := bc.compileExpression(*lv.Init)
		if err != nil {
			return nil, err
		}
		bc.emit(instrStore(localIDs[i], val))
	}

	if err := bc.compileStatements(fn.Body); err != nil {
		return nil, err
	}
	return bc.block, nil
}
