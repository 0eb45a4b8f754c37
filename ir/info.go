package ir

// FunctionInfo carries the per-function liveness facts the writer core
// needs but does not compute itself: which globals a function's body
// actually touches, directly or transitively through calls.
//
// The writer treats this as read-only input (see ModuleInfo); it is
// produced here by a conservative static scan so the rest of the module
// has something concrete to test against, not because liveness analysis
// is part of the writer's own contract.
type FunctionInfo struct {
	// GlobalUses is indexed by GlobalVariableHandle; true means the
	// function (or something it calls) reads or writes that global.
	GlobalUses []bool
}

// UsesGlobal reports whether the function touches the given global.
func (fi FunctionInfo) UsesGlobal(h GlobalVariableHandle) bool {
	i := int(h)
	return i >= 0 && i < len(fi.GlobalUses) && fi.GlobalUses[i]
}

// IsEmpty reports whether no globals are used at all. The spirv writer's
// per-function opaque-global refresh does not call it; it checks
// UsesGlobal for each global instead.
func (fi FunctionInfo) IsEmpty() bool {
	for _, used := range fi.GlobalUses {
		if used {
			return false
		}
	}
	return true
}

// DominatesGlobalUse reports whether every global that callee touches is
// also touched by fi. When an entry point's info dominates a function's
// info, that function is safe to keep for this entry point's pruned
// module; otherwise it references a global the entry point's pipeline
// never binds and must be skipped.
func (fi FunctionInfo) DominatesGlobalUse(callee FunctionInfo) bool {
	for i, used := range callee.GlobalUses {
		if used && !fi.UsesGlobal(GlobalVariableHandle(i)) {
			return false
		}
	}
	return true
}

// ModuleInfo is the per-module liveness side table: one FunctionInfo per
// function in Module.Functions, one per entry point in Module.EntryPoints.
type ModuleInfo struct {
	Functions   []FunctionInfo
	EntryPoints []FunctionInfo
}

// Function returns the liveness info for a function handle.
func (mi *ModuleInfo) Function(h FunctionHandle) FunctionInfo {
	return mi.Functions[h]
}

// EntryPoint returns the liveness info for the entry point at index.
func (mi *ModuleInfo) EntryPoint(index int) FunctionInfo {
	return mi.EntryPoints[index]
}

// AnalyzeModule computes a ModuleInfo for module by a straightforward
// static scan: each function's direct global uses come from its
// ExprGlobalVariable expressions, and global uses propagate along the
// call graph (StmtCall) to a fixed point so a caller's pruning decision
// accounts for everything its callees touch.
func AnalyzeModule(module *Module) (*ModuleInfo, error) {
	direct := make([][]bool, len(module.Functions))
	calls := make([][]FunctionHandle, len(module.Functions))
	numGlobals := len(module.GlobalVariables)

	for i, fn := range module.Functions {
		uses := make([]bool, numGlobals)
		for _, expr := range fn.Expressions {
			if gv, ok := expr.Kind.(ExprGlobalVariable); ok {
				if int(gv.Variable) < numGlobals {
					uses[gv.Variable] = true
				}
			}
		}
		direct[i] = uses
		calls[i] = collectCalls(fn.Body)
	}

	// Fixed-point propagation: union a callee's uses into every caller.
	changed := true
	for changed {
		changed = false
		for i := range module.Functions {
			for _, callee := range calls[i] {
				if int(callee) >= len(direct) {
					continue
				}
				for g, used := range direct[callee] {
					if used && !direct[i][g] {
						direct[i][g] = true
						changed = true
					}
				}
			}
		}
	}

	funcInfos := make([]FunctionInfo, len(module.Functions))
	for i, uses := range direct {
		funcInfos[i] = FunctionInfo{GlobalUses: uses}
	}

	epInfos := make([]FunctionInfo, len(module.EntryPoints))
	for i, ep := range module.EntryPoints {
		if int(ep.Function) < len(funcInfos) {
			epInfos[i] = funcInfos[ep.Function]
		} else {
			epInfos[i] = FunctionInfo{GlobalUses: make([]bool, numGlobals)}
		}
	}

	return &ModuleInfo{Functions: funcInfos, EntryPoints: epInfos}, nil
}

func collectCalls(body []Statement) []FunctionHandle {
	var calls []FunctionHandle
	var walk func(stmts []Statement)
	walk = func(stmts []Statement) {
		for _, stmt := range stmts {
			switch k := stmt.Kind.(type) {
			case StmtCall:
				calls = append(calls, k.Function)
			case StmtBlock:
				walk(k.Block)
			case StmtIf:
				walk(k.Accept)
				walk(k.Reject)
			case StmtLoop:
				walk(k.Body)
				walk(k.Continuing)
			case StmtSwitch:
				for _, c := range k.Cases {
					walk(c.Body)
				}
			}
		}
	}
	walk(body)
	return calls
}
