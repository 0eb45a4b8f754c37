package ir

import "testing"

func TestAnalyzeModuleDirectGlobalUse(t *testing.T) {
	module := &Module{
		GlobalVariables: []GlobalVariable{{Name: "tex", Space: SpaceHandle}},
		Functions: []Function{
			{
				Expressions: []Expression{
					{Kind: ExprGlobalVariable{Variable: 0}},
				},
			},
			{},
		},
	}

	info, err := AnalyzeModule(module)
	if err != nil {
		t.Fatalf("AnalyzeModule() error = %v", err)
	}
	if !info.Function(0).UsesGlobal(0) {
		t.Error("function directly referencing the global should report UsesGlobal")
	}
	if info.Function(1).UsesGlobal(0) {
		t.Error("function never referencing the global should not report UsesGlobal")
	}
	if !info.Function(1).IsEmpty() {
		t.Error("function touching no globals should report IsEmpty")
	}
	if info.Function(0).IsEmpty() {
		t.Error("function touching a global should not report IsEmpty")
	}
}

func TestAnalyzeModulePropagatesThroughCalls(t *testing.T) {
	// Function 0 uses global 0 directly. Function 1 calls function 0 but
	// never references global 0 itself; its liveness must still include it.
	module := &Module{
		GlobalVariables: []GlobalVariable{{Name: "buf", Space: SpaceStorage}},
		Functions: []Function{
			{
				Expressions: []Expression{
					{Kind: ExprGlobalVariable{Variable: 0}},
				},
			},
			{
				Body: []Statement{
					{Kind: StmtCall{Function: 0}},
				},
			},
		},
	}

	info, err := AnalyzeModule(module)
	if err != nil {
		t.Fatalf("AnalyzeModule() error = %v", err)
	}
	if !info.Function(1).UsesGlobal(0) {
		t.Error("caller should inherit callee's global use through the call graph")
	}
}

func TestAnalyzeModulePropagatesThroughNestedControlFlow(t *testing.T) {
	module := &Module{
		GlobalVariables: []GlobalVariable{{Name: "buf", Space: SpaceStorage}},
		Functions: []Function{
			{
				Expressions: []Expression{
					{Kind: ExprGlobalVariable{Variable: 0}},
				},
			},
			{
				Body: []Statement{
					{Kind: StmtIf{
						Condition: 0,
						Accept: []Statement{
							{Kind: StmtLoop{
								Body: []Statement{
									{Kind: StmtCall{Function: 0}},
								},
							}},
						},
					}},
				},
			},
		},
	}

	info, err := AnalyzeModule(module)
	if err != nil {
		t.Fatalf("AnalyzeModule() error = %v", err)
	}
	if !info.Function(1).UsesGlobal(0) {
		t.Error("global use nested inside If/Loop bodies should still propagate to the caller")
	}
}

func TestAnalyzeModuleEntryPointInfoMirrorsItsFunction(t *testing.T) {
	module := &Module{
		GlobalVariables: []GlobalVariable{{Name: "tex", Space: SpaceHandle}},
		Functions: []Function{
			{
				Expressions: []Expression{
					{Kind: ExprGlobalVariable{Variable: 0}},
				},
			},
		},
		EntryPoints: []EntryPoint{
			{Name: "main", Stage: StageFragment, Function: 0},
		},
	}

	info, err := AnalyzeModule(module)
	if err != nil {
		t.Fatalf("AnalyzeModule() error = %v", err)
	}
	if !info.EntryPoint(0).UsesGlobal(0) {
		t.Error("entry point liveness should mirror its underlying function's liveness")
	}
}

func TestFunctionInfoDominatesGlobalUse(t *testing.T) {
	broad := FunctionInfo{GlobalUses: []bool{true, true}}
	narrow := FunctionInfo{GlobalUses: []bool{true, false}}
	disjoint := FunctionInfo{GlobalUses: []bool{false, true}}

	if !broad.DominatesGlobalUse(narrow) {
		t.Error("a superset of globals should dominate a subset")
	}
	if narrow.DominatesGlobalUse(disjoint) {
		t.Error("a function missing a global the callee touches should not dominate it")
	}
	if !broad.DominatesGlobalUse(broad) {
		t.Error("a function should always dominate its own global-use set")
	}
}
