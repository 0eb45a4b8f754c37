package spirv

// LogicalLayout holds one word stream per SPIR-V-mandated section. Each
// Instruction is appended to the right stream as it is produced; Words
// concatenates them in the order the spec requires.
type LogicalLayout struct {
	capabilities   []Word
	extensions     []Word
	extInstImports []Word
	memoryModel    []Word
	entryPoints    []Word
	executionModes []Word
	debugSource    []Word
	debugNames     []Word
	annotations    []Word
	declarations   []Word
	functions      []Word
}

func (l *LogicalLayout) reset() {
	*l = LogicalLayout{}
}

// Words appends every section, in SPIR-V's mandated order, to sink.
func (l *LogicalLayout) Words(sink *[]Word) {
	*sink = append(*sink, l.capabilities...)
	*sink = append(*sink, l.extensions...)
	*sink = append(*sink, l.extInstImports...)
	*sink = append(*sink, l.memoryModel...)
	*sink = append(*sink, l.entryPoints...)
	*sink = append(*sink, l.executionModes...)
	*sink = append(*sink, l.debugSource...)
	*sink = append(*sink, l.debugNames...)
	*sink = append(*sink, l.annotations...)
	*sink = append(*sink, l.declarations...)
	*sink = append(*sink, l.functions...)
}
