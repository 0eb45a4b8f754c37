package spirv

// Word is SPIR-V's atomic 32-bit unit.
type Word = uint32

// Instruction is an opaque record of one SPIR-V instruction: an opcode
// plus its operand words (result type id and result id, when present, are
// just the first operand words by convention of the constructor that
// built it). It knows nothing about SPIR-V section ordering; that is the
// job of LogicalLayout.
type Instruction struct {
	Opcode  OpCode
	Operands []Word
}

// wordCount is the length-prefixed word count SPIR-V requires as the high
// 16 bits of the first instruction word.
func (i Instruction) wordCount() Word {
	return Word(len(i.Operands) + 1)
}

// ToWords appends the instruction's encoded words (opcode word followed by
// operands) to sink, growing it as needed.
func (i Instruction) ToWords(sink *[]Word) {
	*sink = append(*sink, (i.wordCount()<<16)|Word(i.Opcode))
	*sink = append(*sink, i.Operands...)
}

func instr(op OpCode, operands ...Word) Instruction {
	return Instruction{Opcode: op, Operands: operands}
}

// encodeString packs a UTF-8 string into little-endian words with a NUL
// terminator and zero padding to a word boundary, per SPIR-V's literal
// string encoding.
func encodeString(s string) []Word {
	b := []byte(s)
	b = append(b, 0)
	for len(b)%4 != 0 {
		b = append(b, 0)
	}
	words := make([]Word, len(b)/4)
	for i := range words {
		words[i] = Word(b[i*4]) | Word(b[i*4+1])<<8 | Word(b[i*4+2])<<16 | Word(b[i*4+3])<<24
	}
	return words
}

// --- Instruction constructors, one per opcode the writer emits. ---

func instrCapability(cap Capability) Instruction {
	return instr(OpCapability, Word(cap))
}

func instrExtension(name string) Instruction {
	return instr(OpExtension, encodeString(name)...)
}

func instrExtInstImport(id Word, name string) Instruction {
	return instr(OpExtInstImport, append([]Word{id}, encodeString(name)...)...)
}

func instrMemoryModel(addressing AddressingModel, memory MemoryModel) Instruction {
	return instr(OpMemoryModel, Word(addressing), Word(memory))
}

func instrEntryPoint(model ExecutionModel, function Word, name string, interfaceIDs []Word) Instruction {
	operands := append([]Word{Word(model), function}, encodeString(name)...)
	operands = append(operands, interfaceIDs...)
	return instr(OpEntryPoint, operands...)
}

func instrExecutionMode(function Word, mode ExecutionMode, params ...Word) Instruction {
	return instr(OpExecutionMode, append([]Word{function, Word(mode)}, params...)...)
}

func instrSource(lang uint32, version uint32) Instruction {
	return instr(OpSource, lang, version)
}

func instrName(id Word, name string) Instruction {
	return instr(OpName, append([]Word{id}, encodeString(name)...)...)
}

func instrMemberName(structID, member Word, name string) Instruction {
	return instr(OpMemberName, append([]Word{structID, member}, encodeString(name)...)...)
}

func instrDecorate(id Word, decoration Decoration, params ...Word) Instruction {
	return instr(OpDecorate, append([]Word{id, Word(decoration)}, params...)...)
}

func instrMemberDecorate(structID, member Word, decoration Decoration, params ...Word) Instruction {
	return instr(OpMemberDecorate, append([]Word{structID, member, Word(decoration)}, params...)...)
}

func instrTypeVoid(id Word) Instruction { return instr(OpTypeVoid, id) }
func instrTypeBool(id Word) Instruction { return instr(OpTypeBool, id) }

func instrTypeInt(id Word, width Word, signed bool) Instruction {
	s := Word(0)
	if signed {
		s = 1
	}
	return instr(OpTypeInt, id, width, s)
}

func instrTypeFloat(id Word, width Word) Instruction {
	return instr(OpTypeFloat, id, width)
}

func instrTypeVector(id, componentType, size Word) Instruction {
	return instr(OpTypeVector, id, componentType, size)
}

func instrTypeMatrix(id, columnType, columnCount Word) Instruction {
	return instr(OpTypeMatrix, id, columnType, columnCount)
}

func instrTypeArray(id, elementType, lengthConstID Word) Instruction {
	return instr(OpTypeArray, id, elementType, lengthConstID)
}

func instrTypeRuntimeArray(id, elementType Word) Instruction {
	return instr(OpTypeRuntimeArray, id, elementType)
}

func instrTypeStruct(id Word, memberTypes ...Word) Instruction {
	return instr(OpTypeStruct, append([]Word{id}, memberTypes...)...)
}

func instrTypePointer(id Word, class StorageClass, base Word) Instruction {
	return instr(OpTypePointer, id, Word(class), base)
}

func instrTypeFunction(id, returnType Word, paramTypes []Word) Instruction {
	return instr(OpTypeFunction, append([]Word{id, returnType}, paramTypes...)...)
}

func instrTypeSampler(id Word) Instruction { return instr(OpTypeSampler, id) }

func instrTypeImage(id, sampledType Word, dim Word, depth, arrayed, ms, sampled, format Word) Instruction {
	return instr(OpTypeImage, id, sampledType, dim, depth, arrayed, ms, sampled, format)
}

func instrTypeSampledImage(id, imageType Word) Instruction {
	return instr(OpTypeSampledImage, id, imageType)
}

func instrConstant(typeID, id Word, words []Word) Instruction {
	return instr(OpConstant, append([]Word{typeID, id}, words...)...)
}

func instrConstantTrue(typeID, id Word) Instruction  { return instr(OpConstantTrue, typeID, id) }
func instrConstantFalse(typeID, id Word) Instruction { return instr(OpConstantFalse, typeID, id) }

func instrConstantComposite(typeID, id Word, constituents []Word) Instruction {
	return instr(OpConstantComposite, append([]Word{typeID, id}, constituents...)...)
}

func instrConstantNull(typeID, id Word) Instruction {
	return instr(OpConstantNull, typeID, id)
}

func instrVariable(typeID, id Word, class StorageClass, initializer *Word) Instruction {
	operands := []Word{typeID, id, Word(class)}
	if initializer != nil {
		operands = append(operands, *initializer)
	}
	return instr(OpVariable, operands...)
}

func instrLoad(typeID, id, pointer Word) Instruction {
	return instr(OpLoad, typeID, id, pointer)
}

func instrStore(pointer, value Word) Instruction {
	return instr(OpStore, pointer, value)
}

func instrCompositeConstruct(typeID, id Word, constituents []Word) Instruction {
	return instr(OpCompositeConstruct, append([]Word{typeID, id}, constituents...)...)
}

func instrCompositeExtract(typeID, id, composite Word, indices []Word) Instruction {
	return instr(OpCompositeExtract, append([]Word{typeID, id, composite}, indices...)...)
}

func instrAccessChain(typeID, id, base Word, indices []Word) Instruction {
	return instr(OpAccessChain, append([]Word{typeID, id, base}, indices...)...)
}

func instrFunction(returnType, id Word, control FunctionControl, funcType Word) Instruction {
	return instr(OpFunction, returnType, id, Word(control), funcType)
}

func instrFunctionParameter(typeID, id Word) Instruction {
	return instr(OpFunctionParameter, typeID, id)
}

func instrFunctionEnd() Instruction { return instr(OpFunctionEnd) }

func instrLabel(id Word) Instruction { return instr(OpLabel, id) }

func instrBranch(target Word) Instruction { return instr(OpBranch, target) }

func instrReturn() Instruction { return instr(OpReturn) }

func instrReturnValue(value Word) Instruction { return instr(OpReturnValue, value) }

func instrKill() Instruction { return instr(OpKill) }

// Opcodes absent from the main table because the teacher's subset never
// declared image types or boolean constants directly.
const (
	OpTypeImage        OpCode = 25
	OpTypeSampler      OpCode = 26
	OpTypeSampledImage OpCode = 27
	OpConstantTrue     OpCode = 41
	OpConstantFalse    OpCode = 42
)
