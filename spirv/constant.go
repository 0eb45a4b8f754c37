package spirv

import (
	"math"

	"github.com/nagaspv/spirvwriter/ir"
)

// writeConstants runs the two-pass constant emission over the module's
// constant arena: scalars first (composites reference scalar ids), then
// composites. After this, no entry in constantIDs remains 0.
func (w *Writer) writeConstants(module *ir.Module) error {
	w.constantIDs = make([]Word, len(module.Constants))

	for h, c := range module.Constants {
		if _, ok := c.Value.(ir.CompositeValue); ok {
			continue
		}
		id, err := w.writeConstantScalar(module, c)
		if err != nil {
			return err
		}
		w.constantIDs[h] = id
	}

	for h, c := range module.Constants {
		comp, ok := c.Value.(ir.CompositeValue)
		if !ok {
			continue
		}
		id, err := w.writeConstantComposite(module, c.Type, comp)
		if err != nil {
			return err
		}
		w.constantIDs[h] = id
	}

	for _, id := range w.constantIDs {
		if id == 0 {
			panic("spirv: constant id left unassigned after emission")
		}
	}
	return nil
}

func (w *Writer) writeConstantScalar(module *ir.Module, c ir.Constant) (Word, error) {
	sv := c.Value.(ir.ScalarValue)
	width := module.Types[c.Type].Inner.(ir.ScalarType).Width
	typeID, err := w.typeID(lookupLocal(LocalScalar{Kind: sv.Kind, Width: width}))
	if err != nil {
		return 0, err
	}

	if c.Name != "" {
		id := w.emitScalarConstant(typeID, sv, width)
		if w.options.Debug {
			w.debugNames(instrName(id, c.Name))
		}
		return id, nil
	}
	return w.getConstantScalar(typeID, sv, width), nil
}

// getConstantScalar returns the cached id for an unnamed scalar constant,
// allocating and emitting it on first use. Constants with equal (value,
// width) and no explicit name share an id.
func (w *Writer) getConstantScalar(typeID Word, sv ir.ScalarValue, width uint8) Word {
	key := constantKey{Bits: sv.Bits, Kind: sv.Kind, Width: width}
	if id, ok := w.cachedConstants[key]; ok {
		return id
	}
	id := w.emitScalarConstant(typeID, sv, width)
	w.cachedConstants[key] = id
	return id
}

func (w *Writer) emitScalarConstant(typeID Word, sv ir.ScalarValue, width uint8) Word {
	id := w.idGen.Next()

	if sv.Kind == ir.ScalarBool {
		if sv.Bits != 0 {
			w.declarations(instrConstantTrue(typeID, id))
		} else {
			w.declarations(instrConstantFalse(typeID, id))
		}
		return id
	}

	switch width {
	case 4:
		var word Word
		if sv.Kind == ir.ScalarFloat {
			word = math.Float32bits(float32(math.Float64frombits(sv.Bits)))
		} else {
			word = Word(sv.Bits)
		}
		w.declarations(instrConstant(typeID, id, []Word{word}))
	case 8:
		// High word first, matching the Rust source's constant() encoding
		// for 64-bit integers and doubles alike.
		hi := Word(sv.Bits >> 32)
		lo := Word(sv.Bits)
		w.declarations(instrConstant(typeID, id, []Word{hi, lo}))
	default:
		panic("spirv: scalar constant width outside {4,8}")
	}
	return id
}

func (w *Writer) writeConstantComposite(module *ir.Module, typeHandle ir.TypeHandle, comp ir.CompositeValue) (Word, error) {
	typeID, err := w.writeTypeDeclarationArena(module, typeHandle)
	if err != nil {
		return 0, err
	}
	constituents := make([]Word, len(comp.Components))
	for i, ch := range comp.Components {
		constituents[i] = w.constantIDs[ch]
	}
	id := w.idGen.Next()
	w.declarations(instrConstantComposite(typeID, id, constituents))
	return id, nil
}

// constantNull emits OpConstantNull for a zero-initialized local lacking
// an explicit initializer.
func (w *Writer) constantNull(typeID Word) Word {
	id := w.idGen.Next()
	w.declarations(instrConstantNull(typeID, id))
	return id
}

// constantU32 interns a small unconditional u32 constant, used for array
// lengths; it does not go through the named/unnamed IR constant path since
// it has no IR constant handle of its own.
func (w *Writer) constantU32(value uint32) (Word, error) {
	typeID, err := w.getUintTypeID()
	if err != nil {
		return 0, err
	}
	return w.getConstantScalar(typeID, ir.ScalarValue{Bits: uint64(value), Kind: ir.ScalarUint}, 4), nil
}
