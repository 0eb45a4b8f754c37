package spirv

import (
	"fmt"

	"github.com/nagaspv/spirvwriter/ir"
)

// addressSpaceToStorageClass maps an IR address space to its SPIR-V
// storage class.
func addressSpaceToStorageClass(space ir.AddressSpace) StorageClass {
	switch space {
	case ir.SpaceFunction:
		return StorageClassFunction
	case ir.SpacePrivate:
		return StorageClassPrivate
	case ir.SpaceWorkGroup:
		return StorageClassWorkgroup
	case ir.SpaceUniform:
		return StorageClassUniform
	case ir.SpaceStorage:
		return StorageClassStorageBuffer
	case ir.SpacePushConstant:
		return StorageClassPushConstant
	case ir.SpaceHandle:
		return StorageClassUniformConstant
	default:
		panic(fmt.Sprintf("spirv: unhandled address space %d", space))
	}
}

// typeID resolves a LookupType to its SPIR-V id, interning and declaring a
// Local key on first use. A Handle key that isn't already cached is an
// invariant violation: the arena pass (writeTypeDeclarationArena) must
// have populated it first.
func (w *Writer) typeID(key LookupType) (Word, error) {
	k := key.key()
	if id, ok := w.typeIDs[k]; ok {
		return id, nil
	}
	if key.IsHandle() {
		panic("spirv: type handle referenced before arena emission")
	}

	id := w.idGen.Next()
	w.typeIDs[k] = id
	if err := w.declareLocalType(id, key.local); err != nil {
		return 0, err
	}
	return id, nil
}

func (w *Writer) declareLocalType(id Word, lt LocalType) error {
	switch t := lt.(type) {
	case LocalScalar:
		return w.makeScalar(id, t.Kind, t.Width)
	case LocalVector:
		scalarID, err := w.typeID(lookupLocal(LocalScalar{Kind: t.Kind, Width: t.Width}))
		if err != nil {
			return err
		}
		w.declarations(instrTypeVector(id, scalarID, Word(t.Size)))
		return nil
	case LocalMatrix:
		columnID, err := w.typeID(lookupLocal(LocalVector{Size: t.Rows, Kind: ir.ScalarFloat, Width: t.Width}))
		if err != nil {
			return err
		}
		w.declarations(instrTypeMatrix(id, columnID, Word(t.Columns)))
		return nil
	case LocalPointer:
		baseID, err := w.typeID(lookupHandle(t.Base))
		if err != nil {
			return err
		}
		w.declarations(instrTypePointer(id, t.Class, baseID))
		return nil
	case LocalValuePointer:
		var baseID Word
		var err error
		if t.Size != nil {
			baseID, err = w.typeID(lookupLocal(LocalVector{Size: *t.Size, Kind: t.Kind, Width: t.Width}))
		} else {
			baseID, err = w.typeID(lookupLocal(LocalScalar{Kind: t.Kind, Width: t.Width}))
		}
		if err != nil {
			return err
		}
		w.declarations(instrTypePointer(id, t.Class, baseID))
		return nil
	case LocalImage:
		return w.declareImageType(id, t)
	case LocalSampler:
		w.declarations(instrTypeSampler(id))
		return nil
	case LocalSampledImage:
		w.declarations(instrTypeSampledImage(id, t.ImageTypeID))
		return nil
	default:
		panic(fmt.Sprintf("spirv: unhandled local type %T", lt))
	}
}

// makeScalar declares an OpTypeBool/OpTypeInt/OpTypeFloat, requesting the
// width capability (gated against capabilities_available) for non-32-bit
// integers and 64-bit floats.
func (w *Writer) makeScalar(id Word, kind ir.ScalarKind, width uint8) error {
	if kind == ir.ScalarBool {
		w.declarations(instrTypeBool(id))
		return nil
	}

	bits := Word(width) * 8
	switch {
	case bits == 8:
		if _, err := w.caps.requireAny("8-bit integers", []Capability{CapabilityInt8}); err != nil {
			return err
		}
	case bits == 16 && kind != ir.ScalarFloat:
		if _, err := w.caps.requireAny("16-bit integers", []Capability{CapabilityInt16}); err != nil {
			return err
		}
	case bits == 16 && kind == ir.ScalarFloat:
		if _, err := w.caps.requireAny("16-bit floats", []Capability{CapabilityFloat16}); err != nil {
			return err
		}
	case bits == 64 && kind == ir.ScalarFloat:
		if _, err := w.caps.requireAny("64-bit floats", []Capability{CapabilityFloat64}); err != nil {
			return err
		}
	case bits == 64:
		if _, err := w.caps.requireAny("64-bit integers", []Capability{CapabilityInt64}); err != nil {
			return err
		}
	}

	if kind == ir.ScalarFloat {
		w.declarations(instrTypeFloat(id, bits))
		return nil
	}
	w.declarations(instrTypeInt(id, bits, kind == ir.ScalarSint))
	return nil
}

// pointerID returns the SPIR-V id for a pointer to the named type in the
// given storage class. SPIR-V forbids pointer-to-pointer, so when the
// pointee is itself a pointer type this returns the pointee's own id
// unchanged, per the Rust source's defensive guard.
func (w *Writer) pointerID(module *ir.Module, handle ir.TypeHandle, class StorageClass) (Word, error) {
	if _, ok := module.Types[handle].Inner.(ir.PointerType); ok {
		return w.typeID(lookupHandle(handle))
	}
	return w.typeID(lookupLocal(LocalPointer{Base: handle, Class: class}))
}

func (w *Writer) getUintTypeID() (Word, error) {
	return w.typeID(lookupLocal(LocalScalar{Kind: ir.ScalarUint, Width: 4}))
}

func (w *Writer) getFloatTypeID() (Word, error) {
	return w.typeID(lookupLocal(LocalScalar{Kind: ir.ScalarFloat, Width: 4}))
}

func (w *Writer) getBoolTypeID() (Word, error) {
	return w.typeID(lookupLocal(LocalScalar{Kind: ir.ScalarBool, Width: 1}))
}

func (w *Writer) getFloatPointerTypeID(class StorageClass) (Word, error) {
	return w.typeID(lookupLocal(LocalValuePointer{Kind: ir.ScalarFloat, Width: 4, Class: class}))
}

// requestImageCapabilities classifies an image type and requests whatever
// capability its dimension/arrayed/sampled-vs-storage combination implies.
func (w *Writer) requestImageCapabilities(img ir.ImageType) (ImageFormat, error) {
	format := ImageFormatUnknown
	sampled := img.Class != ir.ImageClassStorage

	if img.Class == ir.ImageClassStorage {
		format = StorageFormatToImageFormat(img.Format)
		if err := w.requestImageFormatCapabilities(format); err != nil {
			return format, err
		}
	}

	switch img.Dim {
	case ir.Dim1D:
		if sampled {
			if _, err := w.caps.requireAny("1D sampled image", []Capability{CapabilitySampled1D}); err != nil {
				return format, err
			}
		} else {
			if _, err := w.caps.requireAny("1D storage image", []Capability{CapabilityImage1D}); err != nil {
				return format, err
			}
		}
	case ir.DimCube:
		if img.Arrayed {
			if sampled {
				if _, err := w.caps.requireAny("cube-array sampled image", []Capability{CapabilitySampledCubeArray}); err != nil {
					return format, err
				}
			} else {
				if _, err := w.caps.requireAny("cube-array storage image", []Capability{CapabilityImageCubeArray}); err != nil {
					return format, err
				}
			}
		}
	}
	return format, nil
}

// requestImageFormatCapabilities requests the capability a storage image
// format requires, grounded on the Rust source's
// request_image_format_capabilities match arms: most non-baseline formats
// need StorageImageExtendedFormats, the two 64-bit integer formats need
// Int64ImageEXT, and the baseline formats need nothing.
func (w *Writer) requestImageFormatCapabilities(format ImageFormat) error {
	switch format {
	case ImageFormatR64ui, ImageFormatR64i:
		_, err := w.caps.requireAny("64-bit integer storage image format", []Capability{CapabilityInt64ImageEXT})
		return err
	case ImageFormatRg32f, ImageFormatRg16f, ImageFormatR11fG11fB10f, ImageFormatR16f,
		ImageFormatRgba16, ImageFormatRgb10A2, ImageFormatRg16, ImageFormatRg8,
		ImageFormatR16, ImageFormatR8, ImageFormatRgba16Snorm, ImageFormatRg16Snorm,
		ImageFormatRg8Snorm, ImageFormatR16Snorm, ImageFormatR8Snorm,
		ImageFormatRg32i, ImageFormatRg16i, ImageFormatRg8i, ImageFormatR16i, ImageFormatR8i,
		ImageFormatRgb10a2ui, ImageFormatRg32ui, ImageFormatRg16ui, ImageFormatRg8ui,
		ImageFormatR16ui, ImageFormatR8ui:
		_, err := w.caps.requireAny("extended storage image format", []Capability{CapabilityStorageImageExtendedFormats})
		return err
	default:
		return nil
	}
}

func (w *Writer) declareImageType(id Word, t LocalImage) error {
	sampledTypeID, err := w.typeID(lookupLocal(LocalScalar{Kind: t.SampledKind, Width: 4}))
	if err != nil {
		return err
	}
	depth := Word(0)
	if t.Depth {
		depth = 1
	}
	arrayed := Word(0)
	if t.Arrayed {
		arrayed = 1
	}
	ms := Word(0)
	if t.Multisampled {
		ms = 1
	}
	sampledFlag := Word(2)
	if t.Sampled {
		sampledFlag = 1
	}
	w.declarations(instrTypeImage(id, sampledTypeID, Word(t.Dim), depth, arrayed, ms, sampledFlag, Word(t.Format)))
	return nil
}

// writeTypeDeclarationArena dispatches an IR type arena entry to the right
// LocalType projection, runs the image capability gate when applicable,
// emits struct/array decorations, publishes the Handle alias, and emits
// the debug OpName.
func (w *Writer) writeTypeDeclarationArena(module *ir.Module, handle ir.TypeHandle) (Word, error) {
	if id, ok := w.typeIDs[lookupHandle(handle).key()]; ok {
		return id, nil
	}

	ty := module.Types[handle]
	var id Word
	var err error

	switch inner := ty.Inner.(type) {
	case ir.ScalarType:
		id, err = w.typeID(lookupLocal(LocalScalar{Kind: inner.Kind, Width: inner.Width}))
	case ir.VectorType:
		id, err = w.typeID(lookupLocal(LocalVector{Size: inner.Size, Kind: inner.Scalar.Kind, Width: inner.Scalar.Width}))
	case ir.MatrixType:
		id, err = w.typeID(lookupLocal(LocalMatrix{Columns: inner.Columns, Rows: inner.Rows, Width: inner.Scalar.Width}))
	case ir.PointerType:
		id, err = w.pointerID(module, inner.Base, addressSpaceToStorageClass(inner.Space))
	case ir.SamplerType:
		id, err = w.typeID(lookupLocal(LocalSampler{}))
	case ir.ImageType:
		id, err = w.writeImageArenaType(module, inner)
	case ir.ArrayType:
		id, err = w.writeArrayArenaType(module, inner)
	case ir.StructType:
		id, err = w.writeStructArenaType(module, inner)
	case ir.AtomicType:
		id, err = w.typeID(lookupLocal(LocalScalar{Kind: inner.Scalar.Kind, Width: inner.Scalar.Width}))
	default:
		panic(fmt.Sprintf("spirv: unhandled type inner %T", inner))
	}
	if err != nil {
		return 0, err
	}

	w.typeIDs[lookupHandle(handle).key()] = id
	if w.options.Debug && ty.Name != "" {
		w.debugNames(instrName(id, ty.Name))
	}
	return id, nil
}

func (w *Writer) writeImageArenaType(_ *ir.Module, inner ir.ImageType) (Word, error) {
	depth := inner.Class == ir.ImageClassDepth
	sampled := inner.Class != ir.ImageClassStorage

	format, err := w.requestImageCapabilities(inner)
	if err != nil {
		return 0, err
	}

	return w.typeID(lookupLocal(LocalImage{
		SampledKind:  ir.ScalarFloat,
		Dim:          inner.Dim,
		Arrayed:      inner.Arrayed,
		Depth:        depth,
		Multisampled: inner.Multisampled,
		Sampled:      sampled,
		Format:       format,
	}))
}

func (w *Writer) writeArrayArenaType(module *ir.Module, inner ir.ArrayType) (Word, error) {
	baseID, err := w.writeTypeDeclarationArena(module, inner.Base)
	if err != nil {
		return 0, err
	}

	var id Word
	if inner.Size.Constant != nil {
		lengthID, cerr := w.constantU32(*inner.Size.Constant)
		if cerr != nil {
			return 0, cerr
		}
		id = w.idGen.Next()
		w.declarations(instrTypeArray(id, baseID, lengthID))
	} else {
		id = w.idGen.Next()
		w.declarations(instrTypeRuntimeArray(id, baseID))
	}

	if inner.Stride != 0 {
		w.annotate(instrDecorate(id, DecorationArrayStride, inner.Stride))
	}
	return id, nil
}

func (w *Writer) writeStructArenaType(module *ir.Module, inner ir.StructType) (Word, error) {
	memberIDs := make([]Word, len(inner.Members))
	for i, m := range inner.Members {
		memberID, err := w.writeTypeDeclarationArena(module, m.Type)
		if err != nil {
			return 0, err
		}
		memberIDs[i] = memberID
	}

	id := w.idGen.Next()
	w.declarations(instrTypeStruct(id, memberIDs...))
	w.annotate(instrDecorate(id, DecorationBlock))

	for i, m := range inner.Members {
		w.annotate(instrMemberDecorate(id, Word(i), DecorationOffset, m.Offset))
		if w.options.Debug && m.Name != "" {
			w.debugNames(instrMemberName(id, Word(i), m.Name))
		}

		memberInner := module.Types[m.Type].Inner
		if arr, ok := memberInner.(ir.ArrayType); ok {
			memberInner = module.Types[arr.Base].Inner
		}
		if mat, ok := memberInner.(ir.MatrixType); ok {
			stride := Word(mat.Rows) * Word(mat.Scalar.Width)
			if mat.Columns == 2 {
				stride = 2 * Word(mat.Scalar.Width)
			} else {
				stride = 4 * Word(mat.Scalar.Width)
			}
			w.annotate(instrMemberDecorate(id, Word(i), DecorationColMajor))
			w.annotate(instrMemberDecorate(id, Word(i), DecorationMatrixStride, stride))
		}
	}

	return id, nil
}
