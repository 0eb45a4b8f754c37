// Package spirv writes SPIR-V binary modules from naga IR.
//
// SPIR-V is the standard intermediate language for GPU shaders, consumed
// by Vulkan and OpenCL drivers. A Writer translates an *ir.Module (plus
// its precomputed *ir.ModuleInfo liveness analysis) into a flat []Word
// stream ready to hand to a driver or write to disk:
//
//	w, err := spirv.NewWriter(spirv.Options{Version: spirv.Version{Major: 1, Minor: 3}})
//	if err != nil {
//		log.Fatal(err)
//	}
//	words, err := w.Write(module, info, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// # Pipeline-restricted compiles
//
// Passing a non-nil PipelineOptions restricts output to a single entry
// point: only the globals that entry point uses (directly or through
// calls) are emitted, and a function is emitted only when every global it
// uses is also used by the entry point, as recorded in the liveness
// analysis in *ir.ModuleInfo.
//
//	words, err := w.Write(module, info, &spirv.PipelineOptions{
//		ShaderStage: ir.StageFragment,
//		EntryPoint:  "main",
//	})
//
// # Capabilities
//
// Options.Capabilities restricts which SPIR-V capabilities the writer
// may emit. A nil list means every capability is allowed; a non-nil list
// makes any construct needing a capability outside it fail with
// MissingCapabilitiesError instead of silently widening the module's
// requirements.
//
// # Module layout
//
// A SPIR-V module is a fixed five-word header followed by sections in a
// mandated order: capabilities, extensions, extended instruction
// imports, memory model, entry points, execution modes, debug
// information, annotations, types and constants, global variables, and
// finally function definitions. Writer assembles each section into its
// own buffer and concatenates them in that order; see LogicalLayout.
//
// # References
//
// SPIR-V specification: https://registry.khronos.org/SPIR-V/specs/unified1/SPIRV.html
package spirv
