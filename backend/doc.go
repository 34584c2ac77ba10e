// Package backend provides the output backends for ndview and a
// name-based registry for selecting them.
//
// Every backend consumes the 2D draw-call contract (ndview.Backend):
// Reset, Begin/End frame brackets, DrawLine and DrawFace. Backends
// accumulate into an internal buffer; serializing backends also
// implement ndview.WriterBackend.
//
// Built-in backends, all registered under their names in init():
//
//   - "json": a JSON array of draw-command objects
//   - "svg": an SVG document (line and polygon elements)
//   - "raster": a PNG image rasterized on the CPU
//   - "null": discards primitives, counting them (dry runs, testing)
//
// Backends never fail on valid 2D input; degenerate zero-length lines
// are emitted like any other segment.
package backend
