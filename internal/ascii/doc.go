// Package ascii converts raster images to character art and back.
//
// The conversion is a four-stage pipeline over in-memory pixel grids:
//
//	Resize -> Adjust -> Quantize -> RenderText
//
// Resize maps pixel dimensions to character-cell dimensions, optionally
// correcting for the ~2:1 height:width aspect of a monospace terminal glyph.
// Adjust applies brightness and sharpness factors. Quantize buckets each
// pixel's luminance into an ordered character set, producing a Grid of Cells.
// RenderText serializes the Grid to plain or ANSI-truecolor text; ParseText
// and RenderImage invert the process, rasterizing text back into an image.
//
// Every stage allocates a fresh output and never mutates its input, so
// independent conversions are safe to run concurrently without locking.
// There is no shared state between calls; defaults live in explicit option
// structs (DefaultOptions, DefaultRenderOptions), never in package globals.
//
// # Error Handling
//
// Invalid parameters surface immediately, before any resampling or filtering
// work, wrapping one of the package sentinels:
//   - ErrInvalidSize: non-positive computed target dimensions, negative scale
//   - ErrInvalidAdjustment: negative brightness or sharpness factor
package ascii
