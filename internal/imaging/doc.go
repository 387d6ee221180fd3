// Package imaging is the codec boundary of the converter: it loads raster
// images into memory, writes them back out, and carries the small color
// helpers shared by the conversion pipeline.
//
// Decoding and encoding are delegated to the Go image registry and to
// github.com/disintegration/imaging; this package only decides when those
// collaborators run and how their failures surface.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. All other functions are
// stateless and never mutate their image argument, so independent calls can
// run concurrently without locking.
//
// # Error Handling
//
// Failures wrap one of the package sentinels so callers can classify them
// with errors.Is:
//   - ErrDecode: missing file, unreadable file, failed URL fetch, or
//     unsupported/corrupt format
//   - ErrEncode: output path cannot be written or format is unsupported
package imaging
