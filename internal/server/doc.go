// Package server implements the MCP (Model Context Protocol) server for the
// ASCII-art converter.
//
// This package provides a JSON-RPC 2.0 server that exposes the image-to-text
// and text-to-image conversions through the MCP protocol, so MCP-compatible
// clients can convert images without shelling out to the CLI.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - image_to_ascii: Convert an image file to plain or ANSI-colorized text,
//     with size/scale, aspect correction, brightness/sharpness, and charset
//     parameters.
//   - ascii_to_image: Rasterize plain or ANSI-escaped text back into an
//     image, returned as base64 PNG.
//   - image_info: Load an image and return its metadata.
//
// # Image Caching
//
// The server maintains an in-memory cache of loaded images, keyed by source
// (file path or http(s) URL) and reused across tool calls to avoid redundant
// I/O. The cache persists for the lifetime of the server process.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.New(os.Stdin, os.Stdout)
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
