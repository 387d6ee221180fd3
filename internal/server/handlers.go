package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image/png"

	"github.com/ajratnam/image-to-ascii/internal/ascii"
	"github.com/ajratnam/image-to-ascii/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_to_ascii").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified
// tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler unmarshals its arguments, applies defaults for optional
// parameters, and calls into the ascii/imaging packages.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "image_to_ascii":
		return s.handleImageToASCII(args)
	case "ascii_to_image":
		return s.handleASCIIToImage(args)
	case "image_info":
		return s.handleImageInfo(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === image_to_ascii ===

type imageToASCIIArgs struct {
	Path        string   `json:"path"`
	Width       int      `json:"width"`
	Height      int      `json:"height"`
	Scale       float64  `json:"scale"`
	FixScaling  *bool    `json:"fix_scaling"`
	Brightness  *float64 `json:"brightness"`
	Sharpness   *float64 `json:"sharpness"`
	Charset     string   `json:"charset"`
	SortCharset bool     `json:"sort_charset"`
	Colorful    bool     `json:"colorful"`
}

// ImageToASCIIResult contains the converted text and its cell dimensions.
type ImageToASCIIResult struct {
	Text   string `json:"text"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

func (s *Server) handleImageToASCII(args json.RawMessage) (interface{}, error) {
	var a imageToASCIIArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	opts := ascii.DefaultOptions()
	if a.Width != 0 || a.Height != 0 {
		if a.Width <= 0 || a.Height <= 0 {
			return nil, fmt.Errorf("width and height must both be positive, got %dx%d", a.Width, a.Height)
		}
		opts.Size = &ascii.Dimensions{Width: a.Width, Height: a.Height}
	}
	opts.Scale = a.Scale
	if a.FixScaling != nil {
		opts.FixScaling = *a.FixScaling
	}
	// Pointers distinguish an explicit 0 (a legal factor) from an absent
	// argument.
	if a.Brightness != nil {
		opts.Brightness = *a.Brightness
	}
	if a.Sharpness != nil {
		opts.Sharpness = *a.Sharpness
	}
	if a.Charset != "" {
		opts.Charset = ascii.Charset(a.Charset)
	}
	if a.SortCharset {
		opts.Charset = opts.Charset.SortByDensity(nil)
	}
	opts.Colorful = a.Colorful

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	// Run the stages individually so the result can report cell dimensions
	// without re-parsing the text.
	resized, err := ascii.Resize(img, opts.Size, opts.Scale, opts.FixScaling)
	if err != nil {
		return nil, err
	}
	adjusted, err := ascii.Adjust(resized, opts.Brightness, opts.Sharpness)
	if err != nil {
		return nil, err
	}
	grid, err := ascii.Quantize(adjusted, opts.Charset, opts.Colorful)
	if err != nil {
		return nil, err
	}

	return &ImageToASCIIResult{
		Text:   ascii.RenderText(grid),
		Width:  grid.Width(),
		Height: grid.Height(),
	}, nil
}

// === ascii_to_image ===

type asciiToImageArgs struct {
	Text       string `json:"text"`
	CellWidth  int    `json:"cell_width"`
	CellHeight int    `json:"cell_height"`
	Background string `json:"background"`
	Foreground string `json:"foreground"`
}

// ASCIIToImageResult contains the rasterized image as base64 PNG.
type ASCIIToImageResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

func (s *Server) handleASCIIToImage(args json.RawMessage) (interface{}, error) {
	var a asciiToImageArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	opts := ascii.DefaultRenderOptions()
	if a.CellWidth > 0 {
		opts.Cell.Width = a.CellWidth
	}
	if a.CellHeight > 0 {
		opts.Cell.Height = a.CellHeight
	}
	if a.Background != "" {
		bg, err := imaging.ParseHexColor(a.Background)
		if err != nil {
			return nil, fmt.Errorf("invalid background color %q: %w", a.Background, err)
		}
		opts.Background = bg
	}
	if a.Foreground != "" {
		fg, err := imaging.ParseHexColor(a.Foreground)
		if err != nil {
			return nil, fmt.Errorf("invalid foreground color %q: %w", a.Foreground, err)
		}
		opts.Foreground = fg
	}

	img, err := ascii.ASCIIToImage(a.Text, opts)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return &ASCIIToImageResult{
		Width:       img.Bounds().Dx(),
		Height:      img.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// === image_info ===

type imageInfoArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageInfo(args json.RawMessage) (interface{}, error) {
	var a imageInfoArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}
