package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "image_to_ascii",
			Description: "Convert an image to ASCII art text. Supports explicit size or relative scale, terminal aspect-ratio correction, brightness/sharpness adjustment, a custom character ramp, and ANSI truecolor output.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path or http(s) URL of the image",
					},
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Target width in character cells. Requires height. Default: derived from the source dimensions.",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Target height in character cells. Requires width.",
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Relative scale factor applied to the target dimensions (e.g. 0.5 halves them). Default 1.0",
						"default":     1.0,
					},
					"fix_scaling": map[string]interface{}{
						"type":        "boolean",
						"description": "Halve the row count to compensate for terminal glyphs being ~2x taller than wide. Default true",
						"default":     true,
					},
					"brightness": map[string]interface{}{
						"type":        "number",
						"description": "Brightness factor: 1.0 = unchanged, >1 brightens, <1 darkens. Default 1.0",
						"default":     1.0,
					},
					"sharpness": map[string]interface{}{
						"type":        "number",
						"description": "Sharpness factor: 1.0 = unchanged, >1 sharpens, <1 blurs. Default 1.0",
						"default":     1.0,
					},
					"charset": map[string]interface{}{
						"type":        "string",
						"description": "Characters ordered from visually emptiest to densest. Default \" .:-=+*#%@\"",
					},
					"sort_charset": map[string]interface{}{
						"type":        "boolean",
						"description": "Reorder the charset by rendered glyph coverage, so characters may be given in any order",
						"default":     false,
					},
					"colorful": map[string]interface{}{
						"type":        "boolean",
						"description": "Wrap each cell in an ANSI truecolor escape carrying the pixel's color",
						"default":     false,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "ascii_to_image",
			Description: "Rasterize ASCII art text (plain or ANSI-colorized) back into an image, returned as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"text": map[string]interface{}{
						"type":        "string",
						"description": "The ASCII art text. ANSI truecolor escapes are honored as per-cell colors.",
					},
					"cell_width": map[string]interface{}{
						"type":        "integer",
						"description": "Pixel width of one character cell. Default 7",
						"default":     7,
					},
					"cell_height": map[string]interface{}{
						"type":        "integer",
						"description": "Pixel height of one character cell. Default 13",
						"default":     13,
					},
					"background": map[string]interface{}{
						"type":        "string",
						"description": "Canvas background as hex (default #000000)",
						"default":     "#000000",
					},
					"foreground": map[string]interface{}{
						"type":        "string",
						"description": "Color for uncolored cells as hex (default #FFFFFF)",
						"default":     "#FFFFFF",
					},
				},
				"required": []string{"text"},
			},
		},
		{
			Name:        "image_info",
			Description: "Load an image and return its dimensions, format, alpha presence, and file size.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path or http(s) URL of the image",
					},
				},
				"required": []string{"path"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
