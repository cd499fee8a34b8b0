package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// particleSchema describes one particle report as accepted by the scoring tools.
var particleSchema = map[string]interface{}{
	"type": "object",
	"properties": map[string]interface{}{
		"left":       map[string]interface{}{"type": "integer", "description": "Bounding box left edge"},
		"top":        map[string]interface{}{"type": "integer", "description": "Bounding box top edge"},
		"width":      map[string]interface{}{"type": "integer", "description": "Bounding box width"},
		"height":     map[string]interface{}{"type": "integer", "description": "Bounding box height"},
		"center_x":   map[string]interface{}{"type": "number", "description": "Center of mass X"},
		"center_y":   map[string]interface{}{"type": "number", "description": "Center of mass Y"},
		"area":       map[string]interface{}{"type": "number", "description": "Particle area in pixels"},
		"rect_long":  map[string]interface{}{"type": "number", "description": "Equivalent rectangle long side"},
		"rect_short": map[string]interface{}{"type": "number", "description": "Equivalent rectangle short side"},
	},
	"required": []string{"left", "top", "width", "height", "center_x", "center_y", "area", "rect_long", "rect_short"},
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Frame Analysis
		{
			Name:        "vision_analyze_image",
			Description: "Run the full hot goal pipeline on an image file: HSV threshold, particle analysis, area filter, scoring and classification, target pairing, hot verdict and distance.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"threshold_path": map[string]interface{}{
						"type":        "string",
						"description": "Optional path to write the thresholded binary image",
					},
					"filtered_path": map[string]interface{}{
						"type":        "string",
						"description": "Optional path to write the filtered binary image",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "vision_analyze_batch",
			Description: "Analyze several image files and summarize how many frames found a target, how many were hot, and the mean and spread of the distance estimates.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"paths": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "string"},
						"description": "Absolute paths to the image files",
					},
				},
				"required": []string{"paths"},
			},
		},
		{
			Name:        "vision_threshold_image",
			Description: "Threshold an image with the configured HSV window and return the binary image as base64-encoded PNG with its particle count.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"filtered": map[string]interface{}{
						"type":        "boolean",
						"description": "Return the image after the particle area filter. Default false",
						"default":     false,
					},
				},
				"required": []string{"path"},
			},
		},

		// Scoring
		{
			Name:        "vision_score_particles",
			Description: "Score and classify particle reports and pick the best vertical/horizontal pair. Particles are numbered by their position in the list.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"particles": map[string]interface{}{
						"type":        "array",
						"items":       particleSchema,
						"description": "Particle reports in analysis order",
					},
				},
				"required": []string{"particles"},
			},
		},
		{
			Name:        "vision_distance",
			Description: "Estimate the distance in feet to a vertical target strip from its particle report.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"particle": particleSchema,
					"y_resolution": map[string]interface{}{
						"type":        "integer",
						"description": "Vertical image resolution. Default from configuration",
					},
					"view_angle": map[string]interface{}{
						"type":        "number",
						"description": "Camera view angle in degrees. Default from configuration",
					},
				},
				"required": []string{"particle"},
			},
		},

		// Configuration
		{
			Name:        "vision_config",
			Description: "Return the active tuning and the available particle analysis backends.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
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
