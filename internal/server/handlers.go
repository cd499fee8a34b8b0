package server

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/team1160/assistant-vision/internal/config"
	"github.com/team1160/assistant-vision/internal/imaging"
	"github.com/team1160/assistant-vision/internal/particle"
	"github.com/team1160/assistant-vision/internal/vision"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "vision_analyze_image").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
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
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Frame Analysis
	case "vision_analyze_image":
		return s.handleAnalyzeImage(args)
	case "vision_analyze_batch":
		return s.handleAnalyzeBatch(args)
	case "vision_threshold_image":
		return s.handleThresholdImage(args)

	// Scoring
	case "vision_score_particles":
		return s.handleScoreParticles(args)
	case "vision_distance":
		return s.handleDistance(args)

	// Configuration
	case "vision_config":
		return s.handleConfig(args)

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

// unmarshalArgs decodes tool arguments, treating missing arguments as an
// empty object.
func unmarshalArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 {
		return nil
	}
	return json.Unmarshal(args, v)
}

// processor returns a Processor for already loaded images. Artifact writes
// are off unless the caller names the paths.
func (s *Server) processor(thresholdPath, filteredPath string) *vision.Processor {
	opts := s.cfg.ProcessorOptions(s.logger)
	opts.ThresholdPath = thresholdPath
	opts.FilteredPath = filteredPath
	return vision.NewProcessor(nil, s.analyzer, opts)
}

// === Frame Analysis Handlers ===

type analyzeImageArgs struct {
	Path          string `json:"path"`
	ThresholdPath string `json:"threshold_path"`
	FilteredPath  string `json:"filtered_path"`
}

func (s *Server) handleAnalyzeImage(args json.RawMessage) (interface{}, error) {
	var a analyzeImageArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, errors.New("path is required")
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return s.processor(a.ThresholdPath, a.FilteredPath).Analyze(img)
}

type analyzeBatchArgs struct {
	Paths []string `json:"paths"`
}

type analyzeBatchResult struct {
	Summary vision.Summary        `json:"summary"`
	Frames  []*vision.FrameResult `json:"frames"`
}

func (s *Server) handleAnalyzeBatch(args json.RawMessage) (interface{}, error) {
	var a analyzeBatchArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if len(a.Paths) == 0 {
		return nil, errors.New("paths must not be empty")
	}

	p := s.processor("", "")
	frames := make([]*vision.FrameResult, 0, len(a.Paths))
	for _, path := range a.Paths {
		img, err := s.cache.Load(path)
		if err != nil {
			return nil, err
		}
		res, err := p.Analyze(img)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		frames = append(frames, res)
	}
	return analyzeBatchResult{Summary: vision.Summarize(frames), Frames: frames}, nil
}

type thresholdImageArgs struct {
	Path     string `json:"path"`
	Filtered bool   `json:"filtered"`
}

type thresholdImageResult struct {
	Width         int    `json:"width"`
	Height        int    `json:"height"`
	ParticleCount int    `json:"particle_count"`
	Filtered      bool   `json:"filtered"`
	ImageBase64   string `json:"image_base64"`
}

func (s *Server) handleThresholdImage(args json.RawMessage) (interface{}, error) {
	var a thresholdImageArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, errors.New("path is required")
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	img = imaging.Normalize(img, s.cfg.Camera.Width, s.cfg.Camera.Height)
	bin := imaging.ThresholdHSV(img, s.cfg.Threshold)
	measured, err := s.analyzer.Analyze(bin)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", vision.ErrMeasurement, err)
	}

	result := thresholdImageResult{
		Width:         bin.Bounds().Dx(),
		Height:        bin.Bounds().Dy(),
		ParticleCount: measured.Len(),
		Filtered:      a.Filtered,
	}
	out := bin
	if a.Filtered {
		filtered := measured.Filter(s.cfg.Criteria())
		result.ParticleCount = filtered.Len()
		out = filtered.Image()
	}

	encoded, err := imaging.EncodePNGBase64(out)
	if err != nil {
		return nil, err
	}
	result.ImageBase64 = encoded
	return result, nil
}

// === Scoring Handlers ===

type scoreParticlesArgs struct {
	Particles []particle.Report `json:"particles"`
}

func (s *Server) handleScoreParticles(args json.RawMessage) (interface{}, error) {
	var a scoreParticlesArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	for i := range a.Particles {
		a.Particles[i].Index = i
	}
	return s.cfg.Scorer().Evaluate(a.Particles)
}

type distanceArgs struct {
	Particle    *particle.Report `json:"particle"`
	YResolution int              `json:"y_resolution"`
	ViewAngle   float64          `json:"view_angle"`
}

type distanceResult struct {
	DistanceFt float64               `json:"distance_ft"`
	Geometry   vision.CameraGeometry `json:"geometry"`
}

func (s *Server) handleDistance(args json.RawMessage) (interface{}, error) {
	var a distanceArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Particle == nil {
		return nil, errors.New("particle is required")
	}

	g := s.cfg.Geometry()
	if a.YResolution > 0 {
		g.YResolution = a.YResolution
	}
	if a.ViewAngle > 0 {
		g.ViewAngle = a.ViewAngle
	}
	d, err := vision.ComputeDistance(*a.Particle, g)
	if err != nil {
		return nil, err
	}
	return distanceResult{DistanceFt: d, Geometry: g}, nil
}

// === Configuration Handlers ===

type configResult struct {
	Config   *config.Config         `json:"config"`
	Backends []particle.BackendInfo `json:"backends"`
}

func (s *Server) handleConfig(json.RawMessage) (interface{}, error) {
	return configResult{Config: s.cfg, Backends: particle.Backends()}, nil
}
