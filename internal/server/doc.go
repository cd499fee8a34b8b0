// Package server implements an MCP (Model Context Protocol) server exposing
// the hot goal vision pipeline as tools.
//
// It lets an operator, or any MCP-compatible client, run the pipeline on
// recorded frames and inspect every stage while tuning the thresholds
// off the robot.
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
// Frame Analysis:
//   - vision_analyze_image: Full pipeline on one image file
//   - vision_analyze_batch: Full pipeline on several files, with a summary
//   - vision_threshold_image: Binary image after the HSV threshold
//
// Scoring:
//   - vision_score_particles: Score, classify and pair particle reports
//   - vision_distance: Distance estimate for a vertical strip
//
// Configuration:
//   - vision_config: Active tuning and particle backends
//
// # Image Caching
//
// Image files are decoded once and cached by path for the lifetime of the
// server process.
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
//	srv := server.New(cfg)
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
