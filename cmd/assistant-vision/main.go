package main

import (
	"context"
	"log"
	"os"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Configure logging to stderr (stdout is for results and the MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if debugLogging() {
		log.Printf("assistant-vision v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// debugLogging reports whether ASSISTANT_VISION_LOG_LEVEL asks for
// per-particle diagnostics.
func debugLogging() bool {
	return os.Getenv("ASSISTANT_VISION_LOG_LEVEL") == "debug"
}
