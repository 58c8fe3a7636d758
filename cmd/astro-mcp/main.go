package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/skystead/astro-tools-mcp/internal/config"
	"github.com/skystead/astro-tools-mcp/internal/logger"
	"github.com/skystead/astro-tools-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("astro-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("astro-mcp - MCP server for astronomical coordinate and region tools")
			fmt.Println()
			fmt.Println("Usage: astro-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  ASTRO_MCP_CONFIG=/path/to/config.yaml    Configuration file")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	cfg, err := config.Load(os.Getenv("ASTRO_MCP_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	// All logging goes to stderr; stdout carries the MCP protocol.
	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Debug("starting astro-mcp",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
		zap.String("commit", GitCommit),
	)

	srv := server.New(cfg, log, nil)
	if err := srv.Run(); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}
