package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/ironsheep/color-tools-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("%s %s\n", server.ServerName, Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("color-tools-mcp - MCP server for color conversion and image color sampling")
			fmt.Println()
			fmt.Println("Usage: color-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  COLOR_MCP_LOG_LEVEL=debug    Log startup and failed tool calls")
			fmt.Println("  COLOR_MCP_CACHE_SIZE=N       Decoded images kept in memory (default 32)")
			fmt.Println()
			fmt.Println("Colors are accepted as #RGB, #RRGGBB, #RRGGBBAA, rgb()/rgba() or hsl()/hsla().")
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			return
		default:
			fmt.Fprintf(os.Stderr, "unknown option %q, see --help\n", os.Args[1])
			os.Exit(2)
		}
	}

	// stdout carries the protocol
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	debug := os.Getenv("COLOR_MCP_LOG_LEVEL") == "debug"
	if debug {
		log.Printf("Color MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	cacheSize := 0
	if v := os.Getenv("COLOR_MCP_CACHE_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			log.Fatalf("COLOR_MCP_CACHE_SIZE must be a positive integer, got %q", v)
		}
		cacheSize = n
	}

	srv := server.NewWithConfig(server.Config{Debug: debug, CacheSize: cacheSize})
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
