package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/geoserve/gmapsmcp/pkg/gmaps"
	"github.com/geoserve/gmapsmcp/pkg/server"
	"github.com/geoserve/gmapsmcp/pkg/version"
)

var (
	showVersionFlag bool
	debug           bool
	transport       string
	addr            string
	generateConfig  string
)

func init() {
	flag.BoolVar(&showVersionFlag, "version", false, "Display version information")
	flag.BoolVar(&debug, "debug", false, "Enable debug logging")
	flag.StringVar(&transport, "transport", envOr("GMAPS_MCP_TRANSPORT", server.TransportStdio),
		"Transport to serve on: stdio or sse")
	flag.StringVar(&addr, "addr", envOr("GMAPS_MCP_ADDR", "0.0.0.0:8080"),
		"Listen address for the sse transport")
	flag.StringVar(&generateConfig, "generate-config", "", "Generate a Claude Desktop Client config file at the specified path")
}

func main() {
	flag.Parse()

	// Configure logging
	var logLevel slog.Level
	if debug {
		logLevel = slog.LevelDebug
	} else {
		logLevel = slog.LevelInfo
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// Show version and exit if requested
	if showVersionFlag {
		fmt.Println(version.String())
		return
	}

	// Generate Claude Desktop config if requested
	if generateConfig != "" {
		if err := generateClientConfig(generateConfig); err != nil {
			logger.Error("failed to generate config", "error", err)
			os.Exit(1)
		}
		logger.Info("successfully generated Claude Desktop Client config", "path", generateConfig)
		return
	}

	apiKey := os.Getenv("GOOGLE_MAPS_API_KEY")
	if apiKey == "" {
		logger.Error("GOOGLE_MAPS_API_KEY must be set")
		os.Exit(1)
	}

	logger.Info("starting Google Maps MCP server",
		"version", version.BuildVersion,
		"transport", transport,
		"log_level", logLevel.String())

	// Create and run the MCP server
	maps := gmaps.NewClient(apiKey, gmaps.WithLogger(logger))
	srv, err := server.NewServer(maps)
	if err != nil {
		logger.Error("failed to create server", "error", err)
		os.Exit(1)
	}

	logger.Info("server initialized, waiting for requests")
	if err := srv.Run(transport, addr); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// envOr returns the value of the environment variable or a default.
func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// generateClientConfig creates or updates a Claude Desktop Client config file
func generateClientConfig(outputPath string) error {
	logger := slog.Default()

	// Get absolute path to executable
	execPath, err := os.Executable()
	if err != nil {
		execPath = os.Args[0] // Fallback to args if cannot get executable path
	}
	absExecPath, err := filepath.Abs(execPath)
	if err != nil {
		absExecPath = execPath // Use as is if cannot resolve absolute path
	}

	// Prepare our server config. The API key is read from the
	// environment at startup, so the generated entry passes it through.
	gmapsConfig := map[string]interface{}{
		"command": absExecPath,
		"args":    []string{},
		"env": map[string]string{
			"GOOGLE_MAPS_API_KEY": os.Getenv("GOOGLE_MAPS_API_KEY"),
		},
	}

	// Define the config structure
	var config map[string]interface{}

	// Check if file exists already
	if _, err := os.Stat(outputPath); err == nil {
		// File exists, read it
		data, err := os.ReadFile(outputPath)
		if err != nil {
			return fmt.Errorf("failed to read existing config: %w", err)
		}

		// Parse existing JSON
		if err := json.Unmarshal(data, &config); err != nil {
			logger.Warn("existing config is not valid JSON, will create new", "error", err)
			config = make(map[string]interface{})
		}
	} else {
		// File doesn't exist, create new config
		config = make(map[string]interface{})
	}

	// Check if mcpServers exists, create it if not
	mcpServers, ok := config["mcpServers"].(map[string]interface{})
	if !ok {
		mcpServers = make(map[string]interface{})
		config["mcpServers"] = mcpServers
	}

	// Add or update our server
	mcpServers["google-maps"] = gmapsConfig

	// Marshal to JSON with pretty printing
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Add a newline at the end for better formatting
	data = append(data, '\n')

	// Make sure parent directory exists
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	// Write to the output file
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
