package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"vimbridge/internal/adapters/editor"
	"vimbridge/internal/adapters/hook"
	mcpadapter "vimbridge/internal/adapters/mcp"
	"vimbridge/internal/adapters/sqlite"
	"vimbridge/internal/application/commands"
	"vimbridge/internal/config"
)

func main() {
	prefsFlag := flag.String("prefs", config.PrefsPath(), "path to the preferences database")
	projectFlag := flag.String("project", config.ProjectRoot(), "project root added to Vim's search path")
	regenFlag := flag.String("regen", config.RegenCommand(), "shell command that regenerates project metadata")
	flag.Parse()

	// stdout carries the MCP protocol
	logger := log.New(os.Stderr, "vimbridge-mcp: ", log.LstdFlags)

	store, err := sqlite.Open(*prefsFlag)
	if err != nil {
		logger.Fatalf("%v", err)
	}
	defer store.Close()

	root := config.AbsProjectRoot(*projectFlag)

	mcpServer := server.NewMCPServer(
		"vimbridge-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterTools(mcpServer, mcpadapter.Deps{
		Opener: commands.NewOpenFileCommand(editor.NewLauncher(), root),
		Syncer: commands.NewSyncCommand(hook.NewRegenerator(*regenFlag, hook.WithDir(root), hook.WithLogger(logger))),
		Store:  store,
		Logger: logger,
	})

	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Fatalf("%v", err)
	}
}
