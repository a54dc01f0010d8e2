package mcp

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"vimbridge/internal/application"
	"vimbridge/internal/application/commands"
	"vimbridge/internal/domain"
	"vimbridge/internal/ports"
)

// Deps holds what the tools need
type Deps struct {
	Opener ports.FileOpener
	Syncer *commands.SyncCommand
	Store  ports.PreferenceStore
	Logger *log.Logger
}

// RegisterTools adds the editor tools to the MCP server.
func RegisterTools(s *server.MCPServer, deps Deps) {
	s.AddTool(openFileTool(), openFileHandler(deps))
	s.AddTool(syncProjectTool(), syncProjectHandler(deps))
	s.AddTool(getConfigTool(), getConfigHandler(deps.Store))
	s.AddTool(setConfigTool(), setConfigHandler(deps.Store))
}

// --- open_file ---

func openFileTool() mcp.Tool {
	return mcp.NewTool("open_file",
		mcp.WithDescription("Open a file in the running Vim server at the given cursor position."),
		mcp.WithString("path",
			mcp.Description("Absolute path of the file to open"),
			mcp.Required(),
		),
		mcp.WithNumber("line",
			mcp.Description("Cursor line (negative values become 0)"),
		),
		mcp.WithNumber("column",
			mcp.Description("Cursor column (negative values become 0)"),
		),
	)
}

func openFileHandler(deps Deps) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path := req.GetString("path", "")
		if path == "" {
			return toolError(fmt.Errorf("path is required"))
		}

		cfg, err := application.LoadConfig(deps.Store)
		if err != nil {
			return toolError(err)
		}

		result := deps.Opener.OpenFile(cfg, domain.OpenRequest{
			FilePath: path,
			Line:     req.GetInt("line", 0),
			Column:   req.GetInt("column", 0),
		})

		switch {
		case result.Success:
			return mcp.NewToolResultText(fmt.Sprintf("Opened %s in Vim", path)), nil
		case result.Err != nil:
			if deps.Logger != nil {
				deps.Logger.Print(result.Diagnostic)
			}
			return toolError(result.Err)
		default:
			return mcp.NewToolResultText(fmt.Sprintf("Not opened: %s does not match the configured extensions", path)), nil
		}
	}
}

// --- sync_project ---

func syncProjectTool() mcp.Tool {
	return mcp.NewTool("sync_project",
		mcp.WithDescription("Report changed files. Project metadata is regenerated when a code file was added, deleted or moved. With no files, regenerates unconditionally."),
		mcp.WithArray("added", mcp.Description("Added file paths"), mcp.WithStringItems()),
		mcp.WithArray("deleted", mcp.Description("Deleted file paths"), mcp.WithStringItems()),
		mcp.WithArray("moved", mcp.Description("New paths of moved files"), mcp.WithStringItems()),
	)
}

func syncProjectHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		changes := domain.ChangeSet{
			Added:   req.GetStringSlice("added", nil),
			Deleted: req.GetStringSlice("deleted", nil),
			Moved:   req.GetStringSlice("moved", nil),
		}

		var result *commands.SyncResult
		if changes.IsEmpty() {
			r, err := deps.Syncer.SyncAll(ctx)
			if err != nil {
				return toolError(err)
			}
			result = r
		} else {
			cfg, err := application.LoadConfig(deps.Store)
			if err != nil {
				return toolError(err)
			}
			r, err := deps.Syncer.Execute(ctx, cfg, changes)
			if err != nil {
				return toolError(err)
			}
			result = r
		}

		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- get_config ---

func getConfigTool() mcp.Tool {
	return mcp.NewTool("get_config",
		mcp.WithDescription("Show the configured Vim executable and code file extensions."),
	)
}

func getConfigHandler(store ports.PreferenceStore) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cfg, err := application.LoadConfig(store)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(formatConfig(cfg)), nil
	}
}

// --- set_config ---

func setConfigTool() mcp.Tool {
	return mcp.NewTool("set_config",
		mcp.WithDescription("Update the Vim executable path and/or the code file extensions."),
		mcp.WithString("executable_path",
			mcp.Description("Path to the Vim binary (e.g. /opt/homebrew/bin/mvim)"),
		),
		mcp.WithString("extensions",
			mcp.Description("Comma-separated extensions (e.g. .cs,.shader,.md). Empty string disables filtering."),
		),
	)
}

func setConfigHandler(store ports.PreferenceStore) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.GetArguments()

		path, hasPath := args["executable_path"].(string)
		exts, hasExts := args["extensions"].(string)
		if hasPath {
			if err := application.ValidateExecutablePath(path); err != nil {
				return toolError(err)
			}
		}
		if hasExts {
			if err := application.ValidateExtensions(exts); err != nil {
				return toolError(err)
			}
		}

		if hasPath {
			if _, err := application.SaveExecutablePath(store, path); err != nil {
				return toolError(err)
			}
		}
		if hasExts {
			if _, err := application.SaveExtensions(store, exts); err != nil {
				return toolError(err)
			}
		}

		cfg, err := application.LoadConfig(store)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(formatConfig(cfg)), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatConfig(cfg domain.EditorConfig) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "executable: %s\n", cfg.ExecutablePath)
	fmt.Fprintf(&sb, "extensions: %s\n", domain.FormatExtensions(cfg.AllowedExtensions))
	return sb.String()
}
