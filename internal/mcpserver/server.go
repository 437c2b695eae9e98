// Package mcpserver provides an MCP (Model Context Protocol) server that
// exposes the snippet library as tools over the stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/snipmaker/internal/apperr"
	"github.com/starford/snipmaker/internal/models"
	"github.com/starford/snipmaker/internal/snippetservice"
)

// Server wraps the MCP server with the snippet tools.
type Server struct {
	mcp *server.MCPServer
	svc *snippetservice.Service
}

// New creates a new MCP server with all snippet tools registered.
func New(svc *snippetservice.Service, version string) *Server {
	s := &Server{svc: svc}

	s.mcp = server.NewMCPServer(
		"snipmaker",
		version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("list_snippets",
		mcp.WithDescription("List the snippet files in the user's snippet directory, sorted by name."),
	), s.listSnippets)

	s.mcp.AddTool(mcp.NewTool("read_snippet",
		mcp.WithDescription("Read a snippet file and its parsed fields (content, tab trigger, description, scope)."),
		mcp.WithString("file_name", mcp.Required(), mcp.Description("Snippet file name, e.g. awesome.sublime-snippet")),
	), s.readSnippet)

	s.mcp.AddTool(mcp.NewTool("make_snippet",
		mcp.WithDescription("Create a snippet file. Read the format first via get_snippet_format "+
			"or the snipmaker://snippet-format resource. Literal $ in the body is escaped "+
			"unless the server is configured otherwise."),
		mcp.WithString("body", mcp.Required(), mcp.Description("Text inserted by the snippet")),
		mcp.WithString("trigger", mcp.Required(), mcp.Description("Tab trigger")),
		mcp.WithString("description", mcp.Description("Description shown in the command palette")),
		mcp.WithString("scope", mcp.Description("Scope selector, e.g. source.python")),
		mcp.WithString("file_name", mcp.Description("File name; defaults to <trigger>.sublime-snippet")),
		mcp.WithBoolean("overwrite", mcp.Description("Replace an existing file with the same name")),
	), s.makeSnippet)

	s.mcp.AddTool(mcp.NewTool("delete_snippet",
		mcp.WithDescription("Delete a snippet file using the configured delete policy (trash or permanent)."),
		mcp.WithString("file_name", mcp.Required(), mcp.Description("Snippet file name to delete")),
	), s.deleteSnippet)

	s.mcp.AddTool(mcp.NewTool("get_snippet_format",
		mcp.WithDescription("Returns the snippet file format and naming rules."),
	), s.getSnippetFormat)

	s.mcp.AddResource(
		mcp.NewResource("snipmaker://snippet-format", "Snippet Format",
			mcp.WithResourceDescription("The XML layout and naming convention of snippet files."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readSnippetFormatResource,
	)

	return s
}

// Serve runs the stdio transport over in and out until ctx is cancelled or
// in is closed. Transport errors are logged through logger.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer, logger *slog.Logger) error {
	stdio := server.NewStdioServer(s.mcp)
	if logger != nil {
		stdio.SetErrorLogger(slog.NewLogLogger(logger.Handler(), slog.LevelError))
	}
	err := stdio.Listen(ctx, in, out)
	if err != nil && (ctx.Err() != nil || errors.Is(err, io.EOF)) {
		return nil
	}
	return err
}

func (s *Server) listSnippets(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	items, err := s.svc.List(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if items == nil {
		items = []models.SnippetMetadata{}
	}
	out, _ := json.MarshalIndent(items, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) readSnippet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("file_name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	d, err := s.svc.Get(ctx, name)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return mcp.NewToolResultError(fmt.Sprintf("not found: %s", name)), nil
		}
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(d, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) makeSnippet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	body, err := req.RequireString("body")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	trigger, err := req.RequireString("trigger")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	draft := models.Draft{
		Body:        body,
		Trigger:     trigger,
		Description: req.GetString("description", ""),
		Scope:       req.GetString("scope", ""),
		FileName:    req.GetString("file_name", ""),
	}

	path, err := s.svc.Save(ctx, draft, req.GetBool("overwrite", false))
	switch {
	case errors.Is(err, apperr.ErrAlreadyExists):
		return mcp.NewToolResultError(fmt.Sprintf("%v; pass overwrite=true to replace it", err)), nil
	case err != nil:
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("created: %s", path)), nil
}

func (s *Server) deleteSnippet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("file_name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := s.svc.Remove(ctx, name); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(name + " deleted"), nil
}

func (s *Server) getSnippetFormat(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(SnippetFormatContract), nil
}

func (s *Server) readSnippetFormatResource(_ context.Context, _ mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "snipmaker://snippet-format",
			MIMEType: "text/markdown",
			Text:     SnippetFormatContract,
		},
	}, nil
}
