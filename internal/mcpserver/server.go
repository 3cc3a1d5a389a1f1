// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes the Dagaz compiler for LLM integration via stdio
// transport, so AI authoring surfaces can compile compositions and
// inspect the capsule catalog.
package mcpserver

import (
	"context"
	"encoding/json"
	"sort"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/dagaz/internal/models"
	"github.com/starford/dagaz/internal/orchestrator"
	"github.com/starford/dagaz/internal/project"
	"github.com/starford/dagaz/internal/registry"
)

// Server wraps the MCP server with Dagaz tools.
type Server struct {
	mcp  *server.MCPServer
	reg  *registry.Registry
	orch *orchestrator.Orchestrator
}

// New creates a new MCP server with all Dagaz tools registered.
func New(reg *registry.Registry, orch *orchestrator.Orchestrator) *Server {
	s := &Server{reg: reg, orch: orch}

	s.mcp = server.NewMCPServer(
		"Dagaz",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("compile_composition",
		mcp.WithDescription("Compile an app composition into source artifacts for the requested platforms. "+
			"The composition MUST follow the canonical composition format. Read the contract first via "+
			"the get_composition_contract tool or the dagaz://composition-format resource."),
		mcp.WithString("composition", mcp.Required(), mcp.Description("Composition as a JSON document")),
		mcp.WithString("platforms", mcp.Description("Comma-separated platform list (defaults to the composition's targets)")),
	), s.compileComposition)

	s.mcp.AddTool(mcp.NewTool("list_capsules",
		mcp.WithDescription("List every capsule available in the catalog with its supported platforms."),
	), s.listCapsules)

	s.mcp.AddTool(mcp.NewTool("list_platforms",
		mcp.WithDescription("List the platforms a composition can be compiled for."),
	), s.listPlatforms)

	s.mcp.AddTool(mcp.NewTool("get_composition_contract",
		mcp.WithDescription("Returns the canonical composition format contract. "+
			"Call this before building a composition for compile_composition."),
	), s.getCompositionContract)

	// Resource: composition format contract.
	s.mcp.AddResource(
		mcp.NewResource("dagaz://composition-format", "Composition Format Contract",
			mcp.WithResourceDescription("Canonical JSON composition format accepted by compile_composition."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readContractResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) compileComposition(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := req.RequireString("composition")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	comp, err := project.Parse([]byte(raw))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var platforms []models.Platform
	if p, argErr := req.RequireString("platforms"); argErr == nil && p != "" {
		for _, part := range strings.Split(p, ",") {
			platforms = append(platforms, models.Platform(strings.TrimSpace(part)))
		}
	}

	results := s.orch.CompileAll(ctx, comp, platforms)
	out, _ := json.MarshalIndent(results, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

type capsuleInfo struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Category  string            `json:"category,omitempty"`
	Platforms []models.Platform `json:"platforms"`
}

func (s *Server) listCapsules(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var infos []capsuleInfo
	for _, id := range s.reg.IDs() {
		def, ok := s.reg.Lookup(id)
		if !ok {
			continue
		}
		platforms := make([]models.Platform, 0, len(def.Templates))
		for p := range def.Templates {
			platforms = append(platforms, p)
		}
		sort.Slice(platforms, func(i, j int) bool { return platforms[i] < platforms[j] })
		infos = append(infos, capsuleInfo{
			ID:        def.ID,
			Name:      def.Name,
			Category:  def.Category,
			Platforms: platforms,
		})
	}
	out, _ := json.MarshalIndent(infos, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) listPlatforms(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var parts []string
	for _, p := range s.orch.AvailablePlatforms() {
		parts = append(parts, string(p))
	}
	if len(parts) == 0 {
		return mcp.NewToolResultText("no platforms registered"), nil
	}
	return mcp.NewToolResultText(strings.Join(parts, "\n")), nil
}

func (s *Server) getCompositionContract(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(CompositionFormatContract), nil
}

func (s *Server) readContractResource(_ context.Context, _ mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "dagaz://composition-format",
			MIMEType: "text/markdown",
			Text:     CompositionFormatContract,
		},
	}, nil
}
