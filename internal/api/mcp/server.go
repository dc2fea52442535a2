package mcp

import (
	"context"

	"github.com/drujensen/n8n-mcp/internal/domain/entities"
	"github.com/drujensen/n8n-mcp/internal/impl/tools"

	"github.com/goccy/go-json"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

// Server exposes the tool registry over the Model Context Protocol.
// Discovery returns the catalog's declared schemas; calls are routed
// through the registry so the error-to-text contract holds for every
// tool.
type Server struct {
	mcpServer *server.MCPServer
	registry  *tools.Registry
	logger    *zap.Logger
}

func NewServer(name, version string, registry *tools.Registry, logger *zap.Logger) *Server {
	s := &Server{
		mcpServer: server.NewMCPServer(name, version),
		registry:  registry,
		logger:    logger,
	}
	for _, tool := range registry.ListTools() {
		s.mcpServer.AddTool(describeTool(tool), s.handleCall(tool.Name()))
	}
	return s
}

// ServeStdio blocks serving the MCP protocol over stdin/stdout until
// the client disconnects. All logging must go to stderr; stdout carries
// the protocol stream.
func (s *Server) ServeStdio() error {
	s.logger.Debug("Starting MCP stdio transport")
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) handleCall(name string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		arguments, err := json.Marshal(request.GetArguments())
		if err != nil {
			arguments = []byte("{}")
		}
		result := s.registry.Dispatch(ctx, name, string(arguments))
		return mcp.NewToolResultText(result), nil
	}
}

// describeTool converts a catalog entry's parameter declarations into
// the JSON-schema shape MCP discovery expects.
func describeTool(tool entities.Tool) mcp.Tool {
	options := []mcp.ToolOption{mcp.WithDescription(tool.Description())}
	for _, param := range tool.Parameters() {
		options = append(options, describeParameter(param))
	}
	return mcp.NewTool(tool.Name(), options...)
}

func describeParameter(param entities.Parameter) mcp.ToolOption {
	props := []mcp.PropertyOption{mcp.Description(param.Description)}
	if param.Required {
		props = append(props, mcp.Required())
	}
	if len(param.Enum) > 0 {
		props = append(props, mcp.Enum(param.Enum...))
	}

	switch param.Type {
	case "boolean":
		return mcp.WithBoolean(param.Name, props...)
	case "number":
		return mcp.WithNumber(param.Name, props...)
	case "object":
		return mcp.WithObject(param.Name, props...)
	case "array":
		if len(param.Items) > 0 {
			props = append(props, mcp.Items(map[string]any{"type": param.Items[0].Type}))
		}
		return mcp.WithArray(param.Name, props...)
	default:
		return mcp.WithString(param.Name, props...)
	}
}
