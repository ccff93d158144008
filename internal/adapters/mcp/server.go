// Package mcp exposes the bot as an MCP server, so agent hosts can drive
// conversations over stdio.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	orderbot "github.com/weikanglim/OrderBot"
	"github.com/weikanglim/OrderBot/pkg/bot"
	"github.com/weikanglim/OrderBot/pkg/domain"
	"github.com/weikanglim/OrderBot/pkg/ports"
)

// TurnResponse carries the replies one turn produced, in send order.
type TurnResponse struct {
	Replies []domain.Reply `json:"replies" jsonschema_description:"The bot's replies to the message"`
}

// Server wraps the bot and exposes it as an MCP server.
type Server struct {
	bot       *bot.Bot
	store     ports.StateStore
	catalog   ports.Catalog
	mcpServer *server.MCPServer
}

// NewServer creates the MCP server over the given bot and its collaborators.
func NewServer(b *bot.Bot, store ports.StateStore, catalog ports.Catalog) *Server {
	s := &Server{
		bot:       b,
		store:     store,
		catalog:   catalog,
		mcpServer: server.NewMCPServer("orderbot-mcp", strings.TrimSpace(orderbot.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	// TOOL: send_message
	sendTool := mcp.NewTool("send_message",
		mcp.WithDescription("Send a message to the order bot within a conversation and receive its replies. Conversation state persists across calls."),
		mcp.WithString("conversation_id", mcp.Required(), mcp.Description("Identifier of the conversation to continue")),
		mcp.WithString("text", mcp.Required(), mcp.Description("The user message text")),
		mcp.WithOutputSchema[TurnResponse](),
	)
	s.mcpServer.AddTool(sendTool, mcp.NewStructuredToolHandler(s.handleSendMessage))

	// TOOL: reset_conversation
	s.mcpServer.AddTool(mcp.NewTool("reset_conversation",
		mcp.WithDescription("Delete all stored state for a conversation, abandoning any in-progress order."),
		mcp.WithString("conversation_id", mcp.Required(), mcp.Description("Identifier of the conversation to reset")),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		conversationID, ok := request.GetArguments()["conversation_id"].(string)
		if !ok || conversationID == "" {
			return mcp.NewToolResultError("conversation_id is required"), nil
		}
		if err := s.store.Delete(ctx, conversationID); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("reset failed: %v", err)), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("conversation %s reset", conversationID)), nil
	})

	// TOOL: list_products
	s.mcpServer.AddTool(mcp.NewTool("list_products",
		mcp.WithDescription("List the products on the menu with prices and descriptions."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		jsonBytes, _ := json.Marshal(s.catalog.ListProducts())
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})
}

func (s *Server) handleSendMessage(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (TurnResponse, error) {
	conversationID, _ := args["conversation_id"].(string)
	text, _ := args["text"].(string)
	if conversationID == "" {
		return TurnResponse{}, fmt.Errorf("conversation_id is required")
	}

	collector := &bot.ReplyCollector{}
	err := s.bot.OnTurn(ctx, conversationID, domain.Activity{
		Type: domain.ActivityMessage,
		Text: text,
	}, collector)
	if err != nil {
		return TurnResponse{}, fmt.Errorf("turn failed: %w", err)
	}

	replies := collector.Replies()
	if replies == nil {
		replies = []domain.Reply{}
	}
	return TurnResponse{Replies: replies}, nil
}

func (s *Server) registerResources() {
	// EXPOSE: orderbot://products
	s.mcpServer.AddResource(mcp.NewResource("orderbot://products", "Product Catalog",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, err := json.Marshal(s.catalog.ListProducts())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal products: %w", err)
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "orderbot://products",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
