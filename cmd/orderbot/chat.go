package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	orderbot "github.com/weikanglim/OrderBot"
	"github.com/weikanglim/OrderBot/internal/config"
	"github.com/weikanglim/OrderBot/internal/presentation/tui"
	"github.com/weikanglim/OrderBot/pkg/bot"
	"github.com/weikanglim/OrderBot/pkg/domain"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session",
	Long:  `Starts an interactive ordering session on the terminal. Type 'quit' to leave; the conversation state survives in the configured store, so a session can be resumed with --conversation.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if redisAddr, _ := cmd.Flags().GetString("redis"); redisAddr != "" {
			cfg.Store.Backend = config.StoreRedis
			cfg.Store.Address = redisAddr
		}

		app, err := orderbot.New(cfg, orderbot.WithLogger(createLogger(cmd)))
		if err != nil {
			return err
		}

		conversationID, _ := cmd.Flags().GetString("conversation")
		resuming := conversationID != ""
		if !resuming {
			conversationID = uuid.NewString()
		}

		interactive := term.IsTerminal(int(os.Stdout.Fd()))
		render := func(s string) string { return s }
		if interactive {
			tui.PrintBanner()
			markdown := tui.NewRenderer()
			render = func(s string) string {
				out, err := markdown(s)
				if err != nil {
					return s
				}
				return strings.TrimRight(out, "\n")
			}
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		// A fresh session starts with the membership event so the user gets
		// the welcome message. Resumed sessions pick up where they left off.
		if !resuming {
			if err := runChatTurn(ctx, app, conversationID, domain.Activity{
				Type:      domain.ActivityConversationUpdate,
				Recipient: "orderbot",
				MembersAdded: []domain.Member{
					{ID: "orderbot", Name: "OrderBot"},
					{ID: "user", Name: "there"},
				},
			}, render); err != nil {
				return err
			}
		}

		fmt.Printf("Conversation: %s\n\n", conversationID)

		reader := bufio.NewReader(os.Stdin)
		for {
			fmt.Print("> ")
			line, err := reader.ReadString('\n')
			if err != nil {
				fmt.Println()
				return nil
			}
			text := strings.TrimSpace(line)
			if text == "" {
				continue
			}
			if text == "q" || text == "quit" || text == "exit" {
				fmt.Println("Bye!")
				return nil
			}

			if err := runChatTurn(ctx, app, conversationID, domain.Activity{
				Type: domain.ActivityMessage,
				Text: text,
			}, render); err != nil {
				return err
			}
		}
	},
}

func runChatTurn(ctx context.Context, app *orderbot.App, conversationID string, activity domain.Activity, render func(string) string) error {
	collector := &bot.ReplyCollector{}
	if err := app.Bot.OnTurn(ctx, conversationID, activity, collector); err != nil {
		return err
	}
	for _, reply := range collector.Replies() {
		fmt.Println(render(formatReply(reply)))
	}
	return nil
}

// formatReply renders a reply as markdown: the text, then the suggested
// actions as a bullet list of quick answers.
func formatReply(reply domain.Reply) string {
	var sb strings.Builder
	sb.WriteString(reply.Text)
	for _, action := range reply.SuggestedActions {
		sb.WriteString("\n- ")
		sb.WriteString(action.Title)
	}
	return sb.String()
}

func init() {
	rootCmd.AddCommand(chatCmd)

	chatCmd.Flags().String("conversation", "", "Resume an existing conversation by ID")
	chatCmd.Flags().String("redis", "", "Redis address for conversation state (overrides config)")
}
