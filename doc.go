/*
Package orderbot is a turn-based conversational bot for taking food orders,
built on a stack-based, resumable dialog engine.

Each conversation turn loads the persisted conversation state, runs the dialog
engine until it either completes or suspends at a prompt, and saves the state
back. Because the resumption point lives in the state and not in goroutine
stack frames, a conversation can be resumed by any process holding the store.

# Architecture

The core follows a Hexagonal layout. pkg/dialog holds the engine (waterfall
dialogs, the dialog stack, prompt suspension), pkg/bot holds the order-taking
dialogs and the turn router, and pkg/ports defines the store, catalog and
recognizer interfaces. Adapters under pkg/adapters provide in-memory and Redis
state stores, the static product catalog, and keyword or remote intent
recognizers. Transports (HTTP, MCP, interactive CLI) live under internal/ and
drive the bot through the same OnTurn entry point.

# Usage

	package main

	import (
		"context"
		"log"

		orderbot "github.com/weikanglim/OrderBot"
		"github.com/weikanglim/OrderBot/pkg/bot"
		"github.com/weikanglim/OrderBot/pkg/domain"
	)

	func main() {
		app, err := orderbot.New(nil)
		if err != nil {
			log.Fatal(err)
		}

		collector := &bot.ReplyCollector{}
		err = app.Bot.OnTurn(context.Background(), "conversation-1", domain.Activity{
			Type: domain.ActivityMessage,
			Text: "order",
		}, collector)
		if err != nil {
			log.Fatal(err)
		}
		for _, reply := range collector.Replies() {
			log.Println(reply.Text)
		}
	}
*/
package orderbot
