package orderbot_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	orderbot "github.com/weikanglim/OrderBot"
	"github.com/weikanglim/OrderBot/internal/config"
	"github.com/weikanglim/OrderBot/pkg/bot"
	"github.com/weikanglim/OrderBot/pkg/domain"
)

func TestNew_Defaults(t *testing.T) {
	app, err := orderbot.New(nil)
	require.NoError(t, err)
	require.NotNil(t, app.Bot)
	require.NotNil(t, app.Store)
	assert.Len(t, app.Catalog.ListProducts(), 4)
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Store.Backend = "cassandra"

	_, err := orderbot.New(cfg)
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestNew_ConfiguredProducts(t *testing.T) {
	cfg := config.Default()
	cfg.Products = []config.ProductConfig{
		{Name: "Taco", Description: "Contains 250 calories per serving.", Price: 3.25},
	}

	app, err := orderbot.New(cfg)
	require.NoError(t, err)

	products := app.Catalog.ListProducts()
	require.Len(t, products, 1)
	assert.Equal(t, "Taco", products[0].Name)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", products[0].ID.String())
}

func TestApp_RunsTurns(t *testing.T) {
	app, err := orderbot.New(nil)
	require.NoError(t, err)

	collector := &bot.ReplyCollector{}
	err = app.Bot.OnTurn(context.Background(), "conv", domain.Activity{
		Type: domain.ActivityMessage,
		Text: "order",
	}, collector)
	require.NoError(t, err)

	replies := collector.Replies()
	require.Len(t, replies, 1)
	assert.Equal(t, "What would you like to order?", replies[0].Text)
}
