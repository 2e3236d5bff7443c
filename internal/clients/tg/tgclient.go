package tg

import (
	"context"
	"time"

	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/logger"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	"max.ks1230/expense-tracker/internal/model/messages"
)

const (
	defaultUpdateOffset = 0
	pollTimeoutSeconds  = 60
	handleTimeout       = 5 * time.Second
)

type tokenGetter interface {
	Token() string
}

type Client struct {
	client *tgbotapi.BotAPI
}

func New(tokenGetter tokenGetter) (*Client, error) {
	client, err := tgbotapi.NewBotAPI(tokenGetter.Token())
	if err != nil {
		return nil, errors.Wrap(err, "cannot NewBotApi")
	}
	return &Client{client}, nil
}

func (c *Client) SendMessage(text string, userID int64) error {
	_, err := c.client.Send(tgbotapi.NewMessage(userID, text))
	if err != nil {
		return errors.Wrap(err, "client.Send")
	}
	return nil
}

func (c *Client) ListenUpdates(ctx context.Context, msgService *messages.Service) {
	u := tgbotapi.NewUpdate(defaultUpdateOffset)
	u.Timeout = pollTimeoutSeconds

	updates := c.client.GetUpdatesChan(u)

	logger.Info("Start listening for expense commands")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Stop listening for expense commands")
			return
		case update := <-updates:
			c.listenOnce(ctx, update, msgService)
		}
	}
}

func (c *Client) listenOnce(ctx context.Context, update tgbotapi.Update, msgService *messages.Service) {
	if update.Message == nil {
		return
	}

	logger.Info("message received",
		zap.String("user", update.Message.From.UserName),
		zap.String("command", update.Message.Command()))

	ctx, cancel := context.WithTimeout(ctx, handleTimeout)
	defer cancel()

	err := msgService.HandleIncomingMessage(ctx, messages.Message{
		Text:   update.Message.Text,
		UserID: update.Message.From.ID,
	})
	if err != nil {
		logger.Error("error processing message:", zap.Error(err))
	}
}
