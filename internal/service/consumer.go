package service

import (
	"context"
	"encoding/json"
	"log"

	"food-explorer/internal/domain"

	"github.com/segmentio/kafka-go"
)

type EventReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

// Consumer drives live refresh: every dish vote event updates the category
// leaderboard and nudges all subscribed searches to re-run.
type Consumer struct {
	Reader EventReader
	Cache  LeaderboardCache
	Hub    *Hub
}

func NewConsumer(reader EventReader, cache LeaderboardCache, hub *Hub) *Consumer {
	return &Consumer{
		Reader: reader,
		Cache:  cache,
		Hub:    hub,
	}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting live refresh consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("Error reading message: %v", err)
			continue
		}

		var msg domain.KafkaMessage
		if err := json.Unmarshal(message.Value, &msg); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		if msg.Type == "dish_voted" {
			c.ProcessVote(ctx, msg)
		}
	}
}

func (c *Consumer) ProcessVote(ctx context.Context, msg domain.KafkaMessage) {
	if msg.Type != "dish_voted" {
		return
	}
	log.Printf("Processing vote: DishID=%d, Category=%s, Score=%d",
		msg.DishID, msg.Category, msg.Upvotes-msg.Downvotes)

	if c.Cache != nil {
		if err := c.Cache.RecordScore(ctx, msg.Category, msg.DishID, msg.Upvotes-msg.Downvotes); err != nil {
			log.Printf("Error updating leaderboard: %v", err)
		}
	}

	if c.Hub != nil {
		c.Hub.Broadcast()
	}
}
