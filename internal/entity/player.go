package entity

import "github.com/google/uuid"

const BotName = "BOT"

type Player struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Figure Figure `json:"figure,omitempty"`
	IsBot  bool   `json:"is_bot,omitempty"`
}

func NewPlayer(name string) *Player {
	return &Player{
		ID:   uuid.NewString(),
		Name: name,
	}
}

func NewBotPlayer() *Player {
	return &Player{
		ID:    uuid.NewString(),
		Name:  BotName,
		IsBot: true,
	}
}
