package entity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

const statsSeparator = "|"

// Stats - counters persisted across runs.
type Stats struct {
	TotalGames int `json:"total_games"`
	BotGames   int `json:"bot_games"`
}

// ParseStats - decodes a `<total_games>|<bot_games>` record.
func ParseStats(raw string) (Stats, error) {
	line, _, _ := strings.Cut(raw, "\n")
	line = strings.TrimSpace(line)

	parts := strings.Split(line, statsSeparator)
	if len(parts) != 2 {
		return Stats{}, fmt.Errorf("%w: expected 2 fields, got %d", apperror.ErrMalformedStats, len(parts))
	}

	values := make([]int, len(parts))
	for i, part := range parts {
		value, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return Stats{}, fmt.Errorf("%w: %w", apperror.ErrMalformedStats, err)
		}
		if value < 0 {
			return Stats{}, fmt.Errorf("%w: negative counter %d", apperror.ErrMalformedStats, value)
		}
		values[i] = value
	}

	return Stats{TotalGames: values[0], BotGames: values[1]}, nil
}

func (that Stats) String() string {
	return strconv.Itoa(that.TotalGames) + statsSeparator + strconv.Itoa(that.BotGames)
}

func (that Stats) Add(deltaTotal, deltaBot int) Stats {
	return Stats{
		TotalGames: that.TotalGames + deltaTotal,
		BotGames:   that.BotGames + deltaBot,
	}
}
