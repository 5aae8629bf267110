package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-nxn/internal/entity"
)

// RedisJournal keeps the text journal of a game in a redis list and the
// structured records in a second list next to it.
type RedisJournal struct {
	client *redis.Client
}

func NewRedisJournal(client *redis.Client) *RedisJournal {
	return &RedisJournal{
		client: client,
	}
}

func journalKey(gameID string) string {
	return "game:" + gameID + ":journal"
}

func movesKey(gameID string) string {
	return "game:" + gameID + ":moves"
}

// Start drops whatever was stored under the game id and writes the header.
func (that *RedisJournal) Start(ctx context.Context, gameID string, size int) error {
	if err := that.client.Del(ctx, journalKey(gameID), movesKey(gameID)).Err(); err != nil {
		return fmt.Errorf("failed to reset journal: %w", err)
	}

	if err := that.client.RPush(ctx, journalKey(gameID), toArgs(HeaderLines(size))...).Err(); err != nil {
		return fmt.Errorf("failed to write journal header: %w", err)
	}

	return nil
}

func (that *RedisJournal) Record(ctx context.Context, record entity.MoveRecord) error {
	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("could not marshal record: %w", err)
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, journalKey(record.GameID), toArgs(RecordLines(record))...)
		pipe.RPush(ctx, movesKey(record.GameID), recordJSON)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to append record: %w", err)
	}

	return nil
}

func (that *RedisJournal) Location(gameID string) string {
	return "redis key " + journalKey(gameID)
}

// Lines returns the text journal of a game. The game loop never reads a
// journal back; this is for inspecting a finished game from tooling.
func (that *RedisJournal) Lines(ctx context.Context, gameID string) ([]string, error) {
	lines, err := that.client.LRange(ctx, journalKey(gameID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read journal: %w", err)
	}

	return lines, nil
}

// Moves returns the structured records of a game in order, for the same
// inspection use as Lines.
func (that *RedisJournal) Moves(ctx context.Context, gameID string) ([]entity.MoveRecord, error) {
	raw, err := that.client.LRange(ctx, movesKey(gameID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read moves: %w", err)
	}

	records := make([]entity.MoveRecord, 0, len(raw))
	for _, item := range raw {
		var record entity.MoveRecord
		if err = json.Unmarshal([]byte(item), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal record: %w", err)
		}
		records = append(records, record)
	}

	return records, nil
}

func toArgs(lines []string) []interface{} {
	args := make([]interface{}, len(lines))
	for i, line := range lines {
		args[i] = line
	}

	return args
}
