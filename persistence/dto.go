package persistence

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrCorruptRecord is returned when a stored history entry cannot be decoded
var ErrCorruptRecord = errors.New("corrupt score record")

// Record is one finished game
type Record struct {
	ID       uuid.UUID
	Score    int
	Length   int
	Duration time.Duration
	EndedAt  time.Time
}

// FileDTO is the serializable high score file
type FileDTO struct {
	Scores  map[string]int `toml:"scores"`
	History []RecordDTO    `toml:"history"`
}

// RecordDTO is a serializable Record
// Duration is kept in milliseconds so the file stays readable
type RecordDTO struct {
	ID         string    `toml:"id"`
	Score      int       `toml:"score"`
	Length     int       `toml:"length"`
	DurationMs int64     `toml:"duration_ms"`
	EndedAt    time.Time `toml:"ended_at"`
}

// FromRecord converts a record to its DTO
func FromRecord(r Record) RecordDTO {
	return RecordDTO{
		ID:         r.ID.String(),
		Score:      r.Score,
		Length:     r.Length,
		DurationMs: r.Duration.Milliseconds(),
		EndedAt:    r.EndedAt.UTC(),
	}
}

// ToRecord validates and converts the DTO
func (dto RecordDTO) ToRecord() (Record, error) {
	id, err := uuid.Parse(dto.ID)
	if err != nil {
		return Record{}, fmt.Errorf("%w: id %q: %v", ErrCorruptRecord, dto.ID, err)
	}
	if dto.Score < 0 || dto.Length < 1 || dto.DurationMs < 0 {
		return Record{}, fmt.Errorf("%w: %s: score=%d length=%d duration_ms=%d",
			ErrCorruptRecord, dto.ID, dto.Score, dto.Length, dto.DurationMs)
	}

	return Record{
		ID:       id,
		Score:    dto.Score,
		Length:   dto.Length,
		Duration: time.Duration(dto.DurationMs) * time.Millisecond,
		EndedAt:  dto.EndedAt,
	}, nil
}
