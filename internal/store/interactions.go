package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lazypower/octavia/internal/pet"
)

// DecayAction is the instruction label journalled for scheduled decay runs.
const DecayAction = "DECAY"

// Interaction is one journalled change to the pet.
type Interaction struct {
	ID           string `db:"id"`
	Instruction  string `db:"instruction"`
	Author       string `db:"author"`
	Issue        string `db:"issue"`
	HealthBefore int    `db:"health_before"`
	HungerBefore int    `db:"hunger_before"`
	MoodBefore   int    `db:"mood_before"`
	HealthAfter  int    `db:"health_after"`
	HungerAfter  int    `db:"hunger_after"`
	MoodAfter    int    `db:"mood_after"`
	Tier         string `db:"tier"`
	CreatedAt    int64  `db:"created_at"`
}

// NewInteraction builds a journal entry for the transition before -> after.
func NewInteraction(action, author, issue string, before, after pet.State) Interaction {
	return Interaction{
		Instruction:  action,
		Author:       author,
		Issue:        issue,
		HealthBefore: before.Health,
		HungerBefore: before.Hunger,
		MoodBefore:   before.Mood,
		HealthAfter:  after.Health,
		HungerAfter:  after.Hunger,
		MoodAfter:    after.Mood,
		Tier:         after.Tier().String(),
	}
}

// Created returns CreatedAt as a time.
func (i Interaction) Created() time.Time {
	return time.UnixMilli(i.CreatedAt)
}

// Record inserts an interaction, assigning its ID and timestamp when unset.
func (db *DB) Record(in *Interaction) error {
	if in.ID == "" {
		in.ID = uuid.NewString()
	}
	if in.CreatedAt == 0 {
		in.CreatedAt = time.Now().UnixMilli()
	}

	_, err := db.NamedExec(`
		INSERT INTO interactions (
			id, instruction, author, issue,
			health_before, hunger_before, mood_before,
			health_after, hunger_after, mood_after,
			tier, created_at
		) VALUES (
			:id, :instruction, :author, :issue,
			:health_before, :hunger_before, :mood_before,
			:health_after, :hunger_after, :mood_after,
			:tier, :created_at
		)
	`, in)
	if err != nil {
		return fmt.Errorf("insert interaction: %w", err)
	}
	return nil
}

// Recent returns the most recent interactions, newest first.
func (db *DB) Recent(limit int) ([]Interaction, error) {
	var out []Interaction
	err := db.Select(&out, `
		SELECT id, instruction, author, issue,
			health_before, hunger_before, mood_before,
			health_after, hunger_after, mood_after,
			tier, created_at
		FROM interactions ORDER BY created_at DESC, rowid DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent interactions: %w", err)
	}
	return out, nil
}

// Count returns the number of journalled interactions.
func (db *DB) Count() (int, error) {
	var n int
	if err := db.Get(&n, "SELECT COUNT(*) FROM interactions"); err != nil {
		return 0, fmt.Errorf("count interactions: %w", err)
	}
	return n, nil
}

// CountByAuthor returns how many interactions each author has made,
// excluding decay runs.
func (db *DB) CountByAuthor() (map[string]int, error) {
	var rows []struct {
		Author string `db:"author"`
		N      int    `db:"n"`
	}
	err := db.Select(&rows, `
		SELECT author, COUNT(*) AS n FROM interactions
		WHERE instruction != ? GROUP BY author
	`, DecayAction)
	if err != nil {
		return nil, fmt.Errorf("count by author: %w", err)
	}

	out := make(map[string]int, len(rows))
	for _, r := range rows {
		out[r.Author] = r.N
	}
	return out, nil
}
