package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/Oleksiy-Zhukov/studentsai/internal/logger"
	"github.com/Oleksiy-Zhukov/studentsai/internal/models"
	"github.com/Oleksiy-Zhukov/studentsai/internal/repository"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

type flashcardRepository struct {
	db *sql.DB
}

// NewFlashcardRepository creates a new FlashcardRepository implementation
func NewFlashcardRepository(db *sql.DB) repository.FlashcardRepository {
	return &flashcardRepository{db: db}
}

func (r *flashcardRepository) Insert(ctx context.Context, c models.Flashcard) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("flashcard_repo")
	log.Debug("inserting flashcard: user_id=%d", c.UserID)

	tags, err := encodeTags(c.Tags)
	if err != nil {
		return 0, err
	}
	res, err := r.db.ExecContext(ctx, `
INSERT INTO flashcards (user_id, question, answer, review_count, mastery_level, last_performance, tags)
VALUES (?, ?, ?, ?, ?, ?, ?)
`, c.UserID, c.Question, c.Answer, c.ReviewCount, c.MasteryLevel, c.LastPerformance, tags)
	if err != nil {
		log.Error("failed to insert flashcard: %v", err)
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		log.Error("failed to get flashcard id: %v", err)
		return 0, err
	}
	log.Debug("flashcard inserted: id=%d", id)
	return id, nil
}

func (r *flashcardRepository) Get(ctx context.Context, id, userID int64) (*models.Flashcard, error) {
	log := logger.FromContext(ctx).WithPrefix("flashcard_repo")
	log.Debug("fetching flashcard: id=%d, user_id=%d", id, userID)

	var c models.Flashcard
	var tags string
	err := r.db.QueryRowContext(ctx, `
SELECT id, user_id, question, answer, review_count, mastery_level, last_performance, tags, created_at
FROM flashcards
WHERE id = ? AND user_id = ?
`, id, userID).Scan(&c.ID, &c.UserID, &c.Question, &c.Answer,
		&c.ReviewCount, &c.MasteryLevel, &c.LastPerformance, &tags, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("flashcard not found: id=%d", id)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get flashcard: %v", err)
		return nil, err
	}
	if c.Tags, err = decodeTags(tags); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *flashcardRepository) ListByUser(ctx context.Context, userID int64) ([]models.Flashcard, error) {
	log := logger.FromContext(ctx).WithPrefix("flashcard_repo")
	log.Debug("listing flashcards: user_id=%d", userID)

	query, args, err := sqlBuilder.
		Select("id", "user_id", "question", "answer", "review_count", "mastery_level", "last_performance", "tags", "created_at").
		From("flashcards").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query flashcards: %v", err)
		return nil, err
	}
	defer rows.Close()

	var cards []models.Flashcard
	for rows.Next() {
		var c models.Flashcard
		var tags string
		if err := rows.Scan(&c.ID, &c.UserID, &c.Question, &c.Answer,
			&c.ReviewCount, &c.MasteryLevel, &c.LastPerformance, &tags, &c.CreatedAt); err != nil {
			log.Error("failed to scan flashcard row: %v", err)
			return nil, err
		}
		if c.Tags, err = decodeTags(tags); err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	log.Debug("found %d flashcards", len(cards))
	return cards, rows.Err()
}

func (r *flashcardRepository) UpdateMastery(ctx context.Context, id int64, m models.FlashcardMastery) error {
	log := logger.FromContext(ctx).WithPrefix("flashcard_repo")
	log.Debug("updating mastery: id=%d, level=%d, reviews=%d", id, m.MasteryLevel, m.ReviewCount)

	tags, err := encodeTags(m.Tags)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, `
UPDATE flashcards
SET review_count = ?, mastery_level = ?, last_performance = ?, tags = ?
WHERE id = ?
`, m.ReviewCount, m.MasteryLevel, m.LastPerformance, tags, id)
	if err != nil {
		log.Error("failed to update mastery: %v", err)
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("flashcard %d not found", id)
	}
	return nil
}

func (r *flashcardRepository) AddTag(ctx context.Context, id int64, tag string) error {
	log := logger.FromContext(ctx).WithPrefix("flashcard_repo")

	var raw string
	err := r.db.QueryRowContext(ctx, `SELECT tags FROM flashcards WHERE id = ?`, id).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("flashcard %d not found", id)
	}
	if err != nil {
		log.Error("failed to read tags: %v", err)
		return err
	}

	tags, err := decodeTags(raw)
	if err != nil {
		return err
	}
	for _, t := range tags {
		if t == tag {
			return nil
		}
	}
	encoded, err := encodeTags(append(tags, tag))
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, `UPDATE flashcards SET tags = ? WHERE id = ?`, encoded, id); err != nil {
		log.Error("failed to write tags: %v", err)
		return err
	}
	log.Debug("tag added: id=%d, tag=%s", id, tag)
	return nil
}

func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("encode tags: %w", err)
	}
	return string(b), nil
}

func decodeTags(raw string) ([]string, error) {
	if raw == "" {
		return nil, nil
	}
	var tags []string
	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		return nil, fmt.Errorf("decode tags: %w", err)
	}
	if len(tags) == 0 {
		return nil, nil
	}
	return tags, nil
}
