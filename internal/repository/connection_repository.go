package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/proffy-go/proffy-api/internal/models"
)

// ConnectionRepository stores student-to-tutor contact events.
type ConnectionRepository struct {
	db *sqlx.DB
}

// NewConnectionRepository constructs a ConnectionRepository.
func NewConnectionRepository(db *sqlx.DB) *ConnectionRepository {
	return &ConnectionRepository{db: db}
}

// Create records one contact event for the given tutor.
func (r *ConnectionRepository) Create(ctx context.Context, conn *models.Connection) error {
	if conn.ID == "" {
		conn.ID = uuid.NewString()
	}
	if conn.CreatedAt.IsZero() {
		conn.CreatedAt = time.Now().UTC()
	}

	const query = `INSERT INTO connections (id, user_id, created_at)
		VALUES (:id, :user_id, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, conn); err != nil {
		return fmt.Errorf("create connection: %w", err)
	}
	return nil
}

// Total counts all recorded contact events.
func (r *ConnectionRepository) Total(ctx context.Context) (int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM connections`); err != nil {
		return 0, fmt.Errorf("count connections: %w", err)
	}
	return total, nil
}
