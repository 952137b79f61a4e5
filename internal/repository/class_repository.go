package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/proffy-go/proffy-api/internal/models"
)

// ClassRepository manages persistence for tutors, their classes and the
// weekly availability windows attached to them.
type ClassRepository struct {
	db *sqlx.DB
}

// NewClassRepository constructs a ClassRepository.
func NewClassRepository(db *sqlx.DB) *ClassRepository {
	return &ClassRepository{db: db}
}

// searchQuery is a semi-join: a class qualifies when at least one window
// covers the requested weekday and minute, and it appears exactly once no
// matter how many of its windows match.
const searchQuery = `SELECT c.id, c.user_id, c.subject, c.cost, u.name, u.avatar, u.whatsapp, u.bio
	FROM classes c
	JOIN users u ON u.id = c.user_id
	WHERE c.subject = $1
	  AND EXISTS (
		SELECT 1 FROM class_schedule s
		WHERE s.class_id = c.id
		  AND s.week_day = $2
		  AND s.from_minutes <= $3
		  AND s.to_minutes >= $3
	  )
	ORDER BY c.id`

// Search returns every class teaching subject with availability covering
// the given weekday and minute offset, joined with the owning tutor.
// Out-of-range weekdays simply match nothing.
func (r *ClassRepository) Search(ctx context.Context, subject string, weekDay, minute int) ([]models.ClassWithUser, error) {
	var rows []models.ClassWithUser
	if err := r.db.SelectContext(ctx, &rows, searchQuery, subject, weekDay, minute); err != nil {
		return nil, fmt.Errorf("search classes: %w", err)
	}
	return rows, nil
}

// RunInTx executes fn inside a transaction. Any error from fn or from the
// commit rolls back every write performed within the unit.
func (r *ClassRepository) RunInTx(ctx context.Context, fn func(tx *sqlx.Tx) error) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin class registration: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit class registration: %w", err)
	}
	return nil
}

// CreateUserTx inserts a tutor profile within an existing transaction and
// fills the generated ID.
func (r *ClassRepository) CreateUserTx(ctx context.Context, tx *sqlx.Tx, user *models.User) error {
	if tx == nil {
		return fmt.Errorf("nil transaction provided")
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	const query = `INSERT INTO users (id, name, avatar, whatsapp, bio, created_at)
		VALUES (:id, :name, :avatar, :whatsapp, :bio, :created_at)`
	if _, err := tx.NamedExecContext(ctx, query, user); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// CreateClassTx inserts a class within an existing transaction and fills
// the generated ID.
func (r *ClassRepository) CreateClassTx(ctx context.Context, tx *sqlx.Tx, class *models.Class) error {
	if tx == nil {
		return fmt.Errorf("nil transaction provided")
	}
	if class.ID == "" {
		class.ID = uuid.NewString()
	}

	const query = `INSERT INTO classes (id, user_id, subject, cost)
		VALUES (:id, :user_id, :subject, :cost)`
	if _, err := tx.NamedExecContext(ctx, query, class); err != nil {
		return fmt.Errorf("create class: %w", err)
	}
	return nil
}

// CreateSchedulesTx inserts all availability windows within an existing
// transaction.
func (r *ClassRepository) CreateSchedulesTx(ctx context.Context, tx *sqlx.Tx, schedules []models.ClassSchedule) error {
	if tx == nil {
		return fmt.Errorf("nil transaction provided")
	}

	const query = `INSERT INTO class_schedule (id, class_id, week_day, from_minutes, to_minutes)
		VALUES (:id, :class_id, :week_day, :from_minutes, :to_minutes)`
	for i := range schedules {
		window := schedules[i]
		if window.ID == "" {
			window.ID = uuid.NewString()
		}
		if _, err := tx.NamedExecContext(ctx, query, &window); err != nil {
			return fmt.Errorf("create class schedule: %w", err)
		}
		schedules[i] = window
	}
	return nil
}
