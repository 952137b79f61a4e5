package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proffy-go/proffy-api/internal/models"
)

func newClassRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func classRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "user_id", "subject", "cost", "name", "avatar", "whatsapp", "bio"})
}

func TestClassRepositorySearch(t *testing.T) {
	db, mock, cleanup := newClassRepoMock(t)
	defer cleanup()
	repo := NewClassRepository(db)

	rows := classRows().
		AddRow("class-1", "user-1", "Math", "60.00", "Ana", "https://cdn/ana.png", "5511999", "Teaches calculus")
	mock.ExpectQuery(regexp.QuoteMeta(searchQuery)).
		WithArgs("Math", 1, 600).
		WillReturnRows(rows)

	results, err := repo.Search(context.Background(), "Math", 1, 600)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "class-1", results[0].ID)
	assert.Equal(t, "Ana", results[0].Name)
	assert.True(t, results[0].Cost.Equal(decimal.RequireFromString("60.00")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClassRepositorySearchNoMatches(t *testing.T) {
	db, mock, cleanup := newClassRepoMock(t)
	defer cleanup()
	repo := NewClassRepository(db)

	// weekday 9 can never equal a stored 0-6 value; the query just returns
	// zero rows instead of erroring.
	mock.ExpectQuery(regexp.QuoteMeta(searchQuery)).
		WithArgs("Math", 9, 600).
		WillReturnRows(classRows())

	results, err := repo.Search(context.Background(), "Math", 9, 600)
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClassRepositoryRegisterUnitCommits(t *testing.T) {
	db, mock, cleanup := newClassRepoMock(t)
	defer cleanup()
	repo := NewClassRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), "Ana", "https://cdn/ana.png", "5511999", "Teaches calculus", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO classes").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), "Math", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO class_schedule").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), 1, 480, 720).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO class_schedule").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), 3, 840, 1080).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	user := models.User{Name: "Ana", Avatar: "https://cdn/ana.png", Whatsapp: "5511999", Bio: "Teaches calculus"}
	class := models.Class{Subject: "Math", Cost: decimal.NewFromInt(60)}

	err := repo.RunInTx(context.Background(), func(tx *sqlx.Tx) error {
		if err := repo.CreateUserTx(context.Background(), tx, &user); err != nil {
			return err
		}
		class.UserID = user.ID
		if err := repo.CreateClassTx(context.Background(), tx, &class); err != nil {
			return err
		}
		schedules := []models.ClassSchedule{
			{ClassID: class.ID, WeekDay: 1, FromMinutes: 480, ToMinutes: 720},
			{ClassID: class.ID, WeekDay: 3, FromMinutes: 840, ToMinutes: 1080},
		}
		return repo.CreateSchedulesTx(context.Background(), tx, schedules)
	})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, user.ID, class.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClassRepositoryRegisterUnitRollsBack(t *testing.T) {
	db, mock, cleanup := newClassRepoMock(t)
	defer cleanup()
	repo := NewClassRepository(db)

	boom := errors.New("dangling reference")

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO users").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO classes").
		WillReturnError(boom)
	mock.ExpectRollback()

	err := repo.RunInTx(context.Background(), func(tx *sqlx.Tx) error {
		user := models.User{Name: "Ana"}
		if err := repo.CreateUserTx(context.Background(), tx, &user); err != nil {
			return err
		}
		class := models.Class{UserID: user.ID, Subject: "Math", Cost: decimal.NewFromInt(60)}
		return repo.CreateClassTx(context.Background(), tx, &class)
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClassRepositoryTxHelpersRejectNilTx(t *testing.T) {
	db, _, cleanup := newClassRepoMock(t)
	defer cleanup()
	repo := NewClassRepository(db)

	require.Error(t, repo.CreateUserTx(context.Background(), nil, &models.User{}))
	require.Error(t, repo.CreateClassTx(context.Background(), nil, &models.Class{}))
	require.Error(t, repo.CreateSchedulesTx(context.Background(), nil, nil))
}

func TestScheduleCovers(t *testing.T) {
	window := models.ClassSchedule{WeekDay: 1, FromMinutes: 480, ToMinutes: 720}

	assert.True(t, window.Covers(480), "start boundary is inclusive")
	assert.True(t, window.Covers(600))
	assert.True(t, window.Covers(720), "end boundary is inclusive")
	assert.False(t, window.Covers(479))
	assert.False(t, window.Covers(721))
}
