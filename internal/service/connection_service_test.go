package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/proffy-go/proffy-api/internal/models"
	appErrors "github.com/proffy-go/proffy-api/pkg/errors"
)

type mockConnectionRepo struct {
	created  []models.Connection
	total    int
	totalErr error
}

func (m *mockConnectionRepo) Create(ctx context.Context, conn *models.Connection) error {
	conn.ID = "conn-1"
	m.created = append(m.created, *conn)
	return nil
}

func (m *mockConnectionRepo) Total(ctx context.Context) (int, error) {
	return m.total, m.totalErr
}

func TestConnectionServiceTotal(t *testing.T) {
	repo := &mockConnectionRepo{total: 7}
	svc := NewConnectionService(repo, zap.NewNop())

	total, err := svc.Total(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, total)
}

func TestConnectionServiceTotalError(t *testing.T) {
	repo := &mockConnectionRepo{totalErr: errors.New("db down")}
	svc := NewConnectionService(repo, zap.NewNop())

	_, err := svc.Total(context.Background())
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrInternal.Code))
}

func TestConnectionServiceRecord(t *testing.T) {
	repo := &mockConnectionRepo{}
	svc := NewConnectionService(repo, zap.NewNop())

	require.NoError(t, svc.Record(context.Background(), "user-1"))
	require.Len(t, repo.created, 1)
	assert.Equal(t, "user-1", repo.created[0].UserID)

	err := svc.Record(context.Background(), "  ")
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation.Code))
	assert.Len(t, repo.created, 1)
}
