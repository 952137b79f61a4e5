package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/proffy-go/proffy-api/internal/models"
	appErrors "github.com/proffy-go/proffy-api/pkg/errors"
	"github.com/proffy-go/proffy-api/pkg/timeconv"
)

const searchCacheKeyPrefix = "search:classes"

type classRepository interface {
	Search(ctx context.Context, subject string, weekDay, minute int) ([]models.ClassWithUser, error)
	RunInTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error
	CreateUserTx(ctx context.Context, tx *sqlx.Tx, user *models.User) error
	CreateClassTx(ctx context.Context, tx *sqlx.Tx, class *models.Class) error
	CreateSchedulesTx(ctx context.Context, tx *sqlx.Tx, schedules []models.ClassSchedule) error
}

type searchCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

// SearchClassesQuery carries the raw search filters as received from the
// transport layer.
type SearchClassesQuery struct {
	Subject string
	WeekDay string
	Time    string
}

// ScheduleItemRequest is one raw availability window in a registration
// payload, times still in "HH:MM" form.
type ScheduleItemRequest struct {
	WeekDay int    `json:"week_day" validate:"min=0,max=6"`
	From    string `json:"from" validate:"required"`
	To      string `json:"to" validate:"required"`
}

// RegisterClassRequest is the registration payload: a tutor profile plus the
// first class it teaches and that class's weekly windows.
type RegisterClassRequest struct {
	Name     string                `json:"name" validate:"required"`
	Avatar   string                `json:"avatar" validate:"omitempty,url"`
	Whatsapp string                `json:"whatsapp" validate:"required"`
	Bio      string                `json:"bio"`
	Subject  string                `json:"subject" validate:"required"`
	Cost     decimal.Decimal       `json:"cost"`
	Schedule []ScheduleItemRequest `json:"schedule" validate:"required,min=1,dive"`
}

// ClassService orchestrates class search and registration.
type ClassService struct {
	repo      classRepository
	cache     searchCache
	cacheTTL  time.Duration
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewClassService constructs a ClassService. The cache and metrics may be
// nil; the service then runs uncached and uninstrumented.
func NewClassService(repo classRepository, cache searchCache, cacheTTL time.Duration, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger) *ClassService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClassService{repo: repo, cache: cache, cacheTTL: cacheTTL, metrics: metrics, validator: validate, logger: logger}
}

// Search returns every class teaching the requested subject with a window
// covering the requested weekday and time. All three filters must be
// present; beyond presence the weekday is deliberately not range-checked,
// so out-of-range values yield an empty result rather than an error.
func (s *ClassService) Search(ctx context.Context, q SearchClassesQuery) ([]models.ClassWithUser, error) {
	if strings.TrimSpace(q.Subject) == "" || strings.TrimSpace(q.WeekDay) == "" || strings.TrimSpace(q.Time) == "" {
		return nil, appErrors.ErrMissingFilter
	}

	minute, err := timeconv.ToMinutes(q.Time)
	if err != nil {
		return nil, err
	}

	weekDay, err := strconv.Atoi(strings.TrimSpace(q.WeekDay))
	if err != nil {
		// A non-numeric weekday can never equal a stored 0-6 value, same
		// outcome as any other unmatched filter: zero rows.
		weekDay = -1
	}

	key := fmt.Sprintf("%s:%s:%d:%d", searchCacheKeyPrefix, q.Subject, weekDay, minute)
	if s.cache != nil {
		var cached []models.ClassWithUser
		if err := s.cache.Get(ctx, key, &cached); err == nil {
			s.metrics.RecordCacheOperation(true)
			return cached, nil
		} else if !appErrors.Is(err, appErrors.ErrCacheMiss.Code) {
			s.logger.Warn("search cache read failed", zap.String("key", key), zap.Error(err))
		}
		s.metrics.RecordCacheOperation(false)
	}

	start := time.Now()
	results, err := s.repo.Search(ctx, q.Subject, weekDay, minute)
	s.metrics.ObserveDBQuery("search_classes", time.Since(start))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to search classes")
	}
	if results == nil {
		results = []models.ClassWithUser{}
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, results, s.cacheTTL); err != nil {
			s.logger.Warn("search cache write failed", zap.String("key", key), zap.Error(err))
		}
	}

	return results, nil
}

// Register persists a tutor profile, its class and all availability windows
// as one atomic unit. Any failure inside the unit rolls everything back and
// surfaces as the single generic registration error; the cause is logged
// but never leaked to the caller.
func (s *ClassService) Register(ctx context.Context, req RegisterClassRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid class payload")
	}

	err := s.repo.RunInTx(ctx, func(tx *sqlx.Tx) error {
		user := models.User{
			Name:     strings.TrimSpace(req.Name),
			Avatar:   strings.TrimSpace(req.Avatar),
			Whatsapp: strings.TrimSpace(req.Whatsapp),
			Bio:      strings.TrimSpace(req.Bio),
		}
		if err := s.repo.CreateUserTx(ctx, tx, &user); err != nil {
			return err
		}

		class := models.Class{
			UserID:  user.ID,
			Subject: strings.TrimSpace(req.Subject),
			Cost:    req.Cost,
		}
		if err := s.repo.CreateClassTx(ctx, tx, &class); err != nil {
			return err
		}

		schedules := make([]models.ClassSchedule, 0, len(req.Schedule))
		for _, item := range req.Schedule {
			window, err := buildScheduleWindow(class.ID, item)
			if err != nil {
				return err
			}
			schedules = append(schedules, window)
		}

		return s.repo.CreateSchedulesTx(ctx, tx, schedules)
	})
	if err != nil {
		s.logger.Error("class registration failed", zap.String("subject", req.Subject), zap.Error(err))
		return appErrors.Wrap(err, appErrors.ErrRegistration.Code, appErrors.ErrRegistration.Status, appErrors.ErrRegistration.Message)
	}

	if s.cache != nil {
		if err := s.cache.DeleteByPattern(ctx, searchCacheKeyPrefix+":*"); err != nil {
			s.logger.Warn("search cache invalidation failed", zap.Error(err))
		}
	}

	return nil
}

func buildScheduleWindow(classID string, item ScheduleItemRequest) (models.ClassSchedule, error) {
	from, err := timeconv.ToMinutes(item.From)
	if err != nil {
		return models.ClassSchedule{}, err
	}
	to, err := timeconv.ToMinutes(item.To)
	if err != nil {
		return models.ClassSchedule{}, err
	}
	if from > to {
		return models.ClassSchedule{}, fmt.Errorf("schedule window %s-%s ends before it starts", item.From, item.To)
	}

	return models.ClassSchedule{
		ClassID:     classID,
		WeekDay:     item.WeekDay,
		FromMinutes: from,
		ToMinutes:   to,
	}, nil
}
