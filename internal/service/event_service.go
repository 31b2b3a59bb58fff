package service

import (
	"context"

	"github.com/lifelinehq/lifeline-backend/internal/common"
	"github.com/lifelinehq/lifeline-backend/internal/domain"
	"github.com/lifelinehq/lifeline-backend/internal/repository"
	pkgcache "github.com/lifelinehq/lifeline-backend/pkg/cache"
	"github.com/lifelinehq/lifeline-backend/pkg/logger"
)

// EventService defines the business logic for timeline events
type EventService interface {
	GetTimeline(ctx context.Context) (*domain.TimelineData, error)
	GetEvent(ctx context.Context, id int64) (*domain.Event, error)
	CreateEvent(ctx context.Context, req *domain.EventRequest) error
	UpdateEvent(ctx context.Context, id int64, req *domain.EventRequest) error
	DeleteEvent(ctx context.Context, id int64) error
}

type eventService struct {
	repo  repository.EventRepository
	cache pkgcache.Service
}

// NewEventService creates a new EventService. cache may be nil when Redis is
// not configured; every cache interaction degrades to a repository read.
func NewEventService(repo repository.EventRepository, cache pkgcache.Service) EventService {
	return &eventService{repo: repo, cache: cache}
}

// GetTimeline returns the display projection of every event, wrapped for the
// timeline widget. An empty store yields an empty list, not an error.
func (s *eventService) GetTimeline(ctx context.Context) (*domain.TimelineData, error) {
	if s.cache != nil {
		var cached domain.TimelineData
		if err := s.cache.Get(ctx, pkgcache.KeyTimeline, &cached); err == nil {
			return &cached, nil
		}
	}

	events, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}

	data := &domain.TimelineData{
		Events: make([]domain.TimelineEvent, len(events)),
	}
	for i, event := range events {
		data.Events[i] = event.ToTimelineEvent()
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, pkgcache.KeyTimeline, data, pkgcache.TTLTimeline); err != nil {
			logger.Warn("timeline cache set failed: %v", err)
		}
	}

	return data, nil
}

// GetEvent returns the raw stored row for one event
func (s *eventService) GetEvent(ctx context.Context, id int64) (*domain.Event, error) {
	return s.repo.FindByID(id)
}

// CreateEvent validates and inserts a new event
func (s *eventService) CreateEvent(ctx context.Context, req *domain.EventRequest) error {
	if err := validateRequired(req); err != nil {
		return err
	}

	if err := s.repo.Create(req.ToEvent()); err != nil {
		return err
	}

	s.invalidateTimeline(ctx)
	return nil
}

// UpdateEvent validates and fully overwrites the event matching id
func (s *eventService) UpdateEvent(ctx context.Context, id int64, req *domain.EventRequest) error {
	if err := validateRequired(req); err != nil {
		return err
	}

	if err := s.repo.Update(id, req.ToEvent()); err != nil {
		return err
	}

	s.invalidateTimeline(ctx)
	return nil
}

// DeleteEvent removes the event matching id
func (s *eventService) DeleteEvent(ctx context.Context, id int64) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}

	s.invalidateTimeline(ctx)
	return nil
}

// validateRequired enforces the required-field contract before any write.
// StartYear 0 counts as missing.
func validateRequired(req *domain.EventRequest) error {
	if req.Headline == "" || req.TextContent == "" || req.StartYear == 0 {
		return common.ErrMissingRequiredFields
	}
	return nil
}

func (s *eventService) invalidateTimeline(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, pkgcache.KeyTimeline); err != nil {
		logger.Warn("timeline cache invalidation failed: %v", err)
	}
}
