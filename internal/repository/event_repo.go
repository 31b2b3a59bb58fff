package repository

import (
	"errors"

	"github.com/lifelinehq/lifeline-backend/internal/common"
	"github.com/lifelinehq/lifeline-backend/internal/domain"
	"gorm.io/gorm"
)

// eventUpdateColumns are the mutable columns overwritten on every update.
// An update is a full overwrite: absent optional fields become NULL.
var eventUpdateColumns = []string{
	"headline", "text_content", "start_year", "start_month", "start_day",
	"media_url", "media_caption", "group_name", "event_type", "emotion",
}

// EventRepository defines the interface for event data access
type EventRepository interface {
	GetAll() ([]*domain.Event, error)
	FindByID(id int64) (*domain.Event, error)
	Create(event *domain.Event) error
	Update(id int64, event *domain.Event) error
	Delete(id int64) error
}

// eventRepository implements EventRepository with GORM
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

// GetAll retrieves all events in chronological order. Absent month/day parts
// sort as 1 so partial-precision dates interleave sanely; id breaks ties for
// same-day events.
func (r *eventRepository) GetAll() ([]*domain.Event, error) {
	var events []*domain.Event

	err := r.db.
		Order("start_year, COALESCE(start_month, 1), COALESCE(start_day, 1), id").
		Find(&events).Error

	if err != nil {
		return nil, err
	}

	return events, nil
}

// FindByID finds an event by ID
func (r *eventRepository) FindByID(id int64) (*domain.Event, error) {
	var event domain.Event

	err := r.db.
		Where("id = ?", id).
		First(&event).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrEventNotFound
		}
		return nil, err
	}

	return &event, nil
}

// Create inserts a new event; the assigned id is written back to event.ID
func (r *eventRepository) Create(event *domain.Event) error {
	return r.db.Create(event).Error
}

// Update overwrites all mutable fields of the event matching id
func (r *eventRepository) Update(id int64, event *domain.Event) error {
	result := r.db.Model(&domain.Event{}).
		Where("id = ?", id).
		Select(eventUpdateColumns).
		Updates(event)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return common.ErrEventNotFound
	}

	return nil
}

// Delete removes the event matching id
func (r *eventRepository) Delete(id int64) error {
	result := r.db.Delete(&domain.Event{}, id)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return common.ErrEventNotFound
	}

	return nil
}
