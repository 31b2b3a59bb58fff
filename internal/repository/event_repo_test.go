package repository

import (
	"testing"

	"github.com/lifelinehq/lifeline-backend/internal/common"
	"github.com/lifelinehq/lifeline-backend/internal/domain"
	"github.com/lifelinehq/lifeline-backend/internal/migration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRepo(t *testing.T) EventRepository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, migration.Run(db))

	return NewEventRepository(db)
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestCreateAssignsID(t *testing.T) {
	repo := setupRepo(t)

	event := &domain.Event{Headline: "Born", TextContent: "The beginning", StartYear: 1990, EventType: "neutral", Emotion: "neutral"}
	require.NoError(t, repo.Create(event))
	assert.NotZero(t, event.ID)

	second := &domain.Event{Headline: "Next", TextContent: "x", StartYear: 1991, EventType: "neutral", Emotion: "neutral"}
	require.NoError(t, repo.Create(second))
	assert.Greater(t, second.ID, event.ID)
}

func TestGetAllChronologicalOrder(t *testing.T) {
	repo := setupRepo(t)

	// Inserted out of order, with partial-precision dates
	require.NoError(t, repo.Create(&domain.Event{Headline: "c", TextContent: "x", StartYear: 2020, StartMonth: intPtr(6), EventType: "neutral", Emotion: "neutral"}))
	require.NoError(t, repo.Create(&domain.Event{Headline: "a", TextContent: "x", StartYear: 1999, EventType: "neutral", Emotion: "neutral"}))
	require.NoError(t, repo.Create(&domain.Event{Headline: "b", TextContent: "x", StartYear: 2020, StartMonth: intPtr(1), StartDay: intPtr(15), EventType: "neutral", Emotion: "neutral"}))

	events, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, events, 3)

	assert.Equal(t, "a", events[0].Headline)
	assert.Equal(t, "b", events[1].Headline)
	assert.Equal(t, "c", events[2].Headline)
}

func TestGetAllEmpty(t *testing.T) {
	repo := setupRepo(t)

	events, err := repo.GetAll()
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestFindByID(t *testing.T) {
	repo := setupRepo(t)

	event := &domain.Event{
		Headline:    "Trip",
		TextContent: "Went away",
		StartYear:   2015,
		StartMonth:  intPtr(7),
		MediaURL:    strPtr("https://example.com/a.jpg"),
		GroupName:   strPtr("travel"),
		EventType:   "good",
		Emotion:     "joy",
	}
	require.NoError(t, repo.Create(event))

	found, err := repo.FindByID(event.ID)
	require.NoError(t, err)
	assert.Equal(t, "Trip", found.Headline)
	assert.Equal(t, 7, *found.StartMonth)
	assert.Nil(t, found.StartDay)
	assert.Equal(t, "travel", *found.GroupName)

	_, err = repo.FindByID(99999)
	assert.ErrorIs(t, err, common.ErrEventNotFound)
}

func TestUpdateFullOverwrite(t *testing.T) {
	repo := setupRepo(t)

	event := &domain.Event{
		Headline:     "Old",
		TextContent:  "old text",
		StartYear:    2000,
		StartMonth:   intPtr(5),
		StartDay:     intPtr(12),
		MediaURL:     strPtr("https://example.com/old.jpg"),
		MediaCaption: strPtr("old caption"),
		EventType:    "bad",
		Emotion:      "sadness",
	}
	require.NoError(t, repo.Create(event))

	// Overwrite without the optional fields: they must become NULL
	err := repo.Update(event.ID, &domain.Event{
		Headline:    "New",
		TextContent: "new text",
		StartYear:   2001,
		EventType:   "good",
		Emotion:     "joy",
	})
	require.NoError(t, err)

	found, err := repo.FindByID(event.ID)
	require.NoError(t, err)
	assert.Equal(t, "New", found.Headline)
	assert.Equal(t, 2001, found.StartYear)
	assert.Nil(t, found.StartMonth)
	assert.Nil(t, found.StartDay)
	assert.Nil(t, found.MediaURL)
	assert.Nil(t, found.MediaCaption)
	assert.Equal(t, "good", found.EventType)
	assert.Equal(t, "joy", found.Emotion)
}

func TestUpdateMissingID(t *testing.T) {
	repo := setupRepo(t)

	err := repo.Update(42, &domain.Event{Headline: "x", TextContent: "y", StartYear: 2000, EventType: "neutral", Emotion: "neutral"})
	assert.ErrorIs(t, err, common.ErrEventNotFound)
}

func TestDelete(t *testing.T) {
	repo := setupRepo(t)

	event := &domain.Event{Headline: "Gone", TextContent: "x", StartYear: 2010, EventType: "neutral", Emotion: "neutral"}
	require.NoError(t, repo.Create(event))

	require.NoError(t, repo.Delete(event.ID))

	_, err := repo.FindByID(event.ID)
	assert.ErrorIs(t, err, common.ErrEventNotFound)

	// Deleting again reports not found
	assert.ErrorIs(t, repo.Delete(event.ID), common.ErrEventNotFound)
}
