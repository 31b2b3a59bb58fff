package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// EventType classifies an event for color coding on the timeline
type EventType string

const (
	EventTypeGood    EventType = "good"
	EventTypeBad     EventType = "bad"
	EventTypeNeutral EventType = "neutral"
)

// Event represents a single life event on the personal timeline.
// Table: events
type Event struct {
	ID           int64   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Headline     string  `gorm:"column:headline;not null" json:"headline"`
	TextContent  string  `gorm:"column:text_content;not null" json:"text_content"`
	StartYear    int     `gorm:"column:start_year;not null" json:"start_year"`
	StartMonth   *int    `gorm:"column:start_month" json:"start_month"`
	StartDay     *int    `gorm:"column:start_day" json:"start_day"`
	MediaURL     *string `gorm:"column:media_url" json:"media_url"`
	MediaCaption *string `gorm:"column:media_caption" json:"media_caption"`
	GroupName    *string `gorm:"column:group_name" json:"group_name"`
	EventType    string  `gorm:"column:event_type;default:neutral" json:"event_type"`
	Emotion      string  `gorm:"column:emotion;default:neutral" json:"emotion"`
}

// TableName specifies the table name for Event model
func (Event) TableName() string {
	return "events"
}

// EventRequest is the request body for creating or updating an event.
// Optional fields stay nil and are stored as NULL.
type EventRequest struct {
	Headline     string  `json:"headline"`
	TextContent  string  `json:"text_content"`
	StartYear    int     `json:"start_year"`
	StartMonth   *int    `json:"start_month"`
	StartDay     *int    `json:"start_day"`
	MediaURL     *string `json:"media_url"`
	MediaCaption *string `json:"media_caption"`
	GroupName    *string `json:"group_name"`
	EventType    string  `json:"event_type"`
	Emotion      string  `json:"emotion"`
}

// ToEvent converts the request into a storable Event, normalizing empty
// classification fields to "neutral" so reads never see an unset value.
func (r *EventRequest) ToEvent() *Event {
	eventType := r.EventType
	if eventType == "" {
		eventType = string(EventTypeNeutral)
	}
	emotion := r.Emotion
	if emotion == "" {
		emotion = string(EmotionNeutral)
	}

	return &Event{
		Headline:     r.Headline,
		TextContent:  r.TextContent,
		StartYear:    r.StartYear,
		StartMonth:   r.StartMonth,
		StartDay:     r.StartDay,
		MediaURL:     r.MediaURL,
		MediaCaption: r.MediaCaption,
		GroupName:    r.GroupName,
		EventType:    eventType,
		Emotion:      emotion,
	}
}

// StartDate is the TimelineJS partial-precision date. Month and day are
// zero-padded strings and omitted entirely when not stored.
type StartDate struct {
	Year  string `json:"year"`
	Month string `json:"month,omitempty"`
	Day   string `json:"day,omitempty"`
}

// TimelineText is the TimelineJS text block
type TimelineText struct {
	Headline string `json:"headline"`
	Text     string `json:"text"`
}

// TimelineMedia is the TimelineJS media block, present only when the event
// has a media URL
type TimelineMedia struct {
	URL     string `json:"url"`
	Caption string `json:"caption"`
}

// OriginalData carries the raw stored field values so the client can prefill
// the edit form without undoing any display transformation
type OriginalData struct {
	Headline     string  `json:"headline"`
	TextContent  string  `json:"text_content"`
	StartYear    int     `json:"start_year"`
	StartMonth   *int    `json:"start_month"`
	StartDay     *int    `json:"start_day"`
	MediaURL     *string `json:"media_url"`
	MediaCaption *string `json:"media_caption"`
	GroupName    *string `json:"group_name"`
	EventType    string  `json:"event_type"`
	Emotion      string  `json:"emotion"`
}

// TimelineEvent is the display projection of an Event in the shape TimelineJS
// consumes. Group duplicates EventType because the widget groups rows by the
// `group` field while the client styles markers off `event_type`.
type TimelineEvent struct {
	ID           int64          `json:"id"`
	StartDate    StartDate      `json:"start_date"`
	Text         TimelineText   `json:"text"`
	Media        *TimelineMedia `json:"media,omitempty"`
	Group        string         `json:"group"`
	EventType    string         `json:"event_type"`
	Emotion      string         `json:"emotion"`
	OriginalData OriginalData   `json:"original_data"`
}

// TimelineData wraps the event list for the widget
type TimelineData struct {
	Events []TimelineEvent `json:"events"`
}

// ToTimelineEvent converts a stored Event to its display projection
func (e *Event) ToTimelineEvent() TimelineEvent {
	startDate := StartDate{Year: strconv.Itoa(e.StartYear)}
	if e.StartMonth != nil {
		startDate.Month = fmt.Sprintf("%02d", *e.StartMonth)
	}
	if e.StartDay != nil {
		startDate.Day = fmt.Sprintf("%02d", *e.StartDay)
	}

	headline := e.Headline
	if e.Emotion != "" {
		headline += " " + EmojiForEmotion(e.Emotion) + " " + strings.ReplaceAll(e.Emotion, "_", " ")
	}

	var media *TimelineMedia
	if e.MediaURL != nil && *e.MediaURL != "" {
		caption := ""
		if e.MediaCaption != nil {
			caption = *e.MediaCaption
		}
		media = &TimelineMedia{URL: *e.MediaURL, Caption: caption}
	}

	eventType := e.EventType
	if eventType == "" {
		eventType = string(EventTypeNeutral)
	}
	emotion := e.Emotion
	if emotion == "" {
		emotion = string(EmotionNeutral)
	}

	return TimelineEvent{
		ID:        e.ID,
		StartDate: startDate,
		Text: TimelineText{
			Headline: headline,
			Text:     e.TextContent,
		},
		Media:     media,
		Group:     eventType,
		EventType: eventType,
		Emotion:   emotion,
		OriginalData: OriginalData{
			Headline:     e.Headline,
			TextContent:  e.TextContent,
			StartYear:    e.StartYear,
			StartMonth:   e.StartMonth,
			StartDay:     e.StartDay,
			MediaURL:     e.MediaURL,
			MediaCaption: e.MediaCaption,
			GroupName:    e.GroupName,
			EventType:    e.EventType,
			Emotion:      e.Emotion,
		},
	}
}
