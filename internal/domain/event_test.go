package domain

import (
	"strings"
	"testing"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestToTimelineEvent_DisplayProjection(t *testing.T) {
	event := Event{
		ID:          7,
		Headline:    "Graduated",
		TextContent: "Finished school",
		StartYear:   2020,
		StartMonth:  intPtr(6),
		EventType:   "good",
		Emotion:     "pride",
	}

	out := event.ToTimelineEvent()

	if out.StartDate.Year != "2020" {
		t.Errorf("expected year 2020, got %q", out.StartDate.Year)
	}
	if out.StartDate.Month != "06" {
		t.Errorf("expected zero-padded month 06, got %q", out.StartDate.Month)
	}
	if out.StartDate.Day != "" {
		t.Errorf("expected empty day, got %q", out.StartDate.Day)
	}
	if !strings.HasSuffix(out.Text.Headline, "🌟 pride") {
		t.Errorf("expected headline to end in emotion suffix, got %q", out.Text.Headline)
	}
	if !strings.HasPrefix(out.Text.Headline, "Graduated ") {
		t.Errorf("expected original headline prefix, got %q", out.Text.Headline)
	}
	if out.Text.Text != "Finished school" {
		t.Errorf("expected verbatim text, got %q", out.Text.Text)
	}
	if out.Group != "good" || out.EventType != "good" {
		t.Errorf("expected group and event_type duplicated as good, got %q / %q", out.Group, out.EventType)
	}
	if out.Media != nil {
		t.Errorf("expected no media block, got %+v", out.Media)
	}
	if out.OriginalData.Headline != "Graduated" {
		t.Errorf("expected raw headline in original_data, got %q", out.OriginalData.Headline)
	}
}

func TestToTimelineEvent_UnderscoreEmotionSuffix(t *testing.T) {
	event := Event{Headline: "Flunked", TextContent: "x", StartYear: 1999, Emotion: "self_deprecation"}

	out := event.ToTimelineEvent()

	if !strings.HasSuffix(out.Text.Headline, "😔 self deprecation") {
		t.Errorf("expected underscores replaced in suffix, got %q", out.Text.Headline)
	}
}

func TestToTimelineEvent_EmptyClassificationDefaultsToNeutral(t *testing.T) {
	event := Event{Headline: "h", TextContent: "t", StartYear: 2001}

	out := event.ToTimelineEvent()

	if out.Group != "neutral" || out.EventType != "neutral" || out.Emotion != "neutral" {
		t.Errorf("expected neutral defaults, got group=%q type=%q emotion=%q",
			out.Group, out.EventType, out.Emotion)
	}
	// Empty stored emotion means no suffix at all
	if out.Text.Headline != "h" {
		t.Errorf("expected bare headline without suffix, got %q", out.Text.Headline)
	}
}

func TestToTimelineEvent_MediaBlock(t *testing.T) {
	event := Event{
		Headline:    "Trip",
		TextContent: "x",
		StartYear:   2010,
		StartDay:    intPtr(3),
		MediaURL:    strPtr("https://example.com/p.jpg"),
	}

	out := event.ToTimelineEvent()

	if out.Media == nil {
		t.Fatal("expected media block")
	}
	if out.Media.URL != "https://example.com/p.jpg" {
		t.Errorf("unexpected media url %q", out.Media.URL)
	}
	if out.Media.Caption != "" {
		t.Errorf("expected empty caption default, got %q", out.Media.Caption)
	}
	// Day without month is stored as-is; projection just pads what exists
	if out.StartDate.Day != "03" {
		t.Errorf("expected zero-padded day 03, got %q", out.StartDate.Day)
	}
	if out.StartDate.Month != "" {
		t.Errorf("expected empty month, got %q", out.StartDate.Month)
	}
}

func TestEventRequestToEvent_NeutralDefaults(t *testing.T) {
	req := EventRequest{Headline: "h", TextContent: "t", StartYear: 2024}

	event := req.ToEvent()

	if event.EventType != "neutral" {
		t.Errorf("expected event_type default neutral, got %q", event.EventType)
	}
	if event.Emotion != "neutral" {
		t.Errorf("expected emotion default neutral, got %q", event.Emotion)
	}
	if event.StartMonth != nil || event.StartDay != nil || event.MediaURL != nil {
		t.Error("expected absent optional fields to stay nil")
	}
}

func TestEmojiForEmotion(t *testing.T) {
	if got := EmojiForEmotion("pride"); got != "🌟" {
		t.Errorf("expected 🌟 for pride, got %q", got)
	}
	if got := EmojiForEmotion("confusion"); got != "😐" {
		t.Errorf("expected neutral fallback for unknown emotion, got %q", got)
	}
}

func TestColorForEventType(t *testing.T) {
	if got := ColorForEventType("good"); got != "#10b981" {
		t.Errorf("expected #10b981 for good, got %q", got)
	}
	if got := ColorForEventType("bad"); got != "#ef4444" {
		t.Errorf("expected #ef4444 for bad, got %q", got)
	}
	if got := ColorForEventType("mystery"); got != "#64748b" {
		t.Errorf("expected neutral fallback color for unknown type, got %q", got)
	}
}
