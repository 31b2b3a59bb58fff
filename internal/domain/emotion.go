package domain

// Emotion classifies the feeling attached to an event
type Emotion string

const (
	EmotionJoy             Emotion = "joy"
	EmotionPride           Emotion = "pride"
	EmotionGratitude       Emotion = "gratitude"
	EmotionAnger           Emotion = "anger"
	EmotionShame           Emotion = "shame"
	EmotionSelfDeprecation Emotion = "self_deprecation"
	EmotionSelfEsteem      Emotion = "self_esteem"
	EmotionSadness         Emotion = "sadness"
	EmotionAnxiety         Emotion = "anxiety"
	EmotionNeutral         Emotion = "neutral"
)

// emotionEmojis maps each emotion to its display glyph
var emotionEmojis = map[Emotion]string{
	EmotionJoy:             "😄",
	EmotionPride:           "🌟",
	EmotionGratitude:       "🙏",
	EmotionAnger:           "😠",
	EmotionShame:           "😳",
	EmotionSelfDeprecation: "😔",
	EmotionSelfEsteem:      "💪",
	EmotionSadness:         "😢",
	EmotionAnxiety:         "😰",
	EmotionNeutral:         "😐",
}

// eventTypeColors maps each event type to its marker color
var eventTypeColors = map[EventType]string{
	EventTypeGood:    "#10b981",
	EventTypeBad:     "#ef4444",
	EventTypeNeutral: "#64748b",
}

// EmojiForEmotion returns the glyph for an emotion, falling back to the
// neutral glyph for unknown values
func EmojiForEmotion(emotion string) string {
	if emoji, ok := emotionEmojis[Emotion(emotion)]; ok {
		return emoji
	}
	return emotionEmojis[EmotionNeutral]
}

// ColorForEventType returns the marker color for an event type, falling back
// to the neutral color for unknown values
func ColorForEventType(eventType string) string {
	if color, ok := eventTypeColors[EventType(eventType)]; ok {
		return color
	}
	return eventTypeColors[EventTypeNeutral]
}

// EmotionEmojis returns a copy of the emotion→emoji table for the meta endpoint
func EmotionEmojis() map[string]string {
	out := make(map[string]string, len(emotionEmojis))
	for emotion, emoji := range emotionEmojis {
		out[string(emotion)] = emoji
	}
	return out
}

// EventTypeColors returns a copy of the event-type→color table for the meta endpoint
func EventTypeColors() map[string]string {
	out := make(map[string]string, len(eventTypeColors))
	for eventType, color := range eventTypeColors {
		out[string(eventType)] = color
	}
	return out
}
