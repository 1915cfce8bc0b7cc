package quiz

import "github.com/google/uuid"

// fallbackItems is the fixed quiz set shown when the generation pipeline
// fails. IDs are assigned per copy, see FallbackItems.
var fallbackItems = []Item{
	{
		Question: "Which planet is known as the Red Planet?",
		Options: []Option{
			{ID: "a", Text: "Earth"},
			{ID: "b", Text: "Mars"},
			{ID: "c", Text: "Jupiter"},
			{ID: "d", Text: "Venus"},
		},
		CorrectOptionID: "b",
		Category:        "Science",
	},
	{
		Question: "What is 8 + 5?",
		Options: []Option{
			{ID: "a", Text: "12"},
			{ID: "b", Text: "13"},
			{ID: "c", Text: "14"},
			{ID: "d", Text: "15"},
		},
		CorrectOptionID: "b",
		Category:        "Math",
	},
	{
		Question: "Which of these is not a fruit?",
		Options: []Option{
			{ID: "a", Text: "Apple"},
			{ID: "b", Text: "Carrot"},
			{ID: "c", Text: "Banana"},
			{ID: "d", Text: "Orange"},
		},
		CorrectOptionID: "b",
		Category:        "Science",
	},
	{
		Question: "How many continents are there on Earth?",
		Options: []Option{
			{ID: "a", Text: "5"},
			{ID: "b", Text: "6"},
			{ID: "c", Text: "7"},
			{ID: "d", Text: "8"},
		},
		CorrectOptionID: "c",
		Category:        "Geography",
	},
	{
		Question: "Which word is spelled correctly?",
		Options: []Option{
			{ID: "a", Text: "Recieve"},
			{ID: "b", Text: "Receive"},
			{ID: "c", Text: "Receve"},
			{ID: "d", Text: "Reciave"},
		},
		CorrectOptionID: "b",
		Category:        "Spelling",
	},
	{
		Question: "What is the capital of France?",
		Options: []Option{
			{ID: "a", Text: "London"},
			{ID: "b", Text: "Berlin"},
			{ID: "c", Text: "Paris"},
			{ID: "d", Text: "Rome"},
		},
		CorrectOptionID: "c",
		Category:        "Geography",
	},
}

// FallbackItems returns a copy of the fixed fallback set, each item with a
// fresh id so repeated uses never collide within a session.
func FallbackItems() []Item {
	items := make([]Item, len(fallbackItems))
	for i, it := range fallbackItems {
		it.ID = uuid.NewString()
		items[i] = it
	}
	return items
}
