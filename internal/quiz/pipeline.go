package quiz

import (
	"context"
	"fmt"

	"playverse/internal/genai"
)

const promptTemplate = `You are a children-specific chatbot. Please provide %d questions related to category (e.g., "Math", "Science", "Spelling", "Music", "Arts", "Reading" etc., chosen randomly) for children below age 15.
Each question should be structured with the following properties:
1. question: The question itself (e.g., "What is 5 + 3?")
2. options: An array of objects, where each object contains:
    - id: A unique identifier for the option (e.g., "a", "b", "c", "d")
    - text: The text of the option (e.g., "7", "8", "9", "10")
3. correctOptionId: The id of the correct answer option (e.g., "a", "b", "c", "d")
4. category: The category of the question (e.g., "Math", "Science", "Spelling")
Please return the JSON in the following format:
[
  {
    "question": "Which of these animals can fly?",
    "options": [
      { "id": "a", "text": "Dog" },
      { "id": "b", "text": "Cat" },
      { "id": "c", "text": "Bird" },
      { "id": "d", "text": "Fish" }
    ],
    "correctOptionId": "c",
    "category": "Science"
  }
]`

// Prompt returns the generation prompt for a batch of n quiz items.
func Prompt(n int) string {
	return fmt.Sprintf(promptTemplate, n)
}

// NewFetcher adapts a Gemini client into a session FetchFunc: one
// generateContent call followed by strict extraction. Failures of either step
// surface as the error the session's fallback logic reacts to.
func NewFetcher(client *genai.Client) FetchFunc {
	return func(ctx context.Context, n int) ([]Item, error) {
		resp, err := client.GenerateContent(ctx, Prompt(n))
		if err != nil {
			return nil, err
		}
		return Extract(resp)
	}
}
