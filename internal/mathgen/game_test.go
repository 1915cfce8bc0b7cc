package mathgen

import (
	"strconv"
	"strings"
	"testing"
)

func TestGame_FullSessionAllCorrect(t *testing.T) {
	g, err := NewGame(Addition, 1)
	if err != nil {
		t.Fatalf("NewGame error = %v", err)
	}

	for i := 1; i <= QuestionsPerGame; i++ {
		if g.QuestionNumber() != i {
			t.Fatalf("question number = %d, want %d", g.QuestionNumber(), i)
		}
		if !g.Answer(g.Problem().Answer) {
			t.Fatalf("correct answer on question %d not scored", i)
		}
	}

	if g.Score() != QuestionsPerGame {
		t.Fatalf("score = %d, want %d", g.Score(), QuestionsPerGame)
	}
	if !g.Done() {
		t.Fatal("game not done after last question")
	}
	if g.Answer(g.Problem().Answer) {
		t.Fatal("answer after game end was scored")
	}
	if g.Score() != QuestionsPerGame {
		t.Fatalf("score changed after game end: %d", g.Score())
	}
}

func TestGame_WrongAnswerScoresNothing(t *testing.T) {
	g, err := NewGame(Multiplication, 2)
	if err != nil {
		t.Fatalf("NewGame error = %v", err)
	}

	var wrong int
	for _, opt := range g.Problem().Options {
		if opt != g.Problem().Answer {
			wrong = opt
			break
		}
	}

	if g.Answer(wrong) {
		t.Fatal("wrong answer reported as correct")
	}
	if g.Score() != 0 {
		t.Fatalf("score = %d, want 0", g.Score())
	}
	if g.QuestionNumber() != 2 {
		t.Fatalf("question number = %d, want 2", g.QuestionNumber())
	}
}

func TestGame_UnknownCategory(t *testing.T) {
	if _, err := NewGame(Category("fractions"), 1); err == nil {
		t.Fatal("expected error for unknown category")
	}
}

func TestGame_HintNamesOperands(t *testing.T) {
	categories := []Category{Addition, Subtraction, Multiplication, Division}
	for _, category := range categories {
		g, err := NewGame(category, 1)
		if err != nil {
			t.Fatalf("NewGame(%s) error = %v", category, err)
		}
		hint := g.Hint()
		if hint == "" {
			t.Fatalf("%s: empty hint", category)
		}
		if !strings.Contains(hint, strconv.Itoa(g.Problem().Num1)) {
			t.Errorf("%s: hint %q does not mention num1 %d", category, hint, g.Problem().Num1)
		}
		if !strings.Contains(hint, strconv.Itoa(g.Problem().Num2)) {
			t.Errorf("%s: hint %q does not mention num2 %d", category, hint, g.Problem().Num2)
		}
	}
}
