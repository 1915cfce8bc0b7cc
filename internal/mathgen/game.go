package mathgen

import "fmt"

// QuestionsPerGame is the fixed session length.
const QuestionsPerGame = 10

// Game is one scored math session: 10 questions, one point per correct
// first-choice selection, no time limit.
type Game struct {
	category Category
	level    int
	current  Problem
	question int
	score    int
	done     bool
}

// NewGame starts a game and generates its first problem.
func NewGame(category Category, level int) (*Game, error) {
	p, err := Generate(category, level)
	if err != nil {
		return nil, err
	}
	return &Game{
		category: category,
		level:    level,
		current:  p,
		question: 1,
	}, nil
}

// Problem returns the problem currently being asked.
func (g *Game) Problem() Problem { return g.current }

// QuestionNumber returns the 1-based number of the current question.
func (g *Game) QuestionNumber() int { return g.question }

// Score returns the points earned so far.
func (g *Game) Score() int { return g.score }

// Done reports whether all questions have been answered.
func (g *Game) Done() bool { return g.done }

// Answer scores the selection against the current problem and advances to a
// freshly generated one, or ends the game after the last question. Answers
// after the game is done are ignored.
func (g *Game) Answer(selected int) bool {
	if g.done {
		return false
	}
	correct := selected == g.current.Answer
	if correct {
		g.score++
	}
	if g.question < QuestionsPerGame {
		g.question++
		// category was validated in NewGame
		g.current, _ = Generate(g.category, g.level)
	} else {
		g.done = true
	}
	return correct
}

// Hint returns kid-friendly help for the current problem.
func (g *Game) Hint() string {
	switch g.category {
	case Addition:
		return fmt.Sprintf("Count %d and then add %d more!", g.current.Num1, g.current.Num2)
	case Subtraction:
		return fmt.Sprintf("Start with %d and take away %d.", g.current.Num1, g.current.Num2)
	case Multiplication:
		return fmt.Sprintf("Think of %d groups with %d in each group.", g.current.Num1, g.current.Num2)
	case Division:
		return fmt.Sprintf("Divide %d into groups of %d.", g.current.Num1, g.current.Num2)
	}
	return ""
}
