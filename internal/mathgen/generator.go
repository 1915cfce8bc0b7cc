// Package mathgen procedurally generates arithmetic problems for the math
// games, parameterized by category and difficulty level.
package mathgen

import (
	"fmt"
	"math/rand"
)

// Category selects the arithmetic operation.
type Category string

const (
	Addition       Category = "addition"
	Subtraction    Category = "subtraction"
	Multiplication Category = "multiplication"
	Division       Category = "division"
)

// Problem is one generated question. Options holds 4 distinct positive
// integers, exactly one of which is Answer, in random order.
type Problem struct {
	Num1    int
	Num2    int
	Answer  int
	Options []int
}

// Generate builds a problem for the given category and level. Operand ranges
// scale with level; division operands are constructed from the quotient so
// the result is always exact, and subtraction operands so the result is
// always positive.
func Generate(category Category, level int) (Problem, error) {
	if level < 1 {
		level = 1
	}

	var num1, num2, answer int
	switch category {
	case Addition:
		num1 = rand.Intn(level*10) + 1
		num2 = rand.Intn(level*10) + 1
		answer = num1 + num2
	case Subtraction:
		num2 = rand.Intn(level*5) + 1
		num1 = num2 + rand.Intn(level*5) + 1
		answer = num1 - num2
	case Multiplication:
		num1 = rand.Intn(level*3) + 1
		num2 = rand.Intn(level*2) + 1
		answer = num1 * num2
	case Division:
		num2 = rand.Intn(level*2) + 1
		answer = rand.Intn(level*2) + 1
		num1 = num2 * answer
	default:
		return Problem{}, fmt.Errorf("unknown category %q", category)
	}

	return Problem{
		Num1:    num1,
		Num2:    num2,
		Answer:  answer,
		Options: buildOptions(answer),
	}, nil
}

// buildOptions returns the shuffled 4-option set: the true answer plus 3
// distractors near it. Candidates are answer±1, ±2 and ±(3..7), filtered to
// positive values; when fewer than 3 survive (tiny answers) the set is padded
// with increasing synthetic distractors so every problem still has 4 options.
func buildOptions(answer int) []int {
	spread := rand.Intn(5) + 3
	candidates := []int{
		answer + 1,
		answer - 1,
		answer + 2,
		answer - 2,
		answer + spread,
		answer - spread,
	}

	var wrong []int
	for _, c := range candidates {
		if c != answer && c > 0 {
			wrong = append(wrong, c)
		}
	}
	rand.Shuffle(len(wrong), func(i, j int) {
		wrong[i], wrong[j] = wrong[j], wrong[i]
	})
	if len(wrong) > 3 {
		wrong = wrong[:3]
	}
	for next := answer + 3; len(wrong) < 3; next++ {
		if next != answer+spread && !contains(wrong, next) {
			wrong = append(wrong, next)
		}
	}

	options := append([]int{answer}, wrong...)
	rand.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}

func contains(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
