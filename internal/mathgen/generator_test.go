package mathgen

import "testing"

func TestGenerate_AdditionRanges(t *testing.T) {
	for i := 0; i < 1000; i++ {
		p, err := Generate(Addition, 2)
		if err != nil {
			t.Fatalf("Generate(addition, 2) error = %v", err)
		}
		if p.Num1 < 1 || p.Num1 > 20 {
			t.Fatalf("num1 = %d, want in [1,20]", p.Num1)
		}
		if p.Num2 < 1 || p.Num2 > 20 {
			t.Fatalf("num2 = %d, want in [1,20]", p.Num2)
		}
		if p.Answer != p.Num1+p.Num2 {
			t.Fatalf("answer = %d, want %d", p.Answer, p.Num1+p.Num2)
		}
	}
}

func TestGenerate_SubtractionNonNegative(t *testing.T) {
	for level := 1; level <= 5; level++ {
		for i := 0; i < 200; i++ {
			p, err := Generate(Subtraction, level)
			if err != nil {
				t.Fatalf("Generate(subtraction, %d) error = %v", level, err)
			}
			if p.Num1 < p.Num2 {
				t.Fatalf("num1 = %d < num2 = %d", p.Num1, p.Num2)
			}
			if p.Answer != p.Num1-p.Num2 {
				t.Fatalf("answer = %d, want %d", p.Answer, p.Num1-p.Num2)
			}
		}
	}
}

func TestGenerate_Multiplication(t *testing.T) {
	for i := 0; i < 200; i++ {
		p, err := Generate(Multiplication, 3)
		if err != nil {
			t.Fatalf("Generate(multiplication, 3) error = %v", err)
		}
		if p.Num1 < 1 || p.Num1 > 9 {
			t.Fatalf("num1 = %d, want in [1,9]", p.Num1)
		}
		if p.Num2 < 1 || p.Num2 > 6 {
			t.Fatalf("num2 = %d, want in [1,6]", p.Num2)
		}
		if p.Answer != p.Num1*p.Num2 {
			t.Fatalf("answer = %d, want %d", p.Answer, p.Num1*p.Num2)
		}
	}
}

func TestGenerate_DivisionAlwaysExact(t *testing.T) {
	for level := 1; level <= 5; level++ {
		for i := 0; i < 200; i++ {
			p, err := Generate(Division, level)
			if err != nil {
				t.Fatalf("Generate(division, %d) error = %v", level, err)
			}
			if p.Num2 == 0 {
				t.Fatal("num2 = 0")
			}
			if p.Num1%p.Num2 != 0 {
				t.Fatalf("%d %% %d != 0", p.Num1, p.Num2)
			}
			if p.Answer != p.Num1/p.Num2 {
				t.Fatalf("answer = %d, want %d", p.Answer, p.Num1/p.Num2)
			}
		}
	}
}

func TestGenerate_OptionsContainAnswerOnce(t *testing.T) {
	categories := []Category{Addition, Subtraction, Multiplication, Division}
	for _, category := range categories {
		for level := 1; level <= 5; level++ {
			for i := 0; i < 100; i++ {
				p, err := Generate(category, level)
				if err != nil {
					t.Fatalf("Generate(%s, %d) error = %v", category, level, err)
				}
				if len(p.Options) != 4 {
					t.Fatalf("%s level %d: got %d options, want 4", category, level, len(p.Options))
				}
				seen := make(map[int]bool, 4)
				answerCount := 0
				for _, opt := range p.Options {
					if opt <= 0 {
						t.Fatalf("%s level %d: non-positive option %d", category, level, opt)
					}
					if seen[opt] {
						t.Fatalf("%s level %d: duplicate option %d in %v", category, level, opt, p.Options)
					}
					seen[opt] = true
					if opt == p.Answer {
						answerCount++
					}
				}
				if answerCount != 1 {
					t.Fatalf("%s level %d: answer %d appears %d times in %v", category, level, p.Answer, answerCount, p.Options)
				}
			}
		}
	}
}

func TestGenerate_UnknownCategory(t *testing.T) {
	if _, err := Generate(Category("geometry"), 1); err == nil {
		t.Fatal("expected error for unknown category")
	}
}

func TestGenerate_LevelBelowOneCoerced(t *testing.T) {
	p, err := Generate(Addition, 0)
	if err != nil {
		t.Fatalf("Generate(addition, 0) error = %v", err)
	}
	if p.Num1 < 1 || p.Num1 > 10 || p.Num2 < 1 || p.Num2 > 10 {
		t.Fatalf("operands %d, %d out of level-1 range", p.Num1, p.Num2)
	}
}
