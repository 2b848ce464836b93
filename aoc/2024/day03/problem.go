package aoc2024day03

import (
	"cmp"
	"regexp"
	"slices"
	"strings"

	"github.com/povarna/advent-of-code/internal/puzzle"
	"github.com/povarna/advent-of-code/utils"
)

var (
	mulReg     = regexp.MustCompile(`mul\((\d{1,3}),(\d{1,3})\)`)
	enableReg  = regexp.MustCompile(`do\(\)`)
	disableReg = regexp.MustCompile(`don't\(\)`)
)

type Kind int

const (
	Multiply Kind = iota
	Enable
	Disable
)

func (k Kind) String() string {
	switch k {
	case Multiply:
		return "mul"
	case Enable:
		return "do"
	case Disable:
		return "don't"
	}
	return "unknown"
}

// Token is one instruction found in the corrupted memory. Offset is the byte
// position of its first character; A and B are only set for Multiply.
type Token struct {
	Kind   Kind
	Offset int
	A, B   int
}

func init() {
	puzzle.Register("2024/03", "Mull It Over", puzzle.SolverFunc(Solve))
}

func Solve(path string) ([]puzzle.Answer, error) {
	memory, err := ReadMemory(path)
	if err != nil {
		return nil, err
	}

	tokens := Scan(memory)

	return []puzzle.Answer{
		{Part: 1, Description: "Sum of all multiplications", Value: Execute(tokens, false)},
		{Part: 2, Description: "Sum of enabled multiplications", Value: Execute(tokens, true)},
	}, nil
}

func ReadMemory(path string) (string, error) {
	memory, err := puzzle.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(memory), nil
}

// Scan finds every instruction in memory and returns them in the order they
// appear. Each kind is searched independently, so the matches are merged back
// by offset before anything runs them.
func Scan(memory string) []Token {
	tokens := []Token{}

	for _, loc := range mulReg.FindAllStringSubmatchIndex(memory, -1) {
		// the pattern allows at most three digits, so the conversion cannot fail
		a, _ := utils.ToInt(memory[loc[2]:loc[3]])
		b, _ := utils.ToInt(memory[loc[4]:loc[5]])
		tokens = append(tokens, Token{Kind: Multiply, Offset: loc[0], A: a, B: b})
	}
	for _, loc := range enableReg.FindAllStringIndex(memory, -1) {
		tokens = append(tokens, Token{Kind: Enable, Offset: loc[0]})
	}
	for _, loc := range disableReg.FindAllStringIndex(memory, -1) {
		tokens = append(tokens, Token{Kind: Disable, Offset: loc[0]})
	}

	slices.SortStableFunc(tokens, func(a, b Token) int {
		return cmp.Compare(a.Offset, b.Offset)
	})

	return tokens
}

// Execute sums the products of the Multiply tokens. With honorControl set,
// Disable switches multiplication off until the next Enable; otherwise every
// product counts.
func Execute(tokens []Token, honorControl bool) int {
	total := 0
	enabled := true

	for _, token := range tokens {
		switch token.Kind {
		case Enable:
			enabled = true
		case Disable:
			enabled = false
		case Multiply:
			if enabled || !honorControl {
				total += token.A * token.B
			}
		}
	}

	return total
}

func SumAll(memory string) int {
	return Execute(Scan(memory), false)
}

func SumEnabled(memory string) int {
	return Execute(Scan(memory), true)
}
