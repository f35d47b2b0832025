package games

import (
	"fmt"
	"strings"
)

// CheckSudoku validates a 9x9 solution grid. Empty cells are invalid. A
// duplicate value in a row, column, or box marks every cell of the
// duplicated group invalid, not just the later occurrence. A malformed grid
// yields all cells invalid.
func CheckSudoku(grid [][]SudokuCell) SudokuCheck {
	if len(grid) != 9 {
		return allInvalid()
	}
	for _, row := range grid {
		if len(row) != 9 {
			return allInvalid()
		}
	}

	validCells := make([][]bool, 9)
	for row := range validCells {
		validCells[row] = make([]bool, 9)
		for col := range validCells[row] {
			validCells[row][col] = true
		}
	}
	isCorrect := true

	markDuplicates := func(positions [][2]int) {
		firstSeen := make(map[int][2]int)
		for _, pos := range positions {
			cell := grid[pos[0]][pos[1]]
			if cell.Value == nil {
				continue
			}
			if first, ok := firstSeen[*cell.Value]; ok {
				validCells[first[0]][first[1]] = false
				validCells[pos[0]][pos[1]] = false
				isCorrect = false
				continue
			}
			firstSeen[*cell.Value] = pos
		}
	}

	// Rows; also the pass that rejects empty cells.
	for row := 0; row < 9; row++ {
		positions := make([][2]int, 0, 9)
		for col := 0; col < 9; col++ {
			if grid[row][col].Value == nil {
				validCells[row][col] = false
				isCorrect = false
				continue
			}
			positions = append(positions, [2]int{row, col})
		}
		markDuplicates(positions)
	}

	// Columns.
	for col := 0; col < 9; col++ {
		positions := make([][2]int, 0, 9)
		for row := 0; row < 9; row++ {
			positions = append(positions, [2]int{row, col})
		}
		markDuplicates(positions)
	}

	// 3x3 boxes.
	for boxRow := 0; boxRow < 3; boxRow++ {
		for boxCol := 0; boxCol < 3; boxCol++ {
			positions := make([][2]int, 0, 9)
			for row := boxRow * 3; row < boxRow*3+3; row++ {
				for col := boxCol * 3; col < boxCol*3+3; col++ {
					positions = append(positions, [2]int{row, col})
				}
			}
			markDuplicates(positions)
		}
	}

	return SudokuCheck{IsCorrect: isCorrect, ValidCells: validCells}
}

func allInvalid() SudokuCheck {
	validCells := make([][]bool, 9)
	for row := range validCells {
		validCells[row] = make([]bool, 9)
	}
	return SudokuCheck{IsCorrect: false, ValidCells: validCells}
}

// CheckCrossword compares user answers against the puzzle's clues. Answers
// are keyed by "{orientation}-{number}" and given as ordered letters. A clue
// missing from the map counts as incorrect.
func CheckCrossword(puzzle *CrosswordPuzzle, userAnswers map[string][]string) CrosswordCheck {
	if puzzle == nil || len(puzzle.Clues) == 0 {
		return CrosswordCheck{IsCorrect: false, CorrectCount: 0, TotalCount: 1}
	}

	correctCount := 0
	totalCount := len(puzzle.Clues)

	for _, clue := range puzzle.Clues {
		clueID := fmt.Sprintf("%s-%d", clue.Orientation, clue.Number)
		userAnswer, ok := userAnswers[clueID]
		if !ok {
			continue
		}
		answer := strings.ToUpper(strings.Join(userAnswer, ""))
		if answer == strings.ToUpper(clue.Answer) {
			correctCount++
		}
	}

	return CrosswordCheck{
		IsCorrect:    correctCount == totalCount,
		CorrectCount: correctCount,
		TotalCount:   totalCount,
	}
}
