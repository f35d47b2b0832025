// Package games serves the mind-game puzzles: riddles, tongue twisters,
// sudoku, and crosswords. Puzzle payloads are stored as JSON rows tagged
// with their kind and decoded here at the storage boundary.
package games

// Game kinds as stored in the database.
const (
	KindRiddle    = "riddle"
	KindTwister   = "twister"
	KindSudoku    = "sudoku"
	KindCrossword = "crossword"
)

// Riddle is a question/answer puzzle.
type Riddle struct {
	ID         string `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty string `json:"difficulty"`
}

// TongueTwister is a phrase to read aloud.
type TongueTwister struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	Difficulty string `json:"difficulty"`
}

// SudokuCell is one cell of a 9x9 sudoku grid. Value is nil for empty cells.
type SudokuCell struct {
	Value      *int `json:"value"`
	IsOriginal bool `json:"isOriginal"`
}

// SudokuPuzzle wraps a sudoku grid.
type SudokuPuzzle struct {
	Grid [][]SudokuCell `json:"grid"`
}

// SudokuCheck is the result of validating a sudoku solution.
type SudokuCheck struct {
	IsCorrect  bool     `json:"isCorrect"`
	ValidCells [][]bool `json:"validCells"`
}

// CrosswordCell is one cell of a crossword grid.
type CrosswordCell struct {
	Letter        string `json:"letter"`
	ClueNumber    *int   `json:"clueNumber,omitempty"`
	IsBlack       bool   `json:"isBlack"`
	IsHighlighted bool   `json:"isHighlighted"`
}

// CrosswordClue is a single across or down clue.
type CrosswordClue struct {
	Number           int    `json:"number"`
	Text             string `json:"text"`
	Orientation      string `json:"orientation"`
	Answer           string `json:"answer"`
	RelatedArticleID string `json:"relatedArticleId"`
}

// CrosswordPuzzle is a crossword grid with its clues.
type CrosswordPuzzle struct {
	Grid  [][]CrosswordCell `json:"grid"`
	Clues []CrosswordClue   `json:"clues"`
	Size  int               `json:"size"`
}

// CrosswordResponse is the wire shape for serving a crossword.
type CrosswordResponse struct {
	ID     string          `json:"id"`
	Puzzle CrosswordPuzzle `json:"puzzle"`
}

// CrosswordCheck is the result of checking crossword answers.
type CrosswordCheck struct {
	IsCorrect    bool `json:"isCorrect"`
	CorrectCount int  `json:"correctCount"`
	TotalCount   int  `json:"totalCount"`
}
