package games

import (
	"encoding/json"
	"log"
	"strconv"

	"concentribe/internal/database"
)

const defaultCrosswordID = "default"

// Service serves puzzles from the database, falling back to the built-in
// defaults when a kind has no rows.
type Service struct {
	db *database.DB
}

// NewService creates a game service.
func NewService(db *database.DB) *Service {
	return &Service{db: db}
}

type riddlePayload struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type twisterPayload struct {
	Text string `json:"text"`
}

// SeedDefaults stores the built-in puzzles for any kind that has no rows
// yet. Safe to call on every startup.
func (s *Service) SeedDefaults() error {
	if err := s.seedKind(KindRiddle, s.defaultRiddleRows); err != nil {
		return err
	}
	if err := s.seedKind(KindTwister, s.defaultTwisterRows); err != nil {
		return err
	}
	if err := s.seedKind(KindSudoku, s.defaultSudokuRows); err != nil {
		return err
	}
	return s.seedKind(KindCrossword, s.defaultCrosswordRows)
}

func (s *Service) seedKind(kind string, insert func() error) error {
	existing, err := s.db.GetGameByKind(kind)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	return insert()
}

func (s *Service) defaultRiddleRows() error {
	for _, r := range DefaultRiddles() {
		payload, err := json.Marshal(riddlePayload{Question: r.Question, Answer: r.Answer})
		if err != nil {
			return err
		}
		difficulty := r.Difficulty
		if _, err := s.db.InsertGame(KindRiddle, &difficulty, string(payload)); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) defaultTwisterRows() error {
	for _, tw := range DefaultTongueTwisters() {
		payload, err := json.Marshal(twisterPayload{Text: tw.Text})
		if err != nil {
			return err
		}
		difficulty := tw.Difficulty
		if _, err := s.db.InsertGame(KindTwister, &difficulty, string(payload)); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) defaultSudokuRows() error {
	payload, err := json.Marshal(DefaultSudoku())
	if err != nil {
		return err
	}
	difficulty := "medium"
	_, err = s.db.InsertGame(KindSudoku, &difficulty, string(payload))
	return err
}

func (s *Service) defaultCrosswordRows() error {
	payload, err := json.Marshal(DefaultCrossword())
	if err != nil {
		return err
	}
	difficulty := "medium"
	_, err = s.db.InsertGame(KindCrossword, &difficulty, string(payload))
	return err
}

// Riddles returns up to limit riddles.
func (s *Service) Riddles(limit int) []Riddle {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.GetGamesByKind(KindRiddle, limit)
	if err != nil {
		log.Printf("Error fetching riddles: %v", err)
		return DefaultRiddles()
	}

	var riddles []Riddle
	for _, row := range rows {
		var p riddlePayload
		if err := json.Unmarshal([]byte(row.Payload), &p); err != nil {
			log.Printf("Skipping malformed riddle row %d: %v", row.ID, err)
			continue
		}
		riddles = append(riddles, Riddle{
			ID:         strconv.FormatInt(row.ID, 10),
			Question:   p.Question,
			Answer:     p.Answer,
			Difficulty: difficultyOf(&row),
		})
	}
	if len(riddles) == 0 {
		return DefaultRiddles()
	}
	return riddles
}

// TongueTwisters returns up to limit tongue twisters.
func (s *Service) TongueTwisters(limit int) []TongueTwister {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.GetGamesByKind(KindTwister, limit)
	if err != nil {
		log.Printf("Error fetching tongue twisters: %v", err)
		return DefaultTongueTwisters()
	}

	var twisters []TongueTwister
	for _, row := range rows {
		var p twisterPayload
		if err := json.Unmarshal([]byte(row.Payload), &p); err != nil {
			log.Printf("Skipping malformed twister row %d: %v", row.ID, err)
			continue
		}
		twisters = append(twisters, TongueTwister{
			ID:         strconv.FormatInt(row.ID, 10),
			Text:       p.Text,
			Difficulty: difficultyOf(&row),
		})
	}
	if len(twisters) == 0 {
		return DefaultTongueTwisters()
	}
	return twisters
}

// Sudoku returns the stored sudoku puzzle, or the built-in one.
func (s *Service) Sudoku() *SudokuPuzzle {
	row, err := s.db.GetGameByKind(KindSudoku)
	if err != nil || row == nil {
		if err != nil {
			log.Printf("Error fetching sudoku puzzle: %v", err)
		}
		return DefaultSudoku()
	}

	var puzzle SudokuPuzzle
	if err := json.Unmarshal([]byte(row.Payload), &puzzle); err != nil {
		log.Printf("Malformed sudoku row %d: %v", row.ID, err)
		return DefaultSudoku()
	}
	return &puzzle
}

// Crossword returns the stored crossword puzzle, or the built-in one.
// The difficulty parameter selects among stored puzzles when several exist.
func (s *Service) Crossword(difficulty string) *CrosswordResponse {
	rows, err := s.db.GetGamesByKind(KindCrossword, 25)
	if err != nil {
		log.Printf("Error fetching crossword puzzle: %v", err)
		return &CrosswordResponse{ID: defaultCrosswordID, Puzzle: *DefaultCrossword()}
	}

	for _, row := range rows {
		if difficulty != "" && difficultyOf(&row) != difficulty {
			continue
		}
		var puzzle CrosswordPuzzle
		if err := json.Unmarshal([]byte(row.Payload), &puzzle); err != nil {
			log.Printf("Malformed crossword row %d: %v", row.ID, err)
			continue
		}
		return &CrosswordResponse{ID: strconv.FormatInt(row.ID, 10), Puzzle: puzzle}
	}

	// No match for the requested difficulty: serve the first stored puzzle.
	for _, row := range rows {
		var puzzle CrosswordPuzzle
		if err := json.Unmarshal([]byte(row.Payload), &puzzle); err != nil {
			continue
		}
		return &CrosswordResponse{ID: strconv.FormatInt(row.ID, 10), Puzzle: puzzle}
	}

	return &CrosswordResponse{ID: defaultCrosswordID, Puzzle: *DefaultCrossword()}
}

// CheckCrosswordByID resolves a puzzle identifier and checks the answers
// against it. An unknown identifier yields the all-incorrect response.
func (s *Service) CheckCrosswordByID(puzzleID string, userAnswers map[string][]string) CrosswordCheck {
	puzzle := s.crosswordByID(puzzleID)
	return CheckCrossword(puzzle, userAnswers)
}

func (s *Service) crosswordByID(puzzleID string) *CrosswordPuzzle {
	if puzzleID == defaultCrosswordID {
		return DefaultCrossword()
	}
	id, err := strconv.ParseInt(puzzleID, 10, 64)
	if err != nil {
		return nil
	}
	row, err := s.db.GetGameByID(id)
	if err != nil || row == nil || row.Kind != KindCrossword {
		return nil
	}
	var puzzle CrosswordPuzzle
	if err := json.Unmarshal([]byte(row.Payload), &puzzle); err != nil {
		return nil
	}
	return &puzzle
}

func difficultyOf(row *database.Game) string {
	if row.Difficulty == nil {
		return "medium"
	}
	return *row.Difficulty
}
