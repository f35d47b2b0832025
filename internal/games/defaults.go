package games

// DefaultRiddles are served when the database has no riddle rows.
func DefaultRiddles() []Riddle {
	return []Riddle{
		{
			ID:         "1",
			Question:   "I speak without a mouth and hear without ears. I have no body, but I come alive with wind. What am I?",
			Answer:     "Echo",
			Difficulty: "medium",
		},
		{
			ID:         "2",
			Question:   "The more you take, the more you leave behind. What am I?",
			Answer:     "Footsteps",
			Difficulty: "easy",
		},
		{
			ID:         "3",
			Question:   "What has keys but no locks, space but no room, and you can enter but not go in?",
			Answer:     "Keyboard",
			Difficulty: "medium",
		},
	}
}

// DefaultTongueTwisters are served when the database has no twister rows.
func DefaultTongueTwisters() []TongueTwister {
	return []TongueTwister{
		{
			ID:         "1",
			Text:       "Peter Piper picked a peck of pickled peppers. How many pickled peppers did Peter Piper pick?",
			Difficulty: "medium",
		},
		{
			ID:         "2",
			Text:       "She sells seashells by the seashore. The shells she sells are surely seashells.",
			Difficulty: "easy",
		},
		{
			ID:         "3",
			Text:       "How much wood would a woodchuck chuck if a woodchuck could chuck wood?",
			Difficulty: "medium",
		},
	}
}

// DefaultSudoku builds the built-in 9x9 puzzle with 24 given cells.
func DefaultSudoku() *SudokuPuzzle {
	grid := make([][]SudokuCell, 9)
	for row := range grid {
		grid[row] = make([]SudokuCell, 9)
	}

	initialCells := [][3]int{
		{0, 1, 5}, {0, 3, 8}, {0, 5, 4}, {0, 7, 2},
		{1, 2, 4}, {1, 6, 5},
		{2, 0, 8}, {2, 8, 1},
		{3, 2, 8}, {3, 4, 7}, {3, 6, 1},
		{4, 0, 6}, {4, 8, 7},
		{5, 2, 1}, {5, 4, 9}, {5, 6, 8},
		{6, 0, 7}, {6, 8, 4},
		{7, 2, 5}, {7, 6, 9},
		{8, 1, 9}, {8, 3, 5}, {8, 5, 3}, {8, 7, 8},
	}
	for _, c := range initialCells {
		value := c[2]
		grid[c[0]][c[1]] = SudokuCell{Value: &value, IsOriginal: true}
	}

	return &SudokuPuzzle{Grid: grid}
}

// DefaultCrossword builds the built-in 10x10 puzzle with three clues.
func DefaultCrossword() *CrosswordPuzzle {
	grid := make([][]CrosswordCell, 10)
	for row := range grid {
		grid[row] = make([]CrosswordCell, 10)
	}

	blackCells := [][2]int{
		{0, 3}, {0, 7},
		{1, 3}, {1, 7},
		{2, 3}, {2, 7},
		{3, 0}, {3, 1}, {3, 2}, {3, 6}, {3, 7}, {3, 8}, {3, 9},
		{4, 3}, {4, 7},
		{5, 3}, {5, 7},
		{6, 0}, {6, 1}, {6, 2}, {6, 6}, {6, 7}, {6, 8}, {6, 9},
		{7, 3}, {7, 7},
		{8, 3}, {8, 7},
		{9, 3}, {9, 7},
	}
	for _, c := range blackCells {
		grid[c[0]][c[1]].IsBlack = true
	}

	clueNumbers := []struct {
		row, col, number int
	}{
		{0, 0, 1}, // TESLA
		{0, 4, 2}, // CHATGPT
		{4, 0, 3}, // BITCOIN
	}
	for _, c := range clueNumbers {
		number := c.number
		grid[c.row][c.col].ClueNumber = &number
	}

	return &CrosswordPuzzle{
		Grid: grid,
		Clues: []CrosswordClue{
			{
				Number:           1,
				Text:             "Company led by Elon Musk that builds electric vehicles",
				Orientation:      "across",
				Answer:           "TESLA",
				RelatedArticleID: "1",
			},
			{
				Number:           2,
				Text:             "Artificial intelligence chatbot developed by OpenAI",
				Orientation:      "down",
				Answer:           "CHATGPT",
				RelatedArticleID: "2",
			},
			{
				Number:           3,
				Text:             "Digital currency based on blockchain technology",
				Orientation:      "across",
				Answer:           "BITCOIN",
				RelatedArticleID: "3",
			},
		},
		Size: 10,
	}
}
