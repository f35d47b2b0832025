package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"concentribe/internal/games"
)

func (s *Server) handleRiddles(c *gin.Context) {
	limit := intQuery(c, "limit", 10)
	c.JSON(http.StatusOK, s.games.Riddles(limit))
}

func (s *Server) handleTongueTwisters(c *gin.Context) {
	limit := intQuery(c, "limit", 10)
	c.JSON(http.StatusOK, s.games.TongueTwisters(limit))
}

func (s *Server) handleSudoku(c *gin.Context) {
	c.JSON(http.StatusOK, s.games.Sudoku())
}

func (s *Server) handleSudokuCheck(c *gin.Context) {
	var body struct {
		Grid [][]games.SudokuCell `json:"grid"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Grid == nil {
		fail(c, http.StatusBadRequest, "Grid is required")
		return
	}
	c.JSON(http.StatusOK, games.CheckSudoku(body.Grid))
}

func (s *Server) handleCrossword(c *gin.Context) {
	difficulty := c.DefaultQuery("difficulty", "medium")
	c.JSON(http.StatusOK, s.games.Crossword(difficulty))
}

func (s *Server) handleCrosswordCheck(c *gin.Context) {
	var body struct {
		PuzzleID    string              `json:"puzzleId"`
		UserAnswers map[string][]string `json:"userAnswers"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.PuzzleID == "" || body.UserAnswers == nil {
		fail(c, http.StatusBadRequest, "Puzzle ID and user answers are required")
		return
	}
	c.JSON(http.StatusOK, s.games.CheckCrosswordByID(body.PuzzleID, body.UserAnswers))
}
