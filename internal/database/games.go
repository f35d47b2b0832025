package database

import "database/sql"

// InsertGame stores a game payload under its kind tag.
func (db *DB) InsertGame(kind string, difficulty *string, payload string) (int64, error) {
	result, err := db.conn.Exec(
		"INSERT INTO games (kind, difficulty, payload) VALUES (?, ?, ?)",
		kind, difficulty, payload,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// GetGamesByKind returns stored games of one kind, oldest first.
func (db *DB) GetGamesByKind(kind string, limit int) ([]Game, error) {
	rows, err := db.conn.Query(
		`SELECT id, kind, difficulty, payload, created_at FROM games
		WHERE kind = ? ORDER BY id LIMIT ?`, kind, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var games []Game
	for rows.Next() {
		var g Game
		if err := rows.Scan(&g.ID, &g.Kind, &g.Difficulty, &g.Payload, &g.CreatedAt); err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	return games, rows.Err()
}

// GetGameByKind returns the first stored game of a kind, or nil.
func (db *DB) GetGameByKind(kind string) (*Game, error) {
	var g Game
	err := db.conn.QueryRow(
		`SELECT id, kind, difficulty, payload, created_at FROM games
		WHERE kind = ? ORDER BY id LIMIT 1`, kind,
	).Scan(&g.ID, &g.Kind, &g.Difficulty, &g.Payload, &g.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// GetGameByID returns a stored game by row ID, or nil.
func (db *DB) GetGameByID(id int64) (*Game, error) {
	var g Game
	err := db.conn.QueryRow(
		"SELECT id, kind, difficulty, payload, created_at FROM games WHERE id = ?", id,
	).Scan(&g.ID, &g.Kind, &g.Difficulty, &g.Payload, &g.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// CountGames returns the number of stored games.
func (db *DB) CountGames() (int, error) {
	var n int
	err := db.conn.QueryRow("SELECT COUNT(*) FROM games").Scan(&n)
	return n, err
}
