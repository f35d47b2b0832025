package database

// AddBookmark bookmarks an article for a user. Adding the same bookmark
// twice is a no-op.
func (db *DB) AddBookmark(userID, articleID int64) error {
	_, err := db.conn.Exec(
		"INSERT OR IGNORE INTO bookmarks (user_id, article_id) VALUES (?, ?)",
		userID, articleID,
	)
	return err
}

// RemoveBookmark deletes a bookmark. Returns false if it didn't exist.
func (db *DB) RemoveBookmark(userID, articleID int64) (bool, error) {
	result, err := db.conn.Exec(
		"DELETE FROM bookmarks WHERE user_id = ? AND article_id = ?",
		userID, articleID,
	)
	if err != nil {
		return false, err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// GetBookmarkedArticles returns a user's bookmarked articles, newest bookmark first.
func (db *DB) GetBookmarkedArticles(userID int64) ([]Article, error) {
	rows, err := db.conn.Query(
		`SELECT a.id, a.api_id, a.title, a.description, a.content, a.url, a.image_url,
			a.published_at, a.source_id, a.source_name, a.category, a.reading_time,
			a.content_fetched, a.created_at
		FROM articles a JOIN bookmarks b ON a.id = b.article_id
		WHERE b.user_id = ? ORDER BY b.created_at DESC`, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanArticles(rows)
}

// IsBookmarked reports whether the user has bookmarked the article.
func (db *DB) IsBookmarked(userID, articleID int64) (bool, error) {
	var n int
	err := db.conn.QueryRow(
		"SELECT COUNT(*) FROM bookmarks WHERE user_id = ? AND article_id = ?",
		userID, articleID,
	).Scan(&n)
	return n > 0, err
}
