package database

// GetStats returns aggregate counts for the status command.
func (db *DB) GetStats() (*Stats, error) {
	s := &Stats{}
	counts := []struct {
		query string
		dest  *int
	}{
		{"SELECT COUNT(*) FROM users", &s.Users},
		{"SELECT COUNT(*) FROM articles", &s.Articles},
		{"SELECT COUNT(*) FROM bookmarks", &s.Bookmarks},
		{"SELECT COUNT(*) FROM badges", &s.Badges},
		{"SELECT COUNT(*) FROM games", &s.Games},
		{"SELECT COUNT(*) FROM communities", &s.Communities},
		{"SELECT COUNT(*) FROM community_posts", &s.Posts},
	}
	for _, c := range counts {
		if err := db.conn.QueryRow(c.query).Scan(c.dest); err != nil {
			return nil, err
		}
	}
	return s, nil
}
