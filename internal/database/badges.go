package database

import "database/sql"

// InsertBadge adds a badge definition. Existing badges are left untouched.
func (db *DB) InsertBadge(b *Badge) error {
	_, err := db.conn.Exec(
		`INSERT OR IGNORE INTO badges (id, title, icon, background_color, description)
		VALUES (?, ?, ?, ?, ?)`,
		b.ID, b.Title, b.Icon, b.BackgroundColor, b.Description,
	)
	return err
}

// GetBadges returns all badge definitions.
func (db *DB) GetBadges() ([]Badge, error) {
	rows, err := db.conn.Query(
		"SELECT id, title, icon, background_color, description FROM badges ORDER BY id",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBadges(rows)
}

// GetBadge returns a badge definition by ID, or nil if unknown.
func (db *DB) GetBadge(id string) (*Badge, error) {
	var b Badge
	err := db.conn.QueryRow(
		"SELECT id, title, icon, background_color, description FROM badges WHERE id = ?", id,
	).Scan(&b.ID, &b.Title, &b.Icon, &b.BackgroundColor, &b.Description)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// AwardBadge grants a badge to a user. Awarding the same badge twice is a
// no-op, so callers may retry freely.
func (db *DB) AwardBadge(userID int64, badgeID string) error {
	_, err := db.conn.Exec(
		"INSERT OR IGNORE INTO user_badges (user_id, badge_id) VALUES (?, ?)",
		userID, badgeID,
	)
	return err
}

// GetUserBadges returns the badges a user has earned, newest first.
func (db *DB) GetUserBadges(userID int64) ([]UserBadge, error) {
	rows, err := db.conn.Query(
		`SELECT b.id, b.title, b.icon, b.background_color, b.description, ub.earned_at
		FROM badges b JOIN user_badges ub ON b.id = ub.badge_id
		WHERE ub.user_id = ? ORDER BY ub.earned_at DESC`, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var badges []UserBadge
	for rows.Next() {
		var ub UserBadge
		if err := rows.Scan(&ub.ID, &ub.Title, &ub.Icon, &ub.BackgroundColor,
			&ub.Description, &ub.EarnedAt); err != nil {
			return nil, err
		}
		badges = append(badges, ub)
	}
	return badges, rows.Err()
}

func scanBadges(rows *sql.Rows) ([]Badge, error) {
	var badges []Badge
	for rows.Next() {
		var b Badge
		if err := rows.Scan(&b.ID, &b.Title, &b.Icon, &b.BackgroundColor, &b.Description); err != nil {
			return nil, err
		}
		badges = append(badges, b)
	}
	return badges, rows.Err()
}
