package database

import "database/sql"

const userColumns = `id, username, email, password, name, avatar, bio, google_id,
	preferences, streak, last_visit, created_at`

// CreateUser inserts a new user. Returns the ID on success.
func (db *DB) CreateUser(u *User) (int64, error) {
	result, err := db.conn.Exec(
		`INSERT INTO users (username, email, password, name, avatar, bio, google_id, preferences, streak, last_visit)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.Username, u.Email, u.Password, u.Name, u.Avatar, u.Bio, u.GoogleID,
		u.Preferences, u.Streak, u.LastVisit,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// GetUser returns a user by ID, or nil if not found.
func (db *DB) GetUser(id int64) (*User, error) {
	row := db.conn.QueryRow(`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

// GetUserByUsername returns a user by username, or nil if not found.
func (db *DB) GetUserByUsername(username string) (*User, error) {
	row := db.conn.QueryRow(`SELECT `+userColumns+` FROM users WHERE username = ?`, username)
	return scanUser(row)
}

// GetUserByEmail returns a user by email, or nil if not found.
func (db *DB) GetUserByEmail(email string) (*User, error) {
	row := db.conn.QueryRow(`SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	return scanUser(row)
}

// GetUserByGoogleID returns a user by their linked Google account, or nil.
func (db *DB) GetUserByGoogleID(googleID string) (*User, error) {
	row := db.conn.QueryRow(`SELECT `+userColumns+` FROM users WHERE google_id = ?`, googleID)
	return scanUser(row)
}

// UpdatePreferences replaces a user's preferences JSON.
func (db *DB) UpdatePreferences(userID int64, preferences string) error {
	_, err := db.conn.Exec("UPDATE users SET preferences = ? WHERE id = ?", preferences, userID)
	return err
}

// UpdateStreak persists a user's streak counter and last visit date.
func (db *DB) UpdateStreak(userID int64, streak int, lastVisit string) error {
	_, err := db.conn.Exec(
		"UPDATE users SET streak = ?, last_visit = ? WHERE id = ?",
		streak, lastVisit, userID,
	)
	return err
}

// LinkGoogleAccount stores a Google ID on an existing user, filling in the
// avatar when the account has none.
func (db *DB) LinkGoogleAccount(userID int64, googleID, avatar string) error {
	_, err := db.conn.Exec(
		`UPDATE users SET google_id = ?,
			avatar = CASE WHEN avatar IS NULL OR avatar = '' THEN ? ELSE avatar END
		WHERE id = ?`,
		googleID, avatar, userID,
	)
	return err
}

// CountUsers returns the number of registered users.
func (db *DB) CountUsers() (int, error) {
	var n int
	err := db.conn.QueryRow("SELECT COUNT(*) FROM users").Scan(&n)
	return n, err
}

func scanUser(row *sql.Row) (*User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.Password, &u.Name, &u.Avatar,
		&u.Bio, &u.GoogleID, &u.Preferences, &u.Streak, &u.LastVisit, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
