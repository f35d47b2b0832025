package database

import "database/sql"

const communityColumns = "id, name, description, topics, image_url, created_at"

// InsertCommunity adds a community. Returns 0 if the name already exists.
func (db *DB) InsertCommunity(c *Community) (int64, error) {
	result, err := db.conn.Exec(
		`INSERT OR IGNORE INTO communities (name, description, topics, image_url)
		VALUES (?, ?, ?, ?)`,
		c.Name, c.Description, c.Topics, c.ImageURL,
	)
	if err != nil {
		return 0, err
	}
	n, err := result.RowsAffected()
	if err != nil || n == 0 {
		return 0, err
	}
	return result.LastInsertId()
}

// GetCommunities returns all communities.
func (db *DB) GetCommunities() ([]Community, error) {
	rows, err := db.conn.Query("SELECT " + communityColumns + " FROM communities ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCommunities(rows)
}

// GetCommunity returns a community by ID, or nil.
func (db *DB) GetCommunity(id int64) (*Community, error) {
	var c Community
	err := db.conn.QueryRow(
		"SELECT "+communityColumns+" FROM communities WHERE id = ?", id,
	).Scan(&c.ID, &c.Name, &c.Description, &c.Topics, &c.ImageURL, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetUserCommunities returns the communities a user has joined.
func (db *DB) GetUserCommunities(userID int64) ([]Community, error) {
	rows, err := db.conn.Query(
		`SELECT c.id, c.name, c.description, c.topics, c.image_url, c.created_at
		FROM communities c JOIN community_members m ON c.id = m.community_id
		WHERE m.user_id = ? ORDER BY c.id`, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCommunities(rows)
}

// JoinCommunity adds a user to a community. Joining twice is a no-op.
func (db *DB) JoinCommunity(userID, communityID int64) error {
	_, err := db.conn.Exec(
		"INSERT OR IGNORE INTO community_members (user_id, community_id) VALUES (?, ?)",
		userID, communityID,
	)
	return err
}

// LeaveCommunity removes a user's membership. Posts they authored remain.
func (db *DB) LeaveCommunity(userID, communityID int64) error {
	_, err := db.conn.Exec(
		"DELETE FROM community_members WHERE user_id = ? AND community_id = ?",
		userID, communityID,
	)
	return err
}

// IsMember reports whether the user belongs to the community.
func (db *DB) IsMember(userID, communityID int64) (bool, error) {
	var n int
	err := db.conn.QueryRow(
		"SELECT COUNT(*) FROM community_members WHERE user_id = ? AND community_id = ?",
		userID, communityID,
	).Scan(&n)
	return n > 0, err
}

// MemberCount returns the number of members in a community.
func (db *DB) MemberCount(communityID int64) (int, error) {
	var n int
	err := db.conn.QueryRow(
		"SELECT COUNT(*) FROM community_members WHERE community_id = ?", communityID,
	).Scan(&n)
	return n, err
}

// InsertPost adds a post to a community.
func (db *DB) InsertPost(p *CommunityPost) (int64, error) {
	result, err := db.conn.Exec(
		"INSERT INTO community_posts (community_id, user_id, title, content) VALUES (?, ?, ?, ?)",
		p.CommunityID, p.UserID, p.Title, p.Content,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// GetCommunityPosts returns posts in a community, newest first.
func (db *DB) GetCommunityPosts(communityID int64) ([]CommunityPost, error) {
	rows, err := db.conn.Query(
		`SELECT id, community_id, user_id, title, content, created_at
		FROM community_posts WHERE community_id = ? ORDER BY created_at DESC, id DESC`,
		communityID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPosts(rows)
}

// GetFeedPosts returns posts from all communities the user has joined,
// newest first.
func (db *DB) GetFeedPosts(userID int64) ([]CommunityPost, error) {
	rows, err := db.conn.Query(
		`SELECT p.id, p.community_id, p.user_id, p.title, p.content, p.created_at
		FROM community_posts p
		JOIN community_members m ON p.community_id = m.community_id
		WHERE m.user_id = ? ORDER BY p.created_at DESC, p.id DESC`, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPosts(rows)
}

// CountPosts returns the number of community posts.
func (db *DB) CountPosts() (int, error) {
	var n int
	err := db.conn.QueryRow("SELECT COUNT(*) FROM community_posts").Scan(&n)
	return n, err
}

func scanCommunities(rows *sql.Rows) ([]Community, error) {
	var communities []Community
	for rows.Next() {
		var c Community
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Topics, &c.ImageURL, &c.CreatedAt); err != nil {
			return nil, err
		}
		communities = append(communities, c)
	}
	return communities, rows.Err()
}

func scanPosts(rows *sql.Rows) ([]CommunityPost, error) {
	var posts []CommunityPost
	for rows.Next() {
		var p CommunityPost
		if err := rows.Scan(&p.ID, &p.CommunityID, &p.UserID, &p.Title, &p.Content, &p.CreatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}
