package database

import "database/sql"

const articleColumns = `id, api_id, title, description, content, url, image_url,
	published_at, source_id, source_name, category, reading_time, content_fetched, created_at`

// InsertArticle caches an article. Returns the ID on success, 0 if the
// api_id is already cached.
func (db *DB) InsertArticle(a *Article) (int64, error) {
	result, err := db.conn.Exec(
		`INSERT OR IGNORE INTO articles
		(api_id, title, description, content, url, image_url, published_at, source_id, source_name, category, reading_time)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.APIID, a.Title, a.Description, a.Content, a.URL, a.ImageURL,
		a.PublishedAt, a.SourceID, a.SourceName, a.Category, a.ReadingTime,
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

// GetArticleByAPIID returns a cached article by its API identifier, or nil.
func (db *DB) GetArticleByAPIID(apiID string) (*Article, error) {
	row := db.conn.QueryRow(
		`SELECT `+articleColumns+` FROM articles WHERE api_id = ?`, apiID,
	)
	a, err := scanArticle(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

// GetArticleByID returns a cached article by row ID, or nil.
func (db *DB) GetArticleByID(id int64) (*Article, error) {
	row := db.conn.QueryRow(
		`SELECT `+articleColumns+` FROM articles WHERE id = ?`, id,
	)
	a, err := scanArticle(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

// GetArticlesByCategory returns cached articles for a category, newest first.
// The "home" category matches everything.
func (db *DB) GetArticlesByCategory(category string, limit int) ([]Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles`
	var args []any
	if category != "" && category != "home" {
		query += " WHERE category = ?"
		args = append(args, category)
	}
	query += " ORDER BY published_at DESC, id DESC LIMIT ?"
	args = append(args, limit)

	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanArticles(rows)
}

// GetArticlesNeedingContent returns cached articles with empty content that
// haven't had a fetch attempt yet.
func (db *DB) GetArticlesNeedingContent() ([]Article, error) {
	rows, err := db.conn.Query(
		`SELECT ` + articleColumns + ` FROM articles
		WHERE (content IS NULL OR content = '') AND content_fetched = 0
		ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanArticles(rows)
}

// UpdateArticleContent updates article content and reading time after fetching.
func (db *DB) UpdateArticleContent(articleID int64, content string, readingTime int) error {
	_, err := db.conn.Exec(
		"UPDATE articles SET content = ?, reading_time = ?, content_fetched = 1 WHERE id = ?",
		content, readingTime, articleID,
	)
	return err
}

// MarkArticleFetchAttempted marks that we tried to fetch content.
func (db *DB) MarkArticleFetchAttempted(articleID int64) error {
	_, err := db.conn.Exec(
		"UPDATE articles SET content_fetched = 1 WHERE id = ?", articleID,
	)
	return err
}

// CountArticles returns the number of cached articles.
func (db *DB) CountArticles() (int, error) {
	var n int
	err := db.conn.QueryRow("SELECT COUNT(*) FROM articles").Scan(&n)
	return n, err
}

func scanArticles(rows *sql.Rows) ([]Article, error) {
	var articles []Article
	for rows.Next() {
		var a Article
		var fetched int
		if err := rows.Scan(&a.ID, &a.APIID, &a.Title, &a.Description, &a.Content,
			&a.URL, &a.ImageURL, &a.PublishedAt, &a.SourceID, &a.SourceName,
			&a.Category, &a.ReadingTime, &fetched, &a.CreatedAt); err != nil {
			return nil, err
		}
		a.ContentFetched = fetched != 0
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

func scanArticle(row *sql.Row) (*Article, error) {
	var a Article
	var fetched int
	if err := row.Scan(&a.ID, &a.APIID, &a.Title, &a.Description, &a.Content,
		&a.URL, &a.ImageURL, &a.PublishedAt, &a.SourceID, &a.SourceName,
		&a.Category, &a.ReadingTime, &fetched, &a.CreatedAt); err != nil {
		return nil, err
	}
	a.ContentFetched = fetched != 0
	return &a, nil
}
