package database

// User represents a registered account.
type User struct {
	ID          int64
	Username    string
	Email       string
	Password    string
	Name        *string
	Avatar      *string
	Bio         *string
	GoogleID    *string
	Preferences *string // JSON blob of interests/sources/formats/focusDuration
	Streak      int
	LastVisit   *string // YYYY-MM-DD
	CreatedAt   *string
}

// Article represents a cached news article.
type Article struct {
	ID             int64
	APIID          string
	Title          string
	Description    *string
	Content        *string
	URL            string
	ImageURL       *string
	PublishedAt    *string
	SourceID       *string
	SourceName     *string
	Category       string
	ReadingTime    int
	ContentFetched bool
	CreatedAt      *string
}

// Badge is a static badge definition.
type Badge struct {
	ID              string
	Title           string
	Icon            *string
	BackgroundColor *string
	Description     *string
}

// UserBadge is a badge earned by a user.
type UserBadge struct {
	Badge
	EarnedAt *string
}

// Game is a stored mind-game payload tagged with its kind.
// The payload JSON is decoded by the games package.
type Game struct {
	ID         int64
	Kind       string // riddle, twister, sudoku, crossword
	Difficulty *string
	Payload    string
	CreatedAt  *string
}

// Community represents a discussion community.
type Community struct {
	ID          int64
	Name        string
	Description *string
	Topics      *string // JSON array
	ImageURL    *string
	CreatedAt   *string
}

// CommunityPost is a post in a community.
type CommunityPost struct {
	ID          int64
	CommunityID int64
	UserID      int64
	Title       string
	Content     string
	CreatedAt   *string
}

// Stats contains aggregate database statistics.
type Stats struct {
	Users       int
	Articles    int
	Bookmarks   int
	Badges      int
	Games       int
	Communities int
	Posts       int
}
