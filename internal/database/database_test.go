package database

import (
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func ptr(s string) *string { return &s }

func testArticle(apiID, category string) *Article {
	return &Article{
		APIID:       apiID,
		Title:       "Article " + apiID,
		Description: ptr("Description for " + apiID),
		URL:         "https://example.com/" + apiID,
		Category:    category,
		ReadingTime: 3,
	}
}

func TestCreateAndGetUser(t *testing.T) {
	db := openTestDB(t)
	id, err := db.CreateUser(&User{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "hash.salt",
		Name:     ptr("Alice"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id == 0 {
		t.Error("expected non-zero user ID")
	}

	user, err := db.GetUserByUsername("alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user == nil {
		t.Fatal("expected user")
	}
	if user.Email != "alice@example.com" {
		t.Errorf("expected email 'alice@example.com', got %q", user.Email)
	}
	if user.Streak != 0 {
		t.Errorf("expected streak 0, got %d", user.Streak)
	}

	missing, err := db.GetUserByUsername("nobody")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for unknown username")
	}
}

func TestDuplicateUsernameRejected(t *testing.T) {
	db := openTestDB(t)
	db.CreateUser(&User{Username: "bob", Email: "bob@example.com", Password: "x"})
	_, err := db.CreateUser(&User{Username: "bob", Email: "other@example.com", Password: "x"})
	if err == nil {
		t.Error("expected error for duplicate username")
	}
}

func TestUpdateStreak(t *testing.T) {
	db := openTestDB(t)
	id, _ := db.CreateUser(&User{Username: "carol", Email: "carol@example.com", Password: "x"})

	if err := db.UpdateStreak(id, 5, "2026-08-29"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	user, _ := db.GetUser(id)
	if user.Streak != 5 {
		t.Errorf("expected streak 5, got %d", user.Streak)
	}
	if user.LastVisit == nil || *user.LastVisit != "2026-08-29" {
		t.Error("expected last_visit to be updated")
	}
}

func TestLinkGoogleAccount(t *testing.T) {
	db := openTestDB(t)
	id, _ := db.CreateUser(&User{Username: "dave", Email: "dave@example.com", Password: "x"})

	if err := db.LinkGoogleAccount(id, "google-123", "https://avatar.example/d.png"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	user, _ := db.GetUserByGoogleID("google-123")
	if user == nil || user.ID != id {
		t.Fatal("expected user by google id")
	}
	if user.Avatar == nil || *user.Avatar != "https://avatar.example/d.png" {
		t.Error("expected avatar to be filled in")
	}
}

func TestInsertArticleAndDuplicate(t *testing.T) {
	db := openTestDB(t)
	id, err := db.InsertArticle(testArticle("abc", "technology"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id == 0 {
		t.Error("expected non-zero article ID")
	}

	dup, err := db.InsertArticle(testArticle("abc", "technology"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dup != 0 {
		t.Error("expected 0 for duplicate api_id")
	}
}

func TestGetArticlesByCategory(t *testing.T) {
	db := openTestDB(t)
	db.InsertArticle(testArticle("t1", "technology"))
	db.InsertArticle(testArticle("t2", "technology"))
	db.InsertArticle(testArticle("h1", "health"))

	tech, err := db.GetArticlesByCategory("technology", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tech) != 2 {
		t.Errorf("expected 2 technology articles, got %d", len(tech))
	}

	// "home" matches all categories
	all, _ := db.GetArticlesByCategory("home", 10)
	if len(all) != 3 {
		t.Errorf("expected 3 articles for home, got %d", len(all))
	}

	limited, _ := db.GetArticlesByCategory("home", 2)
	if len(limited) != 2 {
		t.Errorf("expected limit to apply, got %d", len(limited))
	}
}

func TestUpdateArticleContent(t *testing.T) {
	db := openTestDB(t)
	a := testArticle("nc", "technology")
	a.Description = nil
	id, _ := db.InsertArticle(a)

	needing, err := db.GetArticlesNeedingContent()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(needing) != 1 {
		t.Fatalf("expected 1 article needing content, got %d", len(needing))
	}

	if err := db.UpdateArticleContent(id, "Full text here", 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	article, _ := db.GetArticleByID(id)
	if article.Content == nil || *article.Content != "Full text here" {
		t.Error("expected content to be updated")
	}
	if article.ReadingTime != 2 {
		t.Errorf("expected reading time 2, got %d", article.ReadingTime)
	}
	if !article.ContentFetched {
		t.Error("expected content_fetched to be true")
	}

	needing, _ = db.GetArticlesNeedingContent()
	if len(needing) != 0 {
		t.Error("expected no articles needing content after update")
	}
}

func TestBookmarkLifecycle(t *testing.T) {
	db := openTestDB(t)
	userID, _ := db.CreateUser(&User{Username: "eve", Email: "eve@example.com", Password: "x"})
	articleID, _ := db.InsertArticle(testArticle("bm", "health"))

	if err := db.AddBookmark(userID, articleID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Bookmarking twice must not create a second row.
	if err := db.AddBookmark(userID, articleID); err != nil {
		t.Fatalf("unexpected error on repeat bookmark: %v", err)
	}

	bookmarked, err := db.GetBookmarkedArticles(userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bookmarked) != 1 {
		t.Fatalf("expected 1 bookmark, got %d", len(bookmarked))
	}

	removed, err := db.RemoveBookmark(userID, articleID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !removed {
		t.Error("expected bookmark to be removed")
	}

	removed, _ = db.RemoveBookmark(userID, articleID)
	if removed {
		t.Error("expected second remove to report missing bookmark")
	}
}

func TestAwardBadgeIdempotent(t *testing.T) {
	db := openTestDB(t)
	userID, _ := db.CreateUser(&User{Username: "frank", Email: "frank@example.com", Password: "x"})
	db.InsertBadge(&Badge{ID: "daily-streak", Title: "Daily Streak"})

	if err := db.AwardBadge(userID, "daily-streak"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := db.AwardBadge(userID, "daily-streak"); err != nil {
		t.Fatalf("unexpected error on repeat award: %v", err)
	}

	badges, err := db.GetUserBadges(userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(badges) != 1 {
		t.Errorf("expected 1 badge, got %d", len(badges))
	}
	if badges[0].EarnedAt == nil {
		t.Error("expected earned_at to be set")
	}
}

func TestGamesByKind(t *testing.T) {
	db := openTestDB(t)
	db.InsertGame("riddle", ptr("easy"), `{"question":"q1","answer":"a1"}`)
	db.InsertGame("riddle", ptr("medium"), `{"question":"q2","answer":"a2"}`)
	db.InsertGame("sudoku", ptr("medium"), `{"grid":[]}`)

	riddles, err := db.GetGamesByKind("riddle", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(riddles) != 2 {
		t.Errorf("expected 2 riddles, got %d", len(riddles))
	}

	sudoku, err := db.GetGameByKind("sudoku")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sudoku == nil {
		t.Fatal("expected sudoku game")
	}

	missing, _ := db.GetGameByKind("crossword")
	if missing != nil {
		t.Error("expected nil for missing kind")
	}
}

func TestInvalidGameKindRejected(t *testing.T) {
	db := openTestDB(t)
	if _, err := db.InsertGame("chess", nil, "{}"); err == nil {
		t.Error("expected CHECK constraint to reject unknown kind")
	}
}

func TestCommunityMembership(t *testing.T) {
	db := openTestDB(t)
	userID, _ := db.CreateUser(&User{Username: "gina", Email: "gina@example.com", Password: "x"})
	communityID, _ := db.InsertCommunity(&Community{Name: "Tech Enthusiasts"})

	if err := db.JoinCommunity(userID, communityID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Joining twice is a no-op.
	if err := db.JoinCommunity(userID, communityID); err != nil {
		t.Fatalf("unexpected error on repeat join: %v", err)
	}

	joined, _ := db.GetUserCommunities(userID)
	if len(joined) != 1 {
		t.Errorf("expected 1 joined community, got %d", len(joined))
	}
	count, _ := db.MemberCount(communityID)
	if count != 1 {
		t.Errorf("expected member count 1, got %d", count)
	}

	if err := db.LeaveCommunity(userID, communityID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	joined, _ = db.GetUserCommunities(userID)
	if len(joined) != 0 {
		t.Error("expected no joined communities after leaving")
	}
}

func TestLeaveKeepsPosts(t *testing.T) {
	db := openTestDB(t)
	userID, _ := db.CreateUser(&User{Username: "hank", Email: "hank@example.com", Password: "x"})
	communityID, _ := db.InsertCommunity(&Community{Name: "Science Explorers"})
	db.JoinCommunity(userID, communityID)

	db.InsertPost(&CommunityPost{
		CommunityID: communityID, UserID: userID,
		Title: "Hello", Content: "First post",
	})

	db.LeaveCommunity(userID, communityID)

	posts, err := db.GetCommunityPosts(communityID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(posts) != 1 {
		t.Errorf("expected post to survive leaving, got %d posts", len(posts))
	}
}

func TestFeedPostsOnlyFromJoined(t *testing.T) {
	db := openTestDB(t)
	userID, _ := db.CreateUser(&User{Username: "iris", Email: "iris@example.com", Password: "x"})
	joinedID, _ := db.InsertCommunity(&Community{Name: "Joined"})
	otherID, _ := db.InsertCommunity(&Community{Name: "Other"})
	db.JoinCommunity(userID, joinedID)

	db.InsertPost(&CommunityPost{CommunityID: joinedID, UserID: userID, Title: "In feed", Content: "yes"})
	db.InsertPost(&CommunityPost{CommunityID: otherID, UserID: userID, Title: "Not in feed", Content: "no"})

	feed, err := db.GetFeedPosts(userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(feed) != 1 {
		t.Fatalf("expected 1 feed post, got %d", len(feed))
	}
	if feed[0].Title != "In feed" {
		t.Errorf("expected 'In feed', got %q", feed[0].Title)
	}
}

func TestSeedIdempotent(t *testing.T) {
	db := openTestDB(t)
	if err := db.Seed("hash.salt"); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if err := db.Seed("hash.salt"); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	stats, err := db.GetStats()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Badges != 4 {
		t.Errorf("expected 4 badges, got %d", stats.Badges)
	}
	if stats.Communities != 10 {
		t.Errorf("expected 10 communities, got %d", stats.Communities)
	}
	if stats.Users != 1 {
		t.Errorf("expected 1 user, got %d", stats.Users)
	}
	if stats.Articles != 14 {
		t.Errorf("expected 14 seeded articles, got %d", stats.Articles)
	}
	if stats.Posts != 10 {
		t.Errorf("expected 10 posts, got %d", stats.Posts)
	}

	demo, _ := db.GetUserByUsername("demo")
	if demo == nil {
		t.Fatal("expected demo user")
	}
	joined, _ := db.GetUserCommunities(demo.ID)
	if len(joined) != 5 {
		t.Errorf("expected demo user in 5 communities, got %d", len(joined))
	}
}

func TestGetStats(t *testing.T) {
	db := openTestDB(t)
	stats, err := db.GetStats()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Articles != 0 || stats.Users != 0 {
		t.Error("expected empty stats on fresh db")
	}
}
