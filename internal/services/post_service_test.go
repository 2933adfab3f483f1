package services

import (
	"testing"

	"blogapi/internal/apperr"
)

func TestCreateRequiresExistingUser(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.posts.Create(PostRequest{Title: "A", Content: "B"}, 99)
	if err == nil {
		t.Fatal("expected error for missing user")
	}
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("got kind %v, want NotFound", apperr.KindOf(err))
	}
}

func TestCreateThenToggleTwice(t *testing.T) {
	env := newTestEnv(t)
	user := env.user(t, "alice", "alice@example.com")

	post, err := env.posts.Create(PostRequest{Title: "A", Content: "B"}, user.ID)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(post.Likes) != 0 {
		t.Errorf("new post has likes %v, want empty", post.Likes)
	}
	if post.Username != "alice" {
		t.Errorf("got username %q, want alice", post.Username)
	}

	result, err := env.posts.ToggleLike(post.ID, 7)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if result.Action != "like" || result.LikeCount != 1 || !result.UserHasLiked {
		t.Errorf("first toggle: got %+v, want like/1/true", result)
	}

	result, err = env.posts.ToggleLike(post.ID, 7)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if result.Action != "unlike" || result.LikeCount != 0 || result.UserHasLiked {
		t.Errorf("second toggle: got %+v, want unlike/0/false", result)
	}
}

func TestToggleLikeUnknownPost(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.posts.ToggleLike(42, 7)
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("got %v, want NotFound", err)
	}
}

func TestAddLikeAlwaysReportsMembership(t *testing.T) {
	env := newTestEnv(t)
	user := env.user(t, "alice", "alice@example.com")
	post := env.post(t, user.ID, "A", "")

	for i := 0; i < 2; i++ {
		result, err := env.posts.AddLike(post.ID, 7)
		if err != nil {
			t.Fatalf("add %d: %v", i, err)
		}
		if !result.UserHasLiked || result.Action != "like" || result.LikeCount != 1 {
			t.Errorf("add %d: got %+v, want like/1/true", i, result)
		}
	}
}

func TestRemoveLikeNeverLiked(t *testing.T) {
	env := newTestEnv(t)
	user := env.user(t, "alice", "alice@example.com")
	post := env.post(t, user.ID, "A", "")

	result, err := env.posts.RemoveLike(post.ID, 7)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if result.UserHasLiked || result.Action != "unlike" || result.LikeCount != 0 {
		t.Errorf("got %+v, want unlike/0/false", result)
	}
}

func TestUpdateOnlyByOwner(t *testing.T) {
	env := newTestEnv(t)
	owner := env.user(t, "alice", "alice@example.com")
	other := env.user(t, "bob", "bob@example.com")
	post := env.post(t, owner.ID, "A", "tech")

	_, err := env.posts.Update(post.ID, PostRequest{Title: "X", Content: "Y"}, other.ID)
	if apperr.KindOf(err) != apperr.KindNotAuthorized {
		t.Errorf("got %v, want NotAuthorized", err)
	}

	updated, err := env.posts.Update(post.ID, PostRequest{Title: "X", Content: "Y"}, owner.ID)
	if err != nil {
		t.Fatalf("owner update: %v", err)
	}
	if updated.Title != "X" || updated.UserID != owner.ID {
		t.Errorf("got title=%q owner=%d, want X/%d", updated.Title, updated.UserID, owner.ID)
	}
	if !updated.CreatedAt.Equal(post.CreatedAt) {
		t.Errorf("created-at changed on update: %v -> %v", post.CreatedAt, updated.CreatedAt)
	}
}

func TestDeleteOnlyByOwner(t *testing.T) {
	env := newTestEnv(t)
	owner := env.user(t, "alice", "alice@example.com")
	other := env.user(t, "bob", "bob@example.com")
	post := env.post(t, owner.ID, "A", "")

	if err := env.posts.Delete(post.ID, other.ID); apperr.KindOf(err) != apperr.KindNotAuthorized {
		t.Errorf("got %v, want NotAuthorized", err)
	}
	if err := env.posts.Delete(post.ID, owner.ID); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	if _, err := env.posts.Get(post.ID, nil); apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("post still readable after delete: %v", err)
	}
}

func TestListCategoryWildcard(t *testing.T) {
	env := newTestEnv(t)
	user := env.user(t, "alice", "alice@example.com")
	env.post(t, user.ID, "A", "tech")
	env.post(t, user.ID, "B", "life")

	for _, token := range []string{"all", "ALL", "All", ""} {
		posts, err := env.posts.List(token, nil)
		if err != nil {
			t.Fatalf("list %q: %v", token, err)
		}
		if len(posts) != 2 {
			t.Errorf("list %q: got %d posts, want 2", token, len(posts))
		}
	}

	posts, err := env.posts.List("tech", nil)
	if err != nil {
		t.Fatalf("list tech: %v", err)
	}
	if len(posts) != 1 || posts[0].Title != "A" {
		t.Errorf("list tech: got %+v, want just A", posts)
	}
}

func TestListAnnotatesViewerMembership(t *testing.T) {
	env := newTestEnv(t)
	user := env.user(t, "alice", "alice@example.com")
	liked := env.post(t, user.ID, "A", "")
	env.post(t, user.ID, "B", "")

	viewer := uint(7)
	if _, err := env.posts.AddLike(liked.ID, viewer); err != nil {
		t.Fatalf("add like: %v", err)
	}

	posts, err := env.posts.List("", &viewer)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, p := range posts {
		want := p.ID == liked.ID
		if p.UserLiked != want {
			t.Errorf("post %d: got userLiked=%v, want %v", p.ID, p.UserLiked, want)
		}
	}

	// Without a viewer the annotation stays false.
	posts, err = env.posts.List("", nil)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, p := range posts {
		if p.UserLiked {
			t.Errorf("post %d: userLiked set without a viewer", p.ID)
		}
	}
}

func TestGetLikesInfoNoViewerDefaultsFalse(t *testing.T) {
	env := newTestEnv(t)
	user := env.user(t, "alice", "alice@example.com")
	post := env.post(t, user.ID, "A", "")
	if _, err := env.posts.AddLike(post.ID, 7); err != nil {
		t.Fatalf("add like: %v", err)
	}

	info, err := env.posts.GetLikesInfo(post.ID, nil)
	if err != nil {
		t.Fatalf("info: %v", err)
	}
	if info.LikeCount != 1 || info.UserHasLiked {
		t.Errorf("got %+v, want count 1, userHasLiked false", info)
	}

	viewer := uint(7)
	info, err = env.posts.GetLikesInfo(post.ID, &viewer)
	if err != nil {
		t.Fatalf("info: %v", err)
	}
	if !info.UserHasLiked {
		t.Error("viewer 7 should read as having liked")
	}
}

func TestListByUserChecksExistence(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.posts.ListByUser(99)
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("got %v, want NotFound", err)
	}
}
