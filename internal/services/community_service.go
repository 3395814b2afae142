// Package services – CommunityService
//
// This file implements the CommunityService, which manages the anonymous
// sharing feed: paginated listing (newest first), posting, a viewer-relative
// like toggle, and author-only deletion. Post content is normalized and
// length-capped here so the store only ever holds publishable text.
package services

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/maeum-app/cbt-journal-backend/internal/domain"
	"github.com/maeum-app/cbt-journal-backend/internal/utils"
)

// CommunityStore defines the store contract required by CommunityService.
type CommunityStore interface {
	AddCommunityPost(p domain.CommunityPost)
	CommunityPosts() []domain.CommunityPost
	CommunityPost(id string) (domain.CommunityPost, bool)
	TogglePostLike(id string) (domain.CommunityPost, bool)
	DeleteCommunityPost(id string) bool
}

// CommunityService provides feed operations.
type CommunityService struct {
	Store CommunityStore
	// ContentMaxLen caps post content by rune length.
	ContentMaxLen int
	Now           func() time.Time
}

// NewCommunityService constructs a CommunityService with sane defaults.
func NewCommunityService(st CommunityStore) *CommunityService {
	return &CommunityService{Store: st, ContentMaxLen: 500, Now: time.Now}
}

// ListPage returns a page of the feed, newest first, plus the total count.
// It applies defaults for invalid page/pageSize.
func (s *CommunityService) ListPage(ctx context.Context, page, pageSize int) ([]domain.CommunityPost, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	all := s.Store.CommunityPosts()
	total := int64(len(all))
	offset := (page - 1) * pageSize
	if offset >= len(all) {
		return []domain.CommunityPost{}, total, nil
	}
	endIdx := offset + pageSize
	if endIdx > len(all) {
		endIdx = len(all)
	}
	return all[offset:endIdx], total, nil
}

// Create publishes a post. Content is required and capped; a blank nickname
// falls back to the anonymous default.
func (s *CommunityService) Create(ctx context.Context, userID, nickname, content string) (*domain.CommunityPost, error) {
	content = utils.NormalizeText(content)
	if content == "" {
		return nil, ErrEmptyContent
	}
	if s.ContentMaxLen > 0 && utf8.RuneCountInString(content) > s.ContentMaxLen {
		return nil, ErrContentTooLong
	}
	nickname = utils.NormalizeText(nickname)
	if nickname == "" {
		nickname = "익명"
	}
	p := domain.CommunityPost{
		ID:        uuid.NewString(),
		UserID:    userID,
		Nickname:  nickname,
		Content:   content,
		CreatedAt: s.Now().UTC(),
	}
	s.Store.AddCommunityPost(p)
	return &p, nil
}

// ToggleLike flips the viewer's like on a post and returns the updated post.
func (s *CommunityService) ToggleLike(ctx context.Context, id string) (*domain.CommunityPost, error) {
	p, ok := s.Store.TogglePostLike(id)
	if !ok {
		return nil, ErrPostNotFound
	}
	return &p, nil
}

// Delete removes a post. Only the author may delete it.
func (s *CommunityService) Delete(ctx context.Context, userID, id string) error {
	p, ok := s.Store.CommunityPost(id)
	if !ok {
		return ErrPostNotFound
	}
	if p.UserID != userID {
		return ErrForbidden
	}
	if !s.Store.DeleteCommunityPost(id) {
		return ErrPostNotFound
	}
	return nil
}
