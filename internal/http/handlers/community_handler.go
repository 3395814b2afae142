// Community feed HTTP handlers.
//
// This file exposes REST endpoints for the anonymous sharing feed:
//   - GET    /feed            (list, paginated newest first, ETag support)
//   - POST   /feed            (publish a post)
//   - POST   /feed/{id}/like  (toggle the viewer's like)
//   - DELETE /feed/{id}      (author-only delete)
package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maeum-app/cbt-journal-backend/internal/domain"
	"github.com/maeum-app/cbt-journal-backend/internal/services"
)

// CreatePostRequest is the JSON payload for publishing a feed post.
type CreatePostRequest struct {
	// Content is the post body (1-500 characters after trimming).
	Content string `json:"content" binding:"required" example:"오늘은 산책을 다녀왔어요"`
	// Nickname optionally overrides the anonymous default.
	Nickname string `json:"nickname,omitempty" example:"희망이"`
}

// ListFeedResponse wraps a page of posts and pagination information.
type ListFeedResponse struct {
	Posts      []domain.CommunityPost `json:"posts"`
	Pagination Pagination             `json:"pagination"`
}

// ListFeed godoc
// @ID          listFeed
// @Summary     List community posts (paginated)
// @Description Returns a page of the feed, newest first. Supports weak ETag via If-None-Match and may return 304.
// @Tags        Feed
// @Produce     json
//
// @Param       X-User-ID      header  string  false "User ID (demo header)"       example(user123)
// @Param       If-None-Match  header  string  false "Return 304 if ETag matches"  example(W/\"feed:42\")
// @Param       page           query   int     false "Page number"                  minimum(1) default(1)
// @Param       page_size      query   int     false "Items per page"               minimum(1) maximum(100) default(20)
//
// @Success     200  {object} handlers.ListFeedResponse
// @Header      200  {string} ETag  "Weak ETag for current result"
// @Success     304  {string} string "Not Modified"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /feed [get]
func (h *Handlers) ListFeed(c *gin.Context) {
	page, pageSize := clampPagination(c)

	// ETag pre-check (best effort). The revision covers page content too, so
	// page/page_size join the tag.
	if rev, okRev := revisionOf(h.feedSvc); okRev {
		etag := fmt.Sprintf(`W/"feed:%d:%d:%d"`, rev, page, pageSize)
		c.Header("ETag", etag)
		if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
			c.Status(http.StatusNotModified)
			return
		}
	}

	posts, total, err := h.feedSvc.ListPage(c.Request.Context(), page, pageSize)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	ok(c, http.StatusOK, ListFeedResponse{
		Posts: posts,
		Pagination: Pagination{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
		},
	})
}

// CreatePost godoc
// @ID          createPost
// @Summary     Publish a community post
// @Description Publishes a post to the anonymous feed; a blank nickname falls back to the anonymous default.
// @Tags        Feed
// @Accept      json
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
// @Param       body       body    handlers.CreatePostRequest  true  "Post payload"
//
// @Success     201  {object} domain.CommunityPost
// @Failure     400  {object} handlers.ErrorResponse "Empty or oversized content"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /feed [post]
func (h *Handlers) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "content required")
		return
	}

	// Idempotency (replay path) - serve the previously created post.
	if h.replayMutation(c, feedScope, "", h.fetchCommunityPost) {
		return
	}

	post, err := h.feedSvc.Create(c.Request.Context(), userID(c), req.Nickname, req.Content)
	if err != nil {
		switch err {
		case services.ErrEmptyContent:
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "content required")
		case services.ErrContentTooLong:
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "content exceeds 500 characters")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		}
		return
	}

	// Idempotency (store path) - best effort.
	h.storeMutation(c, feedScope, post.ID, http.StatusCreated)

	ok(c, http.StatusCreated, post)
}

// ToggleLike godoc
// @ID          togglePostLike
// @Summary     Toggle a like on a post
// @Description Flips the viewer's like on a post and returns the updated post.
// @Tags        Feed
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
// @Param       id         path    string  true  "Post ID"
//
// @Success     200  {object} domain.CommunityPost
// @Failure     404  {object} handlers.ErrorResponse "Post not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /feed/{id}/like [post]
func (h *Handlers) ToggleLike(c *gin.Context) {
	// Idempotency (replay path) - return the post without flipping again.
	if h.replayMutation(c, feedScope, c.Param("id"), h.fetchCommunityPost) {
		return
	}

	post, err := h.feedSvc.ToggleLike(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch err {
		case services.ErrPostNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "post not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}

	// Idempotency (store path) - best effort.
	h.storeMutation(c, feedScope, post.ID, http.StatusOK)

	ok(c, http.StatusOK, post)
}

// DeletePost godoc
// @ID          deletePost
// @Summary     Delete a community post
// @Description Removes a post from the feed. Only the author may delete it.
// @Tags        Feed
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
// @Param       id         path    string  true  "Post ID"
//
// @Success     204  {string} string "No Content"
// @Failure     403  {object} handlers.ErrorResponse "Not the author"
// @Failure     404  {object} handlers.ErrorResponse "Post not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /feed/{id} [delete]
func (h *Handlers) DeletePost(c *gin.Context) {
	if err := h.feedSvc.Delete(c.Request.Context(), userID(c), c.Param("id")); err != nil {
		switch err {
		case services.ErrPostNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "post not found")
		case services.ErrForbidden:
			fail(c, http.StatusForbidden, ErrCodeForbidden, "only the author can delete this post")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	noContent(c)
}
