package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-blog-platform/internal/domain/entity"
)

func newCommentFixture(t *testing.T) (*CommentService, *entity.Post) {
	t.Helper()
	posts := newFakePostRepo()
	p := &entity.Post{Title: "Hello", Slug: "hello", Content: "body", UserID: "author"}
	require.NoError(t, posts.Create(context.Background(), p))
	return NewCommentService(newFakeCommentRepo(), posts), p
}

func TestAddCommentToUnknownPost(t *testing.T) {
	svc, _ := newCommentFixture(t)

	_, err := svc.Add(context.Background(), "user-a", "missing", "hi")
	assert.ErrorIs(t, err, ErrInvalidReference)
}

func TestAddAndListComments(t *testing.T) {
	svc, p := newCommentFixture(t)

	c, err := svc.Add(context.Background(), "user-a", p.ID, "first!")
	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)

	list, err := svc.ListByPost(context.Background(), p.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "first!", list[0].Content)
}

func TestListCommentsUnknownPost(t *testing.T) {
	svc, _ := newCommentFixture(t)

	_, err := svc.ListByPost(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrInvalidReference)
}

func TestUpdateCommentOwnership(t *testing.T) {
	svc, p := newCommentFixture(t)

	c, err := svc.Add(context.Background(), "user-a", p.ID, "original")
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), "user-b", c.ID, "hijacked")
	assert.ErrorIs(t, err, ErrForbidden)

	updated, err := svc.Update(context.Background(), "user-a", c.ID, "edited")
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Content)
}

func TestDeleteComment(t *testing.T) {
	svc, p := newCommentFixture(t)

	c, err := svc.Add(context.Background(), "user-a", p.ID, "bye")
	require.NoError(t, err)

	_, err = svc.Delete(context.Background(), "user-b", c.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Delete(context.Background(), "user-a", c.ID)
	require.NoError(t, err)

	_, err = svc.Delete(context.Background(), "user-a", c.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
