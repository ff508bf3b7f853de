package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagCreateAndSlugCollision(t *testing.T) {
	svc := NewTagService(newFakeTagRepo())

	a, err := svc.Create(context.Background(), "user-a", "Go Lang")
	require.NoError(t, err)
	assert.Equal(t, "go-lang", a.Slug)
	assert.Equal(t, "user-a", a.UserID)

	b, err := svc.Create(context.Background(), "user-b", "Go Lang")
	require.NoError(t, err)
	assert.NotEqual(t, a.Slug, b.Slug)
}

func TestTagUpdateNothingChanged(t *testing.T) {
	svc := NewTagService(newFakeTagRepo())

	tag, err := svc.Create(context.Background(), "user-a", "Go")
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), tag.ID, "Go")
	assert.ErrorIs(t, err, ErrNothingChanged)

	updated, err := svc.Update(context.Background(), tag.ID, "Golang")
	require.NoError(t, err)
	assert.Equal(t, "golang", updated.Slug)
}

func TestTagUpdateMissing(t *testing.T) {
	svc := NewTagService(newFakeTagRepo())

	_, err := svc.Update(context.Background(), "missing", "Go")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTagDelete(t *testing.T) {
	svc := NewTagService(newFakeTagRepo())

	tag, err := svc.Create(context.Background(), "user-a", "Go")
	require.NoError(t, err)

	deleted, err := svc.Delete(context.Background(), tag.ID)
	require.NoError(t, err)
	assert.Equal(t, tag.ID, deleted.ID)

	_, err = svc.Delete(context.Background(), tag.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCategoryCreateAndRename(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryRepo())

	cat, err := svc.Create(context.Background(), "Tech News")
	require.NoError(t, err)
	assert.Equal(t, "tech-news", cat.Slug)

	// Same name keeps the slug and does not error.
	same, err := svc.Update(context.Background(), cat.ID, "Tech News")
	require.NoError(t, err)
	assert.Equal(t, cat.Slug, same.Slug)

	renamed, err := svc.Update(context.Background(), cat.ID, "Engineering")
	require.NoError(t, err)
	assert.Equal(t, "engineering", renamed.Slug)
}

func TestCategoryDeleteMissing(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryRepo())

	_, err := svc.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
