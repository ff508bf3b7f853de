package application

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-blog-platform/internal/domain/entity"
)

type postFixture struct {
	svc        *PostService
	posts      *fakePostRepo
	categories *fakeCategoryRepo
	tags       *fakeTagRepo
	category   *entity.Category
}

func newPostFixture(t *testing.T) *postFixture {
	t.Helper()
	posts := newFakePostRepo()
	categories := newFakeCategoryRepo()
	tags := newFakeTagRepo()

	cat := &entity.Category{Name: "General", Slug: "general"}
	require.NoError(t, categories.Create(context.Background(), cat))

	return &postFixture{
		svc: &PostService{
			Posts:      posts,
			Categories: categories,
			Tags:       tags,
			Logger:     logrus.New(),
		},
		posts:      posts,
		categories: categories,
		tags:       tags,
		category:   cat,
	}
}

func (f *postFixture) addTag(t *testing.T, name, slug string) *entity.Tag {
	t.Helper()
	tag := &entity.Tag{Name: name, Slug: slug}
	require.NoError(t, f.tags.Create(context.Background(), tag))
	return tag
}

func TestCreatePostSlugFromTitle(t *testing.T) {
	f := newPostFixture(t)

	p, err := f.svc.Create(context.Background(), "user-a", CreatePostInput{
		Title:      "Hello World",
		Content:    "body",
		CategoryID: f.category.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "hello-world", p.Slug)
	assert.Equal(t, "user-a", p.UserID)
}

func TestCreatePostSlugCollision(t *testing.T) {
	f := newPostFixture(t)

	first, err := f.svc.Create(context.Background(), "user-a", CreatePostInput{
		Title: "Hello World", Content: "one", CategoryID: f.category.ID,
	})
	require.NoError(t, err)

	second, err := f.svc.Create(context.Background(), "user-b", CreatePostInput{
		Title: "Hello World", Content: "two", CategoryID: f.category.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, "hello-world", first.Slug)
	assert.NotEqual(t, first.Slug, second.Slug)
	assert.Contains(t, second.Slug, "hello-world-")
}

func TestCreatePostUnknownCategory(t *testing.T) {
	f := newPostFixture(t)

	_, err := f.svc.Create(context.Background(), "user-a", CreatePostInput{
		Title: "Hello", Content: "body", CategoryID: "missing",
	})
	assert.ErrorIs(t, err, ErrInvalidReference)
}

func TestCreatePostUnknownTag(t *testing.T) {
	f := newPostFixture(t)
	tag := f.addTag(t, "Go", "go")

	_, err := f.svc.Create(context.Background(), "user-a", CreatePostInput{
		Title: "Hello", Content: "body", CategoryID: f.category.ID,
		TagIDs: []string{tag.ID, "missing"},
	})
	assert.ErrorIs(t, err, ErrInvalidReference)
}

func TestUpdatePostKeepsSlugWhenTitleUnchanged(t *testing.T) {
	f := newPostFixture(t)

	p, err := f.svc.Create(context.Background(), "user-a", CreatePostInput{
		Title: "Hello World", Content: "body", CategoryID: f.category.ID,
	})
	require.NoError(t, err)

	updated, err := f.svc.Update(context.Background(), "user-a", UpdatePostInput{
		ID: p.ID, Title: "Hello World", Content: "edited", CategoryID: f.category.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, p.Slug, updated.Slug)
	assert.Equal(t, "edited", updated.Content)
}

func TestUpdatePostReslugsOnTitleChange(t *testing.T) {
	f := newPostFixture(t)

	p, err := f.svc.Create(context.Background(), "user-a", CreatePostInput{
		Title: "Hello World", Content: "body", CategoryID: f.category.ID,
	})
	require.NoError(t, err)

	updated, err := f.svc.Update(context.Background(), "user-a", UpdatePostInput{
		ID: p.ID, Title: "Goodbye World", Content: "body", CategoryID: f.category.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "goodbye-world", updated.Slug)
}

func TestUpdatePostTagDiff(t *testing.T) {
	f := newPostFixture(t)
	a := f.addTag(t, "Go", "go")
	b := f.addTag(t, "Web", "web")

	p, err := f.svc.Create(context.Background(), "user-a", CreatePostInput{
		Title: "Hello", Content: "body", CategoryID: f.category.ID, TagIDs: []string{a.ID},
	})
	require.NoError(t, err)

	updated, err := f.svc.Update(context.Background(), "user-a", UpdatePostInput{
		ID: p.ID, Title: "Hello", Content: "body", CategoryID: f.category.ID, TagIDs: []string{b.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{b.ID}, updated.TagIDs)
}

func TestUpdatePostClearsTagsWhenOmitted(t *testing.T) {
	f := newPostFixture(t)
	a := f.addTag(t, "Go", "go")

	p, err := f.svc.Create(context.Background(), "user-a", CreatePostInput{
		Title: "Hello", Content: "body", CategoryID: f.category.ID, TagIDs: []string{a.ID},
	})
	require.NoError(t, err)

	// An update without tag_ids clears every relation; a nil slice must not
	// leave the old set behind.
	updated, err := f.svc.Update(context.Background(), "user-a", UpdatePostInput{
		ID: p.ID, Title: "Hello", Content: "body", CategoryID: f.category.ID, TagIDs: nil,
	})
	require.NoError(t, err)
	assert.Empty(t, updated.TagIDs)

	stored, err := f.posts.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.TagIDs)
}

func TestUpdatePostForbiddenForNonAuthor(t *testing.T) {
	f := newPostFixture(t)

	p, err := f.svc.Create(context.Background(), "user-a", CreatePostInput{
		Title: "Hello", Content: "body", CategoryID: f.category.ID,
	})
	require.NoError(t, err)

	_, err = f.svc.Update(context.Background(), "user-b", UpdatePostInput{
		ID: p.ID, Title: "Hijacked", Content: "body", CategoryID: f.category.ID,
	})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestDeletePost(t *testing.T) {
	f := newPostFixture(t)

	p, err := f.svc.Create(context.Background(), "user-a", CreatePostInput{
		Title: "Hello", Content: "body", CategoryID: f.category.ID,
	})
	require.NoError(t, err)

	_, err = f.svc.Delete(context.Background(), "user-b", p.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = f.svc.Delete(context.Background(), "user-a", p.ID)
	require.NoError(t, err)

	_, err = f.svc.GetBySlug(context.Background(), p.Slug)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetBySlugNotFound(t *testing.T) {
	f := newPostFixture(t)

	_, err := f.svc.GetBySlug(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSearchWithoutES(t *testing.T) {
	f := newPostFixture(t)

	hits, err := f.svc.Search(context.Background(), "anything", 10)
	require.NoError(t, err)
	assert.Empty(t, hits)
}
