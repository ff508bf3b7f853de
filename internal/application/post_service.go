package application

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-blog-platform/internal/domain/entity"
	"github.com/oksasatya/go-blog-platform/internal/domain/repository"
	"github.com/oksasatya/go-blog-platform/pkg/helpers"
)

const postListCacheKey = "posts:all"

// PostService implements post CRUD with slug generation, tag-relation
// diffing and author-only mutation. The Redis list cache and the
// Elasticsearch index are best-effort side channels: failures are logged and
// never fail the request.
type PostService struct {
	Posts      repository.PostRepository
	Categories repository.CategoryRepository
	Tags       repository.TagRepository
	Redis      *redis.Client
	Logger     *logrus.Logger
	ES         *elasticsearch.Client
	ESIndex    string
	GCS        *storage.Client
	GCSBucket  string
	CacheTTL   time.Duration
}

type CreatePostInput struct {
	Title      string
	Content    string
	CategoryID string
	TagIDs     []string
}

type UpdatePostInput struct {
	ID         string
	Title      string
	Content    string
	CategoryID string
	TagIDs     []string
}

// List serves from the Redis cache when possible and falls back to Postgres.
func (s *PostService) List(ctx context.Context) ([]*entity.Post, error) {
	if s.Redis != nil {
		var cached []*entity.Post
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, postListCacheKey, &cached); err == nil && ok {
			return cached, nil
		}
	}
	posts, err := s.Posts.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, s.Redis, postListCacheKey, posts, s.CacheTTL); err != nil {
			s.Logger.WithError(err).Warn("post list cache write failed")
		}
	}
	return posts, nil
}

func (s *PostService) GetBySlug(ctx context.Context, slug string) (*entity.Post, error) {
	p, err := s.Posts.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *PostService) Create(ctx context.Context, userID string, in CreatePostInput) (*entity.Post, error) {
	if err := s.checkRefs(ctx, in.CategoryID, in.TagIDs); err != nil {
		return nil, err
	}

	slug, err := s.uniqueSlug(ctx, in.Title, "")
	if err != nil {
		return nil, err
	}

	p := &entity.Post{
		Title:      in.Title,
		Slug:       slug,
		Content:    in.Content,
		CategoryID: in.CategoryID,
		UserID:     userID,
		TagIDs:     in.TagIDs,
	}
	if err := s.Posts.Create(ctx, p); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	s.index(ctx, p)
	return p, nil
}

func (s *PostService) Update(ctx context.Context, userID string, in UpdatePostInput) (*entity.Post, error) {
	p, err := s.Posts.GetByID(ctx, in.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if p.UserID != userID {
		return nil, ErrForbidden
	}
	if err := s.checkRefs(ctx, in.CategoryID, in.TagIDs); err != nil {
		return nil, err
	}

	// Re-slug only when the title actually changed.
	if in.Title != p.Title {
		slug, err := s.uniqueSlug(ctx, in.Title, p.ID)
		if err != nil {
			return nil, err
		}
		p.Slug = slug
	}
	p.Title = in.Title
	p.Content = in.Content
	p.CategoryID = in.CategoryID
	p.TagIDs = in.TagIDs

	if err := s.Posts.Update(ctx, p); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	s.index(ctx, p)
	return p, nil
}

func (s *PostService) Delete(ctx context.Context, userID, id string) (*entity.Post, error) {
	p, err := s.Posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if p.UserID != userID {
		return nil, ErrForbidden
	}
	if err := s.Posts.Delete(ctx, id); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	s.deindex(ctx, id)
	return p, nil
}

// UploadCover stores the image in GCS and records its public URL on the post.
func (s *PostService) UploadCover(ctx context.Context, userID, id string, r io.Reader, filename, contentType string) (string, error) {
	p, err := s.Posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	if p.UserID != userID {
		return "", ErrForbidden
	}
	if s.GCS == nil || s.GCSBucket == "" {
		return "", errors.New("gcs not configured")
	}

	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("covers", p.ID, uuid.NewString()+ext))
	url, err := helpers.UploadImageToGCS(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
	if err != nil {
		return "", err
	}
	if err := s.Posts.SetCoverURL(ctx, p.ID, url); err != nil {
		return "", err
	}
	s.invalidateCache(ctx)
	return url, nil
}

// Search performs a multi_match query over title and content.
func (s *PostService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"title^2", "content"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}

func (s *PostService) checkRefs(ctx context.Context, categoryID string, tagIDs []string) error {
	if len(tagIDs) > 0 {
		tags, err := s.Tags.GetByIDs(ctx, tagIDs)
		if err != nil {
			return err
		}
		if len(tags) != len(tagIDs) {
			return ErrInvalidReference
		}
	}
	if _, err := s.Categories.GetByID(ctx, categoryID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrInvalidReference
		}
		return err
	}
	return nil
}

// uniqueSlug derives a slug from the title and appends a random suffix when
// another post already owns it.
func (s *PostService) uniqueSlug(ctx context.Context, title, selfID string) (string, error) {
	slug := helpers.Slugify(title)
	existing, err := s.Posts.GetBySlug(ctx, slug)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return "", err
	}
	if existing != nil && existing.ID != selfID {
		slug = helpers.SlugWithSuffix(title)
	}
	return slug, nil
}

func (s *PostService) invalidateCache(ctx context.Context) {
	if s.Redis == nil {
		return
	}
	if err := helpers.RedisDel(ctx, s.Redis, postListCacheKey); err != nil {
		s.Logger.WithError(err).Warn("post list cache invalidation failed")
	}
}

func (s *PostService) index(ctx context.Context, p *entity.Post) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	doc := map[string]any{
		"id":          p.ID,
		"title":       p.Title,
		"slug":        p.Slug,
		"content":     p.Content,
		"category_id": p.CategoryID,
		"user_id":     p.UserID,
		"created_at":  p.CreatedAt.Format(time.RFC3339Nano),
		"updated_at":  p.UpdatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESIndex, DocumentID: p.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		s.Logger.WithError(err).WithField("post_id", p.ID).Warn("es index failed")
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		s.Logger.WithField("status", res.Status()).WithField("post_id", p.ID).Warn("es index response error")
	}
}

func (s *PostService) deindex(ctx context.Context, id string) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESIndex, DocumentID: id}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		s.Logger.WithError(err).WithField("post_id", id).Warn("es delete failed")
		return
	}
	_ = res.Body.Close()
}
