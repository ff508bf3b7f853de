package application

import (
	"context"
	"fmt"
	"sync"

	"github.com/oksasatya/go-blog-platform/internal/domain/entity"
	"github.com/oksasatya/go-blog-platform/internal/domain/repository"
)

// In-memory repository fakes. They mirror the Postgres implementations'
// contract: lookups that miss return repository.ErrNotFound, Create fills in
// the generated ID.

type idGen struct {
	mu sync.Mutex
	n  int
}

func (g *idGen) next(prefix string) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("%s-%d", prefix, g.n)
}

var ids idGen

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u.ID = ids.next("user")
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) UpdateStatus(_ context.Context, id string, status entity.UserStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.Status = status
	return nil
}

func (r *fakeUserRepo) UpdatePassword(_ context.Context, id string, hash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.PasswordHash = hash
	return nil
}

type fakeTokenRepo struct {
	mu     sync.Mutex
	tokens map[string]*entity.Token
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: map[string]*entity.Token{}}
}

func (r *fakeTokenRepo) Put(_ context.Context, t *entity.Token) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *t
	r.tokens[t.Value] = &cp
	return nil
}

func (r *fakeTokenRepo) Get(_ context.Context, value string) (*entity.Token, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tokens[value]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *fakeTokenRepo) DeleteAllForUser(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for v, t := range r.tokens {
		if t.UserID == userID {
			delete(r.tokens, v)
		}
	}
	return nil
}

func (r *fakeTokenRepo) Rotate(_ context.Context, userID string, tokens ...*entity.Token) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for v, t := range r.tokens {
		if t.UserID == userID {
			delete(r.tokens, v)
		}
	}
	for _, t := range tokens {
		cp := *t
		r.tokens[t.Value] = &cp
	}
	return nil
}

func (r *fakeTokenRepo) countForUser(userID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, t := range r.tokens {
		if t.UserID == userID {
			n++
		}
	}
	return n
}

type fakePostRepo struct {
	mu    sync.Mutex
	posts map[string]*entity.Post
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: map[string]*entity.Post{}}
}

func (r *fakePostRepo) List(_ context.Context) ([]*entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Post, 0, len(r.posts))
	for _, p := range r.posts {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakePostRepo) GetByID(_ context.Context, id string) (*entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakePostRepo) GetBySlug(_ context.Context, slug string) (*entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.posts {
		if p.Slug == slug {
			cp := *p
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakePostRepo) Create(_ context.Context, p *entity.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.ID = ids.next("post")
	cp := *p
	r.posts[p.ID] = &cp
	return nil
}

func (r *fakePostRepo) Update(_ context.Context, p *entity.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.posts[p.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *p
	r.posts[p.ID] = &cp
	return nil
}

func (r *fakePostRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.posts[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.posts, id)
	return nil
}

func (r *fakePostRepo) SetCoverURL(_ context.Context, id string, url string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[id]
	if !ok {
		return repository.ErrNotFound
	}
	p.CoverURL = url
	return nil
}

type fakeCategoryRepo struct {
	mu   sync.Mutex
	cats map[string]*entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{cats: map[string]*entity.Category{}}
}

func (r *fakeCategoryRepo) List(_ context.Context) ([]*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Category, 0, len(r.cats))
	for _, c := range r.cats {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeCategoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.cats[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCategoryRepo) GetBySlug(_ context.Context, slug string) (*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.cats {
		if c.Slug == slug {
			cp := *c
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c.ID = ids.next("cat")
	cp := *c
	r.cats[c.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, c *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.cats[c.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *c
	r.cats[c.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.cats[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.cats, id)
	return nil
}

type fakeTagRepo struct {
	mu   sync.Mutex
	tags map[string]*entity.Tag
}

func newFakeTagRepo() *fakeTagRepo {
	return &fakeTagRepo{tags: map[string]*entity.Tag{}}
}

func (r *fakeTagRepo) List(_ context.Context) ([]*entity.Tag, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Tag, 0, len(r.tags))
	for _, t := range r.tags {
		cp := *t
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeTagRepo) GetByID(_ context.Context, id string) (*entity.Tag, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tags[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *fakeTagRepo) GetByIDs(_ context.Context, idsIn []string) ([]*entity.Tag, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Tag, 0, len(idsIn))
	for _, id := range idsIn {
		if t, ok := r.tags[id]; ok {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeTagRepo) GetBySlug(_ context.Context, slug string) (*entity.Tag, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.tags {
		if t.Slug == slug {
			cp := *t
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeTagRepo) Create(_ context.Context, t *entity.Tag) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t.ID = ids.next("tag")
	cp := *t
	r.tags[t.ID] = &cp
	return nil
}

func (r *fakeTagRepo) Update(_ context.Context, t *entity.Tag) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tags[t.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *t
	r.tags[t.ID] = &cp
	return nil
}

func (r *fakeTagRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tags[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.tags, id)
	return nil
}

type fakeCommentRepo struct {
	mu       sync.Mutex
	comments map[string]*entity.Comment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: map[string]*entity.Comment{}}
}

func (r *fakeCommentRepo) ListByPost(_ context.Context, postID string) ([]*entity.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*entity.Comment{}
	for _, c := range r.comments {
		if c.PostID == postID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeCommentRepo) GetByID(_ context.Context, id string) (*entity.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.comments[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCommentRepo) Create(_ context.Context, c *entity.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c.ID = ids.next("comment")
	cp := *c
	r.comments[c.ID] = &cp
	return nil
}

func (r *fakeCommentRepo) UpdateContent(_ context.Context, id string, content string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.comments[id]
	if !ok {
		return repository.ErrNotFound
	}
	c.Content = content
	return nil
}

func (r *fakeCommentRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.comments[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.comments, id)
	return nil
}

// recordNotifier captures the tokens the auth workflow hands out, so tests
// can walk the confirm and reset flows.
type recordNotifier struct {
	mu               sync.Mutex
	activationTokens []string
	resetTokens      []string
}

func (n *recordNotifier) SendActivation(_ context.Context, _, _, token string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.activationTokens = append(n.activationTokens, token)
	return nil
}

func (n *recordNotifier) SendPasswordReset(_ context.Context, _, _, token string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.resetTokens = append(n.resetTokens, token)
	return nil
}

func (n *recordNotifier) lastActivation() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.activationTokens) == 0 {
		return ""
	}
	return n.activationTokens[len(n.activationTokens)-1]
}

func (n *recordNotifier) lastReset() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.resetTokens) == 0 {
		return ""
	}
	return n.resetTokens[len(n.resetTokens)-1]
}
