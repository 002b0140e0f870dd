package service

import (
	"time"

	"terravolt-cms/internal/domain"
	"terravolt-cms/pkg/utils"
)

type BlogInput struct {
	Title        string `json:"title"`
	Slug         string `json:"slug"`
	Excerpt      string `json:"excerpt"`
	Content      string `json:"content"`
	Image        string `json:"image"`
	Author       string `json:"author"`
	AuthorAvatar string `json:"authorAvatar"`
	Date         string `json:"date"`
}

type BlogService struct {
	blogs domain.BlogRepository
}

func NewBlogService(blogs domain.BlogRepository) *BlogService {
	return &BlogService{blogs: blogs}
}

// Create enforces the required field set in one pass. The slug is
// stored exactly as given; no normalization.
func (s *BlogService) Create(in BlogInput, actorID string) (*domain.Blog, error) {
	var missing []string
	for _, f := range []struct{ name, val string }{
		{"title", in.Title},
		{"slug", in.Slug},
		{"excerpt", in.Excerpt},
		{"content", in.Content},
		{"image", in.Image},
		{"date", in.Date},
	} {
		if f.val == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return nil, domain.NewValidationError(missing...)
	}
	now := time.Now()
	b := &domain.Blog{
		ID:           utils.NewID(),
		Title:        in.Title,
		Slug:         in.Slug,
		Excerpt:      in.Excerpt,
		Content:      in.Content,
		Image:        in.Image,
		Author:       in.Author,
		AuthorAvatar: in.AuthorAvatar,
		Date:         in.Date,
		CreatedAt:    now,
		UpdatedAt:    now,
		AuthorID:     actorID,
	}
	if err := s.blogs.Create(b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *BlogService) List() ([]domain.Blog, error) { return s.blogs.List() }

func (s *BlogService) GetBySlug(slug string) (*domain.Blog, error) {
	return s.blogs.FindBySlug(slug)
}

// Update applies the raw partial body.
func (s *BlogService) Update(id string, raw map[string]any) (*domain.Blog, error) {
	return s.blogs.Update(id, toColumnMap(raw))
}

func (s *BlogService) Delete(id string) error { return s.blogs.Delete(id) }
