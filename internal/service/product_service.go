package service

import (
	"time"

	"terravolt-cms/internal/domain"
	"terravolt-cms/pkg/utils"
)

type ProductInput struct {
	Title    string          `json:"title"`
	Text     string          `json:"text"`
	Image    string          `json:"image"`
	Icons    []string        `json:"icons"`
	Details  string          `json:"details"`
	PDFs     []domain.PDFRef `json:"pdfs"`
	IsActive *bool           `json:"isActive"`
}

type ProductService struct {
	products domain.ProductRepository
}

func NewProductService(products domain.ProductRepository) *ProductService {
	return &ProductService{products: products}
}

// Create validates against the current layout, then lets the repo fall
// back to the legacy columns when the store predates the rename. The
// returned value carries whichever field names actually landed.
func (s *ProductService) Create(in ProductInput, actorID string) (any, error) {
	var invalid []string
	if in.Title == "" {
		invalid = append(invalid, "title")
	}
	if in.Text == "" {
		invalid = append(invalid, "text")
	}
	if in.Image == "" {
		invalid = append(invalid, "image")
	}
	if len(in.Icons) == 0 {
		invalid = append(invalid, "icons")
	} else {
		for _, ic := range in.Icons {
			if !domain.ValidIcon(ic) {
				invalid = append(invalid, "icons")
				break
			}
		}
	}
	if len(invalid) > 0 {
		return nil, domain.NewValidationError(invalid...)
	}
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	now := time.Now()
	p := &domain.Product{
		ID:        utils.NewID(),
		Title:     in.Title,
		Text:      in.Text,
		Image:     in.Image,
		Icons:     in.Icons,
		Details:   in.Details,
		PDFs:      in.PDFs,
		IsActive:  active,
		CreatedAt: now,
		UpdatedAt: now,
		AuthorID:  actorID,
	}
	return s.products.Create(p)
}

func (s *ProductService) ListPublic() ([]domain.Product, error) {
	return s.products.ListPublic()
}

func (s *ProductService) ListAdmin() ([]domain.Product, error) {
	return s.products.ListAdmin()
}

func (s *ProductService) Get(id string) (*domain.Product, error) {
	return s.products.FindByID(id)
}

// Update applies the raw partial body; icon values, when present, must
// come from the fixed set. Like Create, the result carries whichever
// field names actually landed.
func (s *ProductService) Update(id string, raw map[string]any) (any, error) {
	if icons, ok := raw["icons"].([]any); ok {
		for _, v := range icons {
			name, _ := v.(string)
			if !domain.ValidIcon(name) {
				return nil, domain.NewValidationError("icons")
			}
		}
	}
	return s.products.Update(id, toColumnMap(raw))
}

func (s *ProductService) Delete(id string) error { return s.products.Delete(id) }
