package domain

type BlogRepository interface {
	Create(b *Blog) error
	// List returns blogs newest first.
	List() ([]Blog, error)
	FindBySlug(slug string) (*Blog, error)
	FindByID(id string) (*Blog, error)
	// Update applies the raw partial field map.
	Update(id string, fields map[string]any) (*Blog, error)
	Delete(id string) error
}

type ProjectRepository interface {
	Create(p *Project) error
	// List returns projects newest first.
	List() ([]Project, error)
	FindByID(id string) (*Project, error)
	// Update applies only recognized fields; callers pass a vetted map.
	Update(id string, fields map[string]any) (*Project, error)
	Delete(id string) error
}

type ProductRepository interface {
	// Create writes the current layout and falls back to the legacy
	// columns on a schema mismatch. The returned value is *Product or
	// *LegacyProduct depending on which write landed.
	Create(p *Product) (any, error)
	// ListPublic returns active products oldest first.
	ListPublic() ([]Product, error)
	// ListAdmin returns every product newest first.
	ListAdmin() ([]Product, error)
	FindByID(id string) (*Product, error)
	// Update applies the raw partial field map, with the same legacy
	// fallback as Create. As with Create, the returned value is
	// *Product or *LegacyProduct depending on which layout landed.
	Update(id string, fields map[string]any) (any, error)
	Delete(id string) error
}
