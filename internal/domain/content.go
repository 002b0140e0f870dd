package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// StringList stores a JSON-encoded string array in a TEXT column so the
// same model works on mysql, postgres and sqlite.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *StringList) Scan(src any) error {
	return scanJSON(src, l)
}

type PDFRef struct {
	Name string `json:"name"`
	File string `json:"file"`
}

type PDFList []PDFRef

func (l PDFList) Value() (driver.Value, error) {
	if l == nil {
		l = PDFList{}
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *PDFList) Scan(src any) error {
	return scanJSON(src, l)
}

func scanJSON(src, dst any) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		if len(v) == 0 {
			return nil
		}
		return json.Unmarshal(v, dst)
	case string:
		if v == "" {
			return nil
		}
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("unsupported column type %T", src)
	}
}

type Blog struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Title        string    `gorm:"size:255;not null" json:"title"`
	Slug         string    `gorm:"uniqueIndex;size:191;not null" json:"slug"`
	Excerpt      string    `gorm:"type:text" json:"excerpt"`
	Content      string    `gorm:"type:text" json:"content"`
	Image        string    `gorm:"size:512" json:"image"`
	Author       string    `gorm:"size:128" json:"author"`
	AuthorAvatar string    `gorm:"size:512" json:"authorAvatar"`
	Date         string    `gorm:"size:64" json:"date"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	AuthorID     string    `gorm:"size:36;index" json:"authorId"`
}

func (Blog) TableName() string { return "blogs" }

type Project struct {
	ID         string     `gorm:"primaryKey;size:36" json:"id"`
	Name       string     `gorm:"size:255;not null" json:"name"`
	Summary    string     `gorm:"type:text" json:"summary"`
	Date       string     `gorm:"size:64" json:"date"`
	Images     StringList `gorm:"type:text" json:"images"`
	Details    string     `gorm:"type:text" json:"details"`
	Challenges StringList `gorm:"type:text" json:"challenges"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
	AuthorID   string     `gorm:"size:36;index" json:"authorId"`
}

func (Project) TableName() string { return "projects" }

// ProjectView is the public detail projection: the entity plus its
// neighbors in created_at desc order and up to two unrelated entries.
// Derived at read time, never stored.
type ProjectView struct {
	Project
	Prev    *Project  `json:"prev"`
	Next    *Project  `json:"next"`
	Related []Project `json:"related"`
}

type Product struct {
	ID        string     `gorm:"primaryKey;size:36" json:"id"`
	Title     string     `gorm:"size:255" json:"title"`
	Text      string     `gorm:"type:text" json:"text"`
	Image     string     `gorm:"size:512" json:"image"`
	Icons     StringList `gorm:"type:text" json:"icons"`
	Details   string     `gorm:"type:text" json:"details,omitempty"`
	PDFs      PDFList    `gorm:"column:pdfs;type:text" json:"pdfs,omitempty"`
	IsActive  bool       `gorm:"not null;default:true" json:"isActive"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	AuthorID  string     `gorm:"size:36;index" json:"authorId"`
}

func (Product) TableName() string { return "products" }

// LegacyProduct is the older product column layout, still present in
// stores that predate the rename. Writes fall back to it when the
// current columns are missing; see repo.ProductRepo.
type LegacyProduct struct {
	ID             string     `gorm:"primaryKey;size:36" json:"id"`
	Name           string     `gorm:"size:255" json:"name"`
	Description    string     `gorm:"type:text" json:"description"`
	Category       string     `gorm:"size:128" json:"category"`
	Features       StringList `gorm:"type:text" json:"features"`
	Specifications string     `gorm:"type:text" json:"specifications"`
	Price          string     `gorm:"size:64" json:"price"`
	Image          string     `gorm:"size:512" json:"image"`
	IsActive       bool       `json:"isActive"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
	AuthorID       string     `gorm:"size:36" json:"authorId"`
}

// ToLegacy maps the current product layout onto the legacy columns.
func (p *Product) ToLegacy() *LegacyProduct {
	return &LegacyProduct{
		ID:             p.ID,
		Name:           p.Title,
		Description:    p.Text,
		Features:       p.Icons,
		Specifications: p.Details,
		Image:          p.Image,
		IsActive:       p.IsActive,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
		AuthorID:       p.AuthorID,
	}
}

// ProductIcons is the fixed icon set selectable per product. The
// presentation layer renders these identifiers.
var ProductIcons = map[string]struct{}{
	"FaGasPump":    {},
	"FaPlug":       {},
	"FaLeaf":       {},
	"FaBolt":       {},
	"FaIndustry":   {},
	"FaTruck":      {},
	"FaOilCan":     {},
	"FaSolarPanel": {},
}

func ValidIcon(name string) bool {
	_, ok := ProductIcons[name]
	return ok
}

// legacyFieldMap translates current column names into the legacy
// layout for map-based partial updates. Columns shared by both
// layouts (image, is_active, dates) are absent and pass through.
var legacyFieldMap = map[string]string{
	"title":   "name",
	"text":    "description",
	"icons":   "features",
	"details": "specifications",
}

// MapToLegacyFields rewrites a partial update map to legacy column
// names. Unknown keys pass through unchanged.
func MapToLegacyFields(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		if lk, ok := legacyFieldMap[k]; ok {
			out[lk] = v
		} else {
			out[k] = v
		}
	}
	return out
}
