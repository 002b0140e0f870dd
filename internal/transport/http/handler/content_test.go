package handler_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"terravolt-cms/internal/domain"
	"terravolt-cms/pkg/utils"
)

func TestBlogCreateValidation(t *testing.T) {
	env := newEnv(t)
	admin := env.seedUser(t, "admin@x.com", "admin123", domain.RoleAdmin)

	// Every missing required field is reported in one response.
	w := env.do(t, http.MethodPost, "/admin/blogs",
		map[string]any{"title": "Grid Upgrades"}, env.cookieFor(t, admin))
	require.Equal(t, http.StatusBadRequest, w.Code)
	var out map[string]string
	decode(t, w, &out)
	require.Contains(t, out["error"], "slug")
	require.Contains(t, out["error"], "excerpt")
	require.Contains(t, out["error"], "content")
	require.Contains(t, out["error"], "image")
	require.Contains(t, out["error"], "date")
}

func TestBlogCreateSlugPassthrough(t *testing.T) {
	env := newEnv(t)
	admin := env.seedUser(t, "admin@x.com", "admin123", domain.RoleAdmin)

	body := map[string]any{
		"title": "Grid Upgrades", "slug": "Grid_Upgrades--2024",
		"excerpt": "e", "content": "c", "image": "img.png", "date": "2024-03-01",
	}
	w := env.do(t, http.MethodPost, "/admin/blogs", body, env.cookieFor(t, admin))
	require.Equal(t, http.StatusCreated, w.Code)

	var created domain.Blog
	decode(t, w, &created)
	// Stored exactly as given, no normalization.
	require.Equal(t, "Grid_Upgrades--2024", created.Slug)
	require.Equal(t, admin.ID, created.AuthorID)

	w = env.do(t, http.MethodGet, "/blogs/Grid_Upgrades--2024", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestBlogDeleteThenGet(t *testing.T) {
	env := newEnv(t)
	admin := env.seedUser(t, "admin@x.com", "admin123", domain.RoleAdmin)

	body := map[string]any{
		"title": "T", "slug": "gone", "excerpt": "e", "content": "c",
		"image": "i", "date": "2024-03-01",
	}
	w := env.do(t, http.MethodPost, "/admin/blogs", body, env.cookieFor(t, admin))
	require.Equal(t, http.StatusCreated, w.Code)
	var created domain.Blog
	decode(t, w, &created)

	w = env.do(t, http.MethodDelete, "/admin/blogs/"+created.ID, nil, env.cookieFor(t, admin))
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, "/blogs/gone", nil, nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	// Second delete errors; the contract is not idempotent.
	w = env.do(t, http.MethodDelete, "/admin/blogs/"+created.ID, nil, env.cookieFor(t, admin))
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestBlogMutationRequiresAuth(t *testing.T) {
	env := newEnv(t)
	w := env.do(t, http.MethodPost, "/admin/blogs", map[string]any{"title": "x"}, nil)
	require.Equal(t, http.StatusForbidden, w.Code)
}

func seedProjects(t *testing.T, env *testEnv, names ...string) []domain.Project {
	t.Helper()
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	out := make([]domain.Project, 0, len(names))
	for i, name := range names {
		p := domain.Project{
			ID: utils.NewID(), Name: name,
			Images: domain.StringList{"a.png"}, Challenges: domain.StringList{},
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
			UpdatedAt: base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, env.db.Create(&p).Error)
		out = append(out, p)
	}
	return out
}

func TestProjectDetailNeighborsAndRelated(t *testing.T) {
	env := newEnv(t)
	projects := seedProjects(t, env, "oldest", "middle", "newest")

	w := env.do(t, http.MethodGet, "/projects/"+projects[1].ID, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var view domain.ProjectView
	decode(t, w, &view)
	require.Equal(t, "middle", view.Name)
	// Listing order is newest first, so prev is the newer neighbor.
	require.NotNil(t, view.Prev)
	require.Equal(t, "newest", view.Prev.Name)
	require.NotNil(t, view.Next)
	require.Equal(t, "oldest", view.Next.Name)
	require.Len(t, view.Related, 2)
	for _, r := range view.Related {
		require.NotEqual(t, projects[1].ID, r.ID)
	}
}

func TestProjectDetailAtEdges(t *testing.T) {
	env := newEnv(t)
	projects := seedProjects(t, env, "only")

	w := env.do(t, http.MethodGet, "/projects/"+projects[0].ID, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var view domain.ProjectView
	decode(t, w, &view)
	require.Nil(t, view.Prev)
	require.Nil(t, view.Next)
	require.Empty(t, view.Related)
}

func TestProjectCreateRequiresImages(t *testing.T) {
	env := newEnv(t)
	admin := env.seedUser(t, "admin@x.com", "admin123", domain.RoleAdmin)

	w := env.do(t, http.MethodPost, "/admin/projects",
		map[string]any{"name": "Solar Farm", "images": []string{}}, env.cookieFor(t, admin))
	require.Equal(t, http.StatusBadRequest, w.Code)
	var out map[string]string
	decode(t, w, &out)
	require.Contains(t, out["error"], "images")
}

func TestProjectUpdateIgnoresUnknownFields(t *testing.T) {
	env := newEnv(t)
	admin := env.seedUser(t, "admin@x.com", "admin123", domain.RoleAdmin)
	projects := seedProjects(t, env, "plant")

	w := env.do(t, http.MethodPut, "/admin/projects/"+projects[0].ID,
		map[string]any{"name": "Plant II", "bogus": "dropped"}, env.cookieFor(t, admin))
	require.Equal(t, http.StatusOK, w.Code)

	var updated domain.Project
	decode(t, w, &updated)
	require.Equal(t, "Plant II", updated.Name)
	require.Equal(t, domain.StringList{"a.png"}, updated.Images)
}

func TestProductPublicListActiveAscending(t *testing.T) {
	env := newEnv(t)
	admin := env.seedUser(t, "admin@x.com", "admin123", domain.RoleAdmin)

	for _, p := range []map[string]any{
		{"title": "A", "text": "t", "image": "i", "icons": []string{"FaBolt"}},
		{"title": "B", "text": "t", "image": "i", "icons": []string{"FaLeaf"}},
		{"title": "C", "text": "t", "image": "i", "icons": []string{"FaPlug"}, "isActive": false},
	} {
		w := env.do(t, http.MethodPost, "/admin/products", p, env.cookieFor(t, admin))
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := env.do(t, http.MethodGet, "/products", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var products []domain.Product
	decode(t, w, &products)
	require.Len(t, products, 2)
	for _, p := range products {
		require.True(t, p.IsActive)
	}
	for i := 1; i < len(products); i++ {
		require.False(t, products[i].CreatedAt.Before(products[i-1].CreatedAt))
	}
}

func TestProductCreateRejectsUnknownIcon(t *testing.T) {
	env := newEnv(t)
	admin := env.seedUser(t, "admin@x.com", "admin123", domain.RoleAdmin)

	w := env.do(t, http.MethodPost, "/admin/products",
		map[string]any{"title": "X", "text": "Y", "image": "i", "icons": []string{"FaDragon"}},
		env.cookieFor(t, admin))
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProductCreateLegacySchemaFallback(t *testing.T) {
	env := newEnv(t, withLegacyProducts())
	admin := env.seedUser(t, "admin@x.com", "admin123", domain.RoleAdmin)

	w := env.do(t, http.MethodPost, "/admin/products",
		map[string]any{"title": "X", "text": "Y", "image": "img.png", "icons": []string{"FaBolt"}},
		env.cookieFor(t, admin))
	require.Equal(t, http.StatusCreated, w.Code)

	var out map[string]any
	decode(t, w, &out)
	// The write landed on the legacy columns; the payload carries the
	// legacy field names.
	require.Equal(t, "X", out["name"])
	require.Equal(t, "Y", out["description"])
}
