package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"terravolt-cms/internal/core/auth"
	"terravolt-cms/internal/core/cache"
	"terravolt-cms/internal/domain"
	"terravolt-cms/internal/media"
	"terravolt-cms/internal/repo"
	"terravolt-cms/internal/service"
	"terravolt-cms/internal/transport/http/handler"
	"terravolt-cms/internal/transport/http/router"
	"terravolt-cms/pkg/utils"
)

// fakeStore stands in for the object-storage provider.
type fakeStore struct {
	calls int
	errs  []error // per-call errors, nil entries succeed
}

func (s *fakeStore) Put(_ context.Context, _ string, _ io.Reader, _ int64, _ string) error {
	idx := s.calls
	s.calls++
	if idx < len(s.errs) {
		return s.errs[idx]
	}
	return nil
}

type testEnv struct {
	db     *gorm.DB
	engine *gin.Engine
	jwter  *auth.JWTer
	store  *fakeStore
}

type envOpt func(t *testing.T, e *testEnv)

// withLegacyProducts replaces the migrated products table with the
// pre-rename layout.
func withLegacyProducts() envOpt {
	return func(t *testing.T, e *testEnv) {
		require.NoError(t, e.db.Exec("DROP TABLE products").Error)
		require.NoError(t, e.db.Exec(`CREATE TABLE products (
			id TEXT PRIMARY KEY, name TEXT, description TEXT, category TEXT,
			features TEXT, specifications TEXT, price TEXT, image TEXT,
			is_active NUMERIC, created_at DATETIME, updated_at DATETIME, author_id TEXT
		)`).Error)
	}
}

func newEnv(t *testing.T, opts ...envOpt) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Blog{}, &domain.Project{}, &domain.Product{}))

	jwter := auth.New("test-secret", "terravolt", 7*24*time.Hour)
	store := &fakeStore{}
	env := &testEnv{db: db, jwter: jwter, store: store}
	for _, opt := range opts {
		opt(t, env)
	}

	userRepo := repo.NewUserRepo(db)
	resolver := media.NewResolver(store, "terravolt-media", "http://cdn.test")

	env.engine = router.New(router.Deps{
		Log:      zap.NewNop(),
		JWT:      env.jwter,
		Auth:     handler.NewAuthHandler(service.NewAuthService(userRepo, env.jwter), cache.NewMemCounter()),
		Users:    handler.NewUserHandler(service.NewUserService(userRepo)),
		Blogs:    handler.NewBlogHandler(service.NewBlogService(repo.NewBlogRepo(db))),
		Projects: handler.NewProjectHandler(service.NewProjectService(repo.NewProjectRepo(db))),
		Products: handler.NewProductHandler(service.NewProductService(repo.NewProductRepo(db))),
		Uploads:  handler.NewUploadHandler(resolver),
	})
	return env
}

func (e *testEnv) seedUser(t *testing.T, email, password string, role domain.Role) *domain.User {
	t.Helper()
	u := &domain.User{
		ID:           utils.NewID(),
		Email:        email,
		PasswordHash: utils.HashPassword(password),
		Role:         role,
		CreatedAt:    time.Now(),
	}
	require.NoError(t, e.db.Create(u).Error)
	return u
}

func (e *testEnv) cookieFor(t *testing.T, u *domain.User) *http.Cookie {
	t.Helper()
	token, err := e.jwter.Issue(u.ID, u.Email, u.Role)
	require.NoError(t, err)
	return &http.Cookie{Name: "admin-token", Value: token}
}

func (e *testEnv) do(t *testing.T, method, path string, body any, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

func (e *testEnv) doMultipart(t *testing.T, path, field string, files map[string][]byte, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for name, content := range files {
		fw, err := mw.CreateFormFile(field, name)
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, into any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), into))
}
