package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"terravolt-cms/internal/core/auth"
	"terravolt-cms/internal/domain"
	"terravolt-cms/internal/transport/http/handler"
	mdw "terravolt-cms/internal/transport/http/middleware"
)

type Deps struct {
	Log      *zap.Logger
	JWT      *auth.JWTer
	Auth     *handler.AuthHandler
	Users    *handler.UserHandler
	Blogs    *handler.BlogHandler
	Projects *handler.ProjectHandler
	Products *handler.ProductHandler
	Uploads  *handler.UploadHandler

	CORSOrigins []string
}

func New(d Deps) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(16<<20),
		ginzap.RecoveryWithZap(d.Log, true),
		mdw.Metrics(),
		mdw.AccessLog(d.Log),
	)

	if len(d.CORSOrigins) > 0 {
		cc := cors.DefaultConfig()
		cc.AllowOrigins = d.CORSOrigins
		cc.AllowCredentials = true // token travels in a cookie
		r.Use(cors.New(cc))
	}

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public reads get a bounded handler budget; admin mutations and
	// uploads manage their own deadlines.
	public := r.Group("", mdw.Timeout(10*time.Second))
	public.GET("/blogs", d.Blogs.List)
	public.GET("/blogs/:slug", d.Blogs.GetBySlug)
	public.GET("/projects", d.Projects.List)
	public.GET("/projects/:id", d.Projects.Detail)
	public.GET("/products", d.Products.ListPublic)

	// Credential endpoints get a tighter per-client bucket on top of the
	// failed-login counter.
	authGrp := r.Group("/auth", mdw.RateLimitPerIP(10, 30))
	authGrp.POST("/login", d.Auth.Login)
	authGrp.POST("/register", d.Auth.Register)
	authGrp.GET("/session", d.Auth.Session)
	authGrp.POST("/logout", d.Auth.Logout)

	admin := r.Group("/admin", mdw.RequireRole(d.JWT, domain.RoleAdmin, domain.RoleSuperadmin))
	admin.GET("/blogs", d.Blogs.List)
	admin.POST("/blogs", d.Blogs.Create)
	admin.PUT("/blogs/:id", d.Blogs.Update)
	admin.DELETE("/blogs/:id", d.Blogs.Delete)

	admin.GET("/projects", d.Projects.List)
	admin.POST("/projects", d.Projects.Create)
	admin.PUT("/projects/:id", d.Projects.Update)
	admin.DELETE("/projects/:id", d.Projects.Delete)

	admin.GET("/products", d.Products.ListAdmin)
	admin.POST("/products", d.Products.Create)
	admin.PUT("/products/:id", d.Products.Update)
	admin.DELETE("/products/:id", d.Products.Delete)

	admin.POST("/upload", d.Uploads.UploadImages)
	admin.POST("/upload-pdf", d.Uploads.UploadPDF)

	super := r.Group("/admin", mdw.RequireRole(d.JWT, domain.RoleSuperadmin))
	super.GET("/users", d.Users.List)
	super.DELETE("/users/:id", d.Users.Delete)

	return r
}
