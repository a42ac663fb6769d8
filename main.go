package main

import (
	"context"
	"html/template"
	"io/fs"
	"log"
	"log/slog"
	"net/http"
	"os"

	"quill/internal/cache"
	"quill/internal/config"
	"quill/internal/handlers"
	"quill/internal/repository"
	"quill/internal/services"
	"quill/internal/storage"
	"quill/internal/utils"

	"github.com/gin-contrib/multitemplate"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// Global filesystems that will be populated by either assets_dev.go or assets_prod.go at startup.
var templatesFS fs.FS
var staticFS fs.FS

func createRenderer() multitemplate.Renderer {
	r := multitemplate.NewRenderer()

	add := func(name string, files ...string) {
		tpl, err := template.ParseFS(templatesFS, files...)
		if err != nil {
			log.Fatalf("failed to parse template %s: %v", name, err)
		}
		r.Add(name, tpl)
	}

	add("index.html", "base.html", "index.html", "_pagination.html")
	add("article.html", "base.html", "article.html")
	add("category.html", "base.html", "category.html")
	add("page.html", "base.html", "page.html")
	add("search.html", "base.html", "search.html", "_pagination.html")
	add("login.html", "base.html", "login.html")
	add("access_denied.html", "base.html", "access_denied.html")
	add("404.html", "base.html", "404.html")
	add("error.html", "base.html", "error.html")

	add("dashboard.html", "admin_base.html", "dashboard.html")
	add("admin_articles.html", "admin_base.html", "admin_articles.html")
	add("editor.html", "admin_base.html", "editor.html")
	add("admin_pages.html", "admin_base.html", "admin_pages.html")
	add("page_editor.html", "admin_base.html", "page_editor.html")
	add("admin_categories.html", "admin_base.html", "admin_categories.html")
	add("admin_hero.html", "admin_base.html", "admin_hero.html")
	add("admin_media.html", "admin_base.html", "admin_media.html")
	add("admin_sections.html", "admin_base.html", "admin_sections.html")
	add("admin_seo.html", "admin_base.html", "admin_seo.html")
	add("admin_settings.html", "admin_base.html", "admin_settings.html")

	return r
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load configuration: ", err)
	}

	db, err := utils.InitDatabase(cfg.DBPath)
	if err != nil {
		log.Fatal("failed to initialize database: ", err)
	}

	ctx := context.Background()

	store, err := storage.NewS3Store(ctx, storage.S3Options{
		Endpoint:      cfg.S3Endpoint,
		Region:        cfg.S3Region,
		Bucket:        cfg.S3Bucket,
		AccessKey:     cfg.S3AccessKey,
		SecretKey:     cfg.S3SecretKey,
		PublicBaseURL: cfg.S3PublicBaseURL,
	})
	if err != nil {
		log.Fatal("failed to initialize object storage: ", err)
	}

	articleRepo := repository.NewArticleRepository(db)
	pageRepo := repository.NewPageRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	mediaRepo := repository.NewMediaRepository(db)
	heroRepo := repository.NewHeroRepository(db)
	sectionRepo := repository.NewSectionRepository(db)
	settingRepo := repository.NewSettingRepository(db)
	userRepo := repository.NewUserRepository(db)

	contentCache := cache.New()

	settingService := services.NewSettingService(settingRepo, logger)
	articleService := services.NewArticleService(articleRepo, categoryRepo, contentCache, logger)
	pageService := services.NewPageService(pageRepo, contentCache)
	categoryService := services.NewCategoryService(categoryRepo, contentCache)
	mediaService := services.NewMediaService(mediaRepo, store, contentCache, logger)
	heroService := services.NewHeroService(heroRepo, contentCache)
	sectionService := services.NewSectionService(sectionRepo, contentCache)
	userService := services.NewUserService(userRepo, logger)

	if err := userService.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatal("failed to ensure admin account: ", err)
	}

	siteHandler := handlers.NewSiteHandler(articleService, pageService, categoryService, heroService, sectionService)
	authHandler := handlers.NewAuthHandler(userService)
	adminHandler := handlers.NewAdminHandler(articleService, pageService, categoryService, mediaService)
	pageAdminHandler := handlers.NewPageAdminHandler(pageService)
	categoryAdminHandler := handlers.NewCategoryAdminHandler(categoryService)
	mediaHandler := handlers.NewMediaHandler(mediaService)
	sectionHandler := handlers.NewSectionHandler(heroService, sectionService)
	settingsHandler := handlers.NewSettingsHandler(settingService)
	apiHandler := handlers.NewAPIHandler(articleService, userService, []byte(cfg.JWTSecret))

	r := gin.Default()
	r.HTMLRender = createRenderer()

	sessionStore := cookie.NewStore([]byte(cfg.SessionSecret))
	sessionStore.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		Secure:   cfg.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions("quill_session", sessionStore))

	r.Use(handlers.SettingsMiddleware(settingService))

	r.StaticFS("/static", http.FS(staticFS))

	// Public site
	r.GET("/", siteHandler.Index)
	r.GET("/article/:slug", siteHandler.ShowArticle)
	r.GET("/category/:slug", siteHandler.ShowCategory)
	r.GET("/page/:slug", siteHandler.ShowPage)
	r.GET("/search", siteHandler.Search)

	// Authentication
	r.GET("/admin/login", authHandler.ShowLoginPage)
	r.POST("/admin/login", authHandler.Login)
	r.GET("/admin/logout", authHandler.Logout)

	// Admin area. Anonymous visitors are sent to the login page; signed-in
	// users without the admin role get a terminal access-denied view.
	admin := r.Group("/admin")
	admin.Use(handlers.RequireAuth(), handlers.RequireAdmin())
	{
		admin.GET("", adminHandler.Dashboard)
		admin.GET("/articles", adminHandler.ListArticles)
		admin.GET("/articles/new", adminHandler.NewArticle)
		admin.GET("/articles/editor", adminHandler.EditArticle)
		admin.POST("/articles/save", adminHandler.SaveArticle)
		admin.POST("/articles/delete/:id", adminHandler.DeleteArticle)
		admin.GET("/export", adminHandler.ExportContent)

		admin.GET("/pages", pageAdminHandler.ListPages)
		admin.GET("/pages/new", pageAdminHandler.NewPage)
		admin.GET("/pages/editor", pageAdminHandler.EditPage)
		admin.POST("/pages/save", pageAdminHandler.SavePage)
		admin.POST("/pages/delete/:id", pageAdminHandler.DeletePage)

		admin.GET("/categories", categoryAdminHandler.ListCategories)
		admin.POST("/categories/save", categoryAdminHandler.SaveCategory)
		admin.POST("/categories/delete/:id", categoryAdminHandler.DeleteCategory)

		admin.GET("/hero", sectionHandler.ShowHeroPage)
		admin.POST("/hero/save", sectionHandler.SaveHero)

		admin.GET("/media", mediaHandler.ListMedia)
		admin.POST("/media/upload", mediaHandler.UploadMedia)
		admin.POST("/media/update/:id", mediaHandler.UpdateMedia)
		admin.POST("/media/delete/:id", mediaHandler.DeleteMedia)

		admin.GET("/sections", sectionHandler.ListSections)
		admin.POST("/sections/page/:id", sectionHandler.SavePageSection)
		admin.POST("/sections/site/:id", sectionHandler.SaveSiteSection)

		admin.GET("/seo", settingsHandler.ShowSEOPage)
		admin.POST("/seo", settingsHandler.UpdateSEO)
		admin.GET("/settings", settingsHandler.ShowSettingsPage)
		admin.POST("/settings", settingsHandler.UpdateSettings)
	}

	// JSON API
	api := r.Group("/api/v1")
	api.POST("/login", apiHandler.Login)
	protected := api.Group("")
	protected.Use(handlers.APIAuthMiddleware([]byte(cfg.JWTSecret)))
	{
		protected.GET("/articles", apiHandler.FindArticles)
		protected.GET("/articles/:id", apiHandler.GetArticle)
		protected.POST("/articles", apiHandler.CreateArticle)
		protected.PUT("/articles/:id", apiHandler.UpdateArticle)
		protected.DELETE("/articles/:id", apiHandler.DeleteArticle)
	}

	r.NoRoute(siteHandler.NotFound)

	logger.Info("server listening", "addr", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal("server exited: ", err)
	}
}
