package controllers

import (
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/farmbook/farmbook/models"
	"github.com/farmbook/farmbook/utils"
)

const feedCacheKey = "cache:posts:feed"

// PostController manages the social feed: posts, likes, comments and the
// uploaded files posts reference.
type PostController struct {
	db        *gorm.DB
	uploadDir string
}

// NewPostController creates a new PostController storing uploads under uploadDir.
func NewPostController(db *gorm.DB, uploadDir string) *PostController {
	return &PostController{db: db, uploadDir: uploadDir}
}

type commentResponse struct {
	ID        uint   `json:"id"`
	Content   string `json:"content"`
	Username  string `json:"username"`
	CreatedAt string `json:"created_at"`
}

type postResponse struct {
	ID          uint              `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	FileURL     *string           `json:"file_url"`
	Username    string            `json:"username"`
	Likes       int64             `json:"likes"`
	CreatedAt   string            `json:"created_at"`
	Comments    []commentResponse `json:"comments"`
}

// CreatePost accepts a multipart form with title, description and an optional
// file. Validation failures answer 400 naming the violated rule.
func (p *PostController) CreatePost(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, "unauthorized")
		return
	}

	title := utils.Sanitize(strings.TrimSpace(ctx.PostForm("title")))
	description := utils.Sanitize(strings.TrimSpace(ctx.PostForm("description")))

	file, err := ctx.FormFile("file")
	hasFile := err == nil && file != nil

	if err := models.ValidatePostContent(title, description, hasFile); err != nil {
		utils.Error(ctx, http.StatusBadRequest, err.Error())
		return
	}

	var filename string
	if hasFile {
		filename = secureFilename(file.Filename)
		if filename == "" {
			filename = uuid.New().String()
		} else {
			// prevent collisions between identically named uploads
			filename = uuid.New().String()[:8] + "_" + filename
		}
		if err := os.MkdirAll(p.uploadDir, 0o755); err != nil {
			utils.Error(ctx, http.StatusInternalServerError, "failed to create upload directory")
			return
		}
		if err := ctx.SaveUploadedFile(file, filepath.Join(p.uploadDir, filename)); err != nil {
			utils.Error(ctx, http.StatusInternalServerError, "failed to save file")
			return
		}
	}

	post := models.Post{
		UserID:      userID,
		Title:       title,
		Description: description,
		FileURL:     filename,
	}

	if err := p.db.Create(&post).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to create post")
		return
	}

	utils.InvalidateByPrefix(feedCacheKey)

	ctx.JSON(http.StatusCreated, gin.H{"message": "Post created successfully", "post_id": post.ID})
}

// ListPosts returns the whole feed newest-first, each post carrying its
// author name, like count and comments sorted newest-first.
func (p *PostController) ListPosts(ctx *gin.Context) {
	if b, ok := utils.CacheGetBytes(feedCacheKey); ok {
		ctx.Data(http.StatusOK, "application/json", b)
		return
	}

	var posts []models.Post
	err := p.db.
		Preload("User").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at DESC, comments.id DESC")
		}).
		Preload("Comments.User").
		Order("created_at DESC, id DESC").
		Find(&posts).Error
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to list posts")
		return
	}

	result := make([]postResponse, 0, len(posts))
	for _, post := range posts {
		comments := make([]commentResponse, 0, len(post.Comments))
		for _, c := range post.Comments {
			comments = append(comments, commentResponse{
				ID:        c.ID,
				Content:   c.Content,
				Username:  c.User.Username,
				CreatedAt: c.CreatedAt.Format("2006-01-02 15:04:05"),
			})
		}

		var fileURL *string
		if post.FileURL != "" {
			u := "/uploads/" + post.FileURL
			fileURL = &u
		}

		result = append(result, postResponse{
			ID:          post.ID,
			Title:       post.Title,
			Description: post.Description,
			FileURL:     fileURL,
			Username:    post.User.Username,
			Likes:       post.Likes,
			CreatedAt:   post.CreatedAt.Format("2006-01-02 15:04:05"),
			Comments:    comments,
		})
	}

	utils.CacheSetJSON(feedCacheKey, result, time.Hour)
	ctx.JSON(http.StatusOK, result)
}

// LikePost increments the like counter by exactly one and returns the new
// count. The increment runs as a single SQL expression so concurrent likes
// serialize at the row; repeat likes by the same caller are not deduplicated.
func (p *PostController) LikePost(ctx *gin.Context) {
	var post models.Post
	if err := p.db.First(&post, ctx.Param("id")).Error; err != nil {
		utils.Error(ctx, http.StatusNotFound, "Post not found")
		return
	}

	if err := p.db.Model(&post).UpdateColumn("likes", gorm.Expr("likes + ?", 1)).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to like post")
		return
	}

	if err := p.db.First(&post, post.ID).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to load post")
		return
	}

	utils.InvalidateByPrefix(feedCacheKey)

	ctx.JSON(http.StatusOK, gin.H{"message": "Post liked", "likes": post.Likes})
}

// CreateComment appends a comment to an existing post.
func (p *PostController) CreateComment(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "Missing comment content")
		return
	}

	content := utils.Sanitize(strings.TrimSpace(req.Content))
	if content == "" {
		utils.Error(ctx, http.StatusBadRequest, "Missing comment content")
		return
	}

	var post models.Post
	if err := p.db.First(&post, ctx.Param("id")).Error; err != nil {
		utils.Error(ctx, http.StatusNotFound, "Post not found")
		return
	}

	comment := models.Comment{
		PostID:  post.ID,
		UserID:  userID,
		Content: content,
	}

	if err := p.db.Create(&comment).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to create comment")
		return
	}

	utils.InvalidateByPrefix(feedCacheKey)

	utils.Message(ctx, http.StatusCreated, "Comment added")
}

// ServeUpload streams an uploaded file with a sniffed MIME type and open CORS
// headers so embedded media renders cross-origin.
func (p *PostController) ServeUpload(ctx *gin.Context) {
	filename := filepath.Base(ctx.Param("filename"))
	if filename == "." || filename == "/" || filename == "" {
		utils.Error(ctx, http.StatusNotFound, "File not found")
		return
	}

	path := filepath.Join(p.uploadDir, filename)
	data, err := os.ReadFile(path)
	if err != nil {
		utils.Error(ctx, http.StatusNotFound, "File not found")
		return
	}

	mimeType := mime.TypeByExtension(filepath.Ext(filename))
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	ctx.Header("Access-Control-Allow-Origin", "*")
	ctx.Header("Access-Control-Allow-Methods", "GET, OPTIONS")
	ctx.Header("Access-Control-Allow-Headers", "Content-Type")
	ctx.Data(http.StatusOK, mimeType, data)
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// secureFilename strips any path components and replaces characters that are
// unsafe in a filesystem name.
func secureFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = unsafeFilenameChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	return name
}
