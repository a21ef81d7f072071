package repositories

import (
	"gorm.io/gorm"

	"go-blog-platform/models"
)

type CommentRepository interface {
	Create(comment *models.Comment) error
	GetByID(id uint) (*models.Comment, error)
	DeleteAllForArticle(articleID uint) (int64, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

func (r *commentRepository) GetByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.Preload("Author").First(&comment, id).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) DeleteAllForArticle(articleID uint) (int64, error) {
	res := r.db.Where("article_id = ?", articleID).Delete(&models.Comment{})
	return res.RowsAffected, res.Error
}
