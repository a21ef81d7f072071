package repositories

import (
	"gorm.io/gorm"

	"go-blog-platform/models"
)

type ArticleRepository interface {
	Create(article *models.Article) error
	GetByID(id uint) (*models.Article, error)
	GetAll() ([]models.Article, error)
	GetByAuthor(authorID uint) ([]models.Article, error)
	Update(article *models.Article) error
	DeleteWithComments(id uint) (int64, error)
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(article *models.Article) error {
	return r.db.Create(article).Error
}

func (r *articleRepository) GetByID(id uint) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("Author").
		Preload("Comments").
		Preload("Comments.Author").
		First(&article, id).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) GetAll() ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Preload("Author").
		Preload("Comments").
		Preload("Comments.Author").
		Order("created_at desc").
		Find(&articles).Error
	return articles, err
}

func (r *articleRepository) GetByAuthor(authorID uint) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Preload("Author").
		Preload("Comments").
		Where("author_id = ?", authorID).
		Order("created_at desc").
		Find(&articles).Error
	return articles, err
}

func (r *articleRepository) Update(article *models.Article) error {
	return r.db.Save(article).Error
}

// DeleteWithComments removes the article and every comment referencing it in
// a single transaction, and returns the number of comments deleted.
func (r *articleRepository) DeleteWithComments(id uint) (int64, error) {
	var deleted int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("article_id = ?", id).Delete(&models.Comment{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected
		return tx.Delete(&models.Article{}, id).Error
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}
