package services

import (
	"errors"

	"gorm.io/gorm"

	"go-blog-platform/models"
	"go-blog-platform/repositories"
)

type ArticleService interface {
	ListAll() ([]models.Article, error)
	ListByAuthor(authorID uint) ([]models.Article, error)
	GetByID(id uint) (*models.Article, error)
	Create(authorID uint, form models.ArticleForm, imagePath *string) (*models.Article, error)
	Update(id, requesterID uint, form models.ArticleForm, imagePath *string) (*models.Article, error)
	Delete(id, requesterID uint) error
}

type articleService struct {
	articleRepo repositories.ArticleRepository
}

func NewArticleService(articleRepo repositories.ArticleRepository) ArticleService {
	return &articleService{articleRepo: articleRepo}
}

func (s *articleService) ListAll() ([]models.Article, error) {
	return s.articleRepo.GetAll()
}

func (s *articleService) ListByAuthor(authorID uint) ([]models.Article, error) {
	return s.articleRepo.GetByAuthor(authorID)
}

func (s *articleService) GetByID(id uint) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return article, nil
}

func (s *articleService) Create(authorID uint, form models.ArticleForm, imagePath *string) (*models.Article, error) {
	if form.Title == "" || form.Content == "" {
		return nil, models.ErrValidation
	}

	article := &models.Article{
		AuthorID: authorID,
		Title:    form.Title,
		Content:  form.Content,
		Tags:     models.ParseTags(form.Tags),
		Image:    imagePath,
	}

	if err := s.articleRepo.Create(article); err != nil {
		return nil, err
	}

	return article, nil
}

// Update checks existence before ownership, so a non-owner learns whether the
// id exists. That matches the rest of the handlers; see DESIGN.md.
func (s *articleService) Update(id, requesterID uint, form models.ArticleForm, imagePath *string) (*models.Article, error) {
	article, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if article.AuthorID != requesterID {
		return nil, models.ErrForbidden
	}

	if form.Title == "" || form.Content == "" {
		return nil, models.ErrValidation
	}

	article.Title = form.Title
	article.Content = form.Content
	article.Tags = models.ParseTags(form.Tags)
	if imagePath != nil {
		article.Image = imagePath
	}

	if err := s.articleRepo.Update(article); err != nil {
		return nil, err
	}

	return article, nil
}

func (s *articleService) Delete(id, requesterID uint) error {
	article, err := s.GetByID(id)
	if err != nil {
		return err
	}

	if article.AuthorID != requesterID {
		return models.ErrForbidden
	}

	_, err = s.articleRepo.DeleteWithComments(id)
	return err
}
