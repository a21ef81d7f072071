package services

import (
	"errors"

	"gorm.io/gorm"

	"go-blog-platform/models"
	"go-blog-platform/repositories"
)

type CommentService interface {
	Add(articleID, authorID uint, content string) (*models.Comment, error)
	DeleteAllForArticle(articleID uint) (int64, error)
}

type commentService struct {
	commentRepo repositories.CommentRepository
	articleRepo repositories.ArticleRepository
}

func NewCommentService(commentRepo repositories.CommentRepository, articleRepo repositories.ArticleRepository) CommentService {
	return &commentService{commentRepo: commentRepo, articleRepo: articleRepo}
}

// Add attaches a comment to a live article. Content is stored as submitted;
// empty comments are allowed.
func (s *commentService) Add(articleID, authorID uint, content string) (*models.Comment, error) {
	if _, err := s.articleRepo.GetByID(articleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	comment := &models.Comment{
		ArticleID: articleID,
		AuthorID:  authorID,
		Content:   content,
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	return comment, nil
}

// DeleteAllForArticle removes every comment under an article without touching
// the article itself. Article deletion does not go through here: it runs its
// own transactional cascade in ArticleRepository.DeleteWithComments. This is
// the standalone wipe, for callers that want the comments gone and the
// article kept.
func (s *commentService) DeleteAllForArticle(articleID uint) (int64, error) {
	return s.commentRepo.DeleteAllForArticle(articleID)
}
