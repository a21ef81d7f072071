package handlers

import (
	"sort"

	"gorm.io/gorm"

	"go-blog-platform/models"
)

// Small in-memory repositories backing the handler tests. Missing rows yield
// gorm.ErrRecordNotFound so the services behave exactly as with postgres.

type memUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[uint]*models.User{}, nextID: 1}
}

func (r *memUserRepo) Create(user *models.User) error {
	user.ID = r.nextID
	r.nextID++
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(id uint) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetByUsername(username string) (*models.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memUserRepo) ExistsByUsernameOrEmail(username, email string) (bool, error) {
	for _, u := range r.users {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type memArticleRepo struct {
	articles map[uint]*models.Article
	users    *memUserRepo
	comments *memCommentRepo
	nextID   uint
}

func newMemArticleRepo(users *memUserRepo, comments *memCommentRepo) *memArticleRepo {
	return &memArticleRepo{articles: map[uint]*models.Article{}, users: users, comments: comments, nextID: 1}
}

func (r *memArticleRepo) withAuthors(a models.Article) models.Article {
	if r.users != nil {
		if u, err := r.users.GetByID(a.AuthorID); err == nil {
			a.Author = *u
		}
	}
	if r.comments != nil {
		a.Comments = r.comments.forArticle(a.ID, r.users)
	}
	return a
}

func (r *memArticleRepo) Create(article *models.Article) error {
	article.ID = r.nextID
	r.nextID++
	cp := *article
	r.articles[article.ID] = &cp
	return nil
}

func (r *memArticleRepo) GetByID(id uint) (*models.Article, error) {
	a, ok := r.articles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	resolved := r.withAuthors(*a)
	return &resolved, nil
}

func (r *memArticleRepo) GetAll() ([]models.Article, error) {
	out := []models.Article{}
	for _, a := range r.articles {
		out = append(out, r.withAuthors(*a))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *memArticleRepo) GetByAuthor(authorID uint) ([]models.Article, error) {
	out := []models.Article{}
	for _, a := range r.articles {
		if a.AuthorID == authorID {
			out = append(out, r.withAuthors(*a))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *memArticleRepo) Update(article *models.Article) error {
	if _, ok := r.articles[article.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *article
	cp.Comments = nil
	r.articles[article.ID] = &cp
	return nil
}

func (r *memArticleRepo) DeleteWithComments(id uint) (int64, error) {
	var deleted int64
	if r.comments != nil {
		deleted, _ = r.comments.DeleteAllForArticle(id)
	}
	delete(r.articles, id)
	return deleted, nil
}

type memCommentRepo struct {
	comments map[uint]*models.Comment
	nextID   uint
}

func newMemCommentRepo() *memCommentRepo {
	return &memCommentRepo{comments: map[uint]*models.Comment{}, nextID: 1}
}

func (r *memCommentRepo) Create(comment *models.Comment) error {
	comment.ID = r.nextID
	r.nextID++
	cp := *comment
	r.comments[comment.ID] = &cp
	return nil
}

func (r *memCommentRepo) GetByID(id uint) (*models.Comment, error) {
	cm, ok := r.comments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *cm
	return &cp, nil
}

func (r *memCommentRepo) DeleteAllForArticle(articleID uint) (int64, error) {
	var count int64
	for id, cm := range r.comments {
		if cm.ArticleID == articleID {
			delete(r.comments, id)
			count++
		}
	}
	return count, nil
}

func (r *memCommentRepo) forArticle(articleID uint, users *memUserRepo) []models.Comment {
	out := []models.Comment{}
	for _, cm := range r.comments {
		if cm.ArticleID == articleID {
			cp := *cm
			if users != nil {
				if u, err := users.GetByID(cp.AuthorID); err == nil {
					cp.Author = *u
				}
			}
			out = append(out, cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
