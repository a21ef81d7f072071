package services

import (
	"sort"

	"gorm.io/gorm"

	"go-blog-platform/models"
)

// In-memory repositories used across the service tests. They return
// gorm.ErrRecordNotFound exactly like the real gorm-backed ones so the
// services' error translation is exercised.

type fakeUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]*models.User{}, nextID: 1}
}

func (r *fakeUserRepo) Create(user *models.User) error {
	user.ID = r.nextID
	r.nextID++
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id uint) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*models.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) ExistsByUsernameOrEmail(username, email string) (bool, error) {
	for _, u := range r.users {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type fakeArticleRepo struct {
	articles map[uint]*models.Article
	comments *fakeCommentRepo
	nextID   uint
}

func newFakeArticleRepo(comments *fakeCommentRepo) *fakeArticleRepo {
	return &fakeArticleRepo{articles: map[uint]*models.Article{}, comments: comments, nextID: 1}
}

func (r *fakeArticleRepo) Create(article *models.Article) error {
	article.ID = r.nextID
	r.nextID++
	cp := *article
	r.articles[article.ID] = &cp
	return nil
}

func (r *fakeArticleRepo) GetByID(id uint) (*models.Article, error) {
	a, ok := r.articles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *a
	if r.comments != nil {
		cp.Comments = r.comments.forArticle(id)
	}
	return &cp, nil
}

func (r *fakeArticleRepo) GetAll() ([]models.Article, error) {
	out := []models.Article{}
	for _, a := range r.articles {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *fakeArticleRepo) GetByAuthor(authorID uint) ([]models.Article, error) {
	out := []models.Article{}
	for _, a := range r.articles {
		if a.AuthorID == authorID {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *fakeArticleRepo) Update(article *models.Article) error {
	if _, ok := r.articles[article.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *article
	r.articles[article.ID] = &cp
	return nil
}

func (r *fakeArticleRepo) DeleteWithComments(id uint) (int64, error) {
	var deleted int64
	if r.comments != nil {
		deleted, _ = r.comments.DeleteAllForArticle(id)
	}
	delete(r.articles, id)
	return deleted, nil
}

type fakeCommentRepo struct {
	comments map[uint]*models.Comment
	nextID   uint
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: map[uint]*models.Comment{}, nextID: 1}
}

func (r *fakeCommentRepo) Create(comment *models.Comment) error {
	comment.ID = r.nextID
	r.nextID++
	cp := *comment
	r.comments[comment.ID] = &cp
	return nil
}

func (r *fakeCommentRepo) GetByID(id uint) (*models.Comment, error) {
	cm, ok := r.comments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *cm
	return &cp, nil
}

func (r *fakeCommentRepo) DeleteAllForArticle(articleID uint) (int64, error) {
	var count int64
	for id, cm := range r.comments {
		if cm.ArticleID == articleID {
			delete(r.comments, id)
			count++
		}
	}
	return count, nil
}

func (r *fakeCommentRepo) forArticle(articleID uint) []models.Comment {
	out := []models.Comment{}
	for _, cm := range r.comments {
		if cm.ArticleID == articleID {
			out = append(out, *cm)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
