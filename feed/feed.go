package feed

import (
	"github.com/taren4ik/hw05-final/db"
	"github.com/taren4ik/hw05-final/models"

	"gorm.io/gorm"
)

// PostsPerPage is the fixed page size of every listing.
const PostsPerPage = 10

// Page is one page of a feed. Number is always within [1, Count]: a missing
// or out-of-range request resolves to the nearest valid page, never an error.
type Page struct {
	Posts   []models.Post
	Total   int64
	Number  int
	Count   int
	HasPrev bool
	HasNext bool
}

type Service struct {
	db *gorm.DB
}

func NewService() *Service {
	return &Service{db: db.Instance}
}

// All lists every post, newest first.
func (s *Service) All(page int) (Page, error) {
	return s.paginate(s.db.Model(&models.Post{}), page)
}

// ByGroup lists the posts of the group with the given slug.
func (s *Service) ByGroup(slug string, page int) (models.Group, Page, error) {
	group, err := models.GroupBySlug(slug)
	if err != nil {
		return models.Group{}, Page{}, err
	}
	p, err := s.paginate(s.db.Model(&models.Post{}).Where("group_id = ?", group.ID), page)
	return group, p, err
}

// ByAuthor lists the posts of the user with the given username.
func (s *Service) ByAuthor(username string, page int) (models.User, Page, error) {
	author, err := models.UserByUsername(username)
	if err != nil {
		return models.User{}, Page{}, err
	}
	p, err := s.paginate(s.db.Model(&models.Post{}).Where("user_id = ?", author.ID), page)
	return author, p, err
}

// Followed lists posts by every author the user follows.
func (s *Service) Followed(userID uint64, page int) (Page, error) {
	authors := s.db.Model(&models.Follow{}).Select("author_id").Where("user_id = ?", userID)
	return s.paginate(s.db.Model(&models.Post{}).Where("user_id IN (?)", authors), page)
}

func (s *Service) paginate(tx *gorm.DB, page int) (Page, error) {
	result := Page{}
	if err := tx.Count(&result.Total).Error; err != nil {
		return Page{}, err
	}
	result.Count = int((result.Total + PostsPerPage - 1) / PostsPerPage)
	if result.Count < 1 {
		result.Count = 1
	}
	if page < 1 {
		page = 1
	}
	if page > result.Count {
		page = result.Count
	}
	result.Number = page
	result.HasPrev = page > 1
	result.HasNext = page < result.Count

	err := tx.Preload("User").Preload("Group").
		Order("created_at DESC, id DESC").
		Offset((page - 1) * PostsPerPage).
		Limit(PostsPerPage).
		Find(&result.Posts).Error
	return result, err
}
