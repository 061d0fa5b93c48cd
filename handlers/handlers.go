package handlers

import (
	"strconv"

	"github.com/taren4ik/hw05-final/feed"
	"github.com/taren4ik/hw05-final/models"

	"github.com/gin-gonic/gin"
)

type PostInfo struct {
	ID      uint64 `json:"id"`
	Text    string `json:"text"`
	Author  string `json:"author"`
	Group   string `json:"group,omitempty"`
	Image   string `json:"image,omitempty"`
	Created int64  `json:"created"`
}

type PageInfo struct {
	Posts   []PostInfo `json:"posts"`
	Total   int64      `json:"total"`
	Page    int        `json:"page"`
	Pages   int        `json:"pages"`
	HasPrev bool       `json:"has_prev"`
	HasNext bool       `json:"has_next"`
}

type CommentInfo struct {
	ID      uint64 `json:"id"`
	Text    string `json:"text"`
	Author  string `json:"author"`
	Created int64  `json:"created"`
}

func postInfo(p models.Post) PostInfo {
	info := PostInfo{
		ID:      p.ID,
		Text:    p.Text,
		Author:  p.User.Username,
		Image:   p.Image,
		Created: p.CreatedAt,
	}
	if p.Group != nil {
		info.Group = p.Group.Slug
	}
	return info
}

func pageInfo(p feed.Page) PageInfo {
	info := PageInfo{
		Posts:   make([]PostInfo, 0, len(p.Posts)),
		Total:   p.Total,
		Page:    p.Number,
		Pages:   p.Count,
		HasPrev: p.HasPrev,
		HasNext: p.HasNext,
	}
	for _, post := range p.Posts {
		info.Posts = append(info.Posts, postInfo(post))
	}
	return info
}

// pageNumber reads the "page" query parameter. Anything unparseable means
// the first page.
func pageNumber(c *gin.Context) int {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil {
		return 1
	}
	return page
}

func postID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
