package serialize

import "blogserver/models"

type GroupSummary struct {
	ID    uint64 `json:"id"`
	Title string `json:"title"`
}

type GroupDetail struct {
	ID          uint64 `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

func GroupToSummary(g *models.Group) GroupSummary {
	return GroupSummary{ID: g.ID, Title: g.Title}
}

func GroupToDetail(g *models.Group) GroupDetail {
	return GroupDetail{
		ID:          g.ID,
		Title:       g.Title,
		Slug:        g.Slug,
		Description: g.Description,
	}
}
