package http

import (
	"time"

	"momentum-tab/internal/background"
)

type photoResp struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	FullURL   string    `json:"full_url"`
	Color     string    `json:"color"`
	Author    string    `json:"author"`
	AuthorURL string    `json:"author_url"`
	FetchedAt time.Time `json:"fetched_at"`
}

func newPhotoResp(p background.Photo) photoResp {
	return photoResp{
		ID:        p.ID,
		URL:       p.URL,
		FullURL:   p.FullURL,
		Color:     p.Color,
		Author:    p.Author,
		AuthorURL: p.AuthorURL,
		FetchedAt: p.FetchedAt,
	}
}
