package domain

import "time"

type (
	Banner struct {
		BannerID  string
		Title     string
		Subtitle  string
		Image     string
		Link      string
		Active    bool
		CreatedAt time.Time
	}

	BlogPost struct {
		PostID    string
		Title     string
		Slug      string
		Author    string
		Image     string
		Content   string
		ReadTime  int
		CreatedAt time.Time
	}

	Review struct {
		ReviewID  string
		ProductID string
		Author    string
		Rating    int
		Comment   string
		CreatedAt time.Time
	}
)
