package schema

import "errors"

type BannerV1 struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle,omitempty"`
	Image     string `json:"image,omitempty"`
	Link      string `json:"link,omitempty"`
	Active    Flag   `json:"active"`
	CreatedAt Millis `json:"createdAt"`
}

type BlogPostV1 struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Slug      string `json:"slug"`
	Author    string `json:"author,omitempty"`
	Image     string `json:"image,omitempty"`
	Content   string `json:"content"`
	ReadTime  Number `json:"readTime"`
	CreatedAt Millis `json:"createdAt"`
}

type ReviewV1 struct {
	ID        string `json:"id"`
	ProductID string `json:"productId"`
	Author    string `json:"author"`
	Rating    Number `json:"rating"`
	Comment   string `json:"comment,omitempty"`
	CreatedAt Millis `json:"createdAt"`
}

func (b BannerV1) Validate() error {
	if b.ID == "" || b.Title == "" {
		return errors.New("banner: missing id or title")
	}
	return nil
}

func (p BlogPostV1) Validate() error {
	if p.ID == "" || p.Title == "" {
		return errors.New("post: missing id or title")
	}
	return nil
}

func (r ReviewV1) Validate() error {
	if r.ID == "" || r.ProductID == "" {
		return errors.New("review: missing id or product id")
	}
	if r.Rating < 1 || r.Rating > 5 {
		return errors.New("review: rating out of range")
	}
	return nil
}
