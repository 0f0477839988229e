package domain

import (
	"strings"
	"time"
)

// Guest link states.
const (
	GuestLinkActive = "Active"
	GuestLinkPaused = "Paused"
)

const (
	GuestExpertRole     = "Guest Expert"
	DefaultArticleImage = "https://images.unsplash.com/photo-1615485290382-441e4d049cb5?auto=format&fit=crop&q=80&w=600"
	DefaultReadTime     = "5 min read"

	articlePreviewRunes = 150
)

// GuestLink is an invite that lets an outside expert submit one or more
// articles for review without an admin account.
type GuestLink struct {
	ID        string    `json:"id"`
	Token     string    `json:"token"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created"`
}

// Active reports whether the link currently accepts submissions.
func (l GuestLink) Active() bool {
	return l.Status == GuestLinkActive
}

// GuestPost is an article submitted through a guest link, waiting for review.
type GuestPost struct {
	ID          string    `json:"id"`
	LinkID      string    `json:"linkId"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	Content     string    `json:"content"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// Validate checks the fields of the guest editor form.
func (p *GuestPost) Validate() error {
	var errs ValidationErrors
	if strings.TrimSpace(p.Title) == "" {
		errs = append(errs, NewMissingFieldError("title"))
	}
	if strings.TrimSpace(p.Author) == "" {
		errs = append(errs, NewMissingFieldError("author"))
	}
	if strings.TrimSpace(p.Content) == "" {
		errs = append(errs, NewMissingFieldError("content"))
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Article publishes the post as an expert article. The preview is the first
// 150 characters of the content followed by an ellipsis.
func (p GuestPost) Article() ExpertArticle {
	preview := []rune(p.Content)
	if len(preview) > articlePreviewRunes {
		preview = preview[:articlePreviewRunes]
	}
	return ExpertArticle{
		ID:       p.ID,
		Title:    p.Title,
		Author:   p.Author,
		Role:     GuestExpertRole,
		Preview:  string(preview) + "...",
		Content:  p.Content,
		Date:     p.SubmittedAt.Format("Jan 2, 2006"),
		Image:    DefaultArticleImage,
		ReadTime: DefaultReadTime,
	}
}
