package domain

import (
	"strings"
	"time"
)

// Story is a reader submitted remedy experience.
type Story struct {
	ID          string    `json:"id"`
	User        string    `json:"user"`
	Location    string    `json:"location"`
	Remedy      string    `json:"remedy"`
	Story       string    `json:"story"`
	Likes       int       `json:"likes"`
	Verified    bool      `json:"verified"`
	Tags        []string  `json:"tags"`
	SubmittedAt time.Time `json:"submittedAt,omitempty"`
}

// Validate checks the fields a reader must fill in.
func (s *Story) Validate() error {
	var errs ValidationErrors
	if strings.TrimSpace(s.User) == "" {
		errs = append(errs, NewMissingFieldError("user"))
	}
	if strings.TrimSpace(s.Remedy) == "" {
		errs = append(errs, NewMissingFieldError("remedy"))
	}
	if strings.TrimSpace(s.Story) == "" {
		errs = append(errs, NewMissingFieldError("story"))
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ExpertArticle is a published guest article.
type ExpertArticle struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Author   string `json:"author"`
	Role     string `json:"role"`
	Preview  string `json:"preview"`
	Content  string `json:"content,omitempty"`
	Date     string `json:"date"`
	Image    string `json:"image,omitempty"`
	ReadTime string `json:"readTime,omitempty"`
}

// SiteSEO is the site-wide search engine configuration edited from the admin console.
type SiteSEO struct {
	SiteTitle       string `json:"siteTitle"`
	TitleSeparator  string `json:"titleSeparator"`
	Tagline         string `json:"tagline"`
	MetaDescription string `json:"metaDescription"`
	Keywords        string `json:"keywords"`
	OGImage         string `json:"ogImage,omitempty"`
	Robots          string `json:"robots"`
	JSONLDType      string `json:"jsonLdType"`
}

// Validate validates the SEO settings
func (s *SiteSEO) Validate() error {
	var errs ValidationErrors
	if strings.TrimSpace(s.SiteTitle) == "" {
		errs = append(errs, NewMissingFieldError("siteTitle"))
	}
	if len(s.MetaDescription) > 320 {
		errs = append(errs, NewOutOfRangeError("metaDescription", len(s.MetaDescription), 0, 320))
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PageTitle joins a page name with the site title, e.g. "Remedies | Ashi's Remedies".
func (s SiteSEO) PageTitle(page string) string {
	if page == "" {
		return s.SiteTitle
	}
	return page + " " + s.TitleSeparator + " " + s.SiteTitle
}
