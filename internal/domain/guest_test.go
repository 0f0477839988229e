package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuestPost_Validate(t *testing.T) {
	p := GuestPost{Title: "Neem", Author: "Dr. Rao", Content: "Bitter but useful."}
	assert.NoError(t, p.Validate())

	var ve ValidationErrors
	require.ErrorAs(t, (&GuestPost{Title: " "}).Validate(), &ve)
	require.Len(t, ve, 3)
	assert.Equal(t, "title", ve[0].Field)
	assert.Equal(t, "author", ve[1].Field)
	assert.Equal(t, "content", ve[2].Field)
}

func TestGuestPost_Article(t *testing.T) {
	p := GuestPost{
		ID:          "01J9Z",
		Title:       "Turmeric at Night",
		Author:      "Dr. Rao",
		Content:     strings.Repeat("हल्दी ", 40),
		SubmittedAt: time.Date(2024, 10, 12, 9, 0, 0, 0, time.UTC),
	}

	a := p.Article()
	assert.Equal(t, "01J9Z", a.ID)
	assert.Equal(t, GuestExpertRole, a.Role)
	assert.Equal(t, DefaultArticleImage, a.Image)
	assert.Equal(t, DefaultReadTime, a.ReadTime)
	assert.Equal(t, "Oct 12, 2024", a.Date)
	assert.Equal(t, p.Content, a.Content)
	assert.Equal(t, 153, len([]rune(a.Preview)), "150 characters and an ellipsis")
	assert.True(t, strings.HasSuffix(a.Preview, "..."))

	p.Content = "Short."
	assert.Equal(t, "Short....", p.Article().Preview)
}

func TestGuestLink_Active(t *testing.T) {
	assert.True(t, GuestLink{Status: GuestLinkActive}.Active())
	assert.False(t, GuestLink{Status: GuestLinkPaused}.Active())
	assert.False(t, GuestLink{}.Active())
}

func TestFounderProfile_Validate(t *testing.T) {
	f := FounderProfile{
		Profile:  FounderBio{Name: "Ashi"},
		Timeline: []TimelineEvent{{Year: "2024", Role: "Founder"}},
	}
	assert.NoError(t, f.Validate())

	f.Profile.Name = ""
	f.Timeline = append(f.Timeline, TimelineEvent{})
	var ve ValidationErrors
	require.ErrorAs(t, f.Validate(), &ve)
	require.Len(t, ve, 3)
	assert.Equal(t, "profile.name", ve[0].Field)
	assert.Equal(t, "timeline[1].year", ve[1].Field)
	assert.Equal(t, "timeline[1].role", ve[2].Field)
}
