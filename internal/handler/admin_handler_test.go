package handler_test

import (
	"strings"
	"testing"

	"ashi-remedies/internal/domain"
	"ashi-remedies/internal/dto"
	"ashi-remedies/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminHandler_Login(t *testing.T) {
	srv := newTestServer(t)

	resp := srv.do(t, "POST", "/api/admin/login", map[string]string{"password": "wrong"}, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp = srv.do(t, "POST", "/api/admin/login", map[string]string{}, "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = srv.do(t, "POST", "/api/admin/login", map[string]string{"password": testAdminPassword}, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var token dto.TokenResponse
	decode(t, resp, &token)
	assert.Equal(t, "Bearer", token.TokenType)
	assert.NotEmpty(t, token.AccessToken)
}

func TestAdminHandler_RoutesRequireToken(t *testing.T) {
	srv := newTestServer(t)

	routes := []struct{ method, target string }{
		{"GET", "/api/admin/stories/pending"},
		{"POST", "/api/admin/stories/abc/approve"},
		{"DELETE", "/api/admin/stories/abc"},
		{"DELETE", "/api/admin/stories/live/abc"},
		{"DELETE", "/api/admin/articles/1"},
		{"PUT", "/api/admin/remedies"},
		{"POST", "/api/admin/remedies"},
		{"PUT", "/api/admin/remedies/golden_milk"},
		{"DELETE", "/api/admin/remedies/golden_milk"},
		{"PUT", "/api/admin/ingredients"},
		{"PUT", "/api/admin/quiz"},
		{"PUT", "/api/admin/body-zones"},
		{"PUT", "/api/admin/seo"},
		{"PUT", "/api/admin/founder"},
		{"GET", "/api/admin/guest-links"},
		{"POST", "/api/admin/guest-links"},
		{"POST", "/api/admin/guest-links/abc/toggle"},
		{"DELETE", "/api/admin/guest-links/abc"},
		{"GET", "/api/admin/guest-posts"},
		{"POST", "/api/admin/guest-posts/abc/approve"},
		{"DELETE", "/api/admin/guest-posts/abc"},
	}
	for _, r := range routes {
		t.Run(r.method+" "+r.target, func(t *testing.T) {
			resp := srv.do(t, r.method, r.target, nil, "")
			assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

			resp = srv.do(t, r.method, r.target, nil, "forged.token.value")
			assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		})
	}
}

func TestAdminHandler_StoryModeration(t *testing.T) {
	srv := newTestServer(t)
	token := srv.login(t)

	resp := srv.do(t, "POST", "/api/community/stories", dto.StorySubmissionRequest{
		User: "Meera", Location: "Pune", Remedy: "Golden Milk", Story: "Slept well all week.", Tags: "Sleep",
	}, "")
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var submitted domain.Story
	decode(t, resp, &submitted)

	resp = srv.do(t, "POST", "/api/community/stories", dto.StorySubmissionRequest{User: "Ravi"}, "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = srv.do(t, "GET", "/api/admin/stories/pending", nil, token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var pending []domain.Story
	decode(t, resp, &pending)
	require.Len(t, pending, 1)
	assert.Equal(t, submitted.ID, pending[0].ID)

	// Bundled stories are shown until the first approval.
	resp = srv.do(t, "GET", "/api/community/stories", nil, "")
	var live []domain.Story
	decode(t, resp, &live)
	assert.Len(t, live, 2)

	resp = srv.do(t, "POST", "/api/admin/stories/"+submitted.ID+"/approve", nil, token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var approved domain.Story
	decode(t, resp, &approved)
	assert.True(t, approved.Verified)

	resp = srv.do(t, "GET", "/api/community/stories", nil, "")
	decode(t, resp, &live)
	require.Len(t, live, 1)
	assert.Equal(t, submitted.ID, live[0].ID)

	resp = srv.do(t, "DELETE", "/api/admin/stories/"+submitted.ID, nil, token)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode, "no longer pending")

	resp = srv.do(t, "DELETE", "/api/admin/stories/live/"+submitted.ID, nil, token)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = srv.do(t, "GET", "/api/community/articles", nil, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var articles []domain.ExpertArticle
	decode(t, resp, &articles)
	require.NotEmpty(t, articles)

	resp = srv.do(t, "DELETE", "/api/admin/articles/"+articles[0].ID, nil, token)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestAdminHandler_RemedyEditsAreServedImmediately(t *testing.T) {
	srv := newTestServer(t)
	token := srv.login(t)

	resp := srv.do(t, "POST", "/api/admin/remedies", dto.ManualRemedyRequest{
		Title: "Ajwain Water", Description: "Settles gas", Symptoms: "Bloating, Gas", Ingredients: "ajwain", Preparation: "Boil; Strain",
	}, token)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var added domain.Remedy
	decode(t, resp, &added)
	assert.True(t, strings.HasPrefix(added.ID, "manual_"))

	resp = srv.do(t, "GET", "/api/remedies?tag=Gas", nil, "")
	var list dto.RemedyListResponse
	decode(t, resp, &list)
	require.Equal(t, 1, list.Count)
	assert.Equal(t, added.ID, list.Remedies[0].ID)

	resp = srv.do(t, "PUT", "/api/admin/remedies/"+added.ID, dto.ManualRemedyRequest{
		Title: "Ajwain Tea", Symptoms: "Bloating", Ingredients: "ajwain",
	}, token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = srv.do(t, "GET", "/api/remedies/"+added.ID, nil, "")
	var fetched domain.Remedy
	decode(t, resp, &fetched)
	assert.Equal(t, "Ajwain Tea", fetched.Title)

	resp = srv.do(t, "DELETE", "/api/admin/remedies/"+added.ID, nil, token)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	resp = srv.do(t, "GET", "/api/remedies/"+added.ID, nil, "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestAdminHandler_ReplaceDocuments(t *testing.T) {
	srv := newTestServer(t)
	token := srv.login(t)

	quiz := []domain.QuizQuestion{{
		ID: 1, Question: "Your frame?", Category: "Body",
		Options: []domain.QuizOption{{Text: "Thin", Type: domain.Vata}, {Text: "Broad", Type: domain.Kapha}},
	}}
	resp := srv.do(t, "PUT", "/api/admin/quiz", quiz, token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var update dto.ContentUpdateResponse
	decode(t, resp, &update)
	assert.Equal(t, domain.KeyQuiz, update.Key)
	assert.Equal(t, 1, update.Count)

	resp = srv.do(t, "GET", "/api/quiz/questions", nil, "")
	var questions []domain.QuizQuestion
	decode(t, resp, &questions)
	assert.Len(t, questions, 1)

	// Unknown dosha labels are rejected before anything is stored.
	resp = srv.do(t, "PUT", "/api/admin/quiz", `[{"id":1,"question":"?","options":[{"text":"x","type":"earth"}]}]`, token)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	var errBody middleware.ErrorResponse
	decode(t, resp, &errBody)
	assert.Equal(t, string(domain.CodeInvalidInput), errBody.Code)

	resp = srv.do(t, "PUT", "/api/admin/quiz", []domain.QuizQuestion{{ID: 1, Question: "No options?"}}, token)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	var verr middleware.ValidationErrorResponse
	decode(t, resp, &verr)
	assert.NotEmpty(t, verr.Errors)

	resp = srv.do(t, "PUT", "/api/admin/ingredients", []domain.Ingredient{{ID: "ginger", Name: "Ginger"}}, token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp = srv.do(t, "POST", "/api/lab/match", dto.LabMatchRequest{Ingredients: []string{"honey"}}, "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "honey left the pantry")

	resp = srv.do(t, "PUT", "/api/admin/body-zones", map[string]domain.BodyZone{
		"back": {Name: "Back", Symptoms: []domain.ZoneSymptom{{Name: "Lower Back Pain", Type: "common"}}},
	}, token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp = srv.do(t, "GET", "/api/body-zones/back", nil, "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = srv.do(t, "PUT", "/api/admin/seo", domain.SiteSEO{SiteTitle: "Ashi Ayurveda", TitleSeparator: "-"}, token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp = srv.do(t, "GET", "/api/seo", nil, "")
	var seo domain.SiteSEO
	decode(t, resp, &seo)
	assert.Equal(t, "Ashi Ayurveda", seo.SiteTitle)

	resp = srv.do(t, "PUT", "/api/admin/remedies", []domain.Remedy{{ID: "only", Title: "Only Remedy"}}, token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp = srv.do(t, "GET", "/api/remedies", nil, "")
	var list dto.RemedyListResponse
	decode(t, resp, &list)
	assert.Equal(t, 1, list.Count)
}
