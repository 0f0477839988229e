package handler_test

import (
	"testing"

	"ashi-remedies/internal/domain"
	"ashi-remedies/internal/dto"
	"ashi-remedies/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemedyHandler_Search(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name      string
		target    string
		wantTag   string
		wantIDs   []string
		wantCount int
	}{
		{
			name: "everything", target: "/api/remedies", wantTag: "All", wantCount: 8,
		},
		{
			name: "tag filter", target: "/api/remedies?tag=Insomnia", wantTag: "Insomnia",
			wantIDs: []string{"golden_milk", "ashwagandha_milk"}, wantCount: 2,
		},
		{
			name: "lowercase all sentinel", target: "/api/remedies?tag=all&q=KADHA", wantTag: "All",
			wantIDs: []string{"tulsi_kadha"}, wantCount: 1,
		},
		{
			name: "tags are case sensitive", target: "/api/remedies?tag=insomnia", wantTag: "insomnia",
			wantIDs: []string{}, wantCount: 0,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp := srv.do(t, "GET", tc.target, nil, "")
			require.Equal(t, fiber.StatusOK, resp.StatusCode)

			var body dto.RemedyListResponse
			decode(t, resp, &body)
			assert.Equal(t, tc.wantTag, body.Tag)
			assert.Equal(t, tc.wantCount, body.Count)
			if tc.wantIDs != nil {
				ids := make([]string, 0, len(body.Remedies))
				for _, r := range body.Remedies {
					ids = append(ids, r.ID)
				}
				assert.Equal(t, tc.wantIDs, ids)
			}
		})
	}
}

func TestRemedyHandler_SearchRejectsLongQuery(t *testing.T) {
	srv := newTestServer(t)
	long := make([]byte, 101)
	for i := range long {
		long[i] = 'a'
	}

	resp := srv.do(t, "GET", "/api/remedies?q="+string(long), nil, "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestRemedyHandler_TagsAndDetail(t *testing.T) {
	srv := newTestServer(t)

	resp := srv.do(t, "GET", "/api/remedies/tags", nil, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var tags []string
	decode(t, resp, &tags)
	require.NotEmpty(t, tags)
	assert.Equal(t, "All", tags[0])
	assert.Equal(t, []string{"All", "Cold", "Cough", "Sore Throat"}, tags[:4])

	resp = srv.do(t, "GET", "/api/remedies/golden_milk", nil, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var remedy domain.Remedy
	decode(t, resp, &remedy)
	assert.Equal(t, "Golden Milk (Haldi Doodh)", remedy.Title)

	resp = srv.do(t, "GET", "/api/remedies/unknown_remedy", nil, "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	var errBody middleware.ErrorResponse
	decode(t, resp, &errBody)
	assert.Equal(t, string(domain.CodeRemedyNotFound), errBody.Code)
}
