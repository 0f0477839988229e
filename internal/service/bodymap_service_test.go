package service

import (
	"context"
	"testing"

	"ashi-remedies/internal/domain"
	"ashi-remedies/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBodyMapService_Zones(t *testing.T) {
	svc := NewBodyMapService(staticSource{snap: testSnapshot()})

	zones, err := svc.Zones(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []dto.BodyZoneSummary{{ID: "chest", Name: "Chest"}, {ID: "pelvis", Name: "Pelvis"}}, zones)
}

func TestBodyMapService_Zone(t *testing.T) {
	svc := NewBodyMapService(staticSource{snap: testSnapshot()})

	female, err := svc.Zone(context.Background(), "pelvis", "")
	require.NoError(t, err)
	assert.Equal(t, domain.GenderFemale, female.Gender)
	assert.Equal(t, []string{"Menstrual Cramps"}, female.Symptoms)
	require.Len(t, female.Remedies, 1)
	assert.Equal(t, "cramp_tea", female.Remedies[0].ID)

	male, err := svc.Zone(context.Background(), "pelvis", "male")
	require.NoError(t, err)
	assert.Equal(t, []string{"Prostate Discomfort"}, male.Symptoms)
	assert.NotNil(t, male.Remedies)
	assert.Empty(t, male.Remedies)

	chest, err := svc.Zone(context.Background(), "chest", "female")
	require.NoError(t, err)
	require.Len(t, chest.Remedies, 2)
	assert.Equal(t, "ginger_tea", chest.Remedies[0].ID)
	assert.Equal(t, "honey_lemon", chest.Remedies[1].ID)
}

func TestBodyMapService_ZoneErrors(t *testing.T) {
	svc := NewBodyMapService(staticSource{snap: testSnapshot()})

	_, err := svc.Zone(context.Background(), "tail", "female")
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeZoneNotFound, domainErr.Code)

	_, err = svc.Zone(context.Background(), "chest", "robot")
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeInvalidInput, domainErr.Code)
}
