package service

import (
	"context"
	"slices"

	"ashi-remedies/internal/domain"
	"ashi-remedies/internal/dto"
	"ashi-remedies/internal/matching"
)

// BodyMapService defines the interface for the visual checkup
type BodyMapService interface {
	Zones(ctx context.Context) ([]dto.BodyZoneSummary, error)
	Zone(ctx context.Context, zoneID, gender string) (*dto.BodyZoneResponse, error)
}

// bodyMapService implements BodyMapService
type bodyMapService struct {
	src SnapshotSource
}

// NewBodyMapService creates a new instance of bodyMapService
func NewBodyMapService(src SnapshotSource) BodyMapService {
	return &bodyMapService{src: src}
}

// Zones implements BodyMapService
func (s *bodyMapService) Zones(ctx context.Context) ([]dto.BodyZoneSummary, error) {
	snap, err := currentSnapshot(ctx, s.src)
	if err != nil {
		return nil, err
	}
	ids := snap.ZoneIDs()
	zones := make([]dto.BodyZoneSummary, 0, len(ids))
	for _, id := range ids {
		z := snap.BodyZones[id]
		zones = append(zones, dto.BodyZoneSummary{ID: id, Name: z.Name, Description: z.Description})
	}
	return zones, nil
}

// Zone implements BodyMapService
func (s *bodyMapService) Zone(ctx context.Context, zoneID, gender string) (*dto.BodyZoneResponse, error) {
	g, err := domain.ParseGender(gender)
	if err != nil {
		return nil, err
	}
	snap, err := currentSnapshot(ctx, s.src)
	if err != nil {
		return nil, err
	}
	zone, ok := snap.Zone(zoneID)
	if !ok {
		return nil, domain.NewZoneNotFoundError(zoneID)
	}

	symptoms := zone.SymptomsFor(g)
	remedies := slices.Collect(matching.RemediesForSymptoms(snap.Remedies, symptoms))
	if remedies == nil {
		remedies = []domain.Remedy{}
	}
	return &dto.BodyZoneResponse{
		ID:          zoneID,
		Name:        zone.Name,
		Description: zone.Description,
		Gender:      g,
		Symptoms:    symptoms,
		Remedies:    remedies,
	}, nil
}
