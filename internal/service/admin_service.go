package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"ashi-remedies/internal/config"
	"ashi-remedies/internal/content"
	"ashi-remedies/internal/domain"
	"ashi-remedies/internal/dto"
	"ashi-remedies/internal/logger"
	"ashi-remedies/internal/metrics"
	"ashi-remedies/internal/util"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	adminRole       = "admin"
	tokenIssuer     = "ashi-remedies"
	manualIDPrefix  = "manual_"
	bearerTokenType = "Bearer"
)

var (
	ErrInvalidCredentials = errors.New("invalid admin credentials")
	ErrLoginDisabled      = errors.New("admin login is not configured")
	ErrInvalidJWTToken    = errors.New("invalid jwt token")
)

// AdminService defines the interface for the admin console API.
type AdminService interface {
	Login(ctx context.Context, password string) (*dto.TokenResponse, error)
	ValidateToken(ctx context.Context, tokenString string) (*dto.AdminClaims, error)

	ReplaceRemedies(ctx context.Context, remedies []domain.Remedy) (*dto.ContentUpdateResponse, error)
	AddRemedy(ctx context.Context, req *dto.ManualRemedyRequest) (*domain.Remedy, error)
	UpdateRemedy(ctx context.Context, remedyID string, req *dto.ManualRemedyRequest) (*domain.Remedy, error)
	DeleteRemedy(ctx context.Context, remedyID string) error
	ReplaceIngredients(ctx context.Context, ingredients []domain.Ingredient) (*dto.ContentUpdateResponse, error)
	ReplaceQuiz(ctx context.Context, questions []domain.QuizQuestion) (*dto.ContentUpdateResponse, error)
	ReplaceBodyZones(ctx context.Context, zones map[string]domain.BodyZone) (*dto.ContentUpdateResponse, error)
	SEO(ctx context.Context) (*domain.SiteSEO, error)
	UpdateSEO(ctx context.Context, seo *domain.SiteSEO) (*dto.ContentUpdateResponse, error)
	Founder(ctx context.Context) (*domain.FounderProfile, error)
	UpdateFounder(ctx context.Context, founder *domain.FounderProfile) (*dto.ContentUpdateResponse, error)
}

type adminServiceImpl struct {
	store   domain.ContentStore
	src     SnapshotSource
	cfg     config.AdminConfig
	metrics metrics.Recorder
	mu      sync.Mutex
	now     func() time.Time
}

// NewAdminService creates a new instance of AdminService.
func NewAdminService(store domain.ContentStore, src SnapshotSource, cfg config.AdminConfig, recorder metrics.Recorder) (AdminService, error) {
	if cfg.PasswordHash != "" && len(cfg.JWTSecret) < 32 {
		return nil, errors.New("admin jwt secret must be at least 32 bytes long")
	}
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	return &adminServiceImpl{
		store:   store,
		src:     src,
		cfg:     cfg,
		metrics: recorder,
		now:     time.Now,
	}, nil
}

// Login checks the password against the configured bcrypt hash and issues a token.
func (s *adminServiceImpl) Login(ctx context.Context, password string) (*dto.TokenResponse, error) {
	if s.cfg.PasswordHash == "" {
		return nil, domain.NewError(domain.CodeForbidden, "Admin login is disabled", ErrLoginDisabled)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.PasswordHash), []byte(password)); err != nil {
		logger.Get().Warn("Admin login failed", zap.Error(err))
		return nil, domain.NewError(domain.CodeUnauthorized, "Invalid password", ErrInvalidCredentials)
	}

	now := s.now()
	expiresAt := now.Add(s.cfg.TokenTTL)
	claims := dto.AdminClaims{
		Role: adminRole,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        util.NewULID(),
			Issuer:    tokenIssuer,
			Subject:   adminRole,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, domain.NewInternalError("Failed to sign admin token", err)
	}
	logger.Get().Info("Admin logged in", zap.String("tokenID", claims.ID))
	return &dto.TokenResponse{AccessToken: signed, TokenType: bearerTokenType, ExpiresAt: expiresAt}, nil
}

// ValidateToken parses and verifies an admin token.
func (s *adminServiceImpl) ValidateToken(ctx context.Context, tokenString string) (*dto.AdminClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &dto.AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			logger.Get().Warn("Admin token expired", zap.Error(err))
		} else {
			logger.Get().Warn("Admin token validation failed", zap.Error(err))
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidJWTToken, err)
	}

	claims, ok := token.Claims.(*dto.AdminClaims)
	if !ok || !token.Valid || claims.Role != adminRole {
		return nil, ErrInvalidJWTToken
	}
	return claims, nil
}

// ReplaceRemedies implements AdminService
func (s *adminServiceImpl) ReplaceRemedies(ctx context.Context, remedies []domain.Remedy) (*dto.ContentUpdateResponse, error) {
	if err := domain.ValidateCatalog(remedies); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.publish(ctx, domain.KeyRemedies, remedies, len(remedies))
}

// AddRemedy implements AdminService. Manual remedies go to the top of the catalog.
func (s *adminServiceImpl) AddRemedy(ctx context.Context, req *dto.ManualRemedyRequest) (*domain.Remedy, error) {
	if req == nil {
		return nil, domain.NewInvalidInputError("remedy is required")
	}
	remedy := domain.Remedy{ID: manualIDPrefix + util.NewULID()}
	applyManualRemedy(&remedy, req)
	if err := remedy.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	snap, err := currentSnapshot(ctx, s.src)
	if err != nil {
		return nil, err
	}
	remedies := append([]domain.Remedy{remedy}, snap.Remedies...)
	if _, err := s.publish(ctx, domain.KeyRemedies, remedies, len(remedies)); err != nil {
		return nil, err
	}
	return &remedy, nil
}

// UpdateRemedy implements AdminService. Only the form fields are replaced.
func (s *adminServiceImpl) UpdateRemedy(ctx context.Context, remedyID string, req *dto.ManualRemedyRequest) (*domain.Remedy, error) {
	if req == nil {
		return nil, domain.NewInvalidInputError("remedy is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	snap, err := currentSnapshot(ctx, s.src)
	if err != nil {
		return nil, err
	}
	idx := slices.IndexFunc(snap.Remedies, func(r domain.Remedy) bool { return r.ID == remedyID })
	if idx < 0 {
		return nil, domain.NewRemedyNotFoundError(remedyID)
	}

	remedies := slices.Clone(snap.Remedies)
	updated := remedies[idx]
	applyManualRemedy(&updated, req)
	if err := updated.Validate(); err != nil {
		return nil, err
	}
	remedies[idx] = updated
	if _, err := s.publish(ctx, domain.KeyRemedies, remedies, len(remedies)); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteRemedy implements AdminService
func (s *adminServiceImpl) DeleteRemedy(ctx context.Context, remedyID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap, err := currentSnapshot(ctx, s.src)
	if err != nil {
		return err
	}
	idx := slices.IndexFunc(snap.Remedies, func(r domain.Remedy) bool { return r.ID == remedyID })
	if idx < 0 {
		return domain.NewRemedyNotFoundError(remedyID)
	}
	remedies := slices.Delete(slices.Clone(snap.Remedies), idx, idx+1)
	_, err = s.publish(ctx, domain.KeyRemedies, remedies, len(remedies))
	return err
}

// ReplaceIngredients implements AdminService
func (s *adminServiceImpl) ReplaceIngredients(ctx context.Context, ingredients []domain.Ingredient) (*dto.ContentUpdateResponse, error) {
	if err := domain.ValidatePantry(ingredients); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.publish(ctx, domain.KeyIngredients, ingredients, len(ingredients))
}

// ReplaceQuiz implements AdminService
func (s *adminServiceImpl) ReplaceQuiz(ctx context.Context, questions []domain.QuizQuestion) (*dto.ContentUpdateResponse, error) {
	if err := domain.ValidateQuestionBank(questions); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.publish(ctx, domain.KeyQuiz, questions, len(questions))
}

// ReplaceBodyZones implements AdminService
func (s *adminServiceImpl) ReplaceBodyZones(ctx context.Context, zones map[string]domain.BodyZone) (*dto.ContentUpdateResponse, error) {
	if len(zones) == 0 {
		return nil, domain.ValidationErrors{domain.NewMissingFieldError("zones")}
	}
	if err := domain.ValidateBodyZones(zones); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.publish(ctx, domain.KeyBodyZones, zones, len(zones))
}

// SEO implements AdminService
func (s *adminServiceImpl) SEO(ctx context.Context) (*domain.SiteSEO, error) {
	snap, err := currentSnapshot(ctx, s.src)
	if err != nil {
		return nil, err
	}
	seo := snap.SEO
	return &seo, nil
}

// UpdateSEO implements AdminService
func (s *adminServiceImpl) UpdateSEO(ctx context.Context, seo *domain.SiteSEO) (*dto.ContentUpdateResponse, error) {
	if seo == nil {
		return nil, domain.NewInvalidInputError("seo settings are required")
	}
	if err := seo.Validate(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.publish(ctx, domain.KeySEO, seo, 0)
}

// Founder implements AdminService
func (s *adminServiceImpl) Founder(ctx context.Context) (*domain.FounderProfile, error) {
	snap, err := currentSnapshot(ctx, s.src)
	if err != nil {
		return nil, err
	}
	founder := snap.Founder
	return &founder, nil
}

// UpdateFounder implements AdminService. The whole profile is replaced.
func (s *adminServiceImpl) UpdateFounder(ctx context.Context, founder *domain.FounderProfile) (*dto.ContentUpdateResponse, error) {
	if founder == nil {
		return nil, domain.NewInvalidInputError("founder profile is required")
	}
	if err := founder.Validate(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.publish(ctx, domain.KeyFounder, founder, len(founder.Timeline))
}

// publish writes a document and rebuilds the snapshot so readers see it.
func (s *adminServiceImpl) publish(ctx context.Context, key string, doc any, count int) (*dto.ContentUpdateResponse, error) {
	if err := content.WriteDocument(ctx, s.store, key, doc); err != nil {
		logger.Get().Error("Failed to persist content", zap.String("key", key), zap.Error(err))
		return nil, domain.NewInternalError("Failed to save content", err)
	}

	start := s.now()
	snap, err := s.src.Reload(ctx)
	s.metrics.RecordContentReload(s.now().Sub(start), err)
	if err != nil {
		return nil, domain.NewInternalError("Content saved but reload failed", err)
	}
	logger.Get().Info("Content updated", zap.String("key", key), zap.Uint64("version", snap.Version), zap.Int("count", count))
	return &dto.ContentUpdateResponse{Key: key, Version: snap.Version, Count: count}, nil
}

// applyManualRemedy copies the admin form onto r. Empty optional fields keep
// their previous value; a missing image falls back to the default picture.
func applyManualRemedy(r *domain.Remedy, req *dto.ManualRemedyRequest) {
	r.Title = strings.TrimSpace(req.Title)
	r.Description = strings.TrimSpace(req.Description)
	r.Symptoms = util.SplitList(req.Symptoms, ",")
	r.Ingredients = util.SplitList(req.Ingredients, ",")
	r.Preparation = util.SplitList(req.Preparation, ";")
	r.Image = strings.TrimSpace(req.Image)
	if r.Image == "" {
		r.Image = domain.DefaultRemedyImage
	}
	if v := strings.TrimSpace(req.Tradition); v != "" {
		r.Tradition = v
	}
	if v := strings.TrimSpace(req.Science); v != "" {
		r.Science = v
	}
	if v := strings.TrimSpace(req.Time); v != "" {
		r.TimeToMake = v
	}
}
