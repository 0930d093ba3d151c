package content

import (
	"context"
	"fmt"
	"strings"

	"github.com/fulltechhq/fulltech-backend/pkg/db/models"
	dbtypes "github.com/fulltechhq/fulltech-backend/pkg/db/types"
	pkgerrors "github.com/fulltechhq/fulltech-backend/pkg/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// publicConfigKeys are the only site config entries served without auth.
var publicConfigKeys = map[string]bool{
	"storefront":   true,
	"announcement": true,
	"footer":       true,
	"social_links": true,
	"referrals":    true,
}

// Service exposes hero slides and site configuration.
type Service interface {
	PublicSlides(ctx context.Context) ([]models.HeroSlide, error)
	CreateSlide(ctx context.Context, input CreateSlideInput) (*models.HeroSlide, error)
	UpdateSlide(ctx context.Context, slideID uuid.UUID, input UpdateSlideInput) (*models.HeroSlide, error)
	DeleteSlide(ctx context.Context, slideID uuid.UUID) error

	PublicConfig(ctx context.Context, key string) (*models.SiteConfig, error)
	PutConfig(ctx context.Context, input PutConfigInput) (*models.SiteConfig, error)
}

// ServiceParams collect the dependencies for NewService.
type ServiceParams struct {
	Repo Repository
}

type service struct {
	repo Repository
}

// NewService builds a content service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("content repository required")
	}
	return &service{repo: params.Repo}, nil
}

func (s *service) PublicSlides(ctx context.Context) ([]models.HeroSlide, error) {
	slides, err := s.repo.ListActiveSlides(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list hero slides")
	}
	return slides, nil
}

func (s *service) CreateSlide(ctx context.Context, input CreateSlideInput) (*models.HeroSlide, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "title required")
	}
	if strings.TrimSpace(input.ImageURL) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "image url required")
	}

	slide := &models.HeroSlide{
		Title:    strings.TrimSpace(input.Title),
		Subtitle: input.Subtitle,
		ImageURL: strings.TrimSpace(input.ImageURL),
		LinkURL:  input.LinkURL,
		Position: input.Position,
		IsActive: true,
	}
	if input.IsActive != nil {
		slide.IsActive = *input.IsActive
	}

	if _, err := s.repo.CreateSlide(ctx, slide); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create hero slide")
	}
	return slide, nil
}

func (s *service) UpdateSlide(ctx context.Context, slideID uuid.UUID, input UpdateSlideInput) (*models.HeroSlide, error) {
	if slideID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "slide id required")
	}
	slide, err := s.repo.FindSlideByID(ctx, slideID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "hero slide not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load hero slide")
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "title cannot be empty")
		}
		slide.Title = title
	}
	if input.Subtitle != nil {
		slide.Subtitle = input.Subtitle
	}
	if input.ImageURL != nil {
		imageURL := strings.TrimSpace(*input.ImageURL)
		if imageURL == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "image url cannot be empty")
		}
		slide.ImageURL = imageURL
	}
	if input.LinkURL != nil {
		slide.LinkURL = input.LinkURL
	}
	if input.Position != nil {
		slide.Position = *input.Position
	}
	if input.IsActive != nil {
		slide.IsActive = *input.IsActive
	}

	if err := s.repo.UpdateSlide(ctx, slide); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update hero slide")
	}
	return slide, nil
}

func (s *service) DeleteSlide(ctx context.Context, slideID uuid.UUID) error {
	if slideID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "slide id required")
	}
	deleted, err := s.repo.DeleteSlide(ctx, slideID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete hero slide")
	}
	if !deleted {
		return pkgerrors.New(pkgerrors.CodeNotFound, "hero slide not found")
	}
	return nil
}

// PublicConfig serves only whitelisted keys; everything else reads as
// missing so the key space stays unenumerable.
func (s *service) PublicConfig(ctx context.Context, key string) (*models.SiteConfig, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "config key required")
	}
	if !publicConfigKeys[key] {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "config not found")
	}
	config, err := s.repo.FindConfigByKey(ctx, key)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "config not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load site config")
	}
	return config, nil
}

func (s *service) PutConfig(ctx context.Context, input PutConfigInput) (*models.SiteConfig, error) {
	key := strings.ToLower(strings.TrimSpace(input.Key))
	if key == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "config key required")
	}
	if input.Value == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "config value required")
	}

	config := &models.SiteConfig{
		Key:   key,
		Value: dbtypes.JSONMap(input.Value),
	}
	if err := s.repo.UpsertConfig(ctx, config); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "upsert site config")
	}

	stored, err := s.repo.FindConfigByKey(ctx, key)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load site config")
	}
	return stored, nil
}
