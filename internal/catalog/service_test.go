package catalog

import (
	"context"
	"testing"

	"github.com/fulltechhq/fulltech-backend/pkg/db/models"
	pkgerrors "github.com/fulltechhq/fulltech-backend/pkg/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type stubCatalogRepo struct {
	products   map[uuid.UUID]*models.Product
	categories map[string]*models.Category
	lastFilter ProductFilter
	deleted    []uuid.UUID
}

func newStubCatalogRepo() *stubCatalogRepo {
	return &stubCatalogRepo{
		products:   map[uuid.UUID]*models.Product{},
		categories: map[string]*models.Category{},
	}
}

func (s *stubCatalogRepo) WithTx(tx *gorm.DB) Repository { return s }

func (s *stubCatalogRepo) CreateProduct(ctx context.Context, product *models.Product) (*models.Product, error) {
	product.ID = uuid.New()
	s.products[product.ID] = product
	return product, nil
}

func (s *stubCatalogRepo) FindProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	if product, ok := s.products[id]; ok {
		return product, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubCatalogRepo) UpdateProduct(ctx context.Context, product *models.Product) error {
	s.products[product.ID] = product
	return nil
}

func (s *stubCatalogRepo) DeleteProduct(ctx context.Context, id uuid.UUID) (bool, error) {
	if _, ok := s.products[id]; !ok {
		return false, nil
	}
	delete(s.products, id)
	s.deleted = append(s.deleted, id)
	return true, nil
}

func (s *stubCatalogRepo) ListProducts(ctx context.Context, filter ProductFilter) (*ProductList, error) {
	s.lastFilter = filter
	return &ProductList{}, nil
}

func (s *stubCatalogRepo) ListCategories(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	for _, category := range s.categories {
		out = append(out, *category)
	}
	return out, nil
}

func (s *stubCatalogRepo) FindCategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	if category, ok := s.categories[slug]; ok {
		return category, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubCatalogRepo) UpsertCategory(ctx context.Context, category *models.Category) error {
	if existing, ok := s.categories[category.Slug]; ok {
		existing.Name = category.Name
		existing.Position = category.Position
		return nil
	}
	category.ID = uuid.New()
	s.categories[category.Slug] = category
	return nil
}

func newTestService(t *testing.T, repo Repository) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{Repo: repo})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestListPublicForcesActiveFilter(t *testing.T) {
	repo := newStubCatalogRepo()
	svc := newTestService(t, repo)

	if _, err := svc.ListPublic(context.Background(), ProductFilter{CategorySlug: "gpus"}); err != nil {
		t.Fatalf("ListPublic: %v", err)
	}
	if !repo.lastFilter.ActiveOnly {
		t.Fatal("expected active-only filter")
	}
	if repo.lastFilter.CategorySlug != "gpus" {
		t.Fatalf("category filter dropped: %q", repo.lastFilter.CategorySlug)
	}
}

func TestGetPublicHidesInactiveProduct(t *testing.T) {
	repo := newStubCatalogRepo()
	svc := newTestService(t, repo)

	product, err := svc.Create(context.Background(), CreateProductInput{
		SKU:        "FT-GPU-4080",
		Title:      "RTX 4080 Super",
		PriceCents: 99999,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	inactive := false
	if _, err := svc.Update(context.Background(), product.ID, UpdateProductInput{IsActive: &inactive}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	_, err = svc.GetPublic(context.Background(), product.ID)
	if appErr := pkgerrors.As(err); appErr == nil || appErr.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found for inactive product, got %v", err)
	}
}

func TestCreateValidatesSKUAndPrice(t *testing.T) {
	svc := newTestService(t, newStubCatalogRepo())

	_, err := svc.Create(context.Background(), CreateProductInput{Title: "No SKU", PriceCents: 100})
	if appErr := pkgerrors.As(err); appErr == nil || appErr.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for missing sku, got %v", err)
	}

	_, err = svc.Create(context.Background(), CreateProductInput{SKU: "X", Title: "Negative", PriceCents: -1})
	if appErr := pkgerrors.As(err); appErr == nil || appErr.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for negative price, got %v", err)
	}
}

func TestUpdateAppliesPartialFields(t *testing.T) {
	repo := newStubCatalogRepo()
	svc := newTestService(t, repo)

	product, err := svc.Create(context.Background(), CreateProductInput{
		SKU:        "FT-KB-01",
		Title:      "Keyboard",
		PriceCents: 4999,
		Tags:       []string{"peripherals"},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	newPrice := int64(3999)
	updated, err := svc.Update(context.Background(), product.ID, UpdateProductInput{PriceCents: &newPrice})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.PriceCents != 3999 {
		t.Fatalf("price not applied: %d", updated.PriceCents)
	}
	if updated.Title != "Keyboard" {
		t.Fatalf("untouched field mutated: %q", updated.Title)
	}
	if len(updated.Tags) != 1 || updated.Tags[0] != "peripherals" {
		t.Fatalf("tags mutated: %v", updated.Tags)
	}
}

func TestDeleteMissingProduct(t *testing.T) {
	svc := newTestService(t, newStubCatalogRepo())

	err := svc.Delete(context.Background(), uuid.New())
	if appErr := pkgerrors.As(err); appErr == nil || appErr.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpsertCategoryNormalizesSlug(t *testing.T) {
	repo := newStubCatalogRepo()
	svc := newTestService(t, repo)

	category, err := svc.UpsertCategory(context.Background(), UpsertCategoryInput{
		Slug: "  GPUs ",
		Name: "Graphics Cards",
	})
	if err != nil {
		t.Fatalf("UpsertCategory: %v", err)
	}
	if category.Slug != "gpus" {
		t.Fatalf("slug not normalized: %q", category.Slug)
	}

	renamed, err := svc.UpsertCategory(context.Background(), UpsertCategoryInput{
		Slug:     "gpus",
		Name:     "GPUs & Accelerators",
		Position: 2,
	})
	if err != nil {
		t.Fatalf("UpsertCategory rename: %v", err)
	}
	if renamed.ID != category.ID {
		t.Fatal("expected upsert to reuse the existing row")
	}
	if renamed.Name != "GPUs & Accelerators" || renamed.Position != 2 {
		t.Fatalf("update not applied: %+v", renamed)
	}
}
