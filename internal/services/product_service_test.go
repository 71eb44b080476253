package services_test

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"tokobaju/internal/apperrors"
	"tokobaju/internal/models"
	"tokobaju/internal/repositories"
	"tokobaju/internal/services"
)

func TestMain(m *testing.M) {
	log.SetOutput(os.Stdout)
	os.Exit(m.Run())
}

// setupProductService builds a ProductService over a file-backed SQLite
// database in a test temp dir, so transactions behave like a real store.
func setupProductService(t *testing.T) (*services.ProductService, *gorm.DB) {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "catalog.db") + "?_busy_timeout=5000"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Product{}, &models.ProductImage{}))

	repo := repositories.NewGORMProductRepository(db)
	return services.NewProductService(repo, nil), db
}

func testAdmin() *models.User {
	return &models.User{ID: uuid.New().String(), Roles: []string{models.RoleAdmin}}
}

func TestProductService_CreateDerivesSlug(t *testing.T) {
	svc, _ := setupProductService(t)
	admin := testAdmin()

	created, err := svc.Create(services.ProductInput{
		Title:  "T-Shirt Teslo",
		Sizes:  []string{"M"},
		Gender: "men",
		Images: []string{"one.jpg", "two.jpg"},
	}, admin)
	assert.NoError(t, err)
	assert.Equal(t, "t-shirt_teslo", created.Slug)
	assert.Equal(t, []string{"one.jpg", "two.jpg"}, created.Images)

	created, err = svc.Create(services.ProductInput{
		Title:  "Women's Tee",
		Sizes:  []string{"S"},
		Gender: "women",
	}, admin)
	assert.NoError(t, err)
	assert.Equal(t, "womens_tee", created.Slug)
}

func TestProductService_CreateDuplicateTitleConflicts(t *testing.T) {
	svc, _ := setupProductService(t)
	admin := testAdmin()

	input := services.ProductInput{Title: "Unique Shirt", Sizes: []string{"M"}, Gender: "unisex"}
	_, err := svc.Create(input, admin)
	assert.NoError(t, err)

	_, err = svc.Create(input, admin)
	assert.Error(t, err)
	_, ok := apperrors.IsConflict(err)
	assert.True(t, ok, "duplicate title must surface as a conflict, got %v", err)
}

func TestProductService_UpdateMergesPatchAndReplacesImages(t *testing.T) {
	svc, _ := setupProductService(t)
	creator := testAdmin()
	editor := testAdmin()

	created, err := svc.Create(services.ProductInput{
		Title:  "Alpha Shirt",
		Price:  10,
		Stock:  5,
		Sizes:  []string{"M"},
		Gender: "men",
		Images: []string{"old-1.jpg", "old-2.jpg"},
	}, creator)
	require.NoError(t, err)

	newPrice := 25.5
	newImages := []string{"new-1.jpg", "new-2.jpg", "new-3.jpg"}
	updated, err := svc.Update(created.ID, services.ProductPatch{
		Price:  &newPrice,
		Images: &newImages,
	}, editor)
	assert.NoError(t, err)

	// Patched fields change, untouched fields survive, images are replaced
	// as an ordered whole.
	assert.Equal(t, 25.5, updated.Price)
	assert.Equal(t, "Alpha Shirt", updated.Title)
	assert.Equal(t, 5, updated.Stock)
	assert.Equal(t, newImages, updated.Images)

	// The coordinator answers with the re-read state, so a fresh lookup
	// must agree exactly.
	fetched, err := svc.FindOne(created.ID)
	assert.NoError(t, err)
	assert.Equal(t, updated.Images, fetched.Images)
	assert.Equal(t, updated.Price, fetched.Price)
}

func TestProductService_UpdateWithoutImagesKeepsImageSet(t *testing.T) {
	svc, _ := setupProductService(t)
	admin := testAdmin()

	created, err := svc.Create(services.ProductInput{
		Title:  "Beta Shirt",
		Sizes:  []string{"L"},
		Gender: "unisex",
		Images: []string{"keep-1.jpg", "keep-2.jpg"},
	}, admin)
	require.NoError(t, err)

	stock := 99
	updated, err := svc.Update(created.ID, services.ProductPatch{Stock: &stock}, admin)
	assert.NoError(t, err)
	assert.Equal(t, 99, updated.Stock)
	assert.Equal(t, []string{"keep-1.jpg", "keep-2.jpg"}, updated.Images)
}

func TestProductService_UpdateReassignsOwner(t *testing.T) {
	svc, db := setupProductService(t)
	creator := &models.User{ID: uuid.New().String(), Email: "creator@example.com", Roles: []string{models.RoleAdmin}, IsActive: true}
	editor := &models.User{ID: uuid.New().String(), Email: "editor@example.com", Roles: []string{models.RoleAdmin}, IsActive: true}
	require.NoError(t, db.Create(creator).Error)
	require.NoError(t, db.Create(editor).Error)

	created, err := svc.Create(services.ProductInput{
		Title:  "Gamma Shirt",
		Sizes:  []string{"M"},
		Gender: "kid",
	}, creator)
	require.NoError(t, err)
	require.NotNil(t, created.Owner)
	assert.Equal(t, creator.ID, created.Owner.ID)

	title := "Gamma Shirt Revised"
	updated, err := svc.Update(created.ID, services.ProductPatch{Title: &title}, editor)
	assert.NoError(t, err)
	require.NotNil(t, updated.Owner)
	assert.Equal(t, editor.ID, updated.Owner.ID)
	assert.Empty(t, updated.Owner.Password)
}

func TestProductService_UpdateNotFound(t *testing.T) {
	svc, _ := setupProductService(t)
	admin := testAdmin()

	price := 1.0
	_, err := svc.Update(uuid.New().String(), services.ProductPatch{Price: &price}, admin)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

// A failure inside the update transaction must roll everything back: the
// images deleted mid-flight reappear and no field of the product changes.
func TestProductService_FailedUpdateRollsBackImageReplacement(t *testing.T) {
	svc, db := setupProductService(t)
	admin := testAdmin()

	_, err := svc.Create(services.ProductInput{
		Title:  "Taken Title",
		Sizes:  []string{"M"},
		Gender: "men",
	}, admin)
	require.NoError(t, err)

	victim, err := svc.Create(services.ProductInput{
		Title:  "Victim Shirt",
		Price:  10,
		Sizes:  []string{"M"},
		Gender: "men",
		Images: []string{"victim-1.jpg", "victim-2.jpg"},
	}, admin)
	require.NoError(t, err)

	// Replacing the images and renaming onto an existing unique title in
	// one patch: image rows are rewritten first, the product save then
	// violates the unique constraint and the whole transaction unwinds.
	conflictTitle := "Taken Title"
	newImages := []string{"never-1.jpg"}
	_, err = svc.Update(victim.ID, services.ProductPatch{
		Title:  &conflictTitle,
		Images: &newImages,
	}, admin)
	assert.Error(t, err)
	_, ok := apperrors.IsConflict(err)
	assert.True(t, ok, "expected conflict, got %v", err)

	// Persisted state equals the pre-update state exactly.
	after, err := svc.FindOne(victim.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Victim Shirt", after.Title)
	assert.Equal(t, 10.0, after.Price)
	assert.Equal(t, []string{"victim-1.jpg", "victim-2.jpg"}, after.Images)

	var orphanCount int64
	require.NoError(t, db.Model(&models.ProductImage{}).Where("url = ?", "never-1.jpg").Count(&orphanCount).Error)
	assert.Zero(t, orphanCount, "no image row from the failed update may survive")
}

// Two simultaneous image replacements on the same product must serialize at
// the transaction boundary: the final image set is exactly one writer's
// set, never a mix.
func TestProductService_ConcurrentImageReplaceDoesNotInterleave(t *testing.T) {
	svc, _ := setupProductService(t)
	admin := testAdmin()

	created, err := svc.Create(services.ProductInput{
		Title:  "Contended Shirt",
		Sizes:  []string{"M"},
		Gender: "unisex",
		Images: []string{"seed.jpg"},
	}, admin)
	require.NoError(t, err)

	setA := []string{"a-1.jpg", "a-2.jpg"}
	setB := []string{"b-1.jpg", "b-2.jpg", "b-3.jpg"}

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, images := range [][]string{setA, setB} {
		wg.Add(1)
		go func(slot int, imgs []string) {
			defer wg.Done()
			patch := services.ProductPatch{Images: &imgs}
			_, errs[slot] = svc.Update(created.ID, patch, admin)
		}(i, images)
	}
	wg.Wait()

	assert.NoError(t, errs[0])
	assert.NoError(t, errs[1])

	after, err := svc.FindOne(created.ID)
	assert.NoError(t, err)
	assert.True(t,
		equalStrings(after.Images, setA) || equalStrings(after.Images, setB),
		"image set %v is neither writer's set", after.Images)
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestProductService_FindAllPagination(t *testing.T) {
	svc, _ := setupProductService(t)
	admin := testAdmin()

	for i := 0; i < 3; i++ {
		_, err := svc.Create(services.ProductInput{
			Title:  fmt.Sprintf("Paged Shirt %d", i),
			Sizes:  []string{"M"},
			Gender: "men",
		}, admin)
		require.NoError(t, err)
	}

	page, total, err := svc.FindAll(2, 0)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, page, 2)

	rest, total, err := svc.FindAll(10, 2)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, rest, 1)
}

func TestProductService_FindOneByIDTitleAndSlug(t *testing.T) {
	svc, _ := setupProductService(t)
	admin := testAdmin()

	created, err := svc.Create(services.ProductInput{
		Title:  "Women's Hoodie",
		Sizes:  []string{"S"},
		Gender: "women",
	}, admin)
	require.NoError(t, err)

	byID, err := svc.FindOne(created.ID)
	assert.NoError(t, err)
	assert.Equal(t, created.ID, byID.ID)

	byTitle, err := svc.FindOne("Women's Hoodie")
	assert.NoError(t, err)
	assert.Equal(t, created.ID, byTitle.ID)

	// Term lookup normalizes before matching the slug.
	bySlug, err := svc.FindOne("Women's hoodie")
	assert.NoError(t, err)
	assert.Equal(t, created.ID, bySlug.ID)

	_, err = svc.FindOne("no_such_product")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestProductService_DeleteRemovesImages(t *testing.T) {
	svc, db := setupProductService(t)
	admin := testAdmin()

	created, err := svc.Create(services.ProductInput{
		Title:  "Doomed Shirt",
		Sizes:  []string{"M"},
		Gender: "men",
		Images: []string{"doomed-1.jpg"},
	}, admin)
	require.NoError(t, err)

	assert.NoError(t, svc.Delete(created.ID))

	_, err = svc.FindOne(created.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	var imageCount int64
	require.NoError(t, db.Model(&models.ProductImage{}).Where("product_id = ?", created.ID).Count(&imageCount).Error)
	assert.Zero(t, imageCount)

	assert.ErrorIs(t, svc.Delete(created.ID), apperrors.ErrNotFound)
}
