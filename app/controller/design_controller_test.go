package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Imraj-Rabbani/GoCart/design"
	"github.com/Imraj-Rabbani/GoCart/models"
	"github.com/Imraj-Rabbani/GoCart/service"
)

type fakeAuth struct {
	userID string
	err    error
}

func (f *fakeAuth) Authenticate(_ *http.Request) (string, error) {
	return f.userID, f.err
}

// fakeStores only answers ApprovedStoreID; the rest of the contract is
// unused by the design routes.
type fakeStores struct {
	approvedStoreID string
}

func (f *fakeStores) Create(context.Context, *models.StoreCreate) (*models.Store, error) {
	return nil, nil
}
func (f *fakeStores) GetByUserID(context.Context, string) (*models.Store, error)   { return nil, nil }
func (f *fakeStores) GetByUsername(context.Context, string) (*models.Store, error) { return nil, nil }
func (f *fakeStores) UsernameTaken(context.Context, string) (bool, error)          { return false, nil }
func (f *fakeStores) ApprovedStoreID(context.Context, string) (string, error) {
	return f.approvedStoreID, nil
}
func (f *fakeStores) ToggleActive(context.Context, string) (bool, error) { return false, nil }

type fakeProducts struct {
	created []*models.ProductCreate
	listed  []models.Product
}

func (f *fakeProducts) CreateProduct(_ context.Context, product *models.ProductCreate) (string, error) {
	f.created = append(f.created, product)
	return "prod-1", nil
}
func (f *fakeProducts) GetByID(context.Context, string) (*models.Product, error) { return nil, nil }
func (f *fakeProducts) ListByStore(context.Context, string) ([]models.Product, error) {
	return f.listed, nil
}
func (f *fakeProducts) ToggleStock(context.Context, string, string) error { return nil }

type fakeStorage struct {
	uploads int
}

func (f *fakeStorage) Upload(_ context.Context, _ []byte, filename, _ string) (string, error) {
	f.uploads++
	return "https://images.example.com/" + filename, nil
}

func newDesignController(products *fakeProducts) *DesignController {
	lib := design.NewBaseLibrary()
	base := image.NewNRGBA(image.Rect(0, 0, 400, 500))
	for y := 0; y < 500; y++ {
		for x := 0; x < 400; x++ {
			base.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}
	lib.Add(design.ProductTShirt, design.ColorWhite, design.SideFront, base)
	lib.Add(design.ProductTShirt, design.ColorWhite, design.SideBack, base)

	return NewDesignController(
		&fakeAuth{userID: "user-1"},
		&fakeStores{approvedStoreID: "store-1"},
		products,
		design.NewCompositor(lib),
		design.NewSubmitter(&fakeStorage{}, products, 499),
	)
}

func artworkPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 255, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func designForm(t *testing.T, fields map[string]string, artwork [][]byte) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	for i, data := range artwork {
		part, err := writer.CreateFormFile("assets", "art.png")
		require.NoError(t, err, "artwork %d", i)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return &body, writer.FormDataContentType()
}

func TestSubmitDesign(t *testing.T) {
	products := &fakeProducts{}
	ctrl := newDesignController(products)

	body, contentType := designForm(t, map[string]string{
		"productType": "T-shirt",
		"color":       "white",
		"name":        "Summer Tee",
		"tags":        "summer, bright",
		"placements":  `[{"asset":0,"side":"front","x":40,"y":30,"scale":1}]`,
	}, [][]byte{artworkPNG(t)})

	req := httptest.NewRequest(http.MethodPost, "/api/store/design", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	ctrl.SubmitDesign(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp models.DesignResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "prod-1", resp.ProductID)

	require.Len(t, products.created, 1)
	created := products.created[0]
	assert.Equal(t, "store-1", created.StoreID)
	assert.Equal(t, "Summer Tee", created.Name)
	assert.Equal(t, []string{"summer", "bright"}, created.Tags)
	assert.Equal(t, "T-shirt", created.Category)
	assert.Len(t, created.Images, 2)
}

func TestSubmitDesignWithoutPlacements(t *testing.T) {
	ctrl := newDesignController(&fakeProducts{})

	body, contentType := designForm(t, map[string]string{
		"productType": "T-shirt",
		"color":       "white",
		"name":        "Summer Tee",
	}, [][]byte{artworkPNG(t)})

	req := httptest.NewRequest(http.MethodPost, "/api/store/design", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	ctrl.SubmitDesign(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Please design something first!")
}

func TestSubmitDesignInvalidGarment(t *testing.T) {
	ctrl := newDesignController(&fakeProducts{})

	body, contentType := designForm(t, map[string]string{
		"productType": "Mug",
		"color":       "white",
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/store/design", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	ctrl.SubmitDesign(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitDesignNotSeller(t *testing.T) {
	ctrl := NewDesignController(
		&fakeAuth{err: service.ErrUnauthorized},
		&fakeStores{},
		&fakeProducts{},
		design.NewCompositor(design.NewBaseLibrary()),
		design.NewSubmitter(&fakeStorage{}, &fakeProducts{}, 499),
	)

	req := httptest.NewRequest(http.MethodPost, "/api/store/design", nil)
	rec := httptest.NewRecorder()

	ctrl.SubmitDesign(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSubmitDesignNoApprovedStore(t *testing.T) {
	ctrl := NewDesignController(
		&fakeAuth{userID: "user-1"},
		&fakeStores{approvedStoreID: ""},
		&fakeProducts{},
		design.NewCompositor(design.NewBaseLibrary()),
		design.NewSubmitter(&fakeStorage{}, &fakeProducts{}, 499),
	)

	req := httptest.NewRequest(http.MethodPost, "/api/store/design", nil)
	rec := httptest.NewRecorder()

	ctrl.SubmitDesign(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListDesigns(t *testing.T) {
	products := &fakeProducts{listed: []models.Product{{ID: "p1", Name: "Summer Tee"}}}
	ctrl := newDesignController(products)

	req := httptest.NewRequest(http.MethodGet, "/api/store/design", nil)
	rec := httptest.NewRecorder()

	ctrl.ListDesigns(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.ProductListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Products, 1)
	assert.Equal(t, "p1", resp.Products[0].ID)
}
