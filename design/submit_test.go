package design

import (
	"context"
	"errors"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Imraj-Rabbani/GoCart/models"
)

type uploadCall struct {
	filename string
	folder   string
	size     int
}

type fakeUploader struct {
	calls  []uploadCall
	failOn string
}

func (f *fakeUploader) Upload(_ context.Context, data []byte, filename, folder string) (string, error) {
	f.calls = append(f.calls, uploadCall{filename: filename, folder: folder, size: len(data)})
	if filename == f.failOn {
		return "", errors.New("storage unavailable")
	}
	return "https://images.example.com/" + filename, nil
}

type fakeCreator struct {
	created []*models.ProductCreate
	err     error
}

func (f *fakeCreator) CreateProduct(_ context.Context, product *models.ProductCreate) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.created = append(f.created, product)
	return "prod-123", nil
}

func newSubmitFixture(t *testing.T) (*Session, *SideImages) {
	t.Helper()
	s := NewSession(ProductHoodie, ColorBlack)
	s.Name = "Night Rider"
	s.Tags = []string{"dark", "minimal"}
	asset, err := s.AddAsset(pngSquare(t, 32, color.NRGBA{R: 255, A: 255}), "art.png")
	require.NoError(t, err)
	_, err = s.AddPlacement(asset.ID, SideFront)
	require.NoError(t, err)

	return s, &SideImages{Front: []byte("front-png"), Back: []byte("back-png")}
}

func TestSubmitMissingName(t *testing.T) {
	s, images := newSubmitFixture(t)
	s.Name = "   "

	uploader := &fakeUploader{}
	sub := NewSubmitter(uploader, &fakeCreator{}, 499)

	_, err := sub.Submit(context.Background(), s, images, "store-1")
	assert.ErrorIs(t, err, ErrMissingName)
	assert.Empty(t, uploader.calls)
}

func TestSubmitEmptyDesign(t *testing.T) {
	s, images := newSubmitFixture(t)
	s.RemovePlacement(s.Placements()[0].ID)

	uploader := &fakeUploader{}
	sub := NewSubmitter(uploader, &fakeCreator{}, 499)

	_, err := sub.Submit(context.Background(), s, images, "store-1")
	assert.ErrorIs(t, err, ErrEmptyDesign)
	assert.Empty(t, uploader.calls)
}

func TestSubmitUploadFailureLeavesSessionIntact(t *testing.T) {
	s, images := newSubmitFixture(t)

	uploader := &fakeUploader{failOn: "back-view.png"}
	creator := &fakeCreator{}
	sub := NewSubmitter(uploader, creator, 499)

	_, err := sub.Submit(context.Background(), s, images, "store-1")
	assert.Error(t, err)
	assert.Empty(t, creator.created)

	// The session survives for a retry.
	assert.False(t, s.Empty())
	assert.Equal(t, "Night Rider", s.Name)
}

func TestSubmitCreateFailureLeavesSessionIntact(t *testing.T) {
	s, images := newSubmitFixture(t)

	sub := NewSubmitter(&fakeUploader{}, &fakeCreator{err: errors.New("db down")}, 499)
	_, err := sub.Submit(context.Background(), s, images, "store-1")
	assert.Error(t, err)
	assert.False(t, s.Empty())
}

func TestSubmitSuccess(t *testing.T) {
	s, images := newSubmitFixture(t)

	uploader := &fakeUploader{}
	creator := &fakeCreator{}
	sub := NewSubmitter(uploader, creator, 499)

	productID, err := sub.Submit(context.Background(), s, images, "store-1")
	require.NoError(t, err)
	assert.Equal(t, "prod-123", productID)

	// Front uploads first, then back, into the product images folder.
	require.Len(t, uploader.calls, 2)
	assert.Equal(t, "front-view.png", uploader.calls[0].filename)
	assert.Equal(t, "back-view.png", uploader.calls[1].filename)
	assert.Equal(t, "product-images", uploader.calls[0].folder)

	require.Len(t, creator.created, 1)
	created := creator.created[0]
	assert.Equal(t, "store-1", created.StoreID)
	assert.Equal(t, "Night Rider", created.Name)
	assert.Equal(t, []string{"dark", "minimal"}, created.Tags)
	assert.Equal(t, "Hoodie", created.Category)
	assert.Equal(t, "black", created.Color)
	assert.Equal(t, int64(499), created.MRP)
	assert.Equal(t, []string{
		"https://images.example.com/front-view.png",
		"https://images.example.com/back-view.png",
	}, created.Images)

	// One-shot: success clears the working session.
	assert.True(t, s.Empty())
	assert.Empty(t, s.Name)
}
