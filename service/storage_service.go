package service

import (
	"bytes"
	"context"
	"fmt"
	"log"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// StorageService stores image bytes on Google Drive and hands back durable
// public URLs. Implements StorageServiceInterface.
type StorageService struct {
	client *drive.Service
	rootID string

	// folder name -> Drive folder id, resolved lazily
	folderIDs map[string]string
}

// NewStorageService creates a new StorageService instance.
// credentialsPath is the Service Account JSON file; rootFolderID is the
// Drive folder every upload folder is created under.
func NewStorageService(credentialsPath, rootFolderID string) (*StorageService, error) {
	ctx := context.Background()

	driveService, err := drive.NewService(ctx, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}

	return &StorageService{
		client:    driveService,
		rootID:    rootFolderID,
		folderIDs: map[string]string{},
	}, nil
}

// Ensure StorageService implements StorageServiceInterface
var _ StorageServiceInterface = (*StorageService)(nil)

// Upload stores the bytes under folder/filename and returns the public
// image URL. The folder is created under the root folder on first use.
func (s *StorageService) Upload(ctx context.Context, data []byte, filename, folder string) (string, error) {
	folderID, err := s.ensureFolder(ctx, folder)
	if err != nil {
		return "", err
	}

	file := &drive.File{
		Name:    filename,
		Parents: []string{folderID},
	}

	created, err := s.client.Files.Create(file).
		Context(ctx).
		Media(bytes.NewReader(data), googleapi.ContentType("image/png")).
		Fields("id").
		Do()
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", filename, err)
	}

	url := fmt.Sprintf("https://drive.google.com/uc?id=%s", created.Id)
	log.Printf("✓ Uploaded %s/%s (%d bytes)", folder, filename, len(data))
	return url, nil
}

// ensureFolder resolves a folder name to its Drive id, creating the folder
// under the root on first use.
func (s *StorageService) ensureFolder(ctx context.Context, name string) (string, error) {
	if id, ok := s.folderIDs[name]; ok {
		return id, nil
	}

	query := fmt.Sprintf("'%s' in parents and name = '%s' and mimeType = 'application/vnd.google-apps.folder' and trashed=false",
		s.rootID, name)
	list, err := s.client.Files.List().Context(ctx).Q(query).Fields("files(id)").Do()
	if err != nil {
		return "", fmt.Errorf("failed to look up folder %s: %w", name, err)
	}

	if len(list.Files) > 0 {
		s.folderIDs[name] = list.Files[0].Id
		return list.Files[0].Id, nil
	}

	created, err := s.client.Files.Create(&drive.File{
		Name:     name,
		MimeType: "application/vnd.google-apps.folder",
		Parents:  []string{s.rootID},
	}).Context(ctx).Fields("id").Do()
	if err != nil {
		return "", fmt.Errorf("failed to create folder %s: %w", name, err)
	}

	log.Printf("✓ Created upload folder %s", name)
	s.folderIDs[name] = created.Id
	return created.Id, nil
}
