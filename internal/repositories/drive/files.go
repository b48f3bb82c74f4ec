package drive

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gdrive "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

const jsonMimeType = "application/json"

// fileAPI is the slice of the Drive API the store needs.
type fileAPI interface {
	// Find returns the id of the file named name inside folderID, or "" when absent.
	Find(ctx context.Context, folderID, name string) (string, error)
	Download(ctx context.Context, fileID string) ([]byte, error)
	Create(ctx context.Context, folderID, name string, content []byte) (string, error)
	Update(ctx context.Context, fileID string, content []byte) error
}

// Credentials authorize the Drive client on behalf of the account that owns the folder.
type Credentials struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
}

type driveFiles struct {
	files *gdrive.FilesService
}

func newDriveFiles(ctx context.Context, creds Credentials) (*driveFiles, error) {
	conf := &oauth2.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{gdrive.DriveFileScope},
	}
	client := conf.Client(ctx, &oauth2.Token{RefreshToken: creds.RefreshToken})

	svc, err := gdrive.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}
	return &driveFiles{files: svc.Files}, nil
}

func (d *driveFiles) Find(ctx context.Context, folderID, name string) (string, error) {
	query := fmt.Sprintf("name = '%s' and '%s' in parents and trashed = false", escapeQuery(name), escapeQuery(folderID))
	r, err := d.files.List().Q(query).Fields("files(id, name)").PageSize(1).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to list files: %w", err)
	}
	if len(r.Files) == 0 {
		return "", nil
	}
	return r.Files[0].Id, nil
}

func (d *driveFiles) Download(ctx context.Context, fileID string) ([]byte, error) {
	resp, err := d.files.Get(fileID).Context(ctx).Download()
	if err != nil {
		return nil, fmt.Errorf("failed to download file %s: %w", fileID, err)
	}
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}

func (d *driveFiles) Create(ctx context.Context, folderID, name string, content []byte) (string, error) {
	f := &gdrive.File{Name: name, Parents: []string{folderID}, MimeType: jsonMimeType}
	created, err := d.files.Create(f).Media(bytes.NewReader(content)).Fields("id").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to create file %s: %w", name, err)
	}
	return created.Id, nil
}

func (d *driveFiles) Update(ctx context.Context, fileID string, content []byte) error {
	_, err := d.files.Update(fileID, &gdrive.File{}).Media(bytes.NewReader(content)).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to update file %s: %w", fileID, err)
	}
	return nil
}

func escapeQuery(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, `\`, `\\`), `'`, `\'`)
}
