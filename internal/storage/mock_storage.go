package storage

import (
	"context"
	"fmt"

	"kig-backend/internal/logger"
)

// MockBlobStorage is the development fallback used when no blob endpoint is
// configured. It returns a deterministic placeholder URL and drops the bytes;
// the UI renders the URL shape without a real backing object.
type MockBlobStorage struct {
	container string
}

func NewMockBlobStorage(container string) *MockBlobStorage {
	if container == "" {
		container = "issues"
	}
	return &MockBlobStorage{container: container}
}

func (m *MockBlobStorage) Upload(ctx context.Context, data []byte, fileName, scopeID string) (string, error) {
	url := fmt.Sprintf("https://mockblob.core.windows.net/%s/%s/%s", m.container, scopeID, fileName)
	logger.Debug("Mock blob upload", "url", url, "size", len(data))
	return url, nil
}
