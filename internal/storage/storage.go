package storage

import "context"

// BlobStorage stores binary photo payloads under an issue-scoped path and
// returns a retrievable URL. Implementations: minio-backed live storage and
// a mock that synthesizes URLs without persisting anything.
type BlobStorage interface {
	// Upload writes the payload under {scopeID}/{fileName} and returns the
	// canonical URL. Re-uploading the same name under the same scope
	// silently replaces earlier content.
	Upload(ctx context.Context, data []byte, fileName, scopeID string) (string, error)
}
