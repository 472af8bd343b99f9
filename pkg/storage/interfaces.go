package storage

import "io"

// StorageService afiş görselleri için nesne depolama arayüzü.
type StorageService interface {
	Upload(key string, reader io.Reader, contentType string) (string, error) // public URL döner
	Delete(key string) error
	GetPublicURL(key string) string
}
