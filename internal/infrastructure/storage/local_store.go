package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/jhoicas/Tributo-api/internal/application/ports"
	"github.com/jhoicas/Tributo-api/internal/domain"
)

var _ ports.DocumentStore = (*LocalStore)(nil)

// LocalStore guarda sustentos en disco local. Pensado para desarrollo y
// despliegues de una sola máquina; en producción se usa S3Store.
type LocalStore struct {
	dir string
}

// NewLocalStore construye el almacén creando el directorio si no existe.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de sustentos: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

// Put guarda el documento y devuelve su referencia (ruta relativa al dir).
func (s *LocalStore) Put(ctx context.Context, key string, contentType string, body io.Reader) (string, error) {
	ref := filepath.ToSlash(filepath.Clean(key))
	if strings.HasPrefix(ref, "..") {
		return "", domain.NewValidationError("key")
	}
	full := filepath.Join(s.dir, filepath.FromSlash(ref))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("crear subdirectorio: %w", err)
	}
	f, err := os.Create(full)
	if err != nil {
		return "", fmt.Errorf("crear archivo de sustento: %w", err)
	}
	defer f.Close()
	if _, err := io.Copy(f, body); err != nil {
		return "", fmt.Errorf("escribir sustento: %w", err)
	}
	return ref, nil
}

// Get abre el documento. El content type se infiere de la extensión.
func (s *LocalStore) Get(ctx context.Context, ref string) (io.ReadCloser, string, error) {
	clean := filepath.Clean(filepath.FromSlash(ref))
	if strings.HasPrefix(clean, "..") {
		return nil, "", domain.ErrNotFound
	}
	f, err := os.Open(filepath.Join(s.dir, clean))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", domain.ErrNotFound
		}
		return nil, "", fmt.Errorf("abrir sustento: %w", err)
	}
	contentType := mime.TypeByExtension(filepath.Ext(clean))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return f, contentType, nil
}

// SignedURL no aplica en disco local: cadena vacía sin error.
func (s *LocalStore) SignedURL(ctx context.Context, ref string, expirySeconds int) (string, error) {
	return "", nil
}

// Delete elimina el documento. Borrar algo inexistente no es error.
func (s *LocalStore) Delete(ctx context.Context, ref string) error {
	clean := filepath.Clean(filepath.FromSlash(ref))
	if strings.HasPrefix(clean, "..") {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, clean))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("borrar sustento: %w", err)
	}
	return nil
}
