package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rafabene/legalpro-backend/internal/domain/errors"
	"github.com/rafabene/legalpro-backend/internal/domain/ports"
)

// DiskStore implementa ports.FileStore em um diretório local
type DiskStore struct {
	dir string
}

// NewDiskStore cria um novo DiskStore, criando o diretório se necessário
func NewDiskStore(dir string) (ports.FileStore, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

// Save grava o conteúdo sob a chave informada
func (s *DiskStore) Save(_ context.Context, key string, r io.Reader) error {
	f, err := os.Create(s.path(key)) //nolint:gosec
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// Open abre o objeto para leitura. Objeto ausente é um estado esperado
// (linha de índice órfã) e vira errors.ErrFileMissing, não Internal.
func (s *DiskStore) Open(_ context.Context, key string) (io.ReadCloser, error) {
	f, err := os.Open(s.path(key)) //nolint:gosec
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ErrFileMissing
		}
		return nil, errors.Internal(err)
	}
	return f, nil
}

// Remove apaga o objeto; é idempotente — objeto já ausente não é erro
func (s *DiskStore) Remove(_ context.Context, key string) error {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove file: %w", err)
	}
	return nil
}

// path resolve a chave dentro do diretório, descartando qualquer
// componente de caminho embutido na chave
func (s *DiskStore) path(key string) string {
	return filepath.Join(s.dir, filepath.Base(key))
}
