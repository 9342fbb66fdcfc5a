package ports

import (
	"context"
	"io"
)

// FileStore define a interface para o armazenamento físico de arquivos.
// Open retorna errors.ErrFileMissing quando o objeto não existe mais;
// Remove é idempotente e não falha para objetos já ausentes.
type FileStore interface {
	Save(ctx context.Context, key string, r io.Reader) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Remove(ctx context.Context, key string) error
}
