package out

import "context"

type FileLoader interface {
	Load(ctx context.Context, path string, maxBytes int64) ([]byte, error)
}

type Camera interface {
	Capture(ctx context.Context) ([]byte, error)
}
