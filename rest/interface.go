package rest

import (
	"context"
	"io"
)

//go:generate mockgen -destination=mock/mock_client.go -package=mock github.com/rpaste-cli/rpaste/rest Client

// Client is the set of operations the command line performs against a
// rustypaste server.
type Client interface {
	UploadFile(ctx context.Context, path string) UploadResult
	UploadURL(ctx context.Context, rawURL string) UploadResult
	UploadRemoteURL(ctx context.Context, rawURL string) UploadResult
	UploadStream(ctx context.Context, r io.Reader) UploadResult
	DeleteFile(ctx context.Context, name string) UploadResult
	RetrieveVersion(ctx context.Context) (string, error)
	RetrieveList(ctx context.Context, w io.Writer, prettify bool) error
}

var _ Client = (*Uploader)(nil)
