package labeling

//go:generate moq -out post_label_repo_mock_test.go -pkg labeling . postLabelRepo
//go:generate moq -out content_source_mock_test.go -pkg labeling . contentSource
//go:generate moq -out catalog_store_mock_test.go -pkg labeling . catalogStore
//go:generate moq -out moderation_api_mock_test.go -pkg labeling . moderationAPI

import (
	"io"
	"log/slog"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
