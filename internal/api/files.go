package api

import (
	"context"
	"net/url"

	fhttp "github.com/bogdanfinn/fhttp"
	"github.com/tidwall/gjson"

	apierrors "github.com/diogo/agentdash/internal/errors"
	"github.com/diogo/agentdash/internal/models"
)

// filePath builds /api/files/{name} with the name percent-encoded as a
// single path segment.
func filePath(name string) string {
	return models.PathFiles + "/" + url.PathEscape(name)
}

// ListFiles fetches the full file listing
func (c *Client) ListFiles(ctx context.Context) ([]models.FileSummary, error) {
	resp, err := c.do(ctx, fhttp.MethodGet, models.PathFiles, nil)
	if err != nil {
		return nil, err
	}

	parsed, err := parseBody(models.PathFiles, resp)
	if err != nil {
		return nil, err
	}

	if err := checkSuccess(models.PathFiles, resp, parsed, PathError, PathDetail); err != nil {
		return nil, err
	}

	filesResult := parsed.Get(PathFiles)
	if !filesResult.Exists() {
		return nil, apierrors.NewParseError(models.PathFiles, "response has no files")
	}
	if !filesResult.IsArray() {
		return nil, apierrors.NewParseError(models.PathFiles, "files is not an array")
	}

	files := make([]models.FileSummary, 0, len(filesResult.Array()))
	filesResult.ForEach(func(_, item gjson.Result) bool {
		files = append(files, models.FileSummary{
			Name:         item.Get(PathFileName).String(),
			Size:         item.Get(PathFileSize).Int(),
			LastModified: models.ParseTimestamp(item.Get(PathFileLastModified).String()),
		})
		return true
	})

	return files, nil
}

// GetFile fetches one file's content
func (c *Client) GetFile(ctx context.Context, name string) (*models.FileContent, error) {
	path := filePath(name)
	resp, err := c.do(ctx, fhttp.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	parsed, err := parseBody(path, resp)
	if err != nil {
		return nil, err
	}

	if err := checkSuccess(path, resp, parsed, PathError, PathDetail); err != nil {
		return nil, err
	}

	filename := parsed.Get(PathFilename).String()
	if filename == "" {
		filename = name
	}

	return &models.FileContent{
		Filename: filename,
		Content:  parsed.Get(PathContent).String(),
		Size:     parsed.Get(PathFileSize).Int(),
	}, nil
}

// DeleteFile removes one file
func (c *Client) DeleteFile(ctx context.Context, name string) (*models.DeleteResult, error) {
	path := filePath(name)
	resp, err := c.do(ctx, fhttp.MethodDelete, path, nil)
	if err != nil {
		return nil, err
	}

	parsed, err := parseBody(path, resp)
	if err != nil {
		return nil, err
	}

	if err := checkSuccess(path, resp, parsed, PathMessage, PathDetail); err != nil {
		return nil, err
	}

	return &models.DeleteResult{
		Success: true,
		Message: parsed.Get(PathMessage).String(),
	}, nil
}
