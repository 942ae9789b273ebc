package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"contractapi/internal/model"
	"contractapi/internal/repository"
	"contractapi/internal/storage"
)

// NewReport is the input to ReportService.Create. Attachment is optional.
type NewReport struct {
	Title       string
	Description *string
	Type        string
	CreatedBy   string
	Attachment  io.Reader
	FileName    string
	ContentType string
	Size        int64
}

// ReportListResult is the service-level DTO for paginated reports.
type ReportListResult struct {
	Items []model.Report `json:"data"`
	Total int            `json:"total"`
}

// ReportService stores generated reports and their optional attachment.
type ReportService interface {
	Create(ctx context.Context, in NewReport) (*model.Report, error)
	List(ctx context.Context, limit, offset int) (*ReportListResult, error)
	// Download streams the attachment. The caller closes the reader.
	Download(ctx context.Context, id string) (io.ReadCloser, storage.ObjectInfo, error)
	// Delete removes the attachment, if any, then the record.
	Delete(ctx context.Context, id string) error
}

type reportService struct {
	store storage.Storage
	repo  repository.ReportRepository
	now   func() time.Time
}

func NewReportService(store storage.Storage, repo repository.ReportRepository) ReportService {
	return &reportService{store: store, repo: repo, now: time.Now}
}

func (s *reportService) Create(ctx context.Context, in NewReport) (*model.Report, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, ErrTitleRequired
	}
	if in.CreatedBy == "" {
		return nil, ErrOwnerRequired
	}

	id := uuid.New().String()
	var key string
	if in.Attachment != nil {
		key = storage.Key(storage.PrefixReports, id+strings.ToLower(filepath.Ext(in.FileName)))
		if _, err := s.store.Put(ctx, key, in.Attachment, storage.PutObjectOptions{
			Size:        in.Size,
			ContentType: in.ContentType,
			Metadata:    map[string]string{"original-filename": in.FileName},
		}); err != nil {
			return nil, fmt.Errorf("upload to storage: %w", err)
		}
	}

	typ := in.Type
	if typ == "" {
		typ = "general"
	}
	rp, err := s.repo.Create(ctx, &model.Report{
		ID:           id,
		Title:        strings.TrimSpace(in.Title),
		Description:  in.Description,
		Type:         typ,
		CreatedBy:    in.CreatedBy,
		BucketFileID: optional(key),
		CreatedAt:    s.now().UTC(),
	})
	if err != nil {
		if key != "" {
			if delErr := s.store.Delete(ctx, key); delErr != nil {
				return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
			}
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	return rp, nil
}

func (s *reportService) List(ctx context.Context, limit, offset int) (*ReportListResult, error) {
	limit, offset = page(limit, offset)
	res, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &ReportListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *reportService) Download(ctx context.Context, id string) (io.ReadCloser, storage.ObjectInfo, error) {
	rp, err := s.find(ctx, id)
	if err != nil {
		return nil, storage.ObjectInfo{}, err
	}
	if rp.BucketFileID == nil {
		return nil, storage.ObjectInfo{}, ErrReportNotFound
	}
	return s.store.Get(ctx, *rp.BucketFileID)
}

func (s *reportService) Delete(ctx context.Context, id string) error {
	rp, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if rp.BucketFileID != nil {
		if err := s.store.Delete(ctx, *rp.BucketFileID); err != nil {
			return fmt.Errorf("delete storage: %w", err)
		}
	}
	return s.repo.Delete(ctx, id)
}

func (s *reportService) find(ctx context.Context, id string) (*model.Report, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	rp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}
	return rp, nil
}
