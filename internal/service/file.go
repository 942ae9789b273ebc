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
	"go.uber.org/zap"

	"contractapi/internal/extract"
	"contractapi/internal/metadata"
	"contractapi/internal/metrics"
	"contractapi/internal/model"
	"contractapi/internal/repository"
	"contractapi/internal/storage"
)

// ContractMetadata is the optional contract data supplied with an upload.
type ContractMetadata struct {
	ContractName   string
	ContractType   string
	ExpiryDate     *time.Time
	Amount         *float64
	Department     *string
	Vendor         *string
	ContractNumber *string
	Priority       string
	Compliance     string
	Description    *string
	ManagerIDs     []string
}

// UploadInput is everything the upload flow needs.
type UploadInput struct {
	Reader      io.Reader
	FileName    string
	ContentType string
	Size        int64
	OwnerID     string
	AccountID   string
	Department  string
	// RevalidatePath is the client route to refresh after the upload; it is echoed back.
	RevalidatePath string
	Contract       *ContractMetadata
}

// UploadResult is the stored file, the linked contract when one was created, and the
// outcome of every best-effort step.
type UploadResult struct {
	File        *model.File     `json:"file"`
	Contract    *model.Contract `json:"contract,omitempty"`
	Revalidate  string          `json:"revalidate,omitempty"`
	SideEffects []Outcome       `json:"sideEffects"`
}

// FileListResult is the service-level DTO for paginated files.
type FileListResult struct {
	Items []model.File `json:"data"`
	Total int          `json:"total"`
}

// FileService handles uploaded files and the contracts created from them.
type FileService interface {
	// Upload stores the blob and the file record, deleting the blob if the record
	// cannot be saved. Contract creation and everything after it is best effort.
	Upload(ctx context.Context, in UploadInput) (*UploadResult, error)
	Get(ctx context.Context, id string) (*model.File, error)
	List(ctx context.Context, owner string, limit, offset int) (*FileListResult, error)
	// DownloadURL returns a presigned URL for the file's blob.
	DownloadURL(ctx context.Context, id string) (string, error)
	// Delete removes the blob first, then the record.
	Delete(ctx context.Context, id string) error
}

type fileService struct {
	store         storage.Storage
	files         repository.FileRepository
	contracts     repository.ContractRepository
	users         repository.UserRepository
	extractor     extract.Extractor
	notifications NotificationService
	activities    ActivityService
	effects       sideEffects
	log           *zap.Logger
	presignExpiry time.Duration
	now           func() time.Time
}

// FileServiceDeps groups the collaborators of the file service.
type FileServiceDeps struct {
	Store         storage.Storage
	Files         repository.FileRepository
	Contracts     repository.ContractRepository
	Users         repository.UserRepository
	Extractor     extract.Extractor
	Notifications NotificationService
	Activities    ActivityService
	PresignExpiry time.Duration
	Log           *zap.Logger
	Metrics       *metrics.Metrics
}

func NewFileService(d FileServiceDeps) FileService {
	expiry := d.PresignExpiry
	if expiry <= 0 {
		expiry = time.Hour
	}
	return &fileService{
		store:         d.Store,
		files:         d.Files,
		contracts:     d.Contracts,
		users:         d.Users,
		extractor:     d.Extractor,
		notifications: d.Notifications,
		activities:    d.Activities,
		effects:       sideEffects{log: d.Log, metrics: d.Metrics},
		log:           d.Log,
		presignExpiry: expiry,
		now:           time.Now,
	}
}

func (s *fileService) Upload(ctx context.Context, in UploadInput) (*UploadResult, error) {
	if in.Reader == nil {
		return nil, ErrReaderNil
	}
	if in.OwnerID == "" {
		return nil, ErrOwnerRequired
	}

	now := s.now().UTC()
	ext, category := metadata.FileType(in.FileName)
	key := storage.Key(storage.PrefixFiles, uuid.New().String()+strings.ToLower(filepath.Ext(in.FileName)))

	objInfo, err := s.store.Put(ctx, key, in.Reader, storage.PutObjectOptions{
		Size:        in.Size,
		ContentType: in.ContentType,
		Metadata: map[string]string{
			"original-filename": in.FileName,
			"owner":             in.OwnerID,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	stored, err := s.files.Create(ctx, &model.File{
		ID:           uuid.New().String(),
		Name:         in.FileName,
		Type:         category,
		Extension:    ext,
		URL:          s.store.ObjectURL(objInfo.Key),
		Size:         objInfo.Size,
		Owner:        in.OwnerID,
		AccountID:    in.AccountID,
		Users:        []string{in.OwnerID},
		BucketFileID: objInfo.Key,
		CreatedAt:    now,
	})
	if err != nil {
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}

	res := &UploadResult{File: stored, Revalidate: in.RevalidatePath}

	if in.Contract != nil || model.LooksLikeContract(in.FileName) {
		s.attachContract(ctx, res, in, now)
	}

	res.SideEffects = append(res.SideEffects, s.effects.run(ctx, "upload", "activity", func(ctx context.Context) error {
		a := NewActivity{
			Action:      "File Uploaded",
			Description: fmt.Sprintf("%s was uploaded", in.FileName),
			UserID:      in.OwnerID,
			Department:  in.Department,
			Type:        model.ActivityFile,
		}
		if res.Contract != nil {
			a.ContractID = res.Contract.ID
			a.ContractName = res.Contract.ContractName
		}
		_, err := s.activities.Log(ctx, a)
		return err
	}))

	return res, nil
}

// attachContract creates the contract for an uploaded file, copies its key fields onto
// the file and sends the expiry notice. Every failure here is recorded, not returned.
func (s *fileService) attachContract(ctx context.Context, res *UploadResult, in UploadInput, now time.Time) {
	file := res.File
	meta := in.Contract
	if meta == nil {
		meta = &ContractMetadata{}
		ex, err := s.extractor.Extract(ctx, extract.Request{FileID: file.ID, FileName: file.Name, FileURL: file.URL})
		if err != nil {
			res.SideEffects = append(res.SideEffects, s.effects.failed("upload", "extract", err))
		} else {
			meta.ExpiryDate = ex.ExpiryDate
			meta.Vendor = ex.Vendor
			meta.Amount = ex.Amount
			res.SideEffects = append(res.SideEffects, Outcome{Effect: "extract", OK: true})
		}
	}

	expiry, status := metadata.ResolveExpiry(meta.ExpiryDate, now)

	managers, outcomes := resolveManagerNames(ctx, s.users, s.effects, "upload", meta.ManagerIDs)
	res.SideEffects = append(res.SideEffects, outcomes...)

	name := meta.ContractName
	if name == "" {
		name = strings.TrimSuffix(file.Name, filepath.Ext(file.Name))
	}
	department := meta.Department
	if department == nil {
		department = optional(in.Department)
	}

	contract, err := s.contracts.Create(ctx, &model.Contract{
		ID:                 uuid.New().String(),
		ContractName:       name,
		ContractExpiryDate: &expiry,
		Status:             status,
		Amount:             meta.Amount,
		DaysUntilExpiry:    metadata.DaysUntilExpiry(&expiry, now),
		Compliance:         metadata.Compliance(meta.Compliance),
		AssignedManagers:   managers,
		Department:         department,
		ContractType:       metadata.ContractType(meta.ContractType),
		Vendor:             meta.Vendor,
		ContractNumber:     meta.ContractNumber,
		Priority:           metadata.Priority(meta.Priority),
		Description:        meta.Description,
		FileID:             file.ID,
		FileRef:            file.ID,
		CreatedAt:          now,
	})
	if err != nil {
		res.SideEffects = append(res.SideEffects, s.effects.failed("upload", "contract", err))
		return
	}
	res.Contract = contract
	res.SideEffects = append(res.SideEffects, Outcome{Effect: "contract", OK: true})

	fields := model.FileContractFields{
		ContractID:         contract.ID,
		ContractExpiryDate: contract.ContractExpiryDate,
		Status:             contract.Status,
		ContractName:       contract.ContractName,
		ContractType:       contract.ContractType,
		Amount:             contract.Amount,
		Department:         contract.Department,
		Vendor:             contract.Vendor,
	}
	out := s.effects.run(ctx, "upload", "file_update", func(ctx context.Context) error {
		return s.files.SetContractFields(ctx, file.ID, fields)
	})
	if out.OK {
		applyContractFields(file, fields)
	}
	res.SideEffects = append(res.SideEffects, out)

	// The placeholder expiry of an action-required contract is not a real deadline.
	if contract.Status == model.ContractStatusActive && metadata.WithinNoticeWindow(contract.DaysUntilExpiry) {
		days := *contract.DaysUntilExpiry
		res.SideEffects = append(res.SideEffects, s.effects.run(ctx, "upload", "notification", func(ctx context.Context) error {
			_, err := s.notifications.Notify(ctx, NewNotification{
				UserID:    file.Owner,
				Title:     "Contract Expiring Soon",
				Message:   fmt.Sprintf("%s expires in %d days.", contract.ContractName, days),
				Type:      model.NotificationContractExpiry,
				Priority:  optional(reminderPriority(days)),
				ActionURL: optional("/contracts/" + contract.ID),
				Metadata: map[string]any{
					"contractId":      contract.ID,
					"daysUntilExpiry": days,
					"source":          "upload",
				},
			})
			return err
		}))
	}
}

func applyContractFields(f *model.File, c model.FileContractFields) {
	f.ContractID = &c.ContractID
	f.ContractExpiryDate = c.ContractExpiryDate
	f.Status = &c.Status
	f.ContractName = &c.ContractName
	f.ContractType = &c.ContractType
	f.Amount = c.Amount
	f.Department = c.Department
	f.Vendor = c.Vendor
	f.IsContract = true
}

func (s *fileService) Get(ctx context.Context, id string) (*model.File, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	f, err := s.files.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFileNotFound
		}
		return nil, err
	}
	return f, nil
}

func (s *fileService) List(ctx context.Context, owner string, limit, offset int) (*FileListResult, error) {
	limit, offset = page(limit, offset)
	res, err := s.files.ListByOwner(ctx, owner, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &FileListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *fileService) DownloadURL(ctx context.Context, id string) (string, error) {
	f, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return s.store.PresignGet(ctx, f.BucketFileID, s.presignExpiry)
}

func (s *fileService) Delete(ctx context.Context, id string) error {
	f, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	// Keep the row if the blob delete fails so the reference is not lost.
	if err := s.store.Delete(ctx, f.BucketFileID); err != nil {
		return fmt.Errorf("delete storage: %w", err)
	}
	return s.files.Delete(ctx, id)
}

func reminderPriority(days int) string {
	switch {
	case days <= 5:
		return "high"
	case days <= 15:
		return "medium"
	default:
		return "low"
	}
}
