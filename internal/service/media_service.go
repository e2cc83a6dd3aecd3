package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/hapitzutzia/internal/config"
	"github.com/hapitzutzia/internal/constants"
	"github.com/hapitzutzia/internal/logger"
	"github.com/hapitzutzia/internal/models"
	"github.com/hapitzutzia/internal/queue"
	"github.com/hapitzutzia/internal/repository"
	"github.com/hapitzutzia/internal/storage"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// MediaService 维修单媒体附件服务
type MediaService struct {
	cfg         config.UploadConfig
	mediaRepo   repository.RepairMediaRepository
	repairRepo  repository.RepairRepository
	blobStore   storage.BlobStore
	queueClient TaskEnqueuer
	now         func() time.Time
}

// NewMediaService 创建媒体服务
func NewMediaService(
	cfg config.UploadConfig,
	mediaRepo repository.RepairMediaRepository,
	repairRepo repository.RepairRepository,
	blobStore storage.BlobStore,
	queueClient TaskEnqueuer,
) *MediaService {
	return &MediaService{
		cfg:         cfg,
		mediaRepo:   mediaRepo,
		repairRepo:  repairRepo,
		blobStore:   blobStore,
		queueClient: queueClient,
		now:         time.Now,
	}
}

// MediaPointerInput 已上传对象的登记参数
type MediaPointerInput struct {
	StoragePath string `json:"storage_path"`
	MediaType   string `json:"media_type"`
	FileSize    int64  `json:"file_size"`
}

// sniffedFile 校验通过的待上传文件
type sniffedFile struct {
	header      *multipart.FileHeader
	mediaType   string
	contentType string
	ext         string
}

func normalizeUploader(raw string) (string, error) {
	role := strings.ToLower(strings.TrimSpace(raw))
	if role != constants.AuthorCustomer && role != constants.AuthorAdmin {
		return "", ErrAuthorTypeInvalid
	}
	return role, nil
}

func (s *MediaService) ensureRepair(repairID string) error {
	repair, err := s.repairRepo.GetByID(repairID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRepairFetchFailed, err)
	}
	if repair == nil {
		return ErrRepairNotFound
	}
	return nil
}

// Upload 校验并上传一批文件，全部成功后登记媒体指针
func (s *MediaService) Upload(ctx context.Context, repairID string, files []*multipart.FileHeader, uploadedBy string) ([]models.RepairMedia, error) {
	repairID = strings.TrimSpace(repairID)
	role, err := normalizeUploader(uploadedBy)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, ErrMediaEmpty
	}
	if err := s.ensureRepair(repairID); err != nil {
		return nil, err
	}

	checked := make([]sniffedFile, 0, len(files))
	images, videos := 0, 0
	for _, file := range files {
		item, err := s.sniff(file)
		if err != nil {
			return nil, err
		}
		if item.mediaType == constants.MediaTypeImage {
			images++
			if s.cfg.MaxImageSize > 0 && file.Size > s.cfg.MaxImageSize {
				return nil, ErrMediaImageTooLarge
			}
		} else {
			videos++
			if s.cfg.MaxVideoSize > 0 && file.Size > s.cfg.MaxVideoSize {
				return nil, ErrMediaVideoTooLarge
			}
		}
		checked = append(checked, item)
	}
	if s.cfg.MaxImages > 0 && images > s.cfg.MaxImages {
		return nil, ErrMediaTooManyImages
	}
	if s.cfg.MaxVideos > 0 && videos > s.cfg.MaxVideos {
		return nil, ErrMediaTooManyVideos
	}

	stamp := s.now()
	items := make([]models.RepairMedia, 0, len(checked))
	stored := make([]string, 0, len(checked))
	for i, item := range checked {
		objectPath := buildMediaObjectPath(repairID, role, item.mediaType, stamp, i, item.ext)
		if err := s.put(ctx, objectPath, item); err != nil {
			s.discard(ctx, repairID, stored)
			return nil, fmt.Errorf("%w: %w", ErrMediaSaveFailed, err)
		}
		stored = append(stored, objectPath)
		items = append(items, models.RepairMedia{
			ID:          uuid.NewString(),
			RepairID:    repairID,
			StoragePath: objectPath,
			PublicURL:   s.blobStore.PublicURL(objectPath),
			MediaType:   item.mediaType,
			UploadedBy:  role,
			FileSize:    item.header.Size,
			CreatedAt:   stamp,
		})
	}

	if err := s.mediaRepo.CreateBatch(items); err != nil {
		s.discard(ctx, repairID, stored)
		return nil, fmt.Errorf("%w: %w", ErrMediaSaveFailed, err)
	}
	logger.Infow("repair_media_uploaded", "repair_id", repairID, "uploaded_by", role, "images", images, "videos", videos)
	return items, nil
}

// sniff 按文件内容识别类型，扩展名仅作为补充校验
func (s *MediaService) sniff(file *multipart.FileHeader) (sniffedFile, error) {
	src, err := file.Open()
	if err != nil {
		return sniffedFile{}, fmt.Errorf("%w: %w", ErrMediaSaveFailed, err)
	}
	defer src.Close()

	mtype, err := mimetype.DetectReader(src)
	if err != nil {
		return sniffedFile{}, fmt.Errorf("%w: %w", ErrMediaSaveFailed, err)
	}
	contentType := mtype.String()
	var mediaType string
	switch {
	case strings.HasPrefix(contentType, "image/"):
		mediaType = constants.MediaTypeImage
	case strings.HasPrefix(contentType, "video/"):
		mediaType = constants.MediaTypeVideo
	default:
		return sniffedFile{}, ErrMediaTypeNotAllowed
	}
	if len(s.cfg.AllowedTypes) > 0 && !mimetype.EqualsAny(contentType, s.cfg.AllowedTypes...) {
		return sniffedFile{}, ErrMediaTypeNotAllowed
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext == "" {
		ext = mtype.Extension()
	}
	if len(s.cfg.AllowedExtensions) > 0 && (ext == "" || !isAllowedExtension(ext, s.cfg.AllowedExtensions)) {
		return sniffedFile{}, ErrMediaTypeNotAllowed
	}
	return sniffedFile{header: file, mediaType: mediaType, contentType: contentType, ext: ext}, nil
}

func (s *MediaService) put(ctx context.Context, objectPath string, item sniffedFile) error {
	src, err := item.header.Open()
	if err != nil {
		return err
	}
	defer src.Close()
	return s.blobStore.Put(ctx, objectPath, src, item.header.Size, item.contentType)
}

// discard 回滚本次已写入的对象
func (s *MediaService) discard(ctx context.Context, repairID string, paths []string) {
	if len(paths) == 0 {
		return
	}
	if err := s.blobStore.Delete(ctx, paths); err != nil {
		logger.Warnw("repair_media_rollback_failed", "repair_id", repairID, "count", len(paths), "error", err)
		s.enqueueCleanup(repairID, paths)
	}
}

func (s *MediaService) enqueueCleanup(repairID string, paths []string) {
	if s.queueClient == nil {
		return
	}
	err := s.queueClient.EnqueueMediaCleanup(queue.MediaCleanupPayload{RepairID: repairID, Paths: paths}, mediaCleanupDelay)
	if err != nil {
		logger.Warnw("repair_media_cleanup_enqueue_failed", "repair_id", repairID, "error", err)
	}
}

// buildMediaObjectPath 生成对象路径：<repair_id>/<role>-<img|vid>-<unixmillis>-<i><ext>
func buildMediaObjectPath(repairID, role, mediaType string, at time.Time, index int, ext string) string {
	kind := "img"
	if mediaType == constants.MediaTypeVideo {
		kind = "vid"
	}
	return fmt.Sprintf("%s/%s-%s-%d-%d%s", repairID, role, kind, at.UnixMilli(), index, ext)
}

// RegisterPointers 登记客户端直传完成的对象
func (s *MediaService) RegisterPointers(_ context.Context, repairID string, pointers []MediaPointerInput, uploadedBy string) ([]models.RepairMedia, error) {
	repairID = strings.TrimSpace(repairID)
	role, err := normalizeUploader(uploadedBy)
	if err != nil {
		return nil, err
	}
	if len(pointers) == 0 {
		return nil, ErrMediaEmpty
	}
	if err := s.ensureRepair(repairID); err != nil {
		return nil, err
	}

	stamp := s.now()
	items := make([]models.RepairMedia, 0, len(pointers))
	for _, pointer := range pointers {
		objectPath, err := normalizePointerPath(repairID, pointer.StoragePath)
		if err != nil {
			return nil, err
		}
		mediaType := strings.ToLower(strings.TrimSpace(pointer.MediaType))
		if mediaType != constants.MediaTypeImage && mediaType != constants.MediaTypeVideo {
			return nil, ErrMediaTypeNotAllowed
		}
		items = append(items, models.RepairMedia{
			ID:          uuid.NewString(),
			RepairID:    repairID,
			StoragePath: objectPath,
			PublicURL:   s.blobStore.PublicURL(objectPath),
			MediaType:   mediaType,
			UploadedBy:  role,
			FileSize:    pointer.FileSize,
			CreatedAt:   stamp,
		})
	}
	if err := s.mediaRepo.CreateBatch(items); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMediaSaveFailed, err)
	}
	return items, nil
}

// normalizePointerPath 对象必须位于维修单目录下
func normalizePointerPath(repairID, raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || strings.Contains(trimmed, "..") {
		return "", ErrMediaPathInvalid
	}
	cleaned := strings.TrimPrefix(path.Clean("/"+trimmed), "/")
	if !strings.HasPrefix(cleaned, repairID+"/") || cleaned == repairID+"/" {
		return "", ErrMediaPathInvalid
	}
	return cleaned, nil
}

// List 获取维修单媒体
func (s *MediaService) List(_ context.Context, repairID string) ([]models.RepairMedia, error) {
	items, err := s.mediaRepo.ListByRepair(strings.TrimSpace(repairID))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMediaFetchFailed, err)
	}
	return items, nil
}

// Remove 删除单个媒体，对象删除失败不阻塞记录删除
func (s *MediaService) Remove(ctx context.Context, repairID, mediaID string) error {
	media, err := s.mediaRepo.GetByIDAndRepair(strings.TrimSpace(mediaID), strings.TrimSpace(repairID))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMediaFetchFailed, err)
	}
	if media == nil {
		return ErrMediaNotFound
	}
	if err := s.blobStore.Delete(ctx, []string{media.StoragePath}); err != nil {
		logger.Warnw("repair_media_delete_failed", "repair_id", media.RepairID, "media_id", media.ID, "error", err)
		s.enqueueCleanup(media.RepairID, []string{media.StoragePath})
	}
	if err := s.mediaRepo.Delete(media.ID); err != nil {
		return fmt.Errorf("%w: %w", ErrMediaSaveFailed, err)
	}
	return nil
}

func isAllowedExtension(ext string, allowed []string) bool {
	for _, allowedExt := range allowed {
		normalized := strings.ToLower(strings.TrimSpace(allowedExt))
		if normalized == "" {
			continue
		}
		if !strings.HasPrefix(normalized, ".") {
			normalized = "." + normalized
		}
		if strings.EqualFold(ext, normalized) {
			return true
		}
	}
	return false
}
