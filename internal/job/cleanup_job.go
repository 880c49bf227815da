package job

import (
	"context"
	"time"

	"go.uber.org/zap"

	"blog-api/internal/client"
	"blog-api/internal/repository"
)

// coverKeyPrefix is where the uploader stores cover images
const coverKeyPrefix = "blog/covers/"

// orphanAge is how long an unreferenced cover image may sit in the bucket
// before the job reclaims it. A cover image upload completes before the
// article row is written, so very young unreferenced objects may belong to an
// in-flight request and are left alone.
const orphanAge = 24 * time.Hour

// CleanupJob reclaims cover image objects whose article write never landed
type CleanupJob struct {
	articleRepo repository.ArticleRepository
	s3Client    client.S3ClientInterface
	logger      *zap.Logger
}

// NewCleanupJob creates a new CleanupJob instance
func NewCleanupJob(
	articleRepo repository.ArticleRepository,
	s3Client client.S3ClientInterface,
	logger *zap.Logger,
) *CleanupJob {
	return &CleanupJob{
		articleRepo: articleRepo,
		s3Client:    s3Client,
		logger:      logger,
	}
}

// Run executes the cleanup job. It lists stored cover images and deletes
// those old enough that no article references them.
func (j *CleanupJob) Run() {
	ctx := context.Background()

	j.logger.Info("Starting cleanup job for orphaned cover images")

	objects, err := j.s3Client.ListFiles(ctx, coverKeyPrefix)
	if err != nil {
		j.logger.Error("Failed to list cover images", zap.Error(err))
		return
	}

	cutoff := time.Now().Add(-orphanAge)
	successCount := 0
	failCount := 0

	for _, obj := range objects {
		if obj.LastModified.After(cutoff) {
			continue
		}

		inUse, err := j.articleRepo.CoverImageInUse(ctx, obj.Key)
		if err != nil {
			j.logger.Error("Failed to check cover image reference",
				zap.String("file_key", obj.Key),
				zap.Error(err),
			)
			failCount++
			continue
		}
		if inUse {
			continue
		}

		if err := j.s3Client.DeleteFile(ctx, obj.Key); err != nil {
			j.logger.Error("Failed to delete orphaned cover image",
				zap.String("file_key", obj.Key),
				zap.Error(err),
			)
			failCount++
			continue
		}

		successCount++
		j.logger.Debug("Deleted orphaned cover image", zap.String("file_key", obj.Key))
	}

	j.logger.Info("Cleanup job completed",
		zap.Int("scanned", len(objects)),
		zap.Int("deleted", successCount),
		zap.Int("failed", failCount),
	)
}
