package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/carregistry/internal/common"
	"github.com/dmitrijs2005/carregistry/internal/logging"
	sc "github.com/dmitrijs2005/carregistry/internal/server/config"
	"github.com/dmitrijs2005/carregistry/internal/server/models"
	"github.com/dmitrijs2005/carregistry/internal/server/storage"
	"github.com/google/uuid"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in, optFns...)
	}
)

// SnapshotInfo describes an uploaded snapshot.
type SnapshotInfo struct {
	Key           string
	SchemaVersion int
	Owners        int
	Renters       int
}

// SnapshotService exports every record to S3-compatible storage so that the
// registry can be reloaded elsewhere.
type SnapshotService struct {
	store  storage.Store
	config *sc.Config
	logger logging.Logger
	now    func() time.Time
}

func NewSnapshotService(store storage.Store, config *sc.Config, logger logging.Logger) *SnapshotService {
	return &SnapshotService{
		store:  store,
		config: config,
		logger: logger.With("module", "snapshot_service"),
		now:    time.Now,
	}
}

func SnapshotKey(t time.Time) string {
	return fmt.Sprintf("snapshots/%04d/%02d/%02d/%s.json", t.Year(), t.Month(), t.Day(), uuid.New())
}

func (s *SnapshotService) getClient(ctx context.Context) (*s3.Client, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	return newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	}), nil
}

// Take reads owners and renters in one transaction.
func (s *SnapshotService) Take(ctx context.Context) (*models.Snapshot, error) {
	snap := &models.Snapshot{
		SchemaVersion: models.SnapshotSchemaVersion,
		TakenAt:       s.now().UTC(),
	}

	err := s.store.WithTx(ctx, func(ctx context.Context, l storage.Ledger) error {
		var err error
		if snap.Owners, err = l.Owners().Values(ctx); err != nil {
			return err
		}
		snap.Renters, err = l.Renters().Values(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error reading records: %w", err)
	}

	if snap.Owners == nil {
		snap.Owners = []*models.Owner{}
	}
	if snap.Renters == nil {
		snap.Renters = []*models.Renter{}
	}
	return snap, nil
}

// Export uploads a snapshot. Only the configured admin account may call it.
func (s *SnapshotService) Export(ctx context.Context, caller string) (*SnapshotInfo, error) {
	if caller != s.config.AdminAccount {
		return nil, common.ErrorForbidden
	}

	snap, err := s.Take(ctx)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(snap)
	if err != nil {
		return nil, err
	}

	client, err := s.getClient(ctx)
	if err != nil {
		return nil, err
	}

	bucket := s.config.S3Bucket
	key := SnapshotKey(snap.TakenAt)

	if _, err := putObject(client, ctx, &s3.PutObjectInput{
		Bucket:      &bucket,
		Key:         &key,
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	}); err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "snapshot exported", "key", key, "owners", len(snap.Owners), "renters", len(snap.Renters))

	return &SnapshotInfo{
		Key:           key,
		SchemaVersion: snap.SchemaVersion,
		Owners:        len(snap.Owners),
		Renters:       len(snap.Renters),
	}, nil
}
