package services

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"regexp"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/carregistry/internal/common"
	sc "github.com/dmitrijs2005/carregistry/internal/server/config"
	"github.com/dmitrijs2005/carregistry/internal/server/models"
	"github.com/dmitrijs2005/carregistry/internal/server/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshotConfig() *sc.Config {
	return &sc.Config{
		AdminAccount:   "registry.testnet",
		S3Region:       "us-east-1",
		S3RootUser:     "minioadmin",
		S3RootPassword: "minioadmin",
		S3BaseEndpoint: "http://127.0.0.1:9000",
		S3Bucket:       "registry-snapshots",
	}
}

func stubS3(t *testing.T, put func(in *s3.PutObjectInput) error) {
	t.Helper()
	origLoad, origNew, origPut := loadDefaultAWSConfig, newS3ClientFromConfig, putObject
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNew
		putObject = origPut
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, nil
	}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client { return &s3.Client{} }
	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		if err := put(in); err != nil {
			return nil, err
		}
		return &s3.PutObjectOutput{}, nil
	}
}

func TestSnapshotKey(t *testing.T) {
	key := SnapshotKey(time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC))
	assert.Regexp(t, regexp.MustCompile(`^snapshots/2024/03/07/[0-9a-f-]{36}\.json$`), key)
}

func TestSnapshotService_Export(t *testing.T) {
	store := storage.NewMemoryStore()
	seed(t, NewRentalService(store, newRecLogger()))

	var uploaded *models.Snapshot
	var gotBucket, gotKey string
	stubS3(t, func(in *s3.PutObjectInput) error {
		gotBucket, gotKey = aws.ToString(in.Bucket), aws.ToString(in.Key)
		b, err := io.ReadAll(in.Body)
		if err != nil {
			return err
		}
		uploaded = &models.Snapshot{}
		return json.Unmarshal(b, uploaded)
	})

	svc := NewSnapshotService(store, snapshotConfig(), newRecLogger())
	svc.now = func() time.Time { return time.Date(2024, 3, 7, 9, 30, 0, 0, time.UTC) }

	info, err := svc.Export(context.Background(), "registry.testnet")
	require.NoError(t, err)

	assert.Equal(t, "registry-snapshots", gotBucket)
	assert.Equal(t, gotKey, info.Key)
	assert.Regexp(t, `^snapshots/2024/03/07/`, info.Key)
	assert.Equal(t, models.SnapshotSchemaVersion, info.SchemaVersion)
	assert.Equal(t, 1, info.Owners)
	assert.Equal(t, 1, info.Renters)

	require.NotNil(t, uploaded)
	assert.Equal(t, models.SnapshotSchemaVersion, uploaded.SchemaVersion)
	require.Len(t, uploaded.Owners, 1)
	assert.Equal(t, ownerAccount, uploaded.Owners[0].Account)
	require.Len(t, uploaded.Renters, 1)
	assert.Equal(t, renterAccount, uploaded.Renters[0].Account)
}

func TestSnapshotService_ExportForbidden(t *testing.T) {
	stubS3(t, func(*s3.PutObjectInput) error {
		t.Fatal("upload must not happen")
		return nil
	})

	svc := NewSnapshotService(storage.NewMemoryStore(), snapshotConfig(), newRecLogger())
	_, err := svc.Export(context.Background(), ownerAccount)
	assert.ErrorIs(t, err, common.ErrorForbidden)
}

func TestSnapshotService_ExportUploadError(t *testing.T) {
	stubS3(t, func(*s3.PutObjectInput) error { return errors.New("put-fail") })

	svc := NewSnapshotService(storage.NewMemoryStore(), snapshotConfig(), newRecLogger())
	_, err := svc.Export(context.Background(), "registry.testnet")
	require.Error(t, err)
	assert.Equal(t, "put-fail", err.Error())
}

func TestSnapshotService_ExportConfigError(t *testing.T) {
	stubS3(t, func(*s3.PutObjectInput) error { return nil })
	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("load-fail")
	}

	svc := NewSnapshotService(storage.NewMemoryStore(), snapshotConfig(), newRecLogger())
	_, err := svc.Export(context.Background(), "registry.testnet")
	require.Error(t, err)
	assert.Equal(t, "load-fail", err.Error())
}

func TestSnapshotService_TakeEmptyHasLists(t *testing.T) {
	svc := NewSnapshotService(storage.NewMemoryStore(), snapshotConfig(), newRecLogger())
	snap, err := svc.Take(context.Background())
	require.NoError(t, err)

	b, err := json.Marshal(snap)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"owners":[]`)
	assert.Contains(t, string(b), `"renters":[]`)
}
