package minio

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	minioLib "github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/deckhub-server/internal/model"
)

// fakeObjects implements objectAPI without network.
type fakeObjects struct {
	bucketExists    bool
	bucketExistsErr error
	makeBucketErr   error
	madeBucket      bool

	putErr      error
	putKey      string
	putBody     []byte
	contentType string

	getRC  io.ReadCloser
	getErr error

	removeErr error
	removeKey string

	statErr error
	statKey string
}

func (f *fakeObjects) BucketExists(_ context.Context, _ string) (bool, error) {
	return f.bucketExists, f.bucketExistsErr
}

func (f *fakeObjects) MakeBucket(_ context.Context, _ string, _ minioLib.MakeBucketOptions) error {
	f.madeBucket = true
	return f.makeBucketErr
}

func (f *fakeObjects) PutObject(_ context.Context, _ string, objectName string, reader io.Reader, _ int64, opts minioLib.PutObjectOptions) (minioLib.UploadInfo, error) {
	f.putKey = objectName
	f.contentType = opts.ContentType
	f.putBody, _ = io.ReadAll(reader)
	return minioLib.UploadInfo{}, f.putErr
}

func (f *fakeObjects) GetObject(_ context.Context, _ string, _ string, _ minioLib.GetObjectOptions) (io.ReadCloser, error) {
	return f.getRC, f.getErr
}

func (f *fakeObjects) RemoveObject(_ context.Context, _ string, objectName string, _ minioLib.RemoveObjectOptions) error {
	f.removeKey = objectName
	return f.removeErr
}

func (f *fakeObjects) StatObject(_ context.Context, _ string, objectName string, _ minioLib.StatObjectOptions) (minioLib.ObjectInfo, error) {
	f.statKey = objectName
	return minioLib.ObjectInfo{}, f.statErr
}

func TestNewClient_Bucket(t *testing.T) {
	ctx := context.Background()

	t.Run("exists", func(t *testing.T) {
		api := &fakeObjects{bucketExists: true}
		c, err := newClient(ctx, api, "decks", "")
		require.NoError(t, err)
		assert.Equal(t, "decks", c.bucket)
		assert.False(t, api.madeBucket)
	})

	t.Run("created", func(t *testing.T) {
		api := &fakeObjects{}
		_, err := newClient(ctx, api, "decks", "")
		require.NoError(t, err)
		assert.True(t, api.madeBucket)
	})

	t.Run("check error", func(t *testing.T) {
		c, err := newClient(ctx, &fakeObjects{bucketExistsErr: errors.New("boom")}, "decks", "")
		assert.Nil(t, c)
		assert.ErrorContains(t, err, "failed to ensure bucket exists")
	})

	t.Run("create error", func(t *testing.T) {
		c, err := newClient(ctx, &fakeObjects{makeBucketErr: errors.New("fail")}, "decks", "")
		assert.Nil(t, c)
		assert.ErrorContains(t, err, "failed to create bucket")
	})
}

func TestClient_Upload(t *testing.T) {
	ctx := context.Background()

	t.Run("success with prefix", func(t *testing.T) {
		api := &fakeObjects{}
		c := &Client{api: api, bucket: "b", prefix: "prod"}
		require.NoError(t, c.Upload(ctx, "owner/saved_presentations.json", bytes.NewReader([]byte("[]"))))
		assert.Equal(t, "prod/owner/saved_presentations.json", api.putKey)
		assert.Equal(t, "application/json", api.contentType)
		assert.Equal(t, []byte("[]"), api.putBody)
	})

	t.Run("error", func(t *testing.T) {
		c := &Client{api: &fakeObjects{putErr: errors.New("put-fail")}, bucket: "b"}
		err := c.Upload(ctx, "k", bytes.NewReader([]byte("data")))
		assert.ErrorContains(t, err, "failed to upload object")
	})
}

func TestClient_Download(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		api := &fakeObjects{getRC: io.NopCloser(bytes.NewReader([]byte("abc")))}
		c := &Client{api: api, bucket: "b"}
		rc, err := c.Download(ctx, "k")
		require.NoError(t, err)
		defer rc.Close()

		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, []byte("abc"), data)
	})

	t.Run("missing key", func(t *testing.T) {
		c := &Client{api: &fakeObjects{statErr: minioLib.ErrorResponse{Code: "NoSuchKey"}}, bucket: "b"}
		rc, err := c.Download(ctx, "k")
		assert.Nil(t, rc)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("get error", func(t *testing.T) {
		c := &Client{api: &fakeObjects{getErr: errors.New("get-fail")}, bucket: "b"}
		rc, err := c.Download(ctx, "k")
		assert.Nil(t, rc)
		assert.ErrorContains(t, err, "failed to get object")
	})
}

func TestClient_Delete(t *testing.T) {
	ctx := context.Background()

	api := &fakeObjects{}
	c := &Client{api: api, bucket: "b", prefix: "p"}
	require.NoError(t, c.Delete(ctx, "k"))
	assert.Equal(t, "p/k", api.removeKey)

	c = &Client{api: &fakeObjects{removeErr: errors.New("remove-fail")}, bucket: "b"}
	assert.ErrorContains(t, c.Delete(ctx, "k"), "failed to delete object")
}

func TestClient_Exists(t *testing.T) {
	ctx := context.Background()

	t.Run("exists", func(t *testing.T) {
		c := &Client{api: &fakeObjects{}, bucket: "b"}
		ok, err := c.Exists(ctx, "k")
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("not found", func(t *testing.T) {
		c := &Client{api: &fakeObjects{statErr: minioLib.ErrorResponse{Code: "NoSuchKey"}}, bucket: "b"}
		ok, err := c.Exists(ctx, "absent")
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("other error", func(t *testing.T) {
		c := &Client{api: &fakeObjects{statErr: errors.New("stat-fail")}, bucket: "b"}
		ok, err := c.Exists(ctx, "k")
		assert.False(t, ok)
		assert.ErrorContains(t, err, "failed to stat object")
	})
}
