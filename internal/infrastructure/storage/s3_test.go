package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/library/internal/infrastructure/config"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// fakePutter 记录调用参数的假S3客户端
type fakePutter struct {
	input *s3.PutObjectInput
	err   error
}

func (f *fakePutter) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func newTestUploader(putter ObjectPutter) *Uploader {
	cfg := &config.Config{}
	cfg.Storage.Bucket = "library-book-covers"
	cfg.Storage.Region = "ap-northeast-1"
	return NewUploader(putter, cfg)
}

func TestUploader_Upload(t *testing.T) {
	putter := &fakePutter{}
	uploader := newTestUploader(putter)

	url, err := uploader.Upload(context.Background(), "cover.png", "image/png", strings.NewReader("fake-image-bytes"))
	require.NoError(t, err)

	// Key格式：{uuid}_{原始文件名}
	require.NotNil(t, putter.input)
	key := *putter.input.Key
	assert.True(t, strings.HasSuffix(key, "_cover.png"), "对象Key应以原始文件名结尾: %s", key)
	assert.Greater(t, len(key), len("_cover.png"), "对象Key应包含随机前缀")

	assert.Equal(t, "library-book-covers", *putter.input.Bucket)
	assert.Equal(t, "image/png", *putter.input.ContentType)

	// URL格式：https://{bucket}.s3.{region}.amazonaws.com/{key}
	assert.Equal(t, "https://library-book-covers.s3.ap-northeast-1.amazonaws.com/"+key, url)

	body, err := io.ReadAll(putter.input.Body)
	require.NoError(t, err)
	assert.Equal(t, "fake-image-bytes", string(body))
}

func TestUploader_Upload_KeyUnique(t *testing.T) {
	putter := &fakePutter{}
	uploader := newTestUploader(putter)

	_, err := uploader.Upload(context.Background(), "cover.png", "image/png", strings.NewReader("a"))
	require.NoError(t, err)
	first := *putter.input.Key

	_, err = uploader.Upload(context.Background(), "cover.png", "image/png", strings.NewReader("b"))
	require.NoError(t, err)
	second := *putter.input.Key

	// 同名文件两次上传生成不同Key，互不覆盖
	assert.NotEqual(t, first, second)
}

func TestUploader_Upload_Error(t *testing.T) {
	putter := &fakePutter{err: errors.New("access denied")}
	uploader := newTestUploader(putter)

	url, err := uploader.Upload(context.Background(), "cover.png", "image/png", strings.NewReader("x"))
	require.Error(t, err)
	assert.Empty(t, url)

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr, "上传失败应返回AppError")
	assert.Equal(t, apperrors.ErrCodeUploadError, appErr.Code)
}
