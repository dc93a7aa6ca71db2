// Package storage 封装对象存储（封面图片上传）。
package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/xiebiao/library/internal/infrastructure/config"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// ObjectPutter 抽象出PutObject操作，便于单元测试注入假实现
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Uploader 封面图片上传器
// 设计说明：
// 1. 对象Key = 随机UUID + "_" + 原始文件名，避免同名文件互相覆盖
// 2. 上传成功后返回可公开访问的URL（bucket需开启公共读）
// 3. 上传失败统一包装为上传错误码，调用方据此中止后续保存
type Uploader struct {
	client ObjectPutter
	bucket string
	region string
}

// NewUploader 创建上传器
func NewUploader(client ObjectPutter, cfg *config.Config) *Uploader {
	return &Uploader{
		client: client,
		bucket: cfg.Storage.Bucket,
		region: cfg.Storage.Region,
	}
}

// NewS3Client 创建S3客户端
// 凭证走默认链（环境变量、共享配置文件、实例角色）
func NewS3Client(cfg *config.Config) (*s3.Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.Storage.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("加载AWS配置失败: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"bucket": cfg.Storage.Bucket,
		"region": cfg.Storage.Region,
	}).Info("S3客户端初始化成功")

	return s3.NewFromConfig(awsCfg), nil
}

// Upload 上传文件并返回公开访问URL
func (u *Uploader) Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	key := uuid.NewString() + "_" + filename

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", apperrors.Newf(apperrors.ErrCodeUploadError, "上传封面图片失败: %v", err)
	}

	return u.ObjectURL(key), nil
}

// ObjectURL 拼接对象的公开访问URL
func (u *Uploader) ObjectURL(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key)
}
