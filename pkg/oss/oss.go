package oss

import (
	"bytes"
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
)

const (
	reelBucket = "reel"
	location   = "us-east-1"
)

func ensureBucket(ctx context.Context, bucketName string) error {
	exists, err := minioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return fmt.Errorf("check bucket error: %w", err)
	}
	if !exists {
		err = minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: location})
		if err != nil {
			return fmt.Errorf("create bucket error: %w", err)
		}
	}
	return nil
}

// UploadReelVideo 上传视频文件 返回访问地址
func UploadReelVideo(ctx context.Context, data []byte, reelId string, contentType string) (string, error) {
	if contentType != "video/mp4" {
		return "", fmt.Errorf("unsupported video format: %s", contentType)
	}
	if err := ensureBucket(ctx, reelBucket); err != nil {
		return "", err
	}

	objectName := "video/" + reelId + "/video.mp4"
	_, err := minioClient.PutObject(ctx, reelBucket, objectName,
		bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("upload reel video error: %w", err)
	}

	return fmt.Sprintf("http://%s/%s/%s", minioClient.EndpointURL().Host, reelBucket, objectName), nil
}

// UploadReelCover 上传封面图
func UploadReelCover(ctx context.Context, data []byte, reelId string, contentType string) (string, error) {
	var suffix string
	switch contentType {
	case "image/jpeg", "image/jpg":
		suffix = ".jpg"
	case "image/png":
		suffix = ".png"
	default:
		return "", fmt.Errorf("unsupported image format: %s", contentType)
	}
	if err := ensureBucket(ctx, reelBucket); err != nil {
		return "", err
	}

	objectName := "cover/" + reelId + suffix
	_, err := minioClient.PutObject(ctx, reelBucket, objectName,
		bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("upload reel cover error: %w", err)
	}

	return fmt.Sprintf("http://%s/%s/%s", minioClient.EndpointURL().Host, reelBucket, objectName), nil
}
