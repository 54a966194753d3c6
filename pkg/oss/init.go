package oss

import (
	"ReelVibe.com/config"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
)

var minioClient *minio.Client

func InitMinio() error {
	conf := config.ConfigInfo.Minio

	var err error
	minioClient, err = minio.New(conf.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(conf.AccessKey, conf.SecretKey, ""),
		Secure: conf.UseSSL,
	})
	if err != nil {
		hlog.Errorf("Failed to create MinIO client: %v", err)
		return errors.Wrap(err, "init minio client")
	}

	hlog.Info("Connect Minio Success")
	return nil
}
