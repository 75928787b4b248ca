package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"

	"hirescreen/config"
	"hirescreen/utils"
)

// S3Service stores uploaded CV binaries keyed by resume code. Objects are
// never public; downloads go through short-lived presigned URLs only.
type S3Service struct {
	s3Client *s3.S3
	bucket   string
	region   string
}

func NewS3Service(cfg config.StorageConfig) (*S3Service, error) {
	if cfg.AccessKey == "" || cfg.SecretKey == "" || cfg.Region == "" || cfg.Bucket == "" {
		return nil, fmt.Errorf("AWS credentials not configured")
	}

	sess, err := session.NewSession(&aws.Config{
		Region:      aws.String(cfg.Region),
		Credentials: credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, ""),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %v", err)
	}

	return &S3Service{
		s3Client: s3.New(sess),
		bucket:   cfg.Bucket,
		region:   cfg.Region,
	}, nil
}

// cvKey keeps every CV under one prefix so bucket policies can target it.
func cvKey(resumeCode string) string {
	return "cv/" + resumeCode
}

// UploadCV stores the original document bytes under the resume code and
// returns the object key.
func (s *S3Service) UploadCV(resumeCode string, data []byte, contentType string) (string, error) {
	key := cvKey(resumeCode)
	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	}

	_, err := s.s3Client.PutObject(input)
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %v", err)
	}

	utils.LogInfo("CV stored", map[string]interface{}{"key": key})
	return key, nil
}

// PresignedURL generates a one-hour download link for a stored CV.
func (s *S3Service) PresignedURL(fileKey string) (string, error) {
	req, _ := s.s3Client.GetObjectRequest(&s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(fileKey),
	})

	url, err := req.Presign(1 * time.Hour)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %v", err)
	}

	return url, nil
}

// DeleteCV removes a stored CV, used when a candidate record is replaced or
// withdrawn.
func (s *S3Service) DeleteCV(fileKey string) error {
	input := &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(fileKey),
	}

	_, err := s.s3Client.DeleteObject(input)
	if err != nil {
		return fmt.Errorf("failed to delete file from S3: %v", err)
	}

	utils.LogInfo("CV deleted", map[string]interface{}{"key": fileKey})
	return nil
}
