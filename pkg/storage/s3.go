package storage

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"funfans/pkg/config"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// PlaceholderImageURL is served for content items without any media.
const PlaceholderImageURL = "https://static.funfans.app/placeholder-no-image.svg"

type Client struct {
	s3Client   *s3.S3
	bucket     string
	region     string
	endpoint   string
	disableSSL bool
}

func NewClient(cfg *config.Config) (*Client, error) {
	awsConfig := &aws.Config{
		Region: aws.String(cfg.AWSRegion),
		Credentials: credentials.NewStaticCredentials(
			cfg.AWSAccessKeyID,
			cfg.AWSSecretAccessKey,
			"",
		),
	}

	// Support MinIO for local development
	if cfg.AWSEndpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.AWSEndpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
		if cfg.S3UseSSL == "false" {
			awsConfig.DisableSSL = aws.Bool(true)
		}
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	client := &Client{
		s3Client:   s3.New(sess),
		bucket:     cfg.S3BucketName,
		region:     cfg.AWSRegion,
		endpoint:   cfg.AWSEndpoint,
		disableSSL: cfg.S3UseSSL == "false",
	}

	// Ensure bucket exists (for MinIO)
	_, err = client.s3Client.HeadBucket(&s3.HeadBucketInput{
		Bucket: aws.String(cfg.S3BucketName),
	})
	if err != nil {
		_, _ = client.s3Client.CreateBucket(&s3.CreateBucketInput{
			Bucket: aws.String(cfg.S3BucketName),
		})
	}

	return client, nil
}

func (c *Client) UploadFile(key string, file multipart.File, contentType string) (string, error) {
	buf := bytes.NewBuffer(nil)
	if _, err := io.Copy(buf, file); err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	_, err := c.s3Client.PutObject(&s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file to S3: %w", err)
	}

	return c.PublicURL(key), nil
}

func (c *Client) DeleteFile(key string) error {
	_, err := c.s3Client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete file from S3: %w", err)
	}
	return nil
}

// PublicURL builds the public URL for a bucket key, MinIO path-style when a
// custom endpoint is configured, virtual-hosted AWS style otherwise.
func (c *Client) PublicURL(key string) string {
	if c.endpoint != "" && !strings.Contains(c.endpoint, "amazonaws.com") {
		protocol := "https"
		if c.disableSSL {
			protocol = "http"
		}
		endpoint := strings.TrimPrefix(c.endpoint, "http://")
		endpoint = strings.TrimPrefix(endpoint, "https://")
		return fmt.Sprintf("%s://%s/%s/%s", protocol, endpoint, c.bucket, key)
	}

	region := c.region
	if region == "" {
		region = "us-east-1"
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", c.bucket, region, key)
}

// ResolveMediaURL maps a stored media path to something a client can fetch.
// Absolute URLs are used verbatim; bucket-relative paths are resolved to a
// public URL; an empty path falls back to the placeholder image.
func (c *Client) ResolveMediaURL(storagePath string) string {
	if storagePath == "" {
		return PlaceholderImageURL
	}
	if strings.HasPrefix(storagePath, "http") {
		return storagePath
	}
	key := strings.TrimPrefix(storagePath, c.bucket+"/")
	return c.PublicURL(key)
}
