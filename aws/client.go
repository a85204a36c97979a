package aws

import (
	"bytes"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/rs/zerolog/log"
)

// Client archives visual-search uploads to S3 so the automation flow's
// classifications can be audited against the original image later.
type Client struct {
	session  *session.Session
	bucket   string
	region   string
	uploader *s3manager.Uploader
}

func NewClient(region, bucket string) *Client {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(region),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create AWS session")
	}

	log.Info().
		Str("bucket", bucket).
		Str("region", region).
		Msg("AWS session created successfully")

	return &Client{
		session:  sess,
		bucket:   bucket,
		region:   region,
		uploader: s3manager.NewUploader(sess),
	}
}

// UploadImage stores one image and returns its object URL.
func (c *Client) UploadImage(imageData []byte, filename, contentType string) (string, error) {
	key := fmt.Sprintf("visual-search/%d_%s", time.Now().Unix(), filename)

	uploadInput := &s3manager.UploadInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(imageData),
		ContentType: aws.String(contentType),
	}

	result, err := c.uploader.Upload(uploadInput)
	if err != nil {
		log.Error().
			Err(err).
			Str("bucket", c.bucket).
			Str("key", key).
			Msg("S3 upload failed")
		return "", fmt.Errorf("failed to upload image to S3: %w", err)
	}

	log.Info().
		Str("s3_location", result.Location).
		Str("bucket", c.bucket).
		Str("key", key).
		Int("content_size", len(imageData)).
		Msg("Image archived to S3")

	return result.Location, nil
}
