package utils

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var s3Client *s3.Client

// InitS3 is optional: when S3_BUCKET is unset, photo analysis still works
// but images are not persisted.
func InitS3() {
	if os.Getenv("S3_BUCKET") == "" {
		log.Printf("S3_BUCKET not set, meal photos will not be stored")
		return
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		log.Fatalf("Unable to load AWS config for S3: %v", err)
	}
	s3Client = s3.NewFromConfig(cfg)
}

// UploadMealPhoto stores a base64 data-URI image under meal-photos/ and
// returns its public URL. Returns "" without error when S3 is disabled.
func UploadMealPhoto(dataURI string, userID uint) (string, error) {
	if s3Client == nil {
		return "", nil
	}

	parts := strings.SplitN(dataURI, ",", 2)
	if len(parts) != 2 || !strings.HasPrefix(parts[0], "data:image") {
		return "", fmt.Errorf("invalid base64 image")
	}
	contentType := strings.TrimSuffix(strings.TrimPrefix(parts[0], "data:"), ";base64")

	img, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	ext := ".jpg"
	if sub := strings.SplitN(contentType, "/", 2); len(sub) == 2 && sub[1] != "jpeg" {
		ext = "." + sub[1]
	}
	key := fmt.Sprintf("meal-photos/%d-%d%s", userID, time.Now().UnixNano(), ext)

	bucket := os.Getenv("S3_BUCKET")
	_, err = s3Client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(img),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", bucket, key), nil
}
