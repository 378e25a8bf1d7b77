/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 *
 * Package s3cache implements httpcache.Cache on top of Amazon S3. It backs
 * the cached http client used when importing tournament result pages;
 * finished rounds never change, so cached pages stay valid for a long time.
 */
package s3cache

import (
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

const objectPrefix = "pagecache"

// Cache stores and retrieves gzipped page bodies in a single S3 bucket.
type Cache struct {
	// Client is the s3 client the cache uses. Init() populates it from the
	// default AWS config; callers may override it before use.
	Client *s3.Client

	bucketName string
	ctx        context.Context
}

// New returns a Cache backed by the named bucket. Callers must invoke Init()
// on the returned Cache before use.
func New(ctx context.Context, bucketName string) *Cache {
	return &Cache{
		ctx:        ctx,
		bucketName: bucketName,
	}
}

// Init loads the default AWS configuration (environment variables, shared
// config/credentials files) and verifies the bucket is reachable.
func (c *Cache) Init() error {
	cfg, err := awsconfig.LoadDefaultConfig(c.ctx)
	if err != nil {
		return fmt.Errorf("s3cache.init: failed to load AWS config: %w", err)
	}
	c.Client = s3.NewFromConfig(cfg)

	if _, err = c.Client.HeadBucket(c.ctx, &s3.HeadBucketInput{
		Bucket: aws.String(c.bucketName),
	}); err != nil {
		return fmt.Errorf("s3cache.init: head bucket failed for %s: %w",
			c.bucketName, err)
	}

	return nil
}

func (c *Cache) Get(key string) ([]byte, bool) {
	input := &s3.GetObjectInput{
		Bucket: aws.String(c.bucketName),
		Key:    aws.String(objectKey(key)),
	}

	resp, err := c.Client.GetObject(c.ctx, input)
	if err != nil {
		var apiErr smithy.APIError
		// no such key just indicates a cache miss
		if !(errors.As(err, &apiErr) && apiErr.ErrorCode() == "NoSuchKey") {
			log.Printf("s3cache.get: failed to get object %v%v: %v",
				c.bucketName, *input.Key, err)
		}
		return nil, false
	}
	defer resp.Body.Close()

	gr, err := gzip.NewReader(resp.Body)
	if err != nil {
		log.Printf("s3cache.get: failed to open compressed object %v%v: %v",
			c.bucketName, *input.Key, err)
		return nil, false
	}
	defer gr.Close()

	data, err := io.ReadAll(gr)
	if err != nil {
		log.Printf("s3cache.get: failed to read object %v%v: %v",
			c.bucketName, *input.Key, err)
		return nil, false
	}

	return data, true
}

// Set stores the provided data in the cache under the given key.
func (c *Cache) Set(key string, data []byte) {
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	if _, err := gw.Write(data); err != nil {
		log.Printf("s3cache.set: failed to gzip data for %v: %v", key, err)
		return
	}
	if err := gw.Close(); err != nil {
		log.Printf("s3cache.set: failed to close gzip writer for %v: %v", key, err)
		return
	}

	input := &s3.PutObjectInput{
		Bucket:          aws.String(c.bucketName),
		Key:             aws.String(objectKey(key)),
		Body:            &buf,
		ContentEncoding: aws.String("gzip"),
	}
	if _, err := c.Client.PutObject(c.ctx, input); err != nil {
		log.Printf("s3cache.set: put failed for %v%v: %v", c.bucketName,
			*input.Key, err)
	}
}

func (c *Cache) Delete(key string) {
	input := &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucketName),
		Key:    aws.String(objectKey(key)),
	}
	if _, err := c.Client.DeleteObject(c.ctx, input); err != nil {
		log.Printf("s3cache.delete: delete failed: %v", err)
	}
}

func objectKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	return fmt.Sprintf("/%v/%v.gz", objectPrefix, hex.EncodeToString(sum[:]))
}
