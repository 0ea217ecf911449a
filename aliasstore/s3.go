/*
 * s3.go, part of gosld.
 *
 *
 * Copyright 2026 The goSLD authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package aliasstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/rmera/gosld/alias"
)

//S3Config selects one object in an S3-compatible service.
type S3Config struct {
	Bucket          string
	Key             string
	Region          string //us-east-1 if empty
	Endpoint        string //for MinIO and other S3-compatible services
	PathStyle       bool
	AccessKeyID     string //if empty, the default AWS credential chain is used
	SecretAccessKey string
	SessionToken    string
	HTTPClient      *http.Client
}

//S3 keeps aliases in one object of an S3 bucket, in the format of File.
//As with File, keys ending in .zst or .gz are compressed.
type S3 struct {
	client *s3.Client
	bucket string
	key    string
}

//NewS3 returns a store for the object described by cfg. The object
//does not need to exist.
func NewS3(cfg S3Config) (*S3, error) {
	name := "s3://" + cfg.Bucket + "/" + cfg.Key
	if cfg.Bucket == "" || cfg.Key == "" {
		return nil, newError(name, "NewS3", errors.New("bucket and key required"))
	}
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}
	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if cfg.AccessKeyID != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, cfg.SessionToken)))
	}
	ctx, cancel := context.WithTimeout(context.Background(), Timeout)
	defer cancel()
	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, newError(name, "NewS3", err)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.PathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			//not every S3-compatible service takes checksum trailers
			o.RequestChecksumCalculation = aws.RequestChecksumCalculationWhenRequired
			o.ResponseChecksumValidation = aws.ResponseChecksumValidationWhenRequired
		}
		if cfg.HTTPClient != nil {
			o.HTTPClient = cfg.HTTPClient
		}
	})
	return &S3{client: client, bucket: cfg.Bucket, key: cfg.Key}, nil
}

//ParseS3URL reads an S3 store location of the form
//s3://bucket/key?region=eu-west-1&endpoint=http://localhost:9000&path_style=true.
//Only the bucket and the key are required.
func ParseS3URL(raw string) (S3Config, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return S3Config{}, newError(raw, "ParseS3URL", err)
	}
	if u.Scheme != "s3" {
		return S3Config{}, newError(raw, "ParseS3URL", fmt.Errorf("scheme %q is not s3", u.Scheme))
	}
	q := u.Query()
	cfg := S3Config{
		Bucket:   u.Host,
		Key:      strings.TrimPrefix(u.Path, "/"),
		Region:   q.Get("region"),
		Endpoint: q.Get("endpoint"),
	}
	if ps := q.Get("path_style"); ps != "" {
		if cfg.PathStyle, err = strconv.ParseBool(ps); err != nil {
			return S3Config{}, newError(raw, "ParseS3URL", err)
		}
	}
	if cfg.Bucket == "" || cfg.Key == "" {
		return S3Config{}, newError(raw, "ParseS3URL", errors.New("bucket and key required"))
	}
	return cfg, nil
}

func (S *S3) Name() string { return "s3://" + S.bucket + "/" + S.key }

func notFound(err error) bool {
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}
	var re *awshttp.ResponseError
	return errors.As(err, &re) && re.HTTPStatusCode() == http.StatusNotFound
}

//Load reads the aliases in the object. An object that does not exist
//holds no aliases.
func (S *S3) Load() ([]alias.Entry, error) {
	ctx, cancel := context.WithTimeout(context.Background(), Timeout)
	defer cancel()
	out, err := S.client.GetObject(ctx, &s3.GetObjectInput{Bucket: aws.String(S.bucket), Key: aws.String(S.key)})
	if err != nil {
		if notFound(err) {
			return nil, nil
		}
		return nil, newError(S.Name(), "S3.Load", err)
	}
	defer out.Body.Close()
	r, err := newReader(S.key, out.Body)
	if err != nil {
		return nil, newError(S.Name(), "S3.Load", err)
	}
	defer r.Close()
	ret, err := readEntries(r, S.Name())
	if err != nil {
		return nil, newError(S.Name(), "S3.Load", err)
	}
	return ret, nil
}

func contentType(key string) string {
	switch strings.ToLower(filepath.Ext(key)) {
	case ".zst":
		return "application/zstd"
	case ".gz":
		return "application/gzip"
	default:
		return "text/plain; charset=utf-8"
	}
}

//Save replaces the object with entries.
func (S *S3) Save(entries []alias.Entry) error {
	var buf bytes.Buffer
	if err := writeEntries(S.key, &buf, entries); err != nil {
		return newError(S.Name(), "S3.Save", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), Timeout)
	defer cancel()
	_, err := S.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(S.bucket),
		Key:         aws.String(S.key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String(contentType(S.key)),
	})
	if err != nil {
		return newError(S.Name(), "S3.Save", err)
	}
	return nil
}
