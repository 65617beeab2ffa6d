package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/jhoicas/Tributo-api/internal/application/ports"
	"github.com/jhoicas/Tributo-api/pkg/config"
)

var _ ports.DocumentStore = (*S3Store)(nil)

// S3Store guarda sustentos en un bucket S3. Las credenciales salen de la
// cadena por defecto del SDK (env vars, perfil o rol de instancia).
type S3Store struct {
	client *s3.S3
	bucket string
	prefix string
}

// NewS3Store construye el almacén sobre el bucket configurado.
func NewS3Store(cfg config.StorageConfig) (*S3Store, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("bucket de sustentos no configurado")
	}
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(cfg.Region),
	})
	if err != nil {
		return nil, fmt.Errorf("crear sesión AWS: %w", err)
	}
	return &S3Store{
		client: s3.New(sess),
		bucket: cfg.Bucket,
		prefix: cfg.KeyPrefix,
	}, nil
}

// Put guarda el documento y devuelve su referencia estable (la clave S3).
func (s *S3Store) Put(ctx context.Context, key string, contentType string, body io.Reader) (string, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("leer documento: %w", err)
	}
	ref := path.Join(s.prefix, key)
	_, err = s.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(ref),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return "", fmt.Errorf("subir documento a S3: %w", err)
	}
	return ref, nil
}

// Get abre el documento. El caller debe cerrar el reader.
func (s *S3Store) Get(ctx context.Context, ref string) (io.ReadCloser, string, error) {
	out, err := s.client.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(ref),
	})
	if err != nil {
		return nil, "", fmt.Errorf("descargar documento de S3: %w", err)
	}
	return out.Body, aws.StringValue(out.ContentType), nil
}

// SignedURL devuelve una URL temporal de descarga directa.
func (s *S3Store) SignedURL(ctx context.Context, ref string, expirySeconds int) (string, error) {
	req, _ := s.client.GetObjectRequest(&s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(ref),
	})
	url, err := req.Presign(time.Duration(expirySeconds) * time.Second)
	if err != nil {
		return "", fmt.Errorf("firmar URL de descarga: %w", err)
	}
	return url, nil
}

// Delete elimina el documento.
func (s *S3Store) Delete(ctx context.Context, ref string) error {
	_, err := s.client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(ref),
	})
	if err != nil {
		return fmt.Errorf("borrar documento de S3: %w", err)
	}
	return nil
}
