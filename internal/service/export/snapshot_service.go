package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stock-ahora/api-dwh/internal/config"
	"github.com/stock-ahora/api-dwh/internal/repository"
)

// wrapper para el servicio de subida a S3
type S3config struct {
	config.UploadService
}

// SnapshotService publica el modelo dimensional como JSON en S3 para que
// el servicio de reportes lo lea. Es salida de solo lectura, no ingesta.
type SnapshotService struct {
	config S3config
}

func NewSnapshotService(config S3config) *SnapshotService {
	return &SnapshotService{config: config}
}

func (s *SnapshotService) Export(ctx context.Context, runID string, dims repository.DimensionalSet) error {
	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	objects := []struct {
		name string
		data interface{}
	}{
		{"dim_customer", dims.Customers},
		{"dim_product", dims.Products},
		{"fact_sales", dims.Facts},
	}

	for _, obj := range objects {
		body, err := json.Marshal(obj.data)
		if err != nil {
			return fmt.Errorf("serializando %s: %w", obj.name, err)
		}
		key := fmt.Sprintf("dwh-snapshots/%s/%s.json", runID, obj.name)

		_, err = s.config.Uploader.Upload(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(s.config.Bucket),
			Key:         aws.String(key),
			Body:        bytes.NewReader(body),
			ContentType: aws.String("application/json"),
		})
		if err != nil {
			return fmt.Errorf("error subiendo %s a S3: %w", obj.name, err)
		}
	}
	return nil
}
