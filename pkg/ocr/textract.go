package ocr

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/textract"
	"github.com/aws/aws-sdk-go-v2/service/textract/types"
	"github.com/google/uuid"
)

// pollInterval is the sleep between job status polls.
const pollInterval = time.Second

// TextractClient runs OCR through AWS Textract. Document bytes are uploaded
// to an ephemeral S3 key for the duration of the analysis and always deleted
// afterwards.
type TextractClient struct {
	s3Client       *s3.Client
	textractClient *textract.Client
	bucket         string
}

// NewTextractClient builds a client from the ambient AWS configuration.
func NewTextractClient(ctx context.Context, region, bucket string) (*TextractClient, error) {
	if bucket == "" {
		return nil, fmt.Errorf("ocr: S3 bucket is required")
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("ocr: loading AWS config: %w", err)
	}
	return &TextractClient{
		s3Client:       s3.NewFromConfig(cfg),
		textractClient: textract.NewFromConfig(cfg),
		bucket:         bucket,
	}, nil
}

// Run uploads the bytes, starts the async analysis, polls until a terminal
// job status, and paginates the full block list.
func (c *TextractClient) Run(ctx context.Context, data []byte, features Features) ([]Block, error) {
	key := "ocr-tmp/" + uuid.New().String()

	if _, err := c.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	}); err != nil {
		return nil, fmt.Errorf("ocr: uploading to s3://%s/%s: %w", c.bucket, key, err)
	}
	defer func() {
		// The ephemeral object is removed no matter how the analysis ends.
		if _, err := c.s3Client.DeleteObject(context.Background(), &s3.DeleteObjectInput{
			Bucket: aws.String(c.bucket),
			Key:    aws.String(key),
		}); err != nil {
			slog.Warn("Failed to delete ephemeral OCR object", "key", key, "error", err)
		}
	}()

	location := &types.DocumentLocation{
		S3Object: &types.S3Object{
			Bucket: aws.String(c.bucket),
			Name:   aws.String(key),
		},
	}

	if features.Analysis() {
		return c.runAnalysis(ctx, location, features)
	}
	return c.runTextDetection(ctx, location)
}

func (c *TextractClient) runAnalysis(ctx context.Context, location *types.DocumentLocation, features Features) ([]Block, error) {
	var featureTypes []types.FeatureType
	if features.Tables {
		featureTypes = append(featureTypes, types.FeatureTypeTables)
	}
	if features.Forms {
		featureTypes = append(featureTypes, types.FeatureTypeForms)
	}
	input := &textract.StartDocumentAnalysisInput{
		DocumentLocation: location,
		FeatureTypes:     featureTypes,
	}
	if len(features.Queries) > 0 {
		input.FeatureTypes = append(input.FeatureTypes, types.FeatureTypeQueries)
		qs := make([]types.Query, 0, len(features.Queries))
		for _, q := range features.Queries {
			qs = append(qs, types.Query{Text: aws.String(q)})
		}
		input.QueriesConfig = &types.QueriesConfig{Queries: qs}
	}

	started, err := c.textractClient.StartDocumentAnalysis(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("ocr: starting analysis: %w", err)
	}

	var blocks []Block
	var nextToken *string
	for {
		out, err := c.textractClient.GetDocumentAnalysis(ctx, &textract.GetDocumentAnalysisInput{
			JobId:     started.JobId,
			NextToken: nextToken,
		})
		if err != nil {
			return nil, fmt.Errorf("ocr: polling analysis: %w", err)
		}
		switch out.JobStatus {
		case types.JobStatusInProgress:
			if err := sleepCtx(ctx, pollInterval); err != nil {
				return nil, err
			}
			continue
		case types.JobStatusSucceeded:
			blocks = append(blocks, convertBlocks(out.Blocks)...)
			if out.NextToken == nil {
				return blocks, nil
			}
			nextToken = out.NextToken
		default:
			return nil, fmt.Errorf("%w: job status %s", ErrOCRFailed, out.JobStatus)
		}
	}
}

func (c *TextractClient) runTextDetection(ctx context.Context, location *types.DocumentLocation) ([]Block, error) {
	started, err := c.textractClient.StartDocumentTextDetection(ctx, &textract.StartDocumentTextDetectionInput{
		DocumentLocation: location,
	})
	if err != nil {
		return nil, fmt.Errorf("ocr: starting text detection: %w", err)
	}

	var blocks []Block
	var nextToken *string
	for {
		out, err := c.textractClient.GetDocumentTextDetection(ctx, &textract.GetDocumentTextDetectionInput{
			JobId:     started.JobId,
			NextToken: nextToken,
		})
		if err != nil {
			return nil, fmt.Errorf("ocr: polling text detection: %w", err)
		}
		switch out.JobStatus {
		case types.JobStatusInProgress:
			if err := sleepCtx(ctx, pollInterval); err != nil {
				return nil, err
			}
			continue
		case types.JobStatusSucceeded:
			blocks = append(blocks, convertBlocks(out.Blocks)...)
			if out.NextToken == nil {
				return blocks, nil
			}
			nextToken = out.NextToken
		default:
			return nil, fmt.Errorf("%w: job status %s", ErrOCRFailed, out.JobStatus)
		}
	}
}

// convertBlocks maps Textract blocks to the normalized structure.
func convertBlocks(in []types.Block) []Block {
	out := make([]Block, 0, len(in))
	for _, b := range in {
		nb := Block{
			ID:        aws.ToString(b.Id),
			BlockType: string(b.BlockType),
			Text:      aws.ToString(b.Text),
			Page:      int(aws.ToInt32(b.Page)),
		}
		if b.Confidence != nil {
			nb.Confidence = float64(*b.Confidence)
		}
		for _, et := range b.EntityTypes {
			nb.EntityTypes = append(nb.EntityTypes, string(et))
		}
		for _, rel := range b.Relationships {
			nb.Relationships = append(nb.Relationships, Relationship{
				Type: string(rel.Type),
				IDs:  rel.Ids,
			})
		}
		out = append(out, nb)
	}
	return out
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
