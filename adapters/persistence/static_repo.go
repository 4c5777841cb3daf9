package persistence

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio/internal/domain/portfolio"
	"github.com/khoahotran/portfolio/pkg/logger"
)

var (
	//go:embed data/portfolio.json
	embeddedDataset []byte

	//go:embed data/portfolio.schema.json
	datasetSchema []byte
)

// EmbeddedDataset returns a copy of the dataset document compiled into the
// binary.
func EmbeddedDataset() []byte {
	return bytes.Clone(embeddedDataset)
}

// LoadError reports a dataset document that could not be turned into a
// Dataset.
type LoadError struct {
	Source string
	Issues []string
	Cause  error
}

func (e *LoadError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "load dataset from %s", e.Source)
	if e.Cause != nil {
		fmt.Fprintf(&sb, ": %v", e.Cause)
	}
	for _, issue := range e.Issues {
		sb.WriteString("\n  - ")
		sb.WriteString(issue)
	}
	return sb.String()
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// DecodeDataset checks raw against the dataset schema, decodes it and runs
// struct validation. Only the personal basic info is mandatory; a missing
// section decodes as empty and renders as a "no data" placeholder.
func DecodeDataset(source string, raw []byte) (*portfolio.Dataset, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(datasetSchema),
		gojsonschema.NewBytesLoader(raw),
	)
	if err != nil {
		return nil, &LoadError{Source: source, Cause: err}
	}
	if !result.Valid() {
		issues := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			issues = append(issues, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
		}
		return nil, &LoadError{Source: source, Issues: issues, Cause: portfolio.ErrDatasetInvalid}
	}

	var d portfolio.Dataset
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, &LoadError{Source: source, Cause: err}
	}
	if err := d.Validate(); err != nil {
		return nil, &LoadError{Source: source, Cause: err}
	}
	return &d, nil
}

type staticRepo struct {
	source string
	raw    []byte
	logger logger.Logger
}

// NewStaticRepo serves the dataset compiled into the binary.
func NewStaticRepo(log logger.Logger) portfolio.Repository {
	return &staticRepo{source: "embedded", raw: embeddedDataset, logger: log}
}

// NewFileRepo reads the dataset from a JSON file on disk.
func NewFileRepo(path string, log logger.Logger) (portfolio.Repository, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset file: %w", err)
	}
	return &staticRepo{source: path, raw: raw, logger: log}, nil
}

func (r *staticRepo) Load(ctx context.Context) (*portfolio.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	d, err := DecodeDataset(r.source, r.raw)
	if err != nil {
		return nil, err
	}
	if dups := d.DuplicateProjectIDs(); len(dups) > 0 {
		r.logger.Warn("Duplicate project ids in dataset, first match wins",
			zap.String("source", r.source), zap.Strings("ids", dups))
	}
	return d, nil
}
