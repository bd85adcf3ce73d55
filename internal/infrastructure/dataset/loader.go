// Package dataset reads sales datasets from JSON or YAML files.
package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/vladislav25v/sales-bonus/internal/domain/sales"
	"github.com/vladislav25v/sales-bonus/internal/domain/shared"
	"gopkg.in/yaml.v3"
)

// Format is a dataset file encoding
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// IsValid reports whether f is a supported dataset format
func (f Format) IsValid() bool {
	switch f {
	case FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}

// FormatFromPath picks the format from the file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: unsupported dataset extension %q", shared.ErrInvalidInput, filepath.Ext(path))
	}
}

var elementValidator = newElementValidator()

func newElementValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Load reads and validates the dataset stored at path
func Load(path string) (*sales.Dataset, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	return Decode(f, format)
}

// Decode reads a dataset in the given format and validates every element.
// Collection emptiness is left to the report pipeline.
func Decode(r io.Reader, format Format) (*sales.Dataset, error) {
	var data sales.Dataset

	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&data); err != nil {
			return nil, fmt.Errorf("%w: decode json dataset: %v", shared.ErrInvalidInput, err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&data); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: decode yaml dataset: %v", shared.ErrInvalidInput, err)
		}
	default:
		return nil, fmt.Errorf("%w: unknown dataset format %q", shared.ErrInvalidInput, format)
	}

	if err := validateElements(&data); err != nil {
		return nil, err
	}
	return &data, nil
}

// validateElements checks field tags on every seller, product and purchase
// record, reporting paths such as purchase_records[3].items[0].sku
func validateElements(data *sales.Dataset) error {
	var fields []string

	check := func(collection string, i int, element any) {
		err := elementValidator.Struct(element)
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return
		}
		for _, fe := range fieldErrs {
			ns := fe.Namespace()
			if dot := strings.Index(ns, "."); dot >= 0 {
				ns = ns[dot:]
			}
			fields = append(fields, fmt.Sprintf("%s[%d]%s", collection, i, ns))
		}
	}

	for i := range data.Sellers {
		check("sellers", i, &data.Sellers[i])
	}
	for i := range data.Products {
		check("products", i, &data.Products[i])
	}
	for i := range data.PurchaseRecords {
		check("purchase_records", i, &data.PurchaseRecords[i])
	}

	if len(fields) > 0 {
		return sales.NewValidationError(sales.MsgIncorrectData, fields...)
	}
	return nil
}
