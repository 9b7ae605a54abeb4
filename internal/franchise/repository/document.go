package repository

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"franchises/internal/domain"
)

// documentSchemaJSON describes what a stored document must look like before it
// is decoded. Root id and name may be missing since the row columns win.
const documentSchemaJSON = `{
	"type": "object",
	"properties": {
		"id": {"type": "string"},
		"name": {"type": "string"},
		"version": {"type": "integer"},
		"branches": {
			"type": ["array", "null"],
			"items": {
				"type": "object",
				"required": ["id", "name"],
				"properties": {
					"id": {"type": "string"},
					"name": {"type": "string"},
					"products": {
						"type": ["array", "null"],
						"items": {
							"type": "object",
							"required": ["id"],
							"properties": {
								"id": {"type": "string"},
								"name": {"type": "string"},
								"stock": {"type": ["integer", "null"]}
							}
						}
					}
				}
			}
		}
	}
}`

var documentSchema = mustCompileSchema(documentSchemaJSON)

func mustCompileSchema(raw string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(raw))
	if err != nil {
		panic(fmt.Sprintf("compiling franchise document schema: %v", err))
	}
	return schema
}

func validateDocument(data []byte) error {
	result, err := documentSchema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("validating franchise document: %w", err)
	}
	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return fmt.Errorf("franchise document is malformed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// FranchiseDocument is the stored shape of the aggregate. The MySQL store keeps
// it in a JSON column and the cache stores it verbatim.
type FranchiseDocument struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Version  int64            `json:"version"`
	Branches []BranchDocument `json:"branches"`
}

type BranchDocument struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Products []ProductDocument `json:"products"`
}

type ProductDocument struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Stock *int   `json:"stock"`
}

func ToDocument(f domain.Franchise) FranchiseDocument {
	doc := FranchiseDocument{
		ID:       f.ID,
		Name:     f.Name,
		Version:  f.Version,
		Branches: make([]BranchDocument, 0, len(f.Branches)),
	}
	for _, b := range f.Branches {
		bd := BranchDocument{
			ID:       b.ID,
			Name:     b.Name,
			Products: make([]ProductDocument, 0, len(b.Products)),
		}
		for _, p := range b.Products {
			stock := p.Stock
			bd.Products = append(bd.Products, ProductDocument{ID: p.ID, Name: p.Name, Stock: &stock})
		}
		doc.Branches = append(doc.Branches, bd)
	}
	return doc
}

// ToDomain rebuilds the aggregate. Branch names are taken as stored; a missing
// stock is read as zero.
func ToDomain(doc FranchiseDocument) domain.Franchise {
	f := domain.Franchise{
		ID:       doc.ID,
		Name:     doc.Name,
		Version:  doc.Version,
		Branches: make([]domain.Branch, 0, len(doc.Branches)),
	}
	for _, bd := range doc.Branches {
		b := domain.Branch{
			ID:       bd.ID,
			Name:     bd.Name,
			Products: make([]domain.Product, 0, len(bd.Products)),
		}
		for _, pd := range bd.Products {
			p := domain.Product{ID: pd.ID, Name: pd.Name}
			if pd.Stock != nil {
				p.Stock = *pd.Stock
			}
			b.Products = append(b.Products, p)
		}
		f.Branches = append(f.Branches, b)
	}
	return f
}

func marshalFranchise(f domain.Franchise) ([]byte, error) {
	data, err := json.Marshal(ToDocument(f))
	if err != nil {
		return nil, fmt.Errorf("encoding franchise document: %w", err)
	}
	return data, nil
}

func unmarshalFranchise(data []byte) (domain.Franchise, error) {
	if err := validateDocument(data); err != nil {
		return domain.Franchise{}, err
	}

	var doc FranchiseDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return domain.Franchise{}, fmt.Errorf("decoding franchise document: %w", err)
	}
	return ToDomain(doc), nil
}
