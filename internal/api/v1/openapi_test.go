package apiv1

import (
	"context"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const openAPIDocPath = "../../../public/docs/v1/openapi.yml"

func loadOpenAPIDoc(t *testing.T) *openapi3.T {
	t.Helper()

	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromFile(openAPIDocPath)
	require.NoError(t, err, "the published OpenAPI document must parse")

	return doc
}

func TestOpenAPIDocumentIsValid(t *testing.T) {
	doc := loadOpenAPIDoc(t)

	require.NoError(t, doc.Validate(context.Background()))
}

// The document served at /docs/api/v1 must describe every route
// RegisterHandlers actually exposes.
func TestOpenAPIDocumentCoversRegisteredRoutes(t *testing.T) {
	doc := loadOpenAPIDoc(t)

	registered := []string{
		"/ping",
		"/profile",
		"/reports",
		"/analytics/realtime",
		"/audit/summary",
	}

	for _, path := range registered {
		item := doc.Paths.Find(path)
		require.NotNilf(t, item, "path %s is missing from the document", path)
		assert.NotNilf(t, item.Get, "path %s has no GET operation", path)
	}

	assert.Equal(t, len(registered), doc.Paths.Len(), "document describes routes that are not registered")
}
