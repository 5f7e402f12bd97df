package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type doc struct {
	Name  string   `json:"name"`
	Ports []int    `json:"ports,omitempty"`
	Tags  []string `json:"tags"`
}

func TestWriteDocument_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDocument(&buf, FormatYAML, doc{Name: "orders", Tags: []string{}}))
	assert.Equal(t, "name: orders\ntags: []\n", buf.String())
}

func TestWriteDocument_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDocument(&buf, FormatJSON, doc{Name: "orders", Ports: []int{8080}}))
	assert.Equal(t, "{\n  \"name\": \"orders\",\n  \"ports\": [\n    8080\n  ],\n  \"tags\": null\n}\n", buf.String())
}

func TestWriteDocument_RejectsNonDocumentFormat(t *testing.T) {
	var buf bytes.Buffer
	err := WriteDocument(&buf, FormatTable, doc{})
	assert.ErrorContains(t, err, "not a document format")
	assert.Zero(t, buf.Len())
}
