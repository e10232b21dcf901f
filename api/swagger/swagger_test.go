package swagger

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestDocumentIsValidJSON(t *testing.T) {
	doc, err := swag.ReadDoc()
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(doc), &parsed))
	paths, ok := parsed["paths"].(map[string]interface{})
	require.True(t, ok)
	for _, p := range []string{"/candidates", "/attendance", "/payroll", "/alerts/expiry", "/commissions/{agent}"} {
		assert.Contains(t, paths, p)
	}
}
