package fixtures

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// mutate returns the embedded document after fn has edited its decoded form.
func mutate(t *testing.T, fn func(doc map[string]any)) []byte {
	t.Helper()
	var doc map[string]any
	require.NoError(t, json.Unmarshal(embedded, &doc))
	fn(doc)
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	return data
}
