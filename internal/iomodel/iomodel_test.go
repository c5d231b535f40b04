package iomodel

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cogpn/cogpn/pkg/errcode"
	"github.com/cogpn/cogpn/pkg/model"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleModel() *model.Model {
	m := model.New()
	m.TermToPostcode["MUIZENBERG"] = "7945"
	m.TermToPostcode["LANGA"] = "7455"
	m.PostcodeToSuburbs["7945"] = []string{"MUIZENBERG", "LAKESIDE"}
	m.TermCounts["MUIZENBERG"] = 120
	m.TermCounts["LANGA"] = 48
	m.TermCounts["ZONE-2"] = 9
	pair := model.NewPair("ZONE-2", "LANGA")
	m.TokenPairs[model.PairKey(pair)] = 8
	return m
}

func TestSaveLoad(t *testing.T) {
	assert := assert.New(t)
	path := filepath.Join(t.TempDir(), "models", "data.json")
	m := sampleModel()

	err := Save(path, m)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(string(data), `"term_to_postcode"`)
	assert.Contains(string(data), `"most_common_terms_all_postcodes"`)
	assert.Contains(string(data), `('LANGA', 'ZONE-2')`)

	res, err := Load(path)
	require.NoError(t, err)
	assert.Equal(m, res)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		msg     string
		content string
		code    gn.ErrorCode
	}{
		{"broken json", `{"term_to_postcode":`, errcode.ModelDecodeError},
		{"empty model", `{}`, errcode.ModelEmptyError},
		{
			"bad pair",
			`{"most_common_terms_all_postcodes":{"A":5},"token_pairs":{"A|B":6}}`,
			errcode.ModelDecodeError,
		},
	}
	for i, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			path := filepath.Join(dir, string(rune('a'+i))+".json")
			require.NoError(t, os.WriteFile(path, []byte(v.content), 0644))
			_, err := Load(path)
			require.Error(t, err)
			gnErr, ok := err.(*gn.Error)
			require.True(t, ok)
			assert.Equal(t, v.code, gnErr.Code)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "none.json"))
		require.Error(t, err)
		gnErr, ok := err.(*gn.Error)
		require.True(t, ok)
		assert.Equal(t, errcode.InputFileNotFoundError, gnErr.Code)
	})
}

func TestLoadNullMaps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	content := `{"term_to_postcode":null,"most_common_terms_all_postcodes":{"LANGA":4}}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	res, err := Load(path)
	require.NoError(t, err)
	assert.NotNil(t, res.TermToPostcode)
	assert.NotNil(t, res.TokenPairs)
	assert.True(t, res.IsSignificant("LANGA"))
}
