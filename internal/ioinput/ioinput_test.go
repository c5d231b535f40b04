package ioinput

import (
	"path/filepath"
	"testing"

	"github.com/cogpn/cogpn/internal/iotesting"
	"github.com/cogpn/cogpn/pkg/errcode"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	assert := assert.New(t)
	cfg := iotesting.Config(t)

	in, err := Load(cfg)
	require.NoError(t, err)
	assert.Equal(map[string]string{"MUIZENBURG": "MUIZENBERG"}, in.Synonyms)
	assert.Equal([]string{"ROAD", "RD", "STREET", "ST"}, in.StreetTypes)
	assert.Equal([]string{"BO KAAP"}, in.SuburbWords)
	assert.Len(in.Hierarchy.FindNodeByName("Bella Vista"), 2)
}

func TestLoadOptionalFiles(t *testing.T) {
	cfg := iotesting.Config(t)
	cfg.Files.Synonyms = ""
	cfg.Files.StreetTypes = ""
	cfg.Files.SuburbWords = ""

	in, err := Load(cfg)
	require.NoError(t, err)
	assert.Empty(t, in.Synonyms)

	res := in.Normalizer().Normalize("12 Main Road, Bella Vista")
	assert.Equal(t, "MAIN ROAD BELLA-VISTA", res.Text)
	assert.Equal(t, "", res.StreetType)
}

func TestLoadMissingFile(t *testing.T) {
	cfg := iotesting.Config(t)
	cfg.Files.StreetTypes = filepath.Join(t.TempDir(), "none.txt")

	_, err := Load(cfg)
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.InputFileNotFoundError, gnErr.Code)
}

func TestNormalizer(t *testing.T) {
	tests := []struct {
		msg, raw, text, street string
		terms                  []string
	}{
		{"synonym and street", "3 Main Road, Muizenburg", "MUIZENBERG", "ROAD", nil},
		{"gazetteer name", "7 Vine St Bella Vista Cape Town", "BELLA-VISTA CAPE-TOWN", "ST", nil},
		{"suburb word", "Bo Kaap", "BO-KAAP", "", nil},
		{"extra term", "Site 5 Old Camp", "SITE-5 OLD-CAMP", "", []string{"OLD-CAMP"}},
	}

	cfg := iotesting.Config(t)
	in, err := Load(cfg)
	require.NoError(t, err)

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			res := in.Normalizer(v.terms...).Normalize(v.raw)
			assert.Equal(t, v.text, res.Text)
			assert.Equal(t, v.street, res.StreetType)
		})
	}
}
