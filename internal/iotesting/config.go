// Package iotesting writes a small Cape Town data set for tests of the
// impure packages.
package iotesting

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cogpn/cogpn/pkg/config"
)

// ReferenceHeader is the header of the AfriGIS reference list.
const ReferenceHeader = "SUBURB\tTOWN\tAG_SUB_ID\tAG_SUB_CDE\tSTRCODE\tLOCALMUNICIPALITY"

// AddressHeader is the header of address files.
const AddressHeader = "address_row_id\tAddressLine1\tAddressLine2\tAddressLine3\tAddressLine4\tpostal_code"

// Reference rows. BELLA VISTA exists in Cape Town and in Ceres.
var Reference = []string{
	"Muizenberg\tCape Town\t101\tMZB\t7945\tCity of Cape Town",
	"Lakeside\tCape Town\t104\tLKS\t7945\tCity of Cape Town",
	"Bella Vista\tCape Town\t105\tBVC\t7100\tCity of Cape Town",
	"Langa\tLanga\t102\tLNG\t7455\tCity of Cape Town",
	"Bonteheuwel\tLanga\t103\tBTH\t7764\tCity of Cape Town",
	"Ceres\tCeres\t201\tCRS\t6835\tWitzenberg",
	"Bella Vista\tCeres\t202\tBLV\t6836\tWitzenberg",
	"Excluded\tCeres\t203\tEXC\t6837\tWitzenberg",
}

// Training is an address corpus labelled with postal codes. The last row
// repeats the ID of the first one.
var Training = []string{
	"1\t1 Main Road\tMuizenberg\t\t\t7945",
	"2\t2 Main Road\tMuizenberg\t\t\t7945",
	"3\t3 Main Road\tMuizenburg\t\t\t7945",
	"4\t4 Main Road\tMuizenberg\t\t\t7945",
	"5\t5 Main Road\tMuizenberg\t\t\t7945",
	"6\t6 Main Road\tMuizenberg\t\t\t7945",
	"7\t7 Beach Road\tLakeside\tMuizenberg\t\t7945",
	"8\t8 Beach Road\tLakeside\tMuizenberg\t\t7945",
	"9\t9 Beach Road\tLakeside\tMuizenberg\t\t7945",
	"10\t10 Beach Road\tLakeside\tMuizenberg\t\t7945",
	"11\t11 Beach Road\tLakeside\tMuizenberg\t\t7945",
	"12\t12 Beach Road\tLakeside\tMuizenberg\t\t7945",
	"13\t1 Church St\tLanga\t\t\t7455",
	"14\t2 Church St\tLanga\t\t\t7455",
	"15\t3 Church St\tLanga\t\t\t7455",
	"16\t4 Church St\tLanga\t\t\t7455",
	"17\t5 Church St\tLanga\t\t\t7455",
	"18\t1 Voortrekker Rd\tCeres\t\t\t6835",
	"19\t2 Voortrekker Rd\tCeres\t\t\t6835",
	"20\t3 Voortrekker Rd\tCeres\t\t\t6835",
	"21\t4 Voortrekker Rd\tCeres\t\t\t6835",
	"22\t1 Vine St\tBella Vista\t\t\t6836",
	"23\t2 Vine St\tBella Vista\t\t\t6836",
	"24\t3 Vine St\tBella Vista\t\t\t6836",
	"25\t4 Vine St\tBella Vista\t\t\t6836",
	"26\t5 Vine St\tBella Vista\t\t\t6836",
	"27\t3 Long Street\tMuizenberg\t\t\t",
	"1\t1 Main Road\tMuizenberg\t\t\t7945",
}

// Config writes the reference list and word lists into a temporary
// directory and returns a configuration that points to them. Outputs and
// the model are placed in the same directory.
func Config(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()

	ref := WriteFile(t, dir, "reference.tsv",
		ReferenceHeader+"\n"+strings.Join(Reference, "\n")+"\n")
	syn := WriteFile(t, dir, "synonyms.csv", "Muizenburg, Muizenberg\n")
	excl := WriteFile(t, dir, "excluded_places.csv", "Excluded, Ceres\n")
	st := WriteFile(t, dir, "street_types.txt", "ROAD\nRD\nSTREET\nST\n")
	words := WriteFile(t, dir, "all_suburbs_words.txt", "Bo Kaap\n")

	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptFilesReference(ref),
		config.OptFilesSynonyms(syn),
		config.OptFilesExclusions(excl),
		config.OptFilesStreetTypes(st),
		config.OptFilesSuburbWords(words),
		config.OptFilesModel(filepath.Join(dir, "data.json")),
		config.OptOutputResolved(filepath.Join(dir, "annotated.tsv")),
		config.OptOutputNeedsReview(filepath.Join(dir, "problem_annotated.tsv")),
		config.OptJobsNumber(2),
	})
	return cfg
}

// Addresses writes an address file with the standard header.
func Addresses(t *testing.T, rows []string) string {
	t.Helper()
	content := AddressHeader + "\n" + strings.Join(rows, "\n") + "\n"
	return WriteFile(t, t.TempDir(), "addresses.tsv", content)
}

// WriteFile creates a file in dir and returns its path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("cannot write %s: %v", path, err)
	}
	return path
}
