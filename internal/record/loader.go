// Package record loads company records from JSON files for the CLI.
// Providers that fetch live data are out of scope; this is the shim
// that lets pre-gathered records flow into the engines.
package record

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"

	"github.com/sells-group/roi-cli/internal/model"
)

// Load reads a CompanyRecord from a JSON file. Field keys follow the
// model's JSON contract; unknown keys are rejected so a typoed field
// name fails loudly instead of silently dropping data.
func Load(path string) (*model.CompanyRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "record: open %s", path)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()

	var rec model.CompanyRecord
	if err := dec.Decode(&rec); err != nil {
		return nil, eris.Wrapf(err, "record: parse %s", path)
	}
	if rec.CompanyName == "" {
		return nil, eris.Errorf("record: %s has no company_name", path)
	}
	return &rec, nil
}

// LoadAll reads multiple record files in order.
func LoadAll(paths []string) ([]*model.CompanyRecord, error) {
	records := make([]*model.CompanyRecord, 0, len(paths))
	for _, p := range paths {
		rec, err := Load(p)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}
