// Package record merges a discovered site row with template variables.
package record

import (
	"fmt"
	"strings"

	"github.com/ukaji3/exsite-go/pkg/exsite/models"
)

// DefaultGroup is the site group used when none is given.
const DefaultGroup = "Default_Group"

// DefaultAddress is used when no address was discovered.
const DefaultAddress = "Address not specified"

var nameReplacer = strings.NewReplacer(" ", "_", "-", "_", "(", "", ")", "")

// SanitizeName makes a variable name safe for the packed vars string.
func SanitizeName(name string) string {
	return nameReplacer.Replace(name)
}

// PackVars joins variables as "name:value" pairs separated by commas and
// wraps the result in one pair of double quotes. No variables yield "".
func PackVars(vars []models.Variable) string {
	if len(vars) == 0 {
		return ""
	}
	pairs := make([]string, 0, len(vars))
	for _, v := range vars {
		pairs = append(pairs, SanitizeName(v.Name)+":"+v.Value)
	}
	return `"` + strings.Join(pairs, ",") + `"`
}

// Assemble builds the canonical record for targetID.
func Assemble(raw *models.RawRecord, vars []models.Variable, targetID, group string) models.CanonicalRecord {
	location, ok := raw.Get(models.FieldLocation)
	if !ok {
		location = "Site_" + targetID
	}
	address, ok := raw.Get(models.FieldAddress)
	if !ok {
		address = DefaultAddress
	}

	return models.CanonicalRecord{
		Name:     fmt.Sprintf("%s_%s", location, targetID),
		Address:  address,
		Group:    group,
		Vars:     PackVars(vars),
		Location: location,
		SiteID:   targetID,
	}
}
