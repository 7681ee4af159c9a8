package normalize

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Connectors name their metric logs metrics_<model>_Demo<suffix>.<ext>.
var modelNamePattern = regexp.MustCompile(`^metrics_(.*?)_Demo.*\.\w+$`)

// ModelNameFromFile extracts the model name from a metrics file name.
// Returns ok=false when the file does not follow the naming convention.
func ModelNameFromFile(fileName string) (string, bool) {
	m := modelNamePattern.FindStringSubmatch(fileName)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// ModelName resolves the model name for a file, never failing: the naming
// convention first, then the document's own exchange name, then the filename
// stem, and finally the literal filename.
func ModelName(fileName, exchangeName string) string {
	if name, ok := ModelNameFromFile(fileName); ok {
		return name
	}
	if exchangeName != "" {
		return exchangeName
	}
	if stem := strings.TrimSuffix(fileName, filepath.Ext(fileName)); stem != "" {
		return stem
	}
	return fileName
}
