package graphql

import (
	"embed"
	"io/fs"
	"sort"
	"strings"
	"sync"
)

//go:embed schema/*.graphqls
var schemaFiles embed.FS

var (
	schemaExtensions []string
	schemaMu         sync.Mutex
)

// RegisterSchemaExtension appends SDL to the schema. Call from init() in custom packages.
func RegisterSchemaExtension(schema string) {
	schemaMu.Lock()
	defer schemaMu.Unlock()
	schemaExtensions = append(schemaExtensions, strings.TrimSpace(schema))
}

// Schema returns the embedded SDL files, in name order, plus registered extensions.
func Schema() string {
	names, err := fs.Glob(schemaFiles, "schema/*.graphqls")
	if err != nil {
		panic(err)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, n := range names {
		b, err := schemaFiles.ReadFile(n)
		if err != nil {
			panic(err)
		}
		parts = append(parts, strings.TrimSpace(string(b)))
	}

	schemaMu.Lock()
	parts = append(parts, schemaExtensions...)
	schemaMu.Unlock()
	return strings.Join(parts, "\n\n")
}
