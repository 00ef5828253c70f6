// Package compose provides structural checks for Docker Compose deployment
// descriptors. The identity service's local and CI environments bring up
// their PostgreSQL dependency through compose, and these helpers verify the
// descriptor carries the pieces the service relies on before anything is
// started.
package compose

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// File is a parsed compose descriptor in its generic map form.
type File map[string]any

// Parse decodes compose YAML content. An empty or comment-only document
// yields a nil File with no error, matching how YAML represents an empty
// document.
func Parse(content []byte) (File, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse compose file: %w", err)
	}
	return File(doc), nil
}

// HasRequiredPostgresEnvironment reports whether the postgres service
// declares the POSTGRES_DB, POSTGRES_USER and POSTGRES_PASSWORD variables.
// Both the list form ("KEY=value" entries) and the map form of the
// environment block are accepted.
func (f File) HasRequiredPostgresEnvironment() bool {
	env, ok := f.postgresSection("environment")
	if !ok {
		return false
	}
	vars := environmentKeys(env)
	return vars["POSTGRES_DB"] && vars["POSTGRES_USER"] && vars["POSTGRES_PASSWORD"]
}

// HasValidPostgresPorts reports whether the postgres service maps the
// default PostgreSQL port 5432.
func (f File) HasValidPostgresPorts() bool {
	section, ok := f.postgresSection("ports")
	if !ok {
		return false
	}
	ports, ok := section.([]any)
	if !ok {
		return false
	}
	for _, p := range ports {
		if s, ok := p.(string); ok && strings.Contains(s, "5432") {
			return true
		}
	}
	return false
}

// UsesOfficialPostgresImage reports whether the postgres service runs the
// official postgres image.
func (f File) UsesOfficialPostgresImage() bool {
	section, ok := f.postgresSection("image")
	if !ok {
		return false
	}
	image, ok := section.(string)
	return ok && strings.HasPrefix(image, "postgres:")
}

// postgresSection returns the named key of the postgres service block.
func (f File) postgresSection(key string) (any, bool) {
	services, ok := f["services"].(map[string]any)
	if !ok {
		return nil, false
	}
	postgres, ok := services["postgres"].(map[string]any)
	if !ok {
		return nil, false
	}
	section, ok := postgres[key]
	return section, ok
}

// environmentKeys normalizes an environment block to the set of declared
// variable names.
func environmentKeys(env any) map[string]bool {
	keys := make(map[string]bool)
	switch block := env.(type) {
	case []any:
		for _, entry := range block {
			s, ok := entry.(string)
			if !ok {
				continue
			}
			name, _, _ := strings.Cut(s, "=")
			keys[name] = true
		}
	case map[string]any:
		for name := range block {
			keys[name] = true
		}
	}
	return keys
}
