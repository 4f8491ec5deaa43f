// Package config loads pandasql settings from an optional CUE file.
//
// The file is unified with a closed schema, so misspelled fields are
// rejected and omitted fields take their defaults:
//
//	table:     "staff"
//	namespace: "sales"
//	format:    "json"
package config

import (
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
)

const schemaSource = `
#Config: {
	table:     string | *"employees"
	namespace: string | *"df"
	format:    "text" | "json" | *"text"
}
`

// Config holds conversion defaults.
type Config struct {
	Table     string `json:"table"`
	Namespace string `json:"namespace"`
	Format    string `json:"format"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Table:     "employees",
		Namespace: "df",
		Format:    "text",
	}
}

// LoadError is a configuration problem with its CUE position when known.
type LoadError struct {
	Path    string
	Message string
	Pos     token.Pos
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Message)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
	return e.Message
}

// Load reads and validates the CUE file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, &LoadError{Path: path, Message: fmt.Sprintf("read config: %v", err)}
	}
	return Parse(data, path)
}

// Parse validates CUE source against the config schema. filename is used
// in error positions only.
func Parse(data []byte, filename string) (Config, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaSource, cue.Filename("pandasql-schema.cue"))
	if err := schema.Err(); err != nil {
		return Config{}, fmt.Errorf("compile config schema: %w", err)
	}

	value := ctx.CompileBytes(data, cue.Filename(filename))
	if err := value.Err(); err != nil {
		return Config{}, newLoadError(filename, err)
	}

	unified := schema.LookupPath(cue.ParsePath("#Config")).Unify(value)
	if err := unified.Validate(); err != nil {
		return Config{}, newLoadError(filename, err)
	}

	var cfg Config
	if err := unified.Decode(&cfg); err != nil {
		return Config{}, newLoadError(filename, err)
	}

	return cfg, nil
}

// newLoadError converts a CUE error, keeping the first position it reports.
func newLoadError(path string, err error) *LoadError {
	loadErr := &LoadError{Path: path, Message: err.Error()}

	errs := cueerrors.Errors(err)
	if len(errs) > 0 {
		loadErr.Message = errs[0].Error()
		if pos := errs[0].Position(); pos.IsValid() {
			loadErr.Pos = pos
		}
	}

	return loadErr
}
