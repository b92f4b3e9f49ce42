package skills

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-screener/internal/schemas"
)

// vocabularySchemaPath is the repo-relative path to the vocabulary JSON Schema.
const vocabularySchemaPath = "schemas/skill_vocabulary.schema.json"

// vocabularyFile is the on-disk JSON shape of a vocabulary override.
type vocabularyFile struct {
	Skills []string `json:"skills"`
}

// Load reads a vocabulary from a JSON file of the form {"skills": [...]},
// validating it against the vocabulary schema when the schema file can be
// resolved. Term order in the file is preserved.
func Load(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file %s: %w", path, err)
	}

	if schemaPath := schemas.ResolveSchemaPath(vocabularySchemaPath); schemaPath != "" {
		schemaContent, err := os.ReadFile(schemaPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read vocabulary schema: %w", err)
		}
		if err := schemas.ValidateJSONString(string(schemaContent), string(data)); err != nil {
			return nil, fmt.Errorf("vocabulary file %s is invalid: %w", path, err)
		}
	}

	var file vocabularyFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary JSON: %w", err)
	}
	if len(file.Skills) == 0 {
		return nil, fmt.Errorf("vocabulary file %s contains no skills", path)
	}

	return NewVocabulary(file.Skills), nil
}
