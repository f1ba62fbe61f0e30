package portal

import (
	"encoding/json"
	"fmt"
	"os"
)

func ParseJsonFile[T any](path string) (*T, error) {
	content, err := os.ReadFile(path)

	if err != nil {
		return nil, fmt.Errorf("error reading file [%s]: %w", path, err)
	}

	var data T
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("error parsing file [%s]: %w", path, err)
	}

	return &data, nil
}
