package service

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// tagsToJSON converts a tag list to the jsonb column value. nil means
// "not provided" and returns nil so patch flows can skip the field; an
// empty slice stores [].
func tagsToJSON(tags []string) datatypes.JSON {
	if tags == nil {
		return nil
	}
	data, err := json.Marshal(tags)
	if err != nil {
		return nil
	}
	return datatypes.JSON(data)
}
