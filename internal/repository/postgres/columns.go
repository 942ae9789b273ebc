package postgres

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// stringList stores a []string in a JSONB column.
type stringList []string

func (l stringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *stringList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*l = stringList{}
		return nil
	case []byte:
		return json.Unmarshal(v, (*[]string)(l))
	case string:
		return json.Unmarshal([]byte(v), (*[]string)(l))
	default:
		return fmt.Errorf("stringList: unsupported source type %T", src)
	}
}

// jsonObject stores a map in a nullable JSONB column.
type jsonObject map[string]any

func (o jsonObject) Value() (driver.Value, error) {
	if o == nil {
		return nil, nil
	}
	b, err := json.Marshal(map[string]any(o))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (o *jsonObject) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*o = nil
		return nil
	case []byte:
		return json.Unmarshal(v, (*map[string]any)(o))
	case string:
		return json.Unmarshal([]byte(v), (*map[string]any)(o))
	default:
		return fmt.Errorf("jsonObject: unsupported source type %T", src)
	}
}
