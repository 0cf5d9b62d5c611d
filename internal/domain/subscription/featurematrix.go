package subscription

import (
	"fmt"
	"strconv"
	"strings"
)

// Declared value types of a feature matrix row.
const (
	DataTypeBoolean = "boolean"
	DataTypeInteger = "integer"
)

// FeatureMatrixRow holds one feature's raw value for every tier. A nil value
// means the cell is NULL.
type FeatureMatrixRow struct {
	id       uint
	key      string
	name     string
	values   map[string]*string
	dataType string
}

func NewFeatureMatrixRow(key, name, dataType string, values map[string]*string) (*FeatureMatrixRow, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, fmt.Errorf("feature key is required")
	}
	if dataType == "" {
		dataType = DataTypeBoolean
	}

	copied := make(map[string]*string, len(knownTiers))
	for tier, v := range values {
		if knownTiers[tier] {
			copied[tier] = v
		}
	}

	return &FeatureMatrixRow{key: key, name: name, dataType: dataType, values: copied}, nil
}

func ReconstructFeatureMatrixRow(id uint, key, name, dataType string, free, basic, pro, enterprise *string) *FeatureMatrixRow {
	return &FeatureMatrixRow{
		id:       id,
		key:      key,
		name:     name,
		dataType: dataType,
		values: map[string]*string{
			TierFree:       free,
			TierBasic:      basic,
			TierPro:        pro,
			TierEnterprise: enterprise,
		},
	}
}

func (r *FeatureMatrixRow) ID() uint         { return r.id }
func (r *FeatureMatrixRow) Key() string      { return r.key }
func (r *FeatureMatrixRow) Name() string     { return r.name }
func (r *FeatureMatrixRow) DataType() string { return r.dataType }

// RawValue returns the cell for tier, nil when NULL or the tier is unknown.
func (r *FeatureMatrixRow) RawValue(tier string) *string {
	return r.values[tier]
}

// Value parses the cell for tier according to the row's declared type.
func (r *FeatureMatrixRow) Value(tier string) any {
	raw := r.values[tier]
	if raw == nil {
		return nil
	}
	return ParseValue(*raw, r.dataType)
}

// ParseValue converts a raw matrix value to its typed form.
//
// Booleans accept a native bool, or one of "true", "1", "yes", "y", "t"
// (trimmed, case-insensitive) for true; any other non-empty string is false.
// Integers that fail to parse become nil. Blank strings are nil for both of
// these types. Any other declared type returns raw unchanged, blanks included.
func ParseValue(raw any, dataType string) any {
	if raw == nil {
		return nil
	}

	switch strings.ToLower(strings.TrimSpace(dataType)) {
	case DataTypeBoolean:
		if isBlank(raw) {
			return nil
		}
		switch v := raw.(type) {
		case bool:
			return v
		case string:
			switch strings.ToLower(strings.TrimSpace(v)) {
			case "true", "1", "yes", "y", "t":
				return true
			default:
				return false
			}
		default:
			return false
		}
	case DataTypeInteger:
		if isBlank(raw) {
			return nil
		}
		switch v := raw.(type) {
		case int:
			return int64(v)
		case int64:
			return v
		case string:
			n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
			if err != nil {
				return nil
			}
			return n
		default:
			return nil
		}
	default:
		return raw
	}
}

func isBlank(raw any) bool {
	s, ok := raw.(string)
	return ok && strings.TrimSpace(s) == ""
}
