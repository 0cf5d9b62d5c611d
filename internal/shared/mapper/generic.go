// Package mapper holds the slice helpers the DTO packages share.
package mapper

// MapSlicePtr maps every non-nil entity to its DTO. A nil input stays nil so
// JSON renders it as null, while an empty slice renders as [].
func MapSlicePtr[T any, R any](items []*T, mapFunc func(*T) *R) []*R {
	if items == nil {
		return nil
	}

	result := make([]*R, 0, len(items))
	for _, item := range items {
		if item != nil {
			result = append(result, mapFunc(item))
		}
	}
	return result
}
