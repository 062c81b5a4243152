package usecase

import (
	"errors"
	"sort"
	"strings"
)

// ErrValidation is matched by every *ValidationError.
var ErrValidation = errors.New("validation failed")

// ValidationError lists the offending fields and a message for each.
type ValidationError struct {
	Issues map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Issues))
	for k := range e.Issues {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Issues[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

type issues map[string]string

func (i issues) add(field, msg string) {
	if _, ok := i[field]; !ok {
		i[field] = msg
	}
}

func (i issues) err() error {
	if len(i) == 0 {
		return nil
	}
	return &ValidationError{Issues: i}
}
