package interfaces

import "errors"

// ErrConditionFailed is returned by repositories when a conditional write is
// rejected because the stored item changed (already converted, duplicated
// entry, unexpected status).
var ErrConditionFailed = errors.New("condition failed")

// ErrNotFound is returned by conditional writes whose target item does not
// exist.
var ErrNotFound = errors.New("not found")
