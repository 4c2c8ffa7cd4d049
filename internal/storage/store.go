// Package storage is the local key-value persistence boundary. The core
// reads and writes opaque JSON blobs under fixed keys; which backend holds
// them is the caller's choice.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get for keys that were never set or were
// removed. Callers treat it as "no saved state", not as a failure.
var ErrNotFound = errors.New("storage: key not found")

// Store is the get/set/remove contract every backend implements.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// Keys used by the application. Values are JSON blobs shaped by the caller.
const (
	KeySession          = "souconcursado.session"
	KeyUserProfile      = "souconcursado.userProfile"
	KeyQuizAnswers      = "souconcursado.quizAnswers"
	KeyQuizResults      = "souconcursado.quizResults"
	KeyDiagnosisResults = "souconcursado.diagnosisResults"
)
