package db

import "errors"

// ErrNotFound is returned by repositories when a document does not
// exist. Services wrap it into their own not-found taxonomy.
var ErrNotFound = errors.New("document not found")
