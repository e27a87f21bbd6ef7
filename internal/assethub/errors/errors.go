// Package errors defines the sentinel errors shared by the service layer
// and the HTTP transport. Services wrap them with fmt.Errorf("%w: ...")
// to attach entity and field context; handlers unwrap with errors.Is to
// pick a status code.
package errors

import (
	"fmt"
)

var (
	// ErrNotFound signals an entity absent by id or by referenced foreign key.
	ErrNotFound = fmt.Errorf("not found")
	// ErrAlreadyExists signals a unique-field collision.
	ErrAlreadyExists = fmt.Errorf("already exists")
	// ErrNotAvailable signals an asset not in the state required by the
	// requested transition.
	ErrNotAvailable = fmt.Errorf("asset not available")
	// ErrNotebookInUse signals that the employee already holds an in-use notebook.
	ErrNotebookInUse = fmt.Errorf("employee already has a notebook in use")
	// ErrAssetAssociated signals a deletion attempt on an asset still held
	// by an employee.
	ErrAssetAssociated = fmt.Errorf("asset is associated with an employee")
	// ErrInvalidInput signals a field value that failed validation.
	ErrInvalidInput = fmt.Errorf("invalid input")
)
