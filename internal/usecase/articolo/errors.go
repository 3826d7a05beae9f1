// Package articolo provides use cases for managing article entities.
// It implements business logic for creating, updating, deleting, and querying
// articles, including validation and interaction with the article repository.
package articolo

import "errors"

// ErrPubblicatoRequired indicates a publication toggle request without the
// pubblicato field. The toggle accepts exactly one field and rejects requests
// that omit it.
var ErrPubblicatoRequired = errors.New("campo 'pubblicato' richiesto")
