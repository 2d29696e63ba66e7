package domain

import "fmt"

// FieldError describe una violación puntual sobre un campo del request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError acumula todas las violaciones encontradas en un request,
// no solo la primera.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid submission: %d field error(s)", len(e.Fields))
}

func (e *ValidationError) add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// PersistenceError envuelve fallas del almacenamiento. El detalle interno se
// loguea pero nunca se expone al cliente.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
