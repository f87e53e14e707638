package topology

import "fmt"

// NotASagaError reports that declared metadata carries no saga step
// information and therefore cannot be analyzed as a saga.
type NotASagaError struct {
	Name string
}

func (e *NotASagaError) Error() string {
	if e.Name == "" {
		return "declaration carries no saga step metadata"
	}
	return fmt.Sprintf("declaration %q carries no saga step metadata", e.Name)
}

// NotATccError reports that declared metadata carries no TCC participant
// information.
type NotATccError struct {
	Name string
}

func (e *NotATccError) Error() string {
	if e.Name == "" {
		return "declaration carries no tcc participant metadata"
	}
	return fmt.Sprintf("declaration %q carries no tcc participant metadata", e.Name)
}
