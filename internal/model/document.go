package model

// Document is the union of all declarations loaded from a path: every saga
// and every TCC found across the parsed files, in file-then-declaration
// order.
type Document struct {
	Sagas []*Saga
	Tccs  []*Tcc
}
