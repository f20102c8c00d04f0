// Package form bridges the two field-naming conventions of the back office:
// the record shape the repositories persist and the form shape an edit
// screen binds to. Each entity gets a pure converter pair (ToXForm /
// ToXRecord) with an explicit default for every field.
//
// The converters never decide identity: ToXRecord does not copy an id, since
// id assignment belongs exclusively to the repository layer.
package form
