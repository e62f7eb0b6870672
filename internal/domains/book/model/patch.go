package model

import (
	"encoding/json"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// The patch surface is a closed set: three operations over three paths.
// Anything outside it fails validation instead of being silently ignored.
const (
	OpReplace = "replace"
	OpAdd     = "add"
	OpRemove  = "remove"

	PathTitle           = "/title"
	PathPublicationDate = "/publicationDate"
	PathAuthorIDs       = "/authorIds"
	PathAuthorIDsEnd    = "/authorIds/-"
)

// PatchOperation is one field-level operation of a patch document.
type PatchOperation struct {
	Op    string          `json:"op"`
	Path  string          `json:"path"`
	Value json.RawMessage `json:"value"`
}

// PatchDocument is an ordered list of operations, applied in sequence.
type PatchDocument []PatchOperation

// BookPatch is the patchable representation of a book: the mutable fields
// plus the ordered author id list. Operations mutate this struct only; the
// caller validates the merged result before anything is persisted.
type BookPatch struct {
	Title           string
	PublicationDate time.Time
	AuthorIDs       []int64
}

// NewBookPatch derives the patchable representation from the current book.
func NewBookPatch(book *BookResponse) BookPatch {
	return BookPatch{
		Title:           book.Title,
		PublicationDate: book.PublicationDate,
		AuthorIDs:       book.AuthorIDs(),
	}
}

// Apply runs the document against the representation. The first failing
// operation aborts the whole patch; the representation is then discarded
// by the caller, so partial application never leaks.
func (p *BookPatch) Apply(doc PatchDocument) error {
	for i, op := range doc {
		if err := p.apply(op); err != nil {
			return validation.Errors{
				fmt.Sprintf("operations[%d]", i): err,
			}
		}
	}
	return nil
}

func (p *BookPatch) apply(op PatchOperation) error {
	switch {
	case op.Op == OpReplace && op.Path == PathTitle:
		return decodeValue(op.Value, &p.Title)

	case op.Op == OpReplace && op.Path == PathPublicationDate:
		return decodeValue(op.Value, &p.PublicationDate)

	case op.Op == OpReplace && op.Path == PathAuthorIDs:
		var ids []int64
		if err := decodeValue(op.Value, &ids); err != nil {
			return err
		}
		p.AuthorIDs = ids
		return nil

	case op.Op == OpAdd && op.Path == PathAuthorIDsEnd:
		var id int64
		if err := decodeValue(op.Value, &id); err != nil {
			return err
		}
		p.AuthorIDs = append(p.AuthorIDs, id)
		return nil

	case op.Op == OpRemove && op.Path == PathAuthorIDsEnd:
		var id int64
		if err := decodeValue(op.Value, &id); err != nil {
			return err
		}
		for i, existing := range p.AuthorIDs {
			if existing == id {
				p.AuthorIDs = append(p.AuthorIDs[:i], p.AuthorIDs[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("author id %d is not in the authorship list", id)

	default:
		return fmt.Errorf("unsupported operation %q on path %q", op.Op, op.Path)
	}
}

// Validate applies the same field rules as create and full update.
func (p BookPatch) Validate() error {
	return BookRequest{
		Title:           p.Title,
		PublicationDate: p.PublicationDate,
		AuthorIDs:       p.AuthorIDs,
	}.Validate()
}

func decodeValue(raw json.RawMessage, dest interface{}) error {
	if len(raw) == 0 {
		return fmt.Errorf("value is required")
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("invalid value: %w", err)
	}
	return nil
}
