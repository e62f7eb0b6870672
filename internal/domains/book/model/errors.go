package model

import "errors"

var (
	ErrBookNotFound      = errors.New("book not found")
	ErrUnknownAuthorID   = errors.New("one or more author ids do not exist")
	ErrDuplicateAuthorID = errors.New("duplicate author id in authorship list")
)
