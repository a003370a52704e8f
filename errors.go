package mcdeploy

import "errors"

var (
	ErrPackFormat     = errors.New("pack format is missing or not a number")
	ErrUnknownModType = errors.New("unknown mod type")
	ErrModSource      = errors.New("incomplete mod source")
)
