package models

import "errors"

// Photo decoding errors
var (
	// ErrNotDataURL indicates a stored photo is not a base64 data URL
	ErrNotDataURL = errors.New("photo is not a base64 data URL")
)
