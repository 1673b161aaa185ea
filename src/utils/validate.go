package utils

import "github.com/go-playground/validator/v10"

// Validate shared validator instance for request bodies.
var Validate = validator.New()
