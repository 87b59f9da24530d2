// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package convert

import (
	"errors"

	"golang.org/x/text/language"
)

var (
	// ErrNotSupported is returned by every ConvertBack.
	ErrNotSupported = errors.New("convert: one-way conversion only")

	// ErrInvalidValue is returned when Convert gets a value of the wrong type.
	ErrInvalidValue = errors.New("convert: invalid value")
)

// Converter turns a bound value into a display value.
type Converter interface {
	Convert(value any, culture language.Tag) (any, error)
	ConvertBack(value any, culture language.Tag) (any, error)
}

// oneWay supplies the ConvertBack shared by all converters.
type oneWay struct{}

// ConvertBack always fails with ErrNotSupported.
func (oneWay) ConvertBack(any, language.Tag) (any, error) {
	return nil, ErrNotSupported
}
