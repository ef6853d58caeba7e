package entity

import "errors"

// ErrNotFound возвращается репозиториями, когда строки с таким id нет.
var ErrNotFound = errors.New("entity not found")
