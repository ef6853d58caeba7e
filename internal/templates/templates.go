// Package templates хранит HTML-шаблоны внутри бинарника,
// чтобы сервер не зависел от рабочей директории.
package templates

import "embed"

//go:embed *.html
var FS embed.FS
