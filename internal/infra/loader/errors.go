package loader

import "errors"

var (
	// ErrOpenFile возвращается, когда файл с данными не удалось открыть
	ErrOpenFile = errors.New("loader: failed to open data file")

	// ErrReadFile возвращается при ошибке чтения CSV
	ErrReadFile = errors.New("loader: failed to read data file")

	// ErrMissingColumn возвращается, когда в файле нет обязательной колонки
	ErrMissingColumn = errors.New("loader: required column is missing")
)
