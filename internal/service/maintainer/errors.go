package maintainer

import "errors"

var (
	// ErrFetchWindow возвращается, если не удалось загрузить окно. Обновление можно повторить.
	ErrFetchWindow = errors.New("failed to fetch schedule window")
)
