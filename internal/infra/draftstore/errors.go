package draftstore

import "errors"

var (
	// ErrDraftNotFound возвращается, когда черновик отсутствует в хранилище
	// (не создавался, был очищен или вытеснен по TTL)
	ErrDraftNotFound = errors.New("draftstore: draft not found")

	// ErrEncode возвращается при ошибке сериализации записи
	ErrEncode = errors.New("draftstore: failed to encode record")

	// ErrDecode возвращается при ошибке десериализации записи
	ErrDecode = errors.New("draftstore: failed to decode record")

	// ErrInternal возвращается при ошибках самого хранилища
	ErrInternal = errors.New("draftstore: internal error")
)
