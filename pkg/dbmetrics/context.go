package dbmetrics

import "context"

type txContextKey struct{}

// WithExecutor кладет активную транзакцию в контекст
// Репозитории достают её через GetExecutor и выполняют запросы внутри транзакции
func WithExecutor(ctx context.Context, exec DBExecutor) context.Context {
	return context.WithValue(ctx, txContextKey{}, exec)
}

// GetExecutor возвращает исполнителя из контекста (если там есть активная
// транзакция) или переданный по умолчанию
func GetExecutor(ctx context.Context, def DBExecutor) DBExecutor {
	if exec, ok := ctx.Value(txContextKey{}).(DBExecutor); ok && exec != nil {
		return exec
	}
	return def
}
