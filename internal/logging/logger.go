// Package logging defines the structured-logging interface used by the
// registry server, with slog and zap adapters.
//
// Records written with a context that carries a caller account (see
// ContextWithAccount) are tagged with an "account" attribute, so handlers
// and services do not have to repeat it.
package logging

import "context"

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key–value pairs, e.g.:
//
//	log.Info(ctx, "car rented", "owner", owner, "renter", renter)
type Logger interface {
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}

// AccountKey is the attribute name used for the caller account.
const AccountKey = "account"

type accountCtxKey struct{}

// ContextWithAccount returns ctx tagged with the calling account.
func ContextWithAccount(ctx context.Context, account string) context.Context {
	return context.WithValue(ctx, accountCtxKey{}, account)
}

// AccountFromContext returns the account stored by ContextWithAccount.
func AccountFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	account, ok := ctx.Value(accountCtxKey{}).(string)
	return account, ok && account != ""
}

func withAccount(ctx context.Context, args []any) []any {
	if account, ok := AccountFromContext(ctx); ok {
		return append(args, AccountKey, account)
	}
	return args
}
