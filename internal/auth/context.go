package auth

import "context"

type accountIDKey struct{}

// WithAccountID returns a copy of ctx carrying the authenticated account id.
func WithAccountID(ctx context.Context, accountID int) context.Context {
	return context.WithValue(ctx, accountIDKey{}, accountID)
}

func AccountID(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(accountIDKey{}).(int)
	return id, ok
}
