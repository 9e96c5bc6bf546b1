package auth

import "context"

var _ Checker = (*LoginChecker)(nil)
var _ Checker = (*MockChecker)(nil)

type Checker interface {
	AccountForToken(ctx context.Context, token string) (int, error)
}
