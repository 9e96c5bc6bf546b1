package auth

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/fitbuddy/pkg"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultTTL              = 24 * 7 * time.Hour
	sessionKeyPrefix        = "fitbuddy-session||"
	// hash of token -> account id, outlives evicted session keys
	tokensKey               = "fitbuddy-sessions"
	accountSessionKeyPrefix = "fitbuddy-account-sessions||"
	tokenLength             = 35
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
)

type Service struct {
	redisClient *redis.Client
	ttl         time.Duration
	// ability to inject random string generator func for tokens (for unit and dev testing)
	RandStringFunc func(s int) (string, error)
}

func NewAuthService(
	ttl time.Duration,
	redisClient *redis.Client,
) *Service {
	return &Service{
		ttl:            ttl,
		redisClient:    redisClient,
		RandStringFunc: pkg.GenerateRandomString,
	}
}

func sessionKey(token string) string {
	return sessionKeyPrefix + token
}

func accountSessionsKey(accountID int) string {
	return accountSessionKeyPrefix + strconv.Itoa(accountID)
}

// session values are stored as "<account id>|<created at unix>"
func sessionValue(accountID int, createdAt time.Time) string {
	return fmt.Sprintf("%d|%d", accountID, createdAt.Unix())
}

func parseSessionValue(val string) (int, time.Time, error) {
	idStr, createdAtStr, ok := strings.Cut(val, "|")
	if !ok {
		return 0, time.Time{}, fmt.Errorf("malformed session value [%s]", val)
	}
	accountID, err := strconv.Atoi(idStr)
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("session account id: %w", err)
	}
	createdAtUnix, err := strconv.ParseInt(createdAtStr, 10, 64)
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("session created at: %w", err)
	}
	return accountID, time.Unix(createdAtUnix, 0), nil
}

// Login creates a new session for the account and returns its token.
// Credentials are checked by the caller.
func (as *Service) Login(ctx context.Context, accountID int, createdAt time.Time) (string, error) {
	token, err := as.RandStringFunc(tokenLength)
	if err != nil {
		return "", err
	}

	cmdSet := as.redisClient.Set(ctx, sessionKey(token), sessionValue(accountID, createdAt), as.ttl)
	if err := cmdSet.Err(); err != nil {
		return "", err
	}

	// add token to list of sessions
	if err := as.redisClient.HSet(ctx, tokensKey, token, strconv.Itoa(accountID)).Err(); err != nil {
		return "", err
	}
	accountKey := accountSessionsKey(accountID)
	if err := as.redisClient.SAdd(ctx, accountKey, token).Err(); err != nil {
		return "", err
	}
	// the account set lives as long as its newest session
	if err := as.redisClient.Expire(ctx, accountKey, as.ttl).Err(); err != nil {
		return "", err
	}

	return token, nil
}

// Logout drops the session and returns the id of the account it belonged to.
func (as *Service) Logout(ctx context.Context, token string) (int, error) {
	cmd := as.redisClient.Get(ctx, sessionKey(token))
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, ErrSessionNotFound
		}
		return 0, err
	}

	accountID, _, err := parseSessionValue(cmd.Val())
	if err != nil {
		return 0, err
	}

	if err := as.removeSession(ctx, accountID, token); err != nil {
		return 0, err
	}

	return accountID, nil
}

// LogoutAll drops every session of the account, used on account deletion.
func (as *Service) LogoutAll(ctx context.Context, accountID int) error {
	cmd := as.redisClient.SMembers(ctx, accountSessionsKey(accountID))
	if err := cmd.Err(); err != nil {
		return err
	}

	for _, token := range cmd.Val() {
		if err := as.redisClient.Del(ctx, sessionKey(token)).Err(); err != nil {
			return err
		}
		if err := as.redisClient.HDel(ctx, tokensKey, token).Err(); err != nil {
			return err
		}
	}

	return as.redisClient.Del(ctx, accountSessionsKey(accountID)).Err()
}

func (as *Service) removeSession(ctx context.Context, accountID int, token string) error {
	if err := as.redisClient.Del(ctx, sessionKey(token)).Err(); err != nil {
		return err
	}
	// remove token from the list of sessions
	if err := as.redisClient.HDel(ctx, tokensKey, token).Err(); err != nil {
		return err
	}
	return as.redisClient.SRem(ctx, accountSessionsKey(accountID), token).Err()
}

// ScanAndClean will run through all sessions, check the TTL, and clean them if old.
// Sessions already evicted by redis are removed from the session lists too.
func (as *Service) ScanAndClean(ctx context.Context) {
	cmd := as.redisClient.HGetAll(ctx, tokensKey)
	if err := cmd.Err(); err != nil {
		log.Errorf("!!! auth service, scan and clean, get sessions: %s", err)
		return
	}

	sessions := cmd.Val()
	if len(sessions) == 0 {
		log.Debugln("=> auth service, scan and clean abort, no sessions")
		return
	}

	sessionTokens := make([]string, 0, len(sessions))
	for token := range sessions {
		sessionTokens = append(sessionTokens, token)
	}
	sort.Strings(sessionTokens)

	log.Debugf("=> auth service, scan and clean [%d sessions] start ...", len(sessionTokens))
	cleaned := 0
	for _, token := range sessionTokens {
		cmd := as.redisClient.Get(ctx, sessionKey(token))
		if err := cmd.Err(); err != nil {
			if errors.Is(err, redis.Nil) {
				// evicted by key TTL, only the list entries are left
				if err := as.forgetEvicted(ctx, token, sessions[token]); err != nil {
					log.Errorf("=> auth service, clean token %s: %s", token, err)
				}
				cleaned++
				continue
			}
			log.Errorf("=> auth service, scan and clean token %s: %s", token, err)
			continue
		}

		accountID, createdAt, err := parseSessionValue(cmd.Val())
		if err != nil {
			log.Errorf("=> auth service, scan and clean token %s: %s", token, err)
			continue
		}

		if time.Since(createdAt) <= as.ttl {
			continue
		}

		if err := as.removeSession(ctx, accountID, token); err != nil {
			log.Errorf("=> auth service, clean token %s: %s", token, err)
			continue
		}
		cleaned++
	}

	if cleaned > 0 {
		log.Infof("=> auth service, scan and clean removed %d sessions", cleaned)
	}
}

func (as *Service) forgetEvicted(ctx context.Context, token, accountIDStr string) error {
	if accountID, err := strconv.Atoi(accountIDStr); err == nil {
		if err := as.redisClient.SRem(ctx, accountSessionsKey(accountID), token).Err(); err != nil {
			return err
		}
	} else {
		log.Warnf("=> auth service, token %s has a bad account id [%s]", token, accountIDStr)
	}
	return as.redisClient.HDel(ctx, tokensKey, token).Err()
}
