package middleware

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/quintech/quintech-backend/api/responses"
	pkgerrors "github.com/quintech/quintech-backend/pkg/errors"
	"github.com/quintech/quintech-backend/pkg/logger"
)

type rateLimiterStore interface {
	IncrWithTTL(context.Context, string, time.Duration) (int64, error)
}

// AuthRateLimitPolicy throttles an auth surface with fixed-window counters.
// Every surface counts per source IP; signup additionally counts per email
// and per requested handle, so a burst of signups cannot sit on one handle
// while rotating addresses.
type AuthRateLimitPolicy struct {
	name        string
	window      time.Duration
	ipLimit     int
	emailLimit  int
	handleLimit int
}

func NewAuthRateLimitPolicy(name string, window time.Duration, ipLimit, emailLimit, handleLimit int) AuthRateLimitPolicy {
	return AuthRateLimitPolicy{
		name:        strings.ToLower(strings.TrimSpace(name)),
		window:      window,
		ipLimit:     ipLimit,
		emailLimit:  emailLimit,
		handleLimit: handleLimit,
	}
}

func (p AuthRateLimitPolicy) enabled() bool {
	return p.window > 0 && (p.ipLimit > 0 || p.emailLimit > 0 || p.handleLimit > 0)
}

func (p AuthRateLimitPolicy) needsBody() bool {
	return p.emailLimit > 0 || p.handleLimit > 0
}

func (p AuthRateLimitPolicy) normalizedName() string {
	if p.name == "" {
		return "auth"
	}
	return p.name
}

func (p AuthRateLimitPolicy) key(scope, subject string) string {
	if subject == "" {
		return ""
	}
	return fmt.Sprintf("qt:authrl:%s:%s:%s", p.normalizedName(), scope, subject)
}

// authSubjects are the identifying fields sniffed from an auth request body.
// Login bodies carry only the email; signup bodies carry both.
type authSubjects struct {
	Email  string `json:"email"`
	Handle string `json:"handle"`
}

// AuthRateLimit guards an auth endpoint with the policy's counters. The body
// is read at most once and restored for the handler.
func AuthRateLimit(policy AuthRateLimitPolicy, store rateLimiterStore, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !policy.enabled() || store == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			var subjects authSubjects
			if policy.needsBody() {
				body, err := io.ReadAll(r.Body)
				if err != nil {
					responses.WriteError(ctx, nil, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read request"))
					return
				}
				r.Body = io.NopCloser(bytes.NewReader(body))
				// A malformed body passes through; the validator rejects it
				// with a field-keyed message instead.
				_ = json.Unmarshal(body, &subjects)
			}

			checks := []struct {
				scope   string
				subject string
				limit   int
			}{
				{scope: "ip", subject: clientIP(r), limit: policy.ipLimit},
				{scope: "email", subject: hashSubject(strings.ToLower(strings.TrimSpace(subjects.Email))), limit: policy.emailLimit},
				{scope: "handle", subject: hashSubject(strings.ToLower(strings.TrimSpace(subjects.Handle))), limit: policy.handleLimit},
			}

			for _, check := range checks {
				if check.limit <= 0 {
					continue
				}
				key := policy.key(check.scope, check.subject)
				if key == "" {
					continue
				}
				count, err := store.IncrWithTTL(ctx, key, policy.window)
				if err != nil {
					responses.WriteError(ctx, nil, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "rate limiting"))
					return
				}
				if count > int64(check.limit) {
					respondRateLimited(ctx, logg, w, policy, check.scope, check.subject, count, check.limit)
					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

func respondRateLimited(ctx context.Context, logg *logger.Logger, w http.ResponseWriter, policy AuthRateLimitPolicy, scope, subject string, count int64, limit int) {
	if logg != nil {
		logCtx := logg.WithFields(ctx, map[string]any{
			"policy":         policy.normalizedName(),
			"scope":          scope,
			"subject":        subject,
			"attempts":       count,
			"limit":          limit,
			"window_seconds": int(policy.window.Seconds()),
		})
		logg.Warn(logCtx, "auth.rate_limit.blocked")
	}
	responses.WriteError(ctx, nil, w, pkgerrors.New(pkgerrors.CodeRateLimit, "rate limit exceeded"))
}

func clientIP(r *http.Request) string {
	if r == nil {
		return ""
	}
	if header := r.Header.Get("X-Forwarded-For"); header != "" {
		for _, part := range strings.Split(header, ",") {
			if ip := strings.TrimSpace(part); ip != "" {
				return ip
			}
		}
	}
	if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && host != "" {
		return host
	}
	return r.RemoteAddr
}

// hashSubject keeps emails and handles out of redis keys and logs.
func hashSubject(value string) string {
	if value == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}
