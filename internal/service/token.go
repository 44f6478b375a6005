package service

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/pribylovaa/go-ride-hail/internal/models"
	"github.com/pribylovaa/go-ride-hail/internal/pkg/log"
	"github.com/pribylovaa/go-ride-hail/internal/storage"
)

// Identity — аутентифицированный субъект запроса.
type Identity struct {
	ID   uuid.UUID
	Role models.Role
}

// TokenClaims — расшифрованное содержимое bearer-токена.
type TokenClaims struct {
	ActorID   uuid.UUID
	Role      models.Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type bearerClaims struct {
	ActorID string `json:"uid"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}

// hashToken возвращает SHA-256 хэш токена в base64url.
// В деклисте храним хэши, а не сами токены.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}

// tokenTTL возвращает срок жизни токена для роли:
// у водителей суточная сессия, у остальных — пользовательская (7 суток).
func (s *Service) tokenTTL(role models.Role) time.Duration {
	if role == models.RoleDriver {
		return s.cfg.CaptainTokenTTL
	}

	return s.cfg.UserTokenTTL
}

// IssueToken выпускает подписанный bearer-токен для actorID с ролью role.
func (s *Service) IssueToken(ctx context.Context, actorID uuid.UUID, role models.Role, now time.Time) (string, time.Time, error) {
	const op = "service/token/IssueToken"

	lg := log.From(ctx)

	expiresAt := now.Add(s.tokenTTL(role))
	claims := bearerClaims{
		ActorID: actorID.String(),
		Role:    string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    s.cfg.Issuer,
			Subject:   actorID.String(),
			Audience:  jwt.ClaimStrings(s.cfg.Audience),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		lg.Error("token_sign_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return "", time.Time{}, fmt.Errorf("%s: %w", op, err)
	}

	return signed, expiresAt, nil
}

// VerifyToken проверяет подпись и срок действия токена.
// Не консультируется с деклистом: это делает Authenticate.
func (s *Service) VerifyToken(tokenStr string) (*TokenClaims, error) {
	const op = "service/token/VerifyToken"

	token, err := jwt.ParseWithClaims(tokenStr, &bearerClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if t.Method != jwt.SigningMethodHS256 {
				return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
			}

			return []byte(s.cfg.JWTSecret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(5*time.Second),
		jwt.WithIssuer(s.cfg.Issuer),
		jwt.WithAudience(s.cfg.Audience...),
		jwt.WithExpirationRequired(),
	)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%s: %w", op, ErrTokenExpired)
		}

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	claims, ok := token.Claims.(*bearerClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	// exp гарантирован WithExpirationRequired; iat библиотека не требует.
	if claims.IssuedAt == nil || claims.ExpiresAt == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	actorID, err := uuid.Parse(claims.ActorID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	role := models.Role(claims.Role)
	if !role.Valid() {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	return &TokenClaims{
		ActorID:   actorID,
		Role:      role,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// Authenticate проверяет токен целиком: подпись, срок действия, деклист.
// Порядок фиксирован — криптографическая проверка до похода в хранилище,
// чтобы заведомо мусорные токены не генерировали I/O.
func (s *Service) Authenticate(ctx context.Context, tokenStr string) (Identity, error) {
	const op = "service/token/Authenticate"

	if tokenStr == "" {
		return Identity{}, fmt.Errorf("%s: %w", op, ErrNoToken)
	}

	claims, err := s.VerifyToken(tokenStr)
	if err != nil {
		return Identity{}, fmt.Errorf("%s: %w", op, err)
	}

	revoked, err := s.isRevoked(ctx, hashToken(tokenStr))
	if err != nil {
		return Identity{}, fmt.Errorf("%s: %w", op, err)
	}

	if revoked {
		return Identity{}, fmt.Errorf("%s: %w", op, ErrTokenRevoked)
	}

	return Identity{ID: claims.ActorID, Role: claims.Role}, nil
}

// isRevoked консультируется сначала с кэшем (если он есть), затем с БД.
// Ошибка кэша не фатальна: откатываемся на хранилище.
func (s *Service) isRevoked(ctx context.Context, hash string) (bool, error) {
	const op = "service/token/isRevoked"

	if s.rcache != nil {
		found, err := s.rcache.Contains(ctx, hash)
		if err != nil {
			log.From(ctx).Warn("revocation_cache_lookup_failed",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
		} else if found {
			return true, nil
		}
	}

	revoked, err := s.storage.IsTokenRevoked(ctx, hash, time.Now().UTC())
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return revoked, nil
}

// RevokeToken вносит токен в деклист.
// Запись живёт ровно до истечения самого токена: отозванный долгоживущий
// токен не «оживает» раньше срока. Повторный отзыв того же токена идемпотентен.
func (s *Service) RevokeToken(ctx context.Context, tokenStr string, actorID uuid.UUID, reason models.RevokeReason) error {
	const op = "service/token/RevokeToken"

	lg := log.From(ctx)

	claims, err := s.VerifyToken(tokenStr)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now().UTC()
	hash := hashToken(tokenStr)

	entry := &models.RevokedToken{
		TokenHash:     hash,
		ActorID:       actorID,
		Reason:        reason,
		BlacklistedAt: now,
		ExpiresAt:     claims.ExpiresAt.UTC(),
	}

	// Повторный отзыв того же токена — успех, остальное — ошибка.
	if err := s.storage.SaveRevokedToken(ctx, entry); err != nil && !errors.Is(err, storage.ErrAlreadyExists) {
		lg.Error("revoke_save_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return fmt.Errorf("%s: %w", op, err)
	}

	if s.rcache != nil {
		if err := s.rcache.Add(ctx, hash, string(reason), time.Until(entry.ExpiresAt)); err != nil {
			lg.Warn("revocation_cache_add_failed",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
		}
	}

	return nil
}

// PurgeActorTokens удаляет все записи деклиста для владельца
// (удаление аккаунта, массовый отзыв).
func (s *Service) PurgeActorTokens(ctx context.Context, actorID uuid.UUID) (int64, error) {
	const op = "service/token/PurgeActorTokens"

	n, err := s.storage.PurgeActorTokens(ctx, actorID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return n, nil
}
