package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/hapitzutzia/internal/cache"
	"github.com/hapitzutzia/internal/config"
	"github.com/hapitzutzia/internal/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// adminSubject 共享口令登录的统一主体
const adminSubject = "admin"

// AuthService 管理端认证服务
type AuthService struct {
	secret       []byte
	expire       time.Duration
	passwordHash []byte
	now          func() time.Time

	mu      sync.Mutex
	revoked map[string]time.Time
}

// NewAuthService 创建认证服务实例
func NewAuthService(cfg config.JWTConfig, admin config.AdminConfig) (*AuthService, error) {
	expire := time.Duration(cfg.ExpireHours) * time.Hour
	if expire <= 0 {
		expire = 12 * time.Hour
	}
	s := &AuthService{
		secret:  []byte(cfg.SecretKey),
		expire:  expire,
		now:     time.Now,
		revoked: map[string]time.Time{},
	}
	switch {
	case strings.TrimSpace(admin.PasswordHash) != "":
		s.passwordHash = []byte(strings.TrimSpace(admin.PasswordHash))
	case admin.Password != "":
		hash, err := HashPassword(admin.Password)
		if err != nil {
			return nil, err
		}
		s.passwordHash = []byte(hash)
	default:
		logger.Warnw("admin_password_not_configured")
	}
	return s, nil
}

// HashPassword 使用 bcrypt 加密密码
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// AdminClaims 管理端会话声明
type AdminClaims struct {
	jwt.RegisteredClaims
}

// AdminSession 登录结果
type AdminSession struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Login 校验共享口令并签发会话
func (s *AuthService) Login(password string) (*AdminSession, error) {
	if len(s.passwordHash) == 0 {
		return nil, ErrAdminPasswordNotConfigured
	}
	if password == "" {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.GenerateJWT()
}

// GenerateJWT 生成 JWT Token
func (s *AuthService) GenerateJWT() (*AdminSession, error) {
	now := s.now()
	expiresAt := now.Add(s.expire)
	claims := AdminClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   adminSubject,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return nil, err
	}
	return &AdminSession{Token: tokenString, ExpiresAt: expiresAt}, nil
}

// ParseJWT 解析 JWT Token
func (s *AuthService) ParseJWT(tokenString string) (*AdminClaims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	token, err := parser.ParseWithClaims(tokenString, &AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		return nil, ErrTokenInvalid
	}
	claims, ok := token.Claims.(*AdminClaims)
	if !ok || !token.Valid || claims.Subject != adminSubject || claims.ID == "" {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

// Authenticate 解析令牌并检查吊销状态
func (s *AuthService) Authenticate(ctx context.Context, tokenString string) (*AdminClaims, error) {
	claims, err := s.ParseJWT(tokenString)
	if err != nil {
		return nil, err
	}
	if s.isRevokedLocally(claims.ID) {
		return nil, ErrTokenRevoked
	}
	revoked, err := cache.IsAdminSessionRevoked(ctx, claims.ID)
	if err != nil {
		logger.Warnw("admin_session_revocation_check_failed", "token_id", claims.ID, "error", err)
	}
	if revoked {
		return nil, ErrTokenRevoked
	}
	return claims, nil
}

// Logout 吊销当前会话直到令牌过期
func (s *AuthService) Logout(ctx context.Context, claims *AdminClaims) error {
	if claims == nil || claims.ID == "" {
		return ErrTokenInvalid
	}
	expiresAt := s.now().Add(s.expire)
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	s.mu.Lock()
	now := s.now()
	for id, until := range s.revoked {
		if !until.After(now) {
			delete(s.revoked, id)
		}
	}
	s.revoked[claims.ID] = expiresAt
	s.mu.Unlock()

	if err := cache.RevokeAdminSession(ctx, claims.ID, expiresAt); err != nil {
		logger.Warnw("admin_session_revoke_failed", "token_id", claims.ID, "error", err)
	}
	return nil
}

func (s *AuthService) isRevokedLocally(tokenID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	until, ok := s.revoked[tokenID]
	return ok && until.After(s.now())
}
