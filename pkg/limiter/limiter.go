// Package limiter 提供基于令牌桶的接口限流
package limiter

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/juju/ratelimit"
)

// Face limiter interface
// Face 限流器接口
type Face interface {
	// Key 提取请求对应的限流键
	Key(c *gin.Context) string
	// GetBucket 获取限流键对应的令牌桶
	GetBucket(key string) (*ratelimit.Bucket, bool)
	// AddBuckets 注册限流规则
	AddBuckets(rules ...BucketRule) Face
}

// BucketRule token bucket rule
// BucketRule 令牌桶规则
type BucketRule struct {
	// Key 限流键（URI 前缀）
	Key string
	// FillInterval 放入令牌的间隔
	FillInterval time.Duration
	// Capacity 桶容量
	Capacity int64
	// Quantum 每次放入的令牌数
	Quantum int64
}

// Limiter 通用限流器
type Limiter struct {
	limiterBuckets map[string]*ratelimit.Bucket
}

// MethodLimiter 按 URI 前缀限流的限流器
type MethodLimiter struct {
	*Limiter
}

// NewMethodLimiter 创建 MethodLimiter 实例
func NewMethodLimiter() Face {
	return MethodLimiter{
		Limiter: &Limiter{limiterBuckets: make(map[string]*ratelimit.Bucket)},
	}
}

// Key 取 URI 的首段作为限流键
func (l MethodLimiter) Key(c *gin.Context) string {
	uri := c.Request.RequestURI
	index := strings.Index(uri, "?")
	if index == -1 {
		return uri
	}
	return uri[:index]
}

func (l MethodLimiter) GetBucket(key string) (*ratelimit.Bucket, bool) {
	for ruleKey, bucket := range l.limiterBuckets {
		if strings.HasPrefix(key, ruleKey) {
			return bucket, true
		}
	}
	return nil, false
}

func (l MethodLimiter) AddBuckets(rules ...BucketRule) Face {
	for _, rule := range rules {
		if _, ok := l.limiterBuckets[rule.Key]; !ok {
			l.limiterBuckets[rule.Key] = ratelimit.NewBucketWithQuantum(
				rule.FillInterval,
				rule.Capacity,
				rule.Quantum,
			)
		}
	}
	return l
}
