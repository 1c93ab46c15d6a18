package middleware

import (
	"sync"
	"time"
)

// ==================== ClientLimiter 客户端冷却限流器 ====================

// ClientLimiter 按 key 记录最近一次放行时间，冷却期内的请求被拒绝
// 前端已经保证同一页面同时只有一个请求，这里防的是脚本刷接口
type ClientLimiter struct {
	locks sync.Map // key -> *lockEntry
}

// lockEntry 锁条目
type lockEntry struct {
	lastTime time.Time
	mu       sync.Mutex
}

// NewClientLimiter 创建限流器
func NewClientLimiter() *ClientLimiter {
	return &ClientLimiter{}
}

// ==================== 限流检查 ====================

// CheckResult 检查结果
type CheckResult struct {
	Allowed    bool          // 是否允许
	RetryAfter time.Duration // 剩余冷却时间
}

// Check 检查是否允许执行，允许时记录本次时间
// key: 限流键，如 "generate:127.0.0.1"
// interval: 冷却间隔
func (r *ClientLimiter) Check(key string, interval time.Duration) CheckResult {
	actual, _ := r.locks.LoadOrStore(key, &lockEntry{})
	entry := actual.(*lockEntry)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(entry.lastTime)

	if elapsed < interval {
		return CheckResult{
			Allowed:    false,
			RetryAfter: interval - elapsed,
		}
	}

	entry.lastTime = now
	return CheckResult{Allowed: true}
}

// Reset 重置指定 key
func (r *ClientLimiter) Reset(key string) {
	r.locks.Delete(key)
}

// Prune 清理超过 maxAge 未活动的条目，返回清理数量
func (r *ClientLimiter) Prune(maxAge time.Duration) int {
	cutoff := time.Now().Add(-maxAge)
	pruned := 0

	r.locks.Range(func(key, value any) bool {
		entry := value.(*lockEntry)

		entry.mu.Lock()
		stale := entry.lastTime.Before(cutoff)
		entry.mu.Unlock()

		if stale {
			r.locks.Delete(key)
			pruned++
		}
		return true
	})

	return pruned
}

// Len 当前条目数
func (r *ClientLimiter) Len() int {
	n := 0
	r.locks.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
