// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package evict

import (
	"context"

	"link-resolver/services/resolver/internal/svc"
	"link-resolver/services/resolver/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type EvictCacheLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// Evict a short code from the lookup cache
func NewEvictCacheLogic(ctx context.Context, svcCtx *svc.ServiceContext) *EvictCacheLogic {
	return &EvictCacheLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// EvictCache drops the cached lookup for a short code. The link
// management service calls this after an update or delete so the
// resolver stops serving the stale destination before the TTL runs out.
// Eviction of a code that was never cached is a no-op.
func (l *EvictCacheLogic) EvictCache(req *types.EvictCacheRequest) error {
	logx.WithContext(l.ctx).Infow("evict cache", logx.Field("code", req.Code))
	return l.svcCtx.LinkCache.Invalidate(l.ctx, req.Code)
}
