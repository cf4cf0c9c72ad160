// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package redirect

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strings"
	"time"

	"link-resolver/common/events"
	"link-resolver/pkg/problemdetails"
	"link-resolver/services/resolver/internal/svc"
	"link-resolver/services/resolver/internal/types"
	"link-resolver/services/resolver/model"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/threading"
)

type RedirectLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// Redirect to original URL
func NewRedirectLogic(ctx context.Context, svcCtx *svc.ServiceContext) *RedirectLogic {
	return &RedirectLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Redirect resolves a short code to its destination URL. On success it
// also submits a click event to the queue, fire-and-forget: the event's
// fate never changes the response already computed here.
func (l *RedirectLogic) Redirect(req *types.RedirectRequest, r *http.Request) (string, error) {
	logx.WithContext(l.ctx).Infow("redirect", logx.Field("code", req.Code))

	link, err := l.findLink(req.Code)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return "", problemdetails.New(404, problemdetails.TypeNotFound, "Not Found",
				"short code '"+req.Code+"' not found")
		}
		logx.WithContext(l.ctx).Errorw("failed to find link", logx.Field("error", err.Error()))
		return "", problemdetails.New(500, problemdetails.TypeInternalError, "Internal Error",
			"failed to look up short code")
	}

	l.submitClickEvent(events.ClickEvent{
		ShortCode:   link.ShortCode,
		OriginalUrl: link.OriginalUrl,
		Timestamp:   time.Now().Unix(),
		UserAgent:   r.UserAgent(),
		IpAddress:   extractClientIP(r),
		Referer:     r.Referer(),
	})

	return link.OriginalUrl, nil
}

// findLink checks the cache first, then the link store. Only active
// links are returned; a cached entry that was deactivated but not yet
// evicted still resolves as not found.
func (l *RedirectLogic) findLink(code string) (*model.Links, error) {
	if cached, err := l.svcCtx.LinkCache.Get(l.ctx, code); err == nil && cached != nil {
		if !cached.IsActive {
			return nil, model.ErrNotFound
		}
		return cached, nil
	}

	link, err := l.svcCtx.LinkModel.FindOneActiveByShortCode(l.ctx, code)
	if err != nil {
		return nil, err
	}

	_ = l.svcCtx.LinkCache.Set(l.ctx, link)
	return link, nil
}

// submitClickEvent pushes the event to the click topic on a detached
// goroutine. A background context is used so a client disconnect cannot
// cancel an already-dispatched submission. Push failures are logged and
// the event is dropped; the hot path takes no backpressure from the
// analytics path.
func (l *RedirectLogic) submitClickEvent(event events.ClickEvent) {
	pusher := l.svcCtx.KqPusher
	if pusher == nil {
		return
	}

	payload, err := json.Marshal(event)
	if err != nil {
		logx.Errorw("failed to marshal click event",
			logx.Field("code", event.ShortCode),
			logx.Field("error", err.Error()),
		)
		return
	}

	threading.GoSafe(func() {
		if pushErr := pusher.Push(context.Background(), string(payload)); pushErr != nil {
			logx.Errorw("failed to push click event, dropping",
				logx.Field("code", event.ShortCode),
				logx.Field("error", pushErr.Error()),
			)
		}
	})
}

// extractClientIP picks the client address from X-Forwarded-For first,
// then X-Real-IP, then the connection's remote address.
func extractClientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}

	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
