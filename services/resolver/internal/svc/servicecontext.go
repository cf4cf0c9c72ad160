// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package svc

import (
	"context"
	"time"

	"link-resolver/services/resolver/internal/cache"
	"link-resolver/services/resolver/internal/config"
	"link-resolver/services/resolver/model"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/zeromicro/go-queue/kq"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

// EventPusher is the producer side of the click pipeline. Satisfied by
// *kq.Pusher. The redirect path never awaits the result of a push.
type EventPusher interface {
	Push(ctx context.Context, v string) error
}

type ServiceContext struct {
	Config    config.Config
	LinkModel model.LinksModel
	LinkCache cache.LinkCache
	KqPusher  EventPusher
}

func NewServiceContext(c config.Config) *ServiceContext {
	conn := sqlx.NewSqlConn("postgres", c.DataSource)

	db, err := conn.RawDB()
	logx.Must(err)
	db.SetMaxOpenConns(c.Pool.MaxOpenConns)
	db.SetMaxIdleConns(c.Pool.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(c.Pool.ConnMaxLifetime) * time.Second)

	var rdb *redis.Client
	if c.Cache.Addr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     c.Cache.Addr,
			Password: c.Cache.Password,
			DB:       c.Cache.DB,
		})
	} else {
		logx.Info("no cache address configured, lookup cache disabled")
	}

	return &ServiceContext{
		Config:    c,
		LinkModel: model.NewLinksModel(conn),
		LinkCache: cache.NewRedisLinkCache(rdb, time.Duration(c.Cache.TTLSeconds)*time.Second),
		KqPusher:  kq.NewPusher(c.KqPusherConf.Brokers, c.KqPusherConf.Topic),
	}
}
