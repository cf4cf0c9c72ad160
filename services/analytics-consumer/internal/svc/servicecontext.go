package svc

import (
	"context"
	"time"

	"link-resolver/services/analytics-consumer/internal/config"
	"link-resolver/services/analytics-consumer/model"

	_ "github.com/lib/pq"
	"github.com/oschwald/geoip2-golang"
	"github.com/zeromicro/go-queue/kq"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

// DlqPusher sends payloads that can never be processed to the
// dead-letter topic. Satisfied by *kq.Pusher.
type DlqPusher interface {
	Push(ctx context.Context, v string) error
}

type ServiceContext struct {
	Config     config.Config
	EventModel model.ClickEventsModel
	GeoDB      *geoip2.Reader
	DlqPusher  DlqPusher
}

func NewServiceContext(c config.Config) *ServiceContext {
	conn := sqlx.NewSqlConn("postgres", c.DataSource)

	db, err := conn.RawDB()
	logx.Must(err)
	db.SetMaxOpenConns(c.Pool.MaxOpenConns)
	db.SetMaxIdleConns(c.Pool.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(c.Pool.ConnMaxLifetime) * time.Second)
	logx.Infof("Connection pool configured: MaxOpen=%d, MaxIdle=%d, MaxLifetime=%ds",
		c.Pool.MaxOpenConns, c.Pool.MaxIdleConns, c.Pool.ConnMaxLifetime)

	var geoDB *geoip2.Reader
	if c.GeoIPPath != "" {
		gdb, geoErr := geoip2.Open(c.GeoIPPath)
		if geoErr != nil {
			logx.Infof("GeoIP database not available at %s, falling back to Unknown", c.GeoIPPath)
		} else {
			geoDB = gdb
		}
	}

	var dlqPusher DlqPusher
	if c.DlqPusherConf.Topic != "" {
		dlqPusher = kq.NewPusher(c.DlqPusherConf.Brokers, c.DlqPusherConf.Topic)
	} else {
		logx.Info("no dead-letter topic configured, unprocessable payloads will be logged and skipped")
	}

	return &ServiceContext{
		Config:     c,
		EventModel: model.NewClickEventsModel(conn),
		GeoDB:      geoDB,
		DlqPusher:  dlqPusher,
	}
}
