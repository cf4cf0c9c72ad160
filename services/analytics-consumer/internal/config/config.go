package config

import (
	"github.com/zeromicro/go-queue/kq"
	"github.com/zeromicro/go-zero/core/service"
)

type Config struct {
	service.ServiceConf
	DataSource      string
	Pool            PoolConfig
	KqConsumerConf  kq.KqConf
	DlqPusherConf   DlqPusherConf
	GeoIPPath       string `json:",optional"`
	HealthCheckPort int    `json:",default=8081"`
}

type PoolConfig struct {
	MaxOpenConns    int `json:",default=10"`
	MaxIdleConns    int `json:",default=5"`
	ConnMaxLifetime int `json:",default=3600"` // seconds
}

// DlqPusherConf names the dead-letter topic for payloads that can never
// be processed. Leave Topic empty to log-and-skip instead.
type DlqPusherConf struct {
	Brokers []string `json:",optional"`
	Topic   string   `json:",optional"`
}
