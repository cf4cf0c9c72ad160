// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package config

import (
	"github.com/zeromicro/go-zero/rest"
)

type Config struct {
	rest.RestConf
	DataSource   string
	Pool         PoolConfig
	KqPusherConf KqPusherConf
	Cache        CacheConfig
}

type PoolConfig struct {
	MaxOpenConns    int `json:",default=10"`
	MaxIdleConns    int `json:",default=5"`
	ConnMaxLifetime int `json:",default=3600"` // seconds
}

type KqPusherConf struct {
	Brokers []string
	Topic   string
}

// CacheConfig configures the Redis lookup cache. An empty Addr disables
// caching; the resolver then falls through to the link store on every
// request.
type CacheConfig struct {
	Addr       string `json:",optional"`
	Password   string `json:",optional"`
	DB         int    `json:",optional"`
	TTLSeconds int    `json:",default=600"`
}
