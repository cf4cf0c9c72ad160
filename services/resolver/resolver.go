// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package main

import (
	"flag"
	"fmt"

	"link-resolver/pkg/problemdetails"
	"link-resolver/services/resolver/internal/config"
	"link-resolver/services/resolver/internal/handler"
	"link-resolver/services/resolver/internal/svc"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/rest"
	"github.com/zeromicro/go-zero/rest/httpx"
	_ "go.uber.org/automaxprocs"
)

var configFile = flag.String("f", "etc/resolver.yaml", "the config file")

func main() {
	flag.Parse()

	var c config.Config
	conf.MustLoad(*configFile, &c)

	server := rest.MustNewServer(c.RestConf)
	defer server.Stop()

	ctx := svc.NewServiceContext(c)
	handler.RegisterHandlers(server, ctx)

	// RFC 7807 error responses for everything except the redirect itself
	httpx.SetErrorHandlerCtx(problemdetails.ErrorHandler)

	fmt.Printf("Starting server at %s:%d...\n", c.Host, c.Port)
	server.Start()
}
