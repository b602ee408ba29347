// lixid is the stand-in allocation service: it serves the real wire
// contract backed by the simulation engine, so the frontend can be
// developed without the production allocator.
package main

import (
	"flag"

	"github.com/seallabs/lixi/api/router"
	"github.com/seallabs/lixi/app"
	"github.com/seallabs/lixi/config"
	"github.com/seallabs/lixi/logger/xzap"
	"github.com/seallabs/lixi/service/svc"
)

const defaultConfigPath = "./config/config.toml"

func main() {
	conf := flag.String("conf", defaultConfigPath, "conf file path")
	flag.Parse()

	c, err := config.UnmarshalConfig(*conf)
	if err != nil {
		panic(err)
	}

	if err := xzap.SetUp(c.Log.Level); err != nil {
		panic(err)
	}
	defer xzap.Sync()

	serverCtx, err := svc.NewServiceContext(c)
	if err != nil {
		panic(err)
	}

	r := router.NewRouter(serverCtx)
	platform, err := app.NewPlatform(c, r, serverCtx)
	if err != nil {
		panic(err)
	}
	platform.Start()
}
