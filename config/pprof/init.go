package pprof

import (
	"net/http"
	_ "net/http/pprof"
	"runtime"

	"github.com/sirupsen/logrus"
)

const defaultAddr = ":6060"

// Load 在独立端口拉起pprof 是否启用由配置里的enable_pprof把守
func Load(addr string) {
	if addr == "" {
		addr = defaultAddr
	}
	runtime.SetMutexProfileFraction(1)
	runtime.SetBlockProfileRate(1)

	go func() {
		if err := http.ListenAndServe(addr, nil); err != nil {
			logrus.Errorf("pprof server exited: %v", err)
		}
	}()
}
