package main

import (
	"context"
	"fmt"

	"ReelVibe.com/cmd/api/handlers"
	"ReelVibe.com/cmd/api/router"
	interactiondal "ReelVibe.com/cmd/interaction/dal"
	interactionservice "ReelVibe.com/cmd/interaction/service"
	reeldal "ReelVibe.com/cmd/reel/dal"
	reportdal "ReelVibe.com/cmd/report/dal"
	userdal "ReelVibe.com/cmd/user/dal"
	"ReelVibe.com/config"
	"ReelVibe.com/config/jaeger"
	"ReelVibe.com/config/pprof"
	"ReelVibe.com/pkg/cache"
	"ReelVibe.com/pkg/jwt"
	"ReelVibe.com/pkg/lock"
	"ReelVibe.com/pkg/mq"
	"ReelVibe.com/pkg/oss"
	"ReelVibe.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/sirupsen/logrus"
)

func Init() {
	config.Init()

	if err := utils.InitSnowflake(1, 1); err != nil {
		logrus.Fatalf("Failed to init snowflake: %v", err)
	}

	interactiondal.Init()
	reeldal.Init()
	reportdal.Init()
	userdal.Init()

	cache.Load()
	lock.Init(cache.GetClient())

	if err := oss.InitMinio(); err != nil {
		logrus.Errorf("Failed to init minio: %v", err)
	}

	jwt.AccessTokenJwtInit()
	jwt.RefreshTokenJwtInit()

	initMq()

	if config.ConfigInfo.Server.EnablePprof {
		pprof.Load(config.ConfigInfo.Server.PprofAddr)
	}
}

// initMq MQ不可用时降级运行 通知与审核事件丢失但核心流程不受影响
func initMq() {
	url := rabbitmqURL()
	producer, err := mq.NewProducer(url)
	if err != nil {
		logrus.Errorf("Failed to connect to RabbitMQ producer: %v", err)
		return
	}
	handlers.SetProducer(producer)

	consumer, err := mq.NewConsumer(url)
	if err != nil {
		logrus.Errorf("Failed to connect to RabbitMQ consumer: %v", err)
		return
	}
	persister := interactionservice.NewNotificationPersister()
	if err := consumer.ConsumeNotificationEvents(context.Background(), persister); err != nil {
		logrus.Errorf("Failed to start notification consumer: %v", err)
	}
	if err := consumer.ConsumeModerationEvents(context.Background(), persister); err != nil {
		logrus.Errorf("Failed to start moderation consumer: %v", err)
	}
}

func rabbitmqURL() string {
	conf := config.ConfigInfo.RabbitMq
	return fmt.Sprintf("amqp://%s:%s@%s/", conf.Username, conf.Password, conf.Addr)
}

func main() {
	Init()

	_, closer := jaeger.InitJaeger("reelvibe")
	defer closer.Close()

	h := server.Default(server.WithHostPorts(config.ConfigInfo.Server.Addr))
	router.Register(h)

	hlog.Infof("Server starting on %s", config.ConfigInfo.Server.Addr)
	h.Spin()
}
