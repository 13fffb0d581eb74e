package app

import (
	"context"
	"database/sql"
	"time"

	"github.com/Apple-More/order-service/configs"
	"github.com/Apple-More/order-service/internal/adapter/cache"
	"github.com/Apple-More/order-service/internal/adapter/http"
	"github.com/Apple-More/order-service/internal/adapter/http/middleware"
	"github.com/Apple-More/order-service/internal/adapter/kafka"
	"github.com/Apple-More/order-service/internal/adapter/peer"
	"github.com/Apple-More/order-service/internal/adapter/queue"
	"github.com/Apple-More/order-service/internal/adapter/repo"
	"github.com/Apple-More/order-service/internal/logging"
	"github.com/Apple-More/order-service/internal/usecase"
	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
)

type App struct {
	Router *gin.Engine
}

func InitWithConfig(cfg configs.Config) (*App, func(), error) {
	logger := logging.Init(cfg.App.Name, cfg.App.LogFile)

	// init database
	db, err := sql.Open("mysql", cfg.MySQL.DSN)
	if err != nil {
		return nil, nil, err
	}
	db.SetConnMaxLifetime(cfg.MySQL.ConnMaxLifetime)
	db.SetMaxOpenConns(cfg.MySQL.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MySQL.MaxIdleConns)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, nil, err
	}

	logger.Info("order-service: starting up")

	// init redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       0,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, nil, err
	}

	// init rabbitmq producer
	conn, err := amqp091.Dial(cfg.Rabbit.URL)
	if err != nil {
		return nil, nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		return nil, nil, err
	}
	producer, err := queue.NewRabbitProducer(ch, cfg.Rabbit.Exchange, cfg.Rabbit.RoutingKey)
	if err != nil {
		return nil, nil, err
	}

	// infra
	orderRepo := repo.NewMySQLOrderRepo(db)
	itemRepo := repo.NewMySQLOrderItemRepo(db)
	redisCache := cache.NewRedisCache(rdb, cfg.Redis.CacheTTL)
	products := peer.NewProductClient(cfg.Peers.ProductBaseURL, cfg.Peers.Timeout)
	payments := peer.NewPaymentClient(cfg.Peers.PaymentBaseURL, cfg.Peers.Timeout)
	customers := peer.NewCustomerClient(cfg.Peers.CustomerBaseURL, cfg.Peers.Timeout)

	// register kafka-listener for payment status changes
	kafkaCancel, err := setupKafkaListener(cfg, orderRepo, redisCache)
	if err != nil {
		return nil, nil, err
	}

	// init use cases + handlers + router + middleware
	createUC := usecase.NewCreateOrder(orderRepo, itemRepo, products, payments, redisCache, producer)
	confirmUC := usecase.NewConfirmPayment(orderRepo, itemRepo, redisCache)
	listUC := usecase.NewListOrders(orderRepo, itemRepo, customers, products, redisCache)

	h := http.NewOrderHandler(createUC, confirmUC, listUC)
	ident := middleware.NewIdentity(cfg)
	router := http.NewRouter(h, ident)

	cleanup := func() {
		kafkaCancel()
		_ = ch.Close()
		_ = conn.Close()
		_ = rdb.Close()
		_ = db.Close()
	}

	return &App{Router: router}, cleanup, nil
}

func setupKafkaListener(cfg configs.Config, orderRepo *repo.MySQLOrderRepo, redisCache *cache.RedisCache) (context.CancelFunc, error) {
	grp, err := kafka.NewGroup(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.DialTimeout)
	if err != nil {
		return nil, err
	}

	h := kafka.NewPaymentStatusChangedHandler(orderRepo, redisCache)
	consumer := kafka.NewConsumer(grp, []string{cfg.Kafka.PaymentTopic}, h.Handle)
	consumer.Logger = logging.New("kafka")

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		if err := consumer.Start(ctx); err != nil && ctx.Err() == nil {
			logging.New("kafka").Error("consumer stopped", "err", err)
		}
	}()

	return func() {
		cancel()
		_ = grp.Close()
	}, nil
}
