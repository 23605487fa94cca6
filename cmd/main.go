package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ardanlabs/conf"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"school/backend/foundation/web"
	"school/backend/internal/auth"
	"school/backend/internal/commands"
	"school/backend/internal/pkg/config"
	"school/backend/internal/pkg/repository/postgresql"
	"school/backend/internal/router"
	"school/backend/internal/service/calendar"
)

func main() {
	if err := run(); err != nil {
		log.Fatalln("main: error:", err)
	}
}

func run() error {
	// Startup overrides on top of config.yaml. Useful in containers where
	// the port and debug toggles come from the environment.
	var args struct {
		conf.Version
		Web struct {
			Port string `conf:"short:p"`
		}
		DebugMode bool `conf:"default:false"`
	}
	args.Version.SVN = "1.0"
	args.Version.Desc = "school attendance backend"

	if err := conf.Parse(os.Args[1:], "SCHOOL", &args); err != nil {
		switch {
		case errors.Is(err, conf.ErrHelpWanted):
			usage, err := conf.Usage("SCHOOL", &args)
			if err != nil {
				return errors.Wrap(err, "generating config usage")
			}
			fmt.Println(usage)
			return nil
		case errors.Is(err, conf.ErrVersionWanted):
			version, err := conf.VersionString("SCHOOL", &args)
			if err != nil {
				return errors.Wrap(err, "generating config version")
			}
			fmt.Println(version)
			return nil
		}
		return errors.Wrap(err, "parsing config")
	}

	cfg, err := config.NewConfig()
	if err != nil {
		return errors.Wrap(err, "reading config")
	}
	if args.Web.Port != "" {
		cfg.Port = args.Web.Port
	}

	if !args.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}

	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return errors.Wrapf(err, "loading timezone %q", cfg.Timezone)
	}

	postgresDB := postgresql.NewDB(
		cfg.DBUsername,
		cfg.DBPassword,
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBName,
		cfg.DisableTLS,
	)
	defer postgresDB.Close()

	commands.MigrateUP(postgresDB)

	redisDB := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisHost,
		Password: cfg.RedisPassword,
	})
	defer redisDB.Close()

	calendarClient := calendar.NewClient(context.Background(), cfg)
	log.Println("calendar integration:", calendarClient.State())

	authenticator := auth.NewAuth(cfg.JWTKey)

	app := web.NewApp(gin.New())

	r := router.NewRouter(
		app,
		postgresDB,
		redisDB,
		calendarClient,
		cfg.Port,
		authenticator,
		cfg.JWTKey,
		location,
	)

	return r.Init()
}
