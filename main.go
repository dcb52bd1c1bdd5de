package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/tsegayberhanu/echodash/config"
	"github.com/tsegayberhanu/echodash/handler"
	"github.com/tsegayberhanu/echodash/logger"
	"github.com/tsegayberhanu/echodash/middleware"
	"github.com/tsegayberhanu/echodash/repository"
	"github.com/tsegayberhanu/echodash/service"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	log := logger.Setup(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Error("failed to connect to mongo", "error", err)
		os.Exit(1)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Error("mongo is unreachable", "error", err)
		os.Exit(1)
	}
	db := client.Database(cfg.MongoDB)
	log.Info("connected to mongo", "database", cfg.MongoDB)

	songRepo := repository.NewSongRepository(db)
	artistRepo := repository.NewArtistRepository(db)
	albumRepo := repository.NewAlbumRepository(db)
	genreRepo := repository.NewGenreRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	songSvc := service.NewSongService(songRepo)
	artistSvc := service.NewArtistService(artistRepo)
	albumSvc := service.NewAlbumService(albumRepo)
	genreSvc := service.NewGenreService(genreRepo)
	statsSvc := service.NewStatsService(statsRepo)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(cors.Default())

	handler.NewSongHandler(songSvc).RegisterRoutes(r)
	handler.NewArtistHandler(artistSvc).RegisterRoutes(r)
	handler.NewAlbumHandler(albumSvc).RegisterRoutes(r)
	handler.NewGenreHandler(genreSvc).RegisterRoutes(r)
	handler.NewStatsHandler(statsSvc, songSvc, artistSvc, albumSvc, genreSvc).RegisterRoutes(r)
	handler.NewHealthHandler().RegisterRoutes(r)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Info("starting echodash", "addr", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
